package rewrite

import "github.com/katalvlaran/fca/sparse"

// reduction drops every rule whose RHS contributes nothing beyond its own
// LHS — RHS[:,i] ⊆ LHS[:,i] — since such a rule is a tautology, vacuously
// entailed by reflexivity and never useful for forward chaining (spec.md
// §4.8). Columns below fixed are never dropped.
func reduction(lhs, rhs sparse.Matrix, fixed int, _ func(x, y float64) float64) (sparse.Matrix, sparse.Matrix, error) {
	keep := make([]bool, lhs.NumCols())
	for j := range keep {
		if j < fixed {
			keep[j] = true
			continue
		}
		tautology, err := sparse.Subset(rhs.Col(j), lhs.Col(j))
		if err != nil {
			return sparse.Matrix{}, sparse.Matrix{}, err
		}
		keep[j] = !tautology
	}

	return lhs.Keep(keep), rhs.Keep(keep), nil
}
