package rewrite

import "github.com/katalvlaran/fca/sparse"

// generalization drops a rule that is a needlessly specific restatement of a
// weaker one already in the bank: if LHS[:,j] is LHS[:,i] missing exactly one
// attribute (j's premise is strictly weaker, by one attribute, than i's) and
// RHS[:,i] ⊆ RHS[:,j] (the weaker rule already concludes everything the
// stronger one does), rule i adds nothing over rule j and is dropped
// (spec.md §4.8). Columns below fixed are never dropped; any column,
// including a fixed one, may serve as the "weaker" witness.
func generalization(lhs, rhs sparse.Matrix, fixed int, _ func(x, y float64) float64) (sparse.Matrix, sparse.Matrix, error) {
	n := lhs.NumCols()
	drop := make([]bool, n)

	for i := 0; i < n; i++ {
		if i < fixed {
			continue
		}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			weaker, err := sparse.Subset(lhs.Col(j), lhs.Col(i))
			if err != nil {
				return sparse.Matrix{}, sparse.Matrix{}, err
			}
			if !weaker {
				continue
			}
			diff, err := sparse.Difference(lhs.Col(i), lhs.Col(j))
			if err != nil {
				return sparse.Matrix{}, sparse.Matrix{}, err
			}
			if diff.NNZ() != 1 {
				continue
			}
			covers, err := sparse.Subset(rhs.Col(i), rhs.Col(j))
			if err != nil {
				return sparse.Matrix{}, sparse.Matrix{}, err
			}
			if covers {
				drop[i] = true
				break
			}
		}
	}

	keep := make([]bool, n)
	for j := range keep {
		keep[j] = !drop[j]
	}

	return lhs.Keep(keep), rhs.Keep(keep), nil
}
