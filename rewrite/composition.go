package rewrite

import "github.com/katalvlaran/fca/sparse"

// composition merges rules that share an identical LHS into one rule whose
// RHS is their union, since A⇒B and A⇒C together say exactly A⇒(B∪C)
// (spec.md §4.8). The first rule in lectic/insertion order within each group
// survives with the merged RHS; later duplicates are dropped. Columns below
// fixed are never merged into or dropped.
func composition(lhs, rhs sparse.Matrix, fixed int, _ func(x, y float64) float64) (sparse.Matrix, sparse.Matrix, error) {
	n := lhs.NumCols()
	keep := make([]bool, n)
	mergedRHS := make([]sparse.Vector, n)
	for j := 0; j < n; j++ {
		keep[j] = true
		mergedRHS[j] = rhs.Col(j)
	}

	for i := 0; i < n; i++ {
		if i < fixed || !keep[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if j < fixed || !keep[j] {
				continue
			}
			eq, err := sparse.Equal(lhs.Col(i), lhs.Col(j))
			if err != nil {
				return sparse.Matrix{}, sparse.Matrix{}, err
			}
			if !eq {
				continue
			}
			u, err := sparse.Union(mergedRHS[i], rhs.Col(j))
			if err != nil {
				return sparse.Matrix{}, sparse.Matrix{}, err
			}
			mergedRHS[i] = u
			keep[j] = false
		}
	}

	newLHS := sparse.NewMatrix(lhs.Rows)
	newRHS := sparse.NewMatrix(rhs.Rows)
	for j := 0; j < n; j++ {
		if !keep[j] {
			continue
		}
		newLHS = newLHS.AppendCol(lhs.Col(j))
		newRHS = newRHS.AppendCol(mergedRHS[j])
	}

	return newLHS, newRHS, nil
}
