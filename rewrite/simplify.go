package rewrite

import "github.com/katalvlaran/fca/sparse"

// simplification runs the Rsimplification_bg fixed point (spec.md §4.8): a
// rule (P→Q) whose P is a subset of another rule's P'∪Q' (and whose
// P'/Q' are themselves disjoint) lets Q be subtracted out of Q' — P already
// forces Q by the time P' is satisfied, so Q is redundant in Q'.
//
// Columns below fixed are protected: they are never chosen as a subtraction
// target j, and never dropped in the final empty-RHS sweep, matching
// spec.md §9's resolution of the fixed=0 ambiguity ("fixed=0 means no
// protection").
func simplification(lhs, rhs sparse.Matrix, fixed int, tnorm func(x, y float64) float64) (sparse.Matrix, sparse.Matrix, error) {
	n := lhs.NumCols()
	lhsCols := make([]sparse.Vector, n)
	rhsCols := make([]sparse.Vector, n)
	for j := 0; j < n; j++ {
		lhsCols[j] = lhs.Col(j)
		rhsCols[j] = rhs.Col(j)
	}

	active := make([]bool, n)
	for j := range active {
		active[j] = true
	}

	subsetHit := func(i, j int) (bool, error) {
		si, err := sparse.SelfIntersection(lhsCols[j], rhsCols[j], tnorm)
		if err != nil {
			return false, err
		}
		if si != 0 {
			return false, nil
		}
		u, err := sparse.Union(lhsCols[j], rhsCols[j])
		if err != nil {
			return false, err
		}

		return sparse.Subset(lhsCols[i], u)
	}

	for {
		bestR, bestHits := -1, 1
		var bestT []int
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			hits := 0
			var t []int
			for j := 0; j < n; j++ {
				if !active[j] {
					continue
				}
				ok, err := subsetHit(i, j)
				if err != nil {
					return sparse.Matrix{}, sparse.Matrix{}, err
				}
				if !ok {
					continue
				}
				hits++
				if j != i && j >= fixed {
					t = append(t, j)
				}
			}
			if hits > bestHits {
				bestHits, bestR, bestT = hits, i, t
			}
		}

		if bestR == -1 {
			break
		}
		if len(bestT) == 0 {
			active[bestR] = false
			continue
		}
		for _, j := range bestT {
			d, err := sparse.Difference(rhsCols[j], rhsCols[bestR])
			if err != nil {
				return sparse.Matrix{}, sparse.Matrix{}, err
			}
			rhsCols[j] = d
		}
		active[bestR] = false
	}

	keep := make([]bool, n)
	for j := range keep {
		keep[j] = j < fixed || rhsCols[j].NNZ() > 0
	}

	newLHS := sparse.NewMatrix(lhs.Rows)
	newRHS := sparse.NewMatrix(rhs.Rows)
	for j := 0; j < n; j++ {
		if !keep[j] {
			continue
		}
		newLHS = newLHS.AppendCol(lhsCols[j])
		newRHS = newRHS.AppendCol(rhsCols[j])
	}

	return newLHS, newRHS, nil
}
