package rewrite

import "github.com/katalvlaran/fca/sparse"

// rsimp is the reverse of simplification. It reuses simplification's
// candidate search — S[i,j] = LHS[:,i] ⊆ (LHS[:,j]∪RHS[:,j]) restricted to
// disjoint columns j, candidates being columns with more than one hit — but
// inverts the selection order (fewest hits first, rather than most) and
// inverts the repair direction: instead of subtracting RHS[:,r] out of its
// siblings, it grows RHS[:,j] back toward RHS[:,r] whenever the two rules
// are true closure equals (LHS[:,r]∪RHS[:,r] == LHS[:,j]∪RHS[:,j]), not
// merely entailment.
//
// That equality gate is what keeps ["simplification", "rsimp"] from
// oscillating forever: simplification only ever shrinks a rule's own
// LHS∪RHS closure, so two rules it just drove apart no longer satisfy
// rsimp's equality gate, and two rules it leaves exactly equivalent are
// exactly what rsimp is meant to re-align (spec.md §9 Open Question).
func rsimp(lhs, rhs sparse.Matrix, fixed int, tnorm func(x, y float64) float64) (sparse.Matrix, sparse.Matrix, error) {
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
		bestR, bestHits := -1, 1<<30
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
			if hits > 1 && hits < bestHits {
				bestHits, bestR, bestT = hits, i, t
			}
		}

		if bestR == -1 {
			break
		}

		closureR, err := sparse.Union(lhsCols[bestR], rhsCols[bestR])
		if err != nil {
			return sparse.Matrix{}, sparse.Matrix{}, err
		}
		for _, j := range bestT {
			closureJ, err := sparse.Union(lhsCols[j], rhsCols[j])
			if err != nil {
				return sparse.Matrix{}, sparse.Matrix{}, err
			}
			eq, err := sparse.Equal(closureR, closureJ)
			if err != nil {
				return sparse.Matrix{}, sparse.Matrix{}, err
			}
			if !eq {
				continue
			}
			merged, err := sparse.Union(rhsCols[j], rhsCols[bestR])
			if err != nil {
				return sparse.Matrix{}, sparse.Matrix{}, err
			}
			rhsCols[j] = merged
		}
		active[bestR] = false
	}

	newRHS := sparse.NewMatrix(rhs.Rows)
	for j := 0; j < n; j++ {
		newRHS = newRHS.AppendCol(rhsCols[j])
	}

	return lhs, newRHS, nil
}
