package nextclosure

import (
	"context"

	"github.com/katalvlaran/fca/fcaerr"
	"github.com/katalvlaran/fca/incidence"
	"github.com/katalvlaran/fca/sparse"
)

// Run enumerates attribute sets in strictly ascending lectic order (spec.md
// §4.5). In Concepts mode the closure driving the sweep is the context's own
// Galois closure, so every visited set is a concept intent.
//
// In Implications mode the sweep instead advances through sets closed under
// the implications discovered so far (the growing canonical basis L),
// rather than through the context's Galois closure directly. At each
// visited set A, A's actual Galois closure is computed once: if A already
// equals it, A is a concept intent; otherwise A is L-closed but not
// Galois-closed — a pseudo-intent — and (A, A''−A) is appended to the basis
// and folded into L before the sweep continues, so later candidates are
// decided against the newly-grown L (Ganter's Next-Closure algorithm for
// the Duquenne-Guigues basis).
//
// ctx is checked at the top of every step; on cancellation Run returns
// fcaerr.Cancelled and no partial Result (spec.md §5).
func Run(ctx context.Context, inc *incidence.Incidence, mode Mode, opts ...Option) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := resolveOptions(opts...)
	n := inc.NumAttrs()

	grades := make([][]float64, n)
	for a := 0; a < n; a++ {
		grades[a] = inc.Grades(a)
	}

	res := &Result{
		LHS: sparse.NewMatrix(n),
		RHS: sparse.NewMatrix(n),
	}

	// closeFn is the per-step closure the sweep advances through. Concepts
	// mode fixes it to the context's Galois closure; Implications mode
	// closes over res.LHS/RHS, which grow mid-sweep as pseudo-intents are
	// found, so every later call sees the basis discovered so far.
	closeFn := inc.Closure
	if mode == Implications {
		closeFn = func(x sparse.Vector) (sparse.Vector, error) {
			return lClosure(res.LHS, res.RHS, x)
		}
	}

	current, err := closeFn(inc.AttributeVector(nil, nil))
	if err != nil {
		return nil, err
	}

	for {
		select {
		case <-ctx.Done():
			return nil, fcaerr.Wrap(fcaerr.Cancelled, "nextclosure.Run", "")
		default:
		}

		galois, isIntent := current, true
		if mode == Implications {
			galois, err = inc.Closure(current)
			if err != nil {
				return nil, err
			}
			isIntent, err = sparse.Equal(current, galois)
			if err != nil {
				return nil, err
			}
		}

		if isIntent {
			res.Intents = append(res.Intents, current)
			res.ClosureCount++
			if o.SaveConcepts {
				extent, err := inc.Extent(current)
				if err != nil {
					return nil, err
				}
				res.Extents = append(res.Extents, extent)
			}
			o.Logger.Debugw("accepted intent", "index", len(res.Intents)-1, "nnz", current.NNZ())
		} else {
			rhs, err := sparse.Difference(galois, current)
			if err != nil {
				return nil, err
			}
			res.LHS = res.LHS.AppendCol(current)
			res.RHS = res.RHS.AppendCol(rhs)
			o.Logger.Debugw("emitted implication", "lhs_nnz", current.NNZ(), "rhs_nnz", rhs.NNZ())
		}

		next, found, err := step(inc, current, grades, closeFn, o)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}

		current = next
	}

	return res, nil
}

// step computes A+ from the current closed set A (spec.md §4.5 "Single-step
// operator"), closing each candidate with closeFn. It returns the next
// closed set and whether one was found at all.
func step(inc *incidence.Incidence, a sparse.Vector, grades [][]float64, closeFn func(sparse.Vector) (sparse.Vector, error), o Options) (next sparse.Vector, found bool, err error) {
	n := inc.NumAttrs()

	for k := n - 1; k >= 0; k-- {
		currentVal := a.At(k)
		for _, v := range grades[k] {
			if v <= currentVal {
				continue
			}

			prefixIdx := make([]int, 0, len(a.Idx)+1)
			prefixVal := make([]float64, 0, len(a.Idx)+1)
			for i, p := range a.Idx {
				if p >= k {
					break
				}
				prefixIdx = append(prefixIdx, p)
				prefixVal = append(prefixVal, a.Val[i])
			}
			prefixIdx = append(prefixIdx, k)
			prefixVal = append(prefixVal, v)
			prime := inc.AttributeVector(prefixIdx, prefixVal)

			b, err := closeFn(prime)
			if err != nil {
				return sparse.Vector{}, false, err
			}

			if agreesBelow(a, b, k) {
				o.Logger.Debugw("lectic candidate accepted", "k", k, "grade", v)
				return b, true, nil
			}
			o.Logger.Debugw("lectic candidate rejected", "k", k, "grade", v)
		}
	}

	return sparse.Vector{}, false, nil
}

// agreesBelow reports whether a and b agree on every attribute position
// strictly below k (the lectic "no earlier disturbance" test, spec.md §4.5).
func agreesBelow(a, b sparse.Vector, k int) bool {
	for p := 0; p < k; p++ {
		if a.At(p) != b.At(p) {
			return false
		}
	}

	return true
}

// lClosure forward-chains x under the rules in (lhs, rhs) to a fixed point:
// repeatedly union in any rule's RHS whose LHS is already satisfied, until a
// full pass changes nothing. Same augmentation shape as
// implication.Closure's fired-bit loop, kept local here so this package
// doesn't need the implication package for one fixpoint loop.
func lClosure(lhs, rhs sparse.Matrix, x sparse.Vector) (sparse.Vector, error) {
	current := x
	for {
		changed := false
		for i := 0; i < lhs.NumCols(); i++ {
			ok, err := sparse.Subset(lhs.Col(i), current)
			if err != nil {
				return sparse.Vector{}, err
			}
			if !ok {
				continue
			}
			next, err := sparse.Union(current, rhs.Col(i))
			if err != nil {
				return sparse.Vector{}, err
			}
			eq, err := sparse.Equal(next, current)
			if err != nil {
				return sparse.Vector{}, err
			}
			if !eq {
				current = next
				changed = true
			}
		}
		if !changed {
			return current, nil
		}
	}
}
