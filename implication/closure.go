package implication

import (
	"context"

	"github.com/katalvlaran/fca/fcaerr"
	"github.com/katalvlaran/fca/rewrite"
	"github.com/katalvlaran/fca/sparse"
)

// Closure computes the forward-chaining fixed point of s under store: starting
// from s, repeatedly finds a rule whose LHS is already satisfied and unions
// its RHS in, until a full pass fires nothing (spec.md §4.7).
//
// A rule that has fired is never reconsidered — once LHS[:,i] ⊆ current, the
// union current∪RHS[:,i] only ever grows current, so re-checking rule i in a
// later pass can only repeat a no-op test. This "fired" bit is the pass-level
// dirty-bit optimisation spec.md §9 asks for.
//
// If reduce is true, Closure also returns the residual Store: the rules that
// never fired, simplified to a fixpoint via rewrite.Apply with the standard
// reduction/composition/generalization/simplification sequence (spec.md
// §4.8). If reduce is false the returned *Store is nil.
//
// ctx is checked once per pass, grounded on the teacher's
// flow/ford_fulkerson.go augmentation loop ("augment until none found",
// cancellation checked per outer iteration, not per inner edge).
func Closure(ctx context.Context, store *Store, s sparse.Vector, reduce bool) (sparse.Vector, *Store, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	n := store.Cardinality()
	fired := make([]bool, n)
	current := s

	for {
		select {
		case <-ctx.Done():
			return sparse.Vector{}, nil, fcaerr.Wrap(fcaerr.Cancelled, "implication.Closure", "")
		default:
		}

		changed := false
		for i := 0; i < n; i++ {
			if fired[i] {
				continue
			}
			ok, err := sparse.Subset(store.LHS.Col(i), current)
			if err != nil {
				return sparse.Vector{}, nil, err
			}
			if !ok {
				continue
			}
			current, err = sparse.Union(current, store.RHS.Col(i))
			if err != nil {
				return sparse.Vector{}, nil, err
			}
			fired[i] = true
			changed = true
		}
		if !changed {
			break
		}
	}

	if !reduce {
		return current, nil, nil
	}

	keep := make([]bool, n)
	for i := range keep {
		keep[i] = !fired[i]
	}
	residualLHS := store.LHS.Keep(keep)
	residualRHS := store.RHS.Keep(keep)

	simpLHS, simpRHS, err := rewrite.Apply(residualLHS, residualRHS, 0,
		"reduction", "composition", "generalization", "simplification")
	if err != nil {
		return sparse.Vector{}, nil, err
	}

	reduced, err := NewStore(store.Attrs, simpLHS, simpRHS)
	if err != nil {
		return sparse.Vector{}, nil, err
	}

	return current, reduced, nil
}
