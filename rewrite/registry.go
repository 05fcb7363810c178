package rewrite

import (
	"sync"

	"github.com/katalvlaran/fca/fcaerr"
	"github.com/katalvlaran/fca/sparse"
)

// Func is a single closure-preserving rewrite over an implication bank: given
// the current LHS/RHS columns, the active t-norm, and the count of leading
// protected ("fixed") columns, it returns the rewritten banks (spec.md §4.8).
// A Func must never reorder or drop the first fixed columns.
type Func func(lhs, rhs sparse.Matrix, fixed int, tnorm func(x, y float64) float64) (sparse.Matrix, sparse.Matrix, error)

type registry struct {
	mu     sync.RWMutex
	byName map[string]Func
}

var global = newRegistry()

func newRegistry() *registry {
	r := &registry{byName: make(map[string]Func, 5)}
	r.byName["reduction"] = reduction
	r.byName["composition"] = composition
	r.byName["generalization"] = generalization
	r.byName["simplification"] = simplification
	r.byName["rsimp"] = rsimp

	return r
}

// Register adds or replaces a named rewrite in the global registry, letting
// callers extend the engine with domain-specific rules beyond the five built
// in (spec.md §4.8 "the named rewrites are a registry, not a closed set").
func Register(name string, fn Func) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.byName[name] = fn
}

// Apply runs the named rewrites, in order, repeatedly until a full pass over
// every name produces no change to either bank, then returns the fixed-point
// banks (spec.md §4.8 apply_rules). fixed protects the leading fixed columns
// from being dropped or reordered by any rewrite.
func Apply(lhs, rhs sparse.Matrix, fixed int, names ...string) (sparse.Matrix, sparse.Matrix, error) {
	global.mu.RLock()
	fns := make([]Func, len(names))
	for i, n := range names {
		fn, ok := global.byName[n]
		if !ok {
			global.mu.RUnlock()
			return sparse.Matrix{}, sparse.Matrix{}, fcaerr.Wrap(fcaerr.UnknownRewrite, "rewrite.Apply", n)
		}
		fns[i] = fn
	}
	global.mu.RUnlock()

	tnorm := activeTnorm()

	// maxPasses bounds the fixpoint search: a well-behaved sequence converges
	// in a handful of passes (each rewrite is closure-preserving and the
	// column count is non-increasing), so this only guards against a
	// user-registered rewrite pair that oscillates forever.
	const maxPasses = 10000
	for pass := 0; ; pass++ {
		if pass >= maxPasses {
			return sparse.Matrix{}, sparse.Matrix{}, fcaerr.Wrap(fcaerr.InvariantViolation, "rewrite.Apply",
				"rewrite sequence did not converge to a fixed point")
		}

		beforeLHS, beforeRHS := lhs, rhs
		for i, fn := range fns {
			newLHS, newRHS, err := fn(lhs, rhs, fixed, tnorm)
			if err != nil {
				return sparse.Matrix{}, sparse.Matrix{}, fcaerr.Wrap(err, "rewrite.Apply", names[i])
			}
			lhs, rhs = newLHS, newRHS
		}
		if matricesEqual(lhs, beforeLHS) && matricesEqual(rhs, beforeRHS) {
			break
		}
	}

	return lhs, rhs, nil
}

func matricesEqual(a, b sparse.Matrix) bool {
	if a.NumCols() != b.NumCols() {
		return false
	}
	for j := 0; j < a.NumCols(); j++ {
		eq, err := sparse.Equal(a.Col(j), b.Col(j))
		if err != nil || !eq {
			return false
		}
	}

	return true
}
