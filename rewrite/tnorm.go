package rewrite

import "github.com/katalvlaran/fca/logic"

// activeTnorm reads the process-scoped active logic's t-norm at the moment
// Apply is called (spec.md §9 Open Question: no separate logic snapshot is
// threaded through a rewrite run — the engine runs single-threaded with
// respect to logic.Use/logic.With, so reading logic.Get() once per Apply call
// is equivalent to reading it per rewrite).
func activeTnorm() func(x, y float64) float64 {
	return logic.Get().Tnorm
}
