// Package logic implements the residuated-lattice registry (C1): named
// triples (t-norm ⊗, residuum →, negation ¬) over [0,1] that parameterise
// every fuzzy operation in the derivation kernel, the grade enumerator, and
// Next-Closure.
//
// Built-in logics are Gödel, Łukasiewicz, and Product (see spec.md §3); the
// classical binary case is the restriction of any of them to {0,1}.
//
// The active logic is process-scoped, not a parameter threaded through every
// call: callers select it with Use, read it with Get, or scope a temporary
// switch with With, which restores the previous logic on every exit path
// (including panics). No operation outside this package hard-codes min/max;
// everything goes through Tnorm/Residuum.
//
// Concurrency: a single sync.RWMutex guards the active-logic pointer,
// mirroring the split read/write locking the teacher's core.Graph uses for
// its own process-wide mutable state, scaled down to the single field this
// registry needs.
package logic
