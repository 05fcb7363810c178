// Package implication implements the implication store (C6), closure under a
// rule base (C7), and entailment/equivalence (C9).
//
// A Store wraps two aligned sparse.Matrix banks (LHS, RHS): column i is the
// rule LHS[:,i] ⇒ RHS[:,i] (spec.md §3). Closure under the store is a
// forward-chaining fixed point, grounded on the teacher's
// flow/ford_fulkerson.go augmentation loop ("repeatedly find something that
// still applies and apply it, until nothing does" plus context.Context
// cancellation checked once per pass) — here the "augmenting path" is any
// rule whose LHS is already satisfied.
package implication
