// Package fca is the thin external-interface facade over the core packages
// (incidence, nextclosure, implication, logic): it exposes exactly the
// constructors and entry points a caller needs, as stateless functions
// returning the core value types, with no back-reference, pretty-printing,
// or file-loading logic of its own.
//
// This is deliberately not a mutable "formal context" container: there is
// no package-level current incidence, no builder pattern accumulating
// state across calls. Every function takes everything it needs as
// arguments and returns a fresh value.
package fca
