// Package incidence implements the derivation/closure kernel (C3) and the
// grade enumerator (C4) over a fixed incidence relation I, plus the
// Incidence value type itself (spec.md §3 data model).
//
// An Incidence is immutable for its entire lifetime (spec.md §3 "Lifecycle"):
// there is no in-place mutation, no back-reference to implications or a
// lattice, matching the re-architecture note in spec.md §9 ("split into an
// immutable Incidence value... No cycles"). Rescaling (changing the entries)
// produces a new Incidence via WithEntries rather than mutating the receiver,
// which sidesteps the stale-is_binary-cache pitfall spec.md §9 calls out as
// an open question: IsBinary is computed once per value and is therefore
// never stale.
//
// Storage follows spec.md §3 literally: rows are attributes, columns are
// objects, and the physical representation is column-major (per object, the
// sorted non-zero attribute rows and their grades) — a sparse.Matrix with
// Rows == len(Attrs) and one sparse.Vector column per object. A transposed
// per-attribute view is cached alongside it (attribute → sparse vector over
// objects) purely as a derived index: it is what both Intent's per-attribute
// loop and the grade enumerator (C4) need, and computing it once at
// construction avoids re-deriving it on every Intent call — mirroring the
// teacher's core.Graph which snapshots adjacency once and serves repeated
// read-mostly queries against it.
package incidence
