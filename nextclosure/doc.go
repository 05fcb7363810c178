// Package nextclosure implements the Next-Closure engine (C5): a single
// lexicographic (lectic-order) sweep over an incidence.Incidence that
// produces either every intent (concepts mode) or the Duquenne-Guigues
// canonical basis of implications plus every intent (implications mode).
//
// Package layout mirrors the teacher's traversal packages (bfs/, dfs/): a
// doc.go, a types.go holding the Options/Result/Mode types, and a single
// algorithm file. Like bfs.BFS and dfs.DFS, Run accepts
// a context.Context and returns a result value plus an error — there is no
// hidden global state and the engine is single-threaded and deterministic
// (spec.md §5).
package nextclosure
