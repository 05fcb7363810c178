// Package sparse implements the column-major sparse store (C2): a 0/1 or
// [0,1]-valued vector type (a fuzzy set over a fixed universe) and a
// column-major matrix of such vectors (used for implication LHS/RHS banks).
//
// Storage invariant: every vector's indices are strictly ascending and every
// stored value is non-zero — zero entries are never materialised (spec.md
// §3). Every operation below is O(nnz of its inputs), implemented as a
// single merge-style pass over two sorted index lists, mirroring the
// teacher's ew* element-wise kernels in matrix/ops_elementwise.go (private,
// allocation-minimal loops wrapped by small public entry points) adapted
// from Dense's flat row-major buffer to a sparse column.
package sparse
