package sparse

// Matrix is a column-major bank of Vectors sharing the same Rows dimension:
// used for the implication store's LHS/RHS banks (spec.md §3, "Stored column-
// sparse... column i is the i-th rule") and for multi-object/attribute
// derivation batches. Each column is independently sparse and keeps its own
// sorted index/value pair, so the bank-level invariant reduces to "every
// column individually satisfies Vector's invariant" — no shared ColPtr/RowIdx
// arrays are needed since columns are rarely uniform in nnz for implication
// rule sets, and a slice-of-Vector keeps every C2 operation a simple loop
// over independent columns instead of flat-array index arithmetic.
type Matrix struct {
	Rows int
	Cols []Vector
}

// NewMatrix builds an empty Rows×0 Matrix.
func NewMatrix(rows int) Matrix {
	return Matrix{Rows: rows}
}

// NumCols returns the number of columns (spec.md §4.6 cardinality()).
func (m Matrix) NumCols() int { return len(m.Cols) }

// Col returns column j. Panics if j is out of range, mirroring Go slice
// semantics — callers are expected to range over 0..NumCols()-1.
func (m Matrix) Col(j int) Vector { return m.Cols[j] }

// AppendCol returns a new Matrix with v appended as the last column.
// Complexity: O(NumCols) — the column slice is copied so the receiver is
// never aliased.
func (m Matrix) AppendCol(v Vector) Matrix {
	cols := make([]Vector, len(m.Cols), len(m.Cols)+1)
	copy(cols, m.Cols)
	cols = append(cols, v)

	return Matrix{Rows: m.Rows, Cols: cols}
}

// WithCol returns a new Matrix with column j replaced by v.
func (m Matrix) WithCol(j int, v Vector) Matrix {
	cols := make([]Vector, len(m.Cols))
	copy(cols, m.Cols)
	cols[j] = v

	return Matrix{Rows: m.Rows, Cols: cols}
}

// Keep returns a new Matrix containing only the columns j where keep[j] is
// true, preserving relative order (used to garbage-collect dead rules and to
// drop simplified-away columns, spec.md §3/§4.8).
func (m Matrix) Keep(keep []bool) Matrix {
	cols := make([]Vector, 0, len(m.Cols))
	for j, v := range m.Cols {
		if keep[j] {
			cols = append(cols, v)
		}
	}

	return Matrix{Rows: m.Rows, Cols: cols}
}

// Clone returns a deep-enough copy (columns are value types with their own
// backing slices copied) so mutating the clone's column slices never aliases
// the receiver's.
func (m Matrix) Clone() Matrix {
	cols := make([]Vector, len(m.Cols))
	for j, v := range m.Cols {
		idx := make([]int, len(v.Idx))
		val := make([]float64, len(v.Val))
		copy(idx, v.Idx)
		copy(val, v.Val)
		cols[j] = Vector{Dim: v.Dim, Idx: idx, Val: val}
	}

	return Matrix{Rows: m.Rows, Cols: cols}
}
