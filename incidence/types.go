package incidence

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fca/fcaerr"
	"github.com/katalvlaran/fca/sparse"
)

// Incidence is an immutable binary or fuzzy relation between a finite set of
// attributes and a finite set of objects (spec.md §3).
type Incidence struct {
	Attrs []string
	Objs  []string

	byObject sparse.Matrix // Rows == len(Attrs); one column per object
	byAttr   sparse.Matrix // Rows == len(Objs); one column per attribute (transpose)

	isBinary bool
}

// New builds an Incidence from a dense table of shape len(attrs) x len(objs)
// (row-major by attribute, spec.md §6 "Construct I: accept a dense matrix").
// Entries must lie in [0,1]; attrs and objs must be non-empty and name every
// row/column positionally.
func New(attrs, objs []string, rows [][]float64) (*Incidence, error) {
	if len(rows) != len(attrs) {
		return nil, fcaerr.Wrap(fcaerr.ShapeMismatch, "incidence.New",
			fmt.Sprintf("%d rows for %d attributes", len(rows), len(attrs)))
	}
	byObject := sparse.NewMatrix(len(attrs))
	objCols := make([][]int, len(objs))
	objVals := make([][]float64, len(objs))
	for a, row := range rows {
		if len(row) != len(objs) {
			return nil, fcaerr.Wrap(fcaerr.ShapeMismatch, "incidence.New",
				fmt.Sprintf("row %d has %d entries for %d objects", a, len(row), len(objs)))
		}
		for o, v := range row {
			if v < 0 || v > 1 {
				return nil, fcaerr.Wrap(fcaerr.ShapeMismatch, "incidence.New",
					fmt.Sprintf("entry [%d,%d]=%v outside [0,1]", a, o, v))
			}
			if v != 0 {
				objCols[o] = append(objCols[o], a)
				objVals[o] = append(objVals[o], v)
			}
		}
	}
	for o := range objs {
		byObject = byObject.AppendCol(sparse.NewVector(len(attrs), objCols[o], objVals[o]))
	}

	byAttr := transpose(byObject, len(objs))
	binary := computeIsBinary(byObject)

	return &Incidence{
		Attrs:    append([]string(nil), attrs...),
		Objs:     append([]string(nil), objs...),
		byObject: byObject,
		byAttr:   byAttr,
		isBinary: binary,
	}, nil
}

// transpose rebuilds a Rows==cols sparse.Matrix from the dual orientation;
// used once at construction to derive the per-attribute view from the
// per-object storage (spec.md §3 canonical layout).
func transpose(m sparse.Matrix, newRows int) sparse.Matrix {
	idx := make([][]int, newRows)
	val := make([][]float64, newRows)
	for o := 0; o < m.NumCols(); o++ {
		col := m.Col(o)
		for k, a := range col.Idx {
			idx[a] = append(idx[a], o)
			val[a] = append(val[a], col.Val[k])
		}
	}
	out := sparse.NewMatrix(m.NumCols())
	for a := 0; a < newRows; a++ {
		out = out.AppendCol(sparse.NewVector(m.NumCols(), idx[a], val[a]))
	}

	return out
}

func computeIsBinary(m sparse.Matrix) bool {
	for j := 0; j < m.NumCols(); j++ {
		for _, v := range m.Col(j).Val {
			if v != 0 && v != 1 {
				return false
			}
		}
	}

	return true
}

// IsBinary reports whether every entry of the incidence is in {0,1}
// (spec.md §7 NotBinary / §9 open question — recomputed per value, never
// cached across a mutation since Incidence has none).
func (inc *Incidence) IsBinary() bool { return inc.isBinary }

// NumAttrs returns the attribute-universe size.
func (inc *Incidence) NumAttrs() int { return len(inc.Attrs) }

// NumObjs returns the object-universe size.
func (inc *Incidence) NumObjs() int { return len(inc.Objs) }

// ObjectColumn returns object o's attribute vector I[:,o].
func (inc *Incidence) ObjectColumn(o int) sparse.Vector { return inc.byObject.Col(o) }

// AttributeRow returns attribute a's object vector I[a,:].
func (inc *Incidence) AttributeRow(a int) sparse.Vector { return inc.byAttr.Col(a) }

// WithEntries returns a new Incidence over the same attribute/object names
// with entries replaced by m (Rows must equal len(Attrs), NumCols must equal
// len(Objs)); used for rescaling without ever mutating the receiver.
func (inc *Incidence) WithEntries(m sparse.Matrix) (*Incidence, error) {
	if m.Rows != len(inc.Attrs) || m.NumCols() != len(inc.Objs) {
		return nil, fcaerr.Wrap(fcaerr.ShapeMismatch, "incidence.WithEntries", "shape does not match attribute/object universes")
	}

	return &Incidence{
		Attrs:    append([]string(nil), inc.Attrs...),
		Objs:     append([]string(nil), inc.Objs...),
		byObject: m,
		byAttr:   transpose(m, len(inc.Objs)),
		isBinary: computeIsBinary(m),
	}, nil
}

// DumpMatrixForTest exposes the internal per-object storage for use in
// WithEntries round-trip tests. Not part of the package's semantic contract.
func (inc *Incidence) DumpMatrixForTest() sparse.Matrix { return inc.byObject }

// ObjectVector builds a Vector over the object universe from sparse pairs —
// a convenience constructor for intent/extent call sites and tests.
func (inc *Incidence) ObjectVector(idx []int, val []float64) sparse.Vector {
	return sparse.NewVector(len(inc.Objs), idx, val)
}

// AttributeVector builds a Vector over the attribute universe from sparse
// pairs — a convenience constructor mirroring ObjectVector.
func (inc *Incidence) AttributeVector(idx []int, val []float64) sparse.Vector {
	return sparse.NewVector(len(inc.Attrs), idx, val)
}

// sortedUnique returns the ascending, duplicate-free contents of xs.
func sortedUnique(xs []float64) []float64 {
	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	out := cp[:0]
	for i, x := range cp {
		if i == 0 || x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out
}
