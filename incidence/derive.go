package incidence

import (
	"github.com/katalvlaran/fca/fcaerr"
	"github.com/katalvlaran/fca/logic"
	"github.com/katalvlaran/fca/sparse"
)

// Intent computes S↑ for a fuzzy object set S: S↑(a) = inf_o (S(o) → I[a,o]),
// using the active logic (spec.md §4.3). S must be an object-universe
// Vector; the result is an attribute-universe Vector.
//
// Complexity: O(len(Attrs) * |support(S)|) — every attribute not in the
// residuum's domain contributes 1 and never lowers the infimum, so only
// S's support is iterated per attribute (spec.md §4.3 "only values Next-
// Closure ever assigns" rationale extends to this derivation).
func (inc *Incidence) Intent(s sparse.Vector) (sparse.Vector, error) {
	if s.Dim != len(inc.Objs) {
		return sparse.Vector{}, fcaerr.Wrap(fcaerr.ShapeMismatch, "Incidence.Intent", "expected an object-universe vector")
	}
	l := logic.Get()
	idx := make([]int, 0, len(inc.Attrs))
	val := make([]float64, 0, len(inc.Attrs))
	for a := 0; a < len(inc.Attrs); a++ {
		row := inc.AttributeRow(a)
		inf := 1.0
		for k, o := range s.Idx {
			r := l.Residuum(s.Val[k], row.At(o))
			if r < inf {
				inf = r
			}
		}
		if inf != 0 {
			idx = append(idx, a)
			val = append(val, inf)
		}
	}

	return sparse.NewVector(len(inc.Attrs), idx, val), nil
}

// Extent computes T↓ for a fuzzy attribute set T: T↓(o) = inf_a (T(a) →
// I[a,o]) (spec.md §4.3). T must be an attribute-universe Vector; the
// result is an object-universe Vector.
func (inc *Incidence) Extent(t sparse.Vector) (sparse.Vector, error) {
	if t.Dim != len(inc.Attrs) {
		return sparse.Vector{}, fcaerr.Wrap(fcaerr.ShapeMismatch, "Incidence.Extent", "expected an attribute-universe vector")
	}
	l := logic.Get()
	idx := make([]int, 0, len(inc.Objs))
	val := make([]float64, 0, len(inc.Objs))
	for o := 0; o < len(inc.Objs); o++ {
		col := inc.ObjectColumn(o)
		inf := 1.0
		for k, a := range t.Idx {
			r := l.Residuum(t.Val[k], col.At(a))
			if r < inf {
				inf = r
			}
		}
		if inf != 0 {
			idx = append(idx, o)
			val = append(val, inf)
		}
	}

	return sparse.NewVector(len(inc.Objs), idx, val), nil
}

// Closure computes cl(T) = (T↓)↑ (spec.md §4.3). Idempotent, extensive, and
// monotone for every T of the right universe.
func (inc *Incidence) Closure(t sparse.Vector) (sparse.Vector, error) {
	extent, err := inc.Extent(t)
	if err != nil {
		return sparse.Vector{}, err
	}

	return inc.Intent(extent)
}
