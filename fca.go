package fca

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fca/fcaerr"
	"github.com/katalvlaran/fca/implication"
	"github.com/katalvlaran/fca/incidence"
	"github.com/katalvlaran/fca/logic"
	"github.com/katalvlaran/fca/nextclosure"
	"github.com/katalvlaran/fca/sparse"
)

// NewIncidenceFromDense builds an Incidence from a dense, attribute-major
// table (spec.md §6 "Construct I: accept a dense matrix").
func NewIncidenceFromDense(attrs, objs []string, rows [][]float64) (*incidence.Incidence, error) {
	return incidence.New(attrs, objs, rows)
}

// NewIncidenceFromSparse builds an Incidence from a column-compressed
// (CSC) sparse representation (spec.md §6 "...or a sparse representation"):
// colPtr has len(objs)+1 entries, and object o's non-zero attribute indices
// and values are rowIdx[colPtr[o]:colPtr[o+1]] / vals[colPtr[o]:colPtr[o+1]].
func NewIncidenceFromSparse(attrs, objs []string, rowIdx, colPtr []int, vals []float64) (*incidence.Incidence, error) {
	if len(colPtr) != len(objs)+1 {
		return nil, fcaerr.Wrap(fcaerr.ShapeMismatch, "fca.NewIncidenceFromSparse",
			fmt.Sprintf("colPtr must have %d entries, got %d", len(objs)+1, len(colPtr)))
	}
	rows := make([][]float64, len(attrs))
	for a := range rows {
		rows[a] = make([]float64, len(objs))
	}
	for o := range objs {
		start, end := colPtr[o], colPtr[o+1]
		if start < 0 || end > len(rowIdx) || start > end {
			return nil, fcaerr.Wrap(fcaerr.ShapeMismatch, "fca.NewIncidenceFromSparse",
				fmt.Sprintf("invalid colPtr range for object %d", o))
		}
		for k := start; k < end; k++ {
			a := rowIdx[k]
			if a < 0 || a >= len(attrs) {
				return nil, fcaerr.Wrap(fcaerr.ShapeMismatch, "fca.NewIncidenceFromSparse",
					fmt.Sprintf("row index %d out of range for %d attributes", a, len(attrs)))
			}
			rows[a][o] = vals[k]
		}
	}

	return incidence.New(attrs, objs, rows)
}

// NextClosure runs the Next-Closure engine over inc (spec.md §4.5/§6).
func NextClosure(ctx context.Context, inc *incidence.Incidence, mode nextclosure.Mode, opts ...nextclosure.Option) (*nextclosure.Result, error) {
	return nextclosure.Run(ctx, inc, mode, opts...)
}

// NewStore builds an implication.Store over inc's attribute universe from
// aligned LHS/RHS banks (spec.md §6).
func NewStore(inc *incidence.Incidence, lhs, rhs sparse.Matrix) (*implication.Store, error) {
	return implication.NewStore(inc.Attrs, lhs, rhs)
}

// UseLogic, GetLogic and WithLogic re-export the logic package's
// process-scoped active-logic operations for caller convenience (spec.md §6).
func UseLogic(name string) error { return logic.Use(name) }
func GetLogic() logic.Logic      { return logic.Get() }
func WithLogic(name string, fn func() error) error { return logic.With(name, fn) }
