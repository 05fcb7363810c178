package implication

import (
	"fmt"

	"github.com/katalvlaran/fca/fcaerr"
	"github.com/katalvlaran/fca/incidence"
	"github.com/katalvlaran/fca/sparse"
)

// Store is a set of implications over a fixed attribute universe: two
// aligned sparse.Matrix banks where column i is the rule LHS[:,i] ⇒
// RHS[:,i] (spec.md §3, §4.6). The store owns its columns.
type Store struct {
	Attrs    []string
	LHS, RHS sparse.Matrix
}

// NewStore validates alignment (equal column counts, Rows matching
// len(attrs)) and returns a Store.
func NewStore(attrs []string, lhs, rhs sparse.Matrix) (*Store, error) {
	if lhs.NumCols() != rhs.NumCols() {
		return nil, fcaerr.Wrap(fcaerr.ShapeMismatch, "implication.NewStore",
			fmt.Sprintf("%d LHS columns != %d RHS columns", lhs.NumCols(), rhs.NumCols()))
	}
	if lhs.Rows != len(attrs) || rhs.Rows != len(attrs) {
		return nil, fcaerr.Wrap(fcaerr.ShapeMismatch, "implication.NewStore", "bank rows must equal len(attrs)")
	}

	return &Store{Attrs: append([]string(nil), attrs...), LHS: lhs, RHS: rhs}, nil
}

// Cardinality returns the number of rules (spec.md §4.6).
func (s *Store) Cardinality() int { return s.LHS.NumCols() }

// Size returns (|LHS[:,i]|, |RHS[:,i]|) as cardinalities (spec.md §4.6).
func (s *Store) Size(i int) (float64, float64) {
	return s.LHS.Col(i).Cardinality(), s.RHS.Col(i).Cardinality()
}

// Support returns the fraction of inc's objects whose attribute vector
// satisfies LHS[:,i] pointwise (spec.md §4.6).
func (s *Store) Support(i int, inc *incidence.Incidence) (float64, error) {
	if inc.NumAttrs() != len(s.Attrs) {
		return 0, fcaerr.Wrap(fcaerr.ShapeMismatch, "Store.Support", "incidence attribute universe mismatch")
	}
	lhs := s.LHS.Col(i)
	if inc.NumObjs() == 0 {
		return 0, nil
	}
	hits := 0
	for o := 0; o < inc.NumObjs(); o++ {
		ok, err := sparse.Subset(lhs, inc.ObjectColumn(o))
		if err != nil {
			return 0, err
		}
		if ok {
			hits++
		}
	}

	return float64(hits) / float64(inc.NumObjs()), nil
}

// HoldsIn returns, for each rule, whether every object's attribute vector in
// inc satisfies LHS⇒RHS (spec.md §4.6, §4.9 holds_in/S6 respects).
func (s *Store) HoldsIn(inc *incidence.Incidence) ([]bool, error) {
	if inc.NumAttrs() != len(s.Attrs) {
		return nil, fcaerr.Wrap(fcaerr.ShapeMismatch, "Store.HoldsIn", "incidence attribute universe mismatch")
	}
	out := make([]bool, s.Cardinality())
	for i := 0; i < s.Cardinality(); i++ {
		lhs, rhs := s.LHS.Col(i), s.RHS.Col(i)
		holds := true
		for o := 0; o < inc.NumObjs() && holds; o++ {
			col := inc.ObjectColumn(o)
			lhsOK, err := sparse.Subset(lhs, col)
			if err != nil {
				return nil, err
			}
			if !lhsOK {
				continue
			}
			rhsOK, err := sparse.Subset(rhs, col)
			if err != nil {
				return nil, err
			}
			if !rhsOK {
				holds = false
			}
		}
		out[i] = holds
	}

	return out, nil
}

// Respects reports, for each (set, rule) pair, whether set respects rule:
// set ⊉ LHS or set ⊇ RHS (spec.md §4.6).
func Respects(sets []sparse.Vector, s *Store) ([][]bool, error) {
	out := make([][]bool, len(sets))
	for si, set := range sets {
		row := make([]bool, s.Cardinality())
		for j := 0; j < s.Cardinality(); j++ {
			lhsOK, err := sparse.Subset(s.LHS.Col(j), set)
			if err != nil {
				return nil, err
			}
			if !lhsOK {
				row[j] = true
				continue
			}
			rhsOK, err := sparse.Subset(s.RHS.Col(j), set)
			if err != nil {
				return nil, err
			}
			row[j] = rhsOK
		}
		out[si] = row
	}

	return out, nil
}

// FilterSpec describes a Store.Filter predicate (spec.md §4.6).
type FilterSpec struct {
	LhsIn      []int   // rule kept only if every attribute here is in LHS
	RhsIn      []int   // rule kept only if every attribute here is in RHS
	NotLhs     []int   // rule kept only if none of these attributes is in LHS
	MinSupport float64 // requires an Incidence; zero value disables the check
	Incidence  *incidence.Incidence
	MinLHSSize float64
	MinRHSSize float64
}

// Filter returns the sub-store of rules matching spec (spec.md §4.6).
func (s *Store) Filter(spec FilterSpec) (*Store, error) {
	keep := make([]bool, s.Cardinality())
	for i := range keep {
		lhs, rhs := s.LHS.Col(i), s.RHS.Col(i)
		ok := true
		for _, a := range spec.LhsIn {
			if lhs.At(a) == 0 {
				ok = false
				break
			}
		}
		if ok {
			for _, a := range spec.RhsIn {
				if rhs.At(a) == 0 {
					ok = false
					break
				}
			}
		}
		if ok {
			for _, a := range spec.NotLhs {
				if lhs.At(a) != 0 {
					ok = false
					break
				}
			}
		}
		if ok && spec.MinLHSSize > 0 && lhs.Cardinality() < spec.MinLHSSize {
			ok = false
		}
		if ok && spec.MinRHSSize > 0 && rhs.Cardinality() < spec.MinRHSSize {
			ok = false
		}
		if ok && spec.MinSupport > 0 && spec.Incidence != nil {
			sup, err := s.Support(i, spec.Incidence)
			if err != nil {
				return nil, err
			}
			if sup < spec.MinSupport {
				ok = false
			}
		}
		keep[i] = ok
	}

	return &Store{Attrs: s.Attrs, LHS: s.LHS.Keep(keep), RHS: s.RHS.Keep(keep)}, nil
}
