package incidence

// Grades returns G_a = sort({0} ∪ {I[a,o] : o} ∪ {1}) for attribute a, the
// only values Next-Closure ever assigns to position a (spec.md §4.4). In the
// binary case every G_a == {0,1}.
//
// Complexity: O(nnz(row a) log nnz(row a)); computed on demand rather than
// cached, since Next-Closure calls it at most once per attribute per run.
func (inc *Incidence) Grades(a int) []float64 {
	row := inc.AttributeRow(a)
	values := make([]float64, 0, len(row.Val)+2)
	values = append(values, 0, 1)
	values = append(values, row.Val...)

	return sortedUnique(values)
}

// GradeSet returns the global grade set G = {0} ∪ {I[a,o]} ∪ {1} over the
// whole incidence (spec.md §3).
func (inc *Incidence) GradeSet() []float64 {
	values := make([]float64, 0, len(inc.Attrs)*2)
	values = append(values, 0, 1)
	for a := range inc.Attrs {
		values = append(values, inc.AttributeRow(a).Val...)
	}

	return sortedUnique(values)
}
