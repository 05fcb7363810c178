package implication_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fca/implication"
	"github.com/katalvlaran/fca/incidence"
	"github.com/katalvlaran/fca/logic"
	"github.com/katalvlaran/fca/nextclosure"
	"github.com/katalvlaran/fca/rewrite"
	"github.com/katalvlaran/fca/sparse"
)

func m3Diamond(t *testing.T) *incidence.Incidence {
	t.Helper()
	attrs := []string{"a1", "a2", "a3"}
	objs := []string{"o1", "o2", "o3"}
	rows := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	inc, err := incidence.New(attrs, objs, rows)
	require.NoError(t, err)

	return inc
}

func vec(dim int, idx ...int) sparse.Vector {
	val := make([]float64, len(idx))
	for i := range val {
		val[i] = 1
	}

	return sparse.NewVector(dim, idx, val)
}

// subsets enumerates every attribute-universe {0,1} vector of dimension n.
func subsets(n int) []sparse.Vector {
	out := make([]sparse.Vector, 0, 1<<n)
	for mask := 0; mask < (1 << n); mask++ {
		var idx []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				idx = append(idx, i)
			}
		}
		out = append(out, vec(n, idx...))
	}

	return out
}

func canonicalBasis(t *testing.T, inc *incidence.Incidence) *implication.Store {
	t.Helper()
	res, err := nextclosure.Run(context.Background(), inc, nextclosure.Implications)
	require.NoError(t, err)
	store, err := implication.NewStore(inc.Attrs, res.LHS, res.RHS)
	require.NoError(t, err)

	return store
}

func storeWithoutRule(t *testing.T, s *implication.Store, i int) *implication.Store {
	t.Helper()
	keep := make([]bool, s.Cardinality())
	for j := range keep {
		keep[j] = j != i
	}
	reduced, err := implication.NewStore(s.Attrs, s.LHS.Keep(keep), s.RHS.Keep(keep))
	require.NoError(t, err)

	return reduced
}

// storeEntailsAll reports whether every rule of b is entailed by a.
func storeEntailsAll(t *testing.T, ctx context.Context, a, b *implication.Store) bool {
	t.Helper()
	ok, err := implication.StoreEntails(ctx, a, b)
	require.NoError(t, err)

	return ok
}

func TestProperty4CanonicalBasisReproducesClosureAndIsMinimal(t *testing.T) {
	require.NoError(t, logic.Use("godel"))
	inc := m3Diamond(t)
	store := canonicalBasis(t, inc)
	ctx := context.Background()

	for _, T := range subsets(3) {
		want, err := inc.Closure(T)
		require.NoError(t, err)
		got, _, err := implication.Closure(ctx, store, T, false)
		require.NoError(t, err)
		eq, err := sparse.Equal(want, got)
		require.NoError(t, err)
		require.True(t, eq, "cl_B(T) must equal cl(T) for T=%v", T.Dense())
	}

	require.True(t, store.Cardinality() > 0)
	for i := 0; i < store.Cardinality(); i++ {
		reduced := storeWithoutRule(t, store, i)
		broke := false
		for _, T := range subsets(3) {
			want, err := inc.Closure(T)
			require.NoError(t, err)
			got, _, err := implication.Closure(ctx, reduced, T, false)
			require.NoError(t, err)
			eq, err := sparse.Equal(want, got)
			require.NoError(t, err)
			if !eq {
				broke = true
				break
			}
		}
		require.True(t, broke, "removing rule %d must break cl_B(T)=cl(T) for some T", i)
	}
}

func TestProperty5SimplificationPreservesClosureAndShrinks(t *testing.T) {
	require.NoError(t, logic.Use("godel"))
	const dim = 5 // a,b,c,d,e
	lhs := sparse.NewMatrix(dim)
	lhs = lhs.AppendCol(vec(dim, 0))
	lhs = lhs.AppendCol(vec(dim, 0, 1))
	lhs = lhs.AppendCol(vec(dim, 0, 1, 2))
	rhs := sparse.NewMatrix(dim)
	rhs = rhs.AppendCol(vec(dim, 1))
	rhs = rhs.AppendCol(vec(dim, 2, 3))
	rhs = rhs.AppendCol(vec(dim, 3, 4))
	attrs := []string{"a", "b", "c", "d", "e"}

	store, err := implication.NewStore(attrs, lhs, rhs)
	require.NoError(t, err)

	simpLHS, simpRHS, err := rewrite.Apply(lhs, rhs, 0, "simplification")
	require.NoError(t, err)
	simplified, err := implication.NewStore(attrs, simpLHS, simpRHS)
	require.NoError(t, err)

	require.LessOrEqual(t, simplified.Cardinality(), store.Cardinality())

	sizeSum := func(s *implication.Store) float64 {
		var total float64
		for i := 0; i < s.Cardinality(); i++ {
			l, r := s.Size(i)
			total += l + r
		}

		return total
	}
	require.LessOrEqual(t, sizeSum(simplified), sizeSum(store))

	ctx := context.Background()
	for _, T := range subsets(dim) {
		want, _, err := implication.Closure(ctx, store, T, false)
		require.NoError(t, err)
		got, _, err := implication.Closure(ctx, simplified, T, false)
		require.NoError(t, err)
		eq, err := sparse.Equal(want, got)
		require.NoError(t, err)
		require.True(t, eq, "simplification must preserve closure for T=%v", T.Dense())
	}
}

func TestProperty6HoldsInIsAllTrueForDerivedBasis(t *testing.T) {
	require.NoError(t, logic.Use("godel"))
	inc := m3Diamond(t)
	store := canonicalBasis(t, inc)

	holds, err := store.HoldsIn(inc)
	require.NoError(t, err)
	for i, ok := range holds {
		require.True(t, ok, "rule %d must hold in the incidence it was derived from", i)
	}
}

func TestProperty7EquivalenceIsReflexiveSymmetricTransitive(t *testing.T) {
	require.NoError(t, logic.Use("godel"))
	inc := m3Diamond(t)
	a := canonicalBasis(t, inc)
	ctx := context.Background()

	// reflexive
	aEq, err := storeEquivalent(ctx, t, a, a)
	require.NoError(t, err)
	require.True(t, aEq)

	// symmetric: build b by composing a duplicated rule into a (closure-preserving)
	dupLHS := a.LHS.AppendCol(a.LHS.Col(0))
	dupRHS := a.RHS.AppendCol(a.RHS.Col(0))
	composedLHS, composedRHS, err := rewrite.Apply(dupLHS, dupRHS, 0, "composition")
	require.NoError(t, err)
	b, err := implication.NewStore(a.Attrs, composedLHS, composedRHS)
	require.NoError(t, err)

	abEq, err := storeEquivalent(ctx, t, a, b)
	require.NoError(t, err)
	baEq, err := storeEquivalent(ctx, t, b, a)
	require.NoError(t, err)
	require.Equal(t, abEq, baEq, "equivalence must be symmetric")
	require.True(t, abEq, "duplicating then composing a rule must not change the entailed theory")

	// transitive: c is b simplified, should still be equivalent to both a and b
	simpLHS, simpRHS, err := rewrite.Apply(b.LHS, b.RHS, 0, "simplification", "rsimp")
	require.NoError(t, err)
	c, err := implication.NewStore(a.Attrs, simpLHS, simpRHS)
	require.NoError(t, err)

	bcEq, err := storeEquivalent(ctx, t, b, c)
	require.NoError(t, err)
	acEq, err := storeEquivalent(ctx, t, a, c)
	require.NoError(t, err)
	require.True(t, abEq && bcEq, "precondition for transitivity")
	require.True(t, acEq, "A≡B and B≡C must imply A≡C")
}

func storeEquivalent(ctx context.Context, t *testing.T, a, b *implication.Store) (bool, error) {
	t.Helper()

	return implication.StoreEquivalent(ctx, a, b)
}

func TestS5RsimpRoundTripIsEquivalentAndMinimalRemoval(t *testing.T) {
	require.NoError(t, logic.Use("godel"))
	inc := m3Diamond(t)
	b := canonicalBasis(t, inc)
	ctx := context.Background()

	simpLHS, simpRHS, err := rewrite.Apply(b.LHS, b.RHS, 0, "simplification", "rsimp")
	require.NoError(t, err)
	bPrime, err := implication.NewStore(b.Attrs, simpLHS, simpRHS)
	require.NoError(t, err)

	require.True(t, storeEntailsAll(t, ctx, b, bPrime), "B must entail every rule of B'")
	require.True(t, storeEntailsAll(t, ctx, bPrime, b), "B' must entail every rule of B")

	for i := 0; i < bPrime.Cardinality(); i++ {
		reduced := storeWithoutRule(t, bPrime, i)
		eitherWay := storeEntailsAll(t, ctx, b, reduced) && storeEntailsAll(t, ctx, reduced, b)
		require.False(t, eitherWay, "removing rule %d from B' must break equivalence with B", i)
	}
}

func TestS6RespectsIsAllTrueForFuzzyIncidenceAndItsBasis(t *testing.T) {
	require.NoError(t, logic.Use("lukasiewicz"))
	attrs := []string{"p1", "p2", "p3", "p4", "p5", "p6"}
	objs := []string{"o1", "o2", "o3", "o4", "o5", "o6"}
	rows := [][]float64{
		{1.0, 0.8, 0.6, 0.4, 0.2, 0.0},
		{0.9, 1.0, 0.7, 0.5, 0.3, 0.1},
		{0.2, 0.3, 1.0, 0.9, 0.6, 0.4},
		{0.1, 0.2, 0.8, 1.0, 0.7, 0.5},
		{0.0, 0.1, 0.4, 0.6, 1.0, 0.8},
		{0.3, 0.2, 0.5, 0.7, 0.9, 1.0},
	}
	inc, err := incidence.New(attrs, objs, rows)
	require.NoError(t, err)

	store := canonicalBasis(t, inc)

	sets := make([]sparse.Vector, len(objs))
	for o := range objs {
		sets[o] = inc.ObjectColumn(o)
	}

	table, err := implication.Respects(sets, store)
	require.NoError(t, err)
	for o, row := range table {
		for j, ok := range row {
			require.True(t, ok, "object %d must respect rule %d", o, j)
		}
	}
}
