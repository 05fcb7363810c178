package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fca/logic"
	"github.com/katalvlaran/fca/rewrite"
	"github.com/katalvlaran/fca/sparse"
)

func vec(dim int, idx ...int) sparse.Vector {
	val := make([]float64, len(idx))
	for i := range val {
		val[i] = 1
	}

	return sparse.NewVector(dim, idx, val)
}

// S4: synthetic basis {a}=>{b}, {a,b}=>{c,d}, {a,b,c}=>{d,e}.
func TestS4SimplificationShrinksThirdRuleOnly(t *testing.T) {
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

	before := 0.0
	for j := 0; j < rhs.NumCols(); j++ {
		before += rhs.Col(j).Cardinality()
	}

	newLHS, newRHS, err := rewrite.Apply(lhs, rhs, 0, "simplification")
	require.NoError(t, err)
	require.Equal(t, 3, newLHS.NumCols(), "cardinality must be preserved")

	after := 0.0
	for j := 0; j < newRHS.NumCols(); j++ {
		after += newRHS.Col(j).Cardinality()
	}
	require.Less(t, after, before, "sum of RHS cardinalities must strictly decrease")

	require.Equal(t, []float64{0, 1, 0, 0, 0}, newRHS.Col(0).Dense())
	require.Equal(t, []float64{0, 0, 1, 1, 0}, newRHS.Col(1).Dense(), "second rule's RHS is unchanged")
	require.Equal(t, []float64{0, 0, 0, 0, 1}, newRHS.Col(2).Dense(), "third rule's RHS shrinks to {e}")
}

func TestReductionDropsTautology(t *testing.T) {
	const dim = 3
	lhs := sparse.NewMatrix(dim)
	lhs = lhs.AppendCol(vec(dim, 0, 1))
	rhs := sparse.NewMatrix(dim)
	rhs = rhs.AppendCol(vec(dim, 0)) // RHS ⊆ LHS: tautology

	newLHS, newRHS, err := rewrite.Apply(lhs, rhs, 0, "reduction")
	require.NoError(t, err)
	require.Equal(t, 0, newLHS.NumCols())
	require.Equal(t, 0, newRHS.NumCols())
}

func TestCompositionMergesIdenticalLHS(t *testing.T) {
	const dim = 4
	lhs := sparse.NewMatrix(dim)
	lhs = lhs.AppendCol(vec(dim, 0))
	lhs = lhs.AppendCol(vec(dim, 0))
	rhs := sparse.NewMatrix(dim)
	rhs = rhs.AppendCol(vec(dim, 1))
	rhs = rhs.AppendCol(vec(dim, 2))

	newLHS, newRHS, err := rewrite.Apply(lhs, rhs, 0, "composition")
	require.NoError(t, err)
	require.Equal(t, 1, newLHS.NumCols())
	require.Equal(t, []float64{0, 1, 1, 0}, newRHS.Col(0).Dense())
}

func TestGeneralizationDropsRedundantSpecificRule(t *testing.T) {
	const dim = 3
	// rule0: {a,b}=>{c} ; rule1: {a}=>{c} (weaker premise, same conclusion)
	lhs := sparse.NewMatrix(dim)
	lhs = lhs.AppendCol(vec(dim, 0, 1))
	lhs = lhs.AppendCol(vec(dim, 0))
	rhs := sparse.NewMatrix(dim)
	rhs = rhs.AppendCol(vec(dim, 2))
	rhs = rhs.AppendCol(vec(dim, 2))

	newLHS, _, err := rewrite.Apply(lhs, rhs, 0, "generalization")
	require.NoError(t, err)
	require.Equal(t, 1, newLHS.NumCols())
	require.Equal(t, []float64{1, 0, 0}, newLHS.Col(0).Dense(), "only the weaker rule survives")
}

func TestFixedColumnsProtectedFromDropAndModification(t *testing.T) {
	const dim = 3
	lhs := sparse.NewMatrix(dim)
	lhs = lhs.AppendCol(vec(dim, 0, 1)) // fixed, tautological RHS below
	rhs := sparse.NewMatrix(dim)
	rhs = rhs.AppendCol(vec(dim, 0))

	newLHS, newRHS, err := rewrite.Apply(lhs, rhs, 1, "reduction")
	require.NoError(t, err)
	require.Equal(t, 1, newLHS.NumCols(), "fixed column must survive reduction")
	require.Equal(t, 1, newRHS.NumCols())
}

func TestUnknownRewriteName(t *testing.T) {
	const dim = 2
	lhs := sparse.NewMatrix(dim)
	rhs := sparse.NewMatrix(dim)
	_, _, err := rewrite.Apply(lhs, rhs, 0, "does-not-exist")
	require.Error(t, err)
}
