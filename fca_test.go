package fca_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fca"
	"github.com/katalvlaran/fca/nextclosure"
)

func TestNewIncidenceFromSparseMatchesDense(t *testing.T) {
	attrs := []string{"a1", "a2", "a3"}
	objs := []string{"o1", "o2", "o3"}
	rows := [][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
	dense, err := fca.NewIncidenceFromDense(attrs, objs, rows)
	require.NoError(t, err)

	// CSC form of the same table: object 0 has a2,a3; object 1 has a1,a3;
	// object 2 has a1,a2.
	rowIdx := []int{1, 2, 0, 2, 0, 1}
	colPtr := []int{0, 2, 4, 6}
	vals := []float64{1, 1, 1, 1, 1, 1}
	sparse, err := fca.NewIncidenceFromSparse(attrs, objs, rowIdx, colPtr, vals)
	require.NoError(t, err)

	require.NoError(t, fca.UseLogic("godel"))
	for o := range objs {
		require.Equal(t, dense.ObjectColumn(o).Dense(), sparse.ObjectColumn(o).Dense())
	}
}

func TestNextClosureFacadeResultFeedsNewStore(t *testing.T) {
	require.NoError(t, fca.UseLogic("godel"))
	attrs := []string{"a1", "a2", "a3"}
	objs := []string{"o1", "o2", "o3"}
	rows := [][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
	inc, err := fca.NewIncidenceFromDense(attrs, objs, rows)
	require.NoError(t, err)

	res, err := fca.NextClosure(context.Background(), inc, nextclosure.Implications)
	require.NoError(t, err)
	require.NotEmpty(t, res.Intents)

	store, err := fca.NewStore(inc, res.LHS, res.RHS)
	require.NoError(t, err)
	require.Equal(t, res.LHS.NumCols(), store.Cardinality())
}

func TestWithLogicRestoresPreviousOnReturn(t *testing.T) {
	require.NoError(t, fca.UseLogic("godel"))
	err := fca.WithLogic("lukasiewicz", func() error {
		require.Equal(t, "lukasiewicz", fca.GetLogic().Name)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "godel", fca.GetLogic().Name)
}
