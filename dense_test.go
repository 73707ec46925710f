package boxlcp_test

import (
	"testing"

	"github.com/setanarut/boxlcp"
	"github.com/stretchr/testify/require"
)

func TestDenseAtSet(t *testing.T) {
	d := boxlcp.NewDense(2, 3)
	d.Set(0, 2, 7)
	d.Set(1, 0, -3)
	require.Equal(t, 7.0, d.At(0, 2))
	require.Equal(t, -3.0, d.At(1, 0))
	require.Equal(t, 2, d.Rows())
	require.Equal(t, 3, d.Cols())
}

func TestDenseFromRows(t *testing.T) {
	d := boxlcp.DenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.Equal(t, 1.0, d.At(0, 0))
	require.Equal(t, 4.0, d.At(1, 1))
}

func TestDenseCloneIsIndependent(t *testing.T) {
	d := boxlcp.DenseFromRows([][]float64{{1, 2}, {3, 4}})
	c := d.Clone()
	c.Set(0, 0, 99)
	require.Equal(t, 1.0, d.At(0, 0))
	require.Equal(t, 99.0, c.At(0, 0))
}

func TestDenseRowIsBackingSlice(t *testing.T) {
	d := boxlcp.DenseFromRows([][]float64{{1, 2}, {3, 4}})
	row := d.Row(0)
	row[1] = 42
	require.Equal(t, 42.0, d.At(0, 1))
}
