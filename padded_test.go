package boxlcp_test

import (
	"testing"

	"github.com/setanarut/boxlcp"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	require.Equal(t, 0, boxlcp.Pad(0))
	require.Equal(t, 0, boxlcp.Pad(-3))
	require.Equal(t, 4, boxlcp.Pad(1))
	require.Equal(t, 4, boxlcp.Pad(4))
	require.Equal(t, 8, boxlcp.Pad(5))
}

func TestPaddedAtSet(t *testing.T) {
	p := boxlcp.NewPadded(3)
	require.Equal(t, 4, p.Stride)
	p.Set(0, 0, 2)
	p.Set(1, 2, 5)
	require.Equal(t, 2.0, p.At(0, 0))
	require.Equal(t, 5.0, p.At(1, 2))
	require.Equal(t, 2.0, p.Diag(0))
}

func TestPaddedRowIsPadded(t *testing.T) {
	p := boxlcp.NewPadded(3)
	row := p.Row(1)
	require.Len(t, row, p.Stride)
}

func TestFromDense(t *testing.T) {
	d := boxlcp.DenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	p := boxlcp.FromDense(d)
	require.Equal(t, 3, p.N)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, d.At(i, j), p.At(i, j))
		}
	}
}
