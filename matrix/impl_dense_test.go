// Package matrix_test contains unit tests for construction and access.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colmat/matrix"
)

// TestNewDenseInvalidDimensions ensures that constructors reject non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 5}, {5, 0}, {0, 0}, {-1, 3}, {3, -2}} {
		_, err := matrix.NewDense[float32](tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%dx%d", tc.r, tc.c)

		_, err = matrix.NewFilled[int](tc.r, tc.c, 7, matrix.WithNoPadding())
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%dx%d", tc.r, tc.c)
	}
}

// TestNewFilled_EveryCellReadsFill checks the 3×4 fill-7 scenario on both layouts.
func TestNewFilled_EveryCellReadsFill(t *testing.T) {
	for _, opt := range []matrix.Option{matrix.WithPadding(), matrix.WithNoPadding()} {
		m, err := matrix.NewFilled[int32](3, 4, 7, opt)
		require.NoError(t, err)
		require.Equal(t, 3, m.Rows())
		require.Equal(t, 4, m.Cols())
		require.Equal(t, int32(7), m.FillValue())

		count := 0
		for i := 0; i < 3; i++ {
			for j := 0; j < 4; j++ {
				v, err := m.At(i, j)
				require.NoError(t, err)
				require.Equal(t, int32(7), v)
				count++
			}
		}
		require.Equal(t, 12, count)
	}
}

// TestRowsColsShape verifies dimension accessors.
func TestRowsColsShape(t *testing.T) {
	m, err := matrix.NewDense[float64](3, 4)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, m.Rows(), r)
	require.Equal(t, m.Cols(), c)
}

// TestAtSetOutOfRange ensures accessors fail with ErrOutOfRange and leave the matrix intact.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewFilled[uint16](2, 3, 9)
	require.NoError(t, err)

	bad := []struct{ r, c int }{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {2, 3}, {100, 100}}
	for _, b := range bad {
		_, err = m.At(b.r, b.c)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", b.r, b.c)

		err = m.Set(b.r, b.c, 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", b.r, b.c)

		p, err := m.Ref(b.r, b.c)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Ref(%d,%d)", b.r, b.c)
		require.Nil(t, p)
	}

	_, err = m.At(0, 3)
	require.EqualError(t, err, "Dense.At(0,3): matrix: index out of range")

	// failed writes did not touch anything
	require.Equal(t, [][]uint16{{9, 9, 9}, {9, 9, 9}}, toRows(t, m))
}

// TestSetAt_LastWriteWins covers the read-after-write half of the bounds invariant.
func TestSetAt_LastWriteWins(t *testing.T) {
	m, err := matrix.NewFilled[float32](4, 5, -1)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	require.NoError(t, m.Set(3, 4, 2))
	require.NoError(t, m.Set(1, 2, 8.5))

	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			switch {
			case i == 1 && j == 2:
				require.Equal(t, float32(8.5), v)
			case i == 3 && j == 4:
				require.Equal(t, float32(2), v)
			default:
				require.Equal(t, float32(-1), v)
			}
		}
	}
}

// TestRef_WritesThrough checks the mutable-slot accessor.
func TestRef_WritesThrough(t *testing.T) {
	m, err := matrix.NewDense[int](2, 2)
	require.NoError(t, err)

	p, err := m.Ref(1, 0)
	require.NoError(t, err)
	*p += 5
	*p *= 3

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 15, v)
}

// TestFromRows covers literal construction and its failure modes.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]int8{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, [][]int8{{1, 2, 3}, {4, 5, 6}}, toRows(t, m))

	_, err = matrix.FromRows([][]int8{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]int8{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]int8{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.Panics(t, func() { matrix.MustFromRows([][]int8{{1}, {2, 3}}) })
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	for _, opt := range []matrix.Option{matrix.WithPadding(), matrix.WithNoPadding()} {
		m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}}, opt)
		c := m.Clone()
		require.True(t, matrix.Equal(m, c))
		require.Equal(t, m.Layout(), c.Layout())
		require.Equal(t, m.KernelName(), c.KernelName())
		require.Equal(t, m.FillValue(), c.FillValue())

		require.NoError(t, c.Set(0, 0, 99))
		v, err := m.At(0, 0)
		require.NoError(t, err)
		require.Equal(t, 1.0, v)
		require.False(t, matrix.Equal(m, c))
	}
}

// TestStringOutput checks the debug rendering: one line per row, space separated.
func TestStringOutput(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2.5}, {3, -4}})
	require.Equal(t, "1 2.5\n3 -4\n", m.String())

	single, err := matrix.NewFilled[uint8](1, 1, 200)
	require.NoError(t, err)
	require.Equal(t, "200\n", single.String())
}

// TestIdentityAndZeros covers the facades.
func TestIdentityAndZeros(t *testing.T) {
	id, err := matrix.NewIdentity[int](3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, toRows(t, id))

	z, err := matrix.NewZeros[float32](2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{0, 0, 0}, {0, 0, 0}}, toRows(t, z))

	_, err = matrix.NewIdentity[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
