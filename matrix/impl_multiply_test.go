// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/colmat/internal/oracle"
	"github.com/katalvlaran/colmat/matrix"
	"github.com/katalvlaran/colmat/rng"
)

// MultiplySuite groups the product properties: the worked example, shape
// errors, agreement with independent references and invariance under the
// layout, kernel and worker options.
type MultiplySuite struct {
	suite.Suite
	g *rng.Rand
}

func (s *MultiplySuite) SetupTest() {
	s.g = rng.New(20240611)
}

// TestWorkedExample: [[1,2,3],[4,5,6]] · [[7,8],[9,10],[11,12]] = [[58,64],[139,154]].
func (s *MultiplySuite) TestWorkedExample() {
	t := s.T()
	for _, opt := range []matrix.Option{matrix.WithPadding(), matrix.WithNoPadding(), matrix.WithScalarKernel()} {
		a := mustFromRows(t, [][]float32{{1, 2, 3}, {4, 5, 6}}, opt)
		b := mustFromRows(t, [][]float32{{7, 8}, {9, 10}, {11, 12}}, opt)

		c, err := matrix.Mul(a, b)
		require.NoError(t, err)
		require.Equal(t, [][]float32{{58, 64}, {139, 154}}, toRows(t, c))

		ci, err := matrix.Mul(
			mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}}, opt),
			mustFromRows(t, [][]int{{7, 8}, {9, 10}, {11, 12}}, opt))
		require.NoError(t, err)
		require.Equal(t, [][]int{{58, 64}, {139, 154}}, toRows(t, ci))
	}
}

// TestDimensionMismatch: inner dimensions must agree; nothing is produced.
func (s *MultiplySuite) TestDimensionMismatch() {
	t := s.T()
	a, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)

	c, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Nil(t, c)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = a.Mul(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestShapeAndIdentity checks the result shape and the identity laws.
func (s *MultiplySuite) TestShapeAndIdentity() {
	t := s.T()
	a := mustFromRows(t, randomRows[int64](s.g, 4, 7, -20, 20))
	i4, err := matrix.NewIdentity[int64](4)
	require.NoError(t, err)
	i7, err := matrix.NewIdentity[int64](7)
	require.NoError(t, err)

	left, err := matrix.Mul(i4, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, left))

	right, err := matrix.Product(a, i7)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, right))
	r, c := right.Shape()
	require.Equal(t, 4, r)
	require.Equal(t, 7, c)
}

// TestRandomShapes_Integers compares against the naive triple loop for
// random shapes in 1..50.
func (s *MultiplySuite) TestRandomShapes_Integers() {
	t := s.T()
	for trial := 0; trial < 25; trial++ {
		m, k, n := s.g.IntRange(1, 51), s.g.IntRange(1, 51), s.g.IntRange(1, 51)
		ar, br := randomRows[int32](s.g, m, k, -50, 50), randomRows[int32](s.g, k, n, -50, 50)

		c, err := matrix.Mul(mustFromRows(t, ar), mustFromRows(t, br))
		require.NoError(t, err)
		require.Equal(t, naiveMul(ar, br), toRows(t, c), "trial %d: %dx%d * %dx%d", trial, m, k, k, n)
	}
}

// TestRandomShapes_Oracle compares float results against gonum.
func (s *MultiplySuite) TestRandomShapes_Oracle() {
	t := s.T()
	for trial := 0; trial < 25; trial++ {
		m, k, n := s.g.IntRange(1, 51), s.g.IntRange(1, 51), s.g.IntRange(1, 51)
		a64 := mustFromRows(t, randomRows[float64](s.g, m, k, 0, 100))
		b64 := mustFromRows(t, randomRows[float64](s.g, k, n, 0, 100))
		a32 := mustFromRows(t, randomRows[float32](s.g, m, k, 0, 100))
		b32 := mustFromRows(t, randomRows[float32](s.g, k, n, 0, 100))

		c64, err := matrix.Mul(a64, b64)
		require.NoError(t, err)
		want64, err := oracle.Product(a64, b64)
		require.NoError(t, err)
		require.NoError(t, oracle.Compare(c64, want64, 1e-12))

		c32, err := matrix.Mul(a32, b32)
		require.NoError(t, err)
		want32, err := oracle.Product(a32, b32)
		require.NoError(t, err)
		require.NoError(t, oracle.Compare(c32, want32, 1e-6))
	}
}

// TestWorkerCountInvariance: integer results are bit-identical for any worker
// count; float results agree within rounding.
func (s *MultiplySuite) TestWorkerCountInvariance() {
	t := s.T()
	ar, br := randomRows[int](s.g, 37, 23, -9, 9), randomRows[int](s.g, 23, 41, -9, 9)
	fr, gr := randomRows[float64](s.g, 37, 23, -9, 9), randomRows[float64](s.g, 23, 41, -9, 9)
	for i := range fr {
		for j := range fr[i] {
			fr[i][j] /= 7
		}
	}

	serial := []matrix.Option{matrix.WithWorkers(1)}
	var baseInt *matrix.Dense[int]
	var baseF *matrix.Dense[float64]
	for _, w := range []int{1, 2, 3, 8, 64} {
		opts := []matrix.Option{matrix.WithWorkers(w), matrix.WithParallelThreshold(0)}
		ci, err := matrix.Mul(mustFromRows(t, ar, opts...), mustFromRows(t, br, opts...))
		require.NoError(t, err)
		cf, err := matrix.Mul(mustFromRows(t, fr, opts...), mustFromRows(t, gr, opts...))
		require.NoError(t, err)

		if baseInt == nil {
			baseInt, err = matrix.Mul(mustFromRows(t, ar, serial...), mustFromRows(t, br, serial...))
			require.NoError(t, err)
			baseF, err = matrix.Mul(mustFromRows(t, fr, serial...), mustFromRows(t, gr, serial...))
			require.NoError(t, err)
		}
		require.True(t, matrix.Equal(baseInt, ci), "workers=%d", w)
		ok, err := matrix.AllClose(cf, baseF, 1e-12, 1e-12)
		require.NoError(t, err)
		require.True(t, ok, "workers=%d", w)
	}
}

// TestKernelInvariance: the lane and scalar kernels agree on integral data
// and within rounding on fractional data.
func (s *MultiplySuite) TestKernelInvariance() {
	t := s.T()
	for _, k := range []int{1, 2, 3, 4, 5, 7, 8, 9, 31} {
		ar, br := randomRows[float32](s.g, 6, k, -30, 30), randomRows[float32](s.g, k, 5, -30, 30)

		vec, err := matrix.Mul(mustFromRows(t, ar), mustFromRows(t, br))
		require.NoError(t, err)
		sca, err := matrix.Mul(mustFromRows(t, ar, matrix.WithScalarKernel()), mustFromRows(t, br, matrix.WithScalarKernel()))
		require.NoError(t, err)
		require.Equal(t, matrix.KernelScalar, sca.KernelName())
		require.True(t, matrix.Equal(vec, sca), "k=%d", k)

		for i := range ar {
			for j := range ar[i] {
				ar[i][j] *= 0.1
			}
		}
		vec, err = matrix.Mul(mustFromRows(t, ar), mustFromRows(t, br))
		require.NoError(t, err)
		sca, err = matrix.Mul(mustFromRows(t, ar, matrix.WithScalarKernel()), mustFromRows(t, br, matrix.WithScalarKernel()))
		require.NoError(t, err)
		ok, err := matrix.AllClose(vec, sca, 1e-5, 1e-2)
		require.NoError(t, err)
		require.True(t, ok, "k=%d", k)
	}
}

// TestPaddingIsInert poisons the padding with NaN (and a large integer) and
// checks that no padded cell reaches a result.
func (s *MultiplySuite) TestPaddingIsInert() {
	t := s.T()
	ar, br := randomRows[float64](s.g, 3, 5, -4, 4), randomRows[float64](s.g, 5, 2, -4, 4)
	a, err := matrix.NewFilled(3, 5, math.NaN())
	require.NoError(t, err)
	b, err := matrix.NewFilled(5, 2, math.NaN())
	require.NoError(t, err)
	for i := range ar {
		for j := range ar[i] {
			require.NoError(t, a.Set(i, j, ar[i][j]))
		}
	}
	for i := range br {
		for j := range br[i] {
			require.NoError(t, b.Set(i, j, br[i][j]))
		}
	}

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, naiveMul(ar, br), toRows(t, c))

	ai, err := matrix.NewFilled[int](2, 3, 1<<30)
	require.NoError(t, err)
	bi, err := matrix.NewFilled[int](3, 2, 1<<30)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, ai.Set(i, j, i+j))
			require.NoError(t, bi.Set(j, i, i*j))
		}
	}
	ci, err := matrix.Mul(ai, bi)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 5}, {0, 8}}, toRows(t, ci))
}

// TestInputsUnchanged: Mul never writes its operands.
func (s *MultiplySuite) TestInputsUnchanged() {
	t := s.T()
	a := mustFromRows(t, randomRows[uint16](s.g, 9, 4, 0, 100), matrix.WithWorkers(4), matrix.WithParallelThreshold(0))
	b := mustFromRows(t, randomRows[uint16](s.g, 4, 6, 0, 100))
	ac, bc := a.Clone(), b.Clone()

	_, err := a.Mul(b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, ac))
	require.True(t, matrix.Equal(b, bc))
}

func TestMultiplySuite(t *testing.T) {
	suite.Run(t, new(MultiplySuite))
}
