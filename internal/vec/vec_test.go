package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSizes = []int{0, 1, 2, 3, 7, 8, 9, 15, 16, 17, 31, 33, 100}

func mulRef[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func seq[T Number](n int, start, step T) []T {
	out := make([]T, n)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}
	return out
}

func checkMul[T Number](t *testing.T, n int) {
	t.Helper()
	a := seq[T](n, 1, 1)
	b := seq[T](n, 2, 1)
	got := make([]T, n)
	want := make([]T, n)

	Mul(got, a, b)
	mulRef(want, a, b)
	assert.Equal(t, want, got)
}

func TestMul(t *testing.T) {
	for _, n := range testSizes {
		checkMul[int8](t, n)
		checkMul[uint8](t, n)
		checkMul[int16](t, n)
		checkMul[int32](t, n)
		checkMul[int64](t, n)
		checkMul[float32](t, n)
		checkMul[float64](t, n)
	}
}

func TestMul_InPlace(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := []float32{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	Mul(a, a, b)
	assert.Equal(t, []float32{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}, a)
}

func TestMul_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		Mul(make([]int32, 4), make([]int32, 3), make([]int32, 4))
	})
}

func TestScale(t *testing.T) {
	scales := []float64{0, 1, -1, 0.5, math.Pi}
	for _, n := range testSizes {
		for _, s := range scales {
			src := seq[float64](n, -3, 0.25)
			got := make([]float64, n)
			Scale(got, src, s)
			for i := range got {
				assert.InDelta(t, src[i]*s, got[i], 1e-12)
			}
		}
	}

	src32 := seq[int32](17, -8, 1)
	dst32 := make([]int32, 17)
	Scale(dst32, src32, 3)
	for i := range dst32 {
		assert.Equal(t, src32[i]*3, dst32[i])
	}
}

func TestMulRows(t *testing.T) {
	rows, cols := 3, 4
	mat := seq[float32](rows*cols, 1, 1)
	row := []float32{1, 10, 100, 1000}
	dst := make([]float32, rows*cols)

	MulRows(dst, mat, row, rows, cols)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assert.Equal(t, mat[r*cols+c]*row[c], dst[r*cols+c], "row %d col %d", r, c)
		}
	}
}

func TestMulRows_Float64(t *testing.T) {
	mat := []float64{1, 2, 3, 4}
	row := []float64{10, 20}
	dst := make([]float64, 4)
	MulRows(dst, mat, row, 2, 2)
	assert.Equal(t, []float64{10, 40, 30, 80}, dst)
}

func TestMulRows_BadGeometryPanics(t *testing.T) {
	assert.Panics(t, func() {
		MulRows(make([]int64, 6), make([]int64, 6), make([]int64, 2), 2, 3)
	})
}

func TestBoolPrimitives(t *testing.T) {
	a := []bool{true, true, false, false}
	b := []bool{true, false, true, false}

	dst := make([]bool, 4)
	And(dst, a, b)
	assert.Equal(t, []bool{true, false, false, false}, dst)

	AndScalar(dst, a, true)
	assert.Equal(t, a, dst)

	AndScalar(dst, a, false)
	assert.Equal(t, []bool{false, false, false, false}, dst)

	rows := make([]bool, 4)
	AndRows(rows, a, []bool{true, false}, 2, 2)
	assert.Equal(t, []bool{true, false, false, false}, rows)
}

func TestDetectFeatures(t *testing.T) {
	f := DetectFeatures()
	require.NotEmpty(t, f.Architecture)
	assert.GreaterOrEqual(t, f.VectorBits, 128)
	assert.NotEmpty(t, f.Level())

	assert.Equal(t, f.VectorBits/64, f.Lanes(8))
	assert.Equal(t, f.VectorBits/32, f.Lanes(4))
	assert.Panics(t, func() { f.Lanes(0) })

	// Cached.
	assert.Equal(t, f, DetectFeatures())
}
