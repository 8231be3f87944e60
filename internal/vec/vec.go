// Package vec provides the vectorized loop primitives used by the CPU kernels.
//
// Every primitive works on flat, equal-length slices of a single element type.
// float64 work is delegated to algo-vecmath, which picks SSE2/AVX2/NEON
// kernels at runtime; the other element types use 8-wide unrolled loops the
// compiler keeps free of per-element branching.
package vec

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Number is the element constraint for the arithmetic primitives.
type Number interface {
	~uint8 | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

const block = 8

// Mul computes dst[i] = a[i] * b[i] for every i in dst.
// a and b must be at least as long as dst.
func Mul[T Number](dst, a, b []T) {
	n := len(dst)
	if len(a) < n || len(b) < n {
		panic(fmt.Sprintf("vec.Mul: length mismatch dst=%d a=%d b=%d", n, len(a), len(b)))
	}
	if n == 0 {
		return
	}
	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlock(d, any(a).([]float64)[:n], any(b).([]float64)[:n])
		return
	}

	a, b = a[:n], b[:n]
	i := 0
	for ; i+block <= n; i += block {
		d := dst[i : i+block : i+block]
		x := a[i : i+block : i+block]
		y := b[i : i+block : i+block]
		d[0] = x[0] * y[0]
		d[1] = x[1] * y[1]
		d[2] = x[2] * y[2]
		d[3] = x[3] * y[3]
		d[4] = x[4] * y[4]
		d[5] = x[5] * y[5]
		d[6] = x[6] * y[6]
		d[7] = x[7] * y[7]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// Scale computes dst[i] = src[i] * s for every i in dst.
func Scale[T Number](dst, src []T, s T) {
	n := len(dst)
	if len(src) < n {
		panic(fmt.Sprintf("vec.Scale: length mismatch dst=%d src=%d", n, len(src)))
	}
	if n == 0 {
		return
	}
	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlock(d, any(src).([]float64)[:n], any(s).(float64))
		return
	}

	src = src[:n]
	i := 0
	for ; i+block <= n; i += block {
		d := dst[i : i+block : i+block]
		x := src[i : i+block : i+block]
		d[0] = x[0] * s
		d[1] = x[1] * s
		d[2] = x[2] * s
		d[3] = x[3] * s
		d[4] = x[4] * s
		d[5] = x[5] * s
		d[6] = x[6] * s
		d[7] = x[7] * s
	}
	for ; i < n; i++ {
		dst[i] = src[i] * s
	}
}

// MulRows treats mat as a rows×cols row-major matrix and multiplies every row
// by the length-cols vector row: dst[r*cols+c] = mat[r*cols+c] * row[c].
// The row vector is reused as-is for every row; it is never expanded.
func MulRows[T Number](dst, mat, row []T, rows, cols int) {
	checkRows("vec.MulRows", len(dst), len(mat), len(row), rows, cols)
	for r := 0; r < rows; r++ {
		off := r * cols
		Mul(dst[off:off+cols], mat[off:off+cols], row)
	}
}

// And computes dst[i] = a[i] && b[i]; it is multiplication over bools.
func And(dst, a, b []bool) {
	n := len(dst)
	if len(a) < n || len(b) < n {
		panic(fmt.Sprintf("vec.And: length mismatch dst=%d a=%d b=%d", n, len(a), len(b)))
	}
	a, b = a[:n], b[:n]
	for i := range dst {
		dst[i] = a[i] && b[i]
	}
}

// AndScalar computes dst[i] = src[i] && s.
func AndScalar(dst, src []bool, s bool) {
	n := len(dst)
	if len(src) < n {
		panic(fmt.Sprintf("vec.AndScalar: length mismatch dst=%d src=%d", n, len(src)))
	}
	if !s {
		clear(dst)
		return
	}
	copy(dst, src[:n])
}

// AndRows is MulRows for bools.
func AndRows(dst, mat, row []bool, rows, cols int) {
	checkRows("vec.AndRows", len(dst), len(mat), len(row), rows, cols)
	for r := 0; r < rows; r++ {
		off := r * cols
		And(dst[off:off+cols], mat[off:off+cols], row)
	}
}

func checkRows(op string, nDst, nMat, nRow, rows, cols int) {
	if rows < 0 || cols < 0 || nDst < rows*cols || nMat < rows*cols || nRow < cols {
		panic(fmt.Sprintf("%s: bad geometry rows=%d cols=%d dst=%d mat=%d row=%d", op, rows, cols, nDst, nMat, nRow))
	}
}
