package cpu

import (
	"testing"

	"github.com/born-ml/kernels/internal/tensor"
)

func benchmarkMulOut(b *testing.B, aShape, bShape tensor.Shape, aType, bType, outType tensor.DataType) {
	b.Helper()
	backend := New()

	x, err := tensor.NewRaw(aShape, aType)
	if err != nil {
		b.Fatal(err)
	}
	y, err := tensor.NewRaw(bShape, bType)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < x.NumElements(); i++ {
		x.SetFloat64At(i, float64(i%13))
	}
	for i := 0; i < y.NumElements(); i++ {
		y.SetFloat64At(i, float64(i%7))
	}
	out, err := tensor.NewRaw(tensor.Shape{0}, outType)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := backend.MulOut(x, y, out); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMulOut_Flat_Float32 benchmarks the same-shape fast path.
func BenchmarkMulOut_Flat_Float32(b *testing.B) {
	benchmarkMulOut(b, tensor.Shape{256, 256}, tensor.Shape{256, 256}, tensor.Float32, tensor.Float32, tensor.Float32)
}

// BenchmarkMulOut_Flat_Float64 benchmarks the same-shape fast path on the SIMD float64 kernels.
func BenchmarkMulOut_Flat_Float64(b *testing.B) {
	benchmarkMulOut(b, tensor.Shape{256, 256}, tensor.Shape{256, 256}, tensor.Float64, tensor.Float64, tensor.Float64)
}

// BenchmarkMulOut_Broadcast2DBy1D benchmarks the row-broadcast fast path.
func BenchmarkMulOut_Broadcast2DBy1D(b *testing.B) {
	benchmarkMulOut(b, tensor.Shape{256, 256}, tensor.Shape{256}, tensor.Float32, tensor.Float32, tensor.Float32)
}

// BenchmarkMulOut_ScalarBroadcast benchmarks the single-element shortcut.
func BenchmarkMulOut_ScalarBroadcast(b *testing.B) {
	benchmarkMulOut(b, tensor.Shape{256, 256}, tensor.Shape{1}, tensor.Float32, tensor.Float32, tensor.Float32)
}

// BenchmarkMulOut_General_Promote benchmarks the casting path without broadcasting.
func BenchmarkMulOut_General_Promote(b *testing.B) {
	benchmarkMulOut(b, tensor.Shape{256, 256}, tensor.Shape{256, 256}, tensor.Int32, tensor.Float32, tensor.Float32)
}

// BenchmarkMulOut_General_Broadcast benchmarks the fully general strided path.
func BenchmarkMulOut_General_Broadcast(b *testing.B) {
	benchmarkMulOut(b, tensor.Shape{16, 1, 256}, tensor.Shape{16, 1}, tensor.Float32, tensor.Float32, tensor.Float32)
}

func BenchmarkMulScalarOut_Float32(b *testing.B) {
	backend := New()
	x, err := tensor.NewRaw(tensor.Shape{256, 256}, tensor.Float32)
	if err != nil {
		b.Fatal(err)
	}
	out, err := tensor.NewRaw(tensor.Shape{256, 256}, tensor.Float32)
	if err != nil {
		b.Fatal(err)
	}
	s := tensor.FloatScalar(1.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := backend.MulScalarOut(x, s, out); err != nil {
			b.Fatal(err)
		}
	}
}
