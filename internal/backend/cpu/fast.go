package cpu

import (
	"fmt"

	"github.com/born-ml/kernels/internal/tensor"
	"github.com/born-ml/kernels/internal/vec"
)

// Fast paths. All operands share one dtype (never Float16) and out has
// already been resized; the preconditions are the path selector's.

// mulScalarFast computes out = a * s elementwise.
func mulScalarFast(out, a *tensor.RawTensor, s tensor.Scalar) {
	switch out.DType() {
	case tensor.Bool:
		vec.AndScalar(out.AsBool(), a.AsBool(), s.Bool())
	case tensor.Uint8:
		vec.Scale(out.AsUint8(), a.AsUint8(), scalarAs[uint8](s))
	case tensor.Int8:
		vec.Scale(out.AsInt8(), a.AsInt8(), scalarAs[int8](s))
	case tensor.Int16:
		vec.Scale(out.AsInt16(), a.AsInt16(), scalarAs[int16](s))
	case tensor.Int32:
		vec.Scale(out.AsInt32(), a.AsInt32(), scalarAs[int32](s))
	case tensor.Int64:
		vec.Scale(out.AsInt64(), a.AsInt64(), scalarAs[int64](s))
	case tensor.Float32:
		vec.Scale(out.AsFloat32(), a.AsFloat32(), scalarAs[float32](s))
	case tensor.Float64:
		vec.Scale(out.AsFloat64(), a.AsFloat64(), scalarAs[float64](s))
	default:
		panic(fmt.Sprintf("mulScalarFast: unsupported dtype %v", out.DType()))
	}
}

// mulFlat computes out = a * b over flat equal-length buffers.
func mulFlat(out, a, b *tensor.RawTensor) {
	switch out.DType() {
	case tensor.Bool:
		vec.And(out.AsBool(), a.AsBool(), b.AsBool())
	case tensor.Uint8:
		vec.Mul(out.AsUint8(), a.AsUint8(), b.AsUint8())
	case tensor.Int8:
		vec.Mul(out.AsInt8(), a.AsInt8(), b.AsInt8())
	case tensor.Int16:
		vec.Mul(out.AsInt16(), a.AsInt16(), b.AsInt16())
	case tensor.Int32:
		vec.Mul(out.AsInt32(), a.AsInt32(), b.AsInt32())
	case tensor.Int64:
		vec.Mul(out.AsInt64(), a.AsInt64(), b.AsInt64())
	case tensor.Float32:
		vec.Mul(out.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		vec.Mul(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("mulFlat: unsupported dtype %v", out.DType()))
	}
}

// mulBroadcast2DBy1D multiplies each row of the matrix lhs by the vector rhs.
// Rows and columns come from lhs's two innermost extents.
func mulBroadcast2DBy1D(out, lhs, rhs *tensor.RawTensor) {
	shape := lhs.Shape()
	rows, cols := shape[len(shape)-2], shape[len(shape)-1]

	switch out.DType() {
	case tensor.Bool:
		vec.AndRows(out.AsBool(), lhs.AsBool(), rhs.AsBool(), rows, cols)
	case tensor.Uint8:
		vec.MulRows(out.AsUint8(), lhs.AsUint8(), rhs.AsUint8(), rows, cols)
	case tensor.Int8:
		vec.MulRows(out.AsInt8(), lhs.AsInt8(), rhs.AsInt8(), rows, cols)
	case tensor.Int16:
		vec.MulRows(out.AsInt16(), lhs.AsInt16(), rhs.AsInt16(), rows, cols)
	case tensor.Int32:
		vec.MulRows(out.AsInt32(), lhs.AsInt32(), rhs.AsInt32(), rows, cols)
	case tensor.Int64:
		vec.MulRows(out.AsInt64(), lhs.AsInt64(), rhs.AsInt64(), rows, cols)
	case tensor.Float32:
		vec.MulRows(out.AsFloat32(), lhs.AsFloat32(), rhs.AsFloat32(), rows, cols)
	case tensor.Float64:
		vec.MulRows(out.AsFloat64(), lhs.AsFloat64(), rhs.AsFloat64(), rows, cols)
	default:
		panic(fmt.Sprintf("mulBroadcast2DBy1D: unsupported dtype %v", out.DType()))
	}
}
