package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/born-ml/kernels/internal/tensor"
	"github.com/born-ml/kernels/internal/vec"
)

// loaderFor returns a function reading element i of t converted to C.
// The typed view is fetched once, so t must not be resized while the loader
// is in use.
func loaderFor[C vec.Number](t *tensor.RawTensor) func(int) C {
	switch t.DType() {
	case tensor.Bool:
		s := t.AsBool()
		return func(i int) C {
			if s[i] {
				return 1
			}
			return 0
		}
	case tensor.Uint8:
		s := t.AsUint8()
		return func(i int) C { return C(s[i]) }
	case tensor.Int8:
		s := t.AsInt8()
		return func(i int) C { return C(s[i]) }
	case tensor.Int16:
		s := t.AsInt16()
		return func(i int) C { return C(s[i]) }
	case tensor.Int32:
		s := t.AsInt32()
		return func(i int) C { return C(s[i]) }
	case tensor.Int64:
		s := t.AsInt64()
		return func(i int) C { return C(s[i]) }
	case tensor.Float16:
		s := t.AsFloat16()
		return func(i int) C { return C(s[i].Float32()) }
	case tensor.Float32:
		s := t.AsFloat32()
		return func(i int) C { return C(s[i]) }
	case tensor.Float64:
		s := t.AsFloat64()
		return func(i int) C { return C(s[i]) }
	default:
		panic(fmt.Sprintf("loader: unsupported dtype %v", t.DType()))
	}
}

// storerFor returns a function writing a C value into element i of t,
// converting to t's dtype. Bool stores v != 0.
func storerFor[C vec.Number](t *tensor.RawTensor) func(int, C) {
	switch t.DType() {
	case tensor.Bool:
		s := t.AsBool()
		return func(i int, v C) { s[i] = v != 0 }
	case tensor.Uint8:
		s := t.AsUint8()
		return func(i int, v C) { s[i] = uint8(v) }
	case tensor.Int8:
		s := t.AsInt8()
		return func(i int, v C) { s[i] = int8(v) }
	case tensor.Int16:
		s := t.AsInt16()
		return func(i int, v C) { s[i] = int16(v) }
	case tensor.Int32:
		s := t.AsInt32()
		return func(i int, v C) { s[i] = int32(v) }
	case tensor.Int64:
		s := t.AsInt64()
		return func(i int, v C) { s[i] = int64(v) }
	case tensor.Float16:
		s := t.AsFloat16()
		return func(i int, v C) { s[i] = float16.Fromfloat32(float32(v)) }
	case tensor.Float32:
		s := t.AsFloat32()
		return func(i int, v C) { s[i] = float32(v) }
	case tensor.Float64:
		s := t.AsFloat64()
		return func(i int, v C) { s[i] = float64(v) }
	default:
		panic(fmt.Sprintf("storer: unsupported dtype %v", t.DType()))
	}
}

// scalarAs converts the scalar payload to T. Bool payloads become 0 or 1.
func scalarAs[T vec.Number](s tensor.Scalar) T {
	switch s.Kind() {
	case tensor.ScalarInt:
		return T(s.Int())
	case tensor.ScalarFloat:
		return T(s.Float())
	default:
		if s.Bool() {
			return 1
		}
		return 0
	}
}

// scalarFromTensor reads the single element of t without losing precision.
func scalarFromTensor(t *tensor.RawTensor) tensor.Scalar {
	switch t.DType() {
	case tensor.Bool:
		return tensor.BoolScalar(t.AsBool()[0])
	case tensor.Uint8:
		return tensor.IntScalar(int64(t.AsUint8()[0]))
	case tensor.Int8:
		return tensor.IntScalar(int64(t.AsInt8()[0]))
	case tensor.Int16:
		return tensor.IntScalar(int64(t.AsInt16()[0]))
	case tensor.Int32:
		return tensor.IntScalar(int64(t.AsInt32()[0]))
	case tensor.Int64:
		return tensor.IntScalar(t.AsInt64()[0])
	case tensor.Float16:
		return tensor.FloatScalar(float64(t.AsFloat16()[0].Float32()))
	case tensor.Float32:
		return tensor.FloatScalar(float64(t.AsFloat32()[0]))
	case tensor.Float64:
		return tensor.FloatScalar(t.AsFloat64()[0])
	default:
		panic(fmt.Sprintf("scalarFromTensor: unsupported dtype %v", t.DType()))
	}
}
