package tensor

import (
	"fmt"
	"unsafe"

	"github.com/x448/float16"
)

// ShapeDynamism controls whether and how a tensor may change shape after
// creation.
type ShapeDynamism int

// Supported shape dynamism modes.
const (
	// Static tensors never change shape; Resize succeeds only as a no-op.
	Static ShapeDynamism = iota
	// DynamicBound tensors may take any shape whose data fits the buffer
	// allocated at creation.
	DynamicBound
	// DynamicUnbound tensors may take any shape; the buffer is reallocated
	// when it is too small.
	DynamicUnbound
)

// String returns a human-readable name for the dynamism mode.
func (d ShapeDynamism) String() string {
	switch d {
	case Static:
		return "static"
	case DynamicBound:
		return "dynamic_bound"
	case DynamicUnbound:
		return "dynamic_unbound"
	default:
		return "unknown"
	}
}

// RawTensor is the low-level tensor representation: a contiguous row-major
// byte buffer plus shape and type information.
//
// Typed views returned by AsFloat32() and friends alias the buffer. A Resize
// may replace the buffer, so views must be fetched again after resizing.
type RawTensor struct {
	data      []byte        // Backing storage, len(data) is the capacity in bytes
	shape     Shape         // Tensor dimensions
	stride    []int         // Memory strides (row-major)
	dtype     DataType      // Runtime type information
	dynamism  ShapeDynamism // Resize policy
	numel     int           // Cached shape.NumElements()
	reallocCt int           // Number of buffer reallocations performed by Resize
}

// NewRaw creates a new dynamically sized RawTensor with the given shape and type.
// Memory is zero-initialized.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return NewRawWithDynamism(shape, dtype, DynamicUnbound)
}

// NewRawWithDynamism creates a new RawTensor with an explicit resize policy.
func NewRawWithDynamism(shape Shape, dtype DataType, dynamism ShapeDynamism) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("invalid dtype %d", int(dtype))
	}

	numel := shape.NumElements()
	return &RawTensor{
		data:     make([]byte, numel*dtype.Size()),
		shape:    shape.Clone(),
		stride:   shape.ComputeStrides(),
		dtype:    dtype,
		dynamism: dynamism,
		numel:    numel,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Dynamism returns the tensor's resize policy.
func (r *RawTensor) Dynamism() ShapeDynamism {
	return r.dynamism
}

// Dim returns the tensor's rank.
func (r *RawTensor) Dim() int {
	return len(r.shape)
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.numel
}

// ByteSize returns the size in bytes of the live elements.
func (r *RawTensor) ByteSize() int {
	return r.numel * r.dtype.Size()
}

// Capacity returns the allocated buffer size in bytes.
func (r *RawTensor) Capacity() int {
	return len(r.data)
}

// Resize changes the logical shape of the tensor according to its dynamism.
// The element contents after a resize that changes the element count are
// unspecified. Errors wrap ErrResizeFailed.
func (r *RawTensor) Resize(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrResizeFailed, err)
	}
	if shape.Equal(r.shape) {
		return nil
	}

	numel := shape.NumElements()
	need := numel * r.dtype.Size()

	switch r.dynamism {
	case Static:
		return fmt.Errorf("%w: static tensor of shape %v cannot become %v", ErrResizeFailed, r.shape, shape)
	case DynamicBound:
		if need > r.Capacity() {
			return fmt.Errorf("%w: shape %v needs %d bytes, capacity is %d", ErrResizeFailed, shape, need, r.Capacity())
		}
	case DynamicUnbound:
		if need > r.Capacity() {
			r.data = make([]byte, need)
			r.reallocCt++
		}
	default:
		return fmt.Errorf("%w: unknown dynamism %v", ErrResizeFailed, r.dynamism)
	}

	r.shape = shape.Clone()
	r.stride = shape.ComputeStrides()
	r.numel = numel
	return nil
}

// Reallocations reports how many times Resize replaced the buffer.
func (r *RawTensor) Reallocations() int {
	return r.reallocCt
}

// view interprets the buffer as []T after checking the dtype.
func view[T any](r *RawTensor, want DataType) []T {
	if r.dtype != want {
		panic(fmt.Errorf("%w: tensor is %s, not %s", ErrDTypeMismatch, r.dtype, want))
	}
	if r.numel == 0 {
		return []T{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&r.data[0])), r.numel)
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool { return view[bool](r, Bool) }

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 { return view[uint8](r, Uint8) }

// AsInt8 interprets the data as []int8.
// Panics if the tensor's dtype is not Int8.
func (r *RawTensor) AsInt8() []int8 { return view[int8](r, Int8) }

// AsInt16 interprets the data as []int16.
// Panics if the tensor's dtype is not Int16.
func (r *RawTensor) AsInt16() []int16 { return view[int16](r, Int16) }

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 { return view[int32](r, Int32) }

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 { return view[int64](r, Int64) }

// AsFloat16 interprets the data as []float16.Float16.
// Panics if the tensor's dtype is not Float16.
func (r *RawTensor) AsFloat16() []float16.Float16 { return view[float16.Float16](r, Float16) }

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 { return view[float32](r, Float32) }

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 { return view[float64](r, Float64) }

// Float64At returns element i widened to float64. Bool reads as 0 or 1.
func (r *RawTensor) Float64At(i int) float64 {
	switch r.dtype {
	case Bool:
		if r.AsBool()[i] {
			return 1
		}
		return 0
	case Uint8:
		return float64(r.AsUint8()[i])
	case Int8:
		return float64(r.AsInt8()[i])
	case Int16:
		return float64(r.AsInt16()[i])
	case Int32:
		return float64(r.AsInt32()[i])
	case Int64:
		return float64(r.AsInt64()[i])
	case Float16:
		return float64(r.AsFloat16()[i].Float32())
	case Float32:
		return float64(r.AsFloat32()[i])
	case Float64:
		return r.AsFloat64()[i]
	default:
		panic(fmt.Sprintf("Float64At: unsupported dtype %s", r.dtype))
	}
}

// SetFloat64At stores v into element i, converting to the tensor's dtype.
// Bool stores v != 0.
func (r *RawTensor) SetFloat64At(i int, v float64) {
	switch r.dtype {
	case Bool:
		r.AsBool()[i] = v != 0
	case Uint8:
		r.AsUint8()[i] = uint8(v)
	case Int8:
		r.AsInt8()[i] = int8(v)
	case Int16:
		r.AsInt16()[i] = int16(v)
	case Int32:
		r.AsInt32()[i] = int32(v)
	case Int64:
		r.AsInt64()[i] = int64(v)
	case Float16:
		r.AsFloat16()[i] = float16.Fromfloat32(float32(v))
	case Float32:
		r.AsFloat32()[i] = float32(v)
	case Float64:
		r.AsFloat64()[i] = v
	default:
		panic(fmt.Sprintf("SetFloat64At: unsupported dtype %s", r.dtype))
	}
}
