package tensor

import "fmt"

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
//
// Example:
//
//	t, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
func FromSlice[T Element](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	copy(view[T](raw, dtype), data)
	return raw, nil
}

// FromFloat64s creates a tensor of the given dtype, converting each value
// the way SetFloat64At does.
func FromFloat64s(data []float64, shape Shape, dtype DataType) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i, v := range data {
		raw.SetFloat64At(i, v)
	}
	return raw, nil
}

// Float64s returns every element of r widened to float64, in row-major order.
func Float64s(r *RawTensor) []float64 {
	out := make([]float64, r.NumElements())
	for i := range out {
		out[i] = r.Float64At(i)
	}
	return out
}
