// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/kernels/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Dynamism()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - In-place resizing via Resize()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32()  // Type-safe access
//	_ = raw.Resize(tensor.Shape{3, 2})
type RawTensor = tensor.RawTensor

// ShapeDynamism controls how an output tensor may be resized.
type ShapeDynamism = tensor.ShapeDynamism

// Shape dynamism modes.
const (
	Static         ShapeDynamism = tensor.Static
	DynamicBound   ShapeDynamism = tensor.DynamicBound
	DynamicUnbound ShapeDynamism = tensor.DynamicUnbound
)

// NewRaw creates a zero-filled tensor that may be resized freely.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// NewRawWithDynamism creates a zero-filled tensor with the given resize policy.
func NewRawWithDynamism(shape Shape, dtype DataType, dynamism ShapeDynamism) (*RawTensor, error) {
	return tensor.NewRawWithDynamism(shape, dtype, dynamism)
}

// FromSlice copies data into a new tensor of the given shape. The data type
// is inferred from T.
//
// Example:
//
//	x, err := tensor.FromSlice([]int32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T Element](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// FromFloat64s converts data to dtype and stores it in a new tensor.
func FromFloat64s(data []float64, shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.FromFloat64s(data, shape, dtype)
}

// Float64s returns every element of r widened to float64.
func Float64s(r *RawTensor) []float64 {
	return tensor.Float64s(r)
}
