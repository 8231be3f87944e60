// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/kernels/internal/tensor"
)

// Type aliases for public API

// Element is the constraint for Go element types backing a tensor.
type Element = tensor.Element

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Bool    DataType = tensor.Bool
	Uint8   DataType = tensor.Uint8
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Float16 DataType = tensor.Float16
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Meta is shape and dtype without data, enough to plan an operation.
type Meta = tensor.Meta

// NewMeta describes a tensor that has not been allocated.
func NewMeta(shape Shape, dtype DataType) Meta {
	return tensor.NewMeta(shape, dtype)
}

// Scalar is a single int, float or bool operand.
type Scalar = tensor.Scalar

// IntScalar wraps an integer scalar.
func IntScalar(v int64) Scalar { return tensor.IntScalar(v) }

// FloatScalar wraps a floating-point scalar.
func FloatScalar(v float64) Scalar { return tensor.FloatScalar(v) }

// BoolScalar wraps a boolean scalar.
func BoolScalar(v bool) Scalar { return tensor.BoolScalar(v) }

// ParseScalar reads "true"/"false", an integer literal or a float literal.
func ParseScalar(text string) (Scalar, error) {
	return tensor.ParseScalar(text)
}

// ParseDataType resolves a data type from its name, e.g. "float32" or "half".
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}

// Errors reported by operators. Every operator failure wraps
// ErrInvalidArgument; resize failures additionally wrap ErrResizeFailed.
var (
	ErrInvalidArgument = tensor.ErrInvalidArgument
	ErrResizeFailed    = tensor.ErrResizeFailed
	ErrInvalidShape    = tensor.ErrInvalidShape
)

// OpError records which operator failed and why.
type OpError = tensor.OpError

// Type promotion

// PromoteTypes returns the smallest type both a and b convert to without
// losing their kind. With halfToFloat set, a Float16 result widens to Float32.
//
// Example:
//
//	tensor.PromoteTypes(tensor.Int32, tensor.Float32, false) // Float32
//	tensor.PromoteTypes(tensor.Bool, tensor.Int8, false)     // Int8
func PromoteTypes(a, b DataType, halfToFloat bool) DataType {
	return tensor.PromoteTypes(a, b, halfToFloat)
}

// PromoteTypeWithScalar returns the type of t combined with a scalar. The
// scalar only raises the kind (bool → integer → float), never the width.
func PromoteTypeWithScalar(t DataType, s Scalar, halfToFloat bool) DataType {
	return tensor.PromoteTypeWithScalar(t, s, halfToFloat)
}

// CanCast reports whether values of type from may be stored as type to.
func CanCast(from, to DataType) bool {
	return tensor.CanCast(from, to)
}

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
// Returns the resulting shape and a flag reporting whether any dimension was broadcast.
//
// Example:
//
//	resultShape, broadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], broadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
