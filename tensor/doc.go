// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor types used by the kernels
// backends.
//
// # Overview
//
// A RawTensor is a contiguous row-major buffer with a Shape and a DataType.
// Nine data types are supported:
//   - bool
//   - uint8, int8, int16, int32, int64 (integers)
//   - float16, float32, float64 (floating-point)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/kernels/backend/cpu"
//	    "github.com/born-ml/kernels/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    b, _ := tensor.FromSlice([]float32{10, 20}, tensor.Shape{2})
//	    out, _ := tensor.NewRaw(tensor.Shape{0}, tensor.Float32)
//
//	    if err := backend.MulOut(a, b, out); err != nil {
//	        // errors.Is(err, tensor.ErrInvalidArgument)
//	    }
//	    // out.AsFloat32() == [10 40 30 80]
//	}
//
// # Output Tensors
//
// Operators write into a caller-provided output and resize it to the result
// shape first. How far an output may be resized depends on its ShapeDynamism:
//   - Static: only to its current shape
//   - DynamicBound: to any shape that fits the buffer allocated at creation
//   - DynamicUnbound: to any shape (the buffer grows on demand)
//
// NewRaw creates DynamicUnbound tensors.
//
// # Type Promotion
//
// Mixed-type operands are promoted to a common type with PromoteTypes, and
// the result must be castable to the output type (CanCast). Floats never
// cast to integers and nothing but bool casts to bool.
//
// # Broadcasting
//
// Shapes broadcast following NumPy rules:
//
//	shape, _, _ := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{4}) // [3 4]
package tensor
