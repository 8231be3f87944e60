// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for elementwise multiply.
//
// # Overview
//
// Each multiply is dispatched to one of these strategies:
//   - scalar_broadcast: one operand has a single element and all dtypes match
//   - treat_as_1d: both operands hold the same elements in the same order
//   - broadcast_2d_by_1d: every row of a matrix times one vector
//   - general: full NumPy broadcasting with type promotion
//
// The first three run vectorized loops over a single dtype. The general path
// loads both operands into the promoted type, multiplies there and casts the
// product to the output type.
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
//	    a, _ := tensor.FromSlice([]int32{1, 2, 3}, tensor.Shape{3})
//	    out, _ := tensor.NewRaw(tensor.Shape{0}, tensor.Int64)
//	    err := backend.MulScalarOut(a, tensor.IntScalar(4), out) // [4 8 12]
//	}
//
// ExplainPath reports the chosen strategy without running anything.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Calls that write different
// output tensors never share mutable state.
package cpu
