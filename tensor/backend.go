// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Backend defines the multiply operators a compute backend implements.
//
// The Out variants write into a caller-provided tensor, resizing it first,
// and report failures as errors wrapping ErrInvalidArgument. The allocating
// variants choose the output type by promotion.
//
// Implementations:
//   - backend/cpu: Pure Go with vectorized fast paths
//
// Example:
//
//	import (
//	    "github.com/born-ml/kernels/tensor"
//	    "github.com/born-ml/kernels/backend/cpu"
//	)
//
//	var backend tensor.Backend = cpu.New()
//	z, err := backend.Mul(x, y)
type Backend interface {
	// MulOut computes out = a * b, broadcasting and promoting.
	MulOut(a, b, out *RawTensor) error
	// Mul is the allocating form of MulOut.
	Mul(a, b *RawTensor) (*RawTensor, error)

	// MulScalarOut computes out = a * s.
	MulScalarOut(a *RawTensor, s Scalar, out *RawTensor) error
	// MulScalar is the allocating form of MulScalarOut.
	MulScalar(a *RawTensor, s Scalar) (*RawTensor, error)

	// Metadata.
	Name() string // Backend name (e.g., "CPU").
}
