// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"log/slog"

	internalcpu "github.com/born-ml/kernels/internal/backend/cpu"
	"github.com/born-ml/kernels/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of the multiply operators
// with vectorized fast paths where the operands allow them.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option = internalcpu.Option

// WithLogger routes dispatch records to logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return internalcpu.WithLogger(logger)
}

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/kernels/backend/cpu"
//	    "github.com/born-ml/kernels/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New(cpu.WithLogger(slog.Default()))
//	    z, err := backend.Mul(x, y)
//	}
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// Plan describes how a multiply will execute.
type Plan = internalcpu.Plan

// ElementwisePath names a shape fast path.
type ElementwisePath = internalcpu.ElementwisePath

// Fast paths. PathNone means the general broadcasting loop.
const (
	PathNone                            = internalcpu.PathNone
	PathTreatAs1D                       = internalcpu.PathTreatAs1D
	PathBroadcast2DBy1D                 = internalcpu.PathBroadcast2DBy1D
	PathBroadcast2DBy1DReverseArguments = internalcpu.PathBroadcast2DBy1DReverseArguments
)

// Operand is anything with a shape and a dtype: a *tensor.RawTensor or a
// tensor.Meta.
type Operand = internalcpu.Operand

// ExplainPath reports how MulOut would execute a*b into out without
// touching any buffer. It returns the same error MulOut would.
func ExplainPath(a, b, out Operand) (Plan, error) {
	return internalcpu.ExplainPath(a, b, out)
}

// ExplainScalarPath is ExplainPath for MulScalarOut.
func ExplainScalarPath(a Operand, s tensor.Scalar, out Operand) (Plan, error) {
	return internalcpu.ExplainScalarPath(a, s, out)
}

// SelectOptimizedPath picks the fast path for a*b written to out, or PathNone.
func SelectOptimizedPath(a, b, out Operand) ElementwisePath {
	return internalcpu.SelectOptimizedPath(a, b, out)
}
