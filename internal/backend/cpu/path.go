package cpu

import (
	"github.com/born-ml/kernels/internal/tensor"
)

// Operand is the metadata the dispatcher inspects. *tensor.RawTensor and
// tensor.Meta both satisfy it.
type Operand interface {
	Shape() tensor.Shape
	DType() tensor.DataType
	NumElements() int
}

// ElementwisePath names the execution strategy chosen for a binary op.
type ElementwisePath int

// Execution paths, in order of preference.
const (
	// PathNone is the general casting/broadcasting path.
	PathNone ElementwisePath = iota
	// PathTreatAs1D multiplies both inputs as flat equal-length sequences.
	PathTreatAs1D
	// PathBroadcast2DBy1D multiplies every row of the left matrix by the right vector.
	PathBroadcast2DBy1D
	// PathBroadcast2DBy1DReverseArguments is PathBroadcast2DBy1D with the
	// right operand as the matrix.
	PathBroadcast2DBy1DReverseArguments
)

// String returns a human-readable path name.
func (p ElementwisePath) String() string {
	switch p {
	case PathNone:
		return "none"
	case PathTreatAs1D:
		return "treat_as_1d"
	case PathBroadcast2DBy1D:
		return "broadcast_2d_by_1d"
	case PathBroadcast2DBy1DReverseArguments:
		return "broadcast_2d_by_1d_reverse_arguments"
	default:
		return "unknown"
	}
}

// SelectOptimizedPath picks the fast path for a*b written to out, or PathNone.
//
// Fast paths require a, b and out to share one dtype that is not Float16;
// they never promote. Among homogeneous inputs:
//  1. identical shapes, or equal element counts where either out has the
//     same count or the shapes match once leading 1s are stripped → TreatAs1D
//  2. a strips to [R, C] and b strips to [C] → Broadcast2DBy1D
//  3. a strips to [C] and b strips to [R, C] → Broadcast2DBy1DReverseArguments
func SelectOptimizedPath(a, b, out Operand) ElementwisePath {
	aType, bType, outType := a.DType(), b.DType(), out.DType()
	if aType != bType || aType != outType || aType == tensor.Float16 {
		return PathNone
	}

	aShape, bShape := a.Shape(), b.Shape()
	if aShape.Equal(bShape) ||
		(a.NumElements() == b.NumElements() &&
			(a.NumElements() == out.NumElements() || aShape.EqualIgnoringLeadingOnes(bShape))) {
		return PathTreatAs1D
	}
	return selectBroadcast2DBy1DPath(aShape, bShape)
}

// selectBroadcast2DBy1DPath recognizes a matrix times a row vector once
// leading 1s are stripped. A shape stripped to rank 0 (all ones) never
// counts as a vector.
func selectBroadcast2DBy1DPath(lhs, rhs tensor.Shape) ElementwisePath {
	l := lhs.StripLeadingOnes()
	r := rhs.StripLeadingOnes()

	if l.Rank() == 2 && r.Rank() == 1 && l[1] == r[0] {
		return PathBroadcast2DBy1D
	}
	if l.Rank() == 1 && r.Rank() == 2 && r[1] == l[0] {
		return PathBroadcast2DBy1DReverseArguments
	}
	return PathNone
}
