package cpu

import (
	"github.com/born-ml/kernels/internal/tensor"
)

// MulOut computes out = a * b with NumPy-style broadcasting.
//
// out is resized to the result shape before any element is written. When
// a, b and out share a dtype (other than Float16) a fast path is used;
// otherwise both operands are promoted to a common type and the product is
// cast to out's dtype. Every failure wraps tensor.ErrInvalidArgument; out's
// contents are unspecified after a failure.
func (cpu *CPUBackend) MulOut(a, b, out *tensor.RawTensor) error {
	plan, err := planMul(a, b, out)
	if err != nil {
		return err
	}
	if err := prepareOutput(plan.Op, out, plan.OutShape); err != nil {
		return err
	}
	cpu.logPlan(plan)

	x, y := a, b
	if plan.Swapped {
		x, y = b, a
	}

	if plan.ScalarBroadcast {
		debugAssert(y.NumElements() == 1, "scalar broadcast with %d-element operand", y.NumElements())
		mulScalarFast(out, x, scalarFromTensor(y))
		return nil
	}

	switch plan.Path {
	case PathTreatAs1D:
		debugAssert(x.NumElements() == y.NumElements(), "treat_as_1d with %v and %v", x.Shape(), y.Shape())
		mulFlat(out, x, y)
	case PathBroadcast2DBy1D:
		mulBroadcast2DBy1D(out, x, y)
	case PathBroadcast2DBy1DReverseArguments:
		mulBroadcast2DBy1D(out, y, x)
	default:
		entry := lookupGeneralKernel(x.DType(), y.DType(), out.DType())
		debugAssert(entry.run != nil, "no kernel for %v * %v -> %v", x.DType(), y.DType(), out.DType())
		debugAssert(entry.common == plan.Compute, "kernel computes in %v, plan wants %v", entry.common, plan.Compute)
		if entry.run == nil {
			return tensor.InvalidArgument(plan.Op,
				"unsupported dtype combination %v * %v -> %v", x.DType(), y.DType(), out.DType())
		}
		entry.run(x, y, out)
	}
	return nil
}

// Mul returns a * b in a new tensor whose dtype is the promotion of a and b.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	out, err := tensor.NewRaw(a.Shape(), tensor.PromoteTypes(a.DType(), b.DType(), false))
	if err != nil {
		return nil, tensor.WrapInvalidArgument(opMul, err)
	}
	if err := cpu.MulOut(a, b, out); err != nil {
		return nil, err
	}
	return out, nil
}
