package cpu

import (
	"github.com/born-ml/kernels/internal/tensor"
)

// MulScalarOut computes out = a * s.
//
// The common type comes from a's dtype and the scalar's kind; out's dtype
// must be reachable from it. Float16 math is carried out in float32.
func (cpu *CPUBackend) MulScalarOut(a *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) error {
	plan, err := planMulScalar(a, s, out)
	if err != nil {
		return err
	}
	if err := prepareOutput(plan.Op, out, plan.OutShape); err != nil {
		return err
	}
	cpu.logPlan(plan)

	if plan.ScalarBroadcast {
		mulScalarFast(out, a, s)
		return nil
	}

	run := lookupScalarKernel(plan.Compute)
	debugAssert(run != nil, "no scalar kernel for %v", plan.Compute)
	if run == nil {
		return tensor.InvalidArgument(plan.Op, "unsupported compute type %v", plan.Compute)
	}
	run(a, s, out)
	return nil
}

// MulScalar returns a * s in a new tensor typed by scalar promotion.
func (cpu *CPUBackend) MulScalar(a *tensor.RawTensor, s tensor.Scalar) (*tensor.RawTensor, error) {
	out, err := tensor.NewRaw(a.Shape(), tensor.PromoteTypeWithScalar(a.DType(), s, false))
	if err != nil {
		return nil, tensor.WrapInvalidArgument(opMulScalar, err)
	}
	if err := cpu.MulScalarOut(a, s, out); err != nil {
		return nil, err
	}
	return out, nil
}
