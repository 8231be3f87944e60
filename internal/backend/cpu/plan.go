package cpu

import (
	"github.com/born-ml/kernels/internal/tensor"
)

const (
	opMul       = "mul.out"
	opMulScalar = "mul.Scalar_out"
)

// Plan describes how a multiply will execute. It is computed from operand
// metadata only; no buffer is read or written.
type Plan struct {
	Op string

	// Path is the shape/type fast path, or PathNone for the general loop.
	Path ElementwisePath

	// ScalarBroadcast is set when one operand is a single element and every
	// dtype matches, so the product is a plain scale of the other operand.
	ScalarBroadcast bool

	// Swapped is set when the left operand was the single-element one and
	// the operands were exchanged before selecting a path.
	Swapped bool

	// Compute is the dtype every multiply is carried out in.
	Compute tensor.DataType

	// OutShape is the shape out is resized to.
	OutShape tensor.Shape
}

// Strategy names the execution strategy for logs and the CLI.
func (p Plan) Strategy() string {
	switch {
	case p.ScalarBroadcast:
		return "scalar_broadcast"
	case p.Path == PathNone:
		return "general"
	default:
		return p.Path.String()
	}
}

// ExplainPath returns the plan MulOut would follow for a*b written to out.
// Errors are the ones MulOut would report before touching out.
func ExplainPath(a, b, out Operand) (Plan, error) {
	return planMul(a, b, out)
}

// ExplainScalarPath returns the plan MulScalarOut would follow for a*s.
func ExplainScalarPath(a Operand, s tensor.Scalar, out Operand) (Plan, error) {
	return planMulScalar(a, s, out)
}

func homogeneous(a, b, out Operand) bool {
	t := a.DType()
	return t == b.DType() && t == out.DType() && t != tensor.Float16
}

func planMul(a, b, out Operand) (Plan, error) {
	plan := Plan{Op: opMul}

	if b.NumElements() != 1 && a.NumElements() == 1 {
		// Multiplication commutes; put the single element on the right.
		plan.Swapped = true
		a, b = b, a
	}

	if b.NumElements() == 1 && homogeneous(a, b, out) {
		plan.ScalarBroadcast = true
		plan.Compute = a.DType()
		plan.OutShape = a.Shape().Clone()
		return plan, nil
	}

	plan.Path = SelectOptimizedPath(a, b, out)
	switch plan.Path {
	case PathTreatAs1D, PathBroadcast2DBy1D:
		plan.Compute = a.DType()
		plan.OutShape = a.Shape().Clone()
		return plan, nil
	case PathBroadcast2DBy1DReverseArguments:
		plan.Compute = a.DType()
		plan.OutShape = b.Shape().Clone()
		return plan, nil
	}

	common := tensor.PromoteTypes(a.DType(), b.DType(), true)
	if !tensor.CanCast(common, out.DType()) {
		return Plan{}, tensor.InvalidArgument(opMul,
			"cannot cast common type %v to output type %v", common, out.DType())
	}
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return Plan{}, tensor.WrapInvalidArgument(opMul, err)
	}

	plan.Compute = common
	plan.OutShape = outShape
	return plan, nil
}

func planMulScalar(a Operand, s tensor.Scalar, out Operand) (Plan, error) {
	common := tensor.PromoteTypeWithScalar(a.DType(), s, false)
	if !tensor.CanCast(common, out.DType()) {
		return Plan{}, tensor.InvalidArgument(opMulScalar,
			"cannot cast common type %v to output type %v", common, out.DType())
	}

	plan := Plan{
		Op:       opMulScalar,
		Compute:  common,
		OutShape: a.Shape().Clone(),
	}
	if common == tensor.Float16 {
		plan.Compute = tensor.Float32
	}
	plan.ScalarBroadcast = a.DType() == common && common == out.DType() && common != tensor.Float16
	return plan, nil
}

// prepareOutput resizes out to shape. Typed views of out must be fetched
// after this returns.
func prepareOutput(op string, out *tensor.RawTensor, shape tensor.Shape) error {
	if err := out.Resize(shape); err != nil {
		return tensor.WrapInvalidArgument(op, err)
	}
	return nil
}
