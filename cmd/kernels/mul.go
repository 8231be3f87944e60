package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/kernels/internal/backend/cpu"
	"github.com/born-ml/kernels/internal/tensor"
	"github.com/born-ml/kernels/internal/tensorio"
)

type mulOptions struct {
	A, B      string
	ADType    string
	BDType    string
	OutDType  string
	Scalar    string
	UseScalar bool
	Format    string
	StaticOut string
	HasStatic bool
}

func newMulCmd() *cobra.Command {
	var opts mulOptions

	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Multiply two tensor literals (or a tensor and a scalar)",
		Example: `  kernels mul --a '[[1, 2], [3, 4]]' --b '[10, 20]'
  kernels mul --a '[1, 2, 3]' --a-dtype int32 --b '[0.5]' --b-dtype float32
  kernels mul --a '[1, 2, 3]' --a-dtype int8 --scalar 3 --out-dtype int64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.UseScalar = cmd.Flags().Changed("scalar")
			opts.HasStatic = cmd.Flags().Changed("static-out")
			return runMul(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.A, "a", "", "Left operand literal, e.g. '[[1, 2], [3, 4]]' (required)")
	cmd.Flags().StringVar(&opts.ADType, "a-dtype", "float32", "Left operand dtype")
	cmd.Flags().StringVar(&opts.B, "b", "", "Right operand literal")
	cmd.Flags().StringVar(&opts.BDType, "b-dtype", "", "Right operand dtype (default: --a-dtype)")
	cmd.Flags().StringVar(&opts.Scalar, "scalar", "", "Scalar right operand: integer, float or true/false")
	cmd.Flags().StringVar(&opts.OutDType, "out-dtype", "", "Output dtype (default: promoted type)")
	cmd.Flags().StringVar(&opts.StaticOut, "static-out", "", "Use a static output of this shape, e.g. 2,2")
	cmd.Flags().StringVar(&opts.Format, "format", "flow", "Result layout: flow|block")

	_ = cmd.MarkFlagRequired("a")
	cmd.MarkFlagsMutuallyExclusive("b", "scalar")
	cmd.MarkFlagsOneRequired("b", "scalar")

	return cmd
}

func runMul(w io.Writer, opts mulOptions) error {
	style, err := tensorio.ParseStyle(opts.Format)
	if err != nil {
		return err
	}
	aType, err := tensor.ParseDataType(opts.ADType)
	if err != nil {
		return fmt.Errorf("--a-dtype: %w", err)
	}
	a, err := tensorio.Parse(opts.A, aType)
	if err != nil {
		return fmt.Errorf("--a: %w", err)
	}

	backend := cpu.New(cpu.WithLogger(slog.Default()))

	var (
		plan cpu.Plan
		out  *tensor.RawTensor
	)
	if opts.UseScalar {
		s, err := tensor.ParseScalar(opts.Scalar)
		if err != nil {
			return fmt.Errorf("--scalar: %w", err)
		}
		outType, err := resolveOutDType(opts.OutDType, tensor.PromoteTypeWithScalar(aType, s, false))
		if err != nil {
			return err
		}
		if out, err = newOutput(opts, outType); err != nil {
			return err
		}
		if plan, err = cpu.ExplainScalarPath(a, s, out); err != nil {
			return err
		}
		if err := backend.MulScalarOut(a, s, out); err != nil {
			return err
		}
	} else {
		bTypeName := opts.BDType
		if bTypeName == "" {
			bTypeName = opts.ADType
		}
		bType, err := tensor.ParseDataType(bTypeName)
		if err != nil {
			return fmt.Errorf("--b-dtype: %w", err)
		}
		b, err := tensorio.Parse(opts.B, bType)
		if err != nil {
			return fmt.Errorf("--b: %w", err)
		}
		outType, err := resolveOutDType(opts.OutDType, tensor.PromoteTypes(aType, bType, false))
		if err != nil {
			return err
		}
		if out, err = newOutput(opts, outType); err != nil {
			return err
		}
		if plan, err = cpu.ExplainPath(a, b, out); err != nil {
			return err
		}
		if err := backend.MulOut(a, b, out); err != nil {
			return err
		}
	}

	result, err := tensorio.Format(out, style)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "strategy: %s\ncompute: %s\nshape: %v\ndtype: %s\nresult:\n%s\n",
		plan.Strategy(), plan.Compute, []int(out.Shape()), out.DType(), result)
	return err
}

func resolveOutDType(name string, promoted tensor.DataType) (tensor.DataType, error) {
	if name == "" {
		return promoted, nil
	}
	dt, err := tensor.ParseDataType(name)
	if err != nil {
		return 0, fmt.Errorf("--out-dtype: %w", err)
	}
	return dt, nil
}

// newOutput allocates the output tensor. Outputs start empty and grow on
// demand unless --static-out pins them to one shape.
func newOutput(opts mulOptions, dtype tensor.DataType) (*tensor.RawTensor, error) {
	if !opts.HasStatic {
		return tensor.NewRaw(tensor.Shape{0}, dtype)
	}
	shape, err := tensorio.ParseShape(opts.StaticOut)
	if err != nil {
		return nil, fmt.Errorf("--static-out: %w", err)
	}
	return tensor.NewRawWithDynamism(shape, dtype, tensor.Static)
}
