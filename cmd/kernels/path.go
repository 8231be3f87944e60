package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/born-ml/kernels/internal/backend/cpu"
	"github.com/born-ml/kernels/internal/tensor"
	"github.com/born-ml/kernels/internal/tensorio"
)

type pathOptions struct {
	AShape, BShape, OutShape string
	ADType, BDType, OutDType string
}

func newPathCmd() *cobra.Command {
	var opts pathOptions

	cmd := &cobra.Command{
		Use:     "path",
		Short:   "Show which execution strategy a multiply would use",
		Example: `  kernels path --a-shape 2,2 --b-shape 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPath(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.AShape, "a-shape", "", "Left operand shape, e.g. 2,3 (required)")
	cmd.Flags().StringVar(&opts.BShape, "b-shape", "", "Right operand shape, e.g. 3 (required)")
	cmd.Flags().StringVar(&opts.OutShape, "out-shape", "0", "Current output shape")
	cmd.Flags().StringVar(&opts.ADType, "a-dtype", "float32", "Left operand dtype")
	cmd.Flags().StringVar(&opts.BDType, "b-dtype", "", "Right operand dtype (default: --a-dtype)")
	cmd.Flags().StringVar(&opts.OutDType, "out-dtype", "", "Output dtype (default: promoted type)")

	_ = cmd.MarkFlagRequired("a-shape")
	_ = cmd.MarkFlagRequired("b-shape")

	return cmd
}

func runPath(w io.Writer, opts pathOptions) error {
	a, err := parseMeta(opts.AShape, opts.ADType)
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	bTypeName := opts.BDType
	if bTypeName == "" {
		bTypeName = opts.ADType
	}
	b, err := parseMeta(opts.BShape, bTypeName)
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	outType, err := resolveOutDType(opts.OutDType, tensor.PromoteTypes(a.DType(), b.DType(), false))
	if err != nil {
		return err
	}
	outShape, err := tensorio.ParseShape(opts.OutShape)
	if err != nil {
		return fmt.Errorf("--out-shape: %w", err)
	}

	plan, err := cpu.ExplainPath(a, b, tensor.NewMeta(outShape, outType))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "strategy: %s\npath: %s\nswapped: %t\ncompute: %s\nout: %v %s\n",
		plan.Strategy(), plan.Path, plan.Swapped, plan.Compute, []int(plan.OutShape), outType)
	return err
}

func parseMeta(shapeText, dtypeName string) (tensor.Meta, error) {
	shape, err := tensorio.ParseShape(shapeText)
	if err != nil {
		return tensor.Meta{}, err
	}
	dt, err := tensor.ParseDataType(dtypeName)
	if err != nil {
		return tensor.Meta{}, err
	}
	return tensor.NewMeta(shape, dt), nil
}
