package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/born-ml/kernels/internal/backend/cpu"
	"github.com/born-ml/kernels/internal/config"
	"github.com/born-ml/kernels/internal/parallel"
	"github.com/born-ml/kernels/internal/tensor"
	"github.com/born-ml/kernels/internal/tensorio"
)

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Benchmark a multiply for the configured shapes and dtypes",
		Long: `Runs the multiply repeatedly and reports the mean time per call.

Shapes, dtypes, iteration count and worker count come from the bench.*
configuration keys, which can be set through flags, KERNELS_BENCH_* environment
variables or the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := benchOptionsFrom(activeCfg.Bench)
			if err != nil {
				return err
			}
			res, err := runBench(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return writeBenchResult(cmd.OutOrStdout(), res)
		},
	}
}

type benchOptions struct {
	Iterations int
	Workers    int
	LHS, RHS   tensor.Shape
	DType      tensor.DataType
	OutDType   tensor.DataType
}

type benchResult struct {
	Strategy   string
	Iterations int
	Workers    int
	Elapsed    time.Duration
}

// NsPerOp is the mean wall time of one multiply across all workers.
func (r benchResult) NsPerOp() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}

func benchOptionsFrom(bc config.BenchConfig) (benchOptions, error) {
	if bc.Iterations < 1 {
		return benchOptions{}, fmt.Errorf("bench.iterations must be at least 1, got %d", bc.Iterations)
	}
	lhs, err := tensorio.ParseShape(bc.LHSShape)
	if err != nil {
		return benchOptions{}, fmt.Errorf("bench.lhs_shape: %w", err)
	}
	rhs, err := tensorio.ParseShape(bc.RHSShape)
	if err != nil {
		return benchOptions{}, fmt.Errorf("bench.rhs_shape: %w", err)
	}
	dt, err := tensor.ParseDataType(bc.DType)
	if err != nil {
		return benchOptions{}, fmt.Errorf("bench.dtype: %w", err)
	}
	outDT := dt
	if bc.OutDType != "" {
		if outDT, err = tensor.ParseDataType(bc.OutDType); err != nil {
			return benchOptions{}, fmt.Errorf("bench.out_dtype: %w", err)
		}
	}
	return benchOptions{
		Iterations: bc.Iterations,
		Workers:    bc.Workers,
		LHS:        lhs,
		RHS:        rhs,
		DType:      dt,
		OutDType:   outDT,
	}, nil
}

func runBench(ctx context.Context, opts benchOptions) (benchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	pcfg := parallel.DefaultConfig().WithWorkers(opts.Workers)
	pcfg.MinChunkSize = 1

	a, err := benchInput(opts.LHS, opts.DType, pcfg)
	if err != nil {
		return benchResult{}, err
	}
	b, err := benchInput(opts.RHS, opts.DType, pcfg)
	if err != nil {
		return benchResult{}, err
	}

	// Inputs are shared read-only; every worker writes its own output.
	outs := make([]*tensor.RawTensor, max(pcfg.NumWorkers, 1))
	for i := range outs {
		if outs[i], err = tensor.NewRaw(tensor.Shape{0}, opts.OutDType); err != nil {
			return benchResult{}, err
		}
	}

	plan, err := cpu.ExplainPath(a, b, outs[0])
	if err != nil {
		return benchResult{}, err
	}

	backend := cpu.New(cpu.WithLogger(slog.Default()))
	errs := make([]error, len(outs))

	slog.Info("bench starting",
		"strategy", plan.Strategy(),
		"lhs", []int(opts.LHS),
		"rhs", []int(opts.RHS),
		"dtype", opts.DType.String(),
		"out_dtype", opts.OutDType.String(),
		"iterations", opts.Iterations,
		"workers", len(outs),
	)

	start := time.Now()
	parallel.ForChunks(opts.Iterations, pcfg, func(worker, from, to int) {
		out := outs[worker]
		for range to - from {
			if err := ctx.Err(); err != nil {
				errs[worker] = err
				return
			}
			if err := backend.MulOut(a, b, out); err != nil {
				errs[worker] = err
				return
			}
		}
	})
	elapsed := time.Since(start)

	if err := errors.Join(errs...); err != nil {
		return benchResult{}, err
	}

	res := benchResult{
		Strategy:   plan.Strategy(),
		Iterations: opts.Iterations,
		Workers:    len(outs),
		Elapsed:    elapsed,
	}
	slog.Info("bench finished", "elapsed", elapsed, "ns_per_op", res.NsPerOp())

	return res, nil
}

// benchInput builds a tensor of small non-zero values so integer products
// stay well inside every dtype's range.
func benchInput(shape tensor.Shape, dtype tensor.DataType, pcfg parallel.Config) (*tensor.RawTensor, error) {
	r, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	parallel.For(r.NumElements(), func(i int) {
		r.SetFloat64At(i, float64(i%7+1))
	}, pcfg)
	return r, nil
}

func writeBenchResult(w io.Writer, res benchResult) error {
	_, err := fmt.Fprintf(w, "strategy: %s\niterations: %d\nworkers: %d\nelapsed: %s\nns/op: %.1f\n",
		res.Strategy, res.Iterations, res.Workers, res.Elapsed, res.NsPerOp())
	return err
}
