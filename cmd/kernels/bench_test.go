package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/kernels/internal/config"
	"github.com/born-ml/kernels/internal/tensor"
)

func TestBenchOptionsFrom_Defaults(t *testing.T) {
	opts, err := benchOptionsFrom(config.DefaultConfig().Bench)
	require.NoError(t, err)

	assert.Equal(t, 1000, opts.Iterations)
	assert.Equal(t, tensor.Shape{256, 256}, opts.LHS)
	assert.Equal(t, tensor.Shape{256}, opts.RHS)
	assert.Equal(t, tensor.Float32, opts.DType)
	assert.Equal(t, tensor.Float32, opts.OutDType, "empty out dtype follows dtype")
}

func TestBenchOptionsFrom_Errors(t *testing.T) {
	base := config.DefaultConfig().Bench

	cases := map[string]func(*config.BenchConfig){
		"zero iterations": func(b *config.BenchConfig) { b.Iterations = 0 },
		"bad lhs":         func(b *config.BenchConfig) { b.LHSShape = "2,x" },
		"negative rhs":    func(b *config.BenchConfig) { b.RHSShape = "-1" },
		"huge lhs":        func(b *config.BenchConfig) { b.LHSShape = "4294967296,4294967297" },
		"bad dtype":       func(b *config.BenchConfig) { b.DType = "complex" },
		"bad out dtype":   func(b *config.BenchConfig) { b.OutDType = "quad" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			bc := base
			mutate(&bc)
			_, err := benchOptionsFrom(bc)
			assert.Error(t, err)
		})
	}
}

func TestRunBench(t *testing.T) {
	tests := []struct {
		name     string
		opts     benchOptions
		strategy string
	}{
		{
			name:     "row broadcast single worker",
			opts:     benchOptions{Iterations: 5, Workers: 1, LHS: tensor.Shape{8, 4}, RHS: tensor.Shape{4}, DType: tensor.Float32, OutDType: tensor.Float32},
			strategy: "broadcast_2d_by_1d",
		},
		{
			name:     "flat multi worker",
			opts:     benchOptions{Iterations: 16, Workers: 4, LHS: tensor.Shape{64}, RHS: tensor.Shape{64}, DType: tensor.Int16, OutDType: tensor.Int16},
			strategy: "treat_as_1d",
		},
		{
			name:     "promoting output",
			opts:     benchOptions{Iterations: 3, Workers: 2, LHS: tensor.Shape{3, 5}, RHS: tensor.Shape{5}, DType: tensor.Int8, OutDType: tensor.Float64},
			strategy: "general",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runBench(context.Background(), tt.opts)
			require.NoError(t, err)

			assert.Equal(t, tt.strategy, res.Strategy)
			assert.Equal(t, tt.opts.Iterations, res.Iterations)
			assert.GreaterOrEqual(t, res.Workers, 1)
			assert.GreaterOrEqual(t, res.NsPerOp(), 0.0)
		})
	}
}

func TestRunBench_IncompatibleShapes(t *testing.T) {
	_, err := runBench(context.Background(), benchOptions{
		Iterations: 1, LHS: tensor.Shape{2, 3}, RHS: tensor.Shape{4},
		DType: tensor.Float32, OutDType: tensor.Float32,
	})
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

func TestRunBench_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runBench(ctx, benchOptions{
		Iterations: 4, Workers: 1, LHS: tensor.Shape{4}, RHS: tensor.Shape{4},
		DType: tensor.Float32, OutDType: tensor.Float32,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBenchResult_NsPerOp(t *testing.T) {
	assert.Zero(t, benchResult{}.NsPerOp())
	assert.InDelta(t, 250.0, benchResult{Iterations: 4, Elapsed: time.Microsecond}.NsPerOp(), 1e-9)
}

func TestBenchCmd_UsesFlags(t *testing.T) {
	got, err := execute(t, "bench",
		"--bench-iterations", "3",
		"--bench-lhs-shape", "4,4",
		"--bench-rhs-shape", "4",
		"--bench-dtype", "float64",
		"--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, got, "strategy: broadcast_2d_by_1d\n")
	assert.Contains(t, got, "iterations: 3\n")
	assert.True(t, strings.Contains(got, "ns/op: "), got)
}

func TestWriteBenchResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBenchResult(&buf, benchResult{
		Strategy: "general", Iterations: 2, Workers: 1, Elapsed: 100 * time.Nanosecond,
	}))
	assert.Equal(t, "strategy: general\niterations: 2\nworkers: 1\nelapsed: 100ns\nns/op: 50.0\n", buf.String())
}
