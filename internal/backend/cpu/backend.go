// Package cpu implements the CPU multiply dispatch engine: path selection,
// type promotion, homogeneous fast paths and the general casting loop.
package cpu

import (
	"context"
	"log/slog"
)

// CPUBackend runs elementwise multiplication on the host.
//
// A CPUBackend holds no mutable state and may be shared between goroutines.
// Calls writing the same output tensor must be serialized by the caller.
type CPUBackend struct {
	logger *slog.Logger
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithLogger sets the logger used for dispatch tracing. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(cpu *CPUBackend) {
		if logger != nil {
			cpu.logger = logger
		}
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{logger: slog.Default()}
	for _, opt := range opts {
		opt(cpu)
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

func (cpu *CPUBackend) logPlan(plan Plan) {
	ctx := context.Background()
	if !cpu.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	cpu.logger.LogAttrs(ctx, slog.LevelDebug, "dispatch",
		slog.String("op", plan.Op),
		slog.String("strategy", plan.Strategy()),
		slog.String("compute", plan.Compute.String()),
		slog.Any("shape", []int(plan.OutShape)),
		slog.Bool("swapped", plan.Swapped),
	)
}
