// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/kernels/backend/cpu"
	"github.com/born-ml/kernels/tensor"
)

func ExampleBackend_MulOut() {
	backend := cpu.New()

	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b, _ := tensor.FromSlice([]float32{10, 20}, tensor.Shape{2})
	out, _ := tensor.NewRaw(tensor.Shape{0}, tensor.Float32)

	if err := backend.MulOut(a, b, out); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.Shape(), out.AsFloat32())
	// Output: [2 2] [10 40 30 80]
}

func ExampleBackend_MulScalarOut() {
	backend := cpu.New()

	a, _ := tensor.FromSlice([]int32{1, 2, 3}, tensor.Shape{3})
	out, _ := tensor.NewRaw(tensor.Shape{0}, tensor.Int64)

	if err := backend.MulScalarOut(a, tensor.IntScalar(4), out); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.AsInt64())
	// Output: [4 8 12]
}

func ExampleExplainPath() {
	plan, err := cpu.ExplainPath(
		tensor.NewMeta(tensor.Shape{1, 3, 4}, tensor.Float64),
		tensor.NewMeta(tensor.Shape{4}, tensor.Float64),
		tensor.NewMeta(tensor.Shape{0}, tensor.Float64),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(plan.Strategy(), plan.OutShape)
	// Output: broadcast_2d_by_1d [1 3 4]
}

func ExampleBackend_MulOut_unreachableOutput() {
	backend := cpu.New()

	a, _ := tensor.FromSlice([]float32{1.5}, tensor.Shape{1})
	b, _ := tensor.FromSlice([]int32{2}, tensor.Shape{1})
	out, _ := tensor.NewRaw(tensor.Shape{0}, tensor.Int32)

	err := backend.MulOut(a, b, out)
	fmt.Println(errors.Is(err, tensor.ErrInvalidArgument), out.Shape())
	// Output: true [0]
}
