// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/kernels/internal/backend/cpu"
	"github.com/born-ml/kernels/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.Dynamism() != tensor.DynamicUnbound {
		t.Errorf("Dynamism() = %v, want DynamicUnbound", raw.Dynamism())
	}
	if n := raw.NumElements(); n != 6 {
		t.Errorf("NumElements() = %d, want 6", n)
	}
	if got, want := raw.ByteSize(), 6*4; got != want {
		t.Errorf("ByteSize() = %d, want %d", got, want)
	}
	if len(raw.AsFloat32()) != 6 {
		t.Errorf("AsFloat32() length = %d, want 6", len(raw.AsFloat32()))
	}

	// Resize within the allocated buffer.
	if err := raw.Resize(tensor.Shape{3, 2}); err != nil {
		t.Errorf("Resize() error = %v", err)
	}
}

// TestStaticResize verifies that a static tensor refuses to change shape.
func TestStaticResize(t *testing.T) {
	raw, err := tensor.NewRawWithDynamism(tensor.Shape{4}, tensor.Int32, tensor.Static)
	if err != nil {
		t.Fatalf("NewRawWithDynamism failed: %v", err)
	}

	if err := raw.Resize(tensor.Shape{4}); err != nil {
		t.Errorf("Resize() to same shape error = %v", err)
	}
	if err := raw.Resize(tensor.Shape{2, 2}); !errors.Is(err, tensor.ErrResizeFailed) {
		t.Errorf("Resize() error = %v, want ErrResizeFailed", err)
	}
}

// TestFromSlice verifies dtype inference through the public wrapper.
func TestFromSlice(t *testing.T) {
	raw, err := tensor.FromSlice([]int16{1, 2, 3, 4}, tensor.Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if raw.DType() != tensor.Int16 {
		t.Errorf("DType() = %v, want Int16", raw.DType())
	}

	got := tensor.Float64s(raw)
	want := []float64{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Float64s()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}); err == nil {
		t.Error("FromSlice() with mismatched length should fail")
	}
}

func TestDataTypeConstants(t *testing.T) {
	dtypes := []struct {
		name  string
		dtype tensor.DataType
		size  int
	}{
		{"Bool", tensor.Bool, 1},
		{"Uint8", tensor.Uint8, 1},
		{"Int8", tensor.Int8, 1},
		{"Int16", tensor.Int16, 2},
		{"Int32", tensor.Int32, 4},
		{"Int64", tensor.Int64, 8},
		{"Float16", tensor.Float16, 2},
		{"Float32", tensor.Float32, 4},
		{"Float64", tensor.Float64, 8},
	}

	for _, dt := range dtypes {
		t.Run(dt.name, func(t *testing.T) {
			parsed, err := tensor.ParseDataType(dt.dtype.String())
			if err != nil || parsed != dt.dtype {
				t.Errorf("ParseDataType(%q) = %v, %v", dt.dtype.String(), parsed, err)
			}
			if size := dt.dtype.Size(); size != dt.size {
				t.Errorf("DataType.Size() = %d, want %d", size, dt.size)
			}
		})
	}
}

// TestPromotion verifies the promotion helpers exposed by the package.
func TestPromotion(t *testing.T) {
	if got := tensor.PromoteTypes(tensor.Int32, tensor.Float32, false); got != tensor.Float32 {
		t.Errorf("PromoteTypes(int32, float32) = %v, want float32", got)
	}
	if got := tensor.PromoteTypes(tensor.Float16, tensor.Float16, true); got != tensor.Float32 {
		t.Errorf("PromoteTypes(float16, float16, halfToFloat) = %v, want float32", got)
	}
	if got := tensor.PromoteTypeWithScalar(tensor.Int8, tensor.FloatScalar(0.5), false); got != tensor.Float32 {
		t.Errorf("PromoteTypeWithScalar(int8, 0.5) = %v, want float32", got)
	}
	if got := tensor.PromoteTypeWithScalar(tensor.Int8, tensor.IntScalar(1000), false); got != tensor.Int8 {
		t.Errorf("PromoteTypeWithScalar(int8, 1000) = %v, want int8", got)
	}
	if tensor.CanCast(tensor.Float32, tensor.Int64) {
		t.Error("CanCast(float32, int64) = true, want false")
	}
	if !tensor.CanCast(tensor.Int8, tensor.Float16) {
		t.Error("CanCast(int8, float16) = false, want true")
	}
}

func TestScalars(t *testing.T) {
	s, err := tensor.ParseScalar("2.5")
	if err != nil {
		t.Fatalf("ParseScalar failed: %v", err)
	}
	if s.Float() != 2.5 {
		t.Errorf("Float() = %v, want 2.5", s.Float())
	}
	if tensor.BoolScalar(true).DataType() != tensor.Bool {
		t.Error("BoolScalar dtype is not Bool")
	}
}

// TestShapeAPI verifies Shape type alias exposes expected API.
func TestShapeAPI(t *testing.T) {
	shape := tensor.Shape{2, 3, 4}

	if n := shape.NumElements(); n != 24 {
		t.Errorf("NumElements() = %d, want 24", n)
	}
	if !shape.Equal(tensor.Shape{2, 3, 4}) {
		t.Error("Equal() = false, want true for identical shapes")
	}

	clone := shape.Clone()
	clone[0] = 999
	if shape[0] == 999 {
		t.Error("Clone() didn't create independent copy")
	}

	meta := tensor.NewMeta(shape, tensor.Float64)
	if meta.NumElements() != 24 || meta.DType() != tensor.Float64 {
		t.Errorf("NewMeta() = %v %v", meta.Shape(), meta.DType())
	}
}

// TestBroadcastShapes verifies BroadcastShapes utility function.
func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name          string
		shapeA        tensor.Shape
		shapeB        tensor.Shape
		wantShape     tensor.Shape
		wantBroadcast bool
		wantErr       bool
	}{
		{
			name:      "same shape",
			shapeA:    tensor.Shape{2, 3},
			shapeB:    tensor.Shape{2, 3},
			wantShape: tensor.Shape{2, 3},
		},
		{
			name:          "broadcast scalar",
			shapeA:        tensor.Shape{2, 3},
			shapeB:        tensor.Shape{1},
			wantShape:     tensor.Shape{2, 3},
			wantBroadcast: true,
		},
		{
			name:          "broadcast dimension",
			shapeA:        tensor.Shape{3, 1},
			shapeB:        tensor.Shape{3, 4},
			wantShape:     tensor.Shape{3, 4},
			wantBroadcast: true,
		},
		{
			name:    "incompatible",
			shapeA:  tensor.Shape{2, 3},
			shapeB:  tensor.Shape{4},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotShape, gotBroadcast, err := tensor.BroadcastShapes(tt.shapeA, tt.shapeB)

			if (err != nil) != tt.wantErr {
				t.Errorf("BroadcastShapes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if err == nil {
				if !gotShape.Equal(tt.wantShape) {
					t.Errorf("BroadcastShapes() shape = %v, want %v", gotShape, tt.wantShape)
				}
				if gotBroadcast != tt.wantBroadcast {
					t.Errorf("BroadcastShapes() broadcast = %v, want %v", gotBroadcast, tt.wantBroadcast)
				}
			}
		})
	}
}
