package tensor

import (
	"errors"
	"testing"
)

func TestDataTypeSize(t *testing.T) {
	want := map[DataType]int{
		Bool: 1, Uint8: 1, Int8: 1,
		Int16: 2, Float16: 2,
		Int32: 4, Float32: 4,
		Int64: 8, Float64: 8,
	}
	for dt, size := range want {
		if dt.Size() != size {
			t.Errorf("%s.Size() = %d, want %d", dt, dt.Size(), size)
		}
	}
}

func TestDataTypeClassification(t *testing.T) {
	for _, dt := range DataTypes() {
		isFloat := dt == Float16 || dt == Float32 || dt == Float64
		if dt.IsFloat() != isFloat {
			t.Errorf("%s.IsFloat() = %v", dt, dt.IsFloat())
		}
		if dt.IsIntegral(false) == isFloat && dt != Bool {
			t.Errorf("%s.IsIntegral(false) = %v", dt, dt.IsIntegral(false))
		}
	}
	if Bool.IsIntegral(false) || !Bool.IsIntegral(true) {
		t.Error("Bool counts as integral only when includeBool is set")
	}
}

func TestParseDataType(t *testing.T) {
	for _, dt := range DataTypes() {
		got, err := ParseDataType(dt.String())
		if err != nil || got != dt {
			t.Errorf("ParseDataType(%q) = %s, %v", dt.String(), got, err)
		}
	}

	aliases := map[string]DataType{
		"half": Float16, "float": Float32, "double": Float64,
		"int": Int32, "long": Int64, "byte": Uint8, " Float32 ": Float32,
	}
	for name, want := range aliases {
		got, err := ParseDataType(name)
		if err != nil || got != want {
			t.Errorf("ParseDataType(%q) = %s, %v; want %s", name, got, err, want)
		}
	}

	if _, err := ParseDataType("complex64"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestDataTypeStringUnknown(t *testing.T) {
	if DataType(-1).String() != "unknown" {
		t.Errorf("DataType(-1).String() = %q", DataType(-1).String())
	}
}

func TestOpError(t *testing.T) {
	err := InvalidArgument("mul.out", "cannot cast %s to %s", Float32, Int32)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatal("InvalidArgument should wrap ErrInvalidArgument")
	}
	if err.Error() != "mul.out: invalid argument: cannot cast float32 to int32" {
		t.Errorf("Error() = %q", err.Error())
	}

	wrapped := WrapInvalidArgument("mul.out", ErrResizeFailed)
	if !errors.Is(wrapped, ErrInvalidArgument) || !errors.Is(wrapped, ErrResizeFailed) {
		t.Error("WrapInvalidArgument should keep both sentinels visible")
	}

	var opErr *OpError
	if !errors.As(wrapped, &opErr) || opErr.Op != "mul.out" {
		t.Errorf("errors.As = %v", opErr)
	}
}
