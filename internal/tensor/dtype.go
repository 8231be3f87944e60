// Package tensor provides the core tensor types consumed by the kernels runtime.
package tensor

import (
	"fmt"
	"strings"

	"github.com/x448/float16"
)

// Element is a constraint for Go types that map one-to-one onto a DataType.
type Element interface {
	~bool | ~uint8 | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | float16.Float16
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
//
// Float16 is the reduced-precision float kind. Kernels that cannot work on it
// directly widen it to Float32.
const (
	Bool DataType = iota
	Uint8
	Int8
	Int16
	Int32
	Int64
	Float16
	Float32
	Float64
)

var dataTypeNames = [...]string{
	Bool:    "bool",
	Uint8:   "uint8",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Float16: "float16",
	Float32: "float32",
	Float64: "float64",
}

// DataTypes returns every supported data type in enumeration order.
func DataTypes() []DataType {
	return []DataType{Bool, Uint8, Int8, Int16, Int32, Int64, Float16, Float32, Float64}
}

// Valid reports whether dt is one of the supported data types.
func (dt DataType) Valid() bool {
	return dt >= Bool && dt <= Float64
}

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Uint8, Int8:
		return 1
	case Int16, Float16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	if !dt.Valid() {
		return "unknown"
	}
	return dataTypeNames[dt]
}

// IsFloat reports whether dt is a floating-point kind (including Float16).
func (dt DataType) IsFloat() bool {
	return dt == Float16 || dt == Float32 || dt == Float64
}

// IsIntegral reports whether dt is an integer kind. Bool counts as integral
// only when includeBool is set.
func (dt DataType) IsIntegral(includeBool bool) bool {
	switch dt {
	case Uint8, Int8, Int16, Int32, Int64:
		return true
	case Bool:
		return includeBool
	default:
		return false
	}
}

// ParseDataType resolves a data type from its name. Common aliases
// (half, float, double, int, long, byte) are accepted.
func ParseDataType(name string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bool":
		return Bool, nil
	case "uint8", "byte":
		return Uint8, nil
	case "int8":
		return Int8, nil
	case "int16", "short":
		return Int16, nil
	case "int32", "int":
		return Int32, nil
	case "int64", "long":
		return Int64, nil
	case "float16", "half":
		return Float16, nil
	case "float32", "float":
		return Float32, nil
	case "float64", "double":
		return Float64, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", name)
	}
}

// inferDataType infers DataType from a generic element type T.
func inferDataType[T Element](dummy T) DataType {
	switch any(dummy).(type) {
	case bool:
		return Bool
	case uint8:
		return Uint8
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic(fmt.Sprintf("unsupported element type %T", dummy))
	}
}
