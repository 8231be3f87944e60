package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// ScalarKind identifies which payload a Scalar holds.
type ScalarKind int

// Scalar payload kinds.
const (
	ScalarInt ScalarKind = iota
	ScalarFloat
	ScalarBool
)

// String returns a human-readable name for the kind.
func (k ScalarKind) String() string {
	switch k {
	case ScalarInt:
		return "int"
	case ScalarFloat:
		return "float"
	case ScalarBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Scalar is an immutable tagged value holding exactly one of an integer,
// floating-point or boolean payload. It carries no shape.
type Scalar struct {
	kind ScalarKind
	i    int64
	f    float64
	b    bool
}

// IntScalar returns an integer scalar.
func IntScalar(v int64) Scalar { return Scalar{kind: ScalarInt, i: v} }

// FloatScalar returns a floating-point scalar.
func FloatScalar(v float64) Scalar { return Scalar{kind: ScalarFloat, f: v} }

// BoolScalar returns a boolean scalar.
func BoolScalar(v bool) Scalar { return Scalar{kind: ScalarBool, b: v} }

// Kind returns the payload kind.
func (s Scalar) Kind() ScalarKind { return s.kind }

// DataType returns the natural dtype of the payload: Bool, Int64 or Float64.
func (s Scalar) DataType() DataType {
	switch s.kind {
	case ScalarBool:
		return Bool
	case ScalarInt:
		return Int64
	default:
		return Float64
	}
}

// Int returns the payload converted to int64.
func (s Scalar) Int() int64 {
	switch s.kind {
	case ScalarInt:
		return s.i
	case ScalarFloat:
		return int64(s.f)
	default:
		if s.b {
			return 1
		}
		return 0
	}
}

// Float returns the payload converted to float64.
func (s Scalar) Float() float64 {
	switch s.kind {
	case ScalarInt:
		return float64(s.i)
	case ScalarFloat:
		return s.f
	default:
		if s.b {
			return 1
		}
		return 0
	}
}

// Bool returns whether the payload is non-zero.
func (s Scalar) Bool() bool {
	switch s.kind {
	case ScalarInt:
		return s.i != 0
	case ScalarFloat:
		return s.f != 0
	default:
		return s.b
	}
}

// String formats the payload.
func (s Scalar) String() string {
	switch s.kind {
	case ScalarInt:
		return strconv.FormatInt(s.i, 10)
	case ScalarFloat:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	default:
		return strconv.FormatBool(s.b)
	}
}

// ParseScalar parses "true"/"false" as bool, integer literals as int and
// anything else numeric as float.
func ParseScalar(text string) (Scalar, error) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "true":
		return BoolScalar(true), nil
	case "false":
		return BoolScalar(false), nil
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return IntScalar(i), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Scalar{}, fmt.Errorf("parse scalar %q: %w", text, err)
	}
	return FloatScalar(f), nil
}
