package tensor

// PromoteTypes returns the common computation type for a and b.
//
// Lattice:
//   - identical kinds promote to themselves
//   - Bool yields to any other kind
//   - floating kinds dominate integral kinds; two floats give the wider one
//   - Uint8 with Int8 gives Int16, Uint8 with a wider signed kind gives that kind
//   - two signed kinds give the wider one
//
// With halfToFloat set a Float16 result is widened to Float32, so
// Float16*Float16 computes in Float32 and Float16*Int32 does too.
func PromoteTypes(a, b DataType, halfToFloat bool) DataType {
	result := promote(a, b)
	if halfToFloat && result == Float16 {
		return Float32
	}
	return result
}

func promote(a, b DataType) DataType {
	switch {
	case a == b:
		return a
	case a == Bool:
		return b
	case b == Bool:
		return a
	case a.IsFloat() && b.IsFloat():
		return max(a, b)
	case a.IsFloat():
		return a
	case b.IsFloat():
		return b
	}

	// Both integral, not bool.
	if a == Uint8 || b == Uint8 {
		other := b
		if b == Uint8 {
			other = a
		}
		if other == Int8 {
			return Int16
		}
		return other
	}
	return max(a, b)
}

// CanCast reports whether a value of type from may be stored into type to
// under the operator cast policy: floats never narrow to integers and only
// Bool may be stored into Bool.
func CanCast(from, to DataType) bool {
	if from.IsFloat() && to.IsIntegral(false) {
		return false
	}
	if from != Bool && to == Bool {
		return false
	}
	return true
}

// PromoteTypeWithScalar returns the common type of a tensor of type t and the
// scalar s. Scalars never widen an integral or floating tensor within its
// category:
//   - a bool scalar keeps t
//   - an integer scalar keeps t, except that a Bool tensor becomes Int64
//   - a float scalar keeps a floating t, otherwise the result is Float32
func PromoteTypeWithScalar(t DataType, s Scalar, halfToFloat bool) DataType {
	if halfToFloat && t == Float16 {
		t = Float32
	}
	switch s.Kind() {
	case ScalarBool:
		return t
	case ScalarInt:
		if t == Bool {
			return Int64
		}
		return t
	default:
		if t.IsFloat() {
			return t
		}
		return Float32
	}
}
