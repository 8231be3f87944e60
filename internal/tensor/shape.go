package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor, outermost first.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// maxElements bounds the element count so the byte size of the widest
// dtype (8 bytes) still fits in an int.
const maxElements = math.MaxInt / 8

// Validate checks that every dimension is >= 0 and that the element count
// fits a buffer of any dtype.
func (s Shape) Validate() error {
	empty := false
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrInvalidShape, i, dim)
		}
		if dim == 0 {
			empty = true
		}
	}
	if empty {
		return nil
	}

	n := 1
	for _, dim := range s {
		if n > maxElements/dim {
			return fmt.Errorf("%w: %v has too many elements", ErrInvalidShape, []int(s))
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// StripLeadingOnes returns the suffix of s that remains after dropping the
// contiguous prefix of extent-1 dimensions. The result aliases s.
//
//	[1, 1, 6]    → [6]
//	[1, 3, 1, 4] → [3, 1, 4]
//	[1, 1]       → []
func (s Shape) StripLeadingOnes() Shape {
	i := 0
	for i < len(s) && s[i] == 1 {
		i++
	}
	return s[i:]
}

// EqualIgnoringLeadingOnes reports whether both shapes are equal once their
// leading extent-1 dimensions are stripped.
func (s Shape) EqualIgnoringLeadingOnes(other Shape) bool {
	return s.StripLeadingOnes().Equal(other.StripLeadingOnes())
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an error if incompatible.
//
// Examples:
//
//	(3, 1) * (3, 5) → (3, 5), true, nil
//	(1, 5) * (3, 5) → (3, 5), true, nil
//	(3, 5) * (3, 5) → (3, 5), false, nil
//	(3, 4) * (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}
