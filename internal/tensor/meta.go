package tensor

// Meta describes a tensor's shape and dtype without any storage. It lets
// callers ask how an operator would dispatch before allocating buffers.
type Meta struct {
	shape Shape
	dtype DataType
}

// NewMeta returns a Meta for the given shape and dtype.
func NewMeta(shape Shape, dtype DataType) Meta {
	return Meta{shape: shape.Clone(), dtype: dtype}
}

// MetaOf captures the shape and dtype of r.
func MetaOf(r *RawTensor) Meta {
	return NewMeta(r.Shape(), r.DType())
}

// Shape returns the described shape.
func (m Meta) Shape() Shape { return m.shape }

// DType returns the described dtype.
func (m Meta) DType() DataType { return m.dtype }

// NumElements returns the element count of the described shape.
func (m Meta) NumElements() int { return m.shape.NumElements() }
