package tensor

import (
	"github.com/pkg/errors"
)

// Tensor is a dense, row-major tensor of element type T held in host memory.
//
// Operations never modify their receiver or arguments; every op allocates
// its result. A Tensor can therefore be shared read-only between goroutines.
//
// Example:
//
//	pred, _ := tensor.FromSlice([]float32{0.9, 0.1}, tensor.Shape{2})
//	target, _ := tensor.FromSlice([]float32{1, 0}, tensor.Shape{2})
//	diff, _ := pred.Sub(target)
type Tensor[T Float] struct {
	data  []T
	shape Shape
}

// newTensor wraps data without copying. Callers must own data.
func newTensor[T Float](data []T, shape Shape) *Tensor[T] {
	return &Tensor[T]{
		data:  data,
		shape: shape.Clone(),
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrInvalidShape, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}

	buf := make([]T, len(data))
	copy(buf, data)
	return newTensor(buf, shape), nil
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return inferDataType[T]()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Data returns the underlying buffer in row-major order.
// The buffer must be treated as read-only.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Clone returns a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	buf := make([]T, len(t.data))
	copy(buf, t.data)
	return newTensor(buf, t.shape)
}

// Item returns the value of a single-element tensor.
func (t *Tensor[T]) Item() (T, error) {
	if len(t.data) != 1 {
		return 0, errors.Wrapf(ErrNotScalar, "shape %v", t.shape)
	}
	return t.data[0], nil
}

// Reshape returns a copy of the tensor with a new shape.
// One dimension may be -1, in which case it is inferred from the element count.
func (t *Tensor[T]) Reshape(newShape ...int) (*Tensor[T], error) {
	shape, err := Shape(newShape).resolve(len(t.data))
	if err != nil {
		return nil, errors.WithMessagef(err, "reshape %v", t.shape)
	}
	out := t.Clone()
	out.shape = shape
	return out, nil
}

// Flatten returns a one-dimensional copy of the tensor, preserving element order.
func (t *Tensor[T]) Flatten() *Tensor[T] {
	out, err := t.Reshape(-1)
	if err != nil {
		panic(err) // -1 always resolves: every tensor holds at least one element
	}
	return out
}
