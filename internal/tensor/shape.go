package tensor

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Shape represents the dimensions of a tensor.
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

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return errors.Wrapf(ErrInvalidShape, "dimension at index %d is %d (must be > 0)", i, dim)
		}
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

// String formats the shape as [d0 d1 ...].
func (s Shape) String() string {
	dims := make([]string, len(s))
	for i, dim := range s {
		dims[i] = strconv.Itoa(dim)
	}
	return "[" + strings.Join(dims, " ") + "]"
}

// resolve replaces a single -1 dimension with the size needed to hold n elements.
func (s Shape) resolve(n int) (Shape, error) {
	out := s.Clone()
	inferred := -1
	known := 1
	for i, dim := range out {
		switch {
		case dim == -1:
			if inferred >= 0 {
				return nil, errors.Wrap(ErrInvalidShape, "only one dimension can be inferred")
			}
			inferred = i
		case dim <= 0:
			return nil, errors.Wrapf(ErrInvalidShape, "dimension at index %d is %d (must be > 0 or -1)", i, dim)
		default:
			known *= dim
		}
	}

	if inferred >= 0 {
		if n%known != 0 {
			return nil, errors.Wrapf(ErrInvalidShape, "cannot infer dimension: %d elements into %v", n, s)
		}
		out[inferred] = n / known
	}

	if out.NumElements() != n {
		return nil, errors.Wrapf(ErrInvalidShape, "shape %v requires %d elements, but got %d", out, out.NumElements(), n)
	}
	return out, nil
}
