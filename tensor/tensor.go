// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/criteria/internal/tensor"
)

// Float is a constraint for tensor element types (float32, float64).
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense row-major tensor of element type T.
type Tensor[T Float] = tensor.Tensor[T]

// Errors returned by tensor operations.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrNotScalar     = tensor.ErrNotScalar
)

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Float](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Float](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
func Full[T Float](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// Scalar creates a single-element tensor with shape [1].
func Scalar[T Float](value T) *Tensor[T] {
	return tensor.Scalar(value)
}
