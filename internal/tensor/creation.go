package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T Float](shape Shape) *Tensor[T] {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return newTensor(make([]T, shape.NumElements()), shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Float](shape Shape) *Tensor[T] {
	return Full(shape, T(1))
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{2, 2}, float64(3.14))
func Full[T Float](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Scalar creates a single-element tensor with shape [1].
func Scalar[T Float](value T) *Tensor[T] {
	return newTensor([]T{value}, Shape{1})
}
