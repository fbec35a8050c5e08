package tensor

import (
	"github.com/pkg/errors"
)

// Add performs element-wise addition.
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return t.binary(other, "add", addTo[T])
}

// Sub performs element-wise subtraction.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return t.binary(other, "sub", subTo[T])
}

// Mul performs element-wise multiplication.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	return t.binary(other, "mul", mulTo[T])
}

func (t *Tensor[T]) binary(other *Tensor[T], op string, kernel func(dst, a, b []T)) (*Tensor[T], error) {
	if err := CheckSameShape(t, other); err != nil {
		return nil, errors.WithMessage(err, op)
	}
	out := make([]T, len(t.data))
	kernel(out, t.data, other.data)
	return newTensor(out, t.shape), nil
}

// CheckSameShape returns ErrShapeMismatch if a and b differ in shape.
func CheckSameShape[T Float](a, b *Tensor[T]) error {
	if !a.shape.Equal(b.shape) {
		return errors.Wrapf(ErrShapeMismatch, "%v vs %v", a.shape, b.shape)
	}
	return nil
}

// AddScalar adds c to every element.
func (t *Tensor[T]) AddScalar(c T) *Tensor[T] {
	out := t.Clone()
	addConst(c, out.data)
	return out
}

// MulScalar multiplies every element by c.
func (t *Tensor[T]) MulScalar(c T) *Tensor[T] {
	out := t.Clone()
	scale(c, out.data)
	return out
}

// OneMinus computes 1 - x element-wise.
func (t *Tensor[T]) OneMinus() *Tensor[T] {
	out := t.MulScalar(-1)
	addConst(1, out.data)
	return out
}

// Sqrt computes the element-wise square root. Negative inputs yield NaN.
func (t *Tensor[T]) Sqrt() *Tensor[T] {
	return t.apply(sqrt[T])
}

// Log computes the element-wise natural logarithm.
// log(0) is -Inf and negative inputs yield NaN; no clamping is applied.
func (t *Tensor[T]) Log() *Tensor[T] {
	return t.apply(log[T])
}

// XLogY computes x·log(y) element-wise, where x is the receiver.
//
// A zero x with a non-negative y contributes 0 instead of 0·log(y), so
// 0·log(0) is 0 rather than NaN. Negative or NaN y still yield NaN and a
// non-zero x with y = 0 still yields ±Inf.
func (t *Tensor[T]) XLogY(y *Tensor[T]) (*Tensor[T], error) {
	if err := CheckSameShape(t, y); err != nil {
		return nil, errors.WithMessage(err, "xlogy")
	}
	out := make([]T, len(t.data))
	for i, x := range t.data {
		if x == 0 && y.data[i] >= 0 {
			continue
		}
		out[i] = x * log(y.data[i])
	}
	return newTensor(out, t.shape), nil
}

// EqScalar returns an indicator tensor: 1 where the element equals v, 0 elsewhere.
func (t *Tensor[T]) EqScalar(v T) *Tensor[T] {
	out := make([]T, len(t.data))
	for i, x := range t.data {
		if x == v {
			out[i] = 1
		}
	}
	return newTensor(out, t.shape)
}

func (t *Tensor[T]) apply(f func(T) T) *Tensor[T] {
	out := make([]T, len(t.data))
	for i, x := range t.data {
		out[i] = f(x)
	}
	return newTensor(out, t.shape)
}

// Sum returns the sum of all elements.
func (t *Tensor[T]) Sum() T {
	return sum(t.data)
}

// Mean returns the arithmetic mean of all elements.
func (t *Tensor[T]) Mean() T {
	return sum(t.data) / T(len(t.data))
}
