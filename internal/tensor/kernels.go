package tensor

import (
	"math"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/floats"
)

// Elementwise kernels. float64 buffers are handed to gonum; float32 buffers
// use plain loops and math32. All kernels assume equal lengths.

func addTo[T Float](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.AddTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subTo[T Float](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.SubTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulTo[T Float](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.MulTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func scale[T Float](c T, dst []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.Scale(float64(c), d)
		return
	}
	for i := range dst {
		dst[i] *= c
	}
}

func addConst[T Float](c T, dst []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.AddConst(float64(c), d)
		return
	}
	for i := range dst {
		dst[i] += c
	}
}

// sum accumulates float32 input in float64.
func sum[T Float](xs []T) T {
	if d, ok := any(xs).([]float64); ok {
		return T(floats.Sum(d))
	}
	var acc float64
	for _, x := range xs {
		acc += float64(x)
	}
	return T(acc)
}

func sqrt[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

func log[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Log(v))
	}
	return T(math.Log(float64(x)))
}
