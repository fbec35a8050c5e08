// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense host tensors consumed by the criteria.
//
// # Overview
//
// A Tensor[T] is a row-major buffer of float32 or float64 values plus a
// shape. Every operation returns a new tensor; inputs are never modified, so
// tensors produced by a training loop can be handed to a criterion without
// defensive copies.
//
// # Basic Usage
//
//	import "github.com/born-ml/criteria/tensor"
//
//	func main() {
//	    pred, err := tensor.FromSlice([]float32{0.9, 0.1}, tensor.Shape{2})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    target, _ := tensor.FromSlice([]float32{1, 0}, tensor.Shape{2})
//
//	    diff, err := pred.Sub(target) // tensor.ErrShapeMismatch on differing shapes
//	    fmt.Println(diff.Data(), diff.Mean())
//	}
//
// # Supported Data Types
//
// The Float constraint admits float32 and float64. float64 kernels are
// backed by gonum; float32 kernels use math32 and accumulate sums in float64.
package tensor
