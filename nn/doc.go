// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides loss criteria for training loops.
//
// # Overview
//
// This package contains:
//   - WeightedMSELoss: MSE with a per-element positive-class weight
//   - WeightedBCELoss: binary cross-entropy rebalanced by a class-weight ratio
//   - MSELoss, BCELoss: the unweighted baselines
//   - Criterion: the interface all of them implement
//
// Criteria are configured once at construction and keep no mutable state,
// so one instance can serve concurrent forward passes on disjoint batches.
// Gradient computation is left to the hosting framework.
//
// # Weighted MSE
//
// Elements whose target equals the positive class value are weighted by the
// positive class weight, all others by 1.0:
//
//	criterion, err := nn.NewWeightedMSELoss[float32](
//	    nn.WithPositiveClassWeight(4.0),
//	    nn.WithPositiveClassValue(1.0),
//	    nn.WithReduction(nn.ReductionMean),
//	)
//	loss, err := criterion.Loss(predictions, targets)
//
// A negative positive class weight fails with ErrInvalidArgument.
//
// # Weighted BCE
//
// The class weight pair [negative, positive] becomes the ratio
// positive/negative applied to the positive-label term:
//
//	criterion, err := nn.NewWeightedBCELoss[float32](nn.WithClassWeight(1.0, 3.0))
//	loss, err := criterion.Loss(probabilities, labels)
//
// Predictions are not clamped. log(0) and log of negative values surface as
// Inf or NaN in the returned loss.
//
// # Errors
//
// Configuration problems return ErrInvalidArgument from the constructors.
// Predictions and targets of different shapes return tensor.ErrShapeMismatch
// before any computation.
package nn
