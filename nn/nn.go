// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/criteria/internal/nn"
	"github.com/born-ml/criteria/internal/tensor"
)

// Criterion is the common interface of all loss functions.
type Criterion[T tensor.Float] = nn.Criterion[T]

// ErrInvalidArgument reports a criterion configured with values it cannot use.
var ErrInvalidArgument = nn.ErrInvalidArgument

// Reduction selects how element-wise losses are combined into a scalar.
type Reduction = nn.Reduction

// Reductions.
const (
	ReductionMean Reduction = nn.ReductionMean
	ReductionSum  Reduction = nn.ReductionSum
)

// Baselines

// MSELoss computes Mean Squared Error loss.
type MSELoss[T tensor.Float] = nn.MSELoss[T]

// NewMSELoss creates a new MSE loss function.
//
// Example:
//
//	criterion, err := nn.NewMSELoss[float32](nn.ReductionMean)
//	loss, err := criterion.Loss(predictions, targets)
func NewMSELoss[T tensor.Float](reduction Reduction) (*MSELoss[T], error) {
	return nn.NewMSELoss[T](reduction)
}

// BCELoss computes binary cross-entropy loss.
type BCELoss[T tensor.Float] = nn.BCELoss[T]

// NewBCELoss creates an unweighted binary cross-entropy loss.
func NewBCELoss[T tensor.Float]() *BCELoss[T] {
	return nn.NewBCELoss[T]()
}

// Weighted MSE

// WeightedMSELoss computes MSE with a per-element positive-class weight.
type WeightedMSELoss[T tensor.Float] = nn.WeightedMSELoss[T]

// WeightedMSEConfig holds the configuration of a WeightedMSELoss.
type WeightedMSEConfig = nn.WeightedMSEConfig

// WeightedMSEOption configures a WeightedMSELoss.
type WeightedMSEOption = nn.WeightedMSEOption

// DefaultWeightedMSEConfig returns the configuration of an unweighted MSE.
func DefaultWeightedMSEConfig() WeightedMSEConfig {
	return nn.DefaultWeightedMSEConfig()
}

// NewWeightedMSELoss creates a weighted MSE loss.
//
// Example:
//
//	criterion, err := nn.NewWeightedMSELoss[float32](nn.WithPositiveClassWeight(4.0))
func NewWeightedMSELoss[T tensor.Float](opts ...WeightedMSEOption) (*WeightedMSELoss[T], error) {
	return nn.NewWeightedMSELoss[T](opts...)
}

// NewWeightedMSELossFromConfig creates a weighted MSE loss from an explicit configuration.
func NewWeightedMSELossFromConfig[T tensor.Float](config WeightedMSEConfig) (*WeightedMSELoss[T], error) {
	return nn.NewWeightedMSELossFromConfig[T](config)
}

// WithPositiveClassWeight sets the weight applied to positive-class elements.
func WithPositiveClassWeight(w float64) WeightedMSEOption {
	return nn.WithPositiveClassWeight(w)
}

// WithPositiveClassValue sets the target value that marks the positive class.
func WithPositiveClassValue(v float64) WeightedMSEOption {
	return nn.WithPositiveClassValue(v)
}

// WithNegativeClassWeight sets the weight applied to all other elements.
func WithNegativeClassWeight(w float64) WeightedMSEOption {
	return nn.WithNegativeClassWeight(w)
}

// WithReduction sets how squared errors are reduced.
func WithReduction(r Reduction) WeightedMSEOption {
	return nn.WithReduction(r)
}

// Weighted BCE

// WeightedBCELoss computes BCE with a class-weight ratio on the positive term.
type WeightedBCELoss[T tensor.Float] = nn.WeightedBCELoss[T]

// ClassWeight is a [negative, positive] class weight pair.
type ClassWeight = nn.ClassWeight

// WeightedBCEOption configures a WeightedBCELoss.
type WeightedBCEOption = nn.WeightedBCEOption

// NewWeightedBCELoss creates a weighted BCE loss.
//
// Example:
//
//	criterion, err := nn.NewWeightedBCELoss[float32](nn.WithClassWeight(1.0, 3.0))
func NewWeightedBCELoss[T tensor.Float](opts ...WeightedBCEOption) (*WeightedBCELoss[T], error) {
	return nn.NewWeightedBCELoss[T](opts...)
}

// WithClassWeight sets the [negative, positive] class weight pair.
func WithClassWeight(negative, positive float64) WeightedBCEOption {
	return nn.WithClassWeight(negative, positive)
}
