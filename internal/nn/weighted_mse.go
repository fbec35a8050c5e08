package nn

import (
	"math"

	"github.com/born-ml/criteria/internal/tensor"
	"github.com/pkg/errors"
)

// WeightedMSEConfig holds the resolved configuration of a WeightedMSELoss.
type WeightedMSEConfig struct {
	PositiveClassWeight float64   // Weight of elements whose target equals PositiveClassValue (default: 1.0, must be >= 0)
	PositiveClassValue  float64   // Target value that marks the positive class (default: 1.0)
	NegativeClassWeight float64   // Weight of every other element (default: 1.0, must be >= 0)
	Reduction           Reduction // Mean or sum over elements (default: ReductionMean)
}

// DefaultWeightedMSEConfig returns the configuration of an unweighted MSE.
func DefaultWeightedMSEConfig() WeightedMSEConfig {
	return WeightedMSEConfig{
		PositiveClassWeight: 1.0,
		PositiveClassValue:  1.0,
		NegativeClassWeight: 1.0,
		Reduction:           ReductionMean,
	}
}

// Validate checks the configuration invariants.
func (c WeightedMSEConfig) Validate() error {
	// The negated comparisons also reject NaN.
	if !(c.PositiveClassWeight >= 0) || math.IsInf(c.PositiveClassWeight, 1) {
		return errors.Wrapf(ErrInvalidArgument,
			"positive class weight must be finite and >= 0, got %v", c.PositiveClassWeight)
	}
	if !(c.NegativeClassWeight >= 0) || math.IsInf(c.NegativeClassWeight, 1) {
		return errors.Wrapf(ErrInvalidArgument,
			"negative class weight must be finite and >= 0, got %v", c.NegativeClassWeight)
	}
	return c.Reduction.validate()
}

// WeightedMSEOption configures a WeightedMSELoss.
type WeightedMSEOption func(*WeightedMSEConfig)

// WithPositiveClassWeight sets the weight applied to positive-class elements.
func WithPositiveClassWeight(w float64) WeightedMSEOption {
	return func(c *WeightedMSEConfig) {
		c.PositiveClassWeight = w
	}
}

// WithPositiveClassValue sets the target value that marks the positive class.
func WithPositiveClassValue(v float64) WeightedMSEOption {
	return func(c *WeightedMSEConfig) {
		c.PositiveClassValue = v
	}
}

// WithNegativeClassWeight sets the weight applied to all other elements.
func WithNegativeClassWeight(w float64) WeightedMSEOption {
	return func(c *WeightedMSEConfig) {
		c.NegativeClassWeight = w
	}
}

// WithReduction sets how squared errors are reduced.
func WithReduction(r Reduction) WeightedMSEOption {
	return func(c *WeightedMSEConfig) {
		c.Reduction = r
	}
}

// WeightedMSELoss computes a mean squared error in which every element is
// weighted according to its target.
//
// Elements whose target equals the positive class value get the positive
// class weight; all other elements get the negative class weight (1.0
// unless configured):
//
//	weight = mask·(w_pos - w_neg) + w_neg
//	Loss   = reduce((√weight·predictions - √weight·targets)²)
//	       = reduce(weight·(predictions - targets)²)
//
// The square root is taken first because the underlying MSE squares the
// scaled difference, which reapplies the weight.
//
// Example:
//
//	criterion, err := nn.NewWeightedMSELoss[float32](
//	    nn.WithPositiveClassWeight(4.0),
//	)
//	loss, err := criterion.Loss(predictions, targets)
type WeightedMSELoss[T tensor.Float] struct {
	config WeightedMSEConfig
	mse    *MSELoss[T]
}

// NewWeightedMSELoss creates a weighted MSE loss.
//
// Defaults are those of DefaultWeightedMSEConfig. Returns ErrInvalidArgument
// if a class weight is negative or the reduction is unknown.
func NewWeightedMSELoss[T tensor.Float](opts ...WeightedMSEOption) (*WeightedMSELoss[T], error) {
	config := DefaultWeightedMSEConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return NewWeightedMSELossFromConfig[T](config)
}

// NewWeightedMSELossFromConfig creates a weighted MSE loss from an explicit configuration.
func NewWeightedMSELossFromConfig[T tensor.Float](config WeightedMSEConfig) (*WeightedMSELoss[T], error) {
	if err := config.Validate(); err != nil {
		return nil, errors.WithMessage(err, "WeightedMSELoss")
	}

	mse, err := NewMSELoss[T](config.Reduction)
	if err != nil {
		return nil, err
	}

	return &WeightedMSELoss[T]{
		config: config,
		mse:    mse,
	}, nil
}

// Config returns the configuration the loss was built with.
func (w *WeightedMSELoss[T]) Config() WeightedMSEConfig {
	return w.config
}

// Weights returns the per-element weight tensor derived from targets.
func (w *WeightedMSELoss[T]) Weights(targets *tensor.Tensor[T]) *tensor.Tensor[T] {
	positive := T(w.config.PositiveClassWeight)
	negative := T(w.config.NegativeClassWeight)

	mask := targets.EqScalar(T(w.config.PositiveClassValue))
	differential := mask.MulScalar(positive - negative)
	return differential.AddScalar(negative)
}

// Forward computes the weighted MSE loss as a shape [1] tensor.
func (w *WeightedMSELoss[T]) Forward(predictions, targets *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	loss, err := w.Loss(predictions, targets)
	if err != nil {
		return nil, err
	}
	return tensor.Scalar(loss), nil
}

// Loss computes the weighted MSE loss.
func (w *WeightedMSELoss[T]) Loss(predictions, targets *tensor.Tensor[T]) (T, error) {
	if err := tensor.CheckSameShape(predictions, targets); err != nil {
		return 0, errors.WithMessage(err, "WeightedMSELoss")
	}

	sqrtWeights := w.Weights(targets).Sqrt()

	scaledPredictions, err := predictions.Mul(sqrtWeights)
	if err != nil {
		return 0, errors.WithMessage(err, "WeightedMSELoss")
	}
	scaledTargets, err := targets.Mul(sqrtWeights)
	if err != nil {
		return 0, errors.WithMessage(err, "WeightedMSELoss")
	}

	return w.mse.Loss(scaledPredictions, scaledTargets)
}
