package nn

import (
	"math"

	"github.com/born-ml/criteria/internal/tensor"
	"github.com/pkg/errors"
)

// ClassWeight is a [negative, positive] class weight pair.
type ClassWeight struct {
	Negative float64
	Positive float64
}

// Ratio returns Positive / Negative.
func (cw ClassWeight) Ratio() float64 {
	return cw.Positive / cw.Negative
}

// Validate checks that both weights are positive finite numbers.
func (cw ClassWeight) Validate() error {
	if cw.Negative == 0 {
		return errors.Wrap(ErrInvalidArgument, "negative class weight is zero (division by zero)")
	}
	for _, v := range []float64{cw.Negative, cw.Positive} {
		if !(v > 0) || math.IsInf(v, 1) {
			return errors.Wrapf(ErrInvalidArgument,
				"class weights must be positive finite numbers, got [%v, %v]", cw.Negative, cw.Positive)
		}
	}
	return nil
}

// WeightedBCEOption configures a WeightedBCELoss.
type WeightedBCEOption func(*weightedBCEOptions)

type weightedBCEOptions struct {
	classWeight *ClassWeight
}

// WithClassWeight sets the [negative, positive] class weight pair.
// Without it the loss is plain binary cross-entropy.
func WithClassWeight(negative, positive float64) WeightedBCEOption {
	return func(o *weightedBCEOptions) {
		o.classWeight = &ClassWeight{Negative: negative, Positive: positive}
	}
}

// WeightedBCELoss computes binary cross-entropy with the positive-label term
// scaled by the class-weight ratio r = w_pos / w_neg:
//
//	Loss = mean(-r·t·log(p) - (1-t)·log(1-p))
//
// Inputs of any shape are flattened before the computation. Without a class
// weight r is 1 and the loss equals BCELoss.
//
// Example:
//
//	criterion, err := nn.NewWeightedBCELoss[float32](nn.WithClassWeight(1.0, 3.0))
//	loss, err := criterion.Loss(probabilities, labels)
type WeightedBCELoss[T tensor.Float] struct {
	classWeight *ClassWeight
	bce         *BCELoss[T]
}

// NewWeightedBCELoss creates a weighted BCE loss.
//
// Returns ErrInvalidArgument if the class weight pair has a zero, negative or
// non-finite member.
func NewWeightedBCELoss[T tensor.Float](opts ...WeightedBCEOption) (*WeightedBCELoss[T], error) {
	options := &weightedBCEOptions{}
	for _, opt := range opts {
		opt(options)
	}

	bce := NewBCELoss[T]()
	if options.classWeight != nil {
		if err := options.classWeight.Validate(); err != nil {
			return nil, errors.WithMessage(err, "WeightedBCELoss")
		}
		bce.positiveWeight = T(options.classWeight.Ratio())
	}

	return &WeightedBCELoss[T]{
		classWeight: options.classWeight,
		bce:         bce,
	}, nil
}

// ClassWeight returns the configured pair and whether one was set.
func (w *WeightedBCELoss[T]) ClassWeight() (ClassWeight, bool) {
	if w.classWeight == nil {
		return ClassWeight{}, false
	}
	return *w.classWeight, true
}

// Ratio returns the weight applied to the positive-label term.
func (w *WeightedBCELoss[T]) Ratio() T {
	return w.bce.positiveWeight
}

// Forward computes the weighted BCE loss as a shape [1] tensor.
func (w *WeightedBCELoss[T]) Forward(predictions, targets *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	loss, err := w.Loss(predictions, targets)
	if err != nil {
		return nil, err
	}
	return tensor.Scalar(loss), nil
}

// Loss computes the weighted BCE loss.
func (w *WeightedBCELoss[T]) Loss(predictions, targets *tensor.Tensor[T]) (T, error) {
	loss, err := w.bce.Loss(predictions, targets)
	if err != nil {
		return 0, errors.WithMessage(err, "WeightedBCELoss")
	}
	return loss, nil
}
