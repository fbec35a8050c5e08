package nn

import (
	"github.com/born-ml/criteria/internal/tensor"
	"github.com/pkg/errors"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = reduce((predictions - targets)²)
//
// MSE is commonly used for regression tasks where the goal is to predict
// continuous values.
//
// Example:
//
//	mse, _ := nn.NewMSELoss[float32](nn.ReductionMean)
//	loss, err := mse.Loss(predictions, targets)
type MSELoss[T tensor.Float] struct {
	reduction Reduction
}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss[T tensor.Float](reduction Reduction) (*MSELoss[T], error) {
	if err := reduction.validate(); err != nil {
		return nil, errors.WithMessage(err, "MSELoss")
	}
	return &MSELoss[T]{
		reduction: reduction,
	}, nil
}

// Reduction returns the configured reduction.
func (m *MSELoss[T]) Reduction() Reduction {
	return m.reduction
}

// Forward computes the MSE loss as a shape [1] tensor.
func (m *MSELoss[T]) Forward(predictions, targets *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	loss, err := m.Loss(predictions, targets)
	if err != nil {
		return nil, err
	}
	return tensor.Scalar(loss), nil
}

// Loss computes the MSE loss.
//
// Parameters:
//   - predictions: Model predictions with shape [batch_size, ...]
//   - targets: Ground truth targets with same shape as predictions
func (m *MSELoss[T]) Loss(predictions, targets *tensor.Tensor[T]) (T, error) {
	diff, err := predictions.Sub(targets)
	if err != nil {
		return 0, errors.WithMessage(err, "MSELoss")
	}

	squared, err := diff.Mul(diff)
	if err != nil {
		return 0, errors.WithMessage(err, "MSELoss")
	}

	return reduce(squared, m.reduction), nil
}

// BCELoss computes binary cross-entropy between probabilities and 0/1 labels.
//
// Loss = mean(-w·t·log(p) - (1-t)·log(1-p))
//
// w is a uniform weight on the positive-label term and is 1 for the plain
// loss. Inputs are flattened before the computation. A term whose label
// coefficient is 0 contributes 0, so saturated but correct predictions
// (p=1 for t=1, p=0 for t=0) give a zero loss. Predictions are not clamped:
// p=0 for t=1 propagates +Inf and p outside [0, 1] propagates NaN, and the
// caller is expected to detect them.
type BCELoss[T tensor.Float] struct {
	positiveWeight T
}

// NewBCELoss creates an unweighted binary cross-entropy loss.
func NewBCELoss[T tensor.Float]() *BCELoss[T] {
	return &BCELoss[T]{
		positiveWeight: 1,
	}
}

// Forward computes the BCE loss as a shape [1] tensor.
func (b *BCELoss[T]) Forward(predictions, targets *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	loss, err := b.Loss(predictions, targets)
	if err != nil {
		return nil, err
	}
	return tensor.Scalar(loss), nil
}

// Loss computes the BCE loss.
func (b *BCELoss[T]) Loss(predictions, targets *tensor.Tensor[T]) (T, error) {
	if err := tensor.CheckSameShape(predictions, targets); err != nil {
		return 0, errors.WithMessage(err, "BCELoss")
	}

	p := predictions.Flatten()
	t := targets.Flatten()

	// -w·t·log(p)
	pos, err := t.XLogY(p)
	if err != nil {
		return 0, errors.WithMessage(err, "BCELoss")
	}
	pos = pos.MulScalar(-b.positiveWeight)

	// -(1-t)·log(1-p)
	neg, err := t.OneMinus().XLogY(p.OneMinus())
	if err != nil {
		return 0, errors.WithMessage(err, "BCELoss")
	}
	neg = neg.MulScalar(-1)

	losses, err := pos.Add(neg)
	if err != nil {
		return 0, errors.WithMessage(err, "BCELoss")
	}
	return losses.Mean(), nil
}
