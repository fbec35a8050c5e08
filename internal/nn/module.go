// Package nn implements the loss criteria of the criteria module.
//
// This package provides:
//   - Criterion interface: common surface of all losses
//   - MSELoss, BCELoss: unweighted baselines
//   - WeightedMSELoss: mean squared error with a per-element positive-class weight
//   - WeightedBCELoss: binary cross-entropy rebalanced by a class-weight ratio
//
// Criteria are configured once and hold only read-only state afterwards, so a
// single instance can be shared by goroutines working on disjoint batches.
// Gradients are not computed here; the hosting training loop owns them.
package nn

import (
	"fmt"

	"github.com/born-ml/criteria/internal/tensor"
	"github.com/pkg/errors"
)

// Criterion is the common interface for all loss functions.
//
// Both methods validate that predictions and targets share a shape and
// return tensor.ErrShapeMismatch otherwise. Neither method modifies its
// arguments.
type Criterion[T tensor.Float] interface {
	// Forward computes the loss and returns it as a tensor of shape [1].
	Forward(predictions, targets *tensor.Tensor[T]) (*tensor.Tensor[T], error)

	// Loss computes the loss and returns it as a scalar.
	Loss(predictions, targets *tensor.Tensor[T]) (T, error)
}

// Reduction selects how element-wise losses are combined into a scalar.
type Reduction int

// Supported reductions.
const (
	ReductionMean Reduction = iota // Average over all elements (default).
	ReductionSum                   // Total over all elements.
)

// String returns the reduction name.
func (r Reduction) String() string {
	switch r {
	case ReductionMean:
		return "mean"
	case ReductionSum:
		return "sum"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

func (r Reduction) validate() error {
	switch r {
	case ReductionMean, ReductionSum:
		return nil
	default:
		return errors.Wrapf(ErrInvalidArgument, "unknown reduction %v", r)
	}
}

func reduce[T tensor.Float](losses *tensor.Tensor[T], r Reduction) T {
	if r == ReductionSum {
		return losses.Sum()
	}
	return losses.Mean()
}
