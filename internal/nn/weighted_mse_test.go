package nn_test

import (
	"math"
	"sync"
	"testing"

	"github.com/born-ml/criteria/internal/nn"
	"github.com/born-ml/criteria/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedMSELoss_Defaults(t *testing.T) {
	criterion, err := nn.NewWeightedMSELoss[float32]()
	require.NoError(t, err)
	assert.Equal(t, nn.DefaultWeightedMSEConfig(), criterion.Config())
	assert.Equal(t, nn.WeightedMSEConfig{
		PositiveClassWeight: 1,
		PositiveClassValue:  1,
		NegativeClassWeight: 1,
		Reduction:           nn.ReductionMean,
	}, criterion.Config())
}

// prediction = [0.9, 0.1], target = [1, 0], weight 4 -> mean(0.04, 0.01).
func TestWeightedMSELoss_Scenario(t *testing.T) {
	criterion, err := nn.NewWeightedMSELoss[float64](nn.WithPositiveClassWeight(4.0))
	require.NoError(t, err)

	pred := fromSlice(t, []float64{0.9, 0.1}, 2)
	target := fromSlice(t, []float64{1.0, 0.0}, 2)

	assert.Equal(t, []float64{4, 1}, criterion.Weights(target).Data())

	loss, err := criterion.Loss(pred, target)
	require.NoError(t, err)
	assert.InDelta(t, 0.025, loss, 1e-12)

	out, err := criterion.Forward(pred, target)
	require.NoError(t, err)
	v, err := out.Item()
	require.NoError(t, err)
	assert.InDelta(t, 0.025, v, 1e-12)

	criterion32, err := nn.NewWeightedMSELoss[float32](nn.WithPositiveClassWeight(4.0))
	require.NoError(t, err)
	loss32, err := criterion32.Loss(fromSlice(t, []float32{0.9, 0.1}, 2), fromSlice(t, []float32{1, 0}, 2))
	require.NoError(t, err)
	assert.InDelta(t, 0.025, float64(loss32), 1e-6)
}

func TestWeightedMSELoss_SumReduction(t *testing.T) {
	criterion, err := nn.NewWeightedMSELoss[float64](
		nn.WithPositiveClassWeight(4.0),
		nn.WithReduction(nn.ReductionSum),
	)
	require.NoError(t, err)

	loss, err := criterion.Loss(fromSlice(t, []float64{0.9, 0.1}, 2), fromSlice(t, []float64{1.0, 0.0}, 2))
	require.NoError(t, err)
	assert.InDelta(t, 0.05, loss, 1e-12)
}

func TestWeightedMSELoss_UnitWeightMatchesMSE(t *testing.T) {
	pred := fromSlice(t, []float64{0.3, -1.2, 2.5, 0.0, 7.1, 0.4}, 2, 3)
	target := fromSlice(t, []float64{0.0, 1.0, 2.0, 0.5, 7.0, 1.0}, 2, 3)

	mse, err := nn.NewMSELoss[float64](nn.ReductionMean)
	require.NoError(t, err)
	want, err := mse.Loss(pred, target)
	require.NoError(t, err)

	tests := []struct {
		name string
		opts []nn.WeightedMSEOption
	}{
		{"defaults", nil},
		{"no positive element", []nn.WeightedMSEOption{nn.WithPositiveClassValue(42)}},
		{"weight 1 with positives", []nn.WeightedMSEOption{nn.WithPositiveClassWeight(1), nn.WithPositiveClassValue(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criterion, err := nn.NewWeightedMSELoss[float64](tt.opts...)
			require.NoError(t, err)
			got, err := criterion.Loss(pred, target)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestWeightedMSELoss_AllPositiveScalesMSE(t *testing.T) {
	pred := fromSlice(t, []float64{0.9, 0.2, 0.5, 1.3}, 4)
	target := fromSlice(t, []float64{1, 1, 1, 1}, 4)

	mse, err := nn.NewMSELoss[float64](nn.ReductionMean)
	require.NoError(t, err)
	plain, err := mse.Loss(pred, target)
	require.NoError(t, err)

	for _, w := range []float64{0, 0.5, 2.5, 4, 10} {
		criterion, err := nn.NewWeightedMSELoss[float64](nn.WithPositiveClassWeight(w))
		require.NoError(t, err)
		got, err := criterion.Loss(pred, target)
		require.NoError(t, err)
		assert.InDelta(t, w*plain, got, 1e-12, "weight %v", w)
	}
}

func TestWeightedMSELoss_ZeroPositiveWeight(t *testing.T) {
	criterion, err := nn.NewWeightedMSELoss[float32](nn.WithPositiveClassWeight(0))
	require.NoError(t, err)

	target := fromSlice(t, []float32{1, 0}, 2)
	assert.Equal(t, []float32{0, 1}, criterion.Weights(target).Data())

	loss, err := criterion.Loss(fromSlice(t, []float32{0.9, 0.1}, 2), target)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(float64(loss)))
	assert.InDelta(t, 0.005, float64(loss), 1e-7)
}

func TestWeightedMSELoss_NegativeClassWeight(t *testing.T) {
	criterion, err := nn.NewWeightedMSELoss[float64](
		nn.WithPositiveClassWeight(4),
		nn.WithNegativeClassWeight(2),
	)
	require.NoError(t, err)

	target := fromSlice(t, []float64{1, 0}, 2)
	assert.Equal(t, []float64{4, 2}, criterion.Weights(target).Data())

	loss, err := criterion.Loss(fromSlice(t, []float64{0.9, 0.1}, 2), target)
	require.NoError(t, err)
	assert.InDelta(t, 0.03, loss, 1e-12)
}

func TestWeightedMSELoss_CustomPositiveValue(t *testing.T) {
	criterion, err := nn.NewWeightedMSELoss[float64](
		nn.WithPositiveClassWeight(9),
		nn.WithPositiveClassValue(-1),
	)
	require.NoError(t, err)

	target := fromSlice(t, []float64{-1, 1, 0}, 3)
	assert.Equal(t, []float64{9, 1, 1}, criterion.Weights(target).Data())

	loss, err := criterion.Loss(fromSlice(t, []float64{0, 1, 0}, 3), target)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, loss, 1e-12) // (9·1 + 0 + 0) / 3
}

func TestWeightedMSELoss_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []nn.WeightedMSEOption
	}{
		{"negative positive weight", []nn.WeightedMSEOption{nn.WithPositiveClassWeight(-0.5)}},
		{"NaN positive weight", []nn.WeightedMSEOption{nn.WithPositiveClassWeight(math.NaN())}},
		{"infinite positive weight", []nn.WeightedMSEOption{nn.WithPositiveClassWeight(math.Inf(1))}},
		{"negative negative weight", []nn.WeightedMSEOption{nn.WithNegativeClassWeight(-1)}},
		{"unknown reduction", []nn.WeightedMSEOption{nn.WithReduction(nn.Reduction(3))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criterion, err := nn.NewWeightedMSELoss[float32](tt.opts...)
			assert.Nil(t, criterion)
			assert.ErrorIs(t, err, nn.ErrInvalidArgument)
		})
	}

	config := nn.DefaultWeightedMSEConfig()
	config.PositiveClassWeight = -0.5
	_, err := nn.NewWeightedMSELossFromConfig[float64](config)
	require.ErrorIs(t, err, nn.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "-0.5")
}

func TestWeightedMSELoss_ShapeMismatch(t *testing.T) {
	criterion, err := nn.NewWeightedMSELoss[float64](nn.WithPositiveClassWeight(4))
	require.NoError(t, err)

	_, err = criterion.Loss(fromSlice(t, []float64{1, 2, 3, 4}, 2, 2), fromSlice(t, []float64{1, 2, 3, 4}, 4))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = criterion.Forward(fromSlice(t, []float64{1, 2}, 2), fromSlice(t, []float64{1, 2, 3}, 3))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestWeightedMSELoss_DoesNotMutateInputs(t *testing.T) {
	criterion, err := nn.NewWeightedMSELoss[float32](nn.WithPositiveClassWeight(4))
	require.NoError(t, err)

	pred := fromSlice(t, []float32{0.9, 0.1, 0.6}, 3)
	target := fromSlice(t, []float32{1, 0, 1}, 3)

	_, err = criterion.Loss(pred, target)
	require.NoError(t, err)
	_ = criterion.Weights(target)

	assert.Equal(t, []float32{0.9, 0.1, 0.6}, pred.Data())
	assert.Equal(t, []float32{1, 0, 1}, target.Data())
}

func TestWeightedMSELoss_Concurrent(t *testing.T) {
	criterion, err := nn.NewWeightedMSELoss[float64](nn.WithPositiveClassWeight(4))
	require.NoError(t, err)

	const workers = 16
	results := make([]float64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pred, err := tensor.FromSlice([]float64{0.9, 0.1}, tensor.Shape{2})
			if err != nil {
				errs[i] = err
				return
			}
			target, err := tensor.FromSlice([]float64{1, 0}, tensor.Shape{2})
			if err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = criterion.Loss(pred, target)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.InDelta(t, 0.025, results[i], 1e-12)
	}
}
