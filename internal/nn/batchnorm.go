package nn

import (
	"fmt"

	"github.com/latent-ml/latent/internal/tensor"
)

// BatchNorm1D normalizes each feature over the batch dimension.
//
// Performs: y = gamma * (x - mean) / sqrt(var + eps) + beta
//
// Mean and variance are computed from the current batch (biased variance,
// dividing by N). Gamma is initialized to ones, beta to zeros.
//
// Input shape:  [batch, features]
// Output shape: [batch, features]
//
// Example:
//
//	bn := nn.NewBatchNorm1D(256, backend)
//	output := bn.Forward(input) // per-feature zero mean, unit variance
type BatchNorm1D[B tensor.Backend] struct {
	numFeatures int
	eps         float32

	gamma *Parameter[B] // [features] scale
	beta  *Parameter[B] // [features] shift

	backend B
}

// NewBatchNorm1D creates a new BatchNorm1D layer with eps=1e-5.
func NewBatchNorm1D[B tensor.Backend](numFeatures int, backend B) *BatchNorm1D[B] {
	if numFeatures <= 0 {
		panic(fmt.Sprintf("batchnorm1d: invalid feature count %d", numFeatures))
	}

	return &BatchNorm1D[B]{
		numFeatures: numFeatures,
		eps:         1e-5,
		gamma:       NewParameter("batchnorm1d.gamma", Ones(tensor.Shape{numFeatures}, backend)),
		beta:        NewParameter("batchnorm1d.beta", Zeros(tensor.Shape{numFeatures}, backend)),
		backend:     backend,
	}
}

// Forward normalizes the input using batch statistics.
//
// Input: [batch, features]
// Output: [batch, features].
func (bn *BatchNorm1D[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 2 {
		panic(fmt.Sprintf("batchnorm1d: expected 2D input [N,F], got %dD", len(inputShape)))
	}
	if inputShape[1] != bn.numFeatures {
		panic(fmt.Sprintf("batchnorm1d: input features %d != expected %d", inputShape[1], bn.numFeatures))
	}

	// Batch statistics over the N dimension
	mean := input.MeanDim(0, true) // [1, F]
	centered := input.Sub(mean)    // [N, F]

	// Biased variance: mean of squared deviations
	variance := centered.Mul(centered).MeanDim(0, true) // [1, F]
	std := variance.AddScalar(bn.eps).Sqrt()            // [1, F]

	normalized := centered.Div(std) // [N, F]

	// Scale and shift
	gamma := bn.gamma.Tensor().Reshape(1, bn.numFeatures)
	beta := bn.beta.Tensor().Reshape(1, bn.numFeatures)
	return normalized.Mul(gamma).Add(beta)
}

// Parameters returns the trainable parameters [gamma, beta].
func (bn *BatchNorm1D[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{bn.gamma, bn.beta}
}

// NumFeatures returns the number of normalized features.
func (bn *BatchNorm1D[B]) NumFeatures() int {
	return bn.numFeatures
}

// String returns a string representation of the layer.
func (bn *BatchNorm1D[B]) String() string {
	return fmt.Sprintf("BatchNorm1D(num_features=%d, eps=%g)", bn.numFeatures, bn.eps)
}

// StateDict returns a map of parameter names to raw tensors.
func (bn *BatchNorm1D[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{
		"gamma": bn.gamma.Tensor().Raw(),
		"beta":  bn.beta.Tensor().Raw(),
	}
}

// LoadStateDict loads gamma and beta from a state dictionary.
func (bn *BatchNorm1D[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	return loadScaleShift(stateDict, bn.gamma, bn.beta, tensor.Shape{bn.numFeatures})
}

// BatchNorm2D normalizes each channel over the batch and spatial dimensions.
//
// Performs: y = gamma * (x - mean) / sqrt(var + eps) + beta
//
// Mean and variance are computed per channel from the current batch
// (biased variance). Gamma is initialized to ones, beta to zeros.
//
// Input shape:  [batch, channels, height, width]
// Output shape: [batch, channels, height, width]
//
// Example:
//
//	bn := nn.NewBatchNorm2D(64, backend)
//	output := bn.Forward(input) // per-channel zero mean, unit variance
type BatchNorm2D[B tensor.Backend] struct {
	numChannels int
	eps         float32

	gamma *Parameter[B] // [channels] scale
	beta  *Parameter[B] // [channels] shift

	backend B
}

// NewBatchNorm2D creates a new BatchNorm2D layer with eps=1e-5.
func NewBatchNorm2D[B tensor.Backend](numChannels int, backend B) *BatchNorm2D[B] {
	if numChannels <= 0 {
		panic(fmt.Sprintf("batchnorm2d: invalid channel count %d", numChannels))
	}

	return &BatchNorm2D[B]{
		numChannels: numChannels,
		eps:         1e-5,
		gamma:       NewParameter("batchnorm2d.gamma", Ones(tensor.Shape{numChannels}, backend)),
		beta:        NewParameter("batchnorm2d.beta", Zeros(tensor.Shape{numChannels}, backend)),
		backend:     backend,
	}
}

// Forward normalizes the input using batch statistics.
//
// Input: [batch, channels, height, width]
// Output: [batch, channels, height, width].
func (bn *BatchNorm2D[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 4 {
		panic(fmt.Sprintf("batchnorm2d: expected 4D input [N,C,H,W], got %dD", len(inputShape)))
	}
	if inputShape[1] != bn.numChannels {
		panic(fmt.Sprintf("batchnorm2d: input channels %d != expected %d", inputShape[1], bn.numChannels))
	}

	// Per-channel statistics over N, H and W
	mean := input.MeanDim(0, true).MeanDim(2, true).MeanDim(3, true) // [1, C, 1, 1]
	centered := input.Sub(mean)                                      // [N, C, H, W]

	variance := centered.Mul(centered).MeanDim(0, true).MeanDim(2, true).MeanDim(3, true) // [1, C, 1, 1]
	std := variance.AddScalar(bn.eps).Sqrt()                                              // [1, C, 1, 1]

	normalized := centered.Div(std) // [N, C, H, W]

	// Scale and shift
	gamma := bn.gamma.Tensor().Reshape(1, bn.numChannels, 1, 1)
	beta := bn.beta.Tensor().Reshape(1, bn.numChannels, 1, 1)
	return normalized.Mul(gamma).Add(beta)
}

// Parameters returns the trainable parameters [gamma, beta].
func (bn *BatchNorm2D[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{bn.gamma, bn.beta}
}

// NumChannels returns the number of normalized channels.
func (bn *BatchNorm2D[B]) NumChannels() int {
	return bn.numChannels
}

// String returns a string representation of the layer.
func (bn *BatchNorm2D[B]) String() string {
	return fmt.Sprintf("BatchNorm2D(num_channels=%d, eps=%g)", bn.numChannels, bn.eps)
}

// StateDict returns a map of parameter names to raw tensors.
func (bn *BatchNorm2D[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{
		"gamma": bn.gamma.Tensor().Raw(),
		"beta":  bn.beta.Tensor().Raw(),
	}
}

// LoadStateDict loads gamma and beta from a state dictionary.
func (bn *BatchNorm2D[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	return loadScaleShift(stateDict, bn.gamma, bn.beta, tensor.Shape{bn.numChannels})
}

// loadScaleShift copies gamma and beta entries into the given parameters,
// validating shape and dtype.
func loadScaleShift[B tensor.Backend](
	stateDict map[string]*tensor.RawTensor,
	gamma, beta *Parameter[B],
	expectedShape tensor.Shape,
) error {
	for _, entry := range []struct {
		name  string
		param *Parameter[B]
	}{
		{"gamma", gamma},
		{"beta", beta},
	} {
		raw, ok := stateDict[entry.name]
		if !ok {
			return fmt.Errorf("missing %s in state dict", entry.name)
		}
		if !raw.Shape().Equal(expectedShape) {
			return fmt.Errorf("%s shape mismatch: expected %v, got %v",
				entry.name, expectedShape, raw.Shape())
		}
		if raw.DType() != tensor.Float32 {
			return fmt.Errorf("%s dtype mismatch: expected float32, got %v",
				entry.name, raw.DType())
		}
		copy(entry.param.Tensor().Data(), raw.AsFloat32())
	}

	return nil
}
