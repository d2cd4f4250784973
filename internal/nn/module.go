// Package nn implements neural network modules for the Latent library.
//
// This package provides building blocks for constructing encoder networks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable parameters
//   - Linear: Fully connected layer
//   - Conv2D, MaxPool2D: Convolutional building blocks
//   - BatchNorm1D, BatchNorm2D: Batch normalization
//   - Activations: ReLU, LeakyReLU
//   - Embedding: Discrete ID lookup table
//   - Sequential: Container for stacking layers
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
package nn

import (
	"github.com/latent-ml/latent/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build complex architectures:
//
//	model := nn.NewSequential[Backend](
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewReLU[Backend](),
//	    nn.NewLinear(128, 10, backend),
//	)
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	//
	// The input tensor should have the appropriate shape for this module.
	// For example, Linear expects [batch_size, in_features].
	//
	// Returns the output tensor with shape determined by the module type.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module.
	//
	// This includes weights, biases, and any nested module parameters.
	// Returns an empty slice for modules without trainable parameters
	// (e.g., activation functions).
	Parameters() []*Parameter[B]
}

// StateDicter is an optional interface for modules that can export and
// import their parameters by name.
//
// Containers like Sequential use a type assertion against this interface,
// so stateless modules (activations, pooling) do not have to implement it.
type StateDicter[B tensor.Backend] interface {
	// StateDict returns a map of parameter names to raw tensors.
	StateDict() map[string]*tensor.RawTensor

	// LoadStateDict loads parameters from a state dictionary.
	// Returns an error on missing keys or shape/dtype mismatches.
	LoadStateDict(stateDict map[string]*tensor.RawTensor) error
}
