package nn

import (
	"github.com/latent-ml/latent/internal/tensor"
)

// Parameter represents a named parameter of a neural network module.
//
// Parameters typically hold the weights and biases of layers. Keeping
// them named makes state dictionaries and debugging output readable.
//
// Example:
//
//	// Create a weight parameter
//	weight := nn.NewParameter("weight", weightTensor)
//
//	// Access the tensor
//	w := weight.Tensor()
type Parameter[B tensor.Backend] struct {
	name   string                     // Parameter name (e.g., "weight", "bias")
	tensor *tensor.Tensor[float32, B] // The parameter tensor
}

// NewParameter creates a new named parameter.
//
// The parameter tensor should be initialized before creating the Parameter.
//
// Parameters:
//   - name: Descriptive name for this parameter (e.g., "linear1.weight")
//   - tensor: The initialized parameter tensor
//
// Returns a new Parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// SetTensor replaces the parameter tensor.
//
// This is used when loading parameters from a state dictionary.
func (p *Parameter[B]) SetTensor(t *tensor.Tensor[float32, B]) {
	p.tensor = t
}
