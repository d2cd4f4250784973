package nn

import (
	"github.com/latent-ml/latent/internal/tensor"
)

// ReLUBackend is an interface for backends that support ReLU activation.
type ReLUBackend interface {
	ReLU(*tensor.RawTensor) *tensor.RawTensor
}

// LeakyReLUBackend is an interface for backends that support LeakyReLU activation.
type LeakyReLUBackend interface {
	LeakyReLU(x *tensor.RawTensor, alpha float32) *tensor.RawTensor
}

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// ReLU is the most commonly used activation function in deep learning.
// It helps with the vanishing gradient problem and is computationally efficient.
//
// Example:
//
//	relu := nn.NewReLU[Backend]()
//	output := relu.Forward(input)  // All negative values become 0
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return &ReLU[B]{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	backend := input.Backend()

	// Check if backend supports ReLU via interface
	if reluBackend, ok := any(backend).(ReLUBackend); ok {
		resultRaw := reluBackend.ReLU(input.Raw())
		return tensor.New[float32, B](resultRaw, backend)
	}

	panic("ReLU: backend must implement ReLU operation")
}

// Parameters returns an empty slice (ReLU has no trainable parameters).
func (r *ReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

// LeakyReLU is a leaky Rectified Linear Unit activation module.
//
// Applies the element-wise function:
//
//	f(x) = x           if x > 0
//	f(x) = alpha * x   otherwise
//
// Unlike ReLU, negative inputs keep a small gradient (scaled by alpha),
// which avoids dead units. The default negative slope is 0.01.
//
// Example:
//
//	lrelu := nn.NewLeakyReLU[Backend](0.01)
//	output := lrelu.Forward(input)
type LeakyReLU[B tensor.Backend] struct {
	negativeSlope float32
}

// NewLeakyReLU creates a new LeakyReLU activation module with the given
// negative slope. Pass 0.01 for the conventional default.
func NewLeakyReLU[B tensor.Backend](negativeSlope float32) *LeakyReLU[B] {
	return &LeakyReLU[B]{negativeSlope: negativeSlope}
}

// Forward applies LeakyReLU activation.
func (l *LeakyReLU[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	backend := input.Backend()

	if lreluBackend, ok := any(backend).(LeakyReLUBackend); ok {
		resultRaw := lreluBackend.LeakyReLU(input.Raw(), l.negativeSlope)
		return tensor.New[float32, B](resultRaw, backend)
	}

	panic("LeakyReLU: backend must implement LeakyReLU operation")
}

// Parameters returns an empty slice (LeakyReLU has no trainable parameters).
func (l *LeakyReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

// NegativeSlope returns the slope applied to negative inputs.
func (l *LeakyReLU[B]) NegativeSlope() float32 {
	return l.negativeSlope
}
