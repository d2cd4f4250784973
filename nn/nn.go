// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/tensor"
)

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(784, 128, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// Conv2D represents a 2D convolutional layer.
type Conv2D[B tensor.Backend] = nn.Conv2D[B]

// NewConv2D creates a new 2D convolutional layer.
//
// Example:
//
//	backend := cpu.New()
//	conv := nn.NewConv2D(1, 32, 3, 3, 1, 1, true, backend)  // in_channels=1, out_channels=32, kernel=3x3, stride=1, padding=1, useBias=true
func NewConv2D[B tensor.Backend](
	inChannels, outChannels int,
	kernelH, kernelW int,
	stride, padding int,
	useBias bool,
	backend B,
) *Conv2D[B] {
	return nn.NewConv2D(inChannels, outChannels, kernelH, kernelW, stride, padding, useBias, backend)
}

// MaxPool2D represents a 2D max pooling layer.
type MaxPool2D[B tensor.Backend] = nn.MaxPool2D[B]

// NewMaxPool2D creates a new 2D max pooling layer.
//
// Example:
//
//	backend := cpu.New()
//	pool := nn.NewMaxPool2D(2, 2, 0, backend)  // kernel=2, stride=2, padding=0
func NewMaxPool2D[B tensor.Backend](kernelSize, stride, padding int, backend B) *MaxPool2D[B] {
	return nn.NewMaxPool2D(kernelSize, stride, padding, backend)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU[B tensor.Backend] = nn.ReLU[B]

// NewReLU creates a new ReLU activation layer.
//
// Example:
//
//	relu := nn.NewReLU[B]()
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return nn.NewReLU[B]()
}

// LeakyReLU represents the leaky Rectified Linear Unit activation function.
// LeakyReLU(x) = x for x > 0, alpha * x otherwise.
type LeakyReLU[B tensor.Backend] = nn.LeakyReLU[B]

// NewLeakyReLU creates a new LeakyReLU activation layer with the given
// negative slope (0.01 is the conventional default).
//
// Example:
//
//	lrelu := nn.NewLeakyReLU[B](0.01)
func NewLeakyReLU[B tensor.Backend](negativeSlope float32) *LeakyReLU[B] {
	return nn.NewLeakyReLU[B](negativeSlope)
}

// Embedding and Normalization Layers

// Embedding represents a lookup table for embeddings.
type Embedding[B tensor.Backend] = nn.Embedding[B]

// NewEmbedding creates a new embedding layer.
//
// Example:
//
//	backend := cpu.New()
//	embed := nn.NewEmbedding[B](5, 512, backend)  // num_embeddings=5, dim=512
//	ids, _ := tensor.FromSlice([]int32{1, 3, 0}, tensor.Shape{3}, backend)
//	embeddings := embed.Forward(ids)  // [3, 512]
func NewEmbedding[B tensor.Backend](numEmbeddings, embeddingDim int, backend B) *Embedding[B] {
	return nn.NewEmbedding(numEmbeddings, embeddingDim, backend)
}

// NewEmbeddingWithWeight creates an embedding layer from an existing weight tensor.
//
// This is useful when loading pre-trained embeddings.
//
// Example:
//
//	weights := tensor.Randn[float32](tensor.Shape{5, 512}, backend)
//	embed := nn.NewEmbeddingWithWeight(weights)
func NewEmbeddingWithWeight[B tensor.Backend](weight *tensor.Tensor[float32, B]) *Embedding[B] {
	return nn.NewEmbeddingWithWeight(weight)
}

// BatchNorm1D represents batch normalization over [batch, features] inputs.
type BatchNorm1D[B tensor.Backend] = nn.BatchNorm1D[B]

// NewBatchNorm1D creates a new BatchNorm1D layer.
//
// Example:
//
//	backend := cpu.New()
//	norm := nn.NewBatchNorm1D[B](256, backend)
//	output := norm.Forward(input)  // [N, 256] -> [N, 256]
func NewBatchNorm1D[B tensor.Backend](numFeatures int, backend B) *BatchNorm1D[B] {
	return nn.NewBatchNorm1D(numFeatures, backend)
}

// BatchNorm2D represents batch normalization over [batch, channels, height, width] inputs.
type BatchNorm2D[B tensor.Backend] = nn.BatchNorm2D[B]

// NewBatchNorm2D creates a new BatchNorm2D layer.
//
// Example:
//
//	backend := cpu.New()
//	norm := nn.NewBatchNorm2D[B](64, backend)
//	output := norm.Forward(input)  // [N, 64, H, W] -> [N, 64, H, W]
func NewBatchNorm2D[B tensor.Backend](numChannels int, backend B) *BatchNorm2D[B] {
	return nn.NewBatchNorm2D(numChannels, backend)
}

// Sequential

// Sequential represents a sequential container of modules.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a new sequential model.
//
// Example:
//
//	backend := cpu.New()
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewReLU[B](),
//	    nn.NewLinear(128, 10, backend),
//	)
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Initialization functions

// Xavier initializes a tensor using Xavier/Glorot initialization.
//
// Example:
//
//	backend := cpu.New()
//	weights := nn.Xavier(784, 128, tensor.Shape{128, 784}, backend)
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Xavier(fanIn, fanOut, shape, backend)
}

// Zeros initializes a tensor with zeros (for biases).
//
// Example:
//
//	backend := cpu.New()
//	bias := nn.Zeros(tensor.Shape{128}, backend)
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Zeros(shape, backend)
}

// Ones initializes a tensor with ones.
//
// Example:
//
//	backend := cpu.New()
//	weights := nn.Ones(tensor.Shape{128, 784}, backend)
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Ones(shape, backend)
}

// Randn initializes a tensor with random values from N(0, 1).
//
// Example:
//
//	backend := cpu.New()
//	weights := nn.Randn(tensor.Shape{128, 784}, backend)
func Randn[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Randn(shape, backend)
}
