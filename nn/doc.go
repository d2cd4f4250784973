// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Linear, Conv2D, MaxPool2D, Embedding
//   - Normalization: BatchNorm1D, BatchNorm2D
//   - Activations: ReLU, LeakyReLU
//   - Utilities: Sequential, Module interface, Parameter
//   - Initialization: Xavier, Zeros, Ones, Randn
//
// # Basic Usage
//
//	import (
//	    "github.com/latent-ml/latent/nn"
//	    "github.com/latent-ml/latent/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Build a simple MLP
//	    model := nn.NewSequential(
//	        nn.NewLinear(784, 128, backend),
//	        nn.NewReLU[*cpu.Backend](),
//	        nn.NewLinear(128, 10, backend),
//	    )
//
//	    // Forward pass
//	    output := model.Forward(input)
//	}
//
// # Layers
//
// Linear: Fully connected layer with Xavier initialization
//
//	layer := nn.NewLinear(inFeatures, outFeatures, backend)
//
// Conv2D: 2D convolutional layer with im2col algorithm
//
//	conv := nn.NewConv2D(inChannels, outChannels, kernelH, kernelW, stride, padding, useBias, backend)
//
// MaxPool2D: 2D max pooling layer
//
//	pool := nn.NewMaxPool2D(kernelSize, stride, padding, backend)
//
// Embedding: Lookup table mapping discrete IDs to dense vectors
//
//	embed := nn.NewEmbedding[B](numEmbeddings, embeddingDim, backend)
//
// # Normalization
//
// BatchNorm1D and BatchNorm2D normalize with statistics of the current batch:
//
//	norm1d := nn.NewBatchNorm1D[B](features, backend)
//	norm2d := nn.NewBatchNorm2D[B](channels, backend)
//
// # Activations
//
//	relu := nn.NewReLU[B]()
//	lrelu := nn.NewLeakyReLU[B](0.01)
//
// # Sequential Models
//
// Build models by composing layers:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 256, backend),
//	    nn.NewReLU[B](),
//	    nn.NewLinear(256, 128, backend),
//	    nn.NewReLU[B](),
//	    nn.NewLinear(128, 10, backend),
//	)
//
// # Parameter Management
//
// Access model parameters:
//
//	params := model.Parameters()
//	for _, param := range params {
//	    fmt.Println(param.Name(), param.Tensor().Shape())
//	}
package nn
