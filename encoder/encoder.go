// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"github.com/latent-ml/latent/nn"
	"github.com/latent-ml/latent/tensor"
)

// Encoder is the interface shared by all encoder variants.
//
// It covers the variant-independent surface. The Encode method is typed per
// variant and therefore not part of this interface: image encoders take a
// float32 image batch, the domain encoder an int32 ID batch.
type Encoder[B tensor.Backend] interface {
	// LatentDim returns the dimensionality of the latent Gaussian.
	LatentDim() int

	// Parameters returns all trainable parameters of the encoder.
	Parameters() []*nn.Parameter[B]
}

// ImageEncoder is implemented by encoders that consume image batches.
type ImageEncoder[B tensor.Backend] interface {
	Encoder[B]

	// Encode maps an image batch [N, C, H, W] to latent Gaussian
	// parameters, each [N, latentDim].
	Encode(x *tensor.Tensor[float32, B]) (mean, logvar *tensor.Tensor[float32, B], err error)
}

// splitGaussian splits a projection [N, 2*latentDim] into mean and logvar,
// each [N, latentDim].
//
// The projection interleaves the two: unit 2i is the i-th mean component and
// unit 2i+1 the i-th logvar component. Reshaping to [N, latentDim, 2] and
// chunking the last dimension selects the even and odd offsets respectively.
func splitGaussian[B tensor.Backend](proj *tensor.Tensor[float32, B], latentDim int) (mean, logvar *tensor.Tensor[float32, B]) {
	batch := proj.Shape()[0]
	pairs := proj.Reshape(batch, latentDim, 2)
	parts := pairs.Chunk(2, -1) // two [N, latentDim, 1]
	mean = parts[0].Squeeze(-1)
	logvar = parts[1].Squeeze(-1)
	return mean, logvar
}
