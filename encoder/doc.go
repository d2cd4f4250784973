// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package encoder provides variational-autoencoder encoder networks.
//
// # Overview
//
// An encoder maps a batch of inputs to the parameters of a diagonal Gaussian
// over a latent space: a (mean, logvar) pair, each of shape [batch, latentDim].
// Three variants are provided:
//
//   - BurgessEncoder: image encoder with stride-2 convolutions and
//     fully-connected layers (Burgess et al., "Understanding disentangling
//     in β-VAE", 2018). Supports 32×32 and 64×64 inputs; the 64×64 variant
//     carries one extra convolution.
//   - ConvEncoder: deeper image encoder with batch normalization, LeakyReLU
//     and max pooling, fixed to 32×32 inputs.
//   - DomainEncoder: categorical encoder mapping integer domain IDs to
//     latent Gaussian parameters through an embedding table.
//
// # Basic Usage
//
//	backend := cpu.New()
//	enc, err := encoder.NewBurgess(encoder.BurgessConfig{
//	    ImageChannels: 3,
//	    ImageSize:     64,
//	    LatentDim:     10,
//	}, backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	images := tensor.Randn[float32](tensor.Shape{16, 3, 64, 64}, backend)
//	mean, logvar, err := enc.Encode(images)  // each [16, 10]
//
// Variants can also be constructed by name through the registry:
//
//	v, err := encoder.ParseVariant("Burgess")
//	enc, err := encoder.New(v, cfg, backend)
//
// # Output Layout
//
// Every encoder ends in a single linear projection emitting 2*latentDim
// units per sample, with mean and logvar interleaved: the mean occupies the
// even offsets and the logvar the odd offsets. This keeps the weight layout
// compatible with checkpoints of the reference architectures.
package encoder
