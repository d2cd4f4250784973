// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"
	"strings"

	"github.com/latent-ml/latent/nn"
	"github.com/latent-ml/latent/tensor"
)

const (
	// convImageSize is the only input geometry the ConvEncoder supports:
	// two stride-2 pools take 32×32 to 8×8, and 128·8·8 = 8192 is the
	// flatten dimension the first fully-connected layer is sized for.
	convImageSize = 32
	// convFlatDim is the flattened feature size entering the FC stack.
	convFlatDim = 128 * 8 * 8
	// convNegativeSlope is the LeakyReLU slope used throughout.
	convNegativeSlope = 0.01
)

// ConvConfig configures a ConvEncoder.
type ConvConfig struct {
	// ImageChannels is the number of input channels. Defaults to 3.
	ImageChannels int
	// LatentDim is the dimensionality of the latent Gaussian.
	LatentDim int
}

// ConvEncoder is a deeper image encoder with batch normalization,
// LeakyReLU activations and max pooling, fixed to 32×32 inputs.
//
// Architecture (for latent dimension L):
//
//	Input: [N, C, 32, 32]
//	Conv(C → 64, k=5, s=1, p=2) + BatchNorm2D + LeakyReLU + MaxPool(3, 2, 1)  → [N, 64, 16, 16]
//	Conv(64 → 64, 5, 1, 2) + BatchNorm2D + LeakyReLU + MaxPool(3, 2, 1)       → [N, 64, 8, 8]
//	Conv(64 → 128, 5, 1, 2) + BatchNorm2D + LeakyReLU                         → [N, 128, 8, 8]
//	Flatten → [N, 8192]
//	Linear(8192, 3072) + BatchNorm1D + LeakyReLU
//	Linear(3072, 2048) + BatchNorm1D + LeakyReLU
//	Linear(2048, 2·L) → interleaved (mean, logvar)
type ConvEncoder[B tensor.Backend] struct {
	cfg ConvConfig

	conv1 *nn.Conv2D[B]
	bn1   *nn.BatchNorm2D[B]
	pool1 *nn.MaxPool2D[B]
	conv2 *nn.Conv2D[B]
	bn2   *nn.BatchNorm2D[B]
	pool2 *nn.MaxPool2D[B]
	conv3 *nn.Conv2D[B]
	bn3   *nn.BatchNorm2D[B]

	fc1   *nn.Linear[B]
	bnFc1 *nn.BatchNorm1D[B]
	fc2   *nn.Linear[B]
	bnFc2 *nn.BatchNorm1D[B]
	proj  *nn.Linear[B]

	lrelu *nn.LeakyReLU[B]
}

// NewConv creates a new ConvEncoder.
//
// Zero-valued ImageChannels defaults to 3. LatentDim must be positive.
func NewConv[B tensor.Backend](cfg ConvConfig, backend B) (*ConvEncoder[B], error) {
	if cfg.ImageChannels == 0 {
		cfg.ImageChannels = 3
	}
	if cfg.ImageChannels < 0 {
		return nil, fmt.Errorf("conv encoder: invalid image channels %d", cfg.ImageChannels)
	}
	if cfg.LatentDim <= 0 {
		return nil, fmt.Errorf("conv encoder: invalid latent dim %d", cfg.LatentDim)
	}

	return &ConvEncoder[B]{
		cfg: cfg,

		conv1: nn.NewConv2D(cfg.ImageChannels, 64, 5, 5, 1, 2, true, backend),
		bn1:   nn.NewBatchNorm2D(64, backend),
		pool1: nn.NewMaxPool2D(3, 2, 1, backend),
		conv2: nn.NewConv2D(64, 64, 5, 5, 1, 2, true, backend),
		bn2:   nn.NewBatchNorm2D(64, backend),
		pool2: nn.NewMaxPool2D(3, 2, 1, backend),
		conv3: nn.NewConv2D(64, 128, 5, 5, 1, 2, true, backend),
		bn3:   nn.NewBatchNorm2D(128, backend),

		fc1:   nn.NewLinear(convFlatDim, 3072, backend),
		bnFc1: nn.NewBatchNorm1D(3072, backend),
		fc2:   nn.NewLinear(3072, 2048, backend),
		bnFc2: nn.NewBatchNorm1D(2048, backend),
		proj:  nn.NewLinear(2048, 2*cfg.LatentDim, backend),

		lrelu: nn.NewLeakyReLU[B](convNegativeSlope),
	}, nil
}

// Encode maps an image batch to latent Gaussian parameters.
//
// Input: [N, ImageChannels, 32, 32]
// Output: mean and logvar, each [N, LatentDim].
func (e *ConvEncoder[B]) Encode(x *tensor.Tensor[float32, B]) (mean, logvar *tensor.Tensor[float32, B], err error) {
	shape := x.Shape()
	if len(shape) != 4 {
		return nil, nil, fmt.Errorf("conv encoder: expected 4D input [N,C,H,W], got %dD", len(shape))
	}
	if shape[1] != e.cfg.ImageChannels {
		return nil, nil, fmt.Errorf("conv encoder: expected %d input channels, got %d", e.cfg.ImageChannels, shape[1])
	}
	if shape[2] != convImageSize || shape[3] != convImageSize {
		return nil, nil, fmt.Errorf(
			"conv encoder: expected %dx%d input (flatten dimension %d = 128*8*8 after two stride-2 pools), got %dx%d",
			convImageSize, convImageSize, convFlatDim, shape[2], shape[3])
	}

	h := e.pool1.Forward(e.lrelu.Forward(e.bn1.Forward(e.conv1.Forward(x)))) // [N, 64, 16, 16]
	h = e.pool2.Forward(e.lrelu.Forward(e.bn2.Forward(e.conv2.Forward(h))))  // [N, 64, 8, 8]
	h = e.lrelu.Forward(e.bn3.Forward(e.conv3.Forward(h)))                   // [N, 128, 8, 8]

	batch := h.Shape()[0]
	h = h.Reshape(batch, convFlatDim)

	h = e.lrelu.Forward(e.bnFc1.Forward(e.fc1.Forward(h))) // [N, 3072]
	h = e.lrelu.Forward(e.bnFc2.Forward(e.fc2.Forward(h))) // [N, 2048]
	proj := e.proj.Forward(h)                              // [N, 2L]

	mean, logvar = splitGaussian(proj, e.cfg.LatentDim)
	return mean, logvar, nil
}

// LatentDim returns the dimensionality of the latent Gaussian.
func (e *ConvEncoder[B]) LatentDim() int {
	return e.cfg.LatentDim
}

// Parameters returns all trainable parameters.
func (e *ConvEncoder[B]) Parameters() []*nn.Parameter[B] {
	params := make([]*nn.Parameter[B], 0, 22)
	params = append(params, e.conv1.Parameters()...)
	params = append(params, e.bn1.Parameters()...)
	params = append(params, e.conv2.Parameters()...)
	params = append(params, e.bn2.Parameters()...)
	params = append(params, e.conv3.Parameters()...)
	params = append(params, e.bn3.Parameters()...)
	params = append(params, e.fc1.Parameters()...)
	params = append(params, e.bnFc1.Parameters()...)
	params = append(params, e.fc2.Parameters()...)
	params = append(params, e.bnFc2.Parameters()...)
	params = append(params, e.proj.Parameters()...)
	return params
}

// String returns a string representation of the architecture.
func (e *ConvEncoder[B]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ConvEncoder(latent_dim=%d,\n", e.cfg.LatentDim)
	fmt.Fprintf(&b, "  %s\n  %s\n  LeakyReLU(%g)\n  %s\n", e.conv1.String(), e.bn1.String(), e.lrelu.NegativeSlope(), e.pool1.String())
	fmt.Fprintf(&b, "  %s\n  %s\n  LeakyReLU(%g)\n  %s\n", e.conv2.String(), e.bn2.String(), e.lrelu.NegativeSlope(), e.pool2.String())
	fmt.Fprintf(&b, "  %s\n  %s\n  LeakyReLU(%g)\n", e.conv3.String(), e.bn3.String(), e.lrelu.NegativeSlope())
	fmt.Fprintf(&b, "  Linear(in=%d, out=%d)\n  %s\n  LeakyReLU(%g)\n", e.fc1.InFeatures(), e.fc1.OutFeatures(), e.bnFc1.String(), e.lrelu.NegativeSlope())
	fmt.Fprintf(&b, "  Linear(in=%d, out=%d)\n  %s\n  LeakyReLU(%g)\n", e.fc2.InFeatures(), e.fc2.OutFeatures(), e.bnFc2.String(), e.lrelu.NegativeSlope())
	fmt.Fprintf(&b, "  Linear(in=%d, out=%d)\n)", e.proj.InFeatures(), e.proj.OutFeatures())
	return b.String()
}
