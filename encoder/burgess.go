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
	// burgessHidChannels is the channel count of every conv layer.
	burgessHidChannels = 32
	// burgessHiddenDim is the width of the fully-connected layers.
	burgessHiddenDim = 256
	// burgessFinalSpatial is the spatial size after the conv stack.
	burgessFinalSpatial = 4
)

// burgessConvCounts maps the supported image sizes to the number of
// stride-2 convolutions needed to reach a 4×4 feature map. The 64×64
// variant carries one extra conv; that is the only architectural
// difference between the two.
var burgessConvCounts = map[int]int{
	32: 3,
	64: 4,
}

// BurgessConfig configures a BurgessEncoder.
type BurgessConfig struct {
	// ImageChannels is the number of input channels. Defaults to 3.
	ImageChannels int
	// ImageSize is the input height and width. Must be 32 or 64.
	ImageSize int
	// LatentDim is the dimensionality of the latent Gaussian. Defaults to 10.
	LatentDim int
}

// BurgessEncoder is the image encoder from Burgess et al.,
// "Understanding disentangling in β-VAE" (2018).
//
// Architecture (for latent dimension L):
//
//	Input: [N, C, 32, 32] or [N, C, 64, 64]
//	Conv(C → 32, k=4, s=2, p=1) + ReLU     (3× for 32×32, 4× for 64×64,
//	Conv(32 → 32, 4, 2, 1) + ReLU           halving the spatial size each
//	...                                     time, ending at 4×4)
//	Flatten → [N, 512]
//	Linear(512, 256) + ReLU
//	Linear(256, 256) + ReLU
//	Linear(256, 2·L) → interleaved (mean, logvar)
type BurgessEncoder[B tensor.Backend] struct {
	cfg BurgessConfig

	convs []*nn.Conv2D[B]
	relu  *nn.ReLU[B]
	fc1   *nn.Linear[B]
	fc2   *nn.Linear[B]
	proj  *nn.Linear[B]
}

// NewBurgess creates a new BurgessEncoder.
//
// ImageSize must be 32 or 64; the conv stack is built from a per-size table
// rather than an inline conditional, so the supported geometries are
// explicit. Zero-valued ImageChannels and LatentDim take their defaults
// (3 and 10).
func NewBurgess[B tensor.Backend](cfg BurgessConfig, backend B) (*BurgessEncoder[B], error) {
	if cfg.ImageChannels == 0 {
		cfg.ImageChannels = 3
	}
	if cfg.LatentDim == 0 {
		cfg.LatentDim = 10
	}
	if cfg.ImageChannels < 0 {
		return nil, fmt.Errorf("burgess encoder: invalid image channels %d", cfg.ImageChannels)
	}
	if cfg.LatentDim < 0 {
		return nil, fmt.Errorf("burgess encoder: invalid latent dim %d", cfg.LatentDim)
	}

	numConvs, ok := burgessConvCounts[cfg.ImageSize]
	if !ok {
		return nil, fmt.Errorf("burgess encoder: unsupported image size %d (supported: 32, 64)", cfg.ImageSize)
	}

	convs := make([]*nn.Conv2D[B], 0, numConvs)
	inChannels := cfg.ImageChannels
	for i := 0; i < numConvs; i++ {
		convs = append(convs, nn.NewConv2D(inChannels, burgessHidChannels, 4, 4, 2, 1, true, backend))
		inChannels = burgessHidChannels
	}

	flatDim := burgessHidChannels * burgessFinalSpatial * burgessFinalSpatial

	return &BurgessEncoder[B]{
		cfg:   cfg,
		convs: convs,
		relu:  nn.NewReLU[B](),
		fc1:   nn.NewLinear(flatDim, burgessHiddenDim, backend),
		fc2:   nn.NewLinear(burgessHiddenDim, burgessHiddenDim, backend),
		proj:  nn.NewLinear(burgessHiddenDim, 2*cfg.LatentDim, backend),
	}, nil
}

// Encode maps an image batch to latent Gaussian parameters.
//
// Input: [N, ImageChannels, ImageSize, ImageSize]
// Output: mean and logvar, each [N, LatentDim].
func (e *BurgessEncoder[B]) Encode(x *tensor.Tensor[float32, B]) (mean, logvar *tensor.Tensor[float32, B], err error) {
	shape := x.Shape()
	if len(shape) != 4 {
		return nil, nil, fmt.Errorf("burgess encoder: expected 4D input [N,C,H,W], got %dD", len(shape))
	}
	if shape[1] != e.cfg.ImageChannels {
		return nil, nil, fmt.Errorf("burgess encoder: expected %d input channels, got %d", e.cfg.ImageChannels, shape[1])
	}
	if shape[2] != e.cfg.ImageSize || shape[3] != e.cfg.ImageSize {
		return nil, nil, fmt.Errorf("burgess encoder: expected %dx%d input, got %dx%d",
			e.cfg.ImageSize, e.cfg.ImageSize, shape[2], shape[3])
	}

	h := x
	for _, conv := range e.convs {
		h = e.relu.Forward(conv.Forward(h)) // halves H and W
	}

	batch := h.Shape()[0]
	h = h.Reshape(batch, burgessHidChannels*burgessFinalSpatial*burgessFinalSpatial)

	h = e.relu.Forward(e.fc1.Forward(h))
	h = e.relu.Forward(e.fc2.Forward(h))
	proj := e.proj.Forward(h) // [N, 2L]

	mean, logvar = splitGaussian(proj, e.cfg.LatentDim)
	return mean, logvar, nil
}

// LatentDim returns the dimensionality of the latent Gaussian.
func (e *BurgessEncoder[B]) LatentDim() int {
	return e.cfg.LatentDim
}

// NumConvLayers returns the number of convolutions in the trunk
// (3 for 32×32 inputs, 4 for 64×64).
func (e *BurgessEncoder[B]) NumConvLayers() int {
	return len(e.convs)
}

// Parameters returns all trainable parameters.
func (e *BurgessEncoder[B]) Parameters() []*nn.Parameter[B] {
	params := make([]*nn.Parameter[B], 0, 2*(len(e.convs)+3))
	for _, conv := range e.convs {
		params = append(params, conv.Parameters()...)
	}
	params = append(params, e.fc1.Parameters()...)
	params = append(params, e.fc2.Parameters()...)
	params = append(params, e.proj.Parameters()...)
	return params
}

// String returns a string representation of the architecture.
func (e *BurgessEncoder[B]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "BurgessEncoder(image_size=%d, latent_dim=%d,\n", e.cfg.ImageSize, e.cfg.LatentDim)
	for _, conv := range e.convs {
		fmt.Fprintf(&b, "  %s\n  ReLU()\n", conv.String())
	}
	fmt.Fprintf(&b, "  Linear(in=%d, out=%d)\n  ReLU()\n", e.fc1.InFeatures(), e.fc1.OutFeatures())
	fmt.Fprintf(&b, "  Linear(in=%d, out=%d)\n  ReLU()\n", e.fc2.InFeatures(), e.fc2.OutFeatures())
	fmt.Fprintf(&b, "  Linear(in=%d, out=%d)\n)", e.proj.InFeatures(), e.proj.OutFeatures())
	return b.String()
}
