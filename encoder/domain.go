// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/latent-ml/latent/nn"
	"github.com/latent-ml/latent/tensor"
)

// domainEmbedDim is the width of the domain embedding table.
const domainEmbedDim = 512

// DomainConfig configures a DomainEncoder.
type DomainConfig struct {
	// NumDomains is the number of distinct domain IDs.
	NumDomains int
	// LatentDim is the dimensionality of the latent Gaussian.
	LatentDim int
}

// DomainEncoder maps categorical domain IDs to latent Gaussian parameters.
//
// Architecture (for latent dimension L):
//
//	Input: [N] int32 IDs in [0, NumDomains)
//	Embedding(NumDomains, 512)
//	BatchNorm1D(512) + LeakyReLU
//	Linear(512, 2·L) → interleaved (mean, logvar)
type DomainEncoder[B tensor.Backend] struct {
	cfg DomainConfig

	embed *nn.Embedding[B]
	bn    *nn.BatchNorm1D[B]
	lrelu *nn.LeakyReLU[B]
	proj  *nn.Linear[B]
}

// NewDomain creates a new DomainEncoder.
//
// NumDomains and LatentDim must be positive.
func NewDomain[B tensor.Backend](cfg DomainConfig, backend B) (*DomainEncoder[B], error) {
	if cfg.NumDomains <= 0 {
		return nil, fmt.Errorf("domain encoder: invalid domain count %d", cfg.NumDomains)
	}
	if cfg.LatentDim <= 0 {
		return nil, fmt.Errorf("domain encoder: invalid latent dim %d", cfg.LatentDim)
	}

	return &DomainEncoder[B]{
		cfg:   cfg,
		embed: nn.NewEmbedding(cfg.NumDomains, domainEmbedDim, backend),
		bn:    nn.NewBatchNorm1D(domainEmbedDim, backend),
		lrelu: nn.NewLeakyReLU[B](convNegativeSlope),
		proj:  nn.NewLinear(domainEmbedDim, 2*cfg.LatentDim, backend),
	}, nil
}

// Encode maps a batch of domain IDs to latent Gaussian parameters.
//
// Input: [N] int32 IDs in [0, NumDomains)
// Output: mean and logvar, each [N, LatentDim].
//
// Out-of-range IDs are reported as an error. The embedding kernel treats
// them as a programmer error and panics; this boundary turns that into a
// user-facing error because the IDs come from caller data.
func (e *DomainEncoder[B]) Encode(ids *tensor.Tensor[int32, B]) (mean, logvar *tensor.Tensor[float32, B], err error) {
	shape := ids.Shape()
	if len(shape) != 1 {
		return nil, nil, fmt.Errorf("domain encoder: expected 1D input [N], got %dD", len(shape))
	}

	defer func() {
		if r := recover(); r != nil {
			mean, logvar = nil, nil
			err = fmt.Errorf("domain encoder: %v", r)
		}
	}()

	h := e.embed.Forward(ids)              // [N, 512]
	h = e.lrelu.Forward(e.bn.Forward(h))   // [N, 512]
	mean, logvar = splitGaussian(e.proj.Forward(h), e.cfg.LatentDim)
	return mean, logvar, nil
}

// LatentDim returns the dimensionality of the latent Gaussian.
func (e *DomainEncoder[B]) LatentDim() int {
	return e.cfg.LatentDim
}

// NumDomains returns the number of distinct domain IDs.
func (e *DomainEncoder[B]) NumDomains() int {
	return e.cfg.NumDomains
}

// Parameters returns all trainable parameters.
func (e *DomainEncoder[B]) Parameters() []*nn.Parameter[B] {
	params := make([]*nn.Parameter[B], 0, 5)
	params = append(params, e.embed.Parameters()...)
	params = append(params, e.bn.Parameters()...)
	params = append(params, e.proj.Parameters()...)
	return params
}

// String returns a string representation of the architecture.
func (e *DomainEncoder[B]) String() string {
	return fmt.Sprintf(`DomainEncoder(num_domains=%d, latent_dim=%d,
  Embedding(%d, %d)
  %s
  LeakyReLU(%g)
  Linear(in=%d, out=%d)
)`,
		e.cfg.NumDomains, e.cfg.LatentDim,
		e.cfg.NumDomains, domainEmbedDim,
		e.bn.String(),
		e.lrelu.NegativeSlope(),
		e.proj.InFeatures(), e.proj.OutFeatures())
}
