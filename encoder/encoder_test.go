// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latent-ml/latent/backend/cpu"
	"github.com/latent-ml/latent/tensor"
)

// Compile-time interface checks.
var (
	_ ImageEncoder[*cpu.Backend] = (*BurgessEncoder[*cpu.Backend])(nil)
	_ ImageEncoder[*cpu.Backend] = (*ConvEncoder[*cpu.Backend])(nil)
	_ Encoder[*cpu.Backend]      = (*DomainEncoder[*cpu.Backend])(nil)
)

func TestSplitGaussian(t *testing.T) {
	backend := cpu.New()

	// Two samples, latent dim 3: even units are means, odd units logvars.
	proj, err := tensor.FromSlice([]float32{
		1, -1, 2, -2, 3, -3,
		4, -4, 5, -5, 6, -6,
	}, tensor.Shape{2, 6}, backend)
	require.NoError(t, err)

	mean, logvar := splitGaussian(proj, 3)

	assert.Equal(t, tensor.Shape{2, 3}, mean.Shape())
	assert.Equal(t, tensor.Shape{2, 3}, logvar.Shape())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, mean.Data())
	assert.Equal(t, []float32{-1, -2, -3, -4, -5, -6}, logvar.Data())
}

func TestEncoderStrings(t *testing.T) {
	backend := cpu.New()

	burgess, err := NewBurgess(BurgessConfig{ImageSize: 64, LatentDim: 10}, backend)
	require.NoError(t, err)
	assert.Contains(t, burgess.String(), "BurgessEncoder(image_size=64, latent_dim=10")

	conv, err := NewConv(ConvConfig{LatentDim: 10}, backend)
	require.NoError(t, err)
	assert.Contains(t, conv.String(), "ConvEncoder(latent_dim=10")

	domain, err := NewDomain(DomainConfig{NumDomains: 5, LatentDim: 10}, backend)
	require.NoError(t, err)
	assert.Contains(t, domain.String(), "DomainEncoder(num_domains=5, latent_dim=10")
}
