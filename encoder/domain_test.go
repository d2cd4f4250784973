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

func TestDomainEncodeShapes(t *testing.T) {
	backend := cpu.New()

	enc, err := NewDomain(DomainConfig{NumDomains: 5, LatentDim: 8}, backend)
	require.NoError(t, err)

	ids, err := tensor.FromSlice([]int32{0, 3, 1, 4}, tensor.Shape{4}, backend)
	require.NoError(t, err)

	mean, logvar, err := enc.Encode(ids)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{4, 8}, mean.Shape())
	assert.Equal(t, tensor.Shape{4, 8}, logvar.Shape())
}

func TestDomainConfigValidation(t *testing.T) {
	backend := cpu.New()

	_, err := NewDomain(DomainConfig{NumDomains: 0, LatentDim: 8}, backend)
	assert.ErrorContains(t, err, "invalid domain count")

	_, err = NewDomain(DomainConfig{NumDomains: 5, LatentDim: 0}, backend)
	assert.ErrorContains(t, err, "invalid latent dim")
}

func TestDomainEncodeRejectsBadInput(t *testing.T) {
	backend := cpu.New()

	enc, err := NewDomain(DomainConfig{NumDomains: 5, LatentDim: 8}, backend)
	require.NoError(t, err)

	t.Run("not1D", func(t *testing.T) {
		ids, err := tensor.FromSlice([]int32{0, 1}, tensor.Shape{2, 1}, backend)
		require.NoError(t, err)

		_, _, err = enc.Encode(ids)
		assert.ErrorContains(t, err, "expected 1D input")
	})

	t.Run("outOfRangeID", func(t *testing.T) {
		// IDs come from caller data, so an out-of-range ID must surface
		// as an error rather than a panic.
		ids, err := tensor.FromSlice([]int32{7}, tensor.Shape{1}, backend)
		require.NoError(t, err)

		_, _, err = enc.Encode(ids)
		assert.ErrorContains(t, err, "domain encoder")
	})

	t.Run("negativeID", func(t *testing.T) {
		ids, err := tensor.FromSlice([]int32{-1}, tensor.Shape{1}, backend)
		require.NoError(t, err)

		_, _, err = enc.Encode(ids)
		assert.Error(t, err)
	})
}

func TestDomainEncoderAccessors(t *testing.T) {
	backend := cpu.New()

	enc, err := NewDomain(DomainConfig{NumDomains: 12, LatentDim: 6}, backend)
	require.NoError(t, err)

	assert.Equal(t, 12, enc.NumDomains())
	assert.Equal(t, 6, enc.LatentDim())

	// Embedding weight, batchnorm gamma and beta, projection weight and bias.
	assert.Len(t, enc.Parameters(), 5)
}

func TestDomainSameIDSameLatent(t *testing.T) {
	backend := cpu.New()

	enc, err := NewDomain(DomainConfig{NumDomains: 3, LatentDim: 4}, backend)
	require.NoError(t, err)

	// Two occurrences of the same ID in one batch must map to the same
	// latent parameters.
	ids, err := tensor.FromSlice([]int32{2, 0, 2}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	mean, logvar, err := enc.Encode(ids)
	require.NoError(t, err)

	meanData := mean.Data()
	logvarData := logvar.Data()
	assert.Equal(t, meanData[0:4], meanData[8:12])
	assert.Equal(t, logvarData[0:4], logvarData[8:12])
}
