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

func TestConvEncodeShapes(t *testing.T) {
	backend := cpu.New()

	enc, err := NewConv(ConvConfig{ImageChannels: 3, LatentDim: 10}, backend)
	require.NoError(t, err)

	for _, batch := range []int{1, 2} {
		images := tensor.Randn[float32](tensor.Shape{batch, 3, 32, 32}, backend)
		mean, logvar, err := enc.Encode(images)
		require.NoError(t, err)

		assert.Equal(t, tensor.Shape{batch, 10}, mean.Shape())
		assert.Equal(t, tensor.Shape{batch, 10}, logvar.Shape())
	}
}

func TestConvConfigValidation(t *testing.T) {
	backend := cpu.New()

	t.Run("latentDimRequired", func(t *testing.T) {
		_, err := NewConv(ConvConfig{ImageChannels: 3}, backend)
		assert.ErrorContains(t, err, "invalid latent dim")
	})

	t.Run("channelsDefault", func(t *testing.T) {
		enc, err := NewConv(ConvConfig{LatentDim: 4}, backend)
		require.NoError(t, err)

		images := tensor.Randn[float32](tensor.Shape{1, 3, 32, 32}, backend)
		_, _, err = enc.Encode(images)
		assert.NoError(t, err)
	})
}

func TestConvEncodeRejectsBadInput(t *testing.T) {
	backend := cpu.New()

	enc, err := NewConv(ConvConfig{ImageChannels: 3, LatentDim: 4}, backend)
	require.NoError(t, err)

	t.Run("not4D", func(t *testing.T) {
		_, _, err := enc.Encode(tensor.Randn[float32](tensor.Shape{3, 32, 32}, backend))
		assert.ErrorContains(t, err, "expected 4D input")
	})

	t.Run("wrongChannels", func(t *testing.T) {
		_, _, err := enc.Encode(tensor.Randn[float32](tensor.Shape{1, 1, 32, 32}, backend))
		assert.ErrorContains(t, err, "input channels")
	})

	t.Run("wrongSpatial", func(t *testing.T) {
		// The FC stack is sized for 32x32 only; anything else must fail
		// at the boundary with the geometry spelled out.
		_, _, err := enc.Encode(tensor.Randn[float32](tensor.Shape{1, 3, 64, 64}, backend))
		assert.ErrorContains(t, err, "expected 32x32 input")
		assert.ErrorContains(t, err, "8192")
	})
}

func TestConvParameters(t *testing.T) {
	backend := cpu.New()

	enc, err := NewConv(ConvConfig{LatentDim: 2}, backend)
	require.NoError(t, err)

	// 3 convs + 3 batchnorms + 2 FC + 2 batchnorms + projection,
	// two parameters each.
	assert.Len(t, enc.Parameters(), 22)
	assert.Equal(t, 2, enc.LatentDim())
}
