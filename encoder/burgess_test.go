// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latent-ml/latent/backend/cpu"
	"github.com/latent-ml/latent/tensor"
)

func TestBurgessEncodeShapes(t *testing.T) {
	backend := cpu.New()

	cases := []struct {
		imageSize int
		batch     int
		latentDim int
	}{
		{32, 1, 10},
		{32, 4, 6},
		{64, 2, 10},
		{64, 1, 3},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("size%d_batch%d_latent%d", tc.imageSize, tc.batch, tc.latentDim), func(t *testing.T) {
			enc, err := NewBurgess(BurgessConfig{
				ImageChannels: 1,
				ImageSize:     tc.imageSize,
				LatentDim:     tc.latentDim,
			}, backend)
			require.NoError(t, err)

			images := tensor.Randn[float32](tensor.Shape{tc.batch, 1, tc.imageSize, tc.imageSize}, backend)
			mean, logvar, err := enc.Encode(images)
			require.NoError(t, err)

			assert.Equal(t, tensor.Shape{tc.batch, tc.latentDim}, mean.Shape())
			assert.Equal(t, tensor.Shape{tc.batch, tc.latentDim}, logvar.Shape())
		})
	}
}

func TestBurgessConvStackDepth(t *testing.T) {
	backend := cpu.New()

	small, err := NewBurgess(BurgessConfig{ImageSize: 32}, backend)
	require.NoError(t, err)
	assert.Equal(t, 3, small.NumConvLayers())

	large, err := NewBurgess(BurgessConfig{ImageSize: 64}, backend)
	require.NoError(t, err)
	assert.Equal(t, 4, large.NumConvLayers())

	// The extra conv carries two extra parameters (weight and bias).
	assert.Len(t, small.Parameters(), 12)
	assert.Len(t, large.Parameters(), 14)
}

func TestBurgessDefaults(t *testing.T) {
	backend := cpu.New()

	enc, err := NewBurgess(BurgessConfig{ImageSize: 64}, backend)
	require.NoError(t, err)
	assert.Equal(t, 10, enc.LatentDim())

	// Defaulted channels: a 3-channel batch must be accepted.
	images := tensor.Randn[float32](tensor.Shape{1, 3, 64, 64}, backend)
	_, _, err = enc.Encode(images)
	assert.NoError(t, err)
}

func TestBurgessUnsupportedImageSize(t *testing.T) {
	backend := cpu.New()

	for _, size := range []int{0, 16, 48, 128} {
		_, err := NewBurgess(BurgessConfig{ImageSize: size}, backend)
		assert.Error(t, err, "image size %d", size)
	}
}

func TestBurgessEncodeRejectsBadInput(t *testing.T) {
	backend := cpu.New()

	enc, err := NewBurgess(BurgessConfig{ImageChannels: 3, ImageSize: 32, LatentDim: 4}, backend)
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
		// A 64x64 batch into a 32x32 encoder is a config mismatch, not a crash.
		_, _, err := enc.Encode(tensor.Randn[float32](tensor.Shape{1, 3, 64, 64}, backend))
		assert.ErrorContains(t, err, "expected 32x32 input")
	})
}

func TestBurgessInterleavedProjection(t *testing.T) {
	backend := cpu.New()

	enc, err := NewBurgess(BurgessConfig{ImageChannels: 1, ImageSize: 32, LatentDim: 2}, backend)
	require.NoError(t, err)

	// Zero the projection weight and fix its bias so the output is the
	// bias alone: unit 2i must land in mean component i, unit 2i+1 in
	// logvar component i.
	params := enc.Parameters()
	projWeight := params[len(params)-2].Tensor().Data()
	for i := range projWeight {
		projWeight[i] = 0
	}
	copy(params[len(params)-1].Tensor().Data(), []float32{10, -1, 20, -2})

	images := tensor.Randn[float32](tensor.Shape{2, 1, 32, 32}, backend)
	mean, logvar, err := enc.Encode(images)
	require.NoError(t, err)

	assert.Equal(t, []float32{10, 20, 10, 20}, mean.Data())
	assert.Equal(t, []float32{-1, -2, -1, -2}, logvar.Data())
}
