// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latent-ml/latent/backend/cpu"
)

func TestParseVariant(t *testing.T) {
	cases := []struct {
		name string
		want Variant
	}{
		{"burgess", VariantBurgess},
		{"Burgess", VariantBurgess},
		{"CONV", VariantConv},
		{" domain ", VariantDomain},
	}

	for _, tc := range cases {
		v, err := ParseVariant(tc.name)
		require.NoError(t, err, "ParseVariant(%q)", tc.name)
		assert.Equal(t, tc.want, v)
	}
}

func TestParseVariantUnknown(t *testing.T) {
	_, err := ParseVariant("transformer")
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown variant "transformer"`)

	// The error names the known set so callers can fix their config.
	assert.ErrorContains(t, err, "burgess")
	assert.ErrorContains(t, err, "conv")
	assert.ErrorContains(t, err, "domain")
}

func TestVariants(t *testing.T) {
	assert.Equal(t, []string{"burgess", "conv", "domain"}, Variants())
}

func TestNewConstructsEveryVariant(t *testing.T) {
	backend := cpu.New()

	cfg := Config{
		LatentDim:     4,
		ImageChannels: 3,
		ImageSize:     64,
		NumDomains:    5,
	}

	for _, variant := range knownVariants {
		t.Run(string(variant), func(t *testing.T) {
			enc, err := New(variant, cfg, backend)
			require.NoError(t, err)
			assert.Equal(t, 4, enc.LatentDim())

			switch variant {
			case VariantBurgess:
				assert.IsType(t, &BurgessEncoder[*cpu.Backend]{}, enc)
			case VariantConv:
				assert.IsType(t, &ConvEncoder[*cpu.Backend]{}, enc)
			case VariantDomain:
				assert.IsType(t, &DomainEncoder[*cpu.Backend]{}, enc)
			}
		})
	}
}

func TestNewUnknownVariant(t *testing.T) {
	backend := cpu.New()

	_, err := New("mlp", DefaultConfig(), backend)
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown variant "mlp"`)
}

func TestNewPropagatesConfigErrors(t *testing.T) {
	backend := cpu.New()

	// A valid variant with an invalid config must fail in the
	// variant's constructor.
	_, err := New(VariantDomain, Config{LatentDim: 4, NumDomains: 0}, backend)
	assert.ErrorContains(t, err, "invalid domain count")

	_, err = New(VariantBurgess, Config{LatentDim: 4, ImageChannels: 3, ImageSize: 48}, backend)
	assert.ErrorContains(t, err, "unsupported image size")
}
