// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "encoder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
variant: burgess
latent_dim: 12
image_channels: 1
image_size: 32
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "burgess", cfg.Variant)
	assert.Equal(t, 12, cfg.LatentDim)
	assert.Equal(t, 1, cfg.ImageChannels)
	assert.Equal(t, 32, cfg.ImageSize)
}

func TestLoadConfigDefaults(t *testing.T) {
	// Only the variant is given; everything else takes the reference
	// hyperparameters.
	path := writeConfig(t, "variant: burgess\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.LatentDim)
	assert.Equal(t, 3, cfg.ImageChannels)
	assert.Equal(t, 64, cfg.ImageSize)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missingFile", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformedYAML", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "variant: [unclosed"))
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("unknownVariant", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "variant: transformer\n"))
		assert.ErrorContains(t, err, "unknown variant")
	})

	t.Run("badImageSize", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "variant: burgess\nimage_size: 48\n"))
		assert.ErrorContains(t, err, "image_size must be 32 or 64")
	})

	t.Run("domainNeedsCount", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "variant: domain\n"))
		assert.ErrorContains(t, err, "num_domains must be positive")
	})

	t.Run("negativeLatentDim", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "variant: conv\nlatent_dim: -1\n"))
		assert.ErrorContains(t, err, "latent_dim must be positive")
	})
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidatePerVariant(t *testing.T) {
	valid := Config{
		Variant:       "domain",
		LatentDim:     8,
		ImageChannels: 3,
		ImageSize:     64,
		NumDomains:    4,
	}
	assert.NoError(t, valid.Validate())

	// The domain variant ignores image geometry entirely.
	noImage := Config{Variant: "domain", LatentDim: 8, NumDomains: 4}
	assert.NoError(t, noImage.Validate())
}
