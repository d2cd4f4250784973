// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes an encoder in a variant-independent way, suitable for
// loading from a YAML file. Fields that do not apply to the chosen variant
// are ignored.
//
// Example:
//
//	variant: burgess
//	latent_dim: 10
//	image_channels: 3
//	image_size: 64
type Config struct {
	// Variant selects the architecture ("burgess", "conv" or "domain").
	Variant string `yaml:"variant"`
	// LatentDim is the dimensionality of the latent Gaussian. Defaults to 10.
	LatentDim int `yaml:"latent_dim"`
	// ImageChannels is the input channel count for image variants. Defaults to 3.
	ImageChannels int `yaml:"image_channels"`
	// ImageSize is the input height/width for the burgess variant. Defaults to 64.
	ImageSize int `yaml:"image_size"`
	// NumDomains is the domain count for the domain variant.
	NumDomains int `yaml:"num_domains"`
}

// DefaultConfig returns a Config with the reference hyperparameters.
func DefaultConfig() Config {
	return Config{
		Variant:       string(VariantBurgess),
		LatentDim:     10,
		ImageChannels: 3,
		ImageSize:     64,
	}
}

// applyDefaults fills zero-valued fields with the reference hyperparameters.
func (c *Config) applyDefaults() {
	if c.LatentDim == 0 {
		c.LatentDim = 10
	}
	if c.ImageChannels == 0 {
		c.ImageChannels = 3
	}
	if c.ImageSize == 0 {
		c.ImageSize = 64
	}
}

// Validate checks the config for the chosen variant.
func (c *Config) Validate() error {
	variant, err := ParseVariant(c.Variant)
	if err != nil {
		return err
	}

	if c.LatentDim <= 0 {
		return fmt.Errorf("encoder config: latent_dim must be positive, got %d", c.LatentDim)
	}

	switch variant {
	case VariantBurgess:
		if _, ok := burgessConvCounts[c.ImageSize]; !ok {
			return fmt.Errorf("encoder config: image_size must be 32 or 64, got %d", c.ImageSize)
		}
		if c.ImageChannels <= 0 {
			return fmt.Errorf("encoder config: image_channels must be positive, got %d", c.ImageChannels)
		}
	case VariantConv:
		if c.ImageChannels <= 0 {
			return fmt.Errorf("encoder config: image_channels must be positive, got %d", c.ImageChannels)
		}
	case VariantDomain:
		if c.NumDomains <= 0 {
			return fmt.Errorf("encoder config: num_domains must be positive, got %d", c.NumDomains)
		}
	}

	return nil
}

// LoadConfig reads and validates a YAML encoder config.
//
// Zero-valued fields take the reference defaults before validation.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("encoder config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("encoder config: failed to parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
