// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"
	"strings"

	"github.com/latent-ml/latent/tensor"
)

// Variant names an encoder architecture.
type Variant string

// The closed set of encoder variants.
const (
	VariantBurgess Variant = "burgess"
	VariantConv    Variant = "conv"
	VariantDomain  Variant = "domain"
)

// knownVariants lists every registered variant, in registry order.
var knownVariants = []Variant{VariantBurgess, VariantConv, VariantDomain}

// Variants returns the names of all registered encoder variants.
func Variants() []string {
	names := make([]string, len(knownVariants))
	for i, v := range knownVariants {
		names[i] = string(v)
	}
	return names
}

// ParseVariant resolves a case-insensitive variant name.
//
// Returns an error naming the known set for anything unrecognized.
func ParseVariant(name string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range knownVariants {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("encoder: unknown variant %q (known: %s)", name, strings.Join(Variants(), ", "))
}

// New constructs the encoder named by variant from the given config.
//
// The mapping from variant to constructor is a closed table; an
// unrecognized variant is an error naming the known set.
func New[B tensor.Backend](variant Variant, cfg Config, backend B) (Encoder[B], error) {
	constructors := map[Variant]func(Config, B) (Encoder[B], error){
		VariantBurgess: func(cfg Config, backend B) (Encoder[B], error) {
			return NewBurgess(BurgessConfig{
				ImageChannels: cfg.ImageChannels,
				ImageSize:     cfg.ImageSize,
				LatentDim:     cfg.LatentDim,
			}, backend)
		},
		VariantConv: func(cfg Config, backend B) (Encoder[B], error) {
			return NewConv(ConvConfig{
				ImageChannels: cfg.ImageChannels,
				LatentDim:     cfg.LatentDim,
			}, backend)
		},
		VariantDomain: func(cfg Config, backend B) (Encoder[B], error) {
			return NewDomain(DomainConfig{
				NumDomains: cfg.NumDomains,
				LatentDim:  cfg.LatentDim,
			}, backend)
		},
	}

	ctor, ok := constructors[variant]
	if !ok {
		return nil, fmt.Errorf("encoder: unknown variant %q (known: %s)", variant, strings.Join(Variants(), ", "))
	}
	return ctor(cfg, backend)
}
