// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/latent-ml/latent/backend/cpu"
	"github.com/latent-ml/latent/tensor"
)

// loadImageBatch decodes an image file, resizes it to size×size and returns
// a [1, channels, size, size] tensor with values scaled to [0, 1].
//
// channels must be 1 (grayscale) or 3 (RGB).
func loadImageBatch(path string, channels, size int, backend *cpu.Backend) (*tensor.Tensor[float32, *cpu.Backend], error) {
	if channels != 1 && channels != 3 {
		return nil, fmt.Errorf("unsupported channel count %d (want 1 or 3)", channels)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	// Resize to the encoder's input geometry.
	resized := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(resized, resized.Bounds(), src, src.Bounds(), draw.Src, nil)

	// Repack to CHW float32 in [0, 1].
	data := make([]float32, channels*size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			switch channels {
			case 1:
				// ITU-R BT.601 luma
				gray := 0.299*float32(r) + 0.587*float32(g) + 0.114*float32(b)
				data[y*size+x] = gray / 0xffff
			case 3:
				data[0*size*size+y*size+x] = float32(r) / 0xffff
				data[1*size*size+y*size+x] = float32(g) / 0xffff
				data[2*size*size+y*size+x] = float32(b) / 0xffff
			}
		}
	}

	return tensor.FromSlice(data, tensor.Shape{1, channels, size, size}, backend)
}
