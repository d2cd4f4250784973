package cpu

import (
	"fmt"

	"github.com/latent-ml/latent/internal/parallel"
	"github.com/latent-ml/latent/internal/tensor"
)

// MaxPool2D performs 2D max pooling with zero padding.
//
// Max pooling reduces spatial dimensions by taking the maximum value
// in each pooling window. Unlike Conv2D, MaxPool2D has no learnable parameters.
//
// Input shape:  [batch, channels, height, width]
// Output shape: [batch, channels, out_height, out_width]
//
// Where:
//
//	out_height = (height + 2*padding - kernelSize) / stride + 1
//	out_width = (width + 2*padding - kernelSize) / stride + 1
//
// Padded positions are skipped during the window scan, so a padding cell
// never wins the max. This matches the reference pooling semantics the
// encoder trunks were built against.
//
// Example (2x2 pool, stride=2, padding=0):
//
//	Input: [[1,2,3,4],    Output: [[6,8],
//	        [5,6,7,8],             [14,16]]
//	        [9,10,11,12],
//	        [13,14,15,16]]
func (cpu *CPUBackend) MaxPool2D(input *tensor.RawTensor, kernelSize, stride, padding int) *tensor.RawTensor {
	// Validate input
	inputShape := input.Shape()
	if len(inputShape) != 4 {
		panic(fmt.Sprintf("maxpool2d: expected 4D input [N,C,H,W], got %dD", len(inputShape)))
	}

	N := inputShape[0] // batch size
	C := inputShape[1] // channels
	H := inputShape[2] // height
	W := inputShape[3] // width

	if kernelSize <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid kernel size %d", kernelSize))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid stride %d", stride))
	}
	if padding < 0 {
		panic(fmt.Sprintf("maxpool2d: invalid padding %d", padding))
	}
	if padding >= kernelSize {
		// A window that can consist entirely of padding has no max.
		panic(fmt.Sprintf("maxpool2d: padding %d must be smaller than kernel size %d", padding, kernelSize))
	}
	if kernelSize > H+2*padding || kernelSize > W+2*padding {
		panic(fmt.Sprintf("maxpool2d: kernel size %d too large for input %dx%d (padding=%d)", kernelSize, H, W, padding))
	}

	// Compute output dimensions
	HOut := (H+2*padding-kernelSize)/stride + 1
	WOut := (W+2*padding-kernelSize)/stride + 1

	if HOut <= 0 || WOut <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid output dimensions %dx%d (kernel=%d, stride=%d, padding=%d, input=%dx%d)",
			HOut, WOut, kernelSize, stride, padding, H, W))
	}

	// Create output tensor
	outputShape := tensor.Shape{N, C, HOut, WOut}
	output, err := tensor.NewRaw(outputShape, input.DType(), cpu.Device())
	if err != nil {
		panic(fmt.Sprintf("maxpool2d: failed to create output: %v", err))
	}

	switch input.DType() {
	case tensor.Float32:
		maxpool2dFloat32(output, input, N, C, H, W, HOut, WOut, kernelSize, stride, padding)
	default:
		panic(fmt.Sprintf("maxpool2d: unsupported dtype %v", input.DType()))
	}

	return output
}

// maxpool2dFloat32 performs max pooling for float32 tensors.
func maxpool2dFloat32(output, input *tensor.RawTensor, N, C, H, W, HOut, WOut, kernelSize, stride, padding int) {
	inputData := input.AsFloat32()
	outputData := output.AsFloat32()

	cfg := parallel.DefaultConfig()
	cfg.MinChunkSize = 1 // One channel plane per unit of work.

	parallel.ForBatch(N, C, func(n, c int) {
		// Pre-slice channel plane: eliminates (n*C+c)*H*W bounds check
		channelOffset := (n*C + c) * H * W
		channelData := inputData[channelOffset : channelOffset+H*W]

		for outH := 0; outH < HOut; outH++ {
			// Window start positions may be negative with padding.
			hStart := outH*stride - padding

			for outW := 0; outW < WOut; outW++ {
				wStart := outW*stride - padding

				// Find max value in pooling window, skipping padded cells.
				maxVal := float32(-1e38) // Negative infinity approximation

				for kh := 0; kh < kernelSize; kh++ {
					h := hStart + kh
					if h < 0 || h >= H {
						continue
					}
					// Pre-slice row: eliminates h*W bounds check
					rowStart := h * W
					rowData := channelData[rowStart : rowStart+W]

					for kw := 0; kw < kernelSize; kw++ {
						w := wStart + kw
						if w < 0 || w >= W {
							continue
						}
						if val := rowData[w]; val > maxVal {
							maxVal = val
						}
					}
				}

				outputIdx := ((n*C+c)*HOut+outH)*WOut + outW
				outputData[outputIdx] = maxVal
			}
		}
	}, cfg)
}
