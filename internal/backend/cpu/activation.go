package cpu

import (
	"fmt"

	"github.com/latent-ml/latent/internal/tensor"
)

// ReLU applies the rectified linear unit element-wise: max(0, x).
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("relu: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			if v > 0 {
				dst[i] = v
			}
		}
	default:
		panic(fmt.Sprintf("relu: unsupported dtype %s (only float32 supported)", x.DType()))
	}

	return result
}

// LeakyReLU applies the leaky rectified linear unit element-wise:
// x for x > 0, alpha*x otherwise.
func (cpu *CPUBackend) LeakyReLU(x *tensor.RawTensor, alpha float32) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("leakyrelu: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			if v > 0 {
				dst[i] = v
			} else {
				dst[i] = alpha * v
			}
		}
	default:
		panic(fmt.Sprintf("leakyrelu: unsupported dtype %s (only float32 supported)", x.DType()))
	}

	return result
}
