package nn

import (
	"testing"

	cpu "github.com/latent-ml/latent/internal/backend/cpu"
	"github.com/latent-ml/latent/internal/tensor"
)

func TestMaxPool2DForward(t *testing.T) {
	backend := cpu.New()
	pool := NewMaxPool2D(2, 2, 0, backend)

	input := fromSlice(t, []float32{
		1, 2, 5, 6,
		3, 4, 7, 8,
		9, 10, 13, 14,
		11, 12, 15, 16,
	}, tensor.Shape{1, 1, 4, 4}, backend)

	output := pool.Forward(input)

	if !output.Shape().Equal(tensor.Shape{1, 1, 2, 2}) {
		t.Fatalf("Forward shape = %v, want [1 1 2 2]", output.Shape())
	}

	want := []float32{4, 8, 12, 16}
	got := output.Data()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Forward result[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMaxPool2DComputeOutputSize(t *testing.T) {
	backend := cpu.New()

	// k=3, s=2, p=1 halves the spatial size for even inputs.
	pool := NewMaxPool2D(3, 2, 1, backend)

	out := pool.ComputeOutputSize(32, 32)
	if out[0] != 16 || out[1] != 16 {
		t.Errorf("ComputeOutputSize(32, 32) = %v, want [16 16]", out)
	}

	out = pool.ComputeOutputSize(16, 16)
	if out[0] != 8 || out[1] != 8 {
		t.Errorf("ComputeOutputSize(16, 16) = %v, want [8 8]", out)
	}
}

func TestMaxPool2DInvalidConfigPanics(t *testing.T) {
	backend := cpu.New()

	cases := []struct {
		name                         string
		kernelSize, stride, padding int
	}{
		{"zeroKernel", 0, 1, 0},
		{"zeroStride", 2, 0, 0},
		{"negativePadding", 2, 2, -1},
		{"paddingTooLarge", 2, 2, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewMaxPool2D(%d, %d, %d) did not panic",
						tc.kernelSize, tc.stride, tc.padding)
				}
			}()
			NewMaxPool2D(tc.kernelSize, tc.stride, tc.padding, backend)
		})
	}
}
