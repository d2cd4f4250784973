package nn

import (
	"math"
	"testing"

	cpu "github.com/latent-ml/latent/internal/backend/cpu"
	"github.com/latent-ml/latent/internal/tensor"
)

func TestReLUForward(t *testing.T) {
	backend := cpu.New()
	relu := NewReLU[*cpu.CPUBackend]()

	input := fromSlice(t, []float32{-2, -1, 0, 1, 2}, tensor.Shape{5}, backend)
	output := relu.Forward(input).Data()

	want := []float32{0, 0, 0, 1, 2}
	for i := range want {
		if output[i] != want[i] {
			t.Errorf("ReLU result[%d] = %v, want %v", i, output[i], want[i])
		}
	}

	if params := relu.Parameters(); len(params) != 0 {
		t.Errorf("ReLU has %d parameters, want 0", len(params))
	}
}

func TestLeakyReLUForward(t *testing.T) {
	backend := cpu.New()
	lrelu := NewLeakyReLU[*cpu.CPUBackend](0.01)

	input := fromSlice(t, []float32{-2, -1, 0, 1, 2}, tensor.Shape{5}, backend)
	output := lrelu.Forward(input).Data()

	want := []float32{-0.02, -0.01, 0, 1, 2}
	for i := range want {
		if math.Abs(float64(output[i]-want[i])) > 1e-6 {
			t.Errorf("LeakyReLU result[%d] = %v, want %v", i, output[i], want[i])
		}
	}

	if got := lrelu.NegativeSlope(); got != 0.01 {
		t.Errorf("NegativeSlope = %v, want 0.01", got)
	}
}
