package nn

import (
	"math"
	"testing"

	cpu "github.com/latent-ml/latent/internal/backend/cpu"
	"github.com/latent-ml/latent/internal/tensor"
)

func TestBatchNorm1DNormalizes(t *testing.T) {
	backend := cpu.New()
	bn := NewBatchNorm1D(2, backend)

	// Feature 0 has mean 2, feature 1 has mean 20.
	input := fromSlice(t, []float32{
		1, 10,
		2, 20,
		3, 30,
	}, tensor.Shape{3, 2}, backend)

	output := bn.Forward(input)

	if !output.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Forward shape = %v, want [3 2]", output.Shape())
	}

	// With default gamma=1, beta=0 each feature column should come out
	// with near-zero mean and near-unit variance.
	data := output.Data()
	for f := 0; f < 2; f++ {
		var mean float64
		for n := 0; n < 3; n++ {
			mean += float64(data[n*2+f])
		}
		mean /= 3
		if math.Abs(mean) > 1e-5 {
			t.Errorf("feature %d mean = %v, want ~0", f, mean)
		}

		var variance float64
		for n := 0; n < 3; n++ {
			d := float64(data[n*2+f]) - mean
			variance += d * d
		}
		variance /= 3
		if math.Abs(variance-1) > 1e-3 {
			t.Errorf("feature %d variance = %v, want ~1", f, variance)
		}
	}
}

func TestBatchNorm1DScaleShift(t *testing.T) {
	backend := cpu.New()
	bn := NewBatchNorm1D(1, backend)

	err := bn.LoadStateDict(map[string]*tensor.RawTensor{
		"gamma": rawFromSlice(t, []float32{2}, tensor.Shape{1}),
		"beta":  rawFromSlice(t, []float32{5}, tensor.Shape{1}),
	})
	if err != nil {
		t.Fatalf("LoadStateDict failed: %v", err)
	}

	// Symmetric input: normalized values are +/-1, so the output must
	// be beta +/- gamma.
	input := fromSlice(t, []float32{-1, 1}, tensor.Shape{2, 1}, backend)
	output := bn.Forward(input).Data()

	if math.Abs(float64(output[0])-3) > 1e-2 {
		t.Errorf("output[0] = %v, want ~3", output[0])
	}
	if math.Abs(float64(output[1])-7) > 1e-2 {
		t.Errorf("output[1] = %v, want ~7", output[1])
	}
}

func TestBatchNorm1DInputValidation(t *testing.T) {
	backend := cpu.New()
	bn := NewBatchNorm1D(4, backend)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Forward with wrong feature count did not panic")
		}
	}()
	bn.Forward(fromSlice(t, []float32{1, 2}, tensor.Shape{1, 2}, backend))
}

func TestBatchNorm2DNormalizesPerChannel(t *testing.T) {
	backend := cpu.New()
	bn := NewBatchNorm2D(2, backend)

	// Two channels with very different scales.
	input := fromSlice(t, []float32{
		// sample 0, channel 0
		1, 2, 3, 4,
		// sample 0, channel 1
		100, 200, 300, 400,
		// sample 1, channel 0
		5, 6, 7, 8,
		// sample 1, channel 1
		500, 600, 700, 800,
	}, tensor.Shape{2, 2, 2, 2}, backend)

	output := bn.Forward(input)

	if !output.Shape().Equal(tensor.Shape{2, 2, 2, 2}) {
		t.Fatalf("Forward shape = %v, want [2 2 2 2]", output.Shape())
	}

	data := output.Data()
	for c := 0; c < 2; c++ {
		var mean float64
		var count int
		for n := 0; n < 2; n++ {
			for i := 0; i < 4; i++ {
				mean += float64(data[n*8+c*4+i])
				count++
			}
		}
		mean /= float64(count)
		if math.Abs(mean) > 1e-4 {
			t.Errorf("channel %d mean = %v, want ~0", c, mean)
		}

		var variance float64
		for n := 0; n < 2; n++ {
			for i := 0; i < 4; i++ {
				d := float64(data[n*8+c*4+i]) - mean
				variance += d * d
			}
		}
		variance /= float64(count)
		if math.Abs(variance-1) > 1e-2 {
			t.Errorf("channel %d variance = %v, want ~1", c, variance)
		}
	}
}

func TestBatchNormStateDict(t *testing.T) {
	backend := cpu.New()
	bn := NewBatchNorm2D(3, backend)

	sd := bn.StateDict()
	if len(sd) != 2 {
		t.Fatalf("StateDict has %d entries, want 2", len(sd))
	}
	for _, name := range []string{"gamma", "beta"} {
		raw, ok := sd[name]
		if !ok {
			t.Fatalf("StateDict missing %q", name)
		}
		if !raw.Shape().Equal(tensor.Shape{3}) {
			t.Errorf("%s shape = %v, want [3]", name, raw.Shape())
		}
	}

	err := bn.LoadStateDict(map[string]*tensor.RawTensor{
		"gamma": rawFromSlice(t, []float32{1, 1}, tensor.Shape{2}),
		"beta":  rawFromSlice(t, []float32{0, 0}, tensor.Shape{2}),
	})
	if err == nil {
		t.Error("LoadStateDict with wrong shape did not fail")
	}
}
