package nn

import (
	"testing"

	cpu "github.com/latent-ml/latent/internal/backend/cpu"
	"github.com/latent-ml/latent/internal/tensor"
)

func TestSequentialForward(t *testing.T) {
	backend := cpu.New()

	seq := NewSequential[*cpu.CPUBackend](
		NewLinear(4, 3, backend),
		NewReLU[*cpu.CPUBackend](),
		NewLinear(3, 2, backend),
	)

	input := tensor.Randn[float32](tensor.Shape{5, 4}, backend)
	output := seq.Forward(input)

	if !output.Shape().Equal(tensor.Shape{5, 2}) {
		t.Errorf("Forward shape = %v, want [5 2]", output.Shape())
	}
}

func TestSequentialParameters(t *testing.T) {
	backend := cpu.New()

	seq := NewSequential[*cpu.CPUBackend](
		NewLinear(4, 3, backend),
		NewReLU[*cpu.CPUBackend](),
		NewLinear(3, 2, backend),
	)

	// Two Linear layers with weight and bias each; ReLU contributes none.
	if params := seq.Parameters(); len(params) != 4 {
		t.Errorf("Sequential has %d parameters, want 4", len(params))
	}
}

func TestSequentialStateDictPrefixes(t *testing.T) {
	backend := cpu.New()

	seq := NewSequential[*cpu.CPUBackend](
		NewLinear(4, 3, backend),
		NewReLU[*cpu.CPUBackend](),
		NewBatchNorm1D(3, backend),
	)

	sd := seq.StateDict()

	// Entries are prefixed with the module index; the stateless ReLU
	// contributes nothing.
	for _, name := range []string{"0.weight", "0.bias", "2.gamma", "2.beta"} {
		if _, ok := sd[name]; !ok {
			t.Errorf("StateDict missing %q", name)
		}
	}
	if len(sd) != 4 {
		t.Errorf("StateDict has %d entries, want 4", len(sd))
	}
}

func TestSequentialLoadStateDict(t *testing.T) {
	backend := cpu.New()

	build := func() *Sequential[*cpu.CPUBackend] {
		return NewSequential[*cpu.CPUBackend](
			NewLinear(2, 2, backend),
			NewReLU[*cpu.CPUBackend](),
		)
	}

	src := build()
	dst := build()

	if err := dst.LoadStateDict(src.StateDict()); err != nil {
		t.Fatalf("LoadStateDict failed: %v", err)
	}

	srcWeight := src.Module(0).(*Linear[*cpu.CPUBackend]).Weight().Tensor().Data()
	dstWeight := dst.Module(0).(*Linear[*cpu.CPUBackend]).Weight().Tensor().Data()
	for i := range srcWeight {
		if srcWeight[i] != dstWeight[i] {
			t.Fatalf("weight[%d] = %v after round trip, want %v", i, dstWeight[i], srcWeight[i])
		}
	}
}
