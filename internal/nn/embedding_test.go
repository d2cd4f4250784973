package nn

import (
	"testing"

	cpu "github.com/latent-ml/latent/internal/backend/cpu"
	"github.com/latent-ml/latent/internal/tensor"
)

func TestEmbeddingLookup(t *testing.T) {
	backend := cpu.New()

	weight := fromSlice(t, []float32{
		1, 2, // row 0
		3, 4, // row 1
		5, 6, // row 2
	}, tensor.Shape{3, 2}, backend)
	embed := NewEmbeddingWithWeight(weight)

	indices, err := tensor.FromSlice([]int32{2, 0}, tensor.Shape{2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	output := embed.Forward(indices)

	if !output.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("Forward shape = %v, want [2 2]", output.Shape())
	}

	want := []float32{5, 6, 1, 2}
	got := output.Data()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Forward result[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEmbeddingDimensions(t *testing.T) {
	backend := cpu.New()
	embed := NewEmbedding(10, 512, backend)

	if embed.NumEmbed != 10 {
		t.Errorf("NumEmbed = %d, want 10", embed.NumEmbed)
	}
	if embed.EmbedDim != 512 {
		t.Errorf("EmbedDim = %d, want 512", embed.EmbedDim)
	}
	if !embed.Weight.Tensor().Shape().Equal(tensor.Shape{10, 512}) {
		t.Errorf("weight shape = %v, want [10 512]", embed.Weight.Tensor().Shape())
	}
	if params := embed.Parameters(); len(params) != 1 {
		t.Errorf("Embedding has %d parameters, want 1", len(params))
	}
}
