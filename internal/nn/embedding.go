package nn

import (
	"fmt"
	"math/rand"

	"github.com/latent-ml/latent/internal/tensor"
)

// Embedding is a lookup table that maps discrete indices to dense vectors.
//
// This converts discrete IDs (domain labels, categories, tokens) to continuous
// embeddings. The embedding vectors are learnable parameters.
//
// Architecture:
//   - Weight: [NumEmbed, EmbedDim] learnable parameter
//   - Forward: indices [...] -> embeddings [..., EmbedDim]
//
// Example:
//
//	// 5 domains, embedding dimension 512
//	embed := nn.NewEmbedding[B](5, 512, backend)
//
//	// Domain IDs for a batch of 4 samples
//	indices, _ := tensor.FromSlice([]int32{0, 3, 1, 4}, tensor.Shape{4}, backend)
//
//	// Get embeddings [4, 512]
//	embeddings := embed.Forward(indices)
type Embedding[B tensor.Backend] struct {
	Weight   *Parameter[B] // Embedding weight matrix [NumEmbed, EmbedDim]
	NumEmbed int           // Number of embeddings (vocabulary size)
	EmbedDim int           // Embedding dimension (vector size)
}

// NewEmbedding creates a new Embedding layer.
//
// The embedding weights are initialized from a standard normal distribution N(0, 1).
// For other initialization strategies (Xavier, truncated normal), initialize the
// weight tensor manually and pass it to NewEmbeddingWithWeight.
//
// Parameters:
//   - numEmbeddings: Size of the embedding dictionary (e.g., vocabulary size)
//   - embeddingDim: Dimension of each embedding vector
//   - backend: Computation backend
//
// Returns a new Embedding layer with randomly initialized weights.
func NewEmbedding[B tensor.Backend](numEmbeddings, embeddingDim int, backend B) *Embedding[B] {
	// Initialize weight from N(0, 1)
	weightData := make([]float32, numEmbeddings*embeddingDim)
	//nolint:gosec // math/rand is appropriate for ML weight initialization
	for i := range weightData {
		weightData[i] = float32(rand.NormFloat64())
	}

	weight, err := tensor.FromSlice[float32, B](weightData, tensor.Shape{numEmbeddings, embeddingDim}, backend)
	if err != nil {
		panic(fmt.Sprintf("failed to create embedding weight: %v", err))
	}

	return &Embedding[B]{
		Weight:   NewParameter[B]("embedding.weight", weight),
		NumEmbed: numEmbeddings,
		EmbedDim: embeddingDim,
	}
}

// NewEmbeddingWithWeight creates an Embedding layer with pre-initialized weights.
//
// Use this when you want custom initialization (Xavier, truncated normal, pretrained, etc.)
//
// Parameters:
//   - weight: Pre-initialized weight tensor [numEmbeddings, embeddingDim]
//
// Returns a new Embedding layer using the provided weights.
func NewEmbeddingWithWeight[B tensor.Backend](weight *tensor.Tensor[float32, B]) *Embedding[B] {
	shape := weight.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("embedding weight must be 2D, got shape %v", shape))
	}

	return &Embedding[B]{
		Weight:   NewParameter[B]("embedding.weight", weight),
		NumEmbed: shape[0],
		EmbedDim: shape[1],
	}
}

// Forward performs embedding lookup.
//
// Maps each index to its corresponding embedding vector.
//
// Parameters:
//   - indices: Tensor of indices of any shape [...] of type int32
//
// Returns:
//   - embeddings: Tensor [..., EmbedDim] with embedding vectors
//
// Example:
//
//	indices := tensor.FromSlice([]int32{0, 1, 2}, tensor.Shape{3}, backend)
//	embeddings := embed.Forward(indices) // Shape: [3, EmbedDim]
//
// Panics if any index is out of bounds [0, NumEmbed).
func (e *Embedding[B]) Forward(indices *tensor.Tensor[int32, B]) *tensor.Tensor[float32, B] {
	return e.Weight.Tensor().Embedding(indices)
}

// Parameters returns the list of trainable parameters.
func (e *Embedding[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{e.Weight}
}
