package tensor

// Extended tensor operations - typed wrappers for backend operations.
//
// This file provides type-safe wrappers at the Tensor[T, B] level for
// scalar arithmetic, element-wise math, reductions, and embedding lookup.

// MulScalar multiplies each element by a scalar value.
//
// Example:
//
//	x := tensor.Ones[float32](Shape{2, 2}, backend)
//	y := x.MulScalar(0.5) // All elements become 0.5
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	result := t.backend.MulScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// AddScalar adds a scalar value to each element.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	result := t.backend.AddScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// Exp computes element-wise exponential: exp(x).
func (t *Tensor[T, B]) Exp() *Tensor[T, B] {
	result := t.backend.Exp(t.raw)
	return New[T, B](result, t.backend)
}

// Sqrt computes element-wise square root: sqrt(x).
// Panics on negative values.
func (t *Tensor[T, B]) Sqrt() *Tensor[T, B] {
	result := t.backend.Sqrt(t.raw)
	return New[T, B](result, t.backend)
}

// Sum reduces the tensor to a scalar by summing all elements.
//
// Example:
//
//	x := tensor.Ones[float32](Shape{2, 3}, backend)
//	s := x.Sum() // Scalar tensor holding 6
func (t *Tensor[T, B]) Sum() *Tensor[T, B] {
	result := t.backend.Sum(t.raw)
	return New[T, B](result, t.backend)
}

// SumDim sums along the given dimension.
//
// Supports negative dim indexing (-1 = last dimension).
// If keepDim is true, the reduced dimension is kept with size 1.
func (t *Tensor[T, B]) SumDim(dim int, keepDim bool) *Tensor[T, B] {
	result := t.backend.SumDim(t.raw, dim, keepDim)
	return New[T, B](result, t.backend)
}

// MeanDim averages along the given dimension.
//
// Supports negative dim indexing (-1 = last dimension).
// If keepDim is true, the reduced dimension is kept with size 1.
//
// Example:
//
//	x := tensor.Randn[float32](Shape{8, 64}, backend)
//	mu := x.MeanDim(0, false) // Shape: [64], per-feature batch mean
func (t *Tensor[T, B]) MeanDim(dim int, keepDim bool) *Tensor[T, B] {
	result := t.backend.MeanDim(t.raw, dim, keepDim)
	return New[T, B](result, t.backend)
}

// Embedding treats the tensor as an embedding table [numEmbeddings, dim]
// and gathers rows by index.
//
// Output shape: [...indices.shape, dim].
// Panics if any index is out of bounds.
func (t *Tensor[T, B]) Embedding(indices *Tensor[int32, B]) *Tensor[T, B] {
	result := t.backend.Embedding(t.raw, indices.Raw())
	return New[T, B](result, t.backend)
}
