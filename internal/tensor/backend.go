package tensor

// Backend defines the operations a compute backend must provide.
//
// Backends work with RawTensor (type-erased) and dispatch on the runtime
// DataType. The op surface is the set the encoder networks exercise:
// convolution and pooling for the image trunks, matmul for the fully
// connected heads, reductions and broadcasting arithmetic for batch
// normalization, and embedding lookup for domain IDs.
//
// Operations panic on programmer errors (shape mismatch, unsupported
// dtype); user-facing validation happens above the backend.
type Backend interface {
	// Name returns the backend name (e.g. "CPU").
	Name() string

	// Device returns the compute device this backend targets.
	Device() Device

	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// Conv2D performs 2D convolution.
	// input: [N, C_in, H, W], kernel: [C_out, C_in, KH, KW].
	Conv2D(input, kernel *RawTensor, stride, padding int) *RawTensor

	// MaxPool2D performs 2D max pooling with zero padding.
	// Padded positions never win the max.
	MaxPool2D(input *RawTensor, kernelSize, stride, padding int) *RawTensor

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Scalar operations (element-wise with scalar).
	MulScalar(x *RawTensor, scalar any) *RawTensor
	AddScalar(x *RawTensor, scalar any) *RawTensor

	// Element-wise math.
	Exp(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor

	// Reductions.
	Sum(x *RawTensor) *RawTensor
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Tensor manipulation.
	Cat(tensors []*RawTensor, dim int) *RawTensor
	Chunk(x *RawTensor, chunks, dim int) []*RawTensor
	Unsqueeze(x *RawTensor, dim int) *RawTensor
	Squeeze(x *RawTensor, dim int) *RawTensor

	// Embedding performs embedding lookup.
	// weight: [numEmbeddings, embeddingDim], indices: int32 tensor.
	// Output: [...indices.shape, embeddingDim].
	Embedding(weight, indices *RawTensor) *RawTensor
}
