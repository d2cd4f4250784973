// Copyright 2025 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the Latent library.
//
// # Overview
//
// Tensors are the fundamental data structure in Latent. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Zero-copy operations where possible
//   - Device abstraction via the Backend interface
//
// # Basic Usage
//
//	import (
//	    "github.com/latent-ml/latent/tensor"
//	    "github.com/latent-ml/latent/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    // Tensor operations
//	    z := x.Add(y)
//	    result := x.MatMul(y.Transpose())
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType constraint:
//   - float32: activations, weights, latent parameters
//   - int32: discrete indices (domain IDs, embedding lookups)
//
// # Broadcasting
//
// Tensor operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend)     // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4}, backend)      // (3, 4)
//	c := a.Add(b)                                                // (3, 4)
//
// # Memory Management
//
// Tensors use zero-copy operations where possible. The underlying data is
// reference-counted and automatically freed when no longer needed.
//
// # Available Operations
//
// Scalar operations:
//
//	y := x.MulScalar(2.0)    // Multiply by scalar
//	y := x.AddScalar(1.0)    // Add scalar
//
// Math operations:
//
//	y := x.Exp()             // Exponential
//	y := x.Sqrt()            // Square root
//
// Reductions:
//
//	s := x.Sum()             // Total sum (scalar tensor)
//	m := x.MeanDim(0, true)  // Mean along a dimension
//
// Shape manipulation:
//
//	y := x.Reshape(2, 3)     // Reshape
//	y := x.Unsqueeze(0)      // Add dimension of size 1
//	y := x.Squeeze(0)        // Remove dimension of size 1
//	parts := x.Chunk(2, -1)  // Split into equal parts
//
// See method documentation for the full list of operations.
package tensor
