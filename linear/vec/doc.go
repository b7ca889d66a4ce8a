// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

// Package vec provides slice-level kernels for element-wise vector
// arithmetic and common reductions (dot product, norms, distances).
//
// Operations come in two variants:
//   - In-place: modify the destination slice directly (e.g., Add)
//   - To: write results to a separate destination slice (e.g., AddTo)
//
// Kernels are generic over float32 and float64 and use SIMD acceleration
// via the go-highway hwy primitives, with a scalar tail for the remainder.
// The typed Vector/Matrix/Tensor API in the parent linear package delegates
// here after validating dimensions.
package vec
