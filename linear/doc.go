// Copyright 2025 go-linear Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package linear provides single-precision vector, matrix and tensor
// primitives: element-wise arithmetic, common geometric operations
// (magnitude, distance, dot and cross products, normalization,
// polar/cartesian conversion), a BLAS-backed matrix engine, and optional
// multi-threaded execution of element-wise operations.
//
// All element buffers are flat, row-major []float32 slices. Operations
// validate dimensions up front and return sentinel errors (see errors.go)
// instead of silently truncating. The slice-level SIMD kernels live in the
// vec subpackage; parallel execution uses the workerpool subpackage through
// the Parallel front-end.
//
// Basic usage:
//
//	a := linear.NewFromSlice([]float32{1, 2, 3})
//	b := linear.NewFromSlice([]float32{4, 5, 6})
//	sum, err := a.Add(b)
//	if err != nil { ... }
//	dot, err := a.Dot(b)
package linear
