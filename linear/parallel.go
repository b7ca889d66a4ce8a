// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package linear

import (
	"github.com/ajroetker/go-linear/linear/vec"
	"github.com/ajroetker/go-linear/linear/workerpool"
)

// minParallelLen is the vector length below which the pool is bypassed and
// the work runs serially; chunking overhead dominates under this size.
const minParallelLen = 4096

// Parallel executes element-wise vector operations on a persistent worker
// pool. Workers split each vector into contiguous chunks; chunks write
// disjoint ranges of the output, so results are identical to the serial
// operations.
//
// A Parallel is safe for concurrent use. Close releases the pool; after
// Close, operations still complete, falling back to serial execution.
type Parallel struct {
	pool *workerpool.Pool
}

// NewParallel creates a Parallel front-end backed by a pool with the given
// number of workers. If workers <= 0, uses GOMAXPROCS.
func NewParallel(workers int) *Parallel {
	return &Parallel{pool: workerpool.New(workers)}
}

// Pool exposes the underlying worker pool, e.g. for Stats.
func (p *Parallel) Pool() *workerpool.Pool {
	return p.pool
}

// Close shuts down the worker pool. Idempotent.
func (p *Parallel) Close() {
	p.pool.Close()
}

// chunked runs kernel over [0, n) either serially or chunked on the pool.
func (p *Parallel) chunked(n int, kernel func(start, end int)) {
	if n < minParallelLen {
		kernel(0, n)
		return
	}
	p.pool.ParallelFor(n, kernel)
}

// Add returns the element-wise sum a + b computed on the pool.
// Returns ErrDimensionMismatch if the dimensions differ.
func (p *Parallel) Add(a, b *Vector) (*Vector, error) {
	if err := sameLen(a, b); err != nil {
		return nil, err
	}
	out := New(a.Len())
	p.chunked(a.Len(), func(start, end int) {
		vec.AddTo(out.Data[start:end], a.Data[start:end], b.Data[start:end])
	})
	return out, nil
}

// Sub returns the element-wise difference a - b computed on the pool.
// Returns ErrDimensionMismatch if the dimensions differ.
func (p *Parallel) Sub(a, b *Vector) (*Vector, error) {
	if err := sameLen(a, b); err != nil {
		return nil, err
	}
	out := New(a.Len())
	p.chunked(a.Len(), func(start, end int) {
		vec.SubTo(out.Data[start:end], a.Data[start:end], b.Data[start:end])
	})
	return out, nil
}

// Mul returns the element-wise product a * b computed on the pool.
// Returns ErrDimensionMismatch if the dimensions differ.
func (p *Parallel) Mul(a, b *Vector) (*Vector, error) {
	if err := sameLen(a, b); err != nil {
		return nil, err
	}
	out := New(a.Len())
	p.chunked(a.Len(), func(start, end int) {
		vec.MulTo(out.Data[start:end], a.Data[start:end], b.Data[start:end])
	})
	return out, nil
}

// Div returns the element-wise quotient a / b computed on the pool.
// Elements divided by a zero divisor become NaN.
// Returns ErrDimensionMismatch if the dimensions differ.
func (p *Parallel) Div(a, b *Vector) (*Vector, error) {
	if err := sameLen(a, b); err != nil {
		return nil, err
	}
	out := New(a.Len())
	p.chunked(a.Len(), func(start, end int) {
		vec.DivTo(out.Data[start:end], a.Data[start:end], b.Data[start:end])
	})
	return out, nil
}

// Scale returns a with every element multiplied by c, computed on the pool.
func (p *Parallel) Scale(a *Vector, c float32) *Vector {
	out := New(a.Len())
	p.chunked(a.Len(), func(start, end int) {
		vec.ScaleTo(out.Data[start:end], c, a.Data[start:end])
	})
	return out
}

// ZipWith applies op to each corresponding pair of elements on the pool.
// Returns ErrDimensionMismatch if the dimensions differ.
func (p *Parallel) ZipWith(a, b *Vector, op func(x, y float32) float32) (*Vector, error) {
	if err := sameLen(a, b); err != nil {
		return nil, err
	}
	out := New(a.Len())
	p.chunked(a.Len(), func(start, end int) {
		for i := start; i < end; i++ {
			out.Data[i] = op(a.Data[i], b.Data[i])
		}
	})
	return out, nil
}
