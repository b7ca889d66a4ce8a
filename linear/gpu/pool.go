// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package gpu

import (
	"fmt"
	"sync"
)

// BufferPool recycles device buffers by size. Allocating device memory is
// expensive on GPU backends, so callers that repeatedly stage same-sized
// vectors should Get/Put through a pool instead of calling Allocate.
type BufferPool struct {
	dev Device

	mu   sync.Mutex
	free map[int64][]Buffer

	hits   uint64
	misses uint64
	inUse  int64
}

// PoolStats is a snapshot of pool activity.
type PoolStats struct {
	// Hits counts Get calls served from the free list.
	Hits uint64
	// Misses counts Get calls that had to allocate.
	Misses uint64
	// InUse counts buffers handed out and not yet returned.
	InUse int64
}

// NewBufferPool creates a pool that allocates from dev.
func NewBufferPool(dev Device) *BufferPool {
	return &BufferPool{
		dev:  dev,
		free: make(map[int64][]Buffer),
	}
}

// Get returns a buffer of exactly size bytes, reusing a pooled one when
// available. Buffer contents are unspecified.
func (p *BufferPool) Get(size int64) (Buffer, error) {
	p.mu.Lock()
	if bufs := p.free[size]; len(bufs) > 0 {
		buf := bufs[len(bufs)-1]
		p.free[size] = bufs[:len(bufs)-1]
		p.hits++
		p.inUse++
		p.mu.Unlock()
		return buf, nil
	}
	p.misses++
	p.inUse++
	p.mu.Unlock()

	buf, err := p.dev.Allocate(size)
	if err != nil {
		p.mu.Lock()
		p.inUse--
		p.mu.Unlock()
		return nil, fmt.Errorf("gpu: pool allocation of %d bytes: %w", size, err)
	}
	return buf, nil
}

// Put returns a buffer to the pool for reuse. The caller must not touch the
// buffer afterwards.
func (p *BufferPool) Put(buf Buffer) {
	p.mu.Lock()
	size := buf.Size()
	p.free[size] = append(p.free[size], buf)
	p.inUse--
	p.mu.Unlock()
}

// Stats returns a snapshot of pool activity.
func (p *BufferPool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PoolStats{Hits: p.hits, Misses: p.misses, InUse: p.inUse}
}

// Drain frees every pooled buffer. Buffers still in use are unaffected.
func (p *BufferPool) Drain() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for size, bufs := range p.free {
		for _, buf := range bufs {
			buf.Free()
		}
		delete(p.free, size)
	}
}
