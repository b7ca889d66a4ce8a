// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package gpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUDeviceRoundTrip(t *testing.T) {
	dev := NewCPUDevice()
	defer dev.Free()

	assert.Equal(t, DeviceTypeCPU, dev.Type())
	assert.NotEmpty(t, dev.Name())

	buf, err := dev.Allocate(64)
	require.NoError(t, err)
	assert.Equal(t, int64(64), buf.Size())

	src := make([]byte, 64)
	for i := range src {
		src[i] = byte(i)
	}
	require.NoError(t, buf.CopyFromHost(src))

	dst := make([]byte, 64)
	require.NoError(t, buf.CopyToHost(dst))
	assert.Equal(t, src, dst)

	require.NoError(t, buf.Free())
	assert.Error(t, buf.CopyToHost(dst))
}

func TestCPUDeviceAllocateNegative(t *testing.T) {
	dev := NewCPUDevice()
	_, err := dev.Allocate(-1)
	assert.Error(t, err)
}

func TestCPUDeviceCopy(t *testing.T) {
	dev := NewCPUDevice()

	src, err := dev.Allocate(16)
	require.NoError(t, err)
	dst, err := dev.Allocate(16)
	require.NoError(t, err)

	require.NoError(t, src.CopyFromHost([]byte{1, 2, 3, 4}))
	require.NoError(t, dev.Copy(dst, src, 4))

	got := make([]byte, 4)
	require.NoError(t, dst.CopyToHost(got))
	assert.Equal(t, []byte{1, 2, 3, 4}, got)

	assert.Error(t, dev.Copy(dst, src, 32))
}

func TestCPUDeviceMemoryUsage(t *testing.T) {
	dev := NewCPUDevice()
	used, total := dev.MemoryUsage()
	assert.Equal(t, int64(0), used)
	assert.Greater(t, total, int64(0))
}

func TestUploadDownload(t *testing.T) {
	dev := NewCPUDevice()
	data := []float32{1.5, -2.25, 0, 3.75}

	buf, err := Upload(dev, data)
	require.NoError(t, err)
	assert.Equal(t, int64(16), buf.Size())

	got, err := Download(buf)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestUploadEmpty(t *testing.T) {
	dev := NewCPUDevice()
	buf, err := Upload(dev, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), buf.Size())

	got, err := Download(buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBufferPoolReuse(t *testing.T) {
	pool := NewBufferPool(NewCPUDevice())

	a, err := pool.Get(128)
	require.NoError(t, err)
	b, err := pool.Get(128)
	require.NoError(t, err)

	stats := pool.Stats()
	assert.Equal(t, uint64(0), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
	assert.Equal(t, int64(2), stats.InUse)

	pool.Put(a)
	pool.Put(b)

	c, err := pool.Get(128)
	require.NoError(t, err)
	assert.Equal(t, int64(128), c.Size())

	stats = pool.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
	assert.Equal(t, int64(1), stats.InUse)
}

func TestBufferPoolSizesDoNotMix(t *testing.T) {
	pool := NewBufferPool(NewCPUDevice())

	small, err := pool.Get(32)
	require.NoError(t, err)
	pool.Put(small)

	big, err := pool.Get(64)
	require.NoError(t, err)
	assert.Equal(t, int64(64), big.Size())

	stats := pool.Stats()
	assert.Equal(t, uint64(0), stats.Hits)
}

func TestBufferPoolDrain(t *testing.T) {
	pool := NewBufferPool(NewCPUDevice())

	buf, err := pool.Get(16)
	require.NoError(t, err)
	pool.Put(buf)
	pool.Drain()

	// After a drain, the next Get allocates fresh.
	_, err = pool.Get(16)
	require.NoError(t, err)
	stats := pool.Stats()
	assert.Equal(t, uint64(0), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
}

func TestWebGPUUnavailableWithoutTag(t *testing.T) {
	_, err := NewWebGPUDevice()
	if err == nil {
		t.Skip("WebGPU backend compiled in")
	}
	assert.True(t, errors.Is(err, ErrNoGPU))
}

func TestDefaultDeviceFallsBackToCPU(t *testing.T) {
	dev := DefaultDevice()
	require.NotNil(t, dev)
	if _, err := NewWebGPUDevice(); errors.Is(err, ErrNoGPU) {
		assert.Equal(t, DeviceTypeCPU, dev.Type())
	}
}
