// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

// Package gpu provides a compute device and buffer-staging abstraction for
// offloading element-wise operations. The CPU device is always available
// and keeps the library pure Go; a WebGPU compute backend is compiled in
// with the `gpu` build tag and runs the element-wise kernels as WGSL
// shaders.
package gpu

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/ajroetker/go-linear/linear/vec"
)

// ErrNoGPU is returned when a GPU backend is requested but not compiled in
// or not available on this system.
var ErrNoGPU = errors.New("gpu: no GPU backend available")

// DeviceType identifies the kind of compute device.
type DeviceType int

const (
	DeviceTypeCPU DeviceType = iota
	DeviceTypeGPU
)

func (dt DeviceType) String() string {
	switch dt {
	case DeviceTypeCPU:
		return "CPU"
	case DeviceTypeGPU:
		return "GPU"
	default:
		return "Unknown"
	}
}

// Device represents a compute device that owns memory buffers.
type Device interface {
	// Type returns the device type.
	Type() DeviceType

	// Name returns a human-readable device name.
	Name() string

	// Allocate allocates a buffer of the given size in bytes.
	Allocate(size int64) (Buffer, error)

	// Copy copies size bytes from src to dst. Both buffers must belong to
	// this device.
	Copy(dst, src Buffer, size int64) error

	// Sync waits for all pending operations to complete.
	Sync() error

	// Free releases the device and all associated resources.
	Free() error

	// MemoryUsage returns current memory usage in bytes (used, total).
	MemoryUsage() (int64, int64)
}

// Buffer represents a block of device memory.
type Buffer interface {
	// Size returns the size of the buffer in bytes.
	Size() int64

	// CopyToHost copies buffer data to host memory.
	CopyToHost(dst []byte) error

	// CopyFromHost copies host memory into the buffer.
	CopyFromHost(src []byte) error

	// Free releases the buffer.
	Free() error

	// Device returns the device that owns this buffer.
	Device() Device
}

// DefaultDevice returns the preferred device for this system: the WebGPU
// device when compiled in and usable, otherwise the CPU device.
func DefaultDevice() Device {
	if dev, err := NewWebGPUDevice(); err == nil {
		log.Debug().Str("device", dev.Name()).Msg("gpu: using WebGPU device")
		return dev
	}
	dev := NewCPUDevice()
	log.Debug().Str("device", dev.Name()).Msg("gpu: using CPU device")
	return dev
}

// Upload stages a float32 slice into a freshly allocated device buffer.
func Upload(dev Device, data []float32) (Buffer, error) {
	buf, err := dev.Allocate(int64(len(data)) * 4)
	if err != nil {
		return nil, fmt.Errorf("gpu: allocating staging buffer: %w", err)
	}

	host := make([]byte, len(data)*4)
	vec.EncodeFloat32s(host, data)
	if err := buf.CopyFromHost(host); err != nil {
		buf.Free()
		return nil, fmt.Errorf("gpu: staging upload: %w", err)
	}
	return buf, nil
}

// Download reads a device buffer back into a float32 slice sized to the
// buffer contents.
func Download(buf Buffer) ([]float32, error) {
	host := make([]byte, buf.Size())
	if err := buf.CopyToHost(host); err != nil {
		return nil, fmt.Errorf("gpu: staging download: %w", err)
	}
	out := make([]float32, buf.Size()/4)
	vec.DecodeFloat32s(host, out)
	return out, nil
}

// CPUDevice is the host-memory reference device. Buffers are plain Go
// slices; every operation is synchronous.
type CPUDevice struct {
	name string
}

// NewCPUDevice creates the host device.
func NewCPUDevice() *CPUDevice {
	return &CPUDevice{name: fmt.Sprintf("CPU (%s)", runtime.GOARCH)}
}

func (d *CPUDevice) Type() DeviceType { return DeviceTypeCPU }
func (d *CPUDevice) Name() string     { return d.name }

func (d *CPUDevice) Allocate(size int64) (Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("gpu: negative buffer size %d", size)
	}
	return &cpuBuffer{dev: d, data: make([]byte, size)}, nil
}

func (d *CPUDevice) Copy(dst, src Buffer, size int64) error {
	dstBuf, ok := dst.(*cpuBuffer)
	if !ok {
		return fmt.Errorf("gpu: dst is not a CPU buffer")
	}
	srcBuf, ok := src.(*cpuBuffer)
	if !ok {
		return fmt.Errorf("gpu: src is not a CPU buffer")
	}
	if size > int64(len(dstBuf.data)) || size > int64(len(srcBuf.data)) {
		return fmt.Errorf("gpu: copy of %d bytes exceeds buffer size", size)
	}
	copy(dstBuf.data[:size], srcBuf.data[:size])
	return nil
}

func (d *CPUDevice) Sync() error { return nil }
func (d *CPUDevice) Free() error { return nil }

// MemoryUsage reports host memory: bytes in use by the process heap are not
// tracked here, so used is 0 and total is physical memory.
func (d *CPUDevice) MemoryUsage() (int64, int64) {
	return 0, int64(memory.TotalMemory())
}

// cpuBuffer implements Buffer over a host byte slice.
type cpuBuffer struct {
	dev   *CPUDevice
	data  []byte
	freed bool
}

func (b *cpuBuffer) Size() int64 {
	return int64(len(b.data))
}

func (b *cpuBuffer) CopyToHost(dst []byte) error {
	if b.freed {
		return fmt.Errorf("gpu: use of freed buffer")
	}
	if len(dst) > len(b.data) {
		return fmt.Errorf("gpu: read of %d bytes exceeds buffer size %d", len(dst), len(b.data))
	}
	copy(dst, b.data)
	return nil
}

func (b *cpuBuffer) CopyFromHost(src []byte) error {
	if b.freed {
		return fmt.Errorf("gpu: use of freed buffer")
	}
	if len(src) > len(b.data) {
		return fmt.Errorf("gpu: write of %d bytes exceeds buffer size %d", len(src), len(b.data))
	}
	copy(b.data, src)
	return nil
}

func (b *cpuBuffer) Free() error {
	b.freed = true
	b.data = nil
	return nil
}

func (b *cpuBuffer) Device() Device {
	return b.dev
}
