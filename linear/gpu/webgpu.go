// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

//go:build gpu

package gpu

import (
	"fmt"

	"github.com/openfluke/webgpu/wgpu"
	"github.com/rs/zerolog/log"
)

// addShader computes out[i] = a[i] + b[i] over a storage buffer triple.
const addShader = `
@group(0) @binding(0) var<storage, read>       a:   array<f32>;
@group(0) @binding(1) var<storage, read>       b:   array<f32>;
@group(0) @binding(2) var<storage, read_write> out: array<f32>;

@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    let i = gid.x;
    if (i < arrayLength(&out)) {
        out[i] = a[i] + b[i];
    }
}
`

// workgroupSize must match @workgroup_size in the shaders.
const workgroupSize = 64

// WebGPUDevice runs element-wise kernels as WGSL compute shaders through
// wgpu-native. Buffers live in device memory; host access goes through a
// staging copy.
type WebGPUDevice struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	addPipeline *wgpu.ComputePipeline

	name      string
	allocated int64
}

// NewWebGPUDevice opens the first available adapter and compiles the
// element-wise pipelines. Returns ErrNoGPU if no adapter is found.
func NewWebGPUDevice() (Device, error) {
	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, ErrNoGPU
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreference_HighPerformance,
	})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: %v", ErrNoGPU, err)
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("gpu: requesting device: %w", err)
	}

	d := &WebGPUDevice{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    device.GetQueue(),
		name:     "WebGPU",
	}
	if info := adapter.GetInfo(); info.Name != "" {
		d.name = fmt.Sprintf("WebGPU (%s)", info.Name)
	}

	d.addPipeline, err = d.compilePipeline("vector-add", addShader)
	if err != nil {
		d.Free()
		return nil, err
	}

	log.Debug().Str("adapter", d.name).Msg("gpu: WebGPU device ready")
	return d, nil
}

func (d *WebGPUDevice) compilePipeline(label, src string) (*wgpu.ComputePipeline, error) {
	module, err := d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: src},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: compiling %s shader: %w", label, err)
	}
	defer module.Release()

	pipeline, err := d.device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label: label,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     module,
			EntryPoint: "main",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: creating %s pipeline: %w", label, err)
	}
	return pipeline, nil
}

func (d *WebGPUDevice) Type() DeviceType { return DeviceTypeGPU }
func (d *WebGPUDevice) Name() string     { return d.name }

func (d *WebGPUDevice) Allocate(size int64) (Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("gpu: negative buffer size %d", size)
	}
	buf, err := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Size:  uint64(size),
		Usage: wgpu.BufferUsage_Storage | wgpu.BufferUsage_CopySrc | wgpu.BufferUsage_CopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: creating buffer: %w", err)
	}
	d.allocated += size
	return &webgpuBuffer{dev: d, buf: buf, size: size}, nil
}

func (d *WebGPUDevice) Copy(dst, src Buffer, size int64) error {
	dstBuf, ok := dst.(*webgpuBuffer)
	if !ok {
		return fmt.Errorf("gpu: dst is not a WebGPU buffer")
	}
	srcBuf, ok := src.(*webgpuBuffer)
	if !ok {
		return fmt.Errorf("gpu: src is not a WebGPU buffer")
	}

	encoder, err := d.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("gpu: creating command encoder: %w", err)
	}
	defer encoder.Release()

	encoder.CopyBufferToBuffer(srcBuf.buf, 0, dstBuf.buf, 0, uint64(size))
	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("gpu: encoding copy: %w", err)
	}
	defer cmd.Release()

	d.queue.Submit(cmd)
	return nil
}

func (d *WebGPUDevice) Sync() error {
	d.device.Poll(true, nil)
	return nil
}

func (d *WebGPUDevice) Free() error {
	if d.addPipeline != nil {
		d.addPipeline.Release()
	}
	if d.device != nil {
		d.device.Release()
	}
	if d.adapter != nil {
		d.adapter.Release()
	}
	if d.instance != nil {
		d.instance.Release()
	}
	return nil
}

func (d *WebGPUDevice) MemoryUsage() (int64, int64) {
	return d.allocated, 0
}

// Add dispatches the vector-add shader over three device buffers holding n
// float32 elements each and blocks until the result is in out.
func (d *WebGPUDevice) Add(a, b, out Buffer, n int) error {
	aBuf, aok := a.(*webgpuBuffer)
	bBuf, bok := b.(*webgpuBuffer)
	outBuf, ook := out.(*webgpuBuffer)
	if !aok || !bok || !ook {
		return fmt.Errorf("gpu: buffers do not belong to a WebGPU device")
	}

	layout := d.addPipeline.GetBindGroupLayout(0)
	defer layout.Release()

	bindGroup, err := d.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: aBuf.buf, Size: uint64(aBuf.size)},
			{Binding: 1, Buffer: bBuf.buf, Size: uint64(bBuf.size)},
			{Binding: 2, Buffer: outBuf.buf, Size: uint64(outBuf.size)},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: creating bind group: %w", err)
	}
	defer bindGroup.Release()

	encoder, err := d.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("gpu: creating command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(d.addPipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.DispatchWorkgroups(uint32((n+workgroupSize-1)/workgroupSize), 1, 1)
	pass.End()
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("gpu: encoding dispatch: %w", err)
	}
	defer cmd.Release()

	d.queue.Submit(cmd)
	return d.Sync()
}

// webgpuBuffer wraps a device-local storage buffer. Host reads go through a
// transient staging buffer because storage buffers are not mappable.
type webgpuBuffer struct {
	dev  *WebGPUDevice
	buf  *wgpu.Buffer
	size int64
}

func (b *webgpuBuffer) Size() int64 { return b.size }

func (b *webgpuBuffer) CopyFromHost(src []byte) error {
	if int64(len(src)) > b.size {
		return fmt.Errorf("gpu: write of %d bytes exceeds buffer size %d", len(src), b.size)
	}
	b.dev.queue.WriteBuffer(b.buf, 0, src)
	return nil
}

func (b *webgpuBuffer) CopyToHost(dst []byte) error {
	if int64(len(dst)) > b.size {
		return fmt.Errorf("gpu: read of %d bytes exceeds buffer size %d", len(dst), b.size)
	}

	staging, err := b.dev.device.CreateBuffer(&wgpu.BufferDescriptor{
		Size:  uint64(len(dst)),
		Usage: wgpu.BufferUsage_MapRead | wgpu.BufferUsage_CopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: creating staging buffer: %w", err)
	}
	defer staging.Release()

	encoder, err := b.dev.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("gpu: creating command encoder: %w", err)
	}
	defer encoder.Release()

	encoder.CopyBufferToBuffer(b.buf, 0, staging, 0, uint64(len(dst)))
	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("gpu: encoding readback: %w", err)
	}
	defer cmd.Release()
	b.dev.queue.Submit(cmd)

	var mapErr error
	done := false
	err = staging.MapAsync(wgpu.MapMode_Read, 0, uint64(len(dst)), func(status wgpu.BufferMapAsyncStatus) {
		if status != wgpu.BufferMapAsyncStatus_Success {
			mapErr = fmt.Errorf("gpu: map failed with status %v", status)
		}
		done = true
	})
	if err != nil {
		return fmt.Errorf("gpu: mapping staging buffer: %w", err)
	}
	for !done {
		b.dev.device.Poll(true, nil)
	}
	if mapErr != nil {
		return mapErr
	}
	defer staging.Unmap()

	copy(dst, staging.GetMappedRange(0, uint(len(dst))))
	return nil
}

func (b *webgpuBuffer) Free() error {
	b.dev.allocated -= b.size
	b.buf.Release()
	return nil
}

func (b *webgpuBuffer) Device() Device { return b.dev }
