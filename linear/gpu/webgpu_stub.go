// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

//go:build !gpu

package gpu

// NewWebGPUDevice reports that no GPU backend was compiled in. Build with
// the `gpu` tag to enable the WebGPU compute backend.
func NewWebGPUDevice() (Device, error) {
	return nil, ErrNoGPU
}
