// Copyright (C) 2024 The rdcap Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package renderdoc binds to the in-application API of a RenderDoc library
// that is already resident in the current process.
//
// The package never loads RenderDoc itself: a capture tool must not be pulled
// into processes that were not launched under it. When the library is absent
// Load fails and callers fall back to the null implementation, whose bracket
// operations are no-ops.
package renderdoc

import (
	"unsafe"

	"github.com/gfxdbg/rdcap/core/fault"
)

const (
	// entryPoint is the exported symbol used to obtain the API table.
	entryPoint = "RENDERDOC_GetAPI"
	// version100 is eRENDERDOC_API_Version_1_0_0, the table layout this
	// package understands.
	version100 = 10000
)

const (
	// ErrNotResident indicates the RenderDoc library is not loaded in this
	// process.
	ErrNotResident = fault.Const("RenderDoc library is not resident in this process")
	// ErrNoEntryPoint indicates the library was found but the RENDERDOC_GetAPI
	// symbol could not be resolved.
	ErrNoEntryPoint = fault.Const("RENDERDOC_GetAPI entry point not found")
	// ErrIncompatible indicates the library rejected the requested API version.
	ErrIncompatible = fault.Const("RenderDoc does not support API version 1.0.0")
)

// API is the subset of the RenderDoc in-application API consumed by the
// capture controller.
type API interface {
	// Capable returns true if the API is bound to a live RenderDoc instance.
	Capable() bool
	// Version returns the version reported by the bound RenderDoc instance.
	Version() (major, minor, patch int)
	// StartFrameCapture begins capturing the given device context. A nil
	// window handle applies the capture to the whole device.
	StartFrameCapture(device, window unsafe.Pointer)
	// EndFrameCapture ends a capture started with StartFrameCapture.
	EndFrameCapture(device, window unsafe.Pointer)
}

// Null returns the no-op implementation of API.
func Null() API { return nullAPI{} }

type nullAPI struct{}

func (nullAPI) Capable() bool                                   { return false }
func (nullAPI) Version() (major, minor, patch int)              { return 0, 0, 0 }
func (nullAPI) StartFrameCapture(device, window unsafe.Pointer) {}
func (nullAPI) EndFrameCapture(device, window unsafe.Pointer)   {}
