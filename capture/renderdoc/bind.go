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

//go:build linux || windows

package renderdoc

import (
	"context"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gfxdbg/rdcap/core/log"
)

// apiTable mirrors the RENDERDOC_API_1_0_0 function pointer table from
// renderdoc_app.h. Only the slots this package calls are bound; the rest are
// kept so the bound slots land at the right offsets.
type apiTable struct {
	getAPIVersion           uintptr
	setCaptureOptionU32     uintptr
	setCaptureOptionF32     uintptr
	getCaptureOptionU32     uintptr
	getCaptureOptionF32     uintptr
	setFocusToggleKeys      uintptr
	setCaptureKeys          uintptr
	getOverlayBits          uintptr
	maskOverlayBits         uintptr
	shutdown                uintptr
	unloadCrashHandler      uintptr
	setLogFilePathTemplate  uintptr
	getLogFilePathTemplate  uintptr
	getNumCaptures          uintptr
	getCapture              uintptr
	triggerCapture          uintptr
	isRemoteAccessConnected uintptr
	launchReplayUI          uintptr
	setActiveWindow         uintptr
	startFrameCapture       uintptr
	isFrameCapturing        uintptr
	endFrameCapture         uintptr
}

type liveAPI struct {
	apiVersion func(major, minor, patch unsafe.Pointer)
	start      func(device, window unsafe.Pointer)
	end        func(device, window unsafe.Pointer) uint32
}

func (a *liveAPI) Capable() bool { return true }

func (a *liveAPI) Version() (major, minor, patch int) {
	var mj, mn, pt int32
	a.apiVersion(unsafe.Pointer(&mj), unsafe.Pointer(&mn), unsafe.Pointer(&pt))
	return int(mj), int(mn), int(pt)
}

func (a *liveAPI) StartFrameCapture(device, window unsafe.Pointer) {
	a.start(device, window)
}

func (a *liveAPI) EndFrameCapture(device, window unsafe.Pointer) {
	a.end(device, window)
}

// bind requests API version 1.0.0 through the resolved RENDERDOC_GetAPI entry
// point and wires the table slots used by the controller.
func bind(ctx context.Context, entry uintptr) (API, error) {
	var getAPI func(version uintptr, out unsafe.Pointer) int32
	purego.RegisterFunc(&getAPI, entry)

	var table *apiTable
	if getAPI(version100, unsafe.Pointer(&table)) != 1 || table == nil {
		return nil, ErrIncompatible
	}

	live := &liveAPI{}
	purego.RegisterFunc(&live.apiVersion, table.getAPIVersion)
	purego.RegisterFunc(&live.start, table.startFrameCapture)
	purego.RegisterFunc(&live.end, table.endFrameCapture)

	major, minor, patch := live.Version()
	log.D(ctx, "Bound RenderDoc API %d.%d.%d.", major, minor, patch)
	return live, nil
}
