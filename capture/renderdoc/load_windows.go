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

package renderdoc

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

const libraryName = "renderdoc.dll"

// Load binds to a RenderDoc library already resident in the process.
// GetModuleHandle only finds modules that are already mapped, so this never
// pulls a fresh copy into processes that were not launched under RenderDoc.
func Load(ctx context.Context) (API, error) {
	name, err := windows.UTF16PtrFromString(libraryName)
	if err != nil {
		return nil, errors.Wrap(ErrNotResident, libraryName)
	}
	module, err := windows.GetModuleHandle(name)
	if err != nil {
		return nil, errors.Wrap(ErrNotResident, libraryName)
	}
	entry, err := windows.GetProcAddress(module, entryPoint)
	if err != nil || entry == 0 {
		return nil, errors.Wrap(ErrNoEntryPoint, libraryName)
	}
	return bind(ctx, entry)
}
