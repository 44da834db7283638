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

	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

const libraryName = "librenderdoc.so"

// RTLD_NOLOAD is not exported by purego.
const rtldNoLoad = 0x00004

// Load binds to a RenderDoc library already resident in the process.
// RTLD_NOLOAD keeps this from pulling a fresh copy into processes that were
// not launched under RenderDoc.
func Load(ctx context.Context) (API, error) {
	lib, err := purego.Dlopen(libraryName, purego.RTLD_NOW|rtldNoLoad)
	if err != nil {
		return nil, errors.Wrap(ErrNotResident, libraryName)
	}
	entry, err := purego.Dlsym(lib, entryPoint)
	if err != nil || entry == 0 {
		return nil, errors.Wrap(ErrNoEntryPoint, libraryName)
	}
	return bind(ctx, entry)
}
