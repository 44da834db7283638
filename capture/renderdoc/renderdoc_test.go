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

package renderdoc_test

import (
	"context"
	"testing"

	"github.com/gfxdbg/rdcap/capture/renderdoc"
	"github.com/gfxdbg/rdcap/core/assert"
)

func TestNullAPI(t *testing.T) {
	api := renderdoc.Null()
	assert.For(t, "capable").That(api.Capable()).Equals(false)
	major, minor, patch := api.Version()
	assert.For(t, "version").ThatSlice([]int{major, minor, patch}).DeepEquals([]int{0, 0, 0})
	// Bracket calls on the null API must be harmless no-ops.
	api.StartFrameCapture(nil, nil)
	api.EndFrameCapture(nil, nil)
}

// The test binary is never launched under RenderDoc, so discovery must fail
// and report the library as not resident.
func TestLoadWithoutResidentLibrary(t *testing.T) {
	api, err := renderdoc.Load(context.Background())
	assert.For(t, "api").That(api).IsNil()
	assert.For(t, "err").ThatError(err).Failed()
	assert.For(t, "cause").ThatError(err).HasCause(renderdoc.ErrNotResident)
}
