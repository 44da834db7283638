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

// Package capture triggers frame captures for a fixed, user-selected subset
// of command submissions.
//
// A Controller is created once at device creation and shared by everything
// that submits work. The environment selects which submissions are captured,
// by shader hash and/or submission ordinal; the surrounding translation layer
// asks ShouldCaptureShader per shader and brackets each submission with
// BeginCapture/EndCapture.
package capture

import (
	"context"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gfxdbg/rdcap/capture/renderdoc"
	"github.com/gfxdbg/rdcap/core/log"
)

// Controller owns the auto-capture trigger state for a device.
// All methods are safe for concurrent use. The zero value is not usable;
// call NewController.
type Controller struct {
	once sync.Once

	// Written by initOnce before active is stored. A load of active that
	// observes 1 orders the reads of these fields.
	shaderHash uint64
	counts     []uint32
	api        renderdoc.API

	// active is stored last by initOnce and never cleared.
	active uint32

	// submissions counts BeginCapture calls; ordinals are its pre-increment
	// values. Only the uniqueness of the returned ordinals matters, so a
	// plain fetch-add is enough.
	submissions uint32
}

// NewController returns a Controller in the uninitialized state.
// Queries are valid immediately; BeginCapture returns false until Initialize
// arms the controller.
func NewController() *Controller {
	return &Controller{api: renderdoc.Null()}
}

// Initialize configures the controller from the process environment.
// It is idempotent and safe to call concurrently: the first caller runs the
// configuration load, every other caller waits for it to complete, and no
// caller observes a partially-initialized controller.
func (c *Controller) Initialize(ctx context.Context) {
	c.InitializeFrom(ctx, EnvSettings())
}

// InitializeFrom is Initialize with explicit settings.
func (c *Controller) InitializeFrom(ctx context.Context, s Settings) {
	c.once.Do(func() { c.initOnce(ctx, s) })
}

func (c *Controller) initOnce(ctx context.Context, s Settings) {
	if !s.HasShaderHash && !s.HasCounts {
		log.W(ctx, "%s and %s are not set, auto capture will not be enabled.", ShaderEnv, CountsEnv)
		return
	}

	if !s.HasCounts {
		log.W(ctx, "%s is not set, will assume that only the first submission is captured.", CountsEnv)
	}

	if s.HasShaderHash {
		hash, err := parseShaderHash(s.ShaderHash)
		if err != nil {
			log.E(ctx, "Error parsing auto capture shader hash %q: %v", s.ShaderHash, err)
		}
		c.shaderHash = hash
	}

	if c.shaderHash != 0 {
		log.D(ctx, "Enabling capture for shader hash: %016x.", c.shaderHash)
	} else {
		log.D(ctx, "Enabling capture for all shaders.")
	}

	if s.HasCounts {
		counts, err := parseCounts(ctx, s.Counts)
		if err != nil {
			log.E(ctx, "Error parsing auto capture counts: %v", err)
		}
		c.counts = counts
	} else {
		c.counts = []uint32{0}
	}

	loader := s.Loader
	if loader == nil {
		loader = renderdoc.Load
	}
	if api, err := loader(ctx); err != nil {
		// The controller still arms: ordinals keep counting and eligible
		// submissions still report true so the caller can trigger captures
		// by other means.
		log.E(ctx, "Failed to bind capture API: %v", err)
	} else {
		c.api = api
	}

	atomic.StoreUint32(&c.active, 1)
}

// IsActive returns true if a trigger configuration was detected.
// Valid before Initialize, where it returns false.
func (c *Controller) IsActive() bool {
	return atomic.LoadUint32(&c.active) != 0
}

// HasCapability returns true if a live capture API is bound.
func (c *Controller) HasCapability() bool {
	return c.IsActive() && c.api.Capable()
}

// TargetShaderHash returns the shader hash filter; zero matches every shader.
func (c *Controller) TargetShaderHash() uint64 {
	if !c.IsActive() {
		return 0
	}
	return c.shaderHash
}

// SubmissionCounts returns the submission ordinals eligible for capture.
func (c *Controller) SubmissionCounts() []uint32 {
	if !c.IsActive() {
		return nil
	}
	out := make([]uint32, len(c.counts))
	copy(out, c.counts)
	return out
}

// ShouldCaptureShader returns true if submissions using the shader with the
// given hash should be considered for capture.
func (c *Controller) ShouldCaptureShader(hash uint64) bool {
	if !c.IsActive() {
		return true
	}
	return c.shaderHash == hash || c.shaderHash == 0
}

// BeginCapture assigns the next submission ordinal to this call and, if that
// ordinal is eligible for capture, starts a frame capture on device and
// returns true. A true return still signals an eligible submission when no
// capture API is bound, and the caller must pair it with EndCapture.
func (c *Controller) BeginCapture(device unsafe.Pointer) bool {
	n := atomic.AddUint32(&c.submissions, 1) - 1
	if !c.IsActive() || !c.eligible(n) {
		return false
	}
	c.api.StartFrameCapture(device, nil)
	return true
}

// EndCapture ends the frame capture started by a BeginCapture call that
// returned true for the same device.
func (c *Controller) EndCapture(device unsafe.Pointer) {
	if !c.IsActive() {
		return
	}
	c.api.EndFrameCapture(device, nil)
}

func (c *Controller) eligible(n uint32) bool {
	for _, m := range c.counts {
		if m == n {
			return true
		}
	}
	return false
}
