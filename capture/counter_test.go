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

package capture

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gfxdbg/rdcap/capture/renderdoc"
	"github.com/gfxdbg/rdcap/core/assert"
)

// TestConcurrentOrdinalsAreUnique drives BeginCapture from many goroutines
// and checks that every ordinal in 0..N-1 was assigned exactly once: with an
// allowlist covering exactly that range, every call must return true, and the
// counter must land on N.
func TestConcurrentOrdinalsAreUnique(t *testing.T) {
	const workers = 64

	counts := make([]string, workers)
	for i := range counts {
		counts[i] = fmt.Sprint(i)
	}

	c := NewController()
	c.InitializeFrom(context.Background(), Settings{
		Counts:    strings.Join(counts, ","),
		HasCounts: true,
		Loader: func(context.Context) (renderdoc.API, error) {
			return renderdoc.Null(), nil
		},
	})

	eligible := int32(0)
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if c.BeginCapture(nil) {
				atomic.AddInt32(&eligible, 1)
			}
		}()
	}
	wg.Wait()

	assert.For(t, "eligible").ThatInteger(int(eligible)).Equals(workers)
	assert.For(t, "counter").That(atomic.LoadUint32(&c.submissions)).Equals(uint32(workers))
}

// TestCounterAdvancesWhileIneligible checks that ineligible submissions still
// consume ordinals.
func TestCounterAdvancesWhileIneligible(t *testing.T) {
	c := NewController()
	c.InitializeFrom(context.Background(), Settings{
		Counts: "100", HasCounts: true,
		Loader: func(context.Context) (renderdoc.API, error) {
			return renderdoc.Null(), nil
		},
	})
	for i := 0; i < 10; i++ {
		if c.BeginCapture(nil) {
			t.Fatalf("submission %d unexpectedly eligible", i)
		}
	}
	assert.For(t, "counter").That(atomic.LoadUint32(&c.submissions)).Equals(uint32(10))
}
