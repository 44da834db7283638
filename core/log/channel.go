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

package log

// Channel returns a Handler that feeds the wrapped Handler from a single
// draining goroutine, making it safe to use from multiple threads.
// size is the channel capacity; 0 gives an unbuffered channel.
// Closing the returned Handler flushes pending messages and closes to.
func Channel(to Handler, size int) Handler {
	c := make(chan *Message, size)
	done := make(chan struct{})
	go func() {
		defer func() {
			to.Close()
			close(done)
		}()
		for m := range c {
			if m == nil {
				return
			}
			to.Handle(m)
		}
	}()
	handle := func(m *Message) {
		if m == nil {
			return
		}
		select {
		case c <- m:
		case <-done: // Already closed. The message is dropped.
		}
	}
	stop := func() {
		select {
		case <-done: // Already stopped.
		case c <- nil:
			<-done // Wait for the drain to finish.
		}
	}
	return &handler{handle, stop}
}
