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

// Package text provides small helpers for processing line-oriented text.
package text

import "io"

// Writer returns an io.WriteCloser that splits its input into lines and
// hands each complete line to the supplied function. Partial lines are held
// across Write calls.
func Writer(to func(string) error) io.WriteCloser {
	return &writer{to: to}
}

type writer struct {
	to      func(string) error
	pending string
}

func (w *writer) Write(p []byte) (n int, err error) {
	s := string(p)
	start := 0
	for i, c := range s {
		if c != '\n' {
			continue
		}
		line := w.pending + s[start:i]
		w.pending = ""
		start = i + 1
		if err := w.to(line); err != nil {
			return 0, err
		}
	}
	w.pending += s[start:]
	return len(p), nil
}

// Close flushes any partial line. Write must not be called after Close.
func (w *writer) Close() error {
	if w.pending == "" {
		return nil
	}
	line := w.pending
	w.pending = ""
	return w.to(line)
}
