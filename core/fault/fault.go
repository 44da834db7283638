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

// Package fault provides constant error values and a collector for
// accumulating them.
package fault

// Const is the type for constant error values.
type Const string

func (e Const) Error() string { return string(e) }

// List collects errors in the order they occurred.
type List []error

// Collect appends err to the list.
func (l *List) Collect(err error) {
	*l = append(*l, err)
}

// First returns the earliest collected error, or nil if none were collected.
func (l *List) First() error {
	if len(*l) == 0 {
		return nil
	}
	return (*l)[0]
}
