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

import (
	"strings"
	"time"
)

// Message is a single log message.
type Message struct {
	// Text is the message body.
	Text string
	// Time is the time the message was logged.
	Time time.Time
	// Severity of the message.
	Severity Severity
	// StopProcess is true if the message indicates the process should stop.
	StopProcess bool
	// Tag is the optional tag associated with the message.
	Tag string
	// Process is the name of the process that generated the message.
	Process string
	// Trace is the stack of enter()ed scopes active when the message was
	// logged.
	Trace Trace
	// Values is the list of values associated with the message.
	Values Values
}

// Trace is a stack of nested scope names.
type Trace []string

func (t Trace) String() string { return strings.Join(t, ".") }

// Value is a single key-value pair associated with a message.
type Value struct {
	Name  string
	Value interface{}
}

// Values is a list of Value, sortable by name.
type Values []*Value

func (v Values) Len() int           { return len(v) }
func (v Values) Less(i, j int) bool { return v[i].Name < v[j].Name }
func (v Values) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }
