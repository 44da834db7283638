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

// Severity defines the severity of a logging message.
// Higher values are more severe.
type Severity int32

const (
	// Verbose is the severity for messages only wanted when tracing.
	Verbose Severity = iota
	// Debug is the severity for debug messages.
	Debug
	// Info is the severity for minor informational messages.
	Info
	// Warning is the severity for issues that might affect behavior, but can
	// be ignored.
	Warning
	// Error is the severity for non terminal failure conditions that may
	// affect results.
	Error
	// Fatal is the severity for errors the process cannot continue past.
	Fatal
)

// Short returns the severity as a single character.
func (s Severity) Short() string {
	switch s {
	case Verbose:
		return "V"
	case Debug:
		return "D"
	case Info:
		return "I"
	case Warning:
		return "W"
	case Error:
		return "E"
	case Fatal:
		return "F"
	default:
		return "?"
	}
}

func (s Severity) String() string {
	switch s {
	case Verbose:
		return "Verbose"
	case Debug:
		return "Debug"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Fatal:
		return "Fatal"
	default:
		return "?"
	}
}
