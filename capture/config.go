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
	"os"
	"strconv"
	"strings"

	"github.com/gfxdbg/rdcap/capture/renderdoc"
	"github.com/gfxdbg/rdcap/core/log"
)

const (
	// ShaderEnv names the environment variable holding the hexadecimal hash
	// of the shader to trigger captures for. Zero or empty matches every
	// shader.
	ShaderEnv = "RDCAP_AUTO_CAPTURE_SHADER"
	// CountsEnv names the environment variable holding the comma-separated
	// list of submission ordinals to capture.
	CountsEnv = "RDCAP_AUTO_CAPTURE_COUNTS"
)

// Loader locates an already-resident capture library and binds its API.
type Loader func(context.Context) (renderdoc.API, error)

// Settings holds the raw trigger selectors for a Controller.
// Selectors carry a presence flag because a set-but-empty variable behaves
// differently from an unset one: it still arms the controller.
type Settings struct {
	// ShaderHash is the hexadecimal shader hash selector.
	ShaderHash string
	// HasShaderHash is true if the shader hash selector was supplied.
	HasShaderHash bool
	// Counts is the submission ordinal list selector.
	Counts string
	// HasCounts is true if the counts selector was supplied.
	HasCounts bool
	// Loader binds the capture capability. Nil means renderdoc.Load.
	Loader Loader
}

// EnvSettings returns the Settings described by the process environment.
func EnvSettings() Settings {
	s := Settings{Loader: renderdoc.Load}
	s.ShaderHash, s.HasShaderHash = os.LookupEnv(ShaderEnv)
	s.Counts, s.HasCounts = os.LookupEnv(CountsEnv)
	return s
}

// parseShaderHash parses a hexadecimal shader hash selector, with or without
// a 0x prefix. Parsing stops at the first non-hex character; the digits
// before it still form the returned value, alongside the error.
func parseShaderHash(s string) (uint64, error) {
	t := strings.TrimSpace(s)
	if len(t) >= 2 && (t[:2] == "0x" || t[:2] == "0X") {
		t = t[2:]
	}
	digits := len(t)
	for i := 0; i < len(t); i++ {
		if !isHexDigit(t[i]) {
			digits = i
			break
		}
	}
	var hash uint64
	var err error
	if digits > 0 {
		hash, err = strconv.ParseUint(t[:digits], 16, 64)
	}
	if err == nil && digits < len(t) {
		err = fmt.Errorf("invalid hexadecimal digit %q", t[digits])
	}
	return hash, err
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// parseCounts parses a comma-separated list of submission ordinals in decimal
// or 0x-prefixed hexadecimal. Parsing stops at the first malformed or
// out-of-range token; ordinals parsed before it are kept and returned
// alongside the error.
func parseCounts(ctx context.Context, s string) ([]uint32, error) {
	if s == "" {
		return nil, nil
	}
	counts := []uint32{}
	for _, tok := range strings.Split(s, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(tok), 0, 32)
		if err != nil {
			return counts, err
		}
		log.D(ctx, "Enabling automatic capture of submission #%d.", n)
		counts = append(counts, uint32(n))
	}
	return counts, nil
}
