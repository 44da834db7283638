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
	"testing"

	"github.com/gfxdbg/rdcap/core/assert"
)

func TestParseShaderHash(t *testing.T) {
	tests := []struct {
		in     string
		expect uint64
		fails  bool
	}{
		{"", 0, false},
		{"0", 0, false},
		{"deadbeef", 0xdeadbeef, false},
		{"DEADBEEF", 0xdeadbeef, false},
		{"0xdeadbeef", 0xdeadbeef, false},
		{"0X1234", 0x1234, false},
		{" ffff ", 0xffff, false},
		{"ffffffffffffffff", ^uint64(0), false},
		{"zzz", 0, true},
		// Parsing halts at the first bad character but keeps what came
		// before.
		{"12zz", 0x12, true},
		{"0xdeadbeefXY", 0xdeadbeef, true},
		{"12 34", 0x12, true},
	}
	for _, test := range tests {
		hash, err := parseShaderHash(test.in)
		if test.fails {
			assert.For(t, "parse %q", test.in).ThatError(err).Failed()
		} else {
			assert.For(t, "parse %q", test.in).ThatError(err).Succeeded()
		}
		assert.For(t, "hash %q", test.in).That(hash).Equals(test.expect)
	}
}

func TestParseCounts(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		in     string
		expect []uint32
		fails  bool
	}{
		{"", nil, false},
		{"0", []uint32{0}, false},
		{"2,5,9", []uint32{2, 5, 9}, false},
		{" 2 , 5 ", []uint32{2, 5}, false},
		{"0x10,2", []uint32{16, 2}, false},
		{"4294967295", []uint32{4294967295}, false},
		// Parsing halts at the first bad token but keeps what came before.
		{"3,bad,7", []uint32{3}, true},
		{"1,4294967296,2", []uint32{1}, true},
		{"bad", []uint32{}, true},
		{"1,,2", []uint32{1}, true},
	}
	for _, test := range tests {
		counts, err := parseCounts(ctx, test.in)
		if test.fails {
			assert.For(t, "parse %q", test.in).ThatError(err).Failed()
		} else {
			assert.For(t, "parse %q", test.in).ThatError(err).Succeeded()
		}
		assert.For(t, "counts %q", test.in).ThatSlice(counts).DeepEquals(test.expect)
	}
}
