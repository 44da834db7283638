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

package log_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gfxdbg/rdcap/core/log"
)

var testClock log.Clock
var stamp string

func init() {
	t, err := time.Parse("Mon Jan _2 15:04:05.999 2006", "Mon Jan 22 12:34:56.789 2000")
	if err != nil {
		panic(err)
	}
	testClock = log.FixedClock(t)
	stamp = log.HHMMSSsss(t.In(time.Local))
}

type testMessage struct {
	msg      string
	args     []interface{}
	values   log.V
	severity log.Severity
	tag      string

	raw      string
	brief    string
	normal   string
	detailed string
}

func (m testMessage) send(h log.Handler) {
	ctx := context.Background()
	ctx = log.PutHandler(ctx, h)
	ctx = log.PutTag(ctx, m.tag)
	ctx = log.PutClock(ctx, testClock)
	ctx = m.values.Bind(ctx)
	log.From(ctx).Logf(m.severity, false, m.msg, m.args...)
}

var testMessages = []testMessage{
	{
		msg:      "plain warning",
		severity: log.Warning,

		raw:      "plain warning",
		brief:    "W: plain warning",
		normal:   "{{stamp}} W: plain warning",
		detailed: "{{stamp}} Warning: plain warning",
	}, {
		msg:      "formatted %s",
		args:     []interface{}{"error"},
		severity: log.Error,

		raw:      "formatted error",
		brief:    "E: formatted error",
		normal:   "{{stamp}} E: formatted error",
		detailed: "{{stamp}} Error: formatted error",
	}, {
		msg:      "tagged info",
		severity: log.Info,
		tag:      "tag",

		raw:      "tagged info",
		brief:    "I: tagged info",
		normal:   "{{stamp}} I: [tag] tagged info",
		detailed: "{{stamp}} Info: [tag] tagged info",
	}, {
		msg:      "info with values",
		severity: log.Info,
		values:   log.V{"cat": "meow", "dog": "woof"},

		raw:      "info with values",
		brief:    "I: info with values",
		normal:   "{{stamp}} I: info with values",
		detailed: "{{stamp}} Info: info with values \n  cat: meow\n  dog: woof",
	},
}

func expand(s string) string {
	return strings.ReplaceAll(s, "{{stamp}}", stamp)
}

func TestStyles(t *testing.T) {
	styles := []struct {
		style  log.Style
		expect func(testMessage) string
	}{
		{log.Raw, func(m testMessage) string { return m.raw }},
		{log.Brief, func(m testMessage) string { return m.brief }},
		{log.Normal, func(m testMessage) string { return m.normal }},
		{log.Detailed, func(m testMessage) string { return m.detailed }},
	}
	for _, s := range styles {
		for _, m := range testMessages {
			var got *log.Message
			m.send(log.NewHandler(func(msg *log.Message) { got = msg }, nil))
			if got == nil {
				t.Fatalf("%s: message %q was not handled", s.style, m.msg)
			}
			printed := s.style.Print(got)
			expect := expand(s.expect(m))
			if printed != expect {
				t.Errorf("%s: got %q expected %q", s.style, printed, expect)
			}
		}
	}
}

func TestSeverityFilter(t *testing.T) {
	count := 0
	h := log.NewHandler(func(*log.Message) { count++ }, nil)
	ctx := log.PutHandler(context.Background(), h)
	ctx = log.PutFilter(ctx, log.SeverityFilter(log.Warning))
	log.D(ctx, "dropped")
	log.I(ctx, "dropped")
	log.W(ctx, "shown")
	log.E(ctx, "shown")
	if count != 2 {
		t.Errorf("Filter passed %d messages, expected 2", count)
	}
}

func TestEnter(t *testing.T) {
	var got *log.Message
	ctx := log.PutHandler(context.Background(), log.NewHandler(func(m *log.Message) { got = m }, nil))
	ctx = log.Enter(ctx, "outer")
	ctx = log.Enter(ctx, "inner")
	log.I(ctx, "traced")
	if got == nil {
		t.Fatal("message was not handled")
	}
	if got.Trace.String() != "inner.outer" {
		t.Errorf("Got trace %q expected %q", got.Trace.String(), "inner.outer")
	}
}

func TestLoggerWriter(t *testing.T) {
	var got []*log.Message
	ctx := log.PutHandler(context.Background(),
		log.NewHandler(func(m *log.Message) { got = append(got, m) }, nil))
	w := log.From(ctx).Writer(log.Info)
	io.WriteString(w, "first line\nsecond")
	w.Close()
	if len(got) != 2 {
		t.Fatalf("Got %d messages, expected 2", len(got))
	}
	if got[0].Text != "first line" || got[1].Text != "second" {
		t.Errorf("Got lines %q and %q", got[0].Text, got[1].Text)
	}
	if got[0].Severity != log.Info {
		t.Errorf("Got severity %v, expected Info", got[0].Severity)
	}
}

func TestErr(t *testing.T) {
	ctx := context.Background()
	cause := log.Err(ctx, nil, "inner failure")
	err := log.Err(ctx, cause, "outer failure")
	if err.Error() != "outer failure\n   Cause: inner failure" {
		t.Errorf("Got error text %q", err.Error())
	}
}
