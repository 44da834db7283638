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

// rdcapinfo reports the auto-capture configuration of the current
// environment: whether capture triggers are armed, which shader hash and
// submission ordinals they select, and whether a compatible RenderDoc library
// is resident in this process.
//
// Run it with the same environment as the real workload to verify the trigger
// variables before a debugging session:
//
//	RDCAP_AUTO_CAPTURE_COUNTS=2,5,9 rdcapinfo
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gfxdbg/rdcap/capture"
	"github.com/gfxdbg/rdcap/core/fault"
	"github.com/gfxdbg/rdcap/core/log"
)

var (
	logStyle = flag.String("log-style", "normal", "style for log output (raw, brief, normal, detailed)")
	logLevel = flag.String("log-level", "info", "minimum severity of log output (verbose, debug, info, warning, error)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	style, ok := log.FindStyle(*logStyle, log.Normal)
	if !ok {
		return fmt.Errorf("unknown log style %q", *logStyle)
	}
	severity, err := severityByName(*logLevel)
	if err != nil {
		return err
	}

	handler := log.Channel(style.Handler(log.Std()), 0)
	defer handler.Close()

	ctx := context.Background()
	ctx = log.PutProcess(ctx, "rdcapinfo")
	ctx = log.PutHandler(ctx, handler)
	ctx = log.PutFilter(ctx, log.SeverityFilter(severity))

	controller := capture.NewController()
	controller.Initialize(ctx)

	issues := fault.List{}
	if !controller.IsActive() {
		issues.Collect(fmt.Errorf("auto capture is not armed: set %s and/or %s", capture.ShaderEnv, capture.CountsEnv))
	} else if !controller.HasCapability() {
		issues.Collect(fmt.Errorf("no resident RenderDoc library: captures will rely on caller-side triggers"))
	}

	report(controller)

	if len(issues) > 0 {
		for _, issue := range issues {
			log.W(ctx, "%v", issue)
		}
		return issues.First()
	}
	return nil
}

func report(c *capture.Controller) {
	fmt.Printf("armed:      %v\n", c.IsActive())
	if !c.IsActive() {
		return
	}
	if hash := c.TargetShaderHash(); hash != 0 {
		fmt.Printf("shader:     %016x\n", hash)
	} else {
		fmt.Printf("shader:     all\n")
	}
	fmt.Printf("ordinals:   %v\n", c.SubmissionCounts())
	fmt.Printf("capability: %v\n", c.HasCapability())
}

func severityByName(name string) (log.Severity, error) {
	switch name {
	case "verbose":
		return log.Verbose, nil
	case "debug":
		return log.Debug, nil
	case "info":
		return log.Info, nil
	case "warning":
		return log.Warning, nil
	case "error":
		return log.Error, nil
	default:
		return log.Info, fmt.Errorf("unknown log level %q", name)
	}
}
