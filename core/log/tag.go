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

import "context"

type tagKeyTy string

const tagKey tagKeyTy = "log.tagKey"

// PutTag returns a new context with the message tag set to name.
func PutTag(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, tagKey, name)
}

// GetTag returns the message tag of ctx.
func GetTag(ctx context.Context) string {
	out, _ := ctx.Value(tagKey).(string)
	return out
}

type processKeyTy string

const processKey processKeyTy = "log.processKey"

// PutProcess returns a new context with the process name set to name.
func PutProcess(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, processKey, name)
}

// GetProcess returns the process name of ctx.
func GetProcess(ctx context.Context) string {
	out, _ := ctx.Value(processKey).(string)
	return out
}
