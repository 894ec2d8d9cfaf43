// Copyright 2026 The go-nbt Authors.
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

//go:build debug

// Package dbg includes debugging helpers used by the parser and cursors.
//
// It is gated behind the "debug" build tag so that release builds pay
// nothing for it: see dbg_release.go for the no-op counterparts.
package dbg

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Enabled is true when the binary was built with -tags debug.
const Enabled = true

// Log prints a single structured trace line to stderr.
//
// context, when non-empty, is a printf-style (format, args...) pair that is
// rendered before operation; it is used by callers that want to tag a run
// of related log lines with some shared context (e.g. the mark index a
// cursor is sitting on).
func Log(context []any, operation, format string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	file = filepath.Base(file)

	buf := new(strings.Builder)
	fmt.Fprintf(buf, "%s:%d ", file, line)
	if len(context) >= 1 {
		fmt.Fprintf(buf, context[0].(string), context[1:]...)
		buf.WriteByte(' ')
	}
	fmt.Fprintf(buf, "%s: ", operation)
	fmt.Fprintf(buf, format, args...)
	buf.WriteByte('\n')

	os.Stderr.WriteString(buf.String())
}

// Assert panics if cond is false. It is only checked in debug builds.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("nbt: internal assertion failed: "+format, args...))
	}
}
