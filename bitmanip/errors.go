// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitmanip

import (
	"runtime"

	"github.com/dpkristensen/bfdm-sub000/internal/report"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bitmanip: " + string(e) }

func reportMisuse(where, message string) {
	_, _, line, _ := runtime.Caller(1)
	report.Misuse("bitmanip."+where, line, message)
}

func reportInternal(where, message string) {
	_, _, line, _ := runtime.Caller(1)
	report.Internal("bitmanip."+where, line, message)
}

func reportRunTime(where, message string) {
	_, _, line, _ := runtime.Caller(1)
	report.RunTime("bitmanip."+where, line, message)
}
