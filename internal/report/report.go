// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package report implements the process-wide error-reporter indirection used
// by every other package in this module.
//
// The core never unwinds on error; it reports through one of three severity
// sinks and lets the caller observe a failure sentinel (a false return, a
// zero count, or a last-parse-result field). Handlers are process-wide
// function variables, not synchronized by this package: the embedder installs
// them once at startup, and concurrent installation races are the caller's
// problem, same as the original Bfdp::ErrorReporter hooks this mirrors.
package report

// Sink receives one reported error: the reporting module's name, the source
// line within that module, and a human-readable message.
type Sink func(module string, line int, message string)

var (
	internalSink Sink = defaultSink
	misuseSink   Sink = defaultSink
	runTimeSink  Sink = defaultSink
)

func defaultSink(module string, line int, message string) {
	// No handler installed; swallow silently so a library consumer that never
	// calls SetHandlers does not get unexpected output on stderr.
}

// SetHandlers installs the three severity sinks. A nil argument leaves the
// corresponding sink untouched.
func SetHandlers(internal, misuse, runTime Sink) {
	if internal != nil {
		internalSink = internal
	}
	if misuse != nil {
		misuseSink = misuse
	}
	if runTime != nil {
		runTimeSink = runTime
	}
}

// ResetHandlers restores all three sinks to the no-op default. Intended for
// test teardown.
func ResetHandlers() {
	internalSink = defaultSink
	misuseSink = defaultSink
	runTimeSink = defaultSink
}

// Internal reports a violated invariant within the component itself.
func Internal(module string, line int, message string) {
	internalSink(module, line, message)
}

// Misuse reports that a caller supplied impossible arguments.
func Misuse(module string, line int, message string) {
	misuseSink(module, line, message)
}

// RunTime reports malformed input encountered while parsing.
func RunTime(module string, line int, message string) {
	runTimeSink(module, line, message)
}
