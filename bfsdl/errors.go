// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bfsdl

import (
	"runtime"

	"github.com/dpkristensen/bfdm-sub000/internal/report"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bfsdl: " + string(e) }

var (
	ErrRadixRedefined      Error = "radix redefined"
	ErrInvalidRadixMarker  Error = "invalid radix marker"
	ErrUnexpectedText      Error = "operator not allowed with pending text"
	ErrSignRedefined       Error = "sign redefined"
	ErrPeriodRedefined     Error = "period already set or after exponent start"
	ErrExponentRedefined   Error = "exponent marker already set"
	ErrSignificandMissing  Error = "significand not defined"
	ErrExponentInconsistent Error = "base and exponent presence disagree"
	ErrWhitespaceInLiteral Error = "whitespace inside numeric literal"
	ErrUnexpectedRun       Error = "unexpected run in numeric literal"
	ErrDigitCountRange     Error = "escape digit count out of range"
	ErrUnknownEscape       Error = "unknown escape character"
	ErrEscapePrefixNotAllowed Error = "digit-count prefix not allowed for this escape"
	ErrEscapeDigitOverflow Error = "escape digit count exceeds maximum"
	ErrInvalidEscapeDigits Error = "invalid digits in escape sequence"
	ErrEscapeCodecFailure  Error = "escape value not representable by its codec"
	ErrUnterminatedLiteral Error = "unterminated literal at end of input"
)

func reportRunTime(where, message string) {
	_, _, line, _ := runtime.Caller(1)
	report.RunTime("bfsdl."+where, line, message)
}
