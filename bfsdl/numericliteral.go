// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bfsdl

import (
	"strconv"
	"strings"

	"github.com/dpkristensen/bfdm-sub000/data"
)

// NumericLiteralParser assembles a FlexNumber out of the symbol runs
// delivered for a single numeric literal, from the run following the
// opening '#' through the closing '#'.
type NumericLiteralParser struct {
	hasPeriod    bool
	unparsedText strings.Builder
	num          data.FlexNumber
	radix        uint
	lastResult   Result
}

// NewNumericLiteralParser returns a parser ready to receive the first run of
// a new numeric literal.
func NewNumericLiteralParser() *NumericLiteralParser {
	p := &NumericLiteralParser{}
	p.Reset()
	return p
}

// Reset clears all accumulated state, ready for the next literal.
func (p *NumericLiteralParser) Reset() {
	p.hasPeriod = false
	p.unparsedText.Reset()
	p.num = data.FlexNumber{}
	p.radix = 0
	p.lastResult = NotComplete
}

// LastResult returns the outcome of the most recent ParseSymbols call.
func (p *NumericLiteralParser) LastResult() Result { return p.lastResult }

// Number returns the FlexNumber assembled so far. It is only meaningful once
// LastResult reports Complete.
func (p *NumericLiteralParser) Number() *data.FlexNumber { return &p.num }

func radixFromMarker(marker string) (uint, bool) {
	switch marker {
	case "b":
		return 2, true
	case "o":
		return 8, true
	case "d":
		return 10, true
	case "x":
		return 16, true
	default:
		return 0, false
	}
}

func (p *NumericLiteralParser) effectiveRadix() uint {
	if p.radix == 0 {
		return 10
	}
	return p.radix
}

// flush writes any buffered digit/letter text into the FlexNumber component
// selected by the current parse position, defaulting a still-unspecified
// sign to Positive the first time a component receives digits.
func (p *NumericLiteralParser) flush() bool {
	if p.unparsedText.Len() == 0 {
		return true
	}
	text := p.unparsedText.String()
	p.unparsedText.Reset()
	radix := p.effectiveRadix()

	switch {
	case !p.num.Significand.Integral.IsDefined():
		if p.num.Significand.Sign == data.Unspecified {
			p.num.Significand.Sign = data.Positive
		}
		return p.num.Significand.Integral.Set(text, radix)
	case p.hasPeriod && !p.num.Significand.Fractional.IsDefined():
		return p.num.Significand.Fractional.Set(text, radix)
	case p.num.Base.IsDefined() && !p.num.Exponent.IsDefined():
		if p.num.Exponent.Sign == data.Unspecified {
			p.num.Exponent.Sign = data.Positive
		}
		return p.num.Exponent.Integral.Set(text, radix)
	default:
		return false
	}
}

// ParseSymbols advances the literal's state machine with one symbol run.
func (p *NumericLiteralParser) ParseSymbols(kind RunKind, text string) Result {
	switch kind {
	case RunDecimalDigits, RunLetters:
		p.unparsedText.WriteString(text)
		p.lastResult = NotComplete

	case RunControl:
		if text != ":" {
			reportRunTime("ParseSymbols", "unexpected control character in numeric literal")
			p.lastResult = ResultError
			break
		}
		if p.radix != 0 {
			reportRunTime("ParseSymbols", "radix redefined")
			p.lastResult = ResultError
			break
		}
		marker := p.unparsedText.String()
		p.unparsedText.Reset()
		radix, ok := radixFromMarker(marker)
		if !ok {
			reportRunTime("ParseSymbols", "invalid radix marker")
			p.lastResult = ResultError
			break
		}
		p.radix = radix
		p.lastResult = NotComplete

	case RunOperators:
		if p.unparsedText.Len() != 0 {
			reportRunTime("ParseSymbols", "operator with pending unparsed text")
			p.lastResult = ResultError
			break
		}
		sign := data.Positive
		if text == "-" {
			sign = data.Negative
		}
		target := &p.num.Significand
		if p.num.Base.IsDefined() {
			target = &p.num.Exponent
		}
		if target.Sign != data.Unspecified {
			reportRunTime("ParseSymbols", "sign redefined")
			p.lastResult = ResultError
			break
		}
		target.Sign = sign
		p.lastResult = NotComplete

	case RunPeriod:
		if p.hasPeriod || p.num.Base.IsDefined() {
			reportRunTime("ParseSymbols", "period redefined or after exponent start")
			p.lastResult = ResultError
			break
		}
		if !p.flush() {
			p.lastResult = ResultError
			break
		}
		p.hasPeriod = true
		p.lastResult = NotComplete

	case RunTilde:
		if p.num.Base.IsDefined() {
			reportRunTime("ParseSymbols", "exponent marker redefined")
			p.lastResult = ResultError
			break
		}
		if !p.flush() {
			p.lastResult = ResultError
			break
		}
		defaultBase := "10"
		if p.radix == 2 {
			defaultBase = "2"
		}
		p.num.Base.Sign = data.Positive
		p.num.Base.Integral.Set(defaultBase, 10)
		p.lastResult = NotComplete

	case RunHash:
		if !p.flush() {
			p.lastResult = ResultError
			break
		}
		if !p.num.HasSignificand() {
			reportRunTime("ParseSymbols", "numeric literal closed with no significand")
			p.lastResult = ResultError
			break
		}
		if p.num.Base.IsDefined() != p.num.Exponent.IsDefined() {
			reportRunTime("ParseSymbols", "base and exponent presence disagree")
			p.lastResult = ResultError
			break
		}
		p.lastResult = Complete

	case RunWhitespace:
		reportRunTime("ParseSymbols", "whitespace inside numeric literal")
		p.lastResult = ResultError

	default:
		reportRunTime("ParseSymbols", "unexpected run kind in numeric literal")
		p.lastResult = ResultError
	}
	return p.lastResult
}

// parseDigitCountPrefix interprets a DecimalDigits run as an escape
// digit-count prefix: at most two digits, value 1..=32. Shared with the
// string literal parser's Backslash state.
func parseDigitCountPrefix(text string) (int, bool) {
	if len(text) == 0 || len(text) > 2 {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > 32 {
		return 0, false
	}
	return n, true
}
