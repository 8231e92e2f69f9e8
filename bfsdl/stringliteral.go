// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bfsdl

import (
	"strings"

	"github.com/dpkristensen/bfdm-sub000/bitmanip"
	"github.com/dpkristensen/bfdm-sub000/data"
	"github.com/dpkristensen/bfdm-sub000/statemachine"
	"github.com/dpkristensen/bfdm-sub000/unicode"
)

// StringLiteralParser states, driven by a statemachine.Engine.
const (
	stateText = iota
	stateBackslash
	stateEscapeDigits
)

type escapeCodec int

const (
	escapeCodecNone escapeCodec = iota
	escapeCodecASCII
	escapeCodecMS1252
)

// StringLiteralParser assembles a StringMachine out of the symbol runs
// delivered after the opening double-quote of a string literal, up to and
// including the closing double-quote, which completes the literal. It is driven by a small FSM (Text/Backslash/EscapeDigits) built on
// the shared statemachine.Engine, with one Evaluate action registered per
// state reading the run currently staged in curKind/curText.
type StringLiteralParser struct {
	engine *statemachine.Engine
	sm     data.StringMachine

	curKind RunKind
	curText string

	pendingCount int // explicit digit-count prefix, 0 if none given
	escRadix     uint
	escDigits    uint
	escCodec     escapeCodec
	escText      strings.Builder

	lastResult Result
}

// NewStringLiteralParser returns a parser ready to receive the first run of
// a new string literal.
func NewStringLiteralParser() *StringLiteralParser {
	p := &StringLiteralParser{engine: statemachine.NewEngine()}
	p.engine.InitStates(3)
	p.engine.AddAction(stateText, statemachine.Evaluate, p.evalText)
	p.engine.AddAction(stateBackslash, statemachine.Evaluate, p.evalBackslash)
	p.engine.AddAction(stateEscapeDigits, statemachine.Evaluate, p.evalEscapeDigits)
	p.Reset()
	return p
}

// Reset clears all accumulated state and returns the FSM to Text.
func (p *StringLiteralParser) Reset() {
	p.sm.Reset()
	p.pendingCount = 0
	p.escRadix = 0
	p.escDigits = 0
	p.escCodec = escapeCodecNone
	p.escText.Reset()
	p.lastResult = NotComplete
	p.engine.Transition(stateText)
	p.engine.DoTransition()
}

// LastResult returns the outcome of the most recent ParseSymbols call.
func (p *StringLiteralParser) LastResult() Result { return p.lastResult }

// StringMachine returns the machine assembled so far. It is only meaningful
// once LastResult reports Complete.
func (p *StringLiteralParser) StringMachine() *data.StringMachine { return &p.sm }

func (p *StringLiteralParser) fail(where, message string) {
	reportRunTime(where, message)
	p.lastResult = ResultError
}

// ParseSymbols advances the literal's state machine with one symbol run.
func (p *StringLiteralParser) ParseSymbols(kind RunKind, text string) Result {
	p.curKind = kind
	p.curText = text
	p.engine.EvaluateState()
	return p.lastResult
}

func (p *StringLiteralParser) evalText() {
	switch p.curKind {
	case RunDoubleQuotes:
		p.lastResult = Complete
	case RunBackslash:
		p.engine.Transition(stateBackslash)
		p.lastResult = NotComplete
	default:
		p.sm.AppendUTF8(p.curText)
		p.lastResult = NotComplete
	}
}

func (p *StringLiteralParser) evalBackslash() {
	if p.curKind == RunDecimalDigits {
		n, ok := parseDigitCountPrefix(p.curText)
		if !ok {
			p.fail("evalBackslash", "escape digit-count prefix out of range")
			return
		}
		p.pendingCount = n
		p.lastResult = NotComplete
		return
	}
	if len(p.curText) != 1 {
		p.fail("evalBackslash", "unknown escape character")
		return
	}

	switch p.curText[0] {
	case '"':
		p.simpleEscape(0x22)
	case '\\':
		p.simpleEscape(0x5C)
	case 'n':
		p.simpleEscape(0x0A)
	case 'r':
		p.simpleEscape(0x0D)
	case 't':
		// Historical quirk: \t emits BS (U+0008), not HT. Preserved bit-exactly.
		p.simpleEscape(0x08)
	case 'a':
		p.beginEscapeDigits(16, 2, 2, escapeCodecASCII)
	case 'w':
		p.beginEscapeDigits(16, 2, 2, escapeCodecMS1252)
	case 'b':
		p.beginEscapeDigits(2, 8, 32, escapeCodecNone)
	case 'x':
		p.beginEscapeDigits(16, 2, 8, escapeCodecNone)
	case 'u':
		p.beginEscapeDigits(16, 4, 8, escapeCodecNone)
	default:
		p.fail("evalBackslash", "unknown escape character")
	}
}

func (p *StringLiteralParser) simpleEscape(cp unicode.CodePoint) {
	if p.pendingCount != 0 {
		p.fail("simpleEscape", "digit-count prefix not allowed for this escape")
		return
	}
	p.sm.AppendUnicode(cp)
	p.engine.Transition(stateText)
	p.lastResult = NotComplete
}

func (p *StringLiteralParser) beginEscapeDigits(radix, fixedOrDefault, max uint, codec escapeCodec) {
	digits := fixedOrDefault
	if p.pendingCount != 0 {
		if codec != escapeCodecNone {
			p.fail("beginEscapeDigits", "digit-count prefix not allowed for this escape")
			return
		}
		digits = uint(p.pendingCount)
	}
	if digits > max {
		p.fail("beginEscapeDigits", "escape digit count exceeds maximum")
		return
	}
	p.escRadix = radix
	p.escDigits = digits
	p.escCodec = codec
	p.escText.Reset()
	p.pendingCount = 0
	p.engine.Transition(stateEscapeDigits)
	p.lastResult = NotComplete
}

func (p *StringLiteralParser) evalEscapeDigits() {
	text := p.curText
	need := int(p.escDigits) - p.escText.Len()
	if need < 0 {
		need = 0
	}
	take := len(text)
	if take > need {
		take = need
	}
	p.escText.WriteString(text[:take])
	deferredText := text[take:]

	if uint(p.escText.Len()) < p.escDigits {
		p.lastResult = NotComplete
		return
	}

	cp, ok := p.resolveEscapeCodePoint(p.escText.String())
	if !ok {
		p.fail("evalEscapeDigits", "invalid digits in escape sequence")
		return
	}
	p.sm.AppendUnicode(cp)
	p.escText.Reset()
	p.engine.Transition(stateText)

	if deferredText != "" {
		p.sm.AppendUTF8(deferredText)
	}
	p.lastResult = NotComplete
}

func (p *StringLiteralParser) resolveEscapeCodePoint(digits string) (unicode.CodePoint, bool) {
	ds := bitmanip.NewDigitStream()
	if !ds.Set(digits, p.escRadix) {
		return 0, false
	}
	var value uint64
	if !ds.GetU64(&value) {
		return 0, false
	}

	switch p.escCodec {
	case escapeCodecASCII:
		var cp unicode.CodePoint
		_, status := unicode.ASCIICodec{}.ConvertBytes([]byte{byte(value)}, &cp)
		if status != unicode.StatusOK {
			return 0, false
		}
		return cp, true
	case escapeCodecMS1252:
		var cp unicode.CodePoint
		if !unicode.GetUnicode(byte(value), &cp) {
			return 0, false
		}
		return cp, true
	default:
		cp := unicode.CodePoint(value)
		if !unicode.IsValidCodePoint(cp) {
			return 0, false
		}
		return cp, true
	}
}
