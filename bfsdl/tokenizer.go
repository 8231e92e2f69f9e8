// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bfsdl

import (
	"github.com/dpkristensen/bfdm-sub000/data"
	"github.com/dpkristensen/bfdm-sub000/lexer"
	"github.com/dpkristensen/bfdm-sub000/statemachine"
	"github.com/dpkristensen/bfdm-sub000/unicode"
)

// MaxTokenLength bounds a single symbol run (e.g. the digits of one numeric
// literal component, or one plain-text stretch of a string literal).
const MaxTokenLength = 256

// Tokenizer states.
const (
	StateMainSequence = iota
	StateNumericLiteral
	StateStringLiteral
)

// TokenObserver receives completed tokens as the Tokenizer recognizes them.
type TokenObserver interface {
	// OnControlCharacter is called once per control character (":", ";",
	// "[", "]", ",", "(", ")"). It returns false to stop parsing.
	OnControlCharacter(ch string) bool
	// OnNumericLiteral is called with the completed literal. The FlexNumber
	// is only valid for the duration of this call.
	OnNumericLiteral(num *data.FlexNumber) bool
	// OnStringLiteral is called with the completed literal. The
	// StringMachine is only valid for the duration of this call.
	OnStringLiteral(sm *data.StringMachine) bool
}

func isControlChar(cp unicode.CodePoint) bool {
	switch byte(cp) {
	case ':', ';', '[', ']', ',', '(', ')':
		return true
	}
	return false
}

func isDecimalDigitChar(cp unicode.CodePoint) bool { return cp >= '0' && cp <= '9' }
func isLetterChar(cp unicode.CodePoint) bool {
	return (cp >= 'a' && cp <= 'z') || (cp >= 'A' && cp <= 'Z')
}
func isOperatorChar(cp unicode.CodePoint) bool { return cp == '+' || cp == '-' }
func isPeriodChar(cp unicode.CodePoint) bool   { return cp == '.' }
func isTildeChar(cp unicode.CodePoint) bool    { return cp == '~' }
func isHashChar(cp unicode.CodePoint) bool      { return cp == '#' }
func isWhitespaceChar(cp unicode.CodePoint) bool {
	switch byte(cp) {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}
func isDoubleQuoteChar(cp unicode.CodePoint) bool { return cp == '"' }
func isBackslashChar(cp unicode.CodePoint) bool   { return cp == '\\' }

func tokenizerCategories() *lexer.CategoryList {
	return lexer.NewCategoryList([]lexer.Category{
		{ID: int(RunControl), Contains: isControlChar, ShouldConcatenate: false},
		{ID: int(RunDecimalDigits), Contains: isDecimalDigitChar, ShouldConcatenate: true},
		{ID: int(RunLetters), Contains: isLetterChar, ShouldConcatenate: true},
		{ID: int(RunOperators), Contains: isOperatorChar, ShouldConcatenate: false},
		{ID: int(RunPeriod), Contains: isPeriodChar, ShouldConcatenate: false},
		{ID: int(RunTilde), Contains: isTildeChar, ShouldConcatenate: false},
		{ID: int(RunHash), Contains: isHashChar, ShouldConcatenate: false},
		{ID: int(RunWhitespace), Contains: isWhitespaceChar, ShouldConcatenate: false},
		{ID: int(RunDoubleQuotes), Contains: isDoubleQuoteChar, ShouldConcatenate: false},
		{ID: int(RunBackslash), Contains: isBackslashChar, ShouldConcatenate: false},
	})
}

// Tokenizer partitions BFSDL source text into control characters, numeric
// literals, and string literals, driving a Symbolizer over ASCII input and
// an FSM over MainSequence/NumericLiteral/StringLiteral.
type Tokenizer struct {
	sym       *lexer.Symbolizer
	numParser *NumericLiteralParser
	strParser *StringLiteralParser
	engine    *statemachine.Engine
	observer  TokenObserver
	errored   bool
}

// NewTokenizer returns a Tokenizer dispatching completed tokens to obs.
func NewTokenizer(obs TokenObserver) *Tokenizer {
	tk := &Tokenizer{
		numParser: NewNumericLiteralParser(),
		strParser: NewStringLiteralParser(),
		engine:    statemachine.NewEngine(),
		observer:  obs,
	}
	tk.engine.InitStates(3)
	tk.engine.Transition(StateMainSequence)
	tk.engine.DoTransition()
	buf := lexer.NewSymbolBuffer(MaxTokenLength)
	tk.sym = lexer.NewSymbolizer(unicode.ASCIICodec{}, buf, tokenizerCategories(), tk)
	return tk
}

// OnMappedSymbols implements lexer.Observer.
func (tk *Tokenizer) OnMappedSymbols(category int, text string, n int) bool {
	return tk.dispatch(RunKind(category), text)
}

// OnUnmappedSymbols implements lexer.Observer.
func (tk *Tokenizer) OnUnmappedSymbols(text string, n int) bool {
	reportRunTime("OnUnmappedSymbols", "unrecognized character in source")
	tk.errored = true
	return false
}

func (tk *Tokenizer) dispatch(kind RunKind, text string) bool {
	switch tk.engine.GetCurState() {
	case StateMainSequence:
		return tk.evaluateMainSequence(kind, text)
	case StateNumericLiteral:
		return tk.evaluateNumericLiteral(kind, text)
	case StateStringLiteral:
		return tk.evaluateStringLiteral(kind, text)
	default:
		tk.errored = true
		return false
	}
}

func (tk *Tokenizer) evaluateMainSequence(kind RunKind, text string) bool {
	switch kind {
	case RunWhitespace:
		return true
	case RunControl:
		return tk.observer.OnControlCharacter(text)
	case RunHash:
		tk.numParser.Reset()
		tk.engine.Transition(StateNumericLiteral)
		tk.engine.DoTransition()
		return true
	case RunDoubleQuotes:
		tk.strParser.Reset()
		tk.engine.Transition(StateStringLiteral)
		tk.engine.DoTransition()
		return true
	default:
		reportRunTime("evaluateMainSequence", "unexpected run outside any literal")
		tk.errored = true
		return false
	}
}

func (tk *Tokenizer) evaluateNumericLiteral(kind RunKind, text string) bool {
	switch tk.numParser.ParseSymbols(kind, text) {
	case Complete:
		ok := tk.observer.OnNumericLiteral(tk.numParser.Number())
		tk.engine.Transition(StateMainSequence)
		tk.engine.DoTransition()
		return ok
	case ResultError:
		tk.errored = true
		return false
	default:
		return true
	}
}

func (tk *Tokenizer) evaluateStringLiteral(kind RunKind, text string) bool {
	switch tk.strParser.ParseSymbols(kind, text) {
	case Complete:
		ok := tk.observer.OnStringLiteral(tk.strParser.StringMachine())
		tk.engine.Transition(StateMainSequence)
		tk.engine.DoTransition()
		return ok
	case ResultError:
		tk.errored = true
		return false
	default:
		return true
	}
}

// Parse feeds bytes through the symbolizer, dispatching completed runs and
// tokens as they are recognized. It returns the number of bytes consumed and
// false if a malformed byte sequence, an oversized symbol, or an observer
// error aborted parsing.
func (tk *Tokenizer) Parse(bytes []byte) (int, bool) {
	n, err := tk.sym.Parse(bytes)
	if err != nil {
		tk.errored = true
		return n, false
	}
	return n, !tk.errored
}

// EndParsing flushes the symbolizer's trailing run and requires the FSM to
// have returned to MainSequence; a dangling numeric or string literal is an
// error.
func (tk *Tokenizer) EndParsing() bool {
	flushedOK := tk.sym.EndParsing()
	if tk.engine.GetCurState() != StateMainSequence {
		reportRunTime("EndParsing", "unterminated literal at end of input")
		tk.errored = true
	}
	return flushedOK && !tk.errored
}
