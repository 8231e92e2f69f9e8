// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lexer

import (
	"runtime"

	"github.com/dpkristensen/bfdm-sub000/internal/report"
	"github.com/dpkristensen/bfdm-sub000/unicode"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "lexer: " + string(e) }

var (
	// ErrIncompleteSequence means a multi-byte sequence was cut off mid-call
	// with no more input expected before the caller's next Parse.
	ErrIncompleteSequence Error = "incomplete multi-byte sequence"
	// ErrInvalidSequence means the codec rejected a byte sequence outright.
	ErrInvalidSequence Error = "invalid multi-byte sequence"
	// ErrSymbolTooBig means a buffered run exceeded the symbol buffer's
	// fixed capacity with no opportunity to flush early.
	ErrSymbolTooBig Error = "symbol too big"
)

func reportRunTime(where, message string) {
	_, _, line, _ := runtime.Caller(1)
	report.RunTime("lexer."+where, line, message)
}

// Observer receives flushed runs of same-category symbols.
type Observer interface {
	// OnMappedSymbols receives a run whose category id is not Unknown. It
	// returns false to stop further parsing.
	OnMappedSymbols(category int, utf8Text string, n int) bool
	// OnUnmappedSymbols receives a run of symbols that matched no category.
	// It returns false to stop further parsing.
	OnUnmappedSymbols(utf8Text string, n int) bool
}

// Symbolizer streams bytes to code points via a Codec, classifies each code
// point against a CategoryList, and emits maximal same-category runs (or
// singletons, for non-concatenating categories) to an Observer.
type Symbolizer struct {
	codec      unicode.Codec
	buf        *SymbolBuffer
	observer   Observer
	categories *CategoryList

	savedCategory int
	pending       []byte // undecoded tail bytes carried from a prior Parse
}

// NewSymbolizer returns a Symbolizer reading through codec, buffering one run
// at a time in buf, classifying with categories, and dispatching to obs.
func NewSymbolizer(codec unicode.Codec, buf *SymbolBuffer, categories *CategoryList, obs Observer) *Symbolizer {
	return &Symbolizer{
		codec:         codec,
		buf:           buf,
		observer:      obs,
		categories:    categories,
		savedCategory: NoCategory,
	}
}

func (s *Symbolizer) flush(category int) bool {
	if s.buf.IsEmpty() {
		return true
	}
	text := s.buf.UTF8String()
	n := s.buf.Size()
	s.buf.Clear()
	if category == Unknown {
		return s.observer.OnUnmappedSymbols(text, n)
	}
	return s.observer.OnMappedSymbols(category, text, n)
}

// Parse decodes as much of bytes as it can, dispatching runs to the
// observer. It returns (bytesRead, err); err is nil on success, including
// the "observer asked to stop" and "ran out of input mid-sequence" cases.
func (s *Symbolizer) Parse(bytes []byte) (int, error) {
	full := bytes
	pendingLen := len(s.pending)
	if pendingLen > 0 {
		full = make([]byte, 0, pendingLen+len(bytes))
		full = append(full, s.pending...)
		full = append(full, bytes...)
	}

	cursor := 0
	end := len(full)
	maxBytes := s.codec.MaxBytes()

	report := func(consumedFromInput int) int {
		n := consumedFromInput - pendingLen
		if n < 0 {
			n = 0
		}
		if n > len(bytes) {
			n = len(bytes)
		}
		return n
	}

	for cursor < end {
		hi := cursor + maxBytes
		if hi > end {
			hi = end
		}
		window := full[cursor:hi]

		var cp unicode.CodePoint
		n, status := s.codec.ConvertBytes(window, &cp)

		if status == unicode.StatusIncomplete {
			if hi == end {
				// No more bytes available in this call; stash the tail.
				s.pending = append([]byte(nil), full[cursor:]...)
				return len(bytes), nil
			}
			reportRunTime("Parse", "incomplete multi-byte sequence")
			s.pending = nil
			return report(cursor), ErrIncompleteSequence
		}
		if status == unicode.StatusInvalid {
			reportRunTime("Parse", "invalid multi-byte sequence")
			s.pending = nil
			return report(cursor), ErrInvalidSequence
		}

		category := s.categories.Classify(cp)

		if s.savedCategory != NoCategory && category != s.savedCategory {
			if !s.flush(s.savedCategory) {
				s.pending = nil
				return report(cursor), nil
			}
			s.savedCategory = NoCategory
		}

		if s.buf.IsFull() {
			if category == Unknown {
				if !s.flush(Unknown) {
					s.pending = nil
					return report(cursor), nil
				}
			}
			if s.buf.IsFull() {
				reportRunTime("Parse", "symbol too big")
				s.pending = nil
				return report(cursor), ErrSymbolTooBig
			}
		}

		s.savedCategory = category
		s.buf.Add(cp)
		cursor += n

		if !s.categories.ShouldConcatenate(category) {
			if !s.flush(category) {
				s.savedCategory = NoCategory
				s.pending = nil
				return report(cursor), nil
			}
			s.savedCategory = NoCategory
		}
	}

	s.pending = nil
	if s.savedCategory == Unknown {
		s.flush(Unknown)
		s.savedCategory = NoCategory
	}
	return report(cursor), nil
}

// EndParsing flushes any remaining buffered run and resets the symbolizer.
func (s *Symbolizer) EndParsing() bool {
	ok := s.flush(s.savedCategory)
	s.Reset()
	return ok
}

// Reset clears the buffered run and the saved category. The category list
// and its cached last-match entry are preserved.
func (s *Symbolizer) Reset() {
	s.buf.Clear()
	s.savedCategory = NoCategory
	s.pending = nil
}
