// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lexer

import "github.com/dpkristensen/bfdm-sub000/unicode"

// SymbolBuffer is a bounded sequence of code points accumulating one run of
// same-category symbols. Capacity is fixed at construction.
type SymbolBuffer struct {
	data []unicode.CodePoint
	cap  int
}

// NewSymbolBuffer returns an empty buffer that holds at most capacity code
// points.
func NewSymbolBuffer(capacity int) *SymbolBuffer {
	return &SymbolBuffer{data: make([]unicode.CodePoint, 0, capacity), cap: capacity}
}

// Size returns the number of buffered code points.
func (sb *SymbolBuffer) Size() int { return len(sb.data) }

// IsEmpty reports whether the buffer holds no code points.
func (sb *SymbolBuffer) IsEmpty() bool { return len(sb.data) == 0 }

// IsFull reports whether the buffer has reached its capacity.
func (sb *SymbolBuffer) IsFull() bool { return len(sb.data) >= sb.cap }

// Get returns the i'th buffered code point.
func (sb *SymbolBuffer) Get(i int) unicode.CodePoint { return sb.data[i] }

// Add appends cp. It returns false without modifying the buffer if it is
// already full.
func (sb *SymbolBuffer) Add(cp unicode.CodePoint) bool {
	if sb.IsFull() {
		return false
	}
	sb.data = append(sb.data, cp)
	return true
}

// Clear empties the buffer without changing its capacity.
func (sb *SymbolBuffer) Clear() {
	sb.data = sb.data[:0]
}

// UTF8String renders the buffered run as a UTF-8 string.
func (sb *SymbolBuffer) UTF8String() string {
	var out []byte
	u8 := unicode.UTF8Codec{}
	var tmp [6]byte
	for _, cp := range sb.data {
		n := u8.ConvertSymbol(cp, tmp[:])
		out = append(out, tmp[:n]...)
	}
	return string(out)
}
