// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitmanip

import (
	"math/bits"
	"strings"
)

// InvalidRadix marks a DigitStream that has never been given a valid radix.
const InvalidRadix = 0

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// bitsPerDigit returns ceil(log2(r)) for r in 2..=36.
func bitsPerDigit(r uint) uint {
	return uint(bits.Len(uint(r - 1)))
}

// DigitStream is a sequence of base-r digits, each packed into
// ceil(log2(r)) bits of a BitBuffer. A DigitStream is "defined" once it has
// been given a valid radix and at least one digit, or set from an empty
// string.
type DigitStream struct {
	radix    uint
	numDigit uint
	buf      BitBuffer
	defined  bool
}

// NewDigitStream returns an undefined DigitStream.
func NewDigitStream() *DigitStream {
	return &DigitStream{}
}

// Radix returns the configured radix, or InvalidRadix if none has been set.
func (ds *DigitStream) Radix() uint { return ds.radix }

// IsDefined reports whether the stream carries a valid radix and is either
// empty-but-set or has at least one digit.
func (ds *DigitStream) IsDefined() bool { return ds.defined }

// IsIntegral reports whether the stream has been defined via Set (as opposed
// to only constructed); this package treats every DigitStream as holding
// integral digit values, so this is equivalent to IsDefined for callers that
// need to distinguish "present" from "absent" integral components.
func (ds *DigitStream) IsIntegral() bool { return ds.defined }

func digitValue(c byte) (uint, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return uint(c-'A') + 10, true
	default:
		return 0, false
	}
}

// Set validates radix and digits, then packs one digit per
// ceil(log2(radix)) bits, in input order, into a freshly sized buffer.
// Digit characters are case-insensitive. It returns false and leaves the
// stream unchanged on any validation failure.
func (ds *DigitStream) Set(digits string, radix uint) bool {
	if radix < 2 || radix > 36 {
		reportRunTime("Set", "radix out of range 2..=36")
		return false
	}
	values := make([]uint, len(digits))
	for i := 0; i < len(digits); i++ {
		v, ok := digitValue(digits[i])
		if !ok || v >= radix {
			reportRunTime("Set", "digit not in radix alphabet")
			return false
		}
		values[i] = v
	}

	width := bitsPerDigit(radix)
	var buf BitBuffer
	buf.ResizeNoPreserve(width * uint(len(values)))
	bs := NewBitStream(&buf)
	for _, v := range values {
		var b [8]byte
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		bs.WriteBits(b[:], width)
	}

	ds.radix = radix
	ds.numDigit = uint(len(values))
	ds.buf = buf
	ds.defined = true
	return true
}

// GetStr unpacks the stream back into a string of the same length it was
// set with. It returns the empty string if the stream is undefined.
func (ds *DigitStream) GetStr() string {
	if !ds.defined {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(ds.numDigit))
	width := bitsPerDigit(ds.radix)
	bs := NewBitStream(&ds.buf)
	var b [8]byte
	for i := uint(0); i < ds.numDigit; i++ {
		b[0], b[1] = 0, 0
		bs.ReadBits(b[:], width)
		v := uint(b[0]) | uint(b[1])<<8
		sb.WriteByte(digitAlphabet[v])
	}
	return sb.String()
}

// GetU64 computes the unsigned value of the digit sequence interpreted in
// its own radix, most-significant digit first. It returns false if the
// value overflows uint64 or the stream is undefined.
func (ds *DigitStream) GetU64(out *uint64) bool {
	if !ds.defined {
		reportMisuse("GetU64", "digit stream is undefined")
		return false
	}
	width := bitsPerDigit(ds.radix)
	bs := NewBitStream(&ds.buf)
	var acc uint64
	var b [8]byte
	for i := uint(0); i < ds.numDigit; i++ {
		b[0], b[1] = 0, 0
		bs.ReadBits(b[:], width)
		v := uint64(b[0]) | uint64(b[1])<<8

		if acc > (^uint64(0)-v)/uint64(ds.radix) {
			reportRunTime("GetU64", "digit value overflows uint64")
			return false
		}
		acc = acc*uint64(ds.radix) + v
	}
	*out = acc
	return true
}

// DigitIterator walks a DigitStream forward, yielding one digit value per
// step. It returns 0 once exhausted rather than panicking, matching the
// "safely returns 0" contract.
type DigitIterator struct {
	ds    *DigitStream
	bs    *BitStream
	index uint
	width uint
}

// Iterator returns a forward-only iterator over ds's digit values.
func (ds *DigitStream) Iterator() *DigitIterator {
	return &DigitIterator{
		ds:    ds,
		bs:    NewBitStream(&ds.buf),
		width: bitsPerDigit(maxRadix(ds.radix)),
	}
}

func maxRadix(r uint) uint {
	if r < 2 {
		return 2
	}
	return r
}

// Next returns the next digit value and true, or (0, false) once exhausted.
func (it *DigitIterator) Next() (uint, bool) {
	if it.ds == nil || it.index >= it.ds.numDigit {
		return 0, false
	}
	var b [8]byte
	it.bs.ReadBits(b[:], it.width)
	it.index++
	return uint(b[0]) | uint(b[1])<<8, true
}
