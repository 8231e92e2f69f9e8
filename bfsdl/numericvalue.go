// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bfsdl

// NumericValueBuilder accumulates bits read off a BitStream for a
// fixed-point numeric field shape (signed?, integral_bits, fractional_bits)
// into a 64-bit accumulator, sign-extending on the first call when needed.
type NumericValueBuilder struct {
	isSigned    bool
	totalBits   uint
	valueBits   uint
	accumulator uint64
	hasProps    bool
	firstCall   bool
}

// NewNumericValueBuilder returns a builder with no field properties set.
func NewNumericValueBuilder() *NumericValueBuilder {
	return &NumericValueBuilder{}
}

// SetFieldProperties configures the field shape and resets the accumulator.
// It rejects a zero-width field, a signed field with no integral bits (no
// room for a sign bit), a total width over 64 bits, and a signed field
// narrower than 2 bits.
func (b *NumericValueBuilder) SetFieldProperties(signed bool, integralBits, fractionalBits uint) bool {
	total := integralBits + fractionalBits
	if total == 0 {
		reportRunTime("SetFieldProperties", "field has zero total bits")
		return false
	}
	if signed && integralBits == 0 {
		reportRunTime("SetFieldProperties", "signed field has no integral bits for a sign bit")
		return false
	}
	if total > 64 {
		reportRunTime("SetFieldProperties", "field width exceeds 64 bits")
		return false
	}
	if signed && total < 2 {
		reportRunTime("SetFieldProperties", "signed field narrower than 2 bits")
		return false
	}

	b.isSigned = signed
	b.totalBits = total
	b.valueBits = 0
	b.accumulator = 0
	b.hasProps = true
	b.firstCall = true
	return true
}

// HasProperties reports whether SetFieldProperties has been called.
func (b *NumericValueBuilder) HasProperties() bool { return b.hasProps }

// IsSigned reports the field's signedness. Only meaningful once HasProperties
// is true.
func (b *NumericValueBuilder) IsSigned() bool { return b.isSigned }

// IsComplete reports whether all of the field's bits have been parsed.
func (b *NumericValueBuilder) IsComplete() bool {
	return b.hasProps && b.valueBits == b.totalBits
}

// GetBitsTillComplete returns the number of bits still needed to complete the
// field.
func (b *NumericValueBuilder) GetBitsTillComplete() uint {
	if !b.hasProps {
		return 0
	}
	return b.totalBits - b.valueBits
}

// Reset clears accumulated bits without forgetting the field properties.
func (b *NumericValueBuilder) Reset() {
	b.valueBits = 0
	b.accumulator = 0
	b.firstCall = true
}

func maskLowBits(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

// ParseBits folds in the low nBits bits of value. nBits must be between 1 and
// GetBitsTillComplete(). On the very first call to a freshly-configured or
// reset builder, a signed field whose incoming top bit is set pre-seeds the
// accumulator with all-ones so the final value comes out correctly
// sign-extended to 64 bits.
func (b *NumericValueBuilder) ParseBits(value uint64, nBits uint) bool {
	if !b.hasProps {
		reportRunTime("ParseBits", "field properties not set")
		return false
	}
	remaining := b.GetBitsTillComplete()
	if nBits < 1 || nBits > remaining {
		reportRunTime("ParseBits", "bit count out of range for remaining field width")
		return false
	}

	v := value & maskLowBits(nBits)
	if b.firstCall {
		b.firstCall = false
		if b.isSigned && (v>>(nBits-1))&1 == 1 {
			b.accumulator = ^uint64(0)
		}
	}
	b.accumulator = (b.accumulator << nBits) | v
	b.valueBits += nBits
	return true
}

// GetRawU64 returns the accumulated bits as an unsigned value. Only valid
// once IsComplete reports true.
func (b *NumericValueBuilder) GetRawU64() uint64 { return b.accumulator }

// GetRawS64 reinterprets the accumulated bits as a two's-complement signed
// value, already sign-extended by the first-call rule in ParseBits. Only
// valid once IsComplete reports true.
func (b *NumericValueBuilder) GetRawS64() int64 { return int64(b.accumulator) }
