package bfsdl

import "testing"

func TestNumericValueBuilderSignedFixedPoint(t *testing.T) {
	// Scenario S7: bytes b4 59 as a signed s12.4 field -> -19367.
	b := NewNumericValueBuilder()
	if !b.SetFieldProperties(true, 12, 4) {
		t.Fatalf("SetFieldProperties failed")
	}
	if !b.ParseBits(0xb4, 8) {
		t.Fatalf("ParseBits(0xb4) failed")
	}
	if b.IsComplete() {
		t.Fatalf("expected incomplete after 8 of 16 bits")
	}
	if !b.ParseBits(0x59, 8) {
		t.Fatalf("ParseBits(0x59) failed")
	}
	if !b.IsComplete() {
		t.Fatalf("expected complete after 16 of 16 bits")
	}
	if got := b.GetRawS64(); got != -19367 {
		t.Fatalf("GetRawS64() = %d, want -19367", got)
	}
}

func TestNumericValueBuilderSignedSingleCall(t *testing.T) {
	// Same field and bit pattern fed in one call instead of two.
	b := NewNumericValueBuilder()
	b.SetFieldProperties(true, 12, 4)
	b.ParseBits(0xb459, 16)
	if got := b.GetRawS64(); got != -19367 {
		t.Fatalf("GetRawS64() = %d, want -19367", got)
	}
}

func TestNumericValueBuilderUnsigned(t *testing.T) {
	b := NewNumericValueBuilder()
	b.SetFieldProperties(false, 16, 0)
	b.ParseBits(0xb459, 16)
	if got := b.GetRawU64(); got != 0xb459 {
		t.Fatalf("GetRawU64() = %#x, want 0xb459", got)
	}
}

func TestNumericValueBuilderSignedPositiveTopBitClear(t *testing.T) {
	b := NewNumericValueBuilder()
	b.SetFieldProperties(true, 8, 0)
	b.ParseBits(0x42, 8)
	if got := b.GetRawS64(); got != 0x42 {
		t.Fatalf("GetRawS64() = %d, want 66", got)
	}
}

func TestNumericValueBuilderSignExtensionProperty(t *testing.T) {
	// Property 11: for any signed (i, f) with total in 2..=64, a top-bit-set
	// input sign-extends correctly. Exercised here for an 8-bit field split
	// across two partial reads.
	b := NewNumericValueBuilder()
	b.SetFieldProperties(true, 5, 3)
	b.ParseBits(0x1, 1) // top bit set
	b.ParseBits(0x2a, 7)
	if !b.IsComplete() {
		t.Fatalf("expected complete after 8 of 8 bits")
	}
	// Full 8-bit pattern: 1010_1010 = 0xAA, two's complement i8 -> -86.
	if got := b.GetRawS64(); got != -86 {
		t.Fatalf("GetRawS64() = %d, want -86", got)
	}
}

func TestNumericValueBuilderRejectsBadProperties(t *testing.T) {
	b := NewNumericValueBuilder()
	if b.SetFieldProperties(false, 0, 0) {
		t.Fatalf("expected rejection of zero-width field")
	}
	if b.SetFieldProperties(true, 0, 4) {
		t.Fatalf("expected rejection of signed field with no integral bits")
	}
	if b.SetFieldProperties(true, 1, 0) {
		t.Fatalf("expected rejection of signed field narrower than 2 bits")
	}
	if b.SetFieldProperties(false, 40, 30) {
		t.Fatalf("expected rejection of field wider than 64 bits")
	}
}

func TestNumericValueBuilderRejectsOutOfRangeBitCount(t *testing.T) {
	b := NewNumericValueBuilder()
	b.SetFieldProperties(false, 4, 0)
	if b.ParseBits(0xf, 5) {
		t.Fatalf("expected rejection of n_bits exceeding remaining width")
	}
	if b.ParseBits(0xf, 0) {
		t.Fatalf("expected rejection of n_bits == 0")
	}
}

func TestNumericValueBuilderResetPreservesProperties(t *testing.T) {
	b := NewNumericValueBuilder()
	b.SetFieldProperties(true, 12, 4)
	b.ParseBits(0xb459, 16)
	b.Reset()
	if b.IsComplete() {
		t.Fatalf("expected incomplete after Reset")
	}
	if !b.HasProperties() {
		t.Fatalf("expected properties preserved after Reset")
	}
	if b.GetBitsTillComplete() != 16 {
		t.Fatalf("GetBitsTillComplete() = %d, want 16", b.GetBitsTillComplete())
	}
}
