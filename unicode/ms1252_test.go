package unicode

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
)

// TestMS1252AgainstCharmap cross-validates the hand-rolled Windows-1252
// table against golang.org/x/text's canonical implementation for every byte
// this package considers defined.
func TestMS1252AgainstCharmap(t *testing.T) {
	dec := charmap.Windows1252.NewDecoder()
	for b := 0; b <= 0xff; b++ {
		var cp CodePoint
		ok := GetUnicode(byte(b), &cp)

		decoded, err := dec.Bytes([]byte{byte(b)})
		wantOK := err == nil && len(decoded) > 0

		if !ok {
			continue // holes are asserted by TestMS1252Holes below
		}
		if !wantOK {
			t.Fatalf("byte %#x: this package accepts it but charmap rejects it", b)
		}
		r := decodeSingleRune(decoded)
		if CodePoint(r) != cp {
			t.Fatalf("byte %#x: got %#x, charmap says %#x", b, cp, r)
		}
	}
}

func decodeSingleRune(b []byte) rune {
	r, _ := decodeUTF8Rune(b)
	return r
}

// decodeUTF8Rune avoids importing unicode/utf8 twice under the same name as
// this package; it is a minimal decoder sufficient for the single runes
// charmap.Windows1252 ever produces.
func decodeUTF8Rune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	if b[0] < 0x80 {
		return rune(b[0]), 1
	}
	if b[0]&0xe0 == 0xc0 && len(b) >= 2 {
		return rune(b[0]&0x1f)<<6 | rune(b[1]&0x3f), 2
	}
	if b[0]&0xf0 == 0xe0 && len(b) >= 3 {
		return rune(b[0]&0x0f)<<12 | rune(b[1]&0x3f)<<6 | rune(b[2]&0x3f), 3
	}
	return 0, len(b)
}

func TestMS1252Holes(t *testing.T) {
	holes := []byte{0x81, 0x8d, 0x8f, 0x90, 0x9d, 0x7f}
	for _, b := range holes {
		var cp CodePoint
		if GetUnicode(b, &cp) {
			t.Fatalf("byte %#x should be undefined, got cp=%#x", b, cp)
		}
	}
}

func TestMS1252RoundTrip(t *testing.T) {
	c := MS1252Codec{}
	for b := 0; b <= 0xff; b++ {
		if b == 0x7f || isHole(byte(b)) {
			continue
		}
		var cp CodePoint
		n, status := c.ConvertBytes([]byte{byte(b)}, &cp)
		if n != 1 || status != StatusOK {
			t.Fatalf("decode %#x failed", b)
		}
		out := make([]byte, c.MaxBytes())
		m := c.ConvertSymbol(cp, out)
		if m != 1 || out[0] != byte(b) {
			t.Fatalf("encode round trip for %#x failed: m=%d out=%v", b, m, out)
		}
	}
}

func isHole(b byte) bool {
	switch b {
	case 0x81, 0x8d, 0x8f, 0x90, 0x9d:
		return true
	default:
		return false
	}
}
