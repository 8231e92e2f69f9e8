// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package unicode

// ms1252HighTable maps bytes 0x80..=0x9f to their Windows-1252 code points.
// It is indexed by the byte value itself; only entries 0x80..=0x9f are used.
// A zero entry marks an undefined byte (the holes at 0x81, 0x8d, 0x8f, 0x90,
// 0x9d).
var ms1252HighTable = [0xa0]CodePoint{
	0x80: 0x20ac,
	0x82: 0x201a,
	0x83: 0x0192,
	0x84: 0x201e,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02c6,
	0x89: 0x2030,
	0x8a: 0x0160,
	0x8b: 0x2039,
	0x8c: 0x0152,
	0x8e: 0x017d,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201c,
	0x94: 0x201d,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02dc,
	0x99: 0x2122,
	0x9a: 0x0161,
	0x9b: 0x203a,
	0x9c: 0x0153,
	0x9e: 0x017e,
	0x9f: 0x0178,
}

var ms1252HighReverse map[CodePoint]byte

func init() {
	ms1252HighReverse = make(map[CodePoint]byte, len(ms1252HighTable))
	for i, cp := range ms1252HighTable {
		if cp == 0 {
			continue // hole: no byte maps here
		}
		ms1252HighReverse[cp] = byte(i)
	}
}

// GetUnicode is the pure-function form of the Windows-1252 decode table,
// used directly by the string-literal parser's \wHH escape.
func GetUnicode(b byte, cp *CodePoint) bool {
	switch {
	case b <= 0x7e:
		*cp = CodePoint(b)
		return true
	case b == 0x7f:
		return false
	case b >= 0x80 && b <= 0x9f:
		v := ms1252HighTable[b]
		if v == 0 {
			return false
		}
		*cp = v
		return true
	default: // 0xa0..=0xff
		*cp = CodePoint(b)
		return true
	}
}

// MS1252Codec implements Codec for Windows-1252.
type MS1252Codec struct{}

// MaxBytes implements Codec.
func (MS1252Codec) MaxBytes() int { return 1 }

// ConvertBytes implements Codec.
func (MS1252Codec) ConvertBytes(in []byte, cp *CodePoint) (int, ConvertStatus) {
	if len(in) == 0 {
		return 0, StatusInvalid
	}
	if !GetUnicode(in[0], cp) {
		return 0, StatusInvalid
	}
	return 1, StatusOK
}

// ConvertSymbol implements Codec.
func (MS1252Codec) ConvertSymbol(cp CodePoint, out []byte) int {
	if len(out) < 1 {
		return 0
	}
	switch {
	case cp <= 0x7e:
		out[0] = byte(cp)
		return 1
	case cp >= 0xa0 && cp <= 0xff:
		out[0] = byte(cp)
		return 1
	default:
		if b, ok := ms1252HighReverse[cp]; ok {
			out[0] = b
			return 1
		}
		return 0
	}
}
