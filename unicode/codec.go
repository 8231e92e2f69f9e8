// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package unicode

import "strings"

// ConvertStatus reports the outcome of a Codec.ConvertBytes call.
type ConvertStatus int

const (
	// StatusOK means a symbol was decoded successfully.
	StatusOK ConvertStatus = iota
	// StatusIncomplete means in holds a valid prefix of a multi-byte
	// sequence but not enough bytes to finish it. The caller should retry
	// once more bytes are available, unless in is already known to be the
	// tail of the input, in which case the symbolizer treats it as success.
	StatusIncomplete
	// StatusInvalid means in does not begin a valid sequence for this
	// codec, regardless of how many further bytes might follow.
	StatusInvalid
)

// Codec converts between a byte encoding and CodePoint values.
type Codec interface {
	// ConvertBytes decodes the leading symbol out of in and stores it into
	// cp on StatusOK. It returns the number of input bytes consumed (0
	// unless status is StatusOK) and the outcome.
	ConvertBytes(in []byte, cp *CodePoint) (n int, status ConvertStatus)

	// ConvertSymbol encodes cp into out, which must have length MaxBytes()
	// or greater. It returns the number of bytes written, or 0 on failure.
	ConvertSymbol(cp CodePoint, out []byte) int

	// MaxBytes returns the widest encoding this codec ever produces for a
	// single symbol.
	MaxBytes() int
}

// Family names the codec families whose name prefixes are recognized by the
// registry, even though several currently resolve to no codec.
type Family int

const (
	FamilyNone Family = iota
	FamilyASCII
	FamilyHP
	FamilyIBM
	FamilyIEC
	FamilyISO
	FamilyMS
	FamilyUTF8
)

// ParseFamily matches the prefix of name against the known family names.
// Matching is case-sensitive and returns FamilyNone if no prefix matches.
func ParseFamily(name string) Family {
	switch {
	case strings.HasPrefix(name, "ASCII"):
		return FamilyASCII
	case strings.HasPrefix(name, "HP"):
		return FamilyHP
	case strings.HasPrefix(name, "IBM"):
		return FamilyIBM
	case strings.HasPrefix(name, "IEC"):
		return FamilyIEC
	case strings.HasPrefix(name, "ISO"):
		return FamilyISO
	case strings.HasPrefix(name, "MS"):
		return FamilyMS
	case strings.HasPrefix(name, "UTF8"):
		return FamilyUTF8
	default:
		return FamilyNone
	}
}

// Lookup resolves a full codec name (e.g. "ASCII", "MS-1252", "UTF8") to an
// instance. Name lookup is case-sensitive. It returns (nil, false) for
// unsupported names, including recognized-but-unimplemented families.
func Lookup(name string) (Codec, bool) {
	switch ParseFamily(name) {
	case FamilyASCII:
		if name == "ASCII" {
			return ASCIICodec{}, true
		}
	case FamilyMS:
		if name == "MS-1252" {
			return MS1252Codec{}, true
		}
	case FamilyUTF8:
		if name == "UTF8" {
			return UTF8Codec{}, true
		}
	}
	return nil, false
}
