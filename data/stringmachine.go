// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package data

import (
	"fmt"
	"strings"

	"github.com/dpkristensen/bfdm-sub000/unicode"
)

// StringMachine is a mutable UTF-8 string builder that accepts and emits
// text through arbitrary Codecs. It tracks a defined flag separately from
// emptiness: a machine that has been appended to with an empty string is
// defined but empty, whereas a freshly constructed machine is neither.
type StringMachine struct {
	utf8    strings.Builder
	defined bool
}

// NewStringMachine returns an empty, undefined machine.
func NewStringMachine() *StringMachine {
	return &StringMachine{}
}

// IsDefined reports whether any append has occurred.
func (sm *StringMachine) IsDefined() bool { return sm.defined }

// IsEmpty reports whether the accumulated UTF-8 string has zero length.
func (sm *StringMachine) IsEmpty() bool { return sm.utf8.Len() == 0 }

// GetUTF8String returns the accumulated content verbatim.
func (sm *StringMachine) GetUTF8String() string { return sm.utf8.String() }

// Reset clears content and the defined flag.
func (sm *StringMachine) Reset() {
	sm.utf8.Reset()
	sm.defined = false
}

// AppendUTF8 appends s verbatim and marks the machine defined.
func (sm *StringMachine) AppendUTF8(s string) {
	sm.utf8.WriteString(s)
	sm.defined = true
}

// AppendUnicode encodes cp as UTF-8 and appends it.
func (sm *StringMachine) AppendUnicode(cp unicode.CodePoint) {
	var out [6]byte
	n := unicode.UTF8Codec{}.ConvertSymbol(cp, out[:])
	sm.utf8.Write(out[:n])
	sm.defined = true
}

// AppendString decodes s through codec one symbol at a time and re-encodes
// each as UTF-8 before appending. If any byte sequence in s cannot be
// decoded, AppendString fails and leaves the machine's prior contents
// intact.
func (sm *StringMachine) AppendString(codec unicode.Codec, s string) bool {
	in := []byte(s)
	var pending strings.Builder
	u8 := unicode.UTF8Codec{}
	for len(in) > 0 {
		var cp unicode.CodePoint
		n, status := codec.ConvertBytes(in, &cp)
		if status != unicode.StatusOK {
			return false
		}
		var out [6]byte
		m := u8.ConvertSymbol(cp, out[:])
		if m == 0 {
			return false
		}
		pending.Write(out[:m])
		in = in[n:]
	}
	sm.utf8.WriteString(pending.String())
	sm.defined = true
	return true
}

// GetString encodes the accumulated UTF-8 content through codec into out.
// It returns false if any code point cannot be represented by codec,
// leaving out unchanged.
func (sm *StringMachine) GetString(codec unicode.Codec, out *string) bool {
	src := []byte(sm.utf8.String())
	u8 := unicode.UTF8Codec{}
	var sb strings.Builder
	for len(src) > 0 {
		var cp unicode.CodePoint
		n, status := u8.ConvertBytes(src, &cp)
		if status != unicode.StatusOK {
			return false
		}
		enc := make([]byte, codec.MaxBytes())
		m := codec.ConvertSymbol(cp, enc)
		if m == 0 {
			return false
		}
		sb.Write(enc[:m])
		src = src[n:]
	}
	*out = sb.String()
	return true
}

// GetUTF8HexString renders each byte of the accumulated UTF-8 content as two
// lowercase hex digits, with prefix before each byte and sep between bytes.
func (sm *StringMachine) GetUTF8HexString(sep, prefix string) string {
	b := []byte(sm.utf8.String())
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(prefix)
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}
