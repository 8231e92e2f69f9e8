// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bfsdl implements the BFSDL source-text parsing layer: literal
// sub-parsers for numeric and string tokens, the tokenizer that drives them
// over a Symbolizer, and the fixed-point numeric value builder used once a
// field's raw bits have been read off a BitStream.
package bfsdl

// RunKind names the category a symbol run belongs to, as classified by the
// Tokenizer's category list and forwarded to whichever sub-parser is active.
type RunKind int

const (
	RunControl RunKind = iota
	RunDecimalDigits
	RunLetters
	RunOperators
	RunPeriod
	RunTilde
	RunHash
	RunWhitespace
	RunDoubleQuotes
	RunBackslash
)

// Result is the outcome of feeding one run to a literal sub-parser.
type Result int

const (
	NotComplete Result = iota
	Complete
	ResultError
)
