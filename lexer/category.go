// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lexer implements the Symbolizer: a byte-to-code-point-to-category
// pipeline that turns raw input into maximal runs of same-category symbols
// for a token-level consumer to react to.
package lexer

import "github.com/dpkristensen/bfdm-sub000/unicode"

// Reserved category ids.
const (
	NoCategory = -1
	Unknown    = -2
)

// Category tags code points with an integer id, a membership predicate, and
// whether consecutive members should be concatenated into a single run.
type Category struct {
	ID                int
	Contains          func(cp unicode.CodePoint) bool
	ShouldConcatenate bool
}

// CategoryList is an ordered, priority-first list of categories with a
// cached "last matching entry" to speed up runs of same-category input.
type CategoryList struct {
	categories []Category
	lastMatch  int // index into categories, or -1 if none cached
}

// NewCategoryList returns a list over the given categories in priority
// order (earlier entries are tried first).
func NewCategoryList(categories []Category) *CategoryList {
	return &CategoryList{categories: categories, lastMatch: -1}
}

// Classify returns the id of the first category whose predicate matches cp,
// preferring the cached last match, or Unknown if none match.
func (cl *CategoryList) Classify(cp unicode.CodePoint) int {
	if cl.lastMatch >= 0 {
		c := cl.categories[cl.lastMatch]
		if c.Contains(cp) {
			return c.ID
		}
	}
	for i, c := range cl.categories {
		if c.Contains(cp) {
			cl.lastMatch = i
			return c.ID
		}
	}
	return Unknown
}

// ShouldConcatenate reports the should-concatenate flag for a category id
// previously returned by Classify. Unknown always concatenates (runs of
// unmapped symbols are still buffered as one run).
func (cl *CategoryList) ShouldConcatenate(id int) bool {
	if id == Unknown {
		return true
	}
	for _, c := range cl.categories {
		if c.ID == id {
			return c.ShouldConcatenate
		}
	}
	return false
}
