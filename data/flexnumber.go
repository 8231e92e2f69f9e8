// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package data

import (
	"strings"

	"github.com/dpkristensen/bfdm-sub000/bitmanip"
)

// Component is one sign-prefixed, integral-plus-fractional part of a
// FlexNumber: the significand, the base, or the exponent.
type Component struct {
	Sign       Sign
	Integral   bitmanip.DigitStream
	Fractional bitmanip.DigitStream
}

// IsDefined reports whether the integral part has been set. A Component with
// only a fractional part but no integral part is not considered defined,
// mirroring the significand/base/exponent predicates in FlexNumber.
func (c *Component) IsDefined() bool {
	return c.Integral.IsDefined()
}

// IsIntegral reports whether this component has no fractional digits.
func (c *Component) IsIntegral() bool {
	return !c.Fractional.IsDefined() || c.Fractional.GetStr() == ""
}

// GetStr renders the component as [sign][integral|'0'][('.' fractional)?].
// When verbose is true, the sign glyph is always emitted explicitly.
func (c *Component) GetStr(verbose bool) string {
	var sb strings.Builder
	if verbose {
		sb.WriteString(c.Sign.String())
	} else {
		sb.WriteString(c.Sign.Concise())
	}
	intStr := c.Integral.GetStr()
	if intStr == "" {
		intStr = "0"
	}
	sb.WriteString(intStr)
	if c.Fractional.IsDefined() {
		if frac := c.Fractional.GetStr(); frac != "" {
			sb.WriteByte('.')
			sb.WriteString(frac)
		}
	}
	return sb.String()
}

// FlexNumber is a sign-prefixed significand with an optional base^exponent,
// each of which may itself carry a fractional part.
type FlexNumber struct {
	Significand Component
	Base        Component
	Exponent    Component
}

// HasSignificand reports whether the significand has been set.
func (f *FlexNumber) HasSignificand() bool {
	return f.Significand.IsDefined()
}

// HasExponent reports whether both base and exponent have been set.
func (f *FlexNumber) HasExponent() bool {
	return f.Base.IsDefined() && f.Exponent.IsDefined()
}

// IsDefined reports whether this FlexNumber carries any value at all.
func (f *FlexNumber) IsDefined() bool {
	return f.HasSignificand() || f.HasExponent()
}

// IsIntegral reports whether the value is a plain integer: the significand
// has no fractional part and there is no exponent.
func (f *FlexNumber) IsIntegral() bool {
	return f.Significand.IsIntegral() && !f.HasExponent()
}

// GetStr renders "<sig> x <base> ^ <exp>", eliding the base/exponent suffix
// when absent.
func (f *FlexNumber) GetStr(verbose bool) string {
	s := f.Significand.GetStr(verbose)
	if f.HasExponent() {
		s += " x " + f.Base.GetStr(verbose) + " ^ " + f.Exponent.GetStr(verbose)
	}
	return s
}
