package data

import "testing"

func TestFlexNumberHexSignificandOnly(t *testing.T) {
	// S2: "#x:7b#" -> significand.sign=Positive, integral digits 7,11 base16.
	var f FlexNumber
	f.Significand.Sign = Positive
	f.Significand.Integral.Set("7b", 16)

	if !f.HasSignificand() {
		t.Fatalf("HasSignificand should be true")
	}
	if f.HasExponent() {
		t.Fatalf("HasExponent should be false")
	}
	if !f.IsDefined() {
		t.Fatalf("IsDefined should be true")
	}
	if !f.IsIntegral() {
		t.Fatalf("IsIntegral should be true")
	}
	if got := f.GetStr(true); got != "+7b" {
		t.Fatalf("GetStr(verbose) = %q, want %q", got, "+7b")
	}
}

func TestFlexNumberWithExponent(t *testing.T) {
	var f FlexNumber
	f.Significand.Integral.Set("12", 10)
	f.Base.Integral.Set("10", 10)
	f.Exponent.Sign = Positive
	f.Exponent.Integral.Set("3", 10)

	if !f.HasExponent() {
		t.Fatalf("HasExponent should be true")
	}
	if f.IsIntegral() {
		t.Fatalf("a number with an exponent is never integral")
	}
	want := "?12 x ?10 ^ +3"
	if got := f.GetStr(true); got != want {
		t.Fatalf("GetStr(verbose) = %q, want %q", got, want)
	}
}

func TestFlexNumberFractional(t *testing.T) {
	var c Component
	c.Integral.Set("3", 10)
	c.Fractional.Set("14", 10)
	if got := c.GetStr(false); got != "3.14" {
		t.Fatalf("GetStr = %q, want %q", got, "3.14")
	}
}

func TestFlexNumberUndefined(t *testing.T) {
	var f FlexNumber
	if f.IsDefined() {
		t.Fatalf("zero-value FlexNumber should not be defined")
	}
}

func TestComponentDefaultsIntegralZero(t *testing.T) {
	var c Component
	if got := c.GetStr(false); got != "0" {
		t.Fatalf("GetStr on empty component = %q, want %q", got, "0")
	}
}
