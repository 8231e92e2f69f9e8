package bfsdl

import (
	"bytes"
	"testing"
)

func TestStringLiteralEscapeScenario(t *testing.T) {
	// Scenario S3: the escapes \" \t \r \n \\ followed by a plain t (the
	// opening quote is consumed by the tokenizer and no closing quote is fed
	// here) yield UTF-8 bytes 22 08 0d 0a 5c 74.
	p := NewStringLiteralParser()
	steps := []struct {
		kind RunKind
		text string
	}{
		{RunBackslash, "\\"}, {RunDoubleQuotes, "\""},
		{RunBackslash, "\\"}, {RunLetters, "t"},
		{RunBackslash, "\\"}, {RunLetters, "r"},
		{RunBackslash, "\\"}, {RunLetters, "n"},
		{RunBackslash, "\\"}, {RunBackslash, "\\"},
		{RunLetters, "t"},
	}
	for _, s := range steps {
		if res := p.ParseSymbols(s.kind, s.text); res == ResultError {
			t.Fatalf("unexpected error at step %+v", s)
		}
	}
	got := []byte(p.StringMachine().GetUTF8String())
	want := []byte{0x22, 0x08, 0x0d, 0x0a, 0x5c, 0x74}
	if !bytes.Equal(got, want) {
		t.Fatalf("bytes = % x, want % x", got, want)
	}
}

func TestStringLiteralUnicodeEscapeScenario(t *testing.T) {
	// Scenario S4: "\5u1f913" (5 hex digits override) -> U+1F913, whose
	// UTF-8 encoding is f0 9f a4 93.
	p := NewStringLiteralParser()
	steps := []struct {
		kind RunKind
		text string
	}{
		{RunBackslash, "\\"},
		{RunDecimalDigits, "5"},
		{RunLetters, "u"},
		{RunDecimalDigits, "1"},
		{RunLetters, "f"},
		{RunDecimalDigits, "913"},
	}
	for _, s := range steps {
		if res := p.ParseSymbols(s.kind, s.text); res == ResultError {
			t.Fatalf("unexpected error at step %+v", s)
		}
	}
	got := []byte(p.StringMachine().GetUTF8String())
	want := []byte{0xf0, 0x9f, 0xa4, 0x93}
	if !bytes.Equal(got, want) {
		t.Fatalf("bytes = % x, want % x", got, want)
	}
}

func TestStringLiteralPlainTextAndClose(t *testing.T) {
	p := NewStringLiteralParser()
	p.ParseSymbols(RunLetters, "hello")
	p.ParseSymbols(RunWhitespace, " ")
	res := p.ParseSymbols(RunDoubleQuotes, "\"")
	if res != Complete {
		t.Fatalf("result = %v, want Complete", res)
	}
	if got := p.StringMachine().GetUTF8String(); got != "hello " {
		t.Fatalf("text = %q, want %q", got, "hello ")
	}
}

func TestStringLiteralASCIIEscape(t *testing.T) {
	p := NewStringLiteralParser()
	p.ParseSymbols(RunBackslash, "\\")
	p.ParseSymbols(RunLetters, "a")
	res := p.ParseSymbols(RunDecimalDigits, "41")
	if res != NotComplete {
		t.Fatalf("result = %v, want NotComplete", res)
	}
	if got := p.StringMachine().GetUTF8String(); got != "A" {
		t.Fatalf("text = %q, want %q", got, "A")
	}
}

func TestStringLiteralMS1252Escape(t *testing.T) {
	p := NewStringLiteralParser()
	p.ParseSymbols(RunBackslash, "\\")
	p.ParseSymbols(RunLetters, "w")
	p.ParseSymbols(RunDecimalDigits, "80") // 0x80 in MS-1252 is the Euro sign
	got := []byte(p.StringMachine().GetUTF8String())
	want := []byte{0xe2, 0x82, 0xac} // U+20AC in UTF-8
	if !bytes.Equal(got, want) {
		t.Fatalf("bytes = % x, want % x", got, want)
	}
}

func TestStringLiteralPrefixNotAllowedOnSimpleEscape(t *testing.T) {
	p := NewStringLiteralParser()
	p.ParseSymbols(RunBackslash, "\\")
	p.ParseSymbols(RunDecimalDigits, "2")
	res := p.ParseSymbols(RunLetters, "n")
	if res != ResultError {
		t.Fatalf("result = %v, want ResultError (prefix on \\n)", res)
	}
}

func TestStringLiteralPrefixNotAllowedOnASCIIEscape(t *testing.T) {
	p := NewStringLiteralParser()
	p.ParseSymbols(RunBackslash, "\\")
	p.ParseSymbols(RunDecimalDigits, "2")
	res := p.ParseSymbols(RunLetters, "a")
	if res != ResultError {
		t.Fatalf("result = %v, want ResultError (prefix on \\a)", res)
	}
}

func TestStringLiteralDigitCountOutOfRangeIsError(t *testing.T) {
	p := NewStringLiteralParser()
	p.ParseSymbols(RunBackslash, "\\")
	res := p.ParseSymbols(RunDecimalDigits, "99")
	if res != ResultError {
		t.Fatalf("result = %v, want ResultError (count out of 1..32)", res)
	}
}

func TestStringLiteralExcessEscapeDigitsDeferAsText(t *testing.T) {
	p := NewStringLiteralParser()
	p.ParseSymbols(RunBackslash, "\\")
	p.ParseSymbols(RunLetters, "x")
	// "4142zz" -> escape consumes "41" ('A'), remaining "42zz" deferred as
	// plain text.
	p.ParseSymbols(RunDecimalDigits, "4142")
	p.ParseSymbols(RunLetters, "zz")
	res := p.ParseSymbols(RunDoubleQuotes, "\"")
	if res != Complete {
		t.Fatalf("result = %v, want Complete", res)
	}
	if got := p.StringMachine().GetUTF8String(); got != "A42zz" {
		t.Fatalf("text = %q, want %q", got, "A42zz")
	}
}
