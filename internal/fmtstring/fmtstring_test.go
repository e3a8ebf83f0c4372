package fmtstring

import (
	"testing"
)

func TestParse_PlainLiteral(t *testing.T) {
	segs, err := Parse("hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 || segs[0].Literal != "hello world" || segs[0].IsPlaceholder {
		t.Fatalf("unexpected segments: %+v", segs)
	}
}

func TestParse_SimplePlaceholder(t *testing.T) {
	segs, err := Parse("Hello ${name}!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Segment{
		{Literal: "Hello "},
		{Placeholder: "name", IsPlaceholder: true},
		{Literal: "!"},
	}
	assertSegsEqual(t, want, segs)
}

func TestParse_EscapedDollarAndPlaceholder(t *testing.T) {
	// "Hello ${name}! You owe $$${amount}" -- spec.md §8.2 scenario 6.
	segs, err := Parse("Hello ${name}! You owe $$${amount}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Segment{
		{Literal: "Hello "},
		{Placeholder: "name", IsPlaceholder: true},
		{Literal: "! You owe $"},
		{Placeholder: "amount", IsPlaceholder: true},
	}
	assertSegsEqual(t, want, segs)
}

func TestParse_BackslashEscape(t *testing.T) {
	segs, err := Parse(`\${name}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Segment{{Literal: "${name}"}}
	assertSegsEqual(t, want, segs)
}

func TestParse_EvenBackslashesLeaveDollarActive(t *testing.T) {
	// Two backslashes pair up into one literal backslash; the '$' stays
	// active and opens a placeholder.
	segs, err := Parse(`\\${name}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Segment{
		{Literal: `\`},
		{Placeholder: "name", IsPlaceholder: true},
	}
	assertSegsEqual(t, want, segs)
}

func TestParse_UnterminatedPlaceholder(t *testing.T) {
	_, err := Parse("${name")
	if err == nil {
		t.Fatal("expected error for unterminated placeholder")
	}
}

func TestParse_EmptyPlaceholder(t *testing.T) {
	_, err := Parse("${}")
	if err == nil {
		t.Fatal("expected error for empty placeholder")
	}
}

func TestParse_InvalidPlaceholderContent(t *testing.T) {
	_, err := Parse("${1abc}")
	if err == nil {
		t.Fatal("expected error for invalid identifier")
	}
}

func TestParse_DollarWithoutBraceIsLiteral(t *testing.T) {
	segs, err := Parse("$5.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Segment{{Literal: "$5.00"}}
	assertSegsEqual(t, want, segs)
}

func assertSegsEqual(t *testing.T, want, got []Segment) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("segment count mismatch: want %+v, got %+v", want, got)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("segment %d mismatch: want %+v, got %+v", i, want[i], got[i])
		}
	}
}
