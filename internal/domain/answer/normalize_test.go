package answer

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "trims and lowercases", in: "  Hello World  ", out: "hello world"},
		{name: "flattens punctuation", in: "what's the plan?", out: "what s the plan "},
		{name: "strips urls", in: "see https://example.com/x for details", out: "see for details"},
		{name: "strips handles and hashtags", in: "ping @alice about #launch-day plans", out: "ping about plans"},
		{name: "collapses whitespace", in: "a\t b\n\nc", out: "a b c"},
		{name: "keeps digits", in: "Room 42, 9am", out: "room 42 9am"},
		{name: "empty input", in: "", out: ""},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.out {
			t.Fatalf("%s: expected %q got %q", tc.name, tc.out, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"What did Alice (really) say about the deadline",
		"already clean text",
		"MIXED Case   and\ttabs",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestNormalizeCharset(t *testing.T) {
	out := Normalize("Crème brûlée @ 5€!! #yum http://x.io/a?b=c")
	trimmed := strings.Trim(out, " ")
	for _, r := range trimmed {
		ok := r == ' ' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !ok {
			t.Fatalf("unexpected rune %q in %q", r, out)
		}
	}
	if strings.Contains(out, "  ") {
		t.Fatalf("consecutive spaces in %q", out)
	}
}
