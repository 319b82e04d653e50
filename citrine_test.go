package citrine_test

import (
	"strings"
	"testing"

	"citrine"
)

func TestTokenizeRoundTrip(t *testing.T) {
	input := "(defn f [x] ; doc\n  (* x x))"
	toks := citrine.Tokenize(input)

	var sb strings.Builder
	for _, tok := range toks {
		sb.WriteString(tok.Text)
	}
	if sb.String() != input {
		t.Fatalf("token concatenation = %q, want input", sb.String())
	}
}

func TestParseLossless(t *testing.T) {
	inputs := []string{
		"{:a 1 :b [2 3]}",
		"(1 2",
		"garbage )))) \x00",
	}
	for _, input := range inputs {
		tree := citrine.Parse(input)
		if got := tree.Root().Text(); got != input {
			t.Errorf("Parse(%q).Root().Text() = %q", input, got)
		}
	}
}

func TestParseErrorDetection(t *testing.T) {
	if citrine.Parse("(ok)").HasErrors() {
		t.Error("clean input flagged with errors")
	}
	if !citrine.Parse("(nope").HasErrors() {
		t.Error("unclosed list not flagged")
	}
}

func TestReadValues(t *testing.T) {
	values := citrine.Read("(+ 1 2) :done")
	if len(values) != 2 {
		t.Fatalf("got %d values, want 2", len(values))
	}
	if values[0].String() != "(+ 1 2)" {
		t.Errorf("first value = %s", values[0])
	}
	if values[1].String() != ":done" {
		t.Errorf("second value = %s", values[1])
	}
}
