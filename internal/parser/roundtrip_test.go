package parser_test

import (
	"strings"
	"testing"

	"citrine/internal/parser"
	"citrine/internal/source"
	"citrine/internal/syntax"
)

// Seeds cover the grammar surface plus deliberately broken inputs; the
// tree must reproduce every one byte-for-byte.
var seeds = []string{
	"",
	"   ",
	"; just a comment",
	"(defn add [a b] (+ a b))",
	"{:name \"citrine\" :version 1}",
	"#{1 2 3}",
	"'(quote me) `(quasi ,unquote ,@(splice))",
	"^:private (def x 10)",
	"#_(ignore this) 42",
	"1/2 0x1F 0b1010 10n 1.5e10 -42l Infinity",
	"\\newline \\u00E9 \\x",
	"(1 2",
	"(1]",
	") stray",
	"'",
	",@not-a-list",
	"\"unterminated",
	"héllo wörld ; ünïcode",
	"(a\r\n b)\r\n",
	"{:odd}",
	"(((([[[[{{{{",
}

func TestRoundTrip(t *testing.T) {
	for _, seed := range seeds {
		tree, _ := parse(t, seed)
		if got := tree.Root().Text(); got != seed {
			t.Errorf("round-trip failed for %q: got %q", seed, got)
		}
	}
}

func TestRoundTripLeafConcatenation(t *testing.T) {
	// Same property via leaf iteration, exercising the red layer.
	for _, seed := range seeds {
		tree, _ := parse(t, seed)
		var sb strings.Builder
		for _, leaf := range tree.Root().Leaves() {
			sb.WriteString(leaf.Text)
		}
		if sb.String() != seed {
			t.Errorf("leaf concatenation for %q: got %q", seed, sb.String())
		}
	}
}

func TestParseIsTotal(t *testing.T) {
	// No panic, always a root, on arbitrary byte soup.
	inputs := []string{
		"\x00\x01\x02",
		strings.Repeat("(", 500),
		strings.Repeat(")", 500),
		strings.Repeat("'", 100),
		"\xff\xfe invalid utf8 \x80",
	}
	for _, input := range inputs {
		tree, _ := parse(t, input)
		if tree.Root().Kind() != syntax.Root {
			t.Errorf("parse(%q): root kind = %s", input, tree.Root().Kind())
		}
		if tree.Root().Text() != input {
			t.Errorf("parse(%q): text mismatch", input)
		}
	}
}

func TestInterningDoesNotChangeShape(t *testing.T) {
	input := "(a (a (a))) (a (a (a))) [1 1 1]"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ctn", []byte(input)))

	plain := parser.ParseFile(file, parser.Options{}).Tree
	interned := parser.ParseFile(file, parser.Options{Intern: true}).Tree

	if shape(plain.Root()) != shape(interned.Root()) {
		t.Fatalf("interning changed tree shape:\n%s\n%s",
			shape(plain.Root()), shape(interned.Root()))
	}
	if plain.Root().Text() != interned.Root().Text() {
		t.Fatal("interning changed tree text")
	}
	if interned.NodeCount() > plain.NodeCount() {
		t.Fatalf("interning increased node count: %d > %d",
			interned.NodeCount(), plain.NodeCount())
	}
}
