package lexer_test

import (
	"strings"
	"testing"

	"citrine/internal/diag"
	"citrine/internal/lexer"
	"citrine/internal/source"
	"citrine/internal/syntax"
	"citrine/internal/token"
)

// testReporter collects diagnostics reported by the lexer.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) errorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func scan(t *testing.T, input string) ([]token.Token, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ctn", []byte(input)))
	reporter := &testReporter{}
	return lexer.Scan(file, lexer.Options{Reporter: reporter}), reporter
}

// kinds returns the token kinds before EOF, trivia included.
func kinds(toks []token.Token) []syntax.Kind {
	out := make([]syntax.Kind, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == syntax.EOF {
			break
		}
		out = append(out, tok.Kind)
	}
	return out
}

func equalKinds(a, b []syntax.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScanDelimitersAndMarkers(t *testing.T) {
	tests := []struct {
		input string
		want  []syntax.Kind
	}{
		{"()", []syntax.Kind{syntax.LParen, syntax.RParen}},
		{"[]", []syntax.Kind{syntax.LBracket, syntax.RBracket}},
		{"{}", []syntax.Kind{syntax.LBrace, syntax.RBrace}},
		{"#{}", []syntax.Kind{syntax.HashLBrace, syntax.RBrace}},
		{"'x", []syntax.Kind{syntax.QuoteTok, syntax.SymbolLit}},
		{"`x", []syntax.Kind{syntax.BacktickTok, syntax.SymbolLit}},
		{",x", []syntax.Kind{syntax.CommaTok, syntax.SymbolLit}},
		{",@x", []syntax.Kind{syntax.CommaAtTok, syntax.SymbolLit}},
		{"^x", []syntax.Kind{syntax.CaretTok, syntax.SymbolLit}},
		{"#_x", []syntax.Kind{syntax.DiscardTok, syntax.SymbolLit}},
	}
	for _, tt := range tests {
		toks, _ := scan(t, tt.input)
		if got := kinds(toks); !equalKinds(got, tt.want) {
			t.Errorf("Scan(%q) kinds = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestScanNumericDisambiguation(t *testing.T) {
	tests := []struct {
		input string
		want  syntax.Kind
	}{
		{"123", syntax.LongLit},
		{"-42", syntax.LongLit},
		{"9l", syntax.LongLit},
		{"9L", syntax.LongLit},
		{"1/2", syntax.RatioLit},
		{"-3/4", syntax.RatioLit},
		{"1/-2", syntax.RatioLit},
		{"0x1F", syntax.HexLit},
		{"0Xff", syntax.HexLit},
		{"0b1010", syntax.BinLit},
		{"0B01", syntax.BinLit},
		{"10n", syntax.BigNumLit},
		{"-10N", syntax.BigNumLit},
		{"1.5", syntax.DoubleLit},
		{"-1.5", syntax.DoubleLit},
		{".5", syntax.DoubleLit},
		{"1.5e10", syntax.DoubleLit},
		{"1.5E-3", syntax.DoubleLit},
		{"Infinity", syntax.DoubleLit},
		{"-Infinity", syntax.DoubleLit},
		{"NaN", syntax.DoubleLit},
	}
	for _, tt := range tests {
		toks, rep := scan(t, tt.input)
		if len(toks) != 2 {
			t.Errorf("Scan(%q) = %d tokens, want single token + EOF", tt.input, len(toks))
			continue
		}
		if toks[0].Kind != tt.want {
			t.Errorf("Scan(%q) kind = %s, want %s", tt.input, toks[0].Kind, tt.want)
		}
		if toks[0].Text != tt.input {
			t.Errorf("Scan(%q) text = %q, want the whole input", tt.input, toks[0].Text)
		}
		if rep.errorCount() != 0 {
			t.Errorf("Scan(%q) reported %d errors, want 0", tt.input, rep.errorCount())
		}
	}
}

func TestScanNumberDoesNotSwallowSuffix(t *testing.T) {
	// A long followed by symbol characters splits at the literal
	// boundary instead of failing.
	toks, _ := scan(t, "123abc")
	want := []syntax.Kind{syntax.LongLit, syntax.SymbolLit}
	if got := kinds(toks); !equalKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if toks[0].Text != "123" || toks[1].Text != "abc" {
		t.Fatalf("texts = %q %q, want \"123\" \"abc\"", toks[0].Text, toks[1].Text)
	}
}

func TestScanCharacters(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{`\newline`, `\newline`},
		{`\return`, `\return`},
		{`\space`, `\space`},
		{`\tab`, `\tab`},
		{`\formfeed`, `\formfeed`},
		{`\backspace`, `\backspace`},
		{`\u00E9`, `\u00E9`},
		{`\a`, `\a`},
		{`\1`, `\1`},
		{"\\я", "\\я"},
	}
	for _, tt := range tests {
		toks, rep := scan(t, tt.input)
		if toks[0].Kind != syntax.CharLit {
			t.Errorf("Scan(%q) kind = %s, want CharLit", tt.input, toks[0].Kind)
		}
		if toks[0].Text != tt.text {
			t.Errorf("Scan(%q) text = %q, want %q", tt.input, toks[0].Text, tt.text)
		}
		if rep.errorCount() != 0 {
			t.Errorf("Scan(%q) reported errors", tt.input)
		}
	}
}

func TestScanCharUnicodeFallback(t *testing.T) {
	// Not enough hex digits: falls back to the generic one-character
	// escape, leaving the rest as a symbol.
	toks, _ := scan(t, `\u12x`)
	if toks[0].Kind != syntax.CharLit || toks[0].Text != `\u` {
		t.Fatalf("first token = %s %q, want CharLit \"\\u\"", toks[0].Kind, toks[0].Text)
	}
	want := []syntax.Kind{syntax.CharLit, syntax.LongLit, syntax.SymbolLit}
	if got := kinds(toks); !equalKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestScanStrings(t *testing.T) {
	toks, rep := scan(t, `"hello \"world\"\n"`)
	if toks[0].Kind != syntax.StringLit {
		t.Fatalf("kind = %s, want StringLit", toks[0].Kind)
	}
	if len(toks) != 2 {
		t.Fatalf("escaped quote terminated the string early: %d tokens", len(toks))
	}
	if rep.errorCount() != 0 {
		t.Fatalf("unexpected errors: %d", rep.errorCount())
	}

	// Strings may span lines.
	toks, rep = scan(t, "\"a\nb\"")
	if toks[0].Kind != syntax.StringLit || rep.errorCount() != 0 {
		t.Fatalf("multiline string: kind=%s errors=%d", toks[0].Kind, rep.errorCount())
	}
}

func TestScanUnterminatedString(t *testing.T) {
	toks, rep := scan(t, `"oops`)
	if toks[0].Kind != syntax.ErrorTok {
		t.Fatalf("kind = %s, want ErrorTok", toks[0].Kind)
	}
	if toks[0].Text != `"oops` {
		t.Fatalf("error token should span to end of input, got %q", toks[0].Text)
	}
	if rep.errorCount() != 1 || rep.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("want one LexUnterminatedString, got %v", rep.diagnostics)
	}
}

func TestScanKeywordsAndSymbols(t *testing.T) {
	tests := []struct {
		input string
		want  syntax.Kind
	}{
		{":name", syntax.KeywordLit},
		{":with-dash?", syntax.KeywordLit},
		{":123", syntax.KeywordLit},
		{":", syntax.KeywordLit},
		{"foo", syntax.SymbolLit},
		{"set!", syntax.SymbolLit},
		{"<=", syntax.SymbolLit},
		{"nil?", syntax.SymbolLit},
		{"+", syntax.SymbolLit},
		{"-", syntax.SymbolLit},
		{"a1b2", syntax.SymbolLit},
		{"$var", syntax.SymbolLit},
		{"ns/name", syntax.SymbolLit},
	}
	for _, tt := range tests {
		toks, _ := scan(t, tt.input)
		if len(toks) != 2 || toks[0].Kind != tt.want || toks[0].Text != tt.input {
			t.Errorf("Scan(%q) = %v, want one %s", tt.input, kinds(toks), tt.want)
		}
	}
}

func TestScanTrivia(t *testing.T) {
	toks, _ := scan(t, "(1 ; note\n2)")
	want := []syntax.Kind{
		syntax.LParen, syntax.LongLit, syntax.Whitespace, syntax.Comment,
		syntax.Newline, syntax.LongLit, syntax.RParen,
	}
	if got := kinds(toks); !equalKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestScanCRLF(t *testing.T) {
	toks, _ := scan(t, "a\r\nb")
	want := []syntax.Kind{syntax.SymbolLit, syntax.Whitespace, syntax.Newline, syntax.SymbolLit}
	if got := kinds(toks); !equalKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	toks, rep := scan(t, "@")
	if toks[0].Kind != syntax.ErrorTok {
		t.Fatalf("kind = %s, want ErrorTok", toks[0].Kind)
	}
	if rep.errorCount() != 1 || rep.diagnostics[0].Code != diag.LexUnexpectedChar {
		t.Fatalf("want one LexUnexpectedChar, got %v", rep.diagnostics)
	}
}

func TestScanLoneHash(t *testing.T) {
	toks, _ := scan(t, "#x")
	if toks[0].Kind != syntax.ErrorTok || toks[0].Text != "#" {
		t.Fatalf("token = %s %q, want ErrorTok \"#\"", toks[0].Kind, toks[0].Text)
	}
}

func TestScanRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"   \t  ",
		"(defn add [a b]\n  ; sum\n  (+ a b))",
		"{:a 1 :b [2 3] :c #{4}}",
		"'(1 2) `x ,y ,@(z) ^:meta val #_ignored",
		"\"str\" \\c 1/2 0x1F 0b10 10n 1.5e10 -42",
		"((((",
		"]]]] @@@ \x00\x01",
		"\"unterminated",
	}
	for _, input := range inputs {
		toks, _ := scan(t, input)
		var sb strings.Builder
		for _, tok := range toks {
			sb.WriteString(tok.Text)
		}
		if sb.String() != input {
			t.Errorf("round-trip failed for %q: got %q", input, sb.String())
		}
		if toks[len(toks)-1].Kind != syntax.EOF {
			t.Errorf("Scan(%q) missing EOF terminator", input)
		}
	}
}

func TestScanClassificationIsContextFree(t *testing.T) {
	// The same literal text must get the same kind regardless of what
	// surrounds it.
	contexts := []string{"%s", "(%s)", "[1 %s 2]", "' %s", "{:k %s}"}
	literals := map[string]syntax.Kind{
		"123":   syntax.LongLit,
		"1/2":   syntax.RatioLit,
		"0x1F":  syntax.HexLit,
		"1.5":   syntax.DoubleLit,
		"10n":   syntax.BigNumLit,
		":kw":   syntax.KeywordLit,
		"sym":   syntax.SymbolLit,
		`\a`:    syntax.CharLit,
		`"s"`:   syntax.StringLit,
		"0b101": syntax.BinLit,
	}
	for lit, want := range literals {
		for _, ctx := range contexts {
			input := strings.Replace(ctx, "%s", lit, 1)
			toks, _ := scan(t, input)
			found := false
			for _, tok := range toks {
				if tok.Text == lit && tok.Kind == want {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("literal %q in context %q did not lex as %s: %v", lit, input, want, kinds(toks))
			}
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ctn", []byte("a b")))
	lx := lexer.New(file, lexer.Options{})

	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1 != p2 {
		t.Fatalf("Peek not idempotent: %v vs %v", p1, p2)
	}
	if got := lx.Next(); got != p1 {
		t.Fatalf("Next = %v, want peeked %v", got, p1)
	}
}
