package token

import (
	"fmt"

	"citrine/internal/source"
	"citrine/internal/syntax"
)

// Token represents a single source token with its exact span. Trivia
// (whitespace, newline runs, comments) are ordinary tokens: grammar rules
// skip them, but they stay in the stream so the original text is always
// recoverable by concatenating token texts in order.
type Token struct {
	Kind syntax.Kind
	Span source.Span
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d..%d %q", t.Kind, t.Span.Start, t.Span.End, t.Text)
}

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool { return t.Kind == syntax.EOF }

// IsTrivia reports whether the token carries no grammatical meaning.
func (t Token) IsTrivia() bool { return t.Kind.IsTrivia() }

// IsLiteral reports whether the token is a literal the grammar accepts as
// a bare form: a string, number, character, keyword, or symbol.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsNumber reports whether the token is one of the numeric literal kinds.
func (t Token) IsNumber() bool { return t.Kind.IsNumber() }

// IsOpenDelim reports whether the token opens a collection form.
func (t Token) IsOpenDelim() bool { return t.Kind.IsOpenDelim() }

// IsCloseDelim reports whether the token closes a collection form.
func (t Token) IsCloseDelim() bool { return t.Kind.IsCloseDelim() }
