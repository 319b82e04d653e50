package lexer

import (
	"citrine/internal/syntax"
	"citrine/internal/token"
)

// Trivia are real tokens here: whitespace, newlines and comments flow
// through the token stream and into the tree unchanged, which is what
// makes whole-text reconstruction possible.

// scanWhitespace greedily consumes a run of horizontal whitespace.
// '\r' counts as horizontal so a CRLF pair splits into a whitespace
// token followed by a newline token.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r':
			lx.cursor.Bump()
			continue
		}
		break
	}
	return lx.make(syntax.Whitespace, start)
}

// scanNewline consumes a run of '\n' bytes.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	for lx.cursor.Eat('\n') {
	}
	return lx.make(syntax.Newline, start)
}

// scanComment consumes ';' up to but not including the line terminator.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.bumpRune()
	}
	return lx.make(syntax.Comment, start)
}
