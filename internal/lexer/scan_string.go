package lexer

import (
	"citrine/internal/diag"
	"citrine/internal/syntax"
	"citrine/internal/token"
)

// scanString consumes a double-quoted string. A backslash and the byte
// after it form one escape pair consumed atomically, so `\"` never
// terminates the literal. Strings may span multiple lines. An
// unterminated string becomes an error token running to end of input.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.bumpRune()
			}
		case '"':
			lx.cursor.Bump()
			return lx.make(syntax.StringLit, start)
		default:
			lx.bumpRune()
		}
	}

	tok := lx.make(syntax.ErrorTok, start)
	lx.report(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}
