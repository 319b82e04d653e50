package lexer

import (
	"bytes"

	"citrine/internal/diag"
	"citrine/internal/syntax"
	"citrine/internal/token"
)

// namedChars are matched by prefix, longest spelling wins over the
// generic one-character fallback. Order matters only for documentation;
// no two entries share a first letter.
var namedChars = [][]byte{
	[]byte("newline"),
	[]byte("return"),
	[]byte("space"),
	[]byte("tab"),
	[]byte("formfeed"),
	[]byte("backspace"),
}

// scanChar consumes a character literal. Resolution order: a named
// character, then a `\uXXXX` unicode escape, then a backslash followed
// by any single character. Only a backslash at end of input is an error.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // backslash

	if lx.cursor.EOF() {
		tok := lx.make(syntax.ErrorTok, start)
		lx.report(diag.LexUnexpectedChar, tok.Span, "lone backslash at end of input")
		return tok
	}

	rest := lx.file.Content[lx.cursor.Off:]
	for _, name := range namedChars {
		if bytes.HasPrefix(rest, name) {
			for range name {
				lx.cursor.Bump()
			}
			return lx.make(syntax.CharLit, start)
		}
	}

	if lx.cursor.Peek() == 'u' {
		if lx.tryUnicodeEscape() {
			return lx.make(syntax.CharLit, start)
		}
	}

	lx.bumpRune()
	return lx.make(syntax.CharLit, start)
}

// tryUnicodeEscape consumes `uXXXX` with exactly four hex digits; on
// failure the cursor is left where it was.
func (lx *Lexer) tryUnicodeEscape() bool {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // 'u'
	for i := 0; i < 4; i++ {
		if lx.cursor.EOF() || !isHex(lx.cursor.Peek()) {
			lx.cursor.Reset(m)
			return false
		}
		lx.cursor.Bump()
	}
	return true
}
