package lexer

import (
	"citrine/internal/syntax"
	"citrine/internal/token"
)

// scanSymbol consumes a symbol. The spellings Infinity, NaN and their
// negated forms are reclassified as double literals; they share the
// symbol character class, so catching them here keeps the numeric
// scanner byte-driven.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isSymbolChar(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.make(syntax.SymbolLit, start)
	switch tok.Text {
	case "Infinity", "-Infinity", "NaN", "-NaN":
		tok.Kind = syntax.DoubleLit
	}
	return tok
}

// scanKeyword consumes ':' and the identifier characters after it. A
// bare ':' is a valid, empty-named keyword, and digits may follow the
// colon directly.
func (lx *Lexer) scanKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // ':'
	for !lx.cursor.EOF() && isSymbolChar(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.make(syntax.KeywordLit, start)
}
