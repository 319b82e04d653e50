package lexer

import (
	"citrine/internal/syntax"
	"citrine/internal/token"
)

// scanNumber classifies a numeric literal. The grammar overlaps on
// purpose, so the forms are tried strictly in order: ratio, hex, binary,
// bignum, double, and finally long as the fallback. Each matcher is
// speculative; it either consumes its whole form or resets the cursor
// to where it started.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.tryRatio() {
		return lx.make(syntax.RatioLit, start)
	}
	if lx.tryHex() {
		return lx.make(syntax.HexLit, start)
	}
	if lx.tryBinary() {
		return lx.make(syntax.BinLit, start)
	}
	if lx.tryBigNum() {
		return lx.make(syntax.BigNumLit, start)
	}
	if lx.tryDouble() {
		return lx.make(syntax.DoubleLit, start)
	}
	lx.scanLong()
	return lx.make(syntax.LongLit, start)
}

// eatDigits consumes a run of decimal digits and reports whether at
// least one was consumed.
func (lx *Lexer) eatDigits() bool {
	n := 0
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	return n > 0
}

// tryRatio matches `-?digits/-?digits`.
func (lx *Lexer) tryRatio() bool {
	m := lx.cursor.Mark()
	lx.cursor.Eat('-')
	if !lx.eatDigits() || !lx.cursor.Eat('/') {
		lx.cursor.Reset(m)
		return false
	}
	lx.cursor.Eat('-')
	if !lx.eatDigits() {
		lx.cursor.Reset(m)
		return false
	}
	return true
}

// tryHex matches `0x`/`0X` followed by one or more hex digits. No sign.
func (lx *Lexer) tryHex() bool {
	m := lx.cursor.Mark()
	if !lx.cursor.Eat('0') {
		return false
	}
	if !lx.cursor.Eat('x') && !lx.cursor.Eat('X') {
		lx.cursor.Reset(m)
		return false
	}
	n := 0
	for !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	if n == 0 {
		lx.cursor.Reset(m)
		return false
	}
	return true
}

// tryBinary matches `0b`/`0B` followed by one or more binary digits.
func (lx *Lexer) tryBinary() bool {
	m := lx.cursor.Mark()
	if !lx.cursor.Eat('0') {
		return false
	}
	if !lx.cursor.Eat('b') && !lx.cursor.Eat('B') {
		lx.cursor.Reset(m)
		return false
	}
	n := 0
	for b := lx.cursor.Peek(); b == '0' || b == '1'; b = lx.cursor.Peek() {
		lx.cursor.Bump()
		n++
	}
	if n == 0 {
		lx.cursor.Reset(m)
		return false
	}
	return true
}

// tryBigNum matches `-?digits` with an `n`/`N` suffix.
func (lx *Lexer) tryBigNum() bool {
	m := lx.cursor.Mark()
	lx.cursor.Eat('-')
	if !lx.eatDigits() {
		lx.cursor.Reset(m)
		return false
	}
	if !lx.cursor.Eat('n') && !lx.cursor.Eat('N') {
		lx.cursor.Reset(m)
		return false
	}
	return true
}

// tryDouble matches `-?digits*.digits` with an optional signed exponent.
// The dot is mandatory; `123` stays a long.
func (lx *Lexer) tryDouble() bool {
	m := lx.cursor.Mark()
	lx.cursor.Eat('-')
	lx.eatDigits()
	if !lx.cursor.Eat('.') {
		lx.cursor.Reset(m)
		return false
	}
	if !lx.eatDigits() {
		lx.cursor.Reset(m)
		return false
	}

	expo := lx.cursor.Mark()
	if lx.cursor.Eat('e') || lx.cursor.Eat('E') {
		if !lx.cursor.Eat('-') {
			lx.cursor.Eat('+')
		}
		if !lx.eatDigits() {
			// `1.5e` is a double followed by a symbol, not an error.
			lx.cursor.Reset(expo)
		}
	}
	return true
}

// scanLong is the fallback: `-?digits` with an optional `l`/`L` suffix.
// The dispatch loop guarantees at least one digit is present.
func (lx *Lexer) scanLong() {
	lx.cursor.Eat('-')
	lx.eatDigits()
	if !lx.cursor.Eat('l') {
		lx.cursor.Eat('L')
	}
}
