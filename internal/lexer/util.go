package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

const utf8RuneSelf = 0x80

// ===== Rune access on top of Cursor =====

// peekRune decodes the rune at the cursor without consuming it.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

// bumpRune consumes one whole rune so multi-byte input is never split
// across tokens.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Classifiers =====

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// isSymbolStart matches the first character of a symbol (and of keyword
// bodies): ASCII letters plus the symbol punctuation set. Digits are
// allowed only as continuation characters.
func isSymbolStart(b byte) bool {
	if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') {
		return true
	}
	switch b {
	case '!', '?', '-', '+', '<', '>', '=', '$', '*', '%', '_', '/':
		return true
	}
	return false
}

func isSymbolChar(b byte) bool {
	return isSymbolStart(b) || isDec(b)
}

// isNumberStart decides whether the dispatch loop should enter the numeric
// scanner: a digit, a leading dot with a digit after it, or a minus sign
// followed by either of those. Classification depends only on these bytes,
// never on surrounding context.
func (lx *Lexer) isNumberStart() bool {
	_, b1, ok2 := lx.cursor.Peek2()
	switch b := lx.cursor.Peek(); {
	case isDec(b):
		return true
	case b == '.':
		return ok2 && isDec(b1)
	case b == '-':
		if !ok2 {
			return false
		}
		if isDec(b1) {
			return true
		}
		if b1 == '.' && lx.cursor.Off+2 < lx.cursor.Limit {
			return isDec(lx.file.Content[lx.cursor.Off+2])
		}
		return false
	default:
		return false
	}
}
