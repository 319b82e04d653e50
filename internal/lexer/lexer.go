package lexer

import (
	"citrine/internal/diag"
	"citrine/internal/source"
	"citrine/internal/syntax"
	"citrine/internal/token"
)

// Lexer converts a source buffer into an ordered token stream. It is a
// single left-to-right byte scan with one byte of lookahead; it never
// fails, unrecognized input becomes error tokens, and it holds no state
// beyond the cursor, so every call site gets an independent, reentrant
// instance.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Scan tokenizes the whole file. The result always ends with a zero-width
// EOF token; concatenating the texts of all tokens before it reproduces
// the buffer exactly.
func Scan(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, 64)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == syntax.EOF {
			return toks
		}
	}
}

// Next returns the next token, trivia included. After EOF it keeps
// returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{Kind: syntax.EOF, Span: lx.emptySpan()}
	}

	b := lx.cursor.Peek()
	switch {
	case b == ' ' || b == '\t' || b == '\r':
		return lx.scanWhitespace()
	case b == '\n':
		return lx.scanNewline()
	case b == ';':
		return lx.scanComment()
	}

	switch b {
	case '(':
		return lx.fixed(syntax.LParen, 1)
	case ')':
		return lx.fixed(syntax.RParen, 1)
	case '[':
		return lx.fixed(syntax.LBracket, 1)
	case ']':
		return lx.fixed(syntax.RBracket, 1)
	case '{':
		return lx.fixed(syntax.LBrace, 1)
	case '}':
		return lx.fixed(syntax.RBrace, 1)
	case '\'':
		return lx.fixed(syntax.QuoteTok, 1)
	case '`':
		return lx.fixed(syntax.BacktickTok, 1)
	case '^':
		return lx.fixed(syntax.CaretTok, 1)
	case ',':
		if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '@' {
			return lx.fixed(syntax.CommaAtTok, 2)
		}
		return lx.fixed(syntax.CommaTok, 1)
	case '#':
		// One byte of lookahead settles every '#' form: '#{' opens a
		// set, '#_' is the discard marker, anything else is an error.
		if _, b1, ok := lx.cursor.Peek2(); ok {
			switch b1 {
			case '{':
				return lx.fixed(syntax.HashLBrace, 2)
			case '_':
				return lx.fixed(syntax.DiscardTok, 2)
			}
		}
		return lx.errorToken()
	case '"':
		return lx.scanString()
	case '\\':
		return lx.scanChar()
	case ':':
		return lx.scanKeyword()
	}

	if lx.isNumberStart() {
		return lx.scanNumber()
	}
	if isSymbolStart(b) {
		return lx.scanSymbol()
	}
	return lx.errorToken()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// fixed emits a token of n bytes starting at the cursor.
func (lx *Lexer) fixed(kind syntax.Kind, n int) token.Token {
	start := lx.cursor.Mark()
	for i := 0; i < n; i++ {
		lx.cursor.Bump()
	}
	return lx.make(kind, start)
}

// make builds a token from a mark to the current position.
func (lx *Lexer) make(kind syntax.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// errorToken consumes one whole rune as an error token, guaranteeing
// progress on arbitrary input.
func (lx *Lexer) errorToken() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	tok := lx.make(syntax.ErrorTok, start)
	lx.report(diag.LexUnexpectedChar, tok.Span, "unexpected character "+quoteByte(tok.Text))
	return tok
}

func quoteByte(s string) string {
	if s == "" {
		return `""`
	}
	return "'" + s + "'"
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
