package parser

import (
	"slices"

	"citrine/internal/diag"
	"citrine/internal/lexer"
	"citrine/internal/source"
	"citrine/internal/syntax"
	"citrine/internal/token"
)

type Options struct {
	// Reporter receives structural diagnostics; may be nil.
	Reporter diag.Reporter
	// MaxErrors caps reported errors, 0 means unlimited. The tree is
	// still completed past the cap, only the reporting stops.
	MaxErrors     uint
	CurrentErrors uint
	// Intern enables subtree deduplication in the builder.
	Intern bool
}

// Enough reports whether the error cap has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree *syntax.Tree
	Bag  *diag.Bag
}

// Parser holds per-file parse state. Recursive descent over the
// significant tokens; trivia are pushed into whichever node is open when
// they are encountered, so every input token ends up in the tree.
type Parser struct {
	toks    []token.Token
	pos     int
	builder *syntax.Builder
	opts    Options
	// closers are the closing delimiters of the open enclosing scopes,
	// innermost last. A closer in this stack returns control to its
	// scope instead of being consumed as an error.
	closers  []syntax.Kind
	lastSpan source.Span
}

// ParseFile tokenizes and parses one file. Total: any input yields a
// tree whose leaf texts concatenate back to the input.
func ParseFile(f *source.File, opts Options) Result {
	toks := lexer.Scan(f, lexer.Options{Reporter: opts.Reporter})
	return ParseTokens(f, toks, opts)
}

// ParseTokens parses an already-lexed, EOF-terminated token stream.
func ParseTokens(f *source.File, toks []token.Token, opts Options) Result {
	p := Parser{
		toks: toks,
		builder: syntax.NewBuilder(syntax.BuilderOpts{
			File:   f.ID,
			Intern: opts.Intern,
		}),
		opts: opts,
	}

	p.builder.StartNode(syntax.Root)
	p.parseForms()
	// A stray closer at top level is consumed by parseForm as an error
	// node, so the only way parseForms returns here is EOF.
	p.builder.FinishNode()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Tree: p.builder.Finish(), Bag: bag}
}

// peek returns the current token without consuming it. The stream is
// EOF-terminated, so peek is always valid.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: syntax.EOF, Span: p.lastSpan}
	}
	return p.toks[p.pos]
}

// bump pushes the current token into the open node and advances.
func (p *Parser) bump() token.Token {
	tok := p.peek()
	if tok.Kind == syntax.EOF {
		return tok
	}
	p.builder.Token(tok.Kind, tok.Text)
	p.lastSpan = tok.Span
	p.pos++
	return tok
}

// bumpTrivia flushes pending trivia into the open node, leaving the
// cursor on the next significant token.
func (p *Parser) bumpTrivia() {
	for p.peek().Kind.IsTrivia() {
		p.bump()
	}
}

// at reports whether the next significant token has kind k. Trivia in
// front of it are flushed into the open node as a side effect.
func (p *Parser) at(k syntax.Kind) bool {
	p.bumpTrivia()
	return p.peek().Kind == k
}

// atEnclosingCloser reports whether the next significant token closes one
// of the open enclosing scopes.
func (p *Parser) atEnclosingCloser() bool {
	p.bumpTrivia()
	k := p.peek().Kind
	return k.IsCloseDelim() && slices.Contains(p.closers, k)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil && !p.opts.Enough() {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
	p.opts.CurrentErrors++
}

// diagSpan is the span used when the offending token is the zero-width
// EOF: point just past the last consumed token instead.
func (p *Parser) diagSpan() source.Span {
	tok := p.peek()
	if tok.Kind == syntax.EOF {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return tok.Span
}
