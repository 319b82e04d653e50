package parser

import (
	"fmt"

	"citrine/internal/diag"
	"citrine/internal/syntax"
)

// parseForms consumes forms until end of input or a closing delimiter
// owned by an enclosing scope.
func (p *Parser) parseForms() {
	for {
		p.bumpTrivia()
		if p.peek().Kind == syntax.EOF || p.atEnclosingCloser() {
			return
		}
		p.parseForm()
	}
}

// parseForm dispatches on the next significant token. It always consumes
// at least one token, which is what keeps recovery local: a bad token
// becomes a single-token error node and the enclosing loop continues.
func (p *Parser) parseForm() {
	p.bumpTrivia()
	tok := p.peek()

	switch k := tok.Kind; {
	case k.IsLiteral():
		p.bump()

	case k.IsOpenDelim():
		p.parseCollection()

	case k == syntax.QuoteTok:
		p.parseWrapped(syntax.Quote)
	case k == syntax.BacktickTok:
		p.parseWrapped(syntax.Backtick)
	case k == syntax.CommaTok:
		p.parseWrapped(syntax.Unquote)
	case k == syntax.CommaAtTok:
		p.parseSplice()
	case k == syntax.CaretTok:
		p.parseTag()
	case k == syntax.DiscardTok:
		p.parseWrapped(syntax.Discard)

	case k.IsCloseDelim():
		p.builder.StartNode(syntax.ErrorNode)
		p.report(diag.SynUnexpectedCloser, tok.Span,
			fmt.Sprintf("unexpected closing delimiter %q", tok.Text))
		p.bump()
		p.builder.FinishNode()

	default:
		// Lexical error tokens land here; the lexer already reported
		// them, the parser just keeps them in the tree.
		p.builder.StartNode(syntax.ErrorNode)
		p.bump()
		p.builder.FinishNode()
	}
}

// parseCollection handles (), [], {} and #{}. The opening delimiter
// decides the node kind; a missing closer downgrades the node to an
// error node covering everything consumed.
func (p *Parser) parseCollection() {
	open := p.peek()
	closer := open.Kind.Closer()

	p.builder.StartNode(open.Kind.CollectionNode())
	p.bump()
	p.closers = append(p.closers, closer)
	p.parseForms()
	p.closers = p.closers[:len(p.closers)-1]

	if p.at(closer) {
		p.bump()
	} else {
		p.report(unclosedCode(open.Kind), p.diagSpan(),
			fmt.Sprintf("missing %q to close %q opened here", closerText(closer), open.Text))
		p.builder.MarkError()
	}
	p.builder.FinishNode()
}

func unclosedCode(open syntax.Kind) diag.Code {
	switch open {
	case syntax.LParen:
		return diag.SynUnclosedList
	case syntax.LBracket:
		return diag.SynUnclosedVector
	case syntax.LBrace:
		return diag.SynUnclosedMap
	default:
		return diag.SynUnclosedSet
	}
}

func closerText(k syntax.Kind) string {
	switch k {
	case syntax.RParen:
		return ")"
	case syntax.RBracket:
		return "]"
	default:
		return "}"
	}
}

// parseWrapped parses a one-operand reader macro: quote, backtick,
// unquote and discard all share the shape. A missing operand leaves an
// error node containing just the marker.
func (p *Parser) parseWrapped(node syntax.Kind) {
	p.builder.StartNode(node)
	marker := p.bump()

	if !p.operandAvailable() {
		p.report(diag.SynMissingOperand, p.diagSpan(),
			fmt.Sprintf("%q expects a form after it", marker.Text))
		p.builder.MarkError()
		p.builder.FinishNode()
		return
	}
	p.parseForm()
	p.builder.FinishNode()
}

// parseSplice parses `,@`. The operand must be a list; anything else is
// still consumed but the node is downgraded to an error node.
func (p *Parser) parseSplice() {
	p.builder.StartNode(syntax.UnquoteSplice)
	marker := p.bump()

	if !p.operandAvailable() {
		p.report(diag.SynMissingOperand, p.diagSpan(),
			fmt.Sprintf("%q expects a form after it", marker.Text))
		p.builder.MarkError()
		p.builder.FinishNode()
		return
	}
	if !p.at(syntax.LParen) {
		p.report(diag.SynSpliceNotList, p.peek().Span,
			"unquote-splicing expects a list")
		p.builder.MarkError()
	}
	p.parseForm()
	p.builder.FinishNode()
}

// parseTag parses `^tag value`, two operands. Either operand missing
// downgrades the node, keeping whatever was parsed.
func (p *Parser) parseTag() {
	p.builder.StartNode(syntax.TagForm)
	p.bump()

	if !p.operandAvailable() {
		p.report(diag.SynMissingOperand, p.diagSpan(),
			`"^" expects a tag form after it`)
		p.builder.MarkError()
		p.builder.FinishNode()
		return
	}
	p.parseForm()

	if !p.operandAvailable() {
		p.report(diag.SynMissingTagValue, p.diagSpan(),
			`"^" expects a value form after the tag`)
		p.builder.MarkError()
		p.builder.FinishNode()
		return
	}
	p.parseForm()
	p.builder.FinishNode()
}

// operandAvailable reports whether a reader-macro operand can start at
// the cursor: not EOF and not a closer the enclosing scope owns.
func (p *Parser) operandAvailable() bool {
	p.bumpTrivia()
	if p.peek().Kind == syntax.EOF {
		return false
	}
	return !p.atEnclosingCloser()
}
