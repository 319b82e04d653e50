package lexer

import (
	"citrine/internal/diag"
	"citrine/internal/source"
)

type Options struct {
	// Reporter may be nil: lexical errors still surface as error tokens,
	// only the side-channel diagnostics are dropped.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
