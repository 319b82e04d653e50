package reader

import (
	"fmt"

	"citrine/internal/diag"
	"citrine/internal/source"
	"citrine/internal/syntax"
)

type Options struct {
	// Reporter receives read-level diagnostics; may be nil.
	Reporter diag.Reporter
}

// walker holds traversal state for one tree.
type walker struct {
	opts Options
}

// ReadTree converts a parsed tree into the top-level values it denotes.
// Error regions and discarded forms contribute no value; problems are
// reported through the reporter and the remaining forms still come back.
func ReadTree(t *syntax.Tree, opts Options) []Value {
	r := walker{opts: opts}
	root := t.Root()
	out := make([]Value, 0, root.NumChildren())
	for _, el := range root.Children() {
		if v, ok := r.readElement(el); ok {
			out = append(out, v)
		}
	}
	return out
}

func (r *walker) report(code diag.Code, sp source.Span, msg string) {
	if r.opts.Reporter != nil {
		r.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}

// readElement produces the value of one child element. Trivia, delimiter
// and marker tokens produce nothing.
func (r *walker) readElement(el syntax.Element) (Value, bool) {
	if el.IsNode() {
		return r.readNode(el.Node())
	}
	return r.readLeaf(el.Leaf())
}

func (r *walker) readLeaf(l syntax.Leaf) (Value, bool) {
	var v Value
	var err error
	switch l.Kind {
	case syntax.LongLit:
		v, err = decodeLong(l.Text)
	case syntax.HexLit:
		v, err = decodeHex(l.Text)
	case syntax.BinLit:
		v, err = decodeBinary(l.Text)
	case syntax.BigNumLit:
		v, err = decodeBigNum(l.Text)
	case syntax.RatioLit:
		v, err = decodeRatio(l.Text)
	case syntax.DoubleLit:
		v, err = decodeDouble(l.Text)
	case syntax.StringLit:
		v, err = decodeString(l.Text)
	case syntax.CharLit:
		v, err = decodeChar(l.Text)
	case syntax.KeywordLit:
		return Keyword(l.Text[1:]), true
	case syntax.SymbolLit:
		return Symbol(l.Text), true
	case syntax.ErrorTok:
		r.report(diag.ReadSyntax, l.Span(), fmt.Sprintf("cannot read %q", l.Text))
		return nil, false
	default:
		// Trivia, delimiters and reader-macro markers.
		return nil, false
	}

	if err != nil {
		code := diag.ReadBadNumber
		switch l.Kind {
		case syntax.StringLit:
			code = diag.ReadSyntax
		case syntax.CharLit:
			code = diag.ReadBadChar
		}
		r.report(code, l.Span(), err.Error())
		return nil, false
	}
	return v, true
}

func (r *walker) readNode(n *syntax.Node) (Value, bool) {
	switch n.Kind() {
	case syntax.List:
		return List(r.readChildren(n)), true
	case syntax.Vector:
		return Vector(r.readChildren(n)), true
	case syntax.SetForm:
		return Set(r.readChildren(n)), true
	case syntax.MapForm:
		return r.readMap(n)
	case syntax.Quote:
		return r.expand(n, "quote"), true
	case syntax.Backtick:
		return r.expand(n, "quasiquote"), true
	case syntax.Unquote:
		return r.expand(n, "unquote"), true
	case syntax.UnquoteSplice:
		return r.expand(n, "unquote-splicing"), true
	case syntax.TagForm:
		return r.expand(n, "with-tag"), true
	case syntax.Discard:
		// The form is still read so nested problems get reported, but
		// it contributes no value.
		r.readChildren(n)
		return nil, false
	case syntax.ErrorNode:
		r.report(diag.ReadSyntax, n.Span(), "cannot read malformed form")
		return nil, false
	default:
		vs := r.readChildren(n)
		if len(vs) == 1 {
			return vs[0], true
		}
		return List(vs), true
	}
}

func (r *walker) readChildren(n *syntax.Node) []Value {
	out := make([]Value, 0, n.NumChildren())
	for _, el := range n.Children() {
		if v, ok := r.readElement(el); ok {
			out = append(out, v)
		}
	}
	return out
}

// readMap pairs up the forms of a map literal. The grammar accepts any
// arity; a dangling key is a read error and is dropped.
func (r *walker) readMap(n *syntax.Node) (Value, bool) {
	vs := r.readChildren(n)
	m := make(Map, 0, len(vs)/2)
	for i := 0; i+1 < len(vs); i += 2 {
		m = append(m, Pair{Key: vs[i], Val: vs[i+1]})
	}
	if len(vs)%2 != 0 {
		r.report(diag.ReadOddMap, n.Span(),
			"map literal must have an even number of forms")
	}
	return m, true
}

// expand rewrites a reader-macro node into its list form, e.g. 'x into
// (quote x).
func (r *walker) expand(n *syntax.Node, sym string) Value {
	vs := r.readChildren(n)
	out := make(List, 0, len(vs)+1)
	out = append(out, Symbol(sym))
	out = append(out, vs...)
	return out
}
