package syntax

// Kind is the single closed tag set shared by the lexer, the parser, and the
// tree: every token variant and every node variant lives here, and all
// dispatch happens on Kind values rather than on Go types.
type Kind uint16

const (
	// ErrorTok is a token covering input the lexer could not classify.
	ErrorTok Kind = iota
	// EOF marks the end of the source buffer. It is zero-width and is the
	// only token that never appears in the tree.
	EOF

	// Delimiters.

	LParen     // (
	RParen     // )
	LBracket   // [
	RBracket   // ]
	LBrace     // {
	RBrace     // }
	HashLBrace // #{ (set literal opener)

	// Literals.

	StringLit // "hello"
	LongLit   // 42, -7, 42L
	DoubleLit // 1.5, 1.5e10, Infinity, NaN
	HexLit    // 0x1F
	BinLit    // 0b1010
	BigNumLit // 10n
	RatioLit  // 1/2
	CharLit   // \a, \newline, A
	KeywordLit
	SymbolLit

	// Reader-macro markers.

	QuoteTok    // '
	BacktickTok // `
	CommaTok    // ,
	CommaAtTok  // ,@
	CaretTok    // ^
	DiscardTok  // #_

	// Trivia.

	Whitespace
	Newline
	Comment // ; to end of line

	// Nodes.

	Root
	List
	Vector
	MapForm
	SetForm
	Quote
	Backtick
	Unquote
	UnquoteSplice
	TagForm
	Discard
	ErrorNode
)

var kindNames = [...]string{
	ErrorTok:      "ErrorTok",
	EOF:           "EOF",
	LParen:        "LParen",
	RParen:        "RParen",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	HashLBrace:    "HashLBrace",
	StringLit:     "StringLit",
	LongLit:       "LongLit",
	DoubleLit:     "DoubleLit",
	HexLit:        "HexLit",
	BinLit:        "BinLit",
	BigNumLit:     "BigNumLit",
	RatioLit:      "RatioLit",
	CharLit:       "CharLit",
	KeywordLit:    "KeywordLit",
	SymbolLit:     "SymbolLit",
	QuoteTok:      "QuoteTok",
	BacktickTok:   "BacktickTok",
	CommaTok:      "CommaTok",
	CommaAtTok:    "CommaAtTok",
	CaretTok:      "CaretTok",
	DiscardTok:    "DiscardTok",
	Whitespace:    "Whitespace",
	Newline:       "Newline",
	Comment:       "Comment",
	Root:          "Root",
	List:          "List",
	Vector:        "Vector",
	MapForm:       "MapForm",
	SetForm:       "SetForm",
	Quote:         "Quote",
	Backtick:      "Backtick",
	Unquote:       "Unquote",
	UnquoteSplice: "UnquoteSplice",
	TagForm:       "TagForm",
	Discard:       "Discard",
	ErrorNode:     "ErrorNode",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsToken reports whether k names a leaf token rather than a tree node.
func (k Kind) IsToken() bool {
	return k < Root
}

// IsNode reports whether k names a tree node.
func (k Kind) IsNode() bool {
	return k >= Root
}

// IsTrivia reports whether k is whitespace, a newline run, or a comment.
// Trivia are ordinary tokens: the grammar skips them, the tree keeps them.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, Newline, Comment:
		return true
	default:
		return false
	}
}

// IsNumber reports whether k is one of the numeric literal kinds.
func (k Kind) IsNumber() bool {
	switch k {
	case LongLit, DoubleLit, HexLit, BinLit, BigNumLit, RatioLit:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether k is a literal leaf the grammar accepts bare,
// without a wrapping node.
func (k Kind) IsLiteral() bool {
	switch k {
	case StringLit, CharLit, KeywordLit, SymbolLit:
		return true
	default:
		return k.IsNumber()
	}
}

// IsOpenDelim reports whether k opens a collection form.
func (k Kind) IsOpenDelim() bool {
	switch k {
	case LParen, LBracket, LBrace, HashLBrace:
		return true
	default:
		return false
	}
}

// IsCloseDelim reports whether k closes a collection form.
func (k Kind) IsCloseDelim() bool {
	switch k {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}

// Closer returns the closing delimiter kind for an opener.
// Both map and set literals close with '}'.
func (k Kind) Closer() Kind {
	switch k {
	case LParen:
		return RParen
	case LBracket:
		return RBracket
	case LBrace, HashLBrace:
		return RBrace
	default:
		return ErrorTok
	}
}

// CollectionNode returns the node kind an opening delimiter introduces.
func (k Kind) CollectionNode() Kind {
	switch k {
	case LParen:
		return List
	case LBracket:
		return Vector
	case LBrace:
		return MapForm
	case HashLBrace:
		return SetForm
	default:
		return ErrorNode
	}
}
