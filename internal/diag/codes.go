package diag

import (
	"fmt"
)

// Code identifies one diagnostic condition. The numeric space mirrors the
// phase that raises it: lexical 1000-1999, structural 2000-2999, reader
// 4000-4999.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexUnexpectedChar     Code = 1001
	LexUnterminatedString Code = 1002

	// Structural. The parser never aborts: each of these accompanies an
	// error node or error token embedded in the tree.
	SynUnexpectedCloser Code = 2001
	SynUnclosedList     Code = 2002
	SynUnclosedVector   Code = 2003
	SynUnclosedMap      Code = 2004
	SynUnclosedSet      Code = 2005
	SynMissingOperand   Code = 2006
	SynSpliceNotList    Code = 2007
	SynMissingTagValue  Code = 2008

	// Reader (CST to data values).
	ReadSyntax    Code = 4001
	ReadOddMap    Code = 4002
	ReadBadNumber Code = 4003
	ReadBadChar   Code = 4004
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexUnexpectedChar:     "unexpected character",
	LexUnterminatedString: "unterminated string literal",

	SynUnexpectedCloser: "unexpected closing delimiter",
	SynUnclosedList:     "unclosed list",
	SynUnclosedVector:   "unclosed vector",
	SynUnclosedMap:      "unclosed map",
	SynUnclosedSet:      "unclosed set",
	SynMissingOperand:   "reader macro is missing its operand",
	SynSpliceNotList:    "unquote-splicing operand is not a list",
	SynMissingTagValue:  "tag is missing its value form",

	ReadSyntax:    "tree contains syntax errors",
	ReadOddMap:    "map literal has an odd number of forms",
	ReadBadNumber: "malformed numeric literal",
	ReadBadChar:   "malformed character literal",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("READ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
