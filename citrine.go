// Package citrine is the public surface of the Citrine language front
// end: a lossless lexer and parser producing a concrete syntax tree in
// which every byte of the input is preserved.
//
// Tokenize and Parse are pure and total: any input, including malformed
// bytes, yields a token stream and a tree. Errors surface as error
// tokens and error nodes inside the result, never as failures.
package citrine

import (
	"citrine/internal/lexer"
	"citrine/internal/parser"
	"citrine/internal/reader"
	"citrine/internal/source"
	"citrine/internal/syntax"
	"citrine/internal/token"
)

// Re-exported core types. The internal packages carry the full API;
// these aliases cover the common read-only surface.
type (
	Token = token.Token
	Kind  = syntax.Kind
	Tree  = syntax.Tree
	Node  = syntax.Node
	Leaf  = syntax.Leaf
	Value = reader.Value
)

// Tokenize converts text into its full token sequence, trivia included,
// terminated by an EOF token. Concatenating the texts of all tokens
// before EOF reproduces text exactly.
func Tokenize(text string) []Token {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<input>", []byte(text)))
	return lexer.Scan(file, lexer.Options{})
}

// Parse builds the lossless syntax tree for text. The tree's full text
// equals the input byte-for-byte; malformed regions appear as error
// nodes. Use Tree.HasErrors to detect them.
func Parse(text string) *Tree {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<input>", []byte(text)))
	return parser.ParseFile(file, parser.Options{}).Tree
}

// Read parses text and converts it to the data values it denotes,
// dropping malformed regions and discarded forms.
func Read(text string) []Value {
	return reader.ReadTree(Parse(text), reader.Options{})
}
