// Package token defines the Token value produced by the lexer. Kinds live
// in package syntax: one closed tag set is shared by the lexer, the parser,
// and the tree, so a token's kind and a leaf's kind are the same value.
package token
