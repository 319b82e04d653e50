// Package lexer turns source text into tokens.
//
// Tokenization is total: every finite input produces a token stream
// ending in EOF, with unrecognized bytes surfacing as error tokens and
// as reported diagnostics. Trivia (whitespace, newlines, comments) are
// emitted as ordinary tokens so downstream consumers can reconstruct
// the input byte for byte.
package lexer
