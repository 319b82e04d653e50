// Package diag carries diagnostics between phases and the tooling layer.
//
// The lexer and parser are total functions: they never fail and never
// throw. Malformed input surfaces twice: as error kinds
// embedded in the token stream and tree (for consumers that render or
// traverse), and as Diagnostics reported here (for consumers that print).
// A Bag bounds how many diagnostics one run may accumulate.
package diag
