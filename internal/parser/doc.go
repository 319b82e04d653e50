// Package parser builds a lossless concrete syntax tree from tokens.
//
// The parser is total: malformed input produces error nodes inside a
// valid tree rather than a failure, and every input token is placed
// somewhere in the tree. Structural problems are additionally reported
// through the diag reporter passed in Options.
package parser
