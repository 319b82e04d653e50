// Package reader turns a parsed syntax tree into data values.
//
// Reading is the first semantic layer on top of the lossless tree: it
// decodes literals, pairs up map entries and expands reader macros into
// their list forms. It never evaluates anything.
package reader
