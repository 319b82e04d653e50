package reader

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Value is a datum produced by reading a syntax tree. The set is closed;
// every implementation lives in this package.
type Value interface {
	// String renders the value back in reader syntax.
	String() string
	value()
}

type (
	// Long is a 64-bit integer literal, the default numeric type.
	Long int64
	// Double is a floating-point literal, including Infinity and NaN.
	Double float64
	// BigNum is an arbitrary-precision integer (the `n` suffix).
	BigNum struct{ Int *big.Int }
	// Ratio is an exact rational (the `a/b` form).
	Ratio struct{ Rat *big.Rat }
	// Str is a string literal with escapes resolved.
	Str string
	// Char is a single character literal.
	Char rune
	// Keyword is a keyword without its leading colon.
	Keyword string
	// Symbol is an identifier.
	Symbol string
	// List is an ordered sequence read from parentheses (and from the
	// reader macros, which expand to lists).
	List []Value
	// Vector is an ordered sequence read from square brackets.
	Vector []Value
	// Set keeps its elements in source order; uniqueness is a semantic
	// concern left to an evaluator.
	Set []Value
	// Map is an ordered pair sequence; key uniqueness and lookup
	// strategy are an evaluator's concern.
	Map []Pair
)

// Pair is one key/value entry of a map literal.
type Pair struct {
	Key Value
	Val Value
}

func (Long) value()    {}
func (Double) value()  {}
func (BigNum) value()  {}
func (Ratio) value()   {}
func (Str) value()     {}
func (Char) value()    {}
func (Keyword) value() {}
func (Symbol) value()  {}
func (List) value()    {}
func (Vector) value()  {}
func (Set) value()     {}
func (Map) value()     {}

func (v Long) String() string { return strconv.FormatInt(int64(v), 10) }

func (v Double) String() string {
	f := float64(v)
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (v BigNum) String() string { return v.Int.String() + "n" }

func (v Ratio) String() string {
	return v.Rat.Num().String() + "/" + v.Rat.Denom().String()
}

func (v Str) String() string { return strconv.Quote(string(v)) }

func (v Char) String() string {
	switch v {
	case '\n':
		return `\newline`
	case '\r':
		return `\return`
	case ' ':
		return `\space`
	case '\t':
		return `\tab`
	case '\f':
		return `\formfeed`
	case '\b':
		return `\backspace`
	}
	return `\` + string(rune(v))
}

func (v Keyword) String() string { return ":" + string(v) }
func (v Symbol) String() string  { return string(v) }

func (v List) String() string   { return joinValues("(", []Value(v), ")") }
func (v Vector) String() string { return joinValues("[", []Value(v), "]") }
func (v Set) String() string    { return joinValues("#{", []Value(v), "}") }

func (v Map) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Key.String())
		sb.WriteByte(' ')
		sb.WriteString(p.Val.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func joinValues(open string, vs []Value, closing string) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.String())
	}
	sb.WriteString(closing)
	return sb.String()
}
