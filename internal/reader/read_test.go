package reader_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citrine/internal/diag"
	"citrine/internal/parser"
	"citrine/internal/reader"
	"citrine/internal/source"
)

func read(t *testing.T, input string) ([]reader.Value, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ctn", []byte(input)))
	bag := diag.NewBag(0)
	res := parser.ParseFile(file, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	values := reader.ReadTree(res.Tree, reader.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	return values, bag
}

func readOne(t *testing.T, input string) reader.Value {
	t.Helper()
	values, bag := read(t, input)
	require.False(t, bag.HasErrors(), "diagnostics: %v", bag.Items())
	require.Len(t, values, 1)
	return values[0]
}

func TestReadNumbers(t *testing.T) {
	assert.Equal(t, reader.Long(123), readOne(t, "123"))
	assert.Equal(t, reader.Long(-42), readOne(t, "-42"))
	assert.Equal(t, reader.Long(9), readOne(t, "9L"))
	assert.Equal(t, reader.Long(0x1F), readOne(t, "0x1F"))
	assert.Equal(t, reader.Long(10), readOne(t, "0b1010"))
	assert.Equal(t, reader.Double(1.5e10), readOne(t, "1.5e10"))
	assert.Equal(t, reader.Double(-0.5), readOne(t, "-.5"))

	big10 := readOne(t, "10n")
	require.IsType(t, reader.BigNum{}, big10)
	assert.Equal(t, 0, big10.(reader.BigNum).Int.Cmp(big.NewInt(10)))

	half := readOne(t, "1/2")
	require.IsType(t, reader.Ratio{}, half)
	assert.Equal(t, 0, half.(reader.Ratio).Rat.Cmp(big.NewRat(1, 2)))
}

func TestReadSpecialDoubles(t *testing.T) {
	inf := readOne(t, "Infinity")
	assert.True(t, math.IsInf(float64(inf.(reader.Double)), 1))

	ninf := readOne(t, "-Infinity")
	assert.True(t, math.IsInf(float64(ninf.(reader.Double)), -1))

	nan := readOne(t, "NaN")
	assert.True(t, math.IsNaN(float64(nan.(reader.Double))))
}

func TestReadStrings(t *testing.T) {
	assert.Equal(t, reader.Str("hello"), readOne(t, `"hello"`))
	assert.Equal(t, reader.Str("a\"b"), readOne(t, `"a\"b"`))
	assert.Equal(t, reader.Str("line\nbreak\ttab"), readOne(t, `"line\nbreak\ttab"`))
	assert.Equal(t, reader.Str("é"), readOne(t, `"é"`))
}

func TestReadCharacters(t *testing.T) {
	assert.Equal(t, reader.Char('\n'), readOne(t, `\newline`))
	assert.Equal(t, reader.Char(' '), readOne(t, `\space`))
	assert.Equal(t, reader.Char('é'), readOne(t, `\é`))
	assert.Equal(t, reader.Char('x'), readOne(t, `\x`))
}

func TestReadSymbolsAndKeywords(t *testing.T) {
	assert.Equal(t, reader.Symbol("foo"), readOne(t, "foo"))
	assert.Equal(t, reader.Keyword("name"), readOne(t, ":name"))
	assert.Equal(t, reader.Keyword(""), readOne(t, ":"))
}

func TestReadCollections(t *testing.T) {
	assert.Equal(t,
		reader.List{reader.Long(1), reader.Long(2)},
		readOne(t, "(1 2)"))
	assert.Equal(t,
		reader.Vector{reader.Symbol("a"), reader.Symbol("b")},
		readOne(t, "[a b]"))
	assert.Equal(t,
		reader.Set{reader.Long(1), reader.Long(2)},
		readOne(t, "#{1 2}"))
	assert.Equal(t,
		reader.Map{
			{Key: reader.Keyword("a"), Val: reader.Long(1)},
			{Key: reader.Keyword("b"), Val: reader.Long(2)},
		},
		readOne(t, "{:a 1 :b 2}"))
	assert.Equal(t, reader.List{}, readOne(t, "()"))
}

func TestReadNested(t *testing.T) {
	got := readOne(t, "{:xs [1 2] :ys #{(3)}}")
	want := reader.Map{
		{Key: reader.Keyword("xs"), Val: reader.Vector{reader.Long(1), reader.Long(2)}},
		{Key: reader.Keyword("ys"), Val: reader.Set{reader.List{reader.Long(3)}}},
	}
	assert.Equal(t, want, got)
}

func TestReadMacroExpansion(t *testing.T) {
	assert.Equal(t,
		reader.List{reader.Symbol("quote"), reader.List{reader.Long(1)}},
		readOne(t, "'(1)"))
	assert.Equal(t,
		reader.List{reader.Symbol("quasiquote"), reader.Symbol("x")},
		readOne(t, "`x"))
	assert.Equal(t,
		reader.List{reader.Symbol("unquote"), reader.Symbol("x")},
		readOne(t, ",x"))
	assert.Equal(t,
		reader.List{reader.Symbol("unquote-splicing"), reader.List{reader.Symbol("x")}},
		readOne(t, ",@(x)"))
}

func TestReadDiscardDropsForm(t *testing.T) {
	values, bag := read(t, "#_1 2")
	require.False(t, bag.HasErrors())
	assert.Equal(t, []reader.Value{reader.Long(2)}, values)
}

func TestReadOddMap(t *testing.T) {
	values, bag := read(t, "{:a 1 :b}")
	require.Len(t, values, 1)
	assert.Equal(t, reader.Map{{Key: reader.Keyword("a"), Val: reader.Long(1)}}, values[0])

	require.True(t, bag.HasErrors())
	assert.Equal(t, diag.ReadOddMap, bag.Items()[0].Code)
}

func TestReadSyntaxErrorsReported(t *testing.T) {
	values, bag := read(t, "(1 2")
	assert.Empty(t, values)
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ReadSyntax {
			found = true
		}
	}
	assert.True(t, found, "want ReadSyntax diagnostic, got %v", bag.Items())
}

func TestValueStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(1 2)", "(1 2)"},
		{"[:a \"s\"]", `[:a "s"]`},
		{"{:a 1}", "{:a 1}"},
		{"#{1}", "#{1}"},
		{"'x", "(quote x)"},
		{"1/2", "1/2"},
		{"10n", "10n"},
		{`\newline`, `\newline`},
		{"Infinity", "Infinity"},
	}
	for _, tt := range tests {
		v := readOne(t, tt.input)
		assert.Equal(t, tt.want, v.String(), "input %q", tt.input)
	}
}
