package source

import (
	"testing"
)

func TestToLineColSingleLine(t *testing.T) {
	idx := buildLineIndex([]byte("hello"))
	got := toLineCol(idx, 3)
	if got.Line != 1 || got.Col != 4 {
		t.Fatalf("expected 1:4, got %d:%d", got.Line, got.Col)
	}
}

func TestToLineColMultiLine(t *testing.T) {
	content := []byte("ab\ncd\n\nxyz")
	idx := buildLineIndex(content)

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},  // 'a'
		{1, 1, 2},  // 'b'
		{2, 1, 3},  // the '\n' terminating line 1
		{3, 2, 1},  // 'c'
		{4, 2, 2},  // 'd'
		{6, 3, 1},  // empty line's '\n'
		{7, 4, 1},  // 'x'
		{9, 4, 3},  // 'z'
		{10, 4, 4}, // one past the end
	}
	for _, c := range cases {
		got := toLineCol(idx, c.off)
		if got.Line != c.line || got.Col != c.col {
			t.Errorf("off %d: expected %d:%d, got %d:%d", c.off, c.line, c.col, got.Line, got.Col)
		}
	}
}

func TestResolveSpan(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t", []byte("(foo)\n(bar)"))

	start, end := fs.Resolve(Span{File: id, Start: 7, End: 10})
	if start.Line != 2 || start.Col != 2 {
		t.Fatalf("expected start 2:2, got %d:%d", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 5 {
		t.Fatalf("expected end 2:5, got %d:%d", end.Line, end.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, c := range cases {
		if got := f.GetLine(c.line); got != c.want {
			t.Errorf("line %d: expected %q, got %q", c.line, c.want, got)
		}
	}
}

func TestInternerDedup(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("foo")
	if a != b {
		t.Fatalf("expected one ID for identical strings, got %d and %d", a, b)
	}
	if in.MustLookup(a) != "foo" {
		t.Fatalf("lookup mismatch")
	}
	if in.Intern("") != NoStringID {
		t.Fatalf("empty string must map to the reserved ID")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Fatalf("expected 2-8, got %d-%d", got.Start, got.End)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if a.Cover(other) != a {
		t.Fatalf("spans from different files must not merge")
	}
}
