package diag_test

import (
	"testing"

	"citrine/internal/diag"
	"citrine/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestBuilderChain(t *testing.T) {
	d := diag.NewError(diag.SynUnclosedList, span(0, 3), "missing closer").
		WithNote(span(0, 1), "opened here").
		WithFix("insert closer", diag.FixEdit{Span: span(3, 3), NewText: ")"})

	if d.Severity != diag.SevError {
		t.Errorf("severity = %v, want SevError", d.Severity)
	}
	if d.Code != diag.SynUnclosedList {
		t.Errorf("code = %v", d.Code)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "opened here" {
		t.Errorf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != ")" {
		t.Errorf("fixes = %+v", d.Fixes)
	}
}

func TestBagReporterCarriesNotesAndFixes(t *testing.T) {
	bag := diag.NewBag(10)
	r := &diag.BagReporter{Bag: bag}

	r.Report(diag.SynUnclosedList, diag.SevError, span(0, 3), "missing closer",
		[]diag.Note{{Span: span(0, 1), Msg: "opened here"}},
		[]diag.Fix{{Title: "insert closer"}})

	if bag.Len() != 1 {
		t.Fatalf("bag has %d items, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "opened here" {
		t.Errorf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Title != "insert closer" {
		t.Errorf("fixes = %+v", d.Fixes)
	}
}

func TestMergeGrowsCap(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.NewError(diag.ReadSyntax, span(0, 0), "a"))

	b := diag.NewBag(2)
	b.Add(diag.NewError(diag.ReadSyntax, span(1, 1), "b"))
	b.Add(diag.NewError(diag.ReadSyntax, span(2, 2), "c"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("merged bag has %d items, want 3", a.Len())
	}
	if a.Cap() != 3 {
		t.Errorf("cap = %d, want 3", a.Cap())
	}
}

func TestMergeClampsCapAtLimit(t *testing.T) {
	d := diag.NewError(diag.ReadSyntax, span(0, 0), "x")

	a := diag.NewBag(40000)
	b := diag.NewBag(40000)
	for i := 0; i < 40000; i++ {
		a.Add(d)
		b.Add(d)
	}

	a.Merge(b)
	if a.Len() != 80000 {
		t.Fatalf("merged bag has %d items, want 80000", a.Len())
	}
	if a.Cap() != 1<<16-1 {
		t.Errorf("cap = %d, want clamp at %d", a.Cap(), 1<<16-1)
	}
}
