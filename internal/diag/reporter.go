package diag

import "citrine/internal/source"

// Reporter is the minimal contract phases report through.
// Implementations: BagReporter (collects into a Bag), NopReporter.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix)
}

// BagReporter writes every report into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	if r.Bag == nil {
		return
	}
	d := New(sev, code, primary, msg)
	for _, n := range notes {
		d = d.WithNote(n.Span, n.Msg)
	}
	for _, f := range fixes {
		d = d.WithFix(f.Title, f.Edits...)
	}
	r.Bag.Add(d)
}

// NopReporter discards all reports. Phases still embed error kinds in
// their output, so nothing is lost for tree consumers.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string, []Note, []Fix) {}
