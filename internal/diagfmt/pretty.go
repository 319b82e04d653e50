package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"citrine/internal/diag"
	"citrine/internal/source"
)

// Pretty renders diagnostics for a terminal. Iterates bag.Items() in
// order (call bag.Sort() first if order matters). One diagnostic prints
// as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line and a caret underline covering the span,
// then any notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printOne(w, fs, opts, d.Severity, d.Code.ID(), d.Primary, d.Message)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				printOne(w, fs, opts, diag.SevInfo, "note", n.Span, n.Msg)
			}
		}
	}
}

func printOne(w io.Writer, fs *source.FileSet, opts PrettyOpts, sev diag.Severity, code string, sp source.Span, msg string) {
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(f, fs, opts.PathMode),
		start.Line, start.Col,
		paintSev(opts.Color, sev),
		code, msg)

	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// The underline is sized in display cells so wide runes and tabs
	// line up with the echoed source line.
	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(line[:col])
	width := runewidth.StringWidth(spanText(f, sp))
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(severityColor(sev)).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

// spanText returns the spanned source text limited to its first line.
func spanText(f *source.File, sp source.Span) string {
	if sp.Start >= sp.End || int(sp.End) > len(f.Content) {
		return ""
	}
	text := string(f.Content[sp.Start:sp.End])
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return text
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

func severityColor(sev diag.Severity) color.Attribute {
	switch sev {
	case diag.SevError:
		return color.FgRed
	case diag.SevWarning:
		return color.FgYellow
	default:
		return color.FgCyan
	}
}

func paintSev(enabled bool, sev diag.Severity) string {
	s := sev.String()
	if !enabled {
		return s
	}
	return color.New(severityColor(sev), color.Bold).Sprint(s)
}
