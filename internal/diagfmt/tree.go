package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"citrine/internal/syntax"
)

// FormatTreePretty writes an indented dump of the syntax tree: nodes as
// kind@start..end, leaves with their text. Handy for golden tests and
// for eyeballing parser output.
func FormatTreePretty(w io.Writer, tree *syntax.Tree) error {
	return dumpNode(w, tree.Root(), 0)
}

func dumpNode(w io.Writer, n *syntax.Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	sp := n.Span()
	if _, err := fmt.Fprintf(w, "%s%s@%d..%d\n", indent, n.Kind(), sp.Start, sp.End); err != nil {
		return err
	}
	for _, el := range n.Children() {
		if el.IsNode() {
			if err := dumpNode(w, el.Node(), depth+1); err != nil {
				return err
			}
			continue
		}
		leaf := el.Leaf()
		lsp := leaf.Span()
		if _, err := fmt.Fprintf(w, "%s  %s@%d..%d %q\n", indent, leaf.Kind, lsp.Start, lsp.End, leaf.Text); err != nil {
			return err
		}
	}
	return nil
}

// TreeNodeJSON mirrors the tree shape for machine consumers.
type TreeNodeJSON struct {
	Kind     string         `json:"kind"`
	Start    uint32         `json:"start"`
	End      uint32         `json:"end"`
	Text     string         `json:"text,omitempty"`
	Children []TreeNodeJSON `json:"children,omitempty"`
}

// FormatTreeJSON writes the syntax tree as nested JSON objects.
func FormatTreeJSON(w io.Writer, tree *syntax.Tree) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(treeToJSON(tree.Root()))
}

func treeToJSON(n *syntax.Node) TreeNodeJSON {
	sp := n.Span()
	out := TreeNodeJSON{
		Kind:  n.Kind().String(),
		Start: sp.Start,
		End:   sp.End,
	}
	for _, el := range n.Children() {
		if el.IsNode() {
			out.Children = append(out.Children, treeToJSON(el.Node()))
			continue
		}
		leaf := el.Leaf()
		lsp := leaf.Span()
		out.Children = append(out.Children, TreeNodeJSON{
			Kind:  leaf.Kind.String(),
			Start: lsp.Start,
			End:   lsp.End,
			Text:  leaf.Text,
		})
	}
	return out
}
