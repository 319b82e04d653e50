package syntax

import (
	"citrine/internal/source"
)

// Node is a red-layer view: a green node plus the absolute offset and the
// parent link the green layer deliberately lacks. Views are materialized
// lazily during traversal, are cheap to create, and borrow the tree; they
// must not outlive it. The view holds a reference to its parent, never the
// reverse, so no cycles exist.
type Node struct {
	tree   *Tree
	id     NodeID
	parent *Node
	offset uint32
	index  int // position among the parent's children
}

// Root returns the view of the root node, or nil for a tree that was never
// built.
func (t *Tree) Root() *Node {
	if !t.root.IsValid() {
		return nil
	}
	return &Node{tree: t, id: t.root}
}

// Leaf is the red-layer view of one token occurrence.
type Leaf struct {
	Kind   Kind
	Text   string
	File   source.FileID
	Offset uint32
}

func (l Leaf) Len() uint32 {
	return uint32(len(l.Text)) //nolint:gosec // token lengths are checked at build time
}

func (l Leaf) Span() source.Span {
	return source.Span{File: l.File, Start: l.Offset, End: l.Offset + l.Len()}
}

// IsTrivia reports whether the leaf is whitespace, a newline run, or a
// comment.
func (l Leaf) IsTrivia() bool {
	return l.Kind.IsTrivia()
}

// Element is either a child node view or a leaf view.
type Element struct {
	node *Node
	leaf Leaf
}

func (e Element) IsNode() bool {
	return e.node != nil
}

// Node returns the node view, or nil for a leaf element.
func (e Element) Node() *Node {
	return e.node
}

// Leaf returns the leaf view; meaningful only when IsNode is false.
func (e Element) Leaf() Leaf {
	return e.leaf
}

func (e Element) Kind() Kind {
	if e.node != nil {
		return e.node.Kind()
	}
	return e.leaf.Kind
}

func (e Element) Span() source.Span {
	if e.node != nil {
		return e.node.Span()
	}
	return e.leaf.Span()
}

func (e Element) Text() string {
	if e.node != nil {
		return e.node.Text()
	}
	return e.leaf.Text
}

func (n *Node) Tree() *Tree {
	return n.tree
}

func (n *Node) ID() NodeID {
	return n.id
}

func (n *Node) Kind() Kind {
	return n.tree.node(n.id).Kind
}

// Offset is the absolute byte offset of the node's first byte.
func (n *Node) Offset() uint32 {
	return n.offset
}

func (n *Node) Len() uint32 {
	return n.tree.node(n.id).Len
}

func (n *Node) Span() source.Span {
	return source.Span{File: n.tree.file, Start: n.offset, End: n.offset + n.Len()}
}

// Text reconstructs the source slice this node covers.
func (n *Node) Text() string {
	return n.tree.NodeText(n.id)
}

// Parent returns the view this one was reached through; nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// NumChildren returns the number of direct children, leaves included.
func (n *Node) NumChildren() int {
	return len(n.tree.node(n.id).Children)
}

// Children materializes views for all direct children in source order,
// computing each child's absolute offset from the running byte position.
func (n *Node) Children() []Element {
	green := n.tree.node(n.id)
	out := make([]Element, 0, len(green.Children))
	off := n.offset
	for i, c := range green.Children {
		if c.IsNode() {
			child := &Node{tree: n.tree, id: c.AsNode(), parent: n, offset: off, index: i}
			out = append(out, Element{node: child})
			off += child.Len()
		} else {
			leaf := Leaf{
				Kind:   n.tree.token(c.AsToken()).Kind,
				Text:   n.tree.TokenText(c.AsToken()),
				File:   n.tree.file,
				Offset: off,
			}
			out = append(out, Element{leaf: leaf})
			off += leaf.Len()
		}
	}
	return out
}

// Nodes returns only the direct node children, in source order.
func (n *Node) Nodes() []*Node {
	var out []*Node
	for _, e := range n.Children() {
		if e.IsNode() {
			out = append(out, e.Node())
		}
	}
	return out
}

// Leaves returns every leaf token beneath the node, in source order.
// Concatenating their texts yields Text().
func (n *Node) Leaves() []Leaf {
	var out []Leaf
	n.collectLeaves(&out)
	return out
}

func (n *Node) collectLeaves(out *[]Leaf) {
	for _, e := range n.Children() {
		if e.IsNode() {
			e.Node().collectLeaves(out)
		} else {
			*out = append(*out, e.Leaf())
		}
	}
}

// NextSibling returns the next element after this node among its parent's
// children, or a zero Element at the end.
func (n *Node) NextSibling() (Element, bool) {
	return n.sibling(n.index + 1)
}

// PrevSibling returns the element before this node, or a zero Element at
// the start.
func (n *Node) PrevSibling() (Element, bool) {
	return n.sibling(n.index - 1)
}

func (n *Node) sibling(i int) (Element, bool) {
	if n.parent == nil {
		return Element{}, false
	}
	kids := n.parent.Children()
	if i < 0 || i >= len(kids) {
		return Element{}, false
	}
	return kids[i], true
}

// HasErrors reports whether any error token or error node occurs beneath
// the node. Strict consumers traverse for error kinds instead of relying
// on a failed parse: parsing never fails.
func (n *Node) HasErrors() bool {
	if n.Kind() == ErrorNode {
		return true
	}
	for _, e := range n.Children() {
		if e.IsNode() {
			if e.Node().HasErrors() {
				return true
			}
		} else if e.Leaf().Kind == ErrorTok {
			return true
		}
	}
	return false
}

// HasErrors is the whole-tree check: true when any error kind occurs
// anywhere under the root.
func (t *Tree) HasErrors() bool {
	root := t.Root()
	if root == nil {
		return false
	}
	return root.HasErrors()
}
