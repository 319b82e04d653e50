package syntax

import (
	"strings"

	"citrine/internal/source"
)

type (
	// NodeID is a 1-based handle into a Tree's node arena.
	NodeID uint32
	// TokenID is a 1-based handle into a Tree's token arena.
	TokenID uint32
)

const (
	NoNodeID  NodeID  = 0
	NoTokenID TokenID = 0
)

func (id NodeID) IsValid() bool  { return id != NoNodeID }
func (id TokenID) IsValid() bool { return id != NoTokenID }

// Child is a tagged handle to either a green node or a green token.
// Bit 31 distinguishes the two, so one uint32 covers both arenas and a
// child list never carries ownership pointers.
type Child uint32

const childNodeBit Child = 1 << 31

// NodeChild wraps a node handle as a child reference.
func NodeChild(id NodeID) Child {
	return Child(id) | childNodeBit
}

// TokenChild wraps a token handle as a child reference.
func TokenChild(id TokenID) Child {
	return Child(id)
}

// IsNode reports whether the child references a node.
func (c Child) IsNode() bool {
	return c&childNodeBit != 0
}

// AsNode returns the node handle; NoNodeID if the child is a token.
func (c Child) AsNode() NodeID {
	if !c.IsNode() {
		return NoNodeID
	}
	return NodeID(c &^ childNodeBit)
}

// AsToken returns the token handle; NoTokenID if the child is a node.
func (c Child) AsToken() TokenID {
	if c.IsNode() {
		return NoTokenID
	}
	return TokenID(c)
}

// GreenToken is an interned leaf: a kind plus interned text. Identical
// leaves (same kind, same text) share one GreenToken regardless of where
// they occur.
type GreenToken struct {
	Kind Kind
	Text source.StringID
	Len  uint32
}

// GreenNode is an immutable interior node. Its byte length is the sum of
// its children's lengths; it carries no absolute position.
type GreenNode struct {
	Kind     Kind
	Children []Child
	Len      uint32
}

// Tree owns the green layer of one parse: the arenas, the text interner,
// and the root handle. It is immutable once the builder finishes and is
// safe to share read-only across goroutines.
type Tree struct {
	file   source.FileID
	texts  *source.Interner
	tokens *Arena[GreenToken]
	nodes  *Arena[GreenNode]
	root   NodeID
}

// File returns the FileID spans of this tree refer to.
func (t *Tree) File() source.FileID {
	return t.file
}

// RootID returns the handle of the root node.
func (t *Tree) RootID() NodeID {
	return t.root
}

// NodeCount returns the number of green nodes in the arena. With interning
// enabled this can be smaller than the number of logical tree positions.
func (t *Tree) NodeCount() uint32 {
	return t.nodes.Len()
}

// TokenCount returns the number of distinct green tokens.
func (t *Tree) TokenCount() uint32 {
	return t.tokens.Len()
}

func (t *Tree) node(id NodeID) *GreenNode {
	return t.nodes.Get(uint32(id))
}

func (t *Tree) token(id TokenID) *GreenToken {
	return t.tokens.Get(uint32(id))
}

// TokenText returns the text of a green token.
func (t *Tree) TokenText(id TokenID) string {
	return t.texts.MustLookup(t.token(id).Text)
}

// NodeText reconstructs the source text under a node by concatenating its
// leaf token texts in order.
func (t *Tree) NodeText(id NodeID) string {
	n := t.node(id)
	var sb strings.Builder
	sb.Grow(int(n.Len))
	t.writeText(&sb, id)
	return sb.String()
}

// Text reconstructs the whole source buffer from the tree. For any input
// this equals the parsed text byte-for-byte.
func (t *Tree) Text() string {
	if !t.root.IsValid() {
		return ""
	}
	return t.NodeText(t.root)
}

func (t *Tree) writeText(sb *strings.Builder, id NodeID) {
	for _, c := range t.node(id).Children {
		if c.IsNode() {
			t.writeText(sb, c.AsNode())
		} else {
			sb.WriteString(t.TokenText(c.AsToken()))
		}
	}
}
