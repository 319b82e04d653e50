package syntax

import (
	"encoding/binary"
	"fmt"

	"fortio.org/safecast"

	"citrine/internal/source"
)

// BuilderOpts configures tree construction.
type BuilderOpts struct {
	// File is recorded on the finished tree so red-layer spans carry it.
	File source.FileID
	// Intern enables content-addressed deduplication of whole subtrees.
	// It changes memory use only: the logical tree is identical either way.
	Intern bool
}

// Builder constructs a green tree bottom-up while the parser descends
// top-down: StartNode pushes a frame, Token appends a leaf to the open
// frame, FinishNode pops the frame into its parent, Finish hands the tree
// over once the stack is empty.
type Builder struct {
	tree       *Tree
	opts       BuilderOpts
	stack      []frame
	tokenIndex map[GreenToken]TokenID
	nodeIndex  map[string]NodeID
	keyBuf     []byte
}

type frame struct {
	kind     Kind
	children []Child
	len      uint32
}

// NewBuilder creates a Builder producing a fresh Tree.
func NewBuilder(opts BuilderOpts) *Builder {
	b := &Builder{
		tree: &Tree{
			file:   opts.File,
			texts:  source.NewInterner(),
			tokens: NewArena[GreenToken](64),
			nodes:  NewArena[GreenNode](32),
		},
		opts:       opts,
		tokenIndex: make(map[GreenToken]TokenID),
	}
	if opts.Intern {
		b.nodeIndex = make(map[string]NodeID)
	}
	return b
}

// StartNode opens a node of the given kind. Panics on a token kind: the
// taxonomy split is load-bearing here.
func (b *Builder) StartNode(k Kind) {
	if !k.IsNode() {
		panic(fmt.Errorf("syntax: StartNode with token kind %s", k))
	}
	b.stack = append(b.stack, frame{kind: k})
}

// MarkError retags the innermost open node as an error node, keeping the
// children collected so far. Used when a collection loses its closer or a
// reader macro loses its operand.
func (b *Builder) MarkError() {
	if len(b.stack) == 0 {
		panic("syntax: MarkError with no open node")
	}
	b.stack[len(b.stack)-1].kind = ErrorNode
}

// Token appends a leaf token to the innermost open node. Identical leaves
// share one green token.
func (b *Builder) Token(k Kind, text string) {
	if !k.IsToken() {
		panic(fmt.Errorf("syntax: Token with node kind %s", k))
	}
	if len(b.stack) == 0 {
		panic("syntax: Token with no open node")
	}
	textLen, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("token text overflow: %w", err))
	}
	gt := GreenToken{Kind: k, Text: b.tree.texts.Intern(text), Len: textLen}
	id, ok := b.tokenIndex[gt]
	if !ok {
		id = TokenID(b.tree.tokens.Allocate(gt))
		b.tokenIndex[gt] = id
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, TokenChild(id))
	top.len += textLen
}

// FinishNode closes the innermost open node and attaches it to its parent,
// or installs it as the root when the stack empties.
func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		panic("syntax: FinishNode with no open node")
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	id := b.allocNode(f)

	if len(b.stack) == 0 {
		b.tree.root = id
		return
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, NodeChild(id))
	top.len += f.len
}

func (b *Builder) allocNode(f frame) NodeID {
	if b.nodeIndex == nil {
		return NodeID(b.tree.nodes.Allocate(GreenNode{Kind: f.kind, Children: f.children, Len: f.len}))
	}
	key := b.nodeKey(f)
	if id, ok := b.nodeIndex[key]; ok {
		return id
	}
	id := NodeID(b.tree.nodes.Allocate(GreenNode{Kind: f.kind, Children: f.children, Len: f.len}))
	b.nodeIndex[key] = id
	return id
}

// nodeKey builds the content-address of a node: kind plus the raw child
// handles. Children are already deduplicated, so equal keys mean equal
// subtree content.
func (b *Builder) nodeKey(f frame) string {
	b.keyBuf = b.keyBuf[:0]
	b.keyBuf = binary.LittleEndian.AppendUint16(b.keyBuf, uint16(f.kind))
	for _, c := range f.children {
		b.keyBuf = binary.LittleEndian.AppendUint32(b.keyBuf, uint32(c))
	}
	return string(b.keyBuf)
}

// Finish returns the completed tree. All open nodes must be closed.
func (b *Builder) Finish() *Tree {
	if len(b.stack) != 0 {
		panic(fmt.Errorf("syntax: Finish with %d open nodes", len(b.stack)))
	}
	return b.tree
}
