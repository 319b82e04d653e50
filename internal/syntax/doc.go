// Package syntax holds the shared kind taxonomy and the two-layer concrete
// syntax tree.
//
// The green layer (GreenNode, GreenToken) is the owned artifact of a parse:
// an arena of immutable nodes addressed by uint32 handles, with children
// stored as tagged handles. Green nodes know their kind, their children,
// and their byte length but never their absolute position, which is what
// makes identical subtrees shareable. Token text is interned; whole-node
// interning is optional (BuilderOpts.Intern) and affects memory only.
//
// The red layer (Node, Leaf, Element) is a transient view: it adds the
// absolute offset and the parent link, both computed on demand while
// walking down from the root. Many views may borrow one tree; none may
// outlive it.
//
// The round-trip invariant holds at every level: the concatenated leaf
// texts of any node equal that node's source slice exactly.
package syntax
