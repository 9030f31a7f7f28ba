// Package tree holds the in-memory model of a parsed diagram: typed nodes,
// the file-vs-directory inference rules and the stack-based builder that
// turns classified lines into a rooted tree.
package tree

import "etxdir/internal/source"

// Kind is the closed two-variant node type. It is decided once per node and
// changed at most once, by the post-build reconciliation pass.
type Kind uint8

const (
	Directory Kind = iota
	File
)

func (k Kind) String() string {
	if k == File {
		return "file"
	}
	return "dir"
}

// Node is one entry of the parsed tree. Children keep source order; a File
// node never keeps children past reconciliation. Every node is owned by
// exactly one parent, the builder owns the root.
type Node struct {
	Label    string
	Kind     Kind
	Depth    int
	Children []*Node

	// Происхождение для диагностик; у синтетического корня нулевое.
	Line uint32
	Span source.Span
}

// NewRoot returns the synthetic depth-0 directory that stands for the
// caller's destination path. It is never materialized itself.
func NewRoot() *Node {
	return &Node{Kind: Directory, Depth: 0}
}

// IsRoot reports whether n is the synthetic root.
func (n *Node) IsRoot() bool {
	return n.Depth == 0 && n.Label == ""
}

// Walk calls fn for every node in depth-first source order, parents before
// children. The synthetic root itself is included.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// CountEntries returns the number of real entries (everything but the root).
func (n *Node) CountEntries() int {
	total := 0
	n.Walk(func(node *Node) {
		if !node.IsRoot() {
			total++
		}
	})
	return total
}
