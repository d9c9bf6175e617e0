package sexptree

import (
	"strconv"
	"strings"
)

// Connective is the leaf value that introduces a rule clause. It is
// never treated as a regular atom.
const Connective = "<="

// TreeNode is a node of an S-expression tree. A TreeNode is a read-only
// value and is exactly one of two variants: a leaf, holding a single
// textual value, or a tuple, holding an ordered sequence of children.
// The zero value is an empty tuple.
//
// Tree nodes are created by sub-package parser or by the constructors
// NewLeaf and NewTuple; derived operations like ReplaceAtoms build new
// trees and leave their receiver untouched.
type TreeNode struct {
	leaf     bool
	value    string
	children []TreeNode
}

// NewLeaf creates a leaf node holding value. GDL reserved keywords are
// case-normalized to lowercase, regardless of input case; all other
// values are preserved verbatim.
func NewLeaf(value string) TreeNode {
	return TreeNode{leaf: true, value: foldReservedWord(value)}
}

// NewTuple creates a tuple node from an ordered sequence of children.
// A tuple with zero children represents an empty parenthesis group.
func NewTuple(children ...TreeNode) TreeNode {
	cs := make([]TreeNode, len(children))
	copy(cs, children)
	return TreeNode{children: cs}
}

// IsLeaf returns true iff n is a leaf node.
func (n TreeNode) IsLeaf() bool {
	return n.leaf
}

// IsVariable returns true iff n is a leaf whose value starts with '?',
// i.e. a logic-variable placeholder.
func (n TreeNode) IsVariable() bool {
	return n.leaf && n.value != "" && n.value[0] == '?'
}

// Value returns the textual value of a leaf node. It is empty for
// tuple nodes.
func (n TreeNode) Value() string {
	return n.value
}

// Children returns the ordered children of a tuple node, nil for leaf
// nodes. Callers must treat the returned slice as read-only.
func (n TreeNode) Children() []TreeNode {
	return n.children
}

// Equals reports structural equality: two leaves are equal iff their
// values match, two tuples are equal iff their child sequences are
// pairwise equal in order. A leaf is never equal to a tuple.
func (n TreeNode) Equals(other TreeNode) bool {
	if n.leaf != other.leaf {
		return false
	}
	if n.leaf {
		return n.value == other.value
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equals(other.children[i]) {
			return false
		}
	}
	return true
}

// String returns a debug rendering exposing shape and value. The format
// is not a stable contract; use Sexpr for canonical output.
func (n TreeNode) String() string {
	if n.leaf {
		return "leaf:" + n.value
	}
	var b strings.Builder
	b.WriteString("non-leaf[")
	b.WriteString(strconv.Itoa(len(n.children)))
	b.WriteString("](")
	for _, child := range n.children {
		b.WriteByte(' ')
		b.WriteString(child.String())
	}
	b.WriteString(" )")
	return b.String()
}

// Sexpr returns the canonical S-expression rendering of n: a leaf
// renders as its value, a tuple as '(' + space-joined child renderings
// + ')'. Parsing the output reproduces a structurally equal tree.
func (n TreeNode) Sexpr() string {
	if n.leaf {
		return n.value
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, child := range n.children {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(child.Sexpr())
	}
	b.WriteByte(')')
	return b.String()
}

// ReplaceAtoms returns a new tree in which every leaf with value before
// is replaced by a leaf with value after. Nodes that do not match are
// carried over unchanged. The replacement value passes through leaf
// construction, so reserved-word folding applies to it as well.
func (n TreeNode) ReplaceAtoms(before, after string) TreeNode {
	if n.leaf {
		if n.value == before {
			return NewLeaf(after)
		}
		return n
	}
	cs := make([]TreeNode, len(n.children))
	for i, child := range n.children {
		cs[i] = child.ReplaceAtoms(before, after)
	}
	return TreeNode{children: cs}
}

// ReplaceAtoms applies TreeNode.ReplaceAtoms to every tree of a forest,
// returning a new forest of the same length and order.
func ReplaceAtoms(forest []TreeNode, before, after string) []TreeNode {
	replaced := make([]TreeNode, len(forest))
	for i, node := range forest {
		replaced[i] = node.ReplaceAtoms(before, after)
	}
	return replaced
}
