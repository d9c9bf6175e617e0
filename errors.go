package sexptree

import "fmt"

// ShapeError reports a well-formed S-expression that violates the
// compound-term shape contract: a compound term must consist of a leaf
// functor followed by one or more arguments. The analyzer and the
// prolog translator return a ShapeError instead of producing output
// from such a tree; it is distinct from the syntax errors of
// sub-package parser.
type ShapeError struct {
	Node   TreeNode // the offending node
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("compound term contract violated: %s in %s", e.Reason, e.Node.Sexpr())
}

func shapeError(n TreeNode, reason string) error {
	return &ShapeError{Node: n, Reason: reason}
}
