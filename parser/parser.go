package parser

import (
	"fmt"
	"regexp"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/sexptree"
)

// SyntaxError reports malformed S-expression input. Parsing is
// all-or-nothing: the first syntax error aborts the parse and no
// partial forest is returned.
type SyntaxError struct {
	Line   int // 1-based input line of the offending condition
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Option configures a parse run.
type Option func(*builder)

// FlattenSingletons makes the builder collapse any group with exactly
// one child into that child directly, recursively during construction.
// This normalizes a permissive KIF dialect in which superfluous
// wrapping parentheses appear around terms.
func FlattenSingletons() Option {
	return func(b *builder) {
		b.flatten = true
	}
}

// builder holds the state of one parse run: the stack of unclosed
// groups and the finished top-level nodes.
type builder struct {
	flatten bool
	open    *arraystack.Stack // of *arraylist.List, one per unclosed '('
	forest  []sexptree.TreeNode
}

// Parse consumes input left to right and returns the forest of
// top-level tree nodes, one per top-level S-expression, in input
// order. Atom tokens become leaves; parenthesized groups become
// tuples. All-whitespace input yields an empty forest.
func Parse(input string, opts ...Option) ([]sexptree.TreeNode, error) {
	b := &builder{open: arraystack.New()}
	for _, opt := range opts {
		opt(b)
	}
	sc := newPooledScanner(input)
	defer sc.releaseIntoPool()
	for {
		tokval, lexeme, _, _ := sc.NextToken(nil)
		if tokval == scanner.EOF {
			break
		}
		switch tokval {
		case LeftParenToken:
			b.open.Push(arraylist.New())
		case RightParenToken:
			if err := b.closeGroup(sc.Line()); err != nil {
				return nil, err
			}
		default:
			b.emit(sexptree.NewLeaf(lexeme.(string)))
		}
	}
	if !b.open.Empty() {
		return nil, &SyntaxError{Line: sc.Line(), Reason: "unmatched '(' at end of input"}
	}
	T().Debugf("parsed %d top-level S-expressions", len(b.forest))
	return b.forest, nil
}

// ParseKIF parses input in the permissive KIF dialect, collapsing
// superfluous wrapping parentheses around single terms.
func ParseKIF(input string) ([]sexptree.TreeNode, error) {
	return Parse(input, FlattenSingletons())
}

// emit adds a finished node to the enclosing open group, or to the
// forest if no group is open.
func (b *builder) emit(n sexptree.TreeNode) {
	if top, ok := b.open.Peek(); ok {
		top.(*arraylist.List).Add(n)
		return
	}
	b.forest = append(b.forest, n)
}

// closeGroup pops the topmost open group and emits it as a tuple.
func (b *builder) closeGroup(line int) error {
	top, ok := b.open.Pop()
	if !ok {
		return &SyntaxError{Line: line, Reason: "unexpected ')'"}
	}
	children := top.(*arraylist.List)
	if b.flatten && children.Size() == 1 {
		child, _ := children.Get(0)
		b.emit(child.(sexptree.TreeNode))
		return nil
	}
	nodes := make([]sexptree.TreeNode, children.Size())
	it := children.Iterator()
	for it.Next() {
		nodes[it.Index()] = it.Value().(sexptree.TreeNode)
	}
	b.emit(sexptree.NewTuple(nodes...))
	return nil
}

var commentPattern = regexp.MustCompile(`(?m);.*$`)

// RemoveComments strips ';' line comments from input: every span from
// a ';' to its end-of-line is removed. Comments are line-based, not
// nested and not escapable. The Scanner skips comments on its own;
// RemoveComments is exported for callers which want the stripped text
// itself.
func RemoveComments(input string) string {
	return commentPattern.ReplaceAllString(input, "")
}
