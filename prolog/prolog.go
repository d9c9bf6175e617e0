package prolog

import (
	"strconv"
	"strings"

	"github.com/npillmayer/sexptree"
)

// Option configures the Prolog translation.
type Option func(*settings)

type settings struct {
	quoted        bool
	atomPrefix    string
	functorPrefix string
	helperClauses bool
}

// Quoted makes atoms and functors render wrapped in single quotes.
// Variables are never quoted.
func Quoted(on bool) Option {
	return func(s *settings) {
		s.quoted = on
	}
}

// AtomPrefix prepends prefix to every non-variable atom.
func AtomPrefix(prefix string) Option {
	return func(s *settings) {
		s.atomPrefix = prefix
	}
}

// FunctorPrefix prepends prefix to every functor.
func FunctorPrefix(prefix string) Option {
	return func(s *settings) {
		s.functorPrefix = prefix
	}
}

// HelperClauses appends synthesized user_defined_functor/2,
// connected_args/4 and equivalent_args/4 clauses to the translation.
func HelperClauses(on bool) Option {
	return func(s *settings) {
		s.helperClauses = on
	}
}

func makeSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Translate converts a forest into Prolog source text, one clause per
// top-level node, each terminated by '.' and a line break, in input
// order. With HelperClauses(true), the synthesized helper clauses
// follow the translated clauses.
func Translate(forest []sexptree.TreeNode, opts ...Option) (string, error) {
	s := makeSettings(opts)
	var b strings.Builder
	for _, node := range forest {
		clause, err := clauseString(node, s)
		if err != nil {
			return "", err
		}
		b.WriteString(clause)
		b.WriteByte('\n')
	}
	if s.helperClauses {
		helpers, err := helperClauses(forest, s)
		if err != nil {
			return "", err
		}
		b.WriteString(helpers)
		b.WriteByte('\n')
	}
	T().Debugf("translated %d clauses to Prolog", len(forest))
	return b.String(), nil
}

// Clause renders a single top-level node as a Prolog clause. A leaf
// renders as an atom fact, a tuple headed by the rule connective as a
// rule, any other tuple as a compound fact.
func Clause(n sexptree.TreeNode, opts ...Option) (string, error) {
	return clauseString(n, makeSettings(opts))
}

// Term renders a node as a Prolog term: a leaf as an atom or variable,
// a tuple as "functor(arg1, arg2, ...)".
func Term(n sexptree.TreeNode, opts ...Option) (string, error) {
	return termString(n, makeSettings(opts))
}

// Atom renders a leaf value as a Prolog atom, or as a variable if the
// value starts with '?'.
func Atom(value string, opts ...Option) string {
	return atomString(value, makeSettings(opts))
}

// Functor renders a functor name; functors are never variables.
func Functor(value string, opts ...Option) string {
	return functorString(value, makeSettings(opts))
}

func clauseString(n sexptree.TreeNode, s settings) (string, error) {
	if n.IsLeaf() {
		return atomString(n.Value(), s) + ".", nil
	}
	children := n.Children()
	if len(children) == 0 {
		return "", &sexptree.ShapeError{Node: n, Reason: "empty clause is not allowed"}
	}
	head := children[0]
	if !head.IsLeaf() {
		return "", &sexptree.ShapeError{Node: n, Reason: "compound term must start with a functor"}
	}
	if head.Value() != sexptree.Connective {
		// Fact clause of compound term.
		term, err := termString(n, s)
		if err != nil {
			return "", err
		}
		return term + ".", nil
	}
	// Rule clause.
	if len(children) < 2 {
		return "", &sexptree.ShapeError{Node: n, Reason: "rule clause must have a head"}
	}
	var b strings.Builder
	headTerm, err := termString(children[1], s)
	if err != nil {
		return "", err
	}
	b.WriteString(headTerm)
	if len(children) >= 3 {
		b.WriteString(" :- ")
		for i, literal := range children[2:] {
			if i > 0 {
				b.WriteString(", ")
			}
			lit, err := termString(literal, s)
			if err != nil {
				return "", err
			}
			b.WriteString(lit)
		}
	}
	b.WriteByte('.')
	return b.String(), nil
}

func termString(n sexptree.TreeNode, s settings) (string, error) {
	if n.IsLeaf() {
		// Non-functor atom term.
		return atomString(n.Value(), s), nil
	}
	children := n.Children()
	if len(children) < 2 {
		return "", &sexptree.ShapeError{Node: n, Reason: "compound term must have a functor and one or more arguments"}
	}
	head := children[0]
	if !head.IsLeaf() {
		return "", &sexptree.ShapeError{Node: n, Reason: "compound term must start with a functor"}
	}
	if head.IsVariable() {
		return "", &sexptree.ShapeError{Node: n, Reason: "functor must not be a variable"}
	}
	var b strings.Builder
	b.WriteString(functorString(head.Value(), s))
	b.WriteByte('(')
	for i, arg := range children[1:] {
		if i > 0 {
			b.WriteString(", ")
		}
		argTerm, err := termString(arg, s)
		if err != nil {
			return "", err
		}
		b.WriteString(argTerm)
	}
	b.WriteByte(')')
	return b.String(), nil
}

func atomString(value string, s settings) string {
	if strings.HasPrefix(value, "?") {
		// Variable.
		return "_" + sanitizeVariableName(value[1:])
	}
	atom := s.atomPrefix + value
	if s.quoted {
		atom = "'" + atom + "'"
	}
	return atom
}

func functorString(value string, s settings) string {
	functor := s.functorPrefix + value
	if s.quoted {
		functor = "'" + functor + "'"
	}
	return functor
}

// sanitizeVariableName keeps alphanumeric and underscore characters
// and replaces every other character by "_c<code>_", where code is the
// character's numeric value, e.g. '+' becomes "_c43_".
func sanitizeVariableName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == '_' || (r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
			continue
		}
		b.WriteString("_c")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteByte('_')
	}
	return b.String()
}
