package prolog

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/sexptree"
)

// helperClauses synthesizes clauses describing the rule set itself:
// one user_defined_functor/2 per non-reserved functor, then
// connected_args/4 for in-body same-domain slot pairs not already
// implied by a head/body pair, then equivalent_args/4 for head/body
// pairs. Emission order is sorted, so the output is reproducible.
func helperClauses(forest []sexptree.TreeNode, s settings) (string, error) {
	var b strings.Builder
	functors := treemap.NewWithStringComparator()
	for name, arity := range sexptree.CollectFunctorAtoms(forest) {
		if sexptree.IsReservedWord(name) {
			continue
		}
		functors.Put(name, arity)
	}
	functors.Each(func(key interface{}, value interface{}) {
		b.WriteString("user_defined_functor(")
		b.WriteString(functorString(key.(string), s))
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(value.(int)))
		b.WriteString(").\n")
	})
	inBody := make(map[sexptree.ArgPosPair]bool)
	headBody := make(map[sexptree.ArgPosPair]bool)
	for _, node := range forest {
		if !isRuleClause(node) {
			continue
		}
		pairs, err := node.CollectSameDomainArgsInBody()
		if err != nil {
			return "", err
		}
		for pair := range pairs {
			inBody[pair] = true
		}
		pairs, err = node.CollectSameDomainArgsBetweenHeadAndBody()
		if err != nil {
			return "", err
		}
		for pair := range pairs {
			headBody[pair] = true
		}
	}
	connected := treeset.NewWith(compareArgPosPairs)
	for pair := range inBody {
		if headBody[pair] {
			continue // implied by the stronger head/body relationship
		}
		connected.Add(pair)
	}
	equivalent := treeset.NewWith(compareArgPosPairs)
	for pair := range headBody {
		equivalent.Add(pair)
	}
	connected.Each(func(_ int, value interface{}) {
		b.WriteString(pairClause("connected_args", value.(sexptree.ArgPosPair), s))
	})
	equivalent.Each(func(_ int, value interface{}) {
		b.WriteString(pairClause("equivalent_args", value.(sexptree.ArgPosPair), s))
	})
	return b.String(), nil
}

func pairClause(predicate string, pair sexptree.ArgPosPair, s settings) string {
	var b strings.Builder
	b.WriteString(predicate)
	b.WriteByte('(')
	b.WriteString(functorString(pair.First.Functor, s))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(pair.First.Pos))
	b.WriteString(", ")
	b.WriteString(functorString(pair.Second.Functor, s))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(pair.Second.Pos))
	b.WriteString(").\n")
	return b.String()
}

// compareArgPosPairs orders pairs by (First.Functor, First.Pos,
// Second.Functor, Second.Pos).
func compareArgPosPairs(a, b interface{}) int {
	p := a.(sexptree.ArgPosPair)
	q := b.(sexptree.ArgPosPair)
	if c := strings.Compare(p.First.Functor, q.First.Functor); c != 0 {
		return c
	}
	if p.First.Pos != q.First.Pos {
		return p.First.Pos - q.First.Pos
	}
	if c := strings.Compare(p.Second.Functor, q.Second.Functor); c != 0 {
		return c
	}
	return p.Second.Pos - q.Second.Pos
}

func isRuleClause(n sexptree.TreeNode) bool {
	if n.IsLeaf() {
		return false
	}
	children := n.Children()
	return len(children) > 0 && children[0].IsLeaf() &&
		children[0].Value() == sexptree.Connective
}
