package sexptree

import "sort"

// ArgPos identifies an argument slot of a compound term: the functor
// name paired with the child index of the slot. The functor itself
// occupies index 0, so the first argument is at index 1.
type ArgPos struct {
	Functor string
	Pos     int
}

// ArgPosPair is an unordered observation that two argument slots take
// values from the same domain, because the same variable fills both.
// Pairs are normalized: First sorts before Second by (Functor, Pos),
// except for head/body pairs, where First is always the head slot.
type ArgPosPair struct {
	First  ArgPos
	Second ArgPos
}

// PositionSet is a set of argument slots.
type PositionSet map[ArgPos]bool

// VariablePositions maps a variable name to every argument slot the
// variable occupies.
type VariablePositions map[string]PositionSet

func (vars VariablePositions) add(name string, pos ArgPos) {
	set := vars[name]
	if set == nil {
		set = make(PositionSet)
		vars[name] = set
	}
	set[pos] = true
}

// CollectVariableArgs scans the non-functor children of a compound
// term. Variable leaves are recorded under the enclosing functor and
// their child index; compound arguments are scanned recursively and
// merged by variable name. n must satisfy the compound-term shape
// contract, otherwise a *ShapeError is returned.
func (n TreeNode) CollectVariableArgs() (VariablePositions, error) {
	vars := make(VariablePositions)
	if err := n.collectVariableArgs(vars); err != nil {
		return nil, err
	}
	return vars, nil
}

func (n TreeNode) collectVariableArgs(vars VariablePositions) error {
	if err := n.checkCompound(); err != nil {
		return err
	}
	functor := n.children[0].value
	for i, child := range n.children {
		if i == 0 {
			continue
		}
		if child.leaf {
			if child.IsVariable() {
				vars.add(child.value, ArgPos{Functor: functor, Pos: i})
			}
			continue
		}
		if err := child.collectVariableArgs(vars); err != nil {
			return err
		}
	}
	return nil
}

// checkCompound enforces the compound-term shape contract.
func (n TreeNode) checkCompound() error {
	if n.leaf {
		return shapeError(n, "compound term expected")
	}
	if len(n.children) < 2 {
		return shapeError(n, "compound term must have a functor and one or more arguments")
	}
	if !n.children[0].leaf {
		return shapeError(n, "compound term must start with a functor")
	}
	return nil
}

// checkRuleClause enforces that n is headed by the rule connective.
func (n TreeNode) checkRuleClause() error {
	if n.leaf || len(n.children) == 0 || !n.children[0].leaf || n.children[0].value != Connective {
		return shapeError(n, "rule clause expected")
	}
	return nil
}

// CollectSameDomainArgsInBody merges the variable-position maps of all
// body literals of a rule clause and emits, for every variable
// occupying two or more distinct slots, all pairwise combinations of
// those slots. Slots are sorted by (functor, index) before pairing, so
// the pair set is independent of traversal order. n must be a rule
// clause; leaf body literals contribute nothing.
func (n TreeNode) CollectSameDomainArgsInBody() (map[ArgPosPair]bool, error) {
	if err := n.checkRuleClause(); err != nil {
		return nil, err
	}
	vars := make(VariablePositions)
	for i := 2; i < len(n.children); i++ {
		if n.children[i].leaf {
			continue
		}
		if err := n.children[i].collectVariableArgs(vars); err != nil {
			return nil, err
		}
	}
	return pairUpSharedPositions(vars), nil
}

// CollectSameDomainArgsBetweenHeadAndBody intersects the head term's
// variable positions with the merged body positions and emits
// (head-slot, body-slot) pairs for every shared variable. The result
// is empty if the head is missing, the head is a bare atom, or there
// is no body.
func (n TreeNode) CollectSameDomainArgsBetweenHeadAndBody() (map[ArgPosPair]bool, error) {
	if err := n.checkRuleClause(); err != nil {
		return nil, err
	}
	pairs := make(map[ArgPosPair]bool)
	if len(n.children) < 3 {
		return pairs, nil // head only, or not even that
	}
	head := n.children[1]
	if head.leaf {
		return pairs, nil
	}
	headVars, err := head.CollectVariableArgs()
	if err != nil {
		return nil, err
	}
	bodyVars := make(VariablePositions)
	for i := 2; i < len(n.children); i++ {
		if n.children[i].leaf {
			continue
		}
		if err := n.children[i].collectVariableArgs(bodyVars); err != nil {
			return nil, err
		}
	}
	for name, headSet := range headVars {
		bodySet := bodyVars[name]
		if bodySet == nil {
			continue
		}
		for headPos := range headSet {
			for bodyPos := range bodySet {
				pairs[ArgPosPair{First: headPos, Second: bodyPos}] = true
			}
		}
	}
	return pairs, nil
}

func pairUpSharedPositions(vars VariablePositions) map[ArgPosPair]bool {
	pairs := make(map[ArgPosPair]bool)
	for _, set := range vars {
		if len(set) < 2 {
			continue
		}
		sorted := sortedPositions(set)
		for i := 0; i < len(sorted)-1; i++ {
			for j := i + 1; j < len(sorted); j++ {
				pairs[ArgPosPair{First: sorted[i], Second: sorted[j]}] = true
			}
		}
	}
	return pairs
}

func sortedPositions(set PositionSet) []ArgPos {
	positions := make([]ArgPos, 0, len(set))
	for pos := range set {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Functor == positions[j].Functor {
			return positions[i].Pos < positions[j].Pos
		}
		return positions[i].Functor < positions[j].Functor
	})
	return positions
}
