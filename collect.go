package sexptree

// CollectAtoms returns the set of all leaf values in the tree that are
// neither the rule connective nor variables. Duplicates collapse.
func (n TreeNode) CollectAtoms() map[string]bool {
	atoms := make(map[string]bool)
	n.collectAtoms(atoms)
	return atoms
}

func (n TreeNode) collectAtoms(atoms map[string]bool) {
	if n.leaf {
		if n.value == Connective || n.IsVariable() {
			return
		}
		atoms[n.value] = true
		return
	}
	for _, child := range n.children {
		child.collectAtoms(atoms)
	}
}

// CollectNonFunctorAtoms is like CollectAtoms, but skips the first
// child (the functor position) of every tuple, collecting only leaves
// appearing in non-functor positions.
func (n TreeNode) CollectNonFunctorAtoms() map[string]bool {
	atoms := make(map[string]bool)
	n.collectNonFunctorAtoms(atoms)
	return atoms
}

func (n TreeNode) collectNonFunctorAtoms(atoms map[string]bool) {
	if n.leaf {
		if n.value == Connective || n.IsVariable() {
			return
		}
		atoms[n.value] = true
		return
	}
	for i, child := range n.children {
		if i == 0 {
			continue
		}
		child.collectNonFunctorAtoms(atoms)
	}
}

// CollectFunctorAtoms returns a mapping from functor name to arity
// (child count minus one) for every compound term in the tree,
// excluding the rule connective. When the same functor occurs with
// different arities, the FIRST observed arity wins; later occurrences
// do not overwrite it.
func (n TreeNode) CollectFunctorAtoms() map[string]int {
	functors := make(map[string]int)
	n.collectFunctorAtoms(functors)
	return functors
}

func (n TreeNode) collectFunctorAtoms(functors map[string]int) {
	if n.leaf || len(n.children) == 0 {
		return
	}
	head := n.children[0]
	if head.leaf && head.value != Connective {
		if _, ok := functors[head.value]; !ok {
			functors[head.value] = len(n.children) - 1
		}
	}
	for _, child := range n.children[1:] {
		if !child.leaf {
			child.collectFunctorAtoms(functors)
		}
	}
}

// CollectAtoms merges TreeNode.CollectAtoms over a whole forest.
func CollectAtoms(forest []TreeNode) map[string]bool {
	atoms := make(map[string]bool)
	for _, node := range forest {
		node.collectAtoms(atoms)
	}
	return atoms
}

// CollectNonFunctorAtoms merges TreeNode.CollectNonFunctorAtoms over a
// whole forest.
func CollectNonFunctorAtoms(forest []TreeNode) map[string]bool {
	atoms := make(map[string]bool)
	for _, node := range forest {
		node.collectNonFunctorAtoms(atoms)
	}
	return atoms
}

// CollectFunctorAtoms merges TreeNode.CollectFunctorAtoms over a whole
// forest. The first-seen-arity-wins policy extends across trees, in
// forest order.
func CollectFunctorAtoms(forest []TreeNode) map[string]int {
	functors := make(map[string]int)
	for _, node := range forest {
		node.collectFunctorAtoms(functors)
	}
	return functors
}
