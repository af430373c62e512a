package autohext

// CommonAncestor returns the lowest common ancestor of the given nodes using
// a level-synchronized climb: every node's parent is lifted to the depth of
// the shallowest selected node, then all candidates climb together until
// they converge on the same node.
//
// A single node resolves to its parent rather than to itself, so that a lone
// selection always carries one level of surrounding context.
//
// Returns EEMPTY for an empty selection, EINVALID for IDs outside the tree
// and ENOANCESTOR when the climb runs out of tree before converging.
func CommonAncestor(t *Tree, ids []NodeID) (NodeID, error) {
	if len(ids) == 0 {
		return NoNode, Errorf(EEMPTY, "no nodes selected")
	}
	for _, id := range ids {
		if !t.Contains(id) {
			return NoNode, Errorf(EINVALID, "node %d not in tree", id)
		}
	}

	if len(ids) == 1 {
		parent := t.Parent(ids[0])
		if parent == NoNode {
			return NoNode, Errorf(ENOANCESTOR, "node %d is a root", ids[0])
		}
		return parent, nil
	}

	depths := make([]int, len(ids))
	lowest := -1
	for i, id := range ids {
		depths[i] = t.Depth(id)
		if lowest == -1 || depths[i] < lowest {
			lowest = depths[i]
		}
	}

	candidates := make([]NodeID, len(ids))
	for i, id := range ids {
		c := t.Parent(id)
		for step := depths[i]; step > lowest; step-- {
			c = t.Parent(c)
		}
		candidates[i] = c
	}

	for depth := lowest; depth > 0; depth-- {
		if allSame(candidates) {
			return candidates[0], nil
		}
		for i, c := range candidates {
			candidates[i] = t.Parent(c)
		}
	}

	return NoNode, Errorf(ENOANCESTOR, "selected nodes share no common ancestor")
}

func allSame(ids []NodeID) bool {
	for _, id := range ids[1:] {
		if id != ids[0] {
			return false
		}
	}
	return true
}
