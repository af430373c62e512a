package autohext

import "slices"

// Selection is an ordered set of nodes in the order they were picked.
type Selection struct {
	ids []NodeID
}

// Toggle adds id if it is absent and removes it otherwise.
// Returns true if id is selected after the call.
func (s *Selection) Toggle(id NodeID) bool {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id NodeID) bool {
	return slices.Contains(s.ids, id)
}

// Len returns the number of selected nodes.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the selected nodes in pick order.
func (s *Selection) IDs() []NodeID {
	return slices.Clone(s.ids)
}

// Reset empties the selection.
func (s *Selection) Reset() {
	s.ids = nil
}

// Session tracks an interactive selection over a tree and keeps the common
// ancestor of the selected nodes up to date after every toggle.
type Session struct {
	tree     *Tree
	sel      Selection
	ancestor NodeID
}

// NewSession starts a session over t. Nodes already marked selected in the
// tree seed the selection in document order. If the marked nodes share no
// ancestor, ENOANCESTOR is returned and the markers are left in place.
func NewSession(t *Tree) (*Session, error) {
	s := &Session{tree: t, ancestor: NoNode}
	for _, id := range t.Selected() {
		s.sel.Toggle(id)
	}
	if s.sel.Len() == 0 {
		return s, nil
	}

	ancestor, err := CommonAncestor(t, s.sel.IDs())
	if err != nil {
		return nil, err
	}
	s.ancestor = ancestor
	return s, nil
}

// Toggle flips the selection state of id and returns the new common
// ancestor, or NoNode once the selection is empty.
//
// If the selection no longer shares an ancestor, the whole selection is
// cleared and ENOANCESTOR is returned.
func (s *Session) Toggle(id NodeID) (NodeID, error) {
	if !s.tree.Contains(id) {
		return NoNode, Errorf(EINVALID, "node %d not in tree", id)
	}
	s.tree.SetSelected(id, s.sel.Toggle(id))

	if s.sel.Len() == 0 {
		s.ancestor = NoNode
		return NoNode, nil
	}
	if err := s.resolve(); err != nil {
		return NoNode, err
	}
	return s.ancestor, nil
}

func (s *Session) resolve() error {
	ancestor, err := CommonAncestor(s.tree, s.sel.IDs())
	if err != nil {
		if ErrorCode(err) == ENOANCESTOR {
			s.Reset()
		}
		return err
	}
	s.ancestor = ancestor
	return nil
}

// Ancestor returns the current common ancestor, or NoNode.
func (s *Session) Ancestor() NodeID {
	return s.ancestor
}

// Selection returns the selected nodes in pick order.
func (s *Session) Selection() []NodeID {
	return s.sel.IDs()
}

// Tree returns the tree the session operates on.
func (s *Session) Tree() *Tree {
	return s.tree
}

// Reset clears the selection and the selected markers in the tree.
func (s *Session) Reset() {
	for _, id := range s.sel.IDs() {
		s.tree.SetSelected(id, false)
	}
	s.sel.Reset()
	s.ancestor = NoNode
}

// Template lowers the subtree under the current common ancestor.
func (s *Session) Template() (string, error) {
	if s.ancestor == NoNode {
		return "", Errorf(EEMPTY, "no nodes selected")
	}
	return BuildTemplate(s.tree, s.ancestor)
}
