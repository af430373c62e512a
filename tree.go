package autohext

import (
	"fmt"
	"strings"
)

// NodeID identifies a node within a Tree. IDs are arena indexes and are only
// meaningful for the tree that issued them.
type NodeID int

// NoNode is the parent of a root node and the result of failed lookups.
const NoNode NodeID = -1

// TagCategory classifies elements whose attributes the template builder
// knows how to extract.
type TagCategory int

// Tag categories.
const (
	CategoryGeneric TagCategory = iota
	CategoryImage               // src is extractable
	CategoryLink                // href is extractable
)

// String returns the category name.
func (c TagCategory) String() string {
	switch c {
	case CategoryImage:
		return "image"
	case CategoryLink:
		return "link"
	default:
		return "generic"
	}
}

// CategoryFor resolves the category of a tag name, ignoring case.
func CategoryFor(tag string) TagCategory {
	switch {
	case strings.EqualFold(tag, "img"):
		return CategoryImage
	case strings.EqualFold(tag, "a"):
		return CategoryLink
	default:
		return CategoryGeneric
	}
}

// Node is a single element of a Tree.
type Node struct {
	Tag      string
	Category TagCategory
	Parent   NodeID
	Children []NodeID
	Attrs    map[string]string

	// Selected marks the node as a value to extract.
	Selected bool
}

// Attr returns the value of the named attribute, or "" if it is absent.
func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

// Tree is an arena of nodes linked by parent indexes. A tree may hold more
// than one root, e.g. when it was built from an HTML fragment with sibling
// top-level elements.
//
// Nodes are only ever appended, and a child is always appended after its
// parent, so parent chains built through AddRoot and AddChild are acyclic.
type Tree struct {
	nodes []Node
	roots []NodeID
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// AddRoot appends a new top-level node and returns its ID.
func (t *Tree) AddRoot(tag string, attrs map[string]string) NodeID {
	id := t.add(NoNode, tag, attrs)
	t.roots = append(t.roots, id)
	return id
}

// AddChild appends a node as the last child of parent and returns its ID.
// Panics if parent does not belong to the tree.
func (t *Tree) AddChild(parent NodeID, tag string, attrs map[string]string) NodeID {
	if !t.Contains(parent) {
		panic(fmt.Sprintf("autohext: parent %d not in tree", parent))
	}
	id := t.add(parent, tag, attrs)
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

func (t *Tree) add(parent NodeID, tag string, attrs map[string]string) NodeID {
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	t.nodes = append(t.nodes, Node{
		Tag:      tag,
		Category: CategoryFor(tag),
		Parent:   parent,
		Attrs:    copied,
	})
	return NodeID(len(t.nodes) - 1)
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Contains reports whether id refers to a node of the tree.
func (t *Tree) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Node returns the node with the given ID. The returned pointer is valid
// until the next node is added.
func (t *Tree) Node(id NodeID) *Node {
	if !t.Contains(id) {
		panic(fmt.Sprintf("autohext: node %d not in tree", id))
	}
	return &t.nodes[id]
}

// Roots returns the top-level nodes in insertion order.
func (t *Tree) Roots() []NodeID {
	return append([]NodeID(nil), t.roots...)
}

// Parent returns the parent of id, or NoNode for a root.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.Node(id).Parent
}

// Children returns the children of id in document order.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.Node(id).Children
}

// SetSelected sets the selected marker of a node.
func (t *Tree) SetSelected(id NodeID, selected bool) {
	t.Node(id).Selected = selected
}

// Selected returns the selected nodes in document order.
func (t *Tree) Selected() []NodeID {
	var ids []NodeID
	var walk func(NodeID)
	walk = func(id NodeID) {
		if t.nodes[id].Selected {
			ids = append(ids, id)
		}
		for _, c := range t.nodes[id].Children {
			walk(c)
		}
	}
	for _, r := range t.roots {
		walk(r)
	}
	return ids
}

// Depth returns the number of parent hops from id to its root. A root has
// depth 0.
//
// Panics if the parent chain is malformed: an ID outside the arena or a
// chain longer than the tree itself (a cycle).
func (t *Tree) Depth(id NodeID) int {
	depth := 0
	for parent := t.Node(id).Parent; parent != NoNode; parent = t.Node(parent).Parent {
		depth++
		if depth > len(t.nodes) {
			panic(fmt.Sprintf("autohext: malformed parent chain at node %d", id))
		}
	}
	return depth
}
