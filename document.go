package autohext

// Document is a parsed source document exposed as a Tree.
type Document interface {
	// Tree returns the element tree of the document.
	Tree() *Tree

	// Select returns the nodes matching a CSS selector in document order.
	// Returns EINVALID if the selector cannot be compiled.
	Select(selector string) ([]NodeID, error)

	// OuterHTML renders the source markup of a node and its descendants.
	// Returns EINVALID if id does not belong to the document.
	OuterHTML(id NodeID) (string, error)
}

// DocumentParser builds Documents from HTML.
type DocumentParser interface {
	// Parse parses a complete HTML document. The tree has a single root.
	Parse(html string) (Document, error)

	// ParseFragment parses an HTML snippet. Every top-level element of the
	// snippet becomes a root of the tree.
	ParseFragment(html string) (Document, error)
}
