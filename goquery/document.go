package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/autohext"
	"golang.org/x/net/html"
)

// Ensure Document implements autohext.Document at compile time.
var _ autohext.Document = (*Document)(nil)

// Document is a parsed HTML document together with its element tree.
// Tree node IDs are assigned in document order.
type Document struct {
	doc   *goquery.Document
	tree  *autohext.Tree
	ids   map[*html.Node]autohext.NodeID
	nodes []*html.Node

	// class marks selected nodes in rendered markup.
	class string
}

// Tree returns the element tree of the document.
func (d *Document) Tree() *autohext.Tree {
	return d.tree
}

// Select returns the nodes matching a CSS selector in document order.
func (d *Document) Select(selector string) ([]autohext.NodeID, error) {
	if _, err := cascadia.Compile(selector); err != nil {
		return nil, autohext.Errorf(autohext.EINVALID, "invalid selector %q: %v", selector, err)
	}

	var ids []autohext.NodeID
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if id, ok := d.ids[sel.Get(0)]; ok {
			ids = append(ids, id)
		}
	})
	return ids, nil
}

// OuterHTML renders the markup of a node and its descendants. The selection
// marker class follows the current selection in the tree, so the chunk can
// be parsed again as a fragment with the same nodes selected.
func (d *Document) OuterHTML(id autohext.NodeID) (string, error) {
	if !d.tree.Contains(id) {
		return "", autohext.Errorf(autohext.EINVALID, "node %d not in document", id)
	}
	if d.class != "" {
		d.syncMarkers(id)
	}

	s, err := goquery.OuterHtml(d.doc.FindNodes(d.nodes[id]))
	if err != nil {
		return "", autohext.Errorf(autohext.EINTERNAL, "failed to render node %d: %v", id, err)
	}
	return s, nil
}

func (d *Document) syncMarkers(id autohext.NodeID) {
	setClass(d.nodes[id], d.class, d.tree.Node(id).Selected)
	for _, c := range d.tree.Children(id) {
		d.syncMarkers(c)
	}
}
