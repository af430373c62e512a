// Package goquery provides the HTML document tree provider backed by
// golang.org/x/net/html and github.com/PuerkitoBio/goquery.
package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/autohext"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultSelectedClass is the class that marks a node as selected in an
// HTML record.
const DefaultSelectedClass = "-autoscrape-selected"

// TagCase controls how element names are written into the tree.
type TagCase int

// Tag cases.
const (
	// TagCaseUpper upper-cases element names, as a DOM tagName does.
	TagCaseUpper TagCase = iota

	// TagCaseParsed keeps element names as the HTML parser reports them.
	TagCaseParsed
)

// Ensure Parser implements autohext.DocumentParser at compile time.
var _ autohext.DocumentParser = (*Parser)(nil)

// Parser builds autohext trees from HTML. Only element nodes become tree
// nodes; text and comments are dropped.
type Parser struct {
	selectedClass string
	tagCase       TagCase
}

// Option configures a Parser.
type Option func(*Parser)

// WithSelectedClass sets the class that marks selected nodes.
func WithSelectedClass(class string) Option {
	return func(p *Parser) {
		p.selectedClass = class
	}
}

// WithTagCase sets how element names are written into the tree.
func WithTagCase(c TagCase) Option {
	return func(p *Parser) {
		p.tagCase = c
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		selectedClass: DefaultSelectedClass,
		tagCase:       TagCaseUpper,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a complete HTML document. The <html> element is the root.
func (p *Parser) Parse(s string) (autohext.Document, error) {
	if strings.TrimSpace(s) == "" {
		return nil, autohext.Errorf(autohext.EINVALID, "empty HTML input")
	}

	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, autohext.Errorf(autohext.EINVALID, "failed to parse HTML: %v", err)
	}

	return p.build(root), nil
}

// ParseFragment parses an HTML snippet in a <template> context, which keeps
// table parts such as a bare <tr> or <td>. Each top-level element becomes a
// root of the tree.
func (p *Parser) ParseFragment(s string) (autohext.Document, error) {
	if strings.TrimSpace(s) == "" {
		return nil, autohext.Errorf(autohext.EINVALID, "empty HTML input")
	}

	context := &html.Node{Type: html.ElementNode, Data: "template", DataAtom: atom.Template}
	nodes, err := html.ParseFragment(strings.NewReader(s), context)
	if err != nil {
		return nil, autohext.Errorf(autohext.EINVALID, "failed to parse HTML fragment: %v", err)
	}

	// goquery needs a single root to search from.
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return p.build(container), nil
}

// build converts the element descendants of container into a tree.
func (p *Parser) build(container *html.Node) *Document {
	d := &Document{
		doc:   goquery.NewDocumentFromNode(container),
		tree:  autohext.NewTree(),
		ids:   make(map[*html.Node]autohext.NodeID),
		class: p.selectedClass,
	}

	var walk func(n *html.Node, parent autohext.NodeID)
	walk = func(n *html.Node, parent autohext.NodeID) {
		if n.Type != html.ElementNode {
			return
		}

		var id autohext.NodeID
		if parent == autohext.NoNode {
			id = d.tree.AddRoot(p.tag(n), attrs(n))
		} else {
			id = d.tree.AddChild(parent, p.tag(n), attrs(n))
		}
		if p.selectedClass != "" && hasClass(n, p.selectedClass) {
			d.tree.SetSelected(id, true)
		}
		d.ids[n] = id
		d.nodes = append(d.nodes, n)

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, id)
		}
	}

	for c := container.FirstChild; c != nil; c = c.NextSibling {
		walk(c, autohext.NoNode)
	}

	return d
}

func (p *Parser) tag(n *html.Node) string {
	if p.tagCase == TagCaseUpper {
		return strings.ToUpper(n.Data)
	}
	return n.Data
}

func attrs(n *html.Node) map[string]string {
	m := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		m[a.Key] = a.Val
	}
	return m
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return slices.Contains(strings.Fields(a.Val), class)
		}
	}
	return false
}

// setClass adds or removes class from the class attribute of n. An emptied
// class attribute is dropped.
func setClass(n *html.Node, class string, on bool) {
	if hasClass(n, class) == on {
		return
	}
	for i, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		fields := slices.DeleteFunc(strings.Fields(a.Val), func(c string) bool { return c == class })
		if on {
			fields = append(fields, class)
		}
		if len(fields) == 0 {
			n.Attr = slices.Delete(n.Attr, i, i+1)
			return
		}
		n.Attr[i].Val = strings.Join(fields, " ")
		return
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}
