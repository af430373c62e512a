package mock

import "github.com/fwojciec/autohext"

var _ autohext.Document = (*Document)(nil)

// Document is a mock implementation of autohext.Document.
type Document struct {
	TreeFn      func() *autohext.Tree
	SelectFn    func(selector string) ([]autohext.NodeID, error)
	OuterHTMLFn func(id autohext.NodeID) (string, error)
}

func (d *Document) Tree() *autohext.Tree {
	return d.TreeFn()
}

func (d *Document) Select(selector string) ([]autohext.NodeID, error) {
	return d.SelectFn(selector)
}

func (d *Document) OuterHTML(id autohext.NodeID) (string, error) {
	return d.OuterHTMLFn(id)
}

var _ autohext.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of autohext.DocumentParser.
type DocumentParser struct {
	ParseFn         func(html string) (autohext.Document, error)
	ParseFragmentFn func(html string) (autohext.Document, error)
}

func (p *DocumentParser) Parse(html string) (autohext.Document, error) {
	return p.ParseFn(html)
}

func (p *DocumentParser) ParseFragment(html string) (autohext.Document, error) {
	return p.ParseFragmentFn(html)
}
