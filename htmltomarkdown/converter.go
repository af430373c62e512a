// Package htmltomarkdown renders HTML chunks as Markdown previews.
package htmltomarkdown

import (
	"slices"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/autohext"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Converter implements autohext.Converter at compile time.
var _ autohext.Converter = (*Converter)(nil)

// Converter renders record chunks as Markdown. Values marked with the
// highlight class are rendered in bold so a preview shows what a template
// will extract.
type Converter struct {
	conv  *converter.Converter
	class string
}

// Option configures a Converter.
type Option func(*Converter)

// WithHighlightClass sets the class of elements whose content is rendered
// in bold. Highlighting is off by default.
func WithHighlightClass(class string) Option {
	return func(c *Converter) {
		c.class = class
	}
}

// NewConverter creates a new Converter. Tables are kept as Markdown tables
// since record chunks are often table rows.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms an HTML chunk into Markdown.
func (c *Converter) Convert(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", autohext.Errorf(autohext.EINVALID, "empty HTML input")
	}

	if c.class != "" {
		var err error
		if s, err = c.highlight(s); err != nil {
			return "", err
		}
	}

	result, err := c.conv.ConvertString(s)
	if err != nil {
		return "", err
	}

	return result, nil
}

// Elements whose children cannot be wrapped in inline markup.
var containers = []atom.Atom{
	atom.Table, atom.Thead, atom.Tbody, atom.Tfoot, atom.Tr,
	atom.Ul, atom.Ol, atom.Dl, atom.Select,
}

func (c *Converter) highlight(s string) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return "", autohext.Errorf(autohext.EINVALID, "failed to parse HTML: %v", err)
	}

	var sb strings.Builder
	for _, n := range nodes {
		c.emphasize(n)
		if err := html.Render(&sb, n); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// emphasize moves the children of every highlighted element under a
// <strong> element.
func (c *Converter) emphasize(n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.emphasize(child)
	}

	if n.Type != html.ElementNode || n.FirstChild == nil || slices.Contains(containers, n.DataAtom) {
		return
	}
	if !hasClass(n, c.class) {
		return
	}

	strong := &html.Node{Type: html.ElementNode, Data: "strong", DataAtom: atom.Strong}
	for n.FirstChild != nil {
		child := n.FirstChild
		n.RemoveChild(child)
		strong.AppendChild(child)
	}
	n.AppendChild(strong)
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return slices.Contains(strings.Fields(a.Val), class)
		}
	}
	return false
}
