package autohext

import (
	"regexp"
	"strconv"
	"strings"
)

// ColumnPrefix prefixes the number of every extraction slot in a template.
const ColumnPrefix = "COLUMN-"

// BuildTemplate lowers the subtree rooted at root into a Hext template.
//
// Nodes are visited pre-order with children in document order. A selected
// node extracts its text, and additionally its src (images) or href (links)
// when that attribute is non-empty. Columns are numbered from 1 in emission
// order. No source attribute survives into the output. The tree is not
// modified.
func BuildTemplate(t *Tree, root NodeID) (string, error) {
	if !t.Contains(root) {
		return "", Errorf(EINVALID, "node %d not in tree", root)
	}
	b := &hextBuilder{tree: t, column: 1}
	b.lower(root)
	return b.sb.String(), nil
}

// BuildFragmentTemplate lowers a tree that must have exactly one root.
// Returns EMULTIROOT if the tree has sibling top-level nodes.
func BuildFragmentTemplate(t *Tree) (string, error) {
	roots := t.Roots()
	switch len(roots) {
	case 0:
		return "", Errorf(EINVALID, "fragment has no root node")
	case 1:
		return BuildTemplate(t, roots[0])
	default:
		return "", Errorf(EMULTIROOT, "cannot build a Hext template from %d root nodes", len(roots))
	}
}

// hextBuilder carries the column counter for a single lowering pass.
type hextBuilder struct {
	tree   *Tree
	column int
	sb     strings.Builder
}

func (b *hextBuilder) lower(id NodeID) {
	n := b.tree.Node(id)
	selectors := b.selectors(n)

	b.sb.WriteByte('<')
	b.sb.WriteString(n.Tag)
	if selectors != "" {
		b.sb.WriteByte(' ')
		b.sb.WriteString(selectors)
	}

	if len(n.Children) == 0 {
		b.sb.WriteString(" />")
		return
	}

	b.sb.WriteByte('>')
	for _, c := range n.Children {
		b.lower(c)
	}
	b.sb.WriteString("</")
	b.sb.WriteString(n.Tag)
	b.sb.WriteByte('>')
}

func (b *hextBuilder) selectors(n *Node) string {
	if !n.Selected {
		return ""
	}

	tokens := []string{b.next("@text")}
	switch n.Category {
	case CategoryImage:
		if n.Attr("src") != "" {
			tokens = append(tokens, b.next("src"))
		}
	case CategoryLink:
		if n.Attr("href") != "" {
			tokens = append(tokens, b.next("href"))
		}
	}
	return strings.Join(tokens, " ")
}

// next returns a selector token for key and advances the column counter.
func (b *hextBuilder) next(key string) string {
	token := key + ":" + ColumnPrefix + strconv.Itoa(b.column)
	b.column++
	return token
}

var columnRe = regexp.MustCompile(`:` + ColumnPrefix + `\d+`)

// CountColumns returns the number of column tokens in a Hext template.
func CountColumns(hext string) int {
	return len(columnRe.FindAllStringIndex(hext, -1))
}
