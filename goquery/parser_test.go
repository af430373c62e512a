package goquery_test

import (
	"testing"

	"github.com/fwojciec/autohext"
	"github.com/fwojciec/autohext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordHTML = `<!DOCTYPE html>
<html>
<head><title>Contracts</title></head>
<body>
<table id="results">
	<tr>
		<td class="name -autoscrape-selected">Record 1</td>
		<td><a class="-autoscrape-selected" href="/r/1">details</a></td>
	</tr>
	<tr>
		<td class="name">Record 2</td>
		<td><a href="/r/2">details</a></td>
	</tr>
</table>
</body>
</html>`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("builds a single rooted element tree", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(recordHTML)
		require.NoError(t, err)

		tree := doc.Tree()
		roots := tree.Roots()
		require.Len(t, roots, 1)
		root := tree.Node(roots[0])
		assert.Equal(t, "HTML", root.Tag)

		var tags []string
		for _, c := range root.Children {
			tags = append(tags, tree.Node(c).Tag)
		}
		assert.Equal(t, []string{"HEAD", "BODY"}, tags)
	})

	t.Run("marks nodes carrying the selected class", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(recordHTML)
		require.NoError(t, err)

		tree := doc.Tree()
		selected := tree.Selected()
		require.Len(t, selected, 2)
		assert.Equal(t, "TD", tree.Node(selected[0]).Tag)
		assert.Equal(t, "A", tree.Node(selected[1]).Tag)
		assert.Equal(t, autohext.CategoryLink, tree.Node(selected[1]).Category)
		assert.Equal(t, "/r/1", tree.Node(selected[1]).Attr("href"))
	})

	t.Run("uses a custom selected class", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser(goquery.WithSelectedClass("pick"))
		doc, err := p.Parse(`<html><body><p class="pick">a</p><p>b</p></body></html>`)
		require.NoError(t, err)

		selected := doc.Tree().Selected()
		require.Len(t, selected, 1)
		assert.Equal(t, "P", doc.Tree().Node(selected[0]).Tag)
	})

	t.Run("keeps parser tag case when asked", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser(goquery.WithTagCase(goquery.TagCaseParsed))
		doc, err := p.Parse(`<html><body><DIV>a</DIV></body></html>`)
		require.NoError(t, err)

		root := doc.Tree().Roots()[0]
		assert.Equal(t, "html", doc.Tree().Node(root).Tag)
	})

	t.Run("drops text nodes", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().ParseFragment(`<p>one <b>two</b> three</p>`)
		require.NoError(t, err)

		tree := doc.Tree()
		assert.Equal(t, 2, tree.Len())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().Parse("   ")

		assert.Equal(t, autohext.EINVALID, autohext.ErrorCode(err))
	})
}

func TestParser_ParseFragment(t *testing.T) {
	t.Parallel()

	t.Run("single root fragment lowers to a template", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().ParseFragment(
			`<div class="x"><span class="-autoscrape-selected">a</span><a class="-autoscrape-selected" href="/x">b</a></div>`)
		require.NoError(t, err)

		got, err := autohext.BuildFragmentTemplate(doc.Tree())

		require.NoError(t, err)
		assert.Equal(t, `<DIV><SPAN @text:COLUMN-1 /><A @text:COLUMN-2 href:COLUMN-3 /></DIV>`, got)
	})

	t.Run("sibling roots are rejected by the template builder", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().ParseFragment(`<p>one</p><p>two</p>`)
		require.NoError(t, err)
		require.Len(t, doc.Tree().Roots(), 2)

		got, err := autohext.BuildFragmentTemplate(doc.Tree())

		assert.Empty(t, got)
		assert.Equal(t, autohext.EMULTIROOT, autohext.ErrorCode(err))
	})

	t.Run("keeps a bare table row", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().ParseFragment(
			`<tr><td class="-autoscrape-selected">a</td><td class="-autoscrape-selected">b</td></tr>`)
		require.NoError(t, err)

		hext, err := autohext.BuildFragmentTemplate(doc.Tree())

		require.NoError(t, err)
		assert.Equal(t, `<TR><TD @text:COLUMN-1 /><TD @text:COLUMN-2 /></TR>`, hext)
	})

	t.Run("keeps bare table cells as sibling roots", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().ParseFragment(`<td>a</td><td>b</td>`)
		require.NoError(t, err)

		roots := doc.Tree().Roots()
		require.Len(t, roots, 2)
		assert.Equal(t, "TD", doc.Tree().Node(roots[0]).Tag)
	})

	t.Run("ignores whitespace around the fragment", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().ParseFragment("\n  <ul><li>a</li></ul>\n")
		require.NoError(t, err)

		assert.Len(t, doc.Tree().Roots(), 1)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().ParseFragment("")

		assert.Equal(t, autohext.EINVALID, autohext.ErrorCode(err))
	})
}
