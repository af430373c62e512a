package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/autohext/cmd/autohext"
	"github.com/fwojciec/autohext/goquery"
	"github.com/fwojciec/autohext/htmltomarkdown"
	"github.com/stretchr/testify/require"
)

const listRecord = `<html><body><ul id="list">
<li class="item"><span class="-autoscrape-selected">Alpha</span><a class="-autoscrape-selected" href="/a">Link</a></li>
<li class="item"><span>Beta</span><a href="/b">Link</a></li>
</ul></body></html>`

const listHext = `<LI><SPAN @text:COLUMN-1 /><A @text:COLUMN-2 href:COLUMN-3 /></LI>`

const cardFragment = `<div class="card"><img class="-autoscrape-selected" src="/i.png"><p>caption</p></div>`

// writeRecord writes an HTML record into dir and returns its path.
func writeRecord(t *testing.T, dir, name, html string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))
	return path
}

// newDeps returns dependencies wired to the real parser and converter.
func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Parser:    goquery.NewParser(),
		Converter: htmltomarkdown.NewConverter(htmltomarkdown.WithHighlightClass(goquery.DefaultSelectedClass)),
	}, stdout, stderr
}
