package main

import (
	"fmt"

	"github.com/fwojciec/autohext"
	"github.com/fwojciec/autohext/fs"
)

// loadRecord reads and parses an example record, then applies the CSS
// selectors, if any, in place of the class markers found in the record.
func loadRecord(deps *Dependencies, path string, flags SelectionFlags) (autohext.Document, error) {
	html, err := fs.ReadRecord(path)
	if err != nil {
		return nil, err
	}

	var doc autohext.Document
	if flags.Fragment {
		doc, err = deps.Parser.ParseFragment(html)
	} else {
		doc, err = deps.Parser.Parse(html)
	}
	if err != nil {
		return nil, err
	}

	if err := selectNodes(doc, flags.Select); err != nil {
		return nil, err
	}
	return doc, nil
}

func selectNodes(doc autohext.Document, selectors []string) error {
	if len(selectors) == 0 {
		return nil
	}

	tree := doc.Tree()
	for _, id := range tree.Selected() {
		tree.SetSelected(id, false)
	}
	for _, s := range selectors {
		ids, err := doc.Select(s)
		if err != nil {
			return err
		}
		for _, id := range ids {
			tree.SetSelected(id, true)
		}
	}
	return nil
}

// buildTemplate lowers a loaded record. A fragment is lowered whole; a full
// document is lowered from the common ancestor of its selected nodes.
func buildTemplate(doc autohext.Document, fragment bool) (string, error) {
	if fragment {
		return autohext.BuildFragmentTemplate(doc.Tree())
	}
	sess, err := autohext.NewSession(doc.Tree())
	if err != nil {
		return "", err
	}
	return sess.Template()
}

// reportError prints err to stderr, with a hint for errors the user can fix
// by changing the selection.
func reportError(deps *Dependencies, err error) {
	fmt.Fprintf(deps.Stderr, "error: %s\n", autohext.ErrorMessage(err))
	switch autohext.ErrorCode(err) {
	case autohext.EEMPTY:
		fmt.Fprintln(deps.Stderr, "Hint: mark nodes with the selected class or pass --select")
	case autohext.ENOANCESTOR:
		fmt.Fprintln(deps.Stderr, "Hint: select nodes below the document root")
	case autohext.EMULTIROOT:
		fmt.Fprintln(deps.Stderr, "Hint: wrap the fragment in a single element")
	}
}
