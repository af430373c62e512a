package main

import (
	"fmt"

	"github.com/fwojciec/autohext"
)

// Run executes the lca command.
func (c *LCACmd) Run(deps *Dependencies) error {
	doc, err := loadRecord(deps, c.File, c.SelectionFlags)
	if err != nil {
		reportError(deps, err)
		return err
	}

	sess, err := autohext.NewSession(doc.Tree())
	if err != nil {
		reportError(deps, err)
		return err
	}
	if sess.Ancestor() == autohext.NoNode {
		err := autohext.Errorf(autohext.EEMPTY, "no nodes selected")
		reportError(deps, err)
		return err
	}

	chunk, err := doc.OuterHTML(sess.Ancestor())
	if err != nil {
		reportError(deps, err)
		return err
	}

	if c.Markdown {
		chunk, err = deps.Converter.Convert(chunk)
		if err != nil {
			reportError(deps, err)
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, chunk)
	return nil
}
