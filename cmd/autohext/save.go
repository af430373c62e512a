package main

import (
	"fmt"

	"github.com/fwojciec/autohext"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	doc, err := loadRecord(deps, c.File, c.SelectionFlags)
	if err != nil {
		reportError(deps, err)
		return err
	}

	hext, err := buildTemplate(doc, c.Fragment)
	if err != nil {
		reportError(deps, err)
		return err
	}

	tmpl := &autohext.Template{
		Name:   c.Name,
		Source: c.File,
		Hext:   hext,
	}
	if err := deps.Templates.CreateTemplate(deps.Ctx, tmpl); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autohext.ErrorMessage(err))
		if autohext.ErrorCode(err) == autohext.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "Hint: use 'autohext delete %s --force' first\n", c.Name)
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved template %q (%d columns)\n", tmpl.Name, tmpl.Columns)

	// Identical templates usually mean the same site was recorded twice.
	dupes, err := deps.Templates.FindTemplates(deps.Ctx, autohext.TemplateFilter{Fingerprint: &tmpl.Fingerprint})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autohext.ErrorMessage(err))
		return err
	}
	for _, d := range dupes {
		if d.ID != tmpl.ID {
			fmt.Fprintf(deps.Stdout, "Note: identical to template %q\n", d.Name)
		}
	}
	return nil
}
