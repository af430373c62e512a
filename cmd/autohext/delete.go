package main

import (
	"fmt"

	"github.com/fwojciec/autohext"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return autohext.Errorf(autohext.EINVALID, "use --force to confirm deletion")
	}

	tmpl, err := findTemplateByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Templates.DeleteTemplate(deps.Ctx, tmpl.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autohext.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted template %q\n", tmpl.Name)
	return nil
}
