package main

import (
	"fmt"

	"github.com/fwojciec/autohext"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	templates, err := deps.Templates.FindTemplates(deps.Ctx, autohext.TemplateFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autohext.ErrorMessage(err))
		return err
	}

	if len(templates) == 0 {
		fmt.Fprintln(deps.Stdout, "No templates found. Use 'autohext save' to create one.")
		return nil
	}

	for _, t := range templates {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d  %s\n", t.ID, t.Name, t.Columns, t.Source)
	}

	return nil
}
