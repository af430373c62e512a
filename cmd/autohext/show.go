package main

import (
	"fmt"

	"github.com/fwojciec/autohext"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	tmpl, err := findTemplateByName(deps, c.Name)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, tmpl.Hext)
	return nil
}

// findTemplateByName looks up a template by its unique name and reports a
// missing template on stderr.
func findTemplateByName(deps *Dependencies, name string) (*autohext.Template, error) {
	templates, err := deps.Templates.FindTemplates(deps.Ctx, autohext.TemplateFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autohext.ErrorMessage(err))
		return nil, err
	}

	if len(templates) == 0 {
		fmt.Fprintf(deps.Stderr, "error: template %q not found. Use 'autohext list' to see available templates.\n", name)
		return nil, autohext.Errorf(autohext.ENOTFOUND, "template %q not found", name)
	}
	return templates[0], nil
}
