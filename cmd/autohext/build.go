package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/autohext"
	"github.com/fwojciec/autohext/fs"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if c.Concurrency < 1 {
		fmt.Fprintf(deps.Stderr, "error: concurrency must be at least 1\n")
		return autohext.Errorf(autohext.EINVALID, "concurrency must be at least 1")
	}

	if deps.Writer != nil {
		if err := checkTemplateNames(c.Files); err != nil {
			reportError(deps, err)
			return err
		}
	}

	hexts := make([]string, len(c.Files))
	errs := make([]error, len(c.Files))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, path := range c.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := loadRecord(deps, path, c.SelectionFlags)
			if err != nil {
				errs[i] = recordError(path, err)
				return nil
			}
			hext, err := buildTemplate(doc, c.Fragment)
			if err != nil {
				errs[i] = recordError(path, err)
				return nil
			}
			hexts[i] = hext
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		reportError(deps, err)
		return err
	}

	// Every failing record is reported, not only the first.
	if err := multierr.Combine(errs...); err != nil {
		for _, e := range multierr.Errors(err) {
			reportError(deps, e)
		}
		return err
	}

	if deps.Writer != nil {
		for i, path := range c.Files {
			tmpl := &autohext.Template{
				Name:    templateName(path),
				Source:  path,
				Hext:    hexts[i],
				Columns: autohext.CountColumns(hexts[i]),
			}
			if err := deps.Writer.WriteTemplate(deps.Ctx, tmpl); err != nil {
				reportError(deps, err)
				return err
			}
			fmt.Fprintf(deps.Stdout, "Wrote %s (%d columns)\n", tmpl.Name, tmpl.Columns)
		}
		return nil
	}

	for i, path := range c.Files {
		if len(c.Files) > 1 {
			fmt.Fprintf(deps.Stdout, "# %s\n", path)
		}
		fmt.Fprintln(deps.Stdout, hexts[i])
	}
	return nil
}

// recordError prefixes an error message with the record path and keeps the
// error code.
func recordError(path string, err error) error {
	return autohext.Errorf(autohext.ErrorCode(err), "%s: %s", path, autohext.ErrorMessage(err))
}

// checkTemplateNames rejects records that would be written to the same
// template file.
func checkTemplateNames(paths []string) error {
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		file, err := fs.TemplatePath(templateName(path))
		if err != nil {
			return recordError(path, err)
		}
		if prev, ok := seen[file]; ok {
			return autohext.Errorf(autohext.ECONFLICT, "%s and %s would both be written to %s", prev, path, file)
		}
		seen[file] = path
	}
	return nil
}

// templateName derives a template name from a record path.
func templateName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
