// Package fs provides file-based input and output for templates.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/autohext"
	"github.com/gosimple/slug"
)

// Extension is the file extension of written templates.
const Extension = ".hext"

// TemplatePath converts a template name to a file name.
// Example: "Contract Rows/2018" → contract-rows-2018.hext
func TemplatePath(name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		return "", autohext.Errorf(autohext.EINVALID, "invalid template name %q", name)
	}
	return base + Extension, nil
}

// Ensure Writer implements autohext.TemplateWriter at compile time.
var _ autohext.TemplateWriter = (*Writer)(nil)

// Writer writes templates as .hext files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteTemplate writes the template text to <baseDir>/<name>.hext.
// The file is written to a temporary name first and renamed into place, so
// readers never observe a partial template.
func (w *Writer) WriteTemplate(ctx context.Context, tmpl *autohext.Template) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	relPath, err := TemplatePath(tmpl.Name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	finalPath := filepath.Join(w.baseDir, relPath)
	tempPath := finalPath + ".tmp"
	if err := os.WriteFile(tempPath, []byte(tmpl.Hext+"\n"), 0644); err != nil {
		return err
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		_ = os.Remove(tempPath)
		return err
	}

	return nil
}
