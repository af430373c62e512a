package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/autohext"
	"github.com/fwojciec/autohext/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tmplName string
		want     string
		wantErr  bool
	}{
		{
			name:     "simple name",
			tmplName: "contracts",
			want:     "contracts.hext",
		},
		{
			name:     "spaces become hyphens and case is folded",
			tmplName: "Contract Rows",
			want:     "contract-rows.hext",
		},
		{
			name:     "path separators and dots are flattened",
			tmplName: "sites/example.com/rows",
			want:     "sites-example-com-rows.hext",
		},
		{
			name:     "collapses repeated separators",
			tmplName: "a / b",
			want:     "a-b.hext",
		},
		{
			name:     "cannot escape the directory",
			tmplName: "../secret",
			want:     "secret.hext",
		},
		{
			name:     "transliterates accents",
			tmplName: "café",
			want:     "cafe.hext",
		},
		{
			name:     "empty name",
			tmplName: "   ",
			wantErr:  true,
		},
		{
			name:     "only separators",
			tmplName: "//",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.TemplatePath(tt.tmplName)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, autohext.EINVALID, autohext.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriter_WriteTemplate(t *testing.T) {
	t.Parallel()

	t.Run("writes template text to name.hext", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		err := w.WriteTemplate(context.Background(), &autohext.Template{
			Name: "contracts",
			Hext: `<TR><TD @text:COLUMN-1 /></TR>`,
		})

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(baseDir, "contracts.hext"))
		require.NoError(t, err)
		assert.Equal(t, "<TR><TD @text:COLUMN-1 /></TR>\n", string(content))

		_, err = os.Stat(filepath.Join(baseDir, "contracts.hext.tmp"))
		assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")
	})

	t.Run("creates the output directory", func(t *testing.T) {
		t.Parallel()

		baseDir := filepath.Join(t.TempDir(), "out", "templates")
		w := fs.NewWriter(baseDir)

		err := w.WriteTemplate(context.Background(), &autohext.Template{
			Name: "rows",
			Hext: `<DIV />`,
		})

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(baseDir, "rows.hext"))
		require.NoError(t, err)
	})

	t.Run("overwrites an existing template", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)
		ctx := context.Background()

		require.NoError(t, w.WriteTemplate(ctx, &autohext.Template{Name: "rows", Hext: `<A />`}))
		require.NoError(t, w.WriteTemplate(ctx, &autohext.Template{Name: "rows", Hext: `<B />`}))

		content, err := os.ReadFile(filepath.Join(baseDir, "rows.hext"))
		require.NoError(t, err)
		assert.Equal(t, "<B />\n", string(content))
	})

	t.Run("validates template", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteTemplate(context.Background(), &autohext.Template{Name: "empty"})

		require.Error(t, err)
		assert.Equal(t, autohext.EINVALID, autohext.ErrorCode(err))
	})
}
