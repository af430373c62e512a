package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/autohext"
	main "github.com/fwojciec/autohext/cmd/autohext"
	"github.com/fwojciec/autohext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints templates", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Templates = &mock.TemplateService{
			FindTemplatesFn: func(_ context.Context, _ autohext.TemplateFilter) ([]*autohext.Template, error) {
				return []*autohext.Template{
					{ID: "tmpl-1", Name: "shop", Columns: 3, Source: "shop.html"},
					{ID: "tmpl-2", Name: "blog", Columns: 1, Source: "blog.html"},
				}, nil
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "tmpl-1  shop  3  shop.html\ntmpl-2  blog  1  blog.html\n", stdout.String())
	})

	t.Run("prints hint when empty", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Templates = &mock.TemplateService{
			FindTemplatesFn: func(_ context.Context, _ autohext.TemplateFilter) ([]*autohext.Template, error) {
				return nil, nil
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "autohext save")
	})

	t.Run("reports store errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Templates = &mock.TemplateService{
			FindTemplatesFn: func(_ context.Context, _ autohext.TemplateFilter) ([]*autohext.Template, error) {
				return nil, errors.New("disk I/O error")
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: Internal error\n", stderr.String())
	})
}
