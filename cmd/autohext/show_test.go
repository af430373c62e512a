package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/autohext"
	main "github.com/fwojciec/autohext/cmd/autohext"
	"github.com/fwojciec/autohext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	templates := &mock.TemplateService{
		FindTemplatesFn: func(_ context.Context, filter autohext.TemplateFilter) ([]*autohext.Template, error) {
			if filter.Name != nil && *filter.Name == "shop" {
				return []*autohext.Template{{ID: "tmpl-1", Name: "shop", Hext: listHext}}, nil
			}
			return nil, nil
		},
	}

	t.Run("prints the template", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Templates = templates

		err := (&main.ShowCmd{Name: "shop"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, listHext+"\n", stdout.String())
	})

	t.Run("reports unknown template", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Templates = templates

		err := (&main.ShowCmd{Name: "blog"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, autohext.ENOTFOUND, autohext.ErrorCode(err))
		assert.Contains(t, stderr.String(), "autohext list")
	})
}
