package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/autohext"
	"github.com/fwojciec/autohext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateWriter_WriteTemplate(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteTemplateFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *autohext.Template
		w := &mock.TemplateWriter{
			WriteTemplateFn: func(_ context.Context, tmpl *autohext.Template) error {
				calledWith = tmpl
				return nil
			},
		}

		tmpl := &autohext.Template{Name: "rows", Hext: `<DIV />`}
		err := w.WriteTemplate(context.Background(), tmpl)

		require.NoError(t, err)
		assert.Same(t, tmpl, calledWith)
	})

	t.Run("returns error from WriteTemplateFn", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("write failed")
		w := &mock.TemplateWriter{
			WriteTemplateFn: func(_ context.Context, _ *autohext.Template) error {
				return expectedErr
			},
		}

		err := w.WriteTemplate(context.Background(), &autohext.Template{})

		assert.ErrorIs(t, err, expectedErr)
	})
}
