package fedreg_test

import (
	"testing"

	"github.com/Sravan-create/fedreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		doc := &fedreg.Document{ID: "2024-09233", Title: "EPA Clean Air Rule"}

		require.NoError(t, doc.Validate())
	})

	t.Run("missing document number", func(t *testing.T) {
		t.Parallel()

		doc := &fedreg.Document{Title: "EPA Clean Air Rule"}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, fedreg.EINVALID, fedreg.ErrorCode(err))
		assert.Contains(t, fedreg.ErrorMessage(err), "document number")
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		doc := &fedreg.Document{ID: "2024-09233"}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, fedreg.EINVALID, fedreg.ErrorCode(err))
		assert.Contains(t, fedreg.ErrorMessage(err), "title")
	})
}
