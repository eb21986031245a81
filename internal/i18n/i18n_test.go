package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations(t *testing.T) {
	t.Run("should resolve english messages by default", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)

		msg := trans.GetMessage("doctor.all_good", 0, nil)

		assert.Equal(t, "Everything looks good", msg)
	})

	t.Run("should resolve spanish messages when requested", func(t *testing.T) {
		trans, err := NewTranslations("es")
		require.NoError(t, err)

		msg := trans.GetMessage("doctor.all_good", 0, nil)

		assert.Equal(t, "Todo en orden", msg)
	})

	t.Run("should interpolate template data", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)

		msg := trans.GetMessage("review.starting", 0, map[string]interface{}{
			"PRNumber": 42,
		})

		assert.Equal(t, "Reviewing pull request #42", msg)
	})

	t.Run("should pluralize model calls", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)

		one := trans.GetMessage("ui.model_calls", 1, map[string]interface{}{"Count": 1})
		many := trans.GetMessage("ui.model_calls", 3, map[string]interface{}{"Count": 3})

		assert.Equal(t, "1 model call", one)
		assert.Equal(t, "3 model calls", many)
	})

	t.Run("should flag missing message ids", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)

		msg := trans.GetMessage("does.not.exist", 0, nil)

		assert.Equal(t, "Translation missing: does.not.exist", msg)
	})
}

func TestTranslations_SetLanguage(t *testing.T) {
	t.Run("should switch to a bundled language", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)

		require.NoError(t, trans.SetLanguage("es"))

		assert.Equal(t, "Todo en orden", trans.GetMessage("doctor.all_good", 0, nil))
	})

	t.Run("should reject an unsupported language", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)

		assert.Error(t, trans.SetLanguage("fr"))
	})
}
