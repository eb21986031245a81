package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/gemini-review-action/internal/models"
)

func TestRenderPrompt(t *testing.T) {
	t.Run("should inject the reviews into the summarize template", func(t *testing.T) {
		rendered, err := RenderPrompt("summarize", GetSummarizePromptTemplate("en"), PromptData{
			Reviews: "chunk one review\nchunk two review",
		})

		require.NoError(t, err)
		assert.Contains(t, rendered, "Can you summarize this for me?")
		assert.Contains(t, rendered, "chunk one review\nchunk two review")
	})

	t.Run("should fail on a malformed template", func(t *testing.T) {
		_, err := RenderPrompt("broken", "{{.Reviews", PromptData{})

		assert.Error(t, err)
	})

	t.Run("should fail on an unknown field", func(t *testing.T) {
		_, err := RenderPrompt("unknown", "{{.Nope}}", PromptData{})

		assert.Error(t, err)
	})
}

func TestGetReviewPromptTemplate(t *testing.T) {
	t.Run("should select the diff primer by default", func(t *testing.T) {
		prompt := GetReviewPromptTemplate("en", models.CommandReviewDiff)

		assert.Contains(t, prompt, "difference between the GitHub file codes")
	})

	t.Run("should select the repository primer for review all", func(t *testing.T) {
		prompt := GetReviewPromptTemplate("en", models.CommandReviewAll)

		assert.Contains(t, prompt, "contents of a repository")
	})

	t.Run("should select the next steps primer for suggest", func(t *testing.T) {
		prompt := GetReviewPromptTemplate("en", models.CommandSuggest)

		assert.Contains(t, prompt, "next steps")
	})

	t.Run("should select spanish templates", func(t *testing.T) {
		prompt := GetReviewPromptTemplate("es", models.CommandReviewDiff)

		assert.Contains(t, prompt, "pull request")
		assert.Contains(t, prompt, "ingeniero de software")
	})

	t.Run("should fall back to english for unsupported languages", func(t *testing.T) {
		prompt := GetReviewPromptTemplate("fr", models.CommandReviewDiff)

		assert.Equal(t, GetReviewPromptTemplate("en", models.CommandReviewDiff), prompt)
	})
}

func TestGetNoChangesPrompt(t *testing.T) {
	t.Run("should keep the documented english instruction", func(t *testing.T) {
		assert.Equal(t,
			"Say that you didn't find any relevant changes to comment on any file",
			GetNoChangesPrompt("en"))
	})
}
