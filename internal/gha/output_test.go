package gha

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteOutput(t *testing.T) {
	t.Run("should append a heredoc-delimited output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output")
		w := NewWriter(path, "")

		err := w.WriteOutput("review_result", "line one\nline two")

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		pattern := regexp.MustCompile(`(?s)^review_result<<(ghadelimiter_[0-9a-f]{16})\nline one\nline two\n(ghadelimiter_[0-9a-f]{16})\n$`)
		m := pattern.FindStringSubmatch(string(data))
		require.NotNil(t, m, "output file %q does not match the heredoc format", string(data))
		assert.Equal(t, m[1], m[2], "opening and closing delimiters must match")
	})

	t.Run("should append multiple outputs to the same file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output")
		w := NewWriter(path, "")

		require.NoError(t, w.WriteOutput("entire_prompt_body", "the prompt"))
		require.NoError(t, w.WriteOutput("review_result", "the review"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "entire_prompt_body<<")
		assert.Contains(t, string(data), "review_result<<")
		assert.Less(t,
			strings.Index(string(data), "entire_prompt_body"),
			strings.Index(string(data), "review_result"))
	})

	t.Run("should be a no-op without an output path", func(t *testing.T) {
		w := NewWriter("", "")

		assert.NoError(t, w.WriteOutput("pr_number", "42"))
	})
}

func TestWriter_AppendSummary(t *testing.T) {
	t.Run("should append markdown with a trailing newline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "summary")
		w := NewWriter("", path)

		err := w.AppendSummary("## Review posted")

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "## Review posted\n", string(data))
	})

	t.Run("should be a no-op without a summary path", func(t *testing.T) {
		w := NewWriter("", "")

		assert.NoError(t, w.AppendSummary("## Review posted"))
	})
}
