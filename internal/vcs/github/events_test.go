package github

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEvent(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))
	return path
}

func TestParseIssueCommentEvent(t *testing.T) {
	t.Run("should extract the PR number from the pull_request url", func(t *testing.T) {
		path := writeEvent(t, `{
			"issue": {
				"number": 42,
				"pull_request": {
					"url": "https://api.github.com/repos/octocat/hello-world/pulls/42"
				}
			},
			"comment": {"body": "gemini review all"}
		}`)

		event, err := ParseIssueCommentEvent(path)

		require.NoError(t, err)
		assert.True(t, event.IsPullRequest)
		assert.Equal(t, 42, event.PRNumber)
		assert.Equal(t, "gemini review all", event.CommentBody)
	})

	t.Run("should flag comments on plain issues without error", func(t *testing.T) {
		path := writeEvent(t, `{
			"issue": {"number": 7},
			"comment": {"body": "just a question"}
		}`)

		event, err := ParseIssueCommentEvent(path)

		require.NoError(t, err)
		assert.False(t, event.IsPullRequest)
		assert.Zero(t, event.PRNumber)
		assert.Equal(t, "just a question", event.CommentBody)
	})

	t.Run("should fail on a missing payload file", func(t *testing.T) {
		_, err := ParseIssueCommentEvent(filepath.Join(t.TempDir(), "nope.json"))

		assert.ErrorContains(t, err, "event payload file not found")
	})

	t.Run("should fail on malformed JSON", func(t *testing.T) {
		path := writeEvent(t, `{"issue": `)

		_, err := ParseIssueCommentEvent(path)

		assert.ErrorContains(t, err, "not a valid issue_comment event")
	})

	t.Run("should fail when the pull_request url has no number", func(t *testing.T) {
		path := writeEvent(t, `{
			"issue": {
				"number": 42,
				"pull_request": {"url": "https://api.github.com/repos/octocat/hello-world/pulls/"}
			},
			"comment": {"body": "gemini review diff"}
		}`)

		_, err := ParseIssueCommentEvent(path)

		assert.Error(t, err)
	})

	t.Run("should fail when issue number and url disagree", func(t *testing.T) {
		path := writeEvent(t, `{
			"issue": {
				"number": 41,
				"pull_request": {"url": "https://api.github.com/repos/octocat/hello-world/pulls/42"}
			},
			"comment": {"body": "gemini review diff"}
		}`)

		_, err := ParseIssueCommentEvent(path)

		assert.Error(t, err)
	})
}
