package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/thomas-vilte/gemini-review-action/internal/config"
	"github.com/thomas-vilte/gemini-review-action/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctorTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	translations, err := i18n.NewTranslations("en")
	require.NoError(t, err)
	return translations
}

func TestDoctorCommand_checkReviewEnv(t *testing.T) {
	t.Run("should name the first missing variable", func(t *testing.T) {
		translations := doctorTranslations(t)
		cfg := &config.Config{
			GeminiAPIKey: "AIzaKey",
			// GITHUB_TOKEN intentionally absent
			Repository:        "octocat/hello-world",
			PullRequestNumber: "42",
			CommitHash:        "abc",
		}

		result := NewDoctorCommand().checkReviewEnv(context.Background(), translations, cfg)

		assert.Equal(t, checkStatusError, result.status)
		assert.Contains(t, result.message, "GITHUB_TOKEN")
	})

	t.Run("should pass with a complete contract", func(t *testing.T) {
		translations := doctorTranslations(t)
		cfg := &config.Config{
			GeminiAPIKey:      "AIzaKey",
			GitHubToken:       "tok",
			Repository:        "octocat/hello-world",
			PullRequestNumber: "42",
			CommitHash:        "abc",
		}

		result := NewDoctorCommand().checkReviewEnv(context.Background(), translations, cfg)

		assert.Equal(t, checkStatusOK, result.status)
	})
}

func TestDoctorCommand_checkRepository(t *testing.T) {
	t.Run("should reject a malformed repository", func(t *testing.T) {
		translations := doctorTranslations(t)
		cfg := &config.Config{Repository: "not-a-slug"}

		result := NewDoctorCommand().checkRepository(context.Background(), translations, cfg)

		assert.Equal(t, checkStatusError, result.status)
	})

	t.Run("should report the parsed owner and name", func(t *testing.T) {
		translations := doctorTranslations(t)
		cfg := &config.Config{Repository: "octocat/hello-world"}

		result := NewDoctorCommand().checkRepository(context.Background(), translations, cfg)

		assert.Equal(t, checkStatusOK, result.status)
		assert.Contains(t, result.message, "octocat/hello-world")
	})
}

func TestDoctorCommand_checkEventPayload(t *testing.T) {
	t.Run("should warn when the event path is unset", func(t *testing.T) {
		translations := doctorTranslations(t)
		cfg := &config.Config{}

		result := NewDoctorCommand().checkEventPayload(context.Background(), translations, cfg)

		assert.Equal(t, checkStatusWarning, result.status)
	})

	t.Run("should parse a pull request comment payload", func(t *testing.T) {
		translations := doctorTranslations(t)
		eventPath := filepath.Join(t.TempDir(), "event.json")
		payload := `{
			"issue": {
				"number": 42,
				"pull_request": {"url": "https://api.github.com/repos/octocat/hello-world/pulls/42"}
			},
			"comment": {"body": "gemini review"}
		}`
		require.NoError(t, os.WriteFile(eventPath, []byte(payload), 0644))
		cfg := &config.Config{EventPath: eventPath}

		result := NewDoctorCommand().checkEventPayload(context.Background(), translations, cfg)

		assert.Equal(t, checkStatusOK, result.status)
		assert.Contains(t, result.message, "#42")
	})

	t.Run("should fail on a malformed payload", func(t *testing.T) {
		translations := doctorTranslations(t)
		eventPath := filepath.Join(t.TempDir(), "event.json")
		require.NoError(t, os.WriteFile(eventPath, []byte("{"), 0644))
		cfg := &config.Config{EventPath: eventPath}

		result := NewDoctorCommand().checkEventPayload(context.Background(), translations, cfg)

		assert.Equal(t, checkStatusError, result.status)
	})
}

func TestDoctorCommand_checkGeminiKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want checkStatus
	}{
		{"should fail without a key", "", checkStatusError},
		{"should warn on an unexpected key shape", "sk-openai-style", checkStatusWarning},
		{"should pass a Google-shaped key", "AIzaSyExample", checkStatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translations := doctorTranslations(t)
			cfg := &config.Config{GeminiAPIKey: tt.key}

			result := NewDoctorCommand().checkGeminiKey(context.Background(), translations, cfg)

			assert.Equal(t, tt.want, result.status)
		})
	}
}
