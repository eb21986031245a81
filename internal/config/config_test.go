package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/gemini-review-action/internal/errors"
)

func setReviewEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "AIzaTestKey")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("GITHUB_REPOSITORY", "octocat/hello-world")
	t.Setenv("GITHUB_PULL_REQUEST_NUMBER", "42")
	t.Setenv("GIT_COMMIT_HASH", "abc1234")
}

func TestLoad(t *testing.T) {
	t.Run("should read the environment contract", func(t *testing.T) {
		setReviewEnv(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "AIzaTestKey", cfg.GeminiAPIKey)
		assert.Equal(t, "octocat/hello-world", cfg.Repository)
		assert.Equal(t, "42", cfg.PullRequestNumber)
	})

	t.Run("should apply flag defaults when nothing is passed", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultChunkSize, cfg.ChunkSize)
		assert.Equal(t, ModelGemini15ProLatest, cfg.Model)
		assert.Equal(t, DefaultTemperature, cfg.Temperature)
		assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
		assert.Equal(t, DefaultTopP, cfg.TopP)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, LangEN, cfg.Language)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("should pass with the full contract present", func(t *testing.T) {
		setReviewEnv(t)
		cfg, err := Load()
		require.NoError(t, err)

		assert.NoError(t, cfg.Validate())
	})

	t.Run("should report the first missing variable in documented order", func(t *testing.T) {
		cfg := &Config{
			GitHubToken: "ghp_test",
			Repository:  "octocat/hello-world",
		}

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY is not set")
	})

	t.Run("should report GIT_COMMIT_HASH when only it is missing", func(t *testing.T) {
		cfg := &Config{
			GeminiAPIKey:      "AIzaTestKey",
			GitHubToken:       "ghp_test",
			Repository:        "octocat/hello-world",
			PullRequestNumber: "42",
		}

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GIT_COMMIT_HASH is not set")
	})

	t.Run("should reject a malformed repository", func(t *testing.T) {
		cfg := &Config{
			GeminiAPIKey:      "AIzaTestKey",
			GitHubToken:       "ghp_test",
			Repository:        "not-a-slug",
			PullRequestNumber: "42",
			CommitHash:        "abc1234",
		}

		err := cfg.Validate()

		require.Error(t, err)
		var appErr *domainErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, domainErrors.TypeConfiguration, appErr.Type)
	})

	t.Run("should reject a non-numeric PR number", func(t *testing.T) {
		cfg := &Config{
			GeminiAPIKey:      "AIzaTestKey",
			GitHubToken:       "ghp_test",
			Repository:        "octocat/hello-world",
			PullRequestNumber: "forty-two",
			CommitHash:        "abc1234",
		}

		err := cfg.Validate()

		require.Error(t, err)
		assert.ErrorContains(t, err, "not numeric")
	})
}

func TestConfig_ValidateEvent(t *testing.T) {
	t.Run("should not require the Gemini key", func(t *testing.T) {
		cfg := &Config{EventPath: "/tmp/event.json"}

		assert.NoError(t, cfg.ValidateEvent())
	})

	t.Run("should require the event path", func(t *testing.T) {
		cfg := &Config{}

		err := cfg.ValidateEvent()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GITHUB_EVENT_PATH is not set")
	})
}

func TestConfig_ParseRepository(t *testing.T) {
	t.Run("should split owner and name", func(t *testing.T) {
		cfg := &Config{Repository: "octocat/hello-world"}

		owner, repo, err := cfg.ParseRepository()

		require.NoError(t, err)
		assert.Equal(t, "octocat", owner)
		assert.Equal(t, "hello-world", repo)
	})

	t.Run("should reject extra path segments", func(t *testing.T) {
		cfg := &Config{Repository: "octocat/hello/world"}

		_, _, err := cfg.ParseRepository()

		assert.Error(t, err)
	})
}

func TestConfig_PRNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "should parse a plain number", value: "42", want: 42},
		{name: "should trim whitespace", value: " 7 ", want: 7},
		{name: "should reject zero", value: "0", wantErr: true},
		{name: "should reject text", value: "abc", wantErr: true},
		{name: "should reject empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{PullRequestNumber: tt.value}

			n, err := cfg.PRNumber()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "should split comma separated values", input: ".go,.py", want: []string{".go", ".py"}},
		{name: "should trim whitespace per element", input: " .go , .py ", want: []string{".go", ".py"}},
		{name: "should drop empty elements", input: ".go,,.py,", want: []string{".go", ".py"}},
		{name: "should yield nil for empty input", input: "", want: nil},
		{name: "should yield nil for whitespace only", input: "  ", want: nil},
		{name: "should yield nil for commas only", input: ",,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}
