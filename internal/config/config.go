package config

import (
	"strconv"
	"strings"

	"github.com/caarlos0/env/v9"
	domainErrors "github.com/thomas-vilte/gemini-review-action/internal/errors"
	"github.com/thomas-vilte/gemini-review-action/internal/regex"
)

// Defaults for the tuning flags. They apply only when the caller omits the
// corresponding flag; the action metadata forwards every input it receives.
const (
	DefaultChunkSize   = 3500
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 512
	DefaultTopP        = 1.0
	DefaultLogLevel    = "INFO"
)

type Config struct {
	// Environment contract injected by the action runtime.
	GeminiAPIKey      string `env:"GEMINI_API_KEY"`
	GitHubToken       string `env:"GITHUB_TOKEN"`
	Repository        string `env:"GITHUB_REPOSITORY"`
	PullRequestNumber string `env:"GITHUB_PULL_REQUEST_NUMBER"`
	CommitHash        string `env:"GIT_COMMIT_HASH"`

	// GitHub Actions runtime files. Absent on local runs, which is legal.
	EventPath       string `env:"GITHUB_EVENT_PATH"`
	OutputPath      string `env:"GITHUB_OUTPUT"`
	StepSummaryPath string `env:"GITHUB_STEP_SUMMARY"`

	// Flag contract forwarded as --flag=value by the action metadata.
	Diff               string
	ChunkSize          int
	Model              Model
	ExtraPrompt        string
	Temperature        float64
	MaxTokens          int
	TopP               float64
	FrequencyPenalty   float64
	PresencePenalty    float64
	LogLevel           string
	GitHubComment      string
	IncludeExtensions  []string
	AlwaysIncludeFiles []string
	Language           string
}

// Load reads the environment contract into a Config without validating it.
// Flag-backed fields start at their documented defaults; the commands overlay
// whatever the caller passed.
func Load() (*Config, error) {
	cfg := &Config{
		ChunkSize:   DefaultChunkSize,
		Model:       DefaultModel(),
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		TopP:        DefaultTopP,
		LogLevel:    DefaultLogLevel,
		Language:    LangEN,
	}

	if err := env.Parse(cfg); err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeConfiguration, "failed to read environment", err)
	}

	return cfg, nil
}

// reviewRequiredEnv lists the variables the review run needs, in the order
// they are checked and reported.
var reviewRequiredEnv = []string{
	"GEMINI_API_KEY",
	"GITHUB_TOKEN",
	"GITHUB_REPOSITORY",
	"GITHUB_PULL_REQUEST_NUMBER",
	"GIT_COMMIT_HASH",
}

// Validate fails fast with an error naming the first missing variable of the
// review environment contract.
func (c *Config) Validate() error {
	values := map[string]string{
		"GEMINI_API_KEY":             c.GeminiAPIKey,
		"GITHUB_TOKEN":               c.GitHubToken,
		"GITHUB_REPOSITORY":          c.Repository,
		"GITHUB_PULL_REQUEST_NUMBER": c.PullRequestNumber,
		"GIT_COMMIT_HASH":            c.CommitHash,
	}

	for _, name := range reviewRequiredEnv {
		if values[name] == "" {
			return domainErrors.NewMissingEnvVar(name)
		}
	}

	if _, _, err := c.ParseRepository(); err != nil {
		return err
	}
	if _, err := c.PRNumber(); err != nil {
		return err
	}

	return nil
}

// ValidateEvent checks the contract the resolve-pr command needs. It does
// not require the Gemini key; the command never talks to the model.
func (c *Config) ValidateEvent() error {
	if c.EventPath == "" {
		return domainErrors.NewMissingEnvVar("GITHUB_EVENT_PATH")
	}
	return nil
}

// ParseRepository splits GITHUB_REPOSITORY into owner and name.
func (c *Config) ParseRepository() (string, string, error) {
	m := regex.RepoSlug.FindStringSubmatch(c.Repository)
	if m == nil {
		return "", "", domainErrors.ErrInvalidRepository.WithContext("repository", c.Repository)
	}
	return m[1], m[2], nil
}

// PRNumber parses GITHUB_PULL_REQUEST_NUMBER.
func (c *Config) PRNumber() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(c.PullRequestNumber))
	if err != nil || n <= 0 {
		return 0, domainErrors.ErrInvalidPRNumber.WithContext("value", c.PullRequestNumber)
	}
	return n, nil
}

// SplitList splits a comma-separated action input, trimming whitespace per
// element. Empty input yields nil, which disables the filter.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
