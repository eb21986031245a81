package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAI            ErrorType = "AI"
	TypeVCS           ErrorType = "VCS"
	TypeEvent         ErrorType = "EVENT"
	TypeInternal      ErrorType = "INTERNAL"
	TypeUpdate        ErrorType = "UPDATE"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// NewMissingEnvVar reports a missing variable from the action environment
// contract. The message matches the "<VAR> is not set" shape the action has
// always emitted, so existing workflow log greps keep working.
func NewMissingEnvVar(name string) *AppError {
	return NewAppError(TypeConfiguration, fmt.Sprintf("%s is not set", name), nil).
		WithContext("env_var", name).
		WithSuggestion("Pass the variable through the workflow env block or the action inputs")
}

// Configuration errors
var (
	ErrAPIKeyMissing = NewAppError(TypeConfiguration, "Gemini API key is missing", nil).
				WithSuggestion("Set the GEMINI_API_KEY secret in your workflow")

	ErrTokenMissing = NewAppError(TypeConfiguration, "GitHub token is missing", nil).
			WithSuggestion("Pass secrets.GITHUB_TOKEN to the action")

	ErrInvalidRepository = NewAppError(TypeConfiguration, "repository is not in owner/name format", nil).
				WithSuggestion("GITHUB_REPOSITORY must look like: octocat/hello-world")

	ErrInvalidPRNumber = NewAppError(TypeConfiguration, "pull request number is not numeric", nil).
				WithSuggestion("GITHUB_PULL_REQUEST_NUMBER must be the bare PR number, e.g. 42")
)

// GitHub/VCS errors
var (
	ErrRepositoryNotFound = NewAppError(TypeVCS, "repository or pull request not found", nil).
				WithSuggestion("Check the repository name and that the token can read it")

	ErrGitHubTokenInvalid = NewAppError(TypeVCS, "GitHub token is invalid or expired", nil).
				WithSuggestion("Use secrets.GITHUB_TOKEN or a fresh personal access token")

	ErrGitHubInsufficientPerms = NewAppError(TypeVCS, "GitHub token has insufficient permissions", nil).
					WithSuggestion("The workflow needs: permissions: pull-requests: write")

	ErrGitHubRateLimit = NewAppError(TypeVCS, "GitHub API rate limit exceeded", nil).
				WithSuggestion("Wait a few minutes or use a token with higher limits")

	ErrPostReview = NewAppError(TypeVCS, "failed to post the review comment", nil).
			WithSuggestion("Check that the pull request is open and the commit hash belongs to it")
)

// AI errors
var (
	ErrAIGeneration = NewAppError(TypeAI, "AI generation failed", nil).
			WithSuggestion("Try again or check your API key configuration")

	ErrInvalidAIOutput = NewAppError(TypeAI, "invalid AI output format", nil).
				WithSuggestion("This is likely a temporary issue, please try again")

	ErrGeminiAPIKeyInvalid = NewAppError(TypeAI, "Gemini API key is invalid", nil).
				WithSuggestion("Get a valid API key at: https://aistudio.google.com/apikey")

	ErrGeminiQuotaExceeded = NewAppError(TypeAI, "Gemini API quota exceeded or rate limited", nil).
				WithSuggestion("Wait for quota to reset or upgrade your Gemini plan")
)

// Event payload errors
var (
	ErrEventPayloadMissing = NewAppError(TypeEvent, "event payload file not found", nil).
				WithSuggestion("GITHUB_EVENT_PATH must point to the issue_comment event payload")

	ErrEventPayloadInvalid = NewAppError(TypeEvent, "event payload is not a valid issue_comment event", nil).
				WithSuggestion("Trigger the workflow with: on: issue_comment: types: [created]")
)

// Update errors
var (
	ErrUpdateCheckFailed = NewAppError(TypeUpdate, "failed to check for a newer release", nil).
		WithSuggestion("Check releases manually at: https://github.com/thomas-vilte/gemini-review-action/releases")
)
