package gemini

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	domainErrors "github.com/thomas-vilte/gemini-review-action/internal/errors"
	"github.com/thomas-vilte/gemini-review-action/internal/models"
	"google.golang.org/api/googleapi"
)

// extractUsage extracts usage metadata from the Gemini response
func extractUsage(resp *genai.GenerateContentResponse) *models.TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}
	return &models.TokenUsage{
		InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
		OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
	}
}

// responseText concatenates the text parts of the first candidate. Empty
// candidates, nil content, or a truncated finish reason map to the typed
// invalid-output error.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", domainErrors.ErrInvalidAIOutput.WithContext("reason", "no candidates")
	}

	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", domainErrors.ErrInvalidAIOutput.
			WithContext("reason", "empty content").
			WithContext("finish_reason", cand.FinishReason.String())
	}

	if cand.FinishReason != genai.FinishReasonStop && cand.FinishReason != genai.FinishReasonUnspecified {
		return "", domainErrors.ErrInvalidAIOutput.
			WithContext("reason", "generation did not finish").
			WithContext("finish_reason", cand.FinishReason.String())
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	out := sb.String()
	if out == "" {
		return "", domainErrors.ErrInvalidAIOutput.WithContext("reason", "no text parts")
	}
	return out, nil
}

// mapGeminiError maps API failures to the typed taxonomy by status code and
// message sniffing.
func mapGeminiError(err error) *domainErrors.AppError {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return domainErrors.ErrGeminiQuotaExceeded.WithError(err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
		case http.StatusBadRequest:
			if strings.Contains(strings.ToLower(apiErr.Message), "api key") {
				return domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
			}
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "resource exhausted"):
		return domainErrors.ErrGeminiQuotaExceeded.WithError(err)
	case strings.Contains(msg, "api key"):
		return domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
	default:
		return domainErrors.ErrAIGeneration.WithError(err)
	}
}
