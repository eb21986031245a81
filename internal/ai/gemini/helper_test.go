package gemini

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/gemini-review-action/internal/errors"
	"google.golang.org/api/googleapi"
)

func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]genai.Part, len(texts))
	for i, t := range texts {
		parts[i] = genai.Text(t)
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content:      &genai.Content{Parts: parts, Role: "model"},
				FinishReason: genai.FinishReasonStop,
			},
		},
	}
}

func TestResponseText(t *testing.T) {
	t.Run("should concatenate the text parts of the first candidate", func(t *testing.T) {
		resp := textResponse("first part ", "second part")

		text, err := responseText(resp)

		require.NoError(t, err)
		assert.Equal(t, "first part second part", text)
	})

	t.Run("should fail on a nil response", func(t *testing.T) {
		_, err := responseText(nil)

		assert.ErrorContains(t, err, "invalid AI output")
	})

	t.Run("should fail without candidates", func(t *testing.T) {
		_, err := responseText(&genai.GenerateContentResponse{})

		assert.ErrorContains(t, err, "invalid AI output")
	})

	t.Run("should fail on nil candidate content", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}},
		}

		_, err := responseText(resp)

		assert.Error(t, err)
	})

	t.Run("should fail when generation was cut off", func(t *testing.T) {
		resp := textResponse("truncated review")
		resp.Candidates[0].FinishReason = genai.FinishReasonMaxTokens

		_, err := responseText(resp)

		require.Error(t, err)
		var appErr *domainErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, domainErrors.TypeAI, appErr.Type)
	})
}

func TestExtractUsage(t *testing.T) {
	t.Run("should map the usage metadata", func(t *testing.T) {
		resp := textResponse("review")
		resp.UsageMetadata = &genai.UsageMetadata{
			PromptTokenCount:     120,
			CandidatesTokenCount: 80,
			TotalTokenCount:      200,
		}

		usage := extractUsage(resp)

		require.NotNil(t, usage)
		assert.Equal(t, 120, usage.InputTokens)
		assert.Equal(t, 80, usage.OutputTokens)
		assert.Equal(t, 200, usage.TotalTokens)
	})

	t.Run("should return nil without metadata", func(t *testing.T) {
		assert.Nil(t, extractUsage(textResponse("review")))
		assert.Nil(t, extractUsage(nil))
	})
}

func TestMapGeminiError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *domainErrors.AppError
	}{
		{
			name: "should map 429 to quota exceeded",
			err:  &googleapi.Error{Code: 429, Message: "Resource has been exhausted"},
			want: domainErrors.ErrGeminiQuotaExceeded,
		},
		{
			name: "should map 403 to invalid key",
			err:  &googleapi.Error{Code: 403, Message: "PERMISSION_DENIED"},
			want: domainErrors.ErrGeminiAPIKeyInvalid,
		},
		{
			name: "should sniff api key failures on 400",
			err:  &googleapi.Error{Code: 400, Message: "API key not valid. Please pass a valid API key."},
			want: domainErrors.ErrGeminiAPIKeyInvalid,
		},
		{
			name: "should sniff quota wording on plain errors",
			err:  fmt.Errorf("generativelanguage: quota exceeded for metric"),
			want: domainErrors.ErrGeminiQuotaExceeded,
		},
		{
			name: "should default to the generation error",
			err:  fmt.Errorf("connection reset by peer"),
			want: domainErrors.ErrAIGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapGeminiError(tt.err)

			assert.Equal(t, tt.want.Message, mapped.Message)
			assert.ErrorIs(t, mapped, tt.err)
		})
	}
}
