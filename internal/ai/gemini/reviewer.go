package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/thomas-vilte/gemini-review-action/internal/ai"
	"github.com/thomas-vilte/gemini-review-action/internal/config"
	domainErrors "github.com/thomas-vilte/gemini-review-action/internal/errors"
	"github.com/thomas-vilte/gemini-review-action/internal/logger"
	"github.com/thomas-vilte/gemini-review-action/internal/models"
	"github.com/thomas-vilte/gemini-review-action/internal/ports"
	"google.golang.org/api/option"
)

var _ ports.AIReviewer = (*Reviewer)(nil)

// Reviewer generates chunk reviews and summaries through the Gemini API.
type Reviewer struct {
	client *genai.Client
	model  *genai.GenerativeModel
	cfg    *config.Config
	usage  models.TokenUsage
}

// NewReviewer creates a Gemini-backed reviewer configured from the run
// flags. The tuning knobs map onto the model's GenerationConfig; the
// frequency and presence penalties are accepted for contract parity but the
// Gemini API has no equivalent, so they are only logged.
func NewReviewer(ctx context.Context, cfg *config.Config) (*Reviewer, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, domainErrors.ErrAIGeneration.WithError(err).WithContext("operation", "create client")
	}

	model := client.GenerativeModel(string(cfg.Model))
	model.SetTemperature(float32(cfg.Temperature))
	model.SetTopP(float32(cfg.TopP))
	model.SetMaxOutputTokens(int32(cfg.MaxTokens))
	model.SetCandidateCount(1)

	if cfg.ExtraPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(cfg.ExtraPrompt)},
		}
	}

	if cfg.FrequencyPenalty != 0 || cfg.PresencePenalty != 0 {
		logger.Debug(ctx, "penalty flags received but not supported by the Gemini API",
			"frequency_penalty", cfg.FrequencyPenalty,
			"presence_penalty", cfg.PresencePenalty)
	}

	return &Reviewer{
		client: client,
		model:  model,
		cfg:    cfg,
	}, nil
}

// ReviewChunks runs one primed chat per chunk, sequentially in chunk order
// so file citations stay aligned with the posted layout.
func (r *Reviewer) ReviewChunks(ctx context.Context, cmd models.ReviewCommand, chunks []string) ([]string, error) {
	log := logger.FromContext(ctx)
	primer := ai.GetReviewPromptTemplate(r.cfg.Language, cmd)

	reviews := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		start := time.Now()

		session := r.model.StartChat()
		session.History = []*genai.Content{
			{Role: "user", Parts: []genai.Part{genai.Text(primer)}},
			{Role: "model", Parts: []genai.Part{genai.Text("Ok")}},
		}

		resp, err := session.SendMessage(ctx, genai.Text(chunk))
		if err != nil {
			return nil, mapGeminiError(err).
				WithContext("chunk", i+1).
				WithContext("chunks_total", len(chunks))
		}
		r.trackUsage(resp)

		text, err := responseText(resp)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, text)

		log.Debug("chunk reviewed",
			"chunk", i+1,
			"chunks_total", len(chunks),
			"chunk_size", len(chunk),
			"duration_ms", time.Since(start).Milliseconds())
	}

	return reviews, nil
}

// Summarize digests the chunk reviews. One review is its own summary; zero
// reviews ask the model for the "no relevant changes" note.
func (r *Reviewer) Summarize(ctx context.Context, reviews []string) (string, error) {
	if len(reviews) == 1 {
		return reviews[0], nil
	}

	var message string
	if len(reviews) == 0 {
		message = ai.GetNoChangesPrompt(r.cfg.Language)
	} else {
		rendered, err := ai.RenderPrompt("summarize", ai.GetSummarizePromptTemplate(r.cfg.Language), ai.PromptData{
			Reviews: strings.Join(reviews, "\n"),
		})
		if err != nil {
			return "", domainErrors.ErrAIGeneration.WithError(err).WithContext("operation", "render summarize prompt")
		}
		message = rendered
	}

	session := r.model.StartChat()
	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", mapGeminiError(err).WithContext("operation", "summarize")
	}
	r.trackUsage(resp)

	return responseText(resp)
}

// Usage returns the accumulated token accounting of the run.
func (r *Reviewer) Usage() *models.TokenUsage {
	return &r.usage
}

func (r *Reviewer) Close() error {
	return r.client.Close()
}

func (r *Reviewer) trackUsage(resp *genai.GenerateContentResponse) {
	call := extractUsage(resp)
	r.usage.Add(call)
	r.usage.Model = string(r.cfg.Model)
}
