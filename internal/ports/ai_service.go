package ports

import (
	"context"

	"github.com/thomas-vilte/gemini-review-action/internal/models"
)

// AIReviewer defines the model-side half of the review pipeline.
type AIReviewer interface {
	// ReviewChunks asks for a review of each content chunk, in order, and
	// returns the chunk reviews in the same order. The command selects the
	// primer prompt (diff review, whole repository, next steps).
	ReviewChunks(ctx context.Context, cmd models.ReviewCommand, chunks []string) ([]string, error)

	// Summarize digests the chunk reviews into the posted summary. A single
	// review is returned verbatim without a model call; zero reviews yield
	// the model's "no relevant changes" note.
	Summarize(ctx context.Context, reviews []string) (string, error)

	// Usage returns the token accounting accumulated across the run.
	Usage() *models.TokenUsage

	// Close releases the underlying client.
	Close() error
}
