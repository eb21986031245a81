package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thomas-vilte/gemini-review-action/internal/models"
)

func TestParseComment(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    models.ReviewCommand
	}{
		{name: "should match review all", comment: "gemini review all", want: models.CommandReviewAll},
		{name: "should match review diff", comment: "gemini review diff", want: models.CommandReviewDiff},
		{name: "should match suggest next steps", comment: "gemini suggest next steps", want: models.CommandSuggest},
		{name: "should match prefixes with trailing words", comment: "gemini review all files please", want: models.CommandReviewAll},
		{name: "should ignore case", comment: "Gemini Review ALL", want: models.CommandReviewAll},
		{name: "should ignore surrounding whitespace", comment: "   gemini suggest next steps  ", want: models.CommandSuggest},
		{name: "should default to diff for unrelated comments", comment: "lgtm, nice work", want: models.CommandReviewDiff},
		{name: "should default to diff for an empty body", comment: "", want: models.CommandReviewDiff},
		{name: "should default to diff for a partial command", comment: "gemini review", want: models.CommandReviewDiff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseComment(tt.comment)

			assert.Equal(t, tt.want, parsed.Type)
			assert.Equal(t, tt.comment, parsed.RawComment)
		})
	}
}
