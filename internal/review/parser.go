package review

import (
	"strings"

	"github.com/thomas-vilte/gemini-review-action/internal/models"
)

// commandPrefixes maps trigger comment prefixes to review commands. Matching
// is ordered so "gemini review all" wins over a hypothetical shorter prefix.
var commandPrefixes = []struct {
	prefix  string
	command models.ReviewCommand
}{
	{"gemini review all", models.CommandReviewAll},
	{"gemini review diff", models.CommandReviewDiff},
	{"gemini suggest next steps", models.CommandSuggest},
}

// ParseComment resolves the review command requested through a PR comment.
// Matching is a case-insensitive prefix check over the stripped body; an
// unrecognized or empty comment degrades to the diff review, never an error.
func ParseComment(body string) models.ParsedCommand {
	normalized := strings.ToLower(strings.TrimSpace(body))

	for _, c := range commandPrefixes {
		if strings.HasPrefix(normalized, c.prefix) {
			return models.ParsedCommand{Type: c.command, RawComment: body}
		}
	}

	return models.ParsedCommand{Type: models.CommandReviewDiff, RawComment: body}
}
