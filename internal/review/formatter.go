package review

import (
	"fmt"
	"strings"
)

// FormatReviewComment renders the comment body posted to the pull request.
// A single chunk review is posted verbatim; anything else collapses the
// chunk reviews under a details block with the summary as its caption.
func FormatReviewComment(summary string, chunkReviews []string) string {
	if len(chunkReviews) == 1 {
		return summary
	}

	joined := strings.Join(chunkReviews, "\n")
	return fmt.Sprintf("<details>\n<summary>%s</summary>\n\n%s\n</details>\n", summary, joined)
}
