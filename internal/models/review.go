package models

// ReviewCommand identifies the review mode requested through a PR comment.
type ReviewCommand string

const (
	// CommandReviewDiff reviews the pull request diff. This is the default
	// when the trigger comment carries no recognized command.
	CommandReviewDiff ReviewCommand = "diff"
	// CommandReviewAll reviews the repository contents at the commit under
	// review instead of the diff.
	CommandReviewAll ReviewCommand = "all"
	// CommandSuggest asks for next steps for the change instead of a review.
	CommandSuggest ReviewCommand = "suggest"
)

type (
	// ParsedCommand is the result of parsing a trigger comment.
	ParsedCommand struct {
		Type       ReviewCommand
		RawComment string
	}

	// RepoFile is one repository blob selected for a whole-repository review.
	RepoFile struct {
		Path    string
		Content string
	}

	// ReviewResult carries everything produced by a single review run.
	ReviewResult struct {
		// ChunkReviews holds the model's review of each content chunk, in
		// chunk order.
		ChunkReviews []string
		// Summary is the digest of all chunk reviews. For a single chunk it
		// is that chunk's review verbatim.
		Summary string
		// Comment is the formatted body posted to the pull request.
		Comment string
		// PromptBody is the rendered prompt plus the content that was sent,
		// exposed through the action outputs.
		PromptBody string
		Usage      *TokenUsage
	}
)
