package models

// CommentEvent is the slice of an issue_comment payload the action cares
// about: whether the comment belongs to a pull request, which one, and the
// raw comment body to forward.
type CommentEvent struct {
	// IsPullRequest is false for comments on plain issues. That case is
	// legal and ends the run without output.
	IsPullRequest bool
	PRNumber      int
	CommentBody   string
}
