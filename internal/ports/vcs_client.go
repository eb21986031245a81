package ports

import "context"

// VCSClient defines the repository-side operations the review pipeline
// needs. Implementations live in internal/vcs.
type VCSClient interface {
	// GetPRDiff fetches the raw diff of a pull request, falling back to
	// per-commit patches when the API refuses large diffs.
	GetPRDiff(ctx context.Context, prNumber int) (string, error)

	// ListTree returns the blob paths of the repository tree at ref.
	ListTree(ctx context.Context, ref string) ([]string, error)

	// GetFileContent returns the decoded content of one file at ref.
	GetFileContent(ctx context.Context, path, ref string) (string, error)

	// PostReview publishes body as a COMMENT review pinned to commitHash.
	PostReview(ctx context.Context, prNumber int, commitHash, body string) error

	// GetLatestRelease returns the tag of the latest published release of
	// the given repository. Used by the update checker.
	GetLatestRelease(ctx context.Context, owner, repo string) (string, error)
}
