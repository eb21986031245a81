package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v80/github"
	domainErrors "github.com/thomas-vilte/gemini-review-action/internal/errors"
	"github.com/thomas-vilte/gemini-review-action/internal/httpclient"
	"github.com/thomas-vilte/gemini-review-action/internal/logger"
	"github.com/thomas-vilte/gemini-review-action/internal/ports"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

type PullRequestsService interface {
	GetRaw(ctx context.Context, owner, repo string, number int, opts github.RawOptions) (string, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error)
	CreateReview(ctx context.Context, owner, repo string, number int, review *github.PullRequestReviewRequest) (*github.PullRequestReview, *github.Response, error)
}

type GitService interface {
	GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*github.Tree, *github.Response, error)
}

type RepositoriesService interface {
	GetCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) (*github.RepositoryCommit, *github.Response, error)
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
	GetLatestRelease(ctx context.Context, owner, repo string) (*github.RepositoryRelease, *github.Response, error)
}

type GitHubClient struct {
	prService   PullRequestsService
	gitService  GitService
	repoService RepositoriesService
	owner       string
	repo        string
}

func NewGitHubClient(owner, repo, token string) (*GitHubClient, error) {
	httpClient, err := httpclient.NewGitHubClient(token)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService:   client.PullRequests,
		gitService:  client.Git,
		repoService: client.Repositories,
		owner:       owner,
		repo:        repo,
	}, nil
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	gitService GitService,
	repoService RepositoriesService,
	owner string,
	repo string,
) *GitHubClient {
	return &GitHubClient{
		prService:   prService,
		gitService:  gitService,
		repoService: repoService,
		owner:       owner,
		repo:        repo,
	}
}

// GetPRDiff fetches the raw diff of a pull request. When the API refuses a
// large diff with 406, it falls back to assembling the per-commit patches.
func (ghc *GitHubClient) GetPRDiff(ctx context.Context, prNumber int) (string, error) {
	log := logger.FromContext(ctx)

	log.Debug("fetching pull request diff",
		"owner", ghc.owner,
		"repo", ghc.repo,
		"pr_number", prNumber)

	diff, resp, err := ghc.prService.GetRaw(ctx, ghc.owner, ghc.repo, prNumber, github.RawOptions{Type: github.Diff})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotAcceptable {
			log.Warn("PR diff too large, fetching diffs commit by commit", "pr_number", prNumber)
			return ghc.getDiffFromCommits(ctx, prNumber)
		}
		if mapped := ghc.mapResponseError(resp, "get PR diff", prNumber); mapped != nil {
			return "", mapped
		}
		return "", fmt.Errorf("failed to get diff for PR #%d: %w", prNumber, err)
	}

	log.Debug("pull request diff fetched", "pr_number", prNumber, "diff_size", len(diff))
	return diff, nil
}

func (ghc *GitHubClient) getDiffFromCommits(ctx context.Context, prNumber int) (string, error) {
	log := logger.FromContext(ctx)

	var commits []*github.RepositoryCommit
	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := ghc.prService.ListCommits(ctx, ghc.owner, ghc.repo, prNumber, opts)
		if err != nil {
			return "", fmt.Errorf("failed to list commits for PR #%d: %w", prNumber, err)
		}
		commits = append(commits, page...)
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	log.Info("fetching diffs from commits",
		"commits_count", len(commits),
		"owner", ghc.owner,
		"repo", ghc.repo)

	var combinedDiff strings.Builder
	for i, commit := range commits {
		sha := commit.GetSHA()
		log.Debug("processing commit",
			"current", i+1,
			"total", len(commits),
			"sha", shortSHA(sha))

		fullCommit, _, err := ghc.repoService.GetCommit(ctx, ghc.owner, ghc.repo, sha, nil)
		if err != nil {
			return "", fmt.Errorf("failed to get diff for commit %s: %w", shortSHA(sha), err)
		}

		if fullCommit.GetStats().GetTotal() == 0 {
			continue
		}

		combinedDiff.WriteString(fmt.Sprintf("\n# Commit: %s\n", shortSHA(sha)))
		combinedDiff.WriteString(fmt.Sprintf("# Message: %s\n\n", strings.Split(commit.GetCommit().GetMessage(), "\n")[0]))

		for _, file := range fullCommit.Files {
			if file.Patch != nil {
				combinedDiff.WriteString(fmt.Sprintf("diff --git a/%s b/%s\n", file.GetFilename(), file.GetFilename()))
				combinedDiff.WriteString(*file.Patch)
				combinedDiff.WriteString("\n")
			}
		}
	}

	return combinedDiff.String(), nil
}

// ListTree returns the blob paths of the repository tree at ref, in tree
// order.
func (ghc *GitHubClient) ListTree(ctx context.Context, ref string) ([]string, error) {
	log := logger.FromContext(ctx)

	tree, resp, err := ghc.gitService.GetTree(ctx, ghc.owner, ghc.repo, ref, true)
	if err != nil {
		if mapped := ghc.mapResponseError(resp, "get tree", 0); mapped != nil {
			return nil, mapped.WithContext("ref", ref)
		}
		return nil, fmt.Errorf("failed to get tree at %s: %w", ref, err)
	}

	if tree.GetTruncated() {
		log.Warn("repository tree truncated by the API, review may miss files", "ref", ref)
	}

	paths := make([]string, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		if entry.GetType() == "blob" {
			paths = append(paths, entry.GetPath())
		}
	}

	log.Debug("repository tree listed", "ref", ref, "blobs", len(paths))
	return paths, nil
}

// GetFileContent returns the decoded content of one file at ref.
func (ghc *GitHubClient) GetFileContent(ctx context.Context, path, ref string) (string, error) {
	fileContent, _, resp, err := ghc.repoService.GetContents(ctx, ghc.owner, ghc.repo, path, &github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		if mapped := ghc.mapResponseError(resp, "get file content", 0); mapped != nil {
			return "", mapped.WithContext("path", path)
		}
		return "", fmt.Errorf("failed to get contents of %s: %w", path, err)
	}

	if fileContent == nil {
		return "", fmt.Errorf("%s is a directory, not a file", path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode contents of %s: %w", path, err)
	}
	return content, nil
}

// PostReview publishes body as a COMMENT review pinned to commitHash.
func (ghc *GitHubClient) PostReview(ctx context.Context, prNumber int, commitHash, body string) error {
	log := logger.FromContext(ctx)

	review := &github.PullRequestReviewRequest{
		CommitID: github.Ptr(commitHash),
		Body:     github.Ptr(body),
		Event:    github.Ptr("COMMENT"),
	}

	created, resp, err := ghc.prService.CreateReview(ctx, ghc.owner, ghc.repo, prNumber, review)
	if err != nil {
		if mapped := ghc.mapResponseError(resp, "post review", prNumber); mapped != nil {
			return mapped
		}
		return domainErrors.ErrPostReview.WithError(err).WithContext("pr_number", prNumber)
	}

	log.Info("review posted",
		"pr_number", prNumber,
		"review_id", created.GetID(),
		"commit", shortSHA(commitHash),
		"body_size", len(body))
	return nil
}

// GetLatestRelease returns the tag of the latest published release of the
// given repository.
func (ghc *GitHubClient) GetLatestRelease(ctx context.Context, owner, repo string) (string, error) {
	release, resp, err := ghc.repoService.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", domainErrors.ErrRepositoryNotFound.
				WithContext("operation", "get latest release").
				WithContext("repo", fmt.Sprintf("%s/%s", owner, repo))
		}
		return "", fmt.Errorf("failed to get latest release of %s/%s: %w", owner, repo, err)
	}
	return release.GetTagName(), nil
}

func (ghc *GitHubClient) mapResponseError(resp *github.Response, operation string, prNumber int) *domainErrors.AppError {
	if resp == nil {
		return nil
	}

	var mapped *domainErrors.AppError
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		mapped = domainErrors.ErrGitHubTokenInvalid
	case http.StatusForbidden:
		mapped = domainErrors.ErrGitHubInsufficientPerms
	case http.StatusTooManyRequests:
		mapped = domainErrors.ErrGitHubRateLimit.
			WithContext("retry_after", resp.Header.Get("Retry-After"))
	case http.StatusNotFound:
		mapped = domainErrors.ErrRepositoryNotFound
	default:
		return nil
	}

	mapped = mapped.
		WithContext("operation", operation).
		WithContext("repo", fmt.Sprintf("%s/%s", ghc.owner, ghc.repo))
	if prNumber > 0 {
		mapped = mapped.WithContext("pr_number", prNumber)
	}
	return mapped
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
