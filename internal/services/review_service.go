package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/thomas-vilte/gemini-review-action/internal/ai"
	"github.com/thomas-vilte/gemini-review-action/internal/config"
	domainErrors "github.com/thomas-vilte/gemini-review-action/internal/errors"
	"github.com/thomas-vilte/gemini-review-action/internal/logger"
	"github.com/thomas-vilte/gemini-review-action/internal/models"
	"github.com/thomas-vilte/gemini-review-action/internal/ports"
	"github.com/thomas-vilte/gemini-review-action/internal/review"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDownloads bounds the blob fetches of a whole-repository
// review so large trees don't trip secondary rate limits.
const maxConcurrentDownloads = 8

// ReviewService runs the whole review pipeline: parse the trigger comment,
// source the content, chunk it, ask the model, post the result and publish
// the action outputs.
type ReviewService struct {
	cfg      *config.Config
	vcs      ports.VCSClient
	reviewer ports.AIReviewer
	out      ports.OutputWriter
}

func NewReviewService(cfg *config.Config, vcs ports.VCSClient, reviewer ports.AIReviewer, out ports.OutputWriter) *ReviewService {
	return &ReviewService{
		cfg:      cfg,
		vcs:      vcs,
		reviewer: reviewer,
		out:      out,
	}
}

// Run executes one review over the configured pull request and returns what
// was produced. The trigger comment comes from the config; an empty comment
// degrades to a diff review.
func (s *ReviewService) Run(ctx context.Context) (*models.ReviewResult, error) {
	parsed := review.ParseComment(s.cfg.GitHubComment)
	ctx = logger.With(ctx, "command", string(parsed.Type))
	logger.Info(ctx, "starting review")

	prNumber, err := s.cfg.PRNumber()
	if err != nil {
		return nil, err
	}

	content, err := s.resolveContent(ctx, parsed.Type)
	if err != nil {
		return nil, err
	}

	chunks := review.Split(content, s.cfg.ChunkSize)
	logger.Info(ctx, "content resolved",
		"content_size", len(content),
		"chunks", len(chunks))

	chunkReviews, err := s.reviewer.ReviewChunks(ctx, parsed.Type, chunks)
	if err != nil {
		return nil, err
	}

	summary, err := s.reviewer.Summarize(ctx, chunkReviews)
	if err != nil {
		return nil, err
	}

	comment := review.FormatReviewComment(summary, chunkReviews)

	if err := s.vcs.PostReview(ctx, prNumber, s.cfg.CommitHash, comment); err != nil {
		return nil, err
	}
	logger.Info(ctx, "review posted",
		"pr_number", prNumber,
		"commit", s.cfg.CommitHash)

	result := &models.ReviewResult{
		ChunkReviews: chunkReviews,
		Summary:      summary,
		Comment:      comment,
		PromptBody:   ai.GetReviewPromptTemplate(s.cfg.Language, parsed.Type) + "\n\n" + content,
		Usage:        s.reviewer.Usage(),
	}

	if err := s.publishOutputs(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// resolveContent returns the text to review. The all command walks the
// repository tree at the commit under review; everything else reviews the
// diff, fetched from the API when no --diff was passed.
func (s *ReviewService) resolveContent(ctx context.Context, cmd models.ReviewCommand) (string, error) {
	if cmd != models.CommandReviewAll {
		if s.cfg.Diff != "" {
			return s.cfg.Diff, nil
		}
		prNumber, err := s.cfg.PRNumber()
		if err != nil {
			return "", err
		}
		return s.vcs.GetPRDiff(ctx, prNumber)
	}

	paths, err := s.vcs.ListTree(ctx, s.cfg.CommitHash)
	if err != nil {
		return "", err
	}

	selected := make([]string, 0, len(paths))
	for _, p := range paths {
		if s.includePath(p) {
			selected = append(selected, p)
		}
	}
	logger.Debug(ctx, "repository tree filtered",
		"total", len(paths),
		"selected", len(selected))

	files := make([]models.RepoFile, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDownloads)
	for i, p := range selected {
		g.Go(func() error {
			content, err := s.vcs.GetFileContent(gctx, p, s.cfg.CommitHash)
			if err != nil {
				return err
			}
			files[i] = models.RepoFile{Path: p, Content: content}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	blocks := make([]string, 0, len(files))
	for _, f := range files {
		blocks = append(blocks, fmt.Sprintf("File: %s\n%s\n", f.Path, f.Content))
	}
	return strings.Join(blocks, "\n"), nil
}

// includePath applies the extension filter. An empty extension list keeps
// everything; always-include entries win by path or by base name.
func (s *ReviewService) includePath(p string) bool {
	if len(s.cfg.IncludeExtensions) == 0 {
		return true
	}
	for _, ext := range s.cfg.IncludeExtensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	for _, name := range s.cfg.AlwaysIncludeFiles {
		if p == name || path.Base(p) == name {
			return true
		}
	}
	return false
}

func (s *ReviewService) publishOutputs(ctx context.Context, result *models.ReviewResult) error {
	if err := s.out.WriteOutput("entire_prompt_body", result.PromptBody); err != nil {
		return domainErrors.NewAppError(domainErrors.TypeInternal, "failed to write action output", err).
			WithContext("output", "entire_prompt_body")
	}
	if err := s.out.WriteOutput("review_result", result.Comment); err != nil {
		return domainErrors.NewAppError(domainErrors.TypeInternal, "failed to write action output", err).
			WithContext("output", "review_result")
	}

	summary := s.renderStepSummary(result)
	if err := s.out.AppendSummary(summary); err != nil {
		logger.Warn(ctx, "failed to append step summary", "error", err)
	}
	return nil
}

func (s *ReviewService) renderStepSummary(result *models.ReviewResult) string {
	var b strings.Builder
	b.WriteString("## Gemini code review\n\n")
	fmt.Fprintf(&b, "- Chunks reviewed: %d\n", len(result.ChunkReviews))
	if result.Usage != nil && result.Usage.Calls > 0 {
		fmt.Fprintf(&b, "- Model: %s\n", result.Usage.Model)
		fmt.Fprintf(&b, "- Tokens: %d in / %d out (%d total over %d calls)\n",
			result.Usage.InputTokens,
			result.Usage.OutputTokens,
			result.Usage.TotalTokens,
			result.Usage.Calls)
	}
	fmt.Fprintf(&b, "- Finished: %s\n", time.Now().UTC().Format(time.RFC3339))
	return b.String()
}
