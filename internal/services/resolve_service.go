package services

import (
	"context"
	"strconv"

	"github.com/thomas-vilte/gemini-review-action/internal/config"
	domainErrors "github.com/thomas-vilte/gemini-review-action/internal/errors"
	"github.com/thomas-vilte/gemini-review-action/internal/logger"
	"github.com/thomas-vilte/gemini-review-action/internal/models"
	"github.com/thomas-vilte/gemini-review-action/internal/ports"
	vcsGithub "github.com/thomas-vilte/gemini-review-action/internal/vcs/github"
)

// ResolveService turns the issue_comment event payload into the pr_number
// and comment_body outputs that the review job consumes.
type ResolveService struct {
	cfg       *config.Config
	out       ports.OutputWriter
	parseFunc func(eventPath string) (*models.CommentEvent, error)
}

func NewResolveService(cfg *config.Config, out ports.OutputWriter) *ResolveService {
	return &ResolveService{
		cfg:       cfg,
		out:       out,
		parseFunc: vcsGithub.ParseIssueCommentEvent,
	}
}

// Run parses the event payload and publishes the outputs. A comment on a
// plain issue is not an error: it returns the event with IsPullRequest false
// and writes nothing, so the workflow can skip the review job.
func (s *ResolveService) Run(ctx context.Context) (*models.CommentEvent, error) {
	if err := s.cfg.ValidateEvent(); err != nil {
		return nil, err
	}

	event, err := s.parseFunc(s.cfg.EventPath)
	if err != nil {
		return nil, err
	}

	if !event.IsPullRequest {
		logger.Info(ctx, "comment is not on a pull request, nothing to resolve")
		return event, nil
	}

	if err := s.out.WriteOutput("pr_number", strconv.Itoa(event.PRNumber)); err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeInternal, "failed to write action output", err).
			WithContext("output", "pr_number")
	}
	if err := s.out.WriteOutput("comment_body", event.CommentBody); err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeInternal, "failed to write action output", err).
			WithContext("output", "comment_body")
	}

	logger.Info(ctx, "pull request resolved from event", "pr_number", event.PRNumber)
	return event, nil
}
