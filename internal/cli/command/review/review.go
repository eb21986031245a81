package review

import (
	"context"
	"time"

	"github.com/thomas-vilte/gemini-review-action/internal/ai/gemini"
	"github.com/thomas-vilte/gemini-review-action/internal/config"
	"github.com/thomas-vilte/gemini-review-action/internal/gha"
	"github.com/thomas-vilte/gemini-review-action/internal/i18n"
	"github.com/thomas-vilte/gemini-review-action/internal/logger"
	"github.com/thomas-vilte/gemini-review-action/internal/models"
	"github.com/thomas-vilte/gemini-review-action/internal/ports"
	"github.com/thomas-vilte/gemini-review-action/internal/services"
	"github.com/thomas-vilte/gemini-review-action/internal/ui"
	vcsGithub "github.com/thomas-vilte/gemini-review-action/internal/vcs/github"
	"github.com/urfave/cli/v3"
)

type ReviewCommandFactory struct {
	newVCSClient func(owner, repo, token string) (ports.VCSClient, error)
	newReviewer  func(ctx context.Context, cfg *config.Config) (ports.AIReviewer, error)
}

func NewReviewCommandFactory() *ReviewCommandFactory {
	return &ReviewCommandFactory{
		newVCSClient: func(owner, repo, token string) (ports.VCSClient, error) {
			return vcsGithub.NewGitHubClient(owner, repo, token)
		},
		newReviewer: func(ctx context.Context, cfg *config.Config) (ports.AIReviewer, error) {
			return gemini.NewReviewer(ctx, cfg)
		},
	}
}

func (f *ReviewCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "review",
		Usage: t.GetMessage("review.command_usage", 0, nil),
		Flags: f.createFlags(cfg, t),
		Action: func(ctx context.Context, command *cli.Command) error {
			return f.runReview(ctx, command, t, cfg)
		},
	}
}

func (f *ReviewCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "diff",
			Value: cfg.Diff,
			Usage: t.GetMessage("review.flag_diff", 0, nil),
		},
		&cli.IntFlag{
			Name:  "diff-chunk-size",
			Value: int64(cfg.ChunkSize),
			Usage: t.GetMessage("review.flag_chunk_size", 0, nil),
		},
		&cli.StringFlag{
			Name:  "model",
			Value: string(cfg.Model),
			Usage: t.GetMessage("review.flag_model", 0, nil),
		},
		&cli.StringFlag{
			Name:  "extra-prompt",
			Value: cfg.ExtraPrompt,
			Usage: t.GetMessage("review.flag_extra_prompt", 0, nil),
		},
		&cli.FloatFlag{
			Name:  "temperature",
			Value: cfg.Temperature,
			Usage: t.GetMessage("review.flag_temperature", 0, nil),
		},
		&cli.IntFlag{
			Name:  "max-tokens",
			Value: int64(cfg.MaxTokens),
			Usage: t.GetMessage("review.flag_max_tokens", 0, nil),
		},
		&cli.FloatFlag{
			Name:  "top-p",
			Value: cfg.TopP,
			Usage: t.GetMessage("review.flag_top_p", 0, nil),
		},
		&cli.FloatFlag{
			Name:  "frequency-penalty",
			Value: cfg.FrequencyPenalty,
			Usage: t.GetMessage("review.flag_frequency_penalty", 0, nil),
		},
		&cli.FloatFlag{
			Name:  "presence-penalty",
			Value: cfg.PresencePenalty,
			Usage: t.GetMessage("review.flag_presence_penalty", 0, nil),
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: cfg.LogLevel,
			Usage: t.GetMessage("review.flag_log_level", 0, nil),
		},
		&cli.StringFlag{
			Name:  "github-comment",
			Value: cfg.GitHubComment,
			Usage: t.GetMessage("review.flag_github_comment", 0, nil),
		},
		&cli.StringFlag{
			Name:  "include-extensions",
			Usage: t.GetMessage("review.flag_include_extensions", 0, nil),
		},
		&cli.StringFlag{
			Name:  "always-include-files",
			Usage: t.GetMessage("review.flag_always_include", 0, nil),
		},
		&cli.StringFlag{
			Name:  "language",
			Value: cfg.Language,
			Usage: t.GetMessage("review.flag_language", 0, nil),
		},
	}
}

// applyFlags overlays the parsed flag values onto the config. Flags win over
// defaults for the tuning knobs; the secret contract stays environment-only.
func applyFlags(cfg *config.Config, command *cli.Command) {
	cfg.Diff = command.String("diff")
	cfg.ChunkSize = int(command.Int("diff-chunk-size"))
	cfg.Model = config.Model(command.String("model"))
	cfg.ExtraPrompt = command.String("extra-prompt")
	cfg.Temperature = command.Float("temperature")
	cfg.MaxTokens = int(command.Int("max-tokens"))
	cfg.TopP = command.Float("top-p")
	cfg.FrequencyPenalty = command.Float("frequency-penalty")
	cfg.PresencePenalty = command.Float("presence-penalty")
	cfg.LogLevel = command.String("log-level")
	cfg.GitHubComment = command.String("github-comment")
	cfg.IncludeExtensions = config.SplitList(command.String("include-extensions"))
	cfg.AlwaysIncludeFiles = config.SplitList(command.String("always-include-files"))
	cfg.Language = config.GetLocaleConfig(command.String("language"))
}

func (f *ReviewCommandFactory) runReview(ctx context.Context, command *cli.Command, t *i18n.Translations, cfg *config.Config) error {
	applyFlags(cfg, command)
	logger.Initialize(cfg.LogLevel)
	_ = t.SetLanguage(cfg.Language)

	if err := cfg.Validate(); err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	prNumber, err := cfg.PRNumber()
	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	owner, repo, err := cfg.ParseRepository()
	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	ctx = logger.With(ctx,
		"repository", cfg.Repository,
		"pr_number", prNumber)
	ui.PrintInfo(t.GetMessage("review.starting", 0, map[string]interface{}{
		"PRNumber": prNumber,
	}))

	vcsClient, err := f.newVCSClient(owner, repo, cfg.GitHubToken)
	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	reviewer, err := f.newReviewer(ctx, cfg)
	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}
	defer func() {
		if err := reviewer.Close(); err != nil {
			logger.Warn(ctx, "failed to close the model client", "error", err)
		}
	}()

	out := gha.NewWriter(cfg.OutputPath, cfg.StepSummaryPath)
	service := services.NewReviewService(cfg, vcsClient, reviewer, out)

	start := time.Now()
	result, err := service.Run(ctx)
	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	logger.Info(ctx, "review finished", "duration_ms", time.Since(start).Milliseconds())
	ui.PrintDuration(t.GetMessage("review.posted", 0, map[string]interface{}{
		"PRNumber": prNumber,
	}), time.Since(start))
	printUsage(result, t)

	return nil
}

func printUsage(result *models.ReviewResult, t *i18n.Translations) {
	if result == nil {
		return
	}
	ui.PrintTokenUsage(result.Usage, t)
}
