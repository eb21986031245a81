package resolvepr

import (
	"context"
	"os"
	"time"

	"github.com/thomas-vilte/gemini-review-action/internal/config"
	"github.com/thomas-vilte/gemini-review-action/internal/gha"
	"github.com/thomas-vilte/gemini-review-action/internal/i18n"
	"github.com/thomas-vilte/gemini-review-action/internal/logger"
	"github.com/thomas-vilte/gemini-review-action/internal/services"
	"github.com/thomas-vilte/gemini-review-action/internal/ui"
	"github.com/urfave/cli/v3"
)

type ResolvePRCommandFactory struct{}

func NewResolvePRCommandFactory() *ResolvePRCommandFactory {
	return &ResolvePRCommandFactory{}
}

func (f *ResolvePRCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "resolve-pr",
		Usage: t.GetMessage("resolve.command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.LogLevel,
				Usage: t.GetMessage("review.flag_log_level", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			logger.Initialize(command.String("log-level"))
			start := time.Now()

			out := gha.NewWriter(cfg.OutputPath, cfg.StepSummaryPath)
			service := services.NewResolveService(cfg, out)

			event, err := service.Run(ctx)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}
			logger.Info(ctx, "event resolved", "duration_ms", time.Since(start).Milliseconds())

			if !event.IsPullRequest {
				ui.PrintInfo(t.GetMessage("resolve.not_pull_request", 0, nil))
				return nil
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("resolve.resolved", 0, map[string]interface{}{
				"PRNumber": event.PRNumber,
			}))
			return nil
		},
	}
}
