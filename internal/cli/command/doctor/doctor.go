package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/thomas-vilte/gemini-review-action/internal/cache"
	"github.com/thomas-vilte/gemini-review-action/internal/config"
	domainErrors "github.com/thomas-vilte/gemini-review-action/internal/errors"
	"github.com/thomas-vilte/gemini-review-action/internal/i18n"
	"github.com/thomas-vilte/gemini-review-action/internal/ports"
	"github.com/thomas-vilte/gemini-review-action/internal/services"
	"github.com/thomas-vilte/gemini-review-action/internal/ui"
	"github.com/thomas-vilte/gemini-review-action/internal/vcs/github"
	"github.com/thomas-vilte/gemini-review-action/internal/version"
	"github.com/urfave/cli/v3"
)

type DoctorCommand struct {
	newVCSClient func(owner, repo, token string) (ports.VCSClient, error)
}

func NewDoctorCommand() *DoctorCommand {
	return &DoctorCommand{
		newVCSClient: func(owner, repo, token string) (ports.VCSClient, error) {
			return github.NewGitHubClient(owner, repo, token)
		},
	}
}

func (d *DoctorCommand) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "doctor",
		Aliases: []string{"dr"},
		Usage:   t.GetMessage("doctor.command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			return d.runHealthCheck(ctx, t, cfg)
		},
	}
}

type checkStatus int

const (
	checkStatusOK checkStatus = iota
	checkStatusWarning
	checkStatusError
)

type checkResult struct {
	status     checkStatus
	message    string
	suggestion string
}

type healthCheck struct {
	name string
	fn   func(context.Context, *i18n.Translations, *config.Config) checkResult
}

func (d *DoctorCommand) runHealthCheck(ctx context.Context, t *i18n.Translations, cfg *config.Config) error {
	ui.PrintSectionBanner(t.GetMessage("doctor.running_checks", 0, nil))

	checks := []healthCheck{
		{name: "doctor.check_review_env", fn: d.checkReviewEnv},
		{name: "doctor.check_repository", fn: d.checkRepository},
		{name: "doctor.check_event_payload", fn: d.checkEventPayload},
		{name: "doctor.check_github_token", fn: d.checkGitHubToken},
		{name: "doctor.check_gemini_key", fn: d.checkGeminiKey},
		{name: "doctor.check_update", fn: d.checkUpdate},
	}

	var warnings []string
	var failures []string

	for _, check := range checks {
		checkName := t.GetMessage(check.name, 0, nil)
		result := check.fn(ctx, t, cfg)

		switch result.status {
		case checkStatusOK:
			ui.PrintSuccess(os.Stdout, checkName)
			if result.message != "" {
				ui.PrintInfo("  " + result.message)
			}
		case checkStatusWarning:
			ui.PrintWarning(checkName)
			warnings = append(warnings, result.message)
			if result.message != "" {
				ui.PrintInfo("  " + result.message)
			}
			if result.suggestion != "" {
				ui.PrintInfo("  → " + result.suggestion)
			}
		case checkStatusError:
			ui.PrintError(os.Stdout, checkName)
			failures = append(failures, result.message)
			if result.message != "" {
				ui.PrintInfo("  " + result.message)
			}
			if result.suggestion != "" {
				ui.PrintInfo("  → " + result.suggestion)
			}
		}
	}

	fmt.Println()
	ui.PrintSectionBanner(t.GetMessage("doctor.summary", 0, nil))

	switch {
	case len(failures) == 0 && len(warnings) == 0:
		ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.all_good", 0, nil))
	case len(failures) == 0:
		ui.PrintWarning(t.GetMessage("doctor.has_warnings", 0, nil))
	default:
		ui.PrintError(os.Stdout, t.GetMessage("doctor.has_errors", 0, nil))
		return domainErrors.NewAppError(domainErrors.TypeConfiguration, strings.Join(failures, "; "), nil)
	}

	return nil
}

func (d *DoctorCommand) checkReviewEnv(_ context.Context, t *i18n.Translations, cfg *config.Config) checkResult {
	if err := cfg.Validate(); err != nil {
		var appErr *domainErrors.AppError
		if errors.As(err, &appErr) {
			if name, ok := appErr.Context["env_var"].(string); ok {
				return checkResult{
					status:     checkStatusError,
					message:    t.GetMessage("doctor.env_missing", 0, map[string]interface{}{"Var": name}),
					suggestion: appErr.Suggestion,
				}
			}
			return checkResult{
				status:     checkStatusError,
				message:    appErr.Message,
				suggestion: appErr.Suggestion,
			}
		}
		return checkResult{status: checkStatusError, message: err.Error()}
	}
	return checkResult{
		status:  checkStatusOK,
		message: t.GetMessage("doctor.env_ok", 0, nil),
	}
}

func (d *DoctorCommand) checkRepository(_ context.Context, t *i18n.Translations, cfg *config.Config) checkResult {
	owner, repo, err := cfg.ParseRepository()
	if err != nil {
		return checkResult{
			status:     checkStatusError,
			message:    t.GetMessage("doctor.repo_invalid", 0, nil),
			suggestion: t.GetMessage("doctor.repo_suggestion", 0, nil),
		}
	}
	return checkResult{
		status:  checkStatusOK,
		message: fmt.Sprintf("(%s/%s)", owner, repo),
	}
}

func (d *DoctorCommand) checkEventPayload(_ context.Context, t *i18n.Translations, cfg *config.Config) checkResult {
	if cfg.EventPath == "" {
		return checkResult{
			status:  checkStatusWarning,
			message: t.GetMessage("doctor.event_not_set", 0, nil),
		}
	}

	event, err := github.ParseIssueCommentEvent(cfg.EventPath)
	if err != nil {
		var appErr *domainErrors.AppError
		if errors.As(err, &appErr) {
			return checkResult{
				status:     checkStatusError,
				message:    appErr.Message,
				suggestion: appErr.Suggestion,
			}
		}
		return checkResult{status: checkStatusError, message: err.Error()}
	}

	if !event.IsPullRequest {
		return checkResult{
			status:  checkStatusOK,
			message: t.GetMessage("doctor.event_not_pr", 0, nil),
		}
	}
	return checkResult{
		status: checkStatusOK,
		message: t.GetMessage("doctor.event_pr", 0, map[string]interface{}{
			"PRNumber": event.PRNumber,
		}),
	}
}

func (d *DoctorCommand) checkGitHubToken(ctx context.Context, t *i18n.Translations, cfg *config.Config) checkResult {
	if cfg.GitHubToken == "" {
		return checkResult{
			status:     checkStatusWarning,
			message:    t.GetMessage("doctor.token_not_set", 0, nil),
			suggestion: t.GetMessage("doctor.token_suggestion", 0, nil),
		}
	}

	owner, repo, err := cfg.ParseRepository()
	if err != nil {
		// Already reported by the repository check.
		return checkResult{status: checkStatusWarning, message: t.GetMessage("doctor.repo_invalid", 0, nil)}
	}

	client, err := d.newVCSClient(owner, repo, cfg.GitHubToken)
	if err != nil {
		return checkResult{status: checkStatusError, message: err.Error()}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// A release lookup is the cheapest authenticated call the client
	// exposes. A missing release is fine; a rejected token is not.
	_, err = client.GetLatestRelease(checkCtx, owner, repo)
	if err != nil {
		var appErr *domainErrors.AppError
		if errors.As(err, &appErr) && appErr.Type == domainErrors.TypeVCS &&
			appErr.Message == domainErrors.ErrGitHubTokenInvalid.Message {
			return checkResult{
				status:     checkStatusError,
				message:    t.GetMessage("doctor.token_invalid", 0, nil),
				suggestion: appErr.Suggestion,
			}
		}
		// Not found or transient failures don't tell us anything about
		// the token.
		return checkResult{status: checkStatusOK, message: t.GetMessage("doctor.token_ok", 0, nil)}
	}

	return checkResult{
		status:  checkStatusOK,
		message: t.GetMessage("doctor.token_ok", 0, nil),
	}
}

func (d *DoctorCommand) checkGeminiKey(_ context.Context, t *i18n.Translations, cfg *config.Config) checkResult {
	if cfg.GeminiAPIKey == "" {
		return checkResult{
			status:     checkStatusError,
			message:    t.GetMessage("doctor.key_not_set", 0, nil),
			suggestion: t.GetMessage("doctor.key_suggestion", 0, nil),
		}
	}

	if !strings.HasPrefix(cfg.GeminiAPIKey, "AIza") {
		return checkResult{
			status:     checkStatusWarning,
			message:    t.GetMessage("doctor.key_shape_warning", 0, nil),
			suggestion: t.GetMessage("doctor.key_suggestion", 0, nil),
		}
	}

	return checkResult{
		status:  checkStatusOK,
		message: t.GetMessage("doctor.key_ok", 0, nil),
	}
}

func (d *DoctorCommand) checkUpdate(ctx context.Context, t *i18n.Translations, cfg *config.Config) checkResult {
	client, err := d.newVCSClient("", "", cfg.GitHubToken)
	if err != nil {
		return checkResult{
			status:  checkStatusWarning,
			message: t.GetMessage("doctor.update_check_failed", 0, nil),
		}
	}

	updateCache, err := cache.NewCache(services.UpdateCacheTTL())
	if err != nil {
		updateCache = nil
	}

	checker := services.NewVersionChecker(version.Version, client, updateCache)
	info, err := checker.CheckForUpdates(ctx)
	if err != nil {
		return checkResult{
			status:  checkStatusWarning,
			message: t.GetMessage("doctor.update_check_failed", 0, nil),
		}
	}
	if info == nil || !info.Available {
		return checkResult{
			status:  checkStatusOK,
			message: t.GetMessage("doctor.up_to_date", 0, nil),
		}
	}

	return checkResult{
		status: checkStatusWarning,
		message: t.GetMessage("doctor.update_available", 0, map[string]interface{}{
			"Latest":  info.LatestVersion,
			"Current": info.CurrentVersion,
		}),
	}
}
