package version

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/gemini-review-action/internal/config"
	"github.com/thomas-vilte/gemini-review-action/internal/i18n"
	appVersion "github.com/thomas-vilte/gemini-review-action/internal/version"
	"github.com/urfave/cli/v3"
)

type VersionCommandFactory struct{}

func NewVersionCommandFactory() *VersionCommandFactory {
	return &VersionCommandFactory{}
}

func (f *VersionCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   t.GetMessage("version.command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(appVersion.FullVersion())
			return nil
		},
	}
}
