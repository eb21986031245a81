package main

import (
	"context"
	"log"
	"os"

	"github.com/thomas-vilte/gemini-review-action/internal/cli/command/doctor"
	"github.com/thomas-vilte/gemini-review-action/internal/cli/command/resolvepr"
	"github.com/thomas-vilte/gemini-review-action/internal/cli/command/review"
	versionCmd "github.com/thomas-vilte/gemini-review-action/internal/cli/command/version"
	"github.com/thomas-vilte/gemini-review-action/internal/cli/registry"
	cfg "github.com/thomas-vilte/gemini-review-action/internal/config"
	"github.com/thomas-vilte/gemini-review-action/internal/i18n"
	"github.com/thomas-vilte/gemini-review-action/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error initializing the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, error) {
	cfgApp, err := cfg.Load()
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language)
	if err != nil {
		return nil, err
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("review", review.NewReviewCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'review' command: %v", err)
	}

	if err := registerCommand.Register("resolve-pr", resolvepr.NewResolvePRCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'resolve-pr' command: %v", err)
	}

	if err := registerCommand.Register("doctor", doctor.NewDoctorCommand()); err != nil {
		log.Fatalf("Error registering the 'doctor' command: %v", err)
	}

	if err := registerCommand.Register("version", versionCmd.NewVersionCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'version' command: %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:        "gemini-review",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Commands:    commands,
	}, nil
}
