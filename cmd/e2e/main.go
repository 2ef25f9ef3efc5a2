package main

import (
	"log/slog"
	"os"

	"github.com/danielholmes839/altart-e2e/internal/config"
	"github.com/danielholmes839/altart-e2e/internal/notify"
	"github.com/danielholmes839/altart-e2e/internal/scenario"
	"github.com/spf13/afero"
)

func run() (int, error) {
	cfg := config.Load()

	// setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{}))
	slog.SetDefault(logger)

	artwork := scenario.DefaultArtwork()
	if cfg.ArtworkFile != "" {
		var err error
		artwork, err = scenario.LoadArtwork(afero.NewOsFs(), cfg.ArtworkFile)
		if err != nil {
			return 0, err
		}
	}

	runner := &scenario.Runner{
		Sessions: scenario.PlaywrightSessions(cfg.SessionOptions()),
		Logger:   logger,
	}

	report := runner.Run(scenario.Suite(scenario.SuiteOptions{
		Credentials:     cfg.Credentials(),
		Artwork:         artwork,
		VerifyPublished: cfg.VerifyPublished,
	}))

	logger.Info("finished e2e run", "scenarios", len(report.Results), "failed", report.Failed())

	// post the report to discord when configured
	if cfg.DiscordToken != "" && cfg.DiscordChannelID != "" {
		discord, err := notify.NewDiscord(cfg.DiscordToken, cfg.DiscordChannelID, cfg.BaseURL)
		if err != nil {
			logger.Error("failed to create discord session", "err", err)
		} else if err := discord.Send(report); err != nil {
			logger.Error("failed to send report to discord", "err", err)
		}
	}

	return report.Failed(), nil
}

func main() {
	failed, err := run()
	if err != nil {
		panic(err)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
