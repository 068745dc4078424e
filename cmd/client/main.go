package main

import (
	"context"
	"fmt"

	"github.com/ndenisov/sketchkeep/internal/client"
	"github.com/ndenisov/sketchkeep/internal/config"
	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("sketchkeep-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}
	defer app.Close()

	if err = app.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("error loading notes")
	}

	ui := tui.New(app, log)
	if err = ui.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
