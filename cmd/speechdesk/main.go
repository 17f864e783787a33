package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/enriquemv/speechdesk/internal/cli"
	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/repository"
	"github.com/enriquemv/speechdesk/internal/service"
	"github.com/enriquemv/speechdesk/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Data directory: env var or default ~/.speechdesk
	dataDir := os.Getenv("SPEECHDESK_DATA")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".speechdesk")
	}

	st, err := store.Open(dataDir)
	if err != nil {
		return fmt.Errorf("opening data directory: %w", err)
	}

	// Wire repositories
	speechRepo := repository.NewCSVSpeechRepo(st)
	usageRepo := repository.NewCSVUsageRepo(st)
	feedbackRepo := repository.NewCSVFeedbackRepo(st)
	reviewRepo := repository.NewCSVReviewRepo(st)
	snippetRepo := repository.NewCSVSnippetRepo(st)

	app := &cli.App{
		Catalog:  service.NewCatalogService(speechRepo),
		Triage:   service.NewTriageService(speechRepo),
		Activity: service.NewActivityService(speechRepo, usageRepo, feedbackRepo, reviewRepo, snippetRepo),
		Reports:  service.NewReportService(usageRepo, feedbackRepo, reviewRepo),
		Session:  domain.NewSession(),
	}

	// Detect interactive terminal for the TUI-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
