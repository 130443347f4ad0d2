// ABOUTME: Main entry point for the terminal news grid
// ABOUTME: Wires configuration, logging and the news controller into a Bubble Tea program

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/natefinch/lumberjack.v2"

	"newsgrid/core/interfaces"
	"newsgrid/core/news"
	stdhttp "newsgrid/infrastructure/http/standard"
	"newsgrid/infrastructure/logger/structured"
	"newsgrid/pkg/config"
	"newsgrid/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "newsgrid: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// The terminal belongs to the grid, so logs go to a rotating file
	logFile := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     14,
	}
	defer logFile.Close()

	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: structured.Format(cfg.Log.Format),
		Output: logFile,
	})
	logger.Info("Starting newsgrid", map[string]interface{}{
		"endpoint":  cfg.NewsAPI.Endpoint,
		"page_size": cfg.News.PageSize,
		"timezone":  loc.String(),
	})

	deps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.NewsAPI.Timeout, logger),
		Logger:     logger,
	}

	service := news.NewService(deps, newsOptions(cfg))
	controller := news.NewController(service, deps)
	defer controller.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	model := tui.New(controller, tui.Options{Context: ctx, Location: loc})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		logger.Error("Program exited with error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Stopped newsgrid", map[string]interface{}{
		"page": controller.State().Page,
	})
	return nil
}

func newsOptions(cfg *config.Config) news.Options {
	return news.Options{
		Endpoint: cfg.NewsAPI.Endpoint,
		APIKey:   cfg.NewsAPI.APIKey,
		PageSize: cfg.News.PageSize,
		Regional: news.Query{
			Name:     news.DefaultRegionalQuery.Name,
			Term:     cfg.News.RegionalQuery,
			Language: cfg.News.RegionalLanguage,
		},
		Default: news.Query{
			Name:     news.DefaultTopicQuery.Name,
			Term:     cfg.News.DefaultQuery,
			Language: cfg.News.DefaultLanguage,
		},
	}
}
