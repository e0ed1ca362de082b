package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clarkgrg/Trivia/internal/app"
	"github.com/clarkgrg/Trivia/internal/config"
	"github.com/clarkgrg/Trivia/internal/logger"
	"github.com/clarkgrg/Trivia/internal/opentdb"
	"github.com/clarkgrg/Trivia/internal/store"
	"github.com/clarkgrg/Trivia/internal/trivia"
)

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The TUI logs to a file so terminal output stays clean.
	logPath, err := logger.DefaultLogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	log, err := logger.NewFile(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = log.Sync() }()

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client := opentdb.NewClient(
		opentdb.WithBaseURL(cfg.APIBaseURL),
		opentdb.WithAmount(cfg.Amount),
		opentdb.WithTimeout(cfg.Timeout),
	)

	return app.Run(app.Options{
		Service: trivia.NewService(client),
		Answers: st.Answers(),
		Logger:  log,
	})
}
