package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clarkgrg/Trivia/internal/config"
	"github.com/clarkgrg/Trivia/internal/logger"
	"github.com/clarkgrg/Trivia/internal/opentdb"
	"github.com/clarkgrg/Trivia/internal/trivia"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a page of questions and print them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log, err := logger.New(cfg)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		client := opentdb.NewClient(
			opentdb.WithBaseURL(cfg.APIBaseURL),
			opentdb.WithAmount(cfg.Amount),
			opentdb.WithTimeout(cfg.Timeout),
		)
		service := trivia.NewService(client)

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		if err := service.Refresh(ctx); err != nil {
			log.Error("fetch failed", zap.Error(err))
			return err
		}

		for i, q := range service.Questions() {
			fmt.Printf("%d. [%s · %s] %s\n", i+1, q.Category, q.Difficulty, q.Prompt)
			for _, a := range q.AllAnswers() {
				marker := " "
				if a == q.CorrectAnswer {
					marker = "*"
				}
				fmt.Printf("   %s %s\n", marker, a)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	fetchCmd.SetContext(context.Background())
}
