package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clarkgrg/Trivia/internal/config"
	"github.com/clarkgrg/Trivia/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show answer history and accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		answers := st.Answers()

		total, correct, err := answers.Stats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if total == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		fmt.Printf("%d answered, %d correct (%.0f%%)\n\n",
			total, correct, float64(correct)/float64(total)*100)

		records, err := answers.Recent(ctx, 20)
		if err != nil {
			return fmt.Errorf("load recent answers: %w", err)
		}
		for _, rec := range records {
			marker := "✘"
			if rec.Correct {
				marker = "✔"
			}
			fmt.Printf("%s %s\n    guessed %q, correct %q\n",
				marker, rec.Prompt, rec.Guess, rec.CorrectAnswer)
		}
		return nil
	},
}

func init() {
	historyCmd.SetContext(context.Background())
}
