package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clarkgrg/Trivia/internal/config"
	"github.com/clarkgrg/Trivia/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "trivia",
	Short: "Terminal trivia game",
	Long:  "Trivia is a terminal quiz game backed by the Open Trivia Database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TRIVIA_DB env var)")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the configured db_path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
