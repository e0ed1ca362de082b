package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/clarkgrg/Trivia/cmd"
)

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
