package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/tally-dev/tally/internal/commands"
)

func main() {
	// A local .env may override TALLY_FILE; missing is fine.
	_ = godotenv.Load()

	rootCmd := commands.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
