package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/gitops"
	"github.com/tally-dev/tally/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, useGit)
		},
	}

	cmd.Flags().BoolVar(&useGit, "git", false, "track the ledger in a git repository")

	return cmd
}

func runInit(dir string, useGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default()
	cfg.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Loading a fresh store creates the empty transactions file.
	store := ledger.NewStore(filepath.Join(dir, cfg.Ledger.File))
	if _, err := store.Load(); err != nil {
		return fmt.Errorf("creating ledger file: %w", err)
	}

	if useGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitAll(dir, "init: new ledger", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized ledger at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Printf("Initialized ledger at %s\n", dir)
	return nil
}
