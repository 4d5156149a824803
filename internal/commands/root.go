package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/buildinfo"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/gitops"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Personal finance ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("file", "", "ledger file (default: TALLY_FILE, tally.yaml, then transactions.csv)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newDepositCommand())
	rootCmd.AddCommand(newPaymentCommand())
	rootCmd.AddCommand(newLedgerCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}

// resolveLedgerPath picks the ledger file: the --file flag, then the
// TALLY_FILE environment variable, then tally.yaml in the working
// directory, then the default transactions.csv.
func resolveLedgerPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("TALLY_FILE"); env != "" {
		return env
	}
	if cfg, err := config.Load(config.FileName); err == nil && cfg.Ledger.File != "" {
		return cfg.Ledger.File
	}
	return config.DefaultLedgerFile
}

// openLedger resolves the ledger path for a command and loads the store.
func openLedger(cmd *cobra.Command) (*ledger.Store, error) {
	flagValue, _ := cmd.Flags().GetString("file")
	store := ledger.NewStore(resolveLedgerPath(flagValue))
	if _, err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

// maybeCommit commits the ledger directory when tally.yaml enables
// auto-commit and the directory is a git repository. A commit failure is
// reported but does not fail the operation that already persisted.
func maybeCommit(ledgerPath, message string) {
	cfg, err := config.Load(config.FileName)
	if err != nil || !cfg.Git.AutoCommit {
		return
	}
	dir := filepath.Dir(ledgerPath)
	if !gitops.IsRepo(dir) {
		return
	}
	if _, err := gitops.CommitAll(dir, message, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
		fmt.Fprintln(os.Stderr, "git commit failed:", err)
	}
}

// today returns the current calendar day at midnight UTC.
func today() time.Time {
	return model.NewDate(time.Now().Date())
}
