package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/importer"
)

func newImportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import transactions from a bank CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "generic", "export format")

	return cmd
}

func runImport(cmd *cobra.Command, csvPath, format string) error {
	registry := importer.DefaultRegistry()
	parser := registry.Get(format)
	if parser == nil {
		return fmt.Errorf("unknown import format %q (available: %s)", format, strings.Join(registry.Formats(), ", "))
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", csvPath, err)
	}

	store, err := openLedger(cmd)
	if err != nil {
		return err
	}

	for i, tx := range txns {
		if err := store.Append(tx); err != nil {
			return fmt.Errorf("importing row %d: %w", i+2, err)
		}
	}

	fmt.Printf("Imported %d transaction(s) into %s\n", len(txns), store.Path())
	maybeCommit(store.Path(), fmt.Sprintf("ledger: import %d transactions from %s", len(txns), filepath.Base(csvPath)))
	return nil
}
