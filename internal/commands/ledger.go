package commands

import (
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/query"
)

func newLedgerCommand() *cobra.Command {
	var depositsOnly, paymentsOnly bool

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show ledger entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openLedger(cmd)
			if err != nil {
				return err
			}

			snapshot := store.Snapshot()
			switch {
			case depositsOnly:
				snapshot = query.Deposits(snapshot)
			case paymentsOnly:
				snapshot = query.Payments(snapshot)
			}

			renderTable(cmd.OutOrStdout(), snapshot)
			return nil
		},
	}

	cmd.Flags().BoolVar(&depositsOnly, "deposits", false, "show only deposits")
	cmd.Flags().BoolVar(&paymentsOnly, "payments", false, "show only payments")
	cmd.MarkFlagsMutuallyExclusive("deposits", "payments")

	return cmd
}
