package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/query"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Date-range and vendor reports",
	}

	reportCmd.AddCommand(
		newRangeReportCommand("month-to-date", "Entries from the first of this month through today", query.MonthToDate),
		newRangeReportCommand("previous-month", "Entries from the previous calendar month", query.PreviousMonth),
		newRangeReportCommand("year-to-date", "Entries from January 1 through today", query.YearToDate),
		newRangeReportCommand("previous-year", "Entries from the previous calendar year", query.PreviousYear),
		newVendorReportCommand(),
	)

	return reportCmd
}

func newRangeReportCommand(name, short string, bounds func(time.Time) (time.Time, time.Time)) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openLedger(cmd)
			if err != nil {
				return err
			}
			start, end := bounds(today())
			renderTable(cmd.OutOrStdout(), query.ByDateRange(store.Snapshot(), start, end))
			return nil
		},
	}
}

func newVendorReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vendor <name>",
		Short: "Entries whose vendor matches exactly (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openLedger(cmd)
			if err != nil {
				return err
			}
			renderTable(cmd.OutOrStdout(), query.ByVendor(store.Snapshot(), args[0]))
			return nil
		},
	}
}
