package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/query"
)

func newSearchCommand() *cobra.Command {
	var startStr, endStr, description, vendor, amountStr string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search entries by any mix of criteria",
		Long: `Search entries by any mix of criteria. Every flag is optional;
an entry must match all the flags you supply. Date bounds are inclusive,
description and vendor match case-insensitive substrings, and amount
matches the exact signed value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var c query.Criteria

			if cmd.Flags().Changed("start") {
				start, err := time.Parse(model.DateFormat, startStr)
				if err != nil {
					return fmt.Errorf("invalid start date %q, want YYYY-MM-DD: %w", startStr, err)
				}
				c.Start = &start
			}
			if cmd.Flags().Changed("end") {
				end, err := time.Parse(model.DateFormat, endStr)
				if err != nil {
					return fmt.Errorf("invalid end date %q, want YYYY-MM-DD: %w", endStr, err)
				}
				c.End = &end
			}
			if cmd.Flags().Changed("description") {
				c.Description = &description
			}
			if cmd.Flags().Changed("vendor") {
				c.Vendor = &vendor
			}
			if cmd.Flags().Changed("amount") {
				amount, err := decimal.NewFromString(amountStr)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", amountStr, err)
				}
				c.Amount = &amount
			}

			store, err := openLedger(cmd)
			if err != nil {
				return err
			}
			renderTable(cmd.OutOrStdout(), query.Search(store.Snapshot(), c))
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "earliest date, YYYY-MM-DD")
	cmd.Flags().StringVar(&endStr, "end", "", "latest date, YYYY-MM-DD")
	cmd.Flags().StringVar(&description, "description", "", "description contains")
	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor contains")
	cmd.Flags().StringVar(&amountStr, "amount", "", "exact signed amount")

	return cmd
}
