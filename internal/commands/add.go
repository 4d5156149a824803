package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
)

type addOptions struct {
	date        string
	clock       string
	description string
	vendor      string
	amount      string
}

func newDepositCommand() *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Record a deposit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts, false)
		},
	}
	addEntryFlags(cmd, &opts)
	return cmd
}

func newPaymentCommand() *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Record a payment (debit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts, true)
		},
	}
	addEntryFlags(cmd, &opts)
	return cmd
}

func addEntryFlags(cmd *cobra.Command, opts *addOptions) {
	cmd.Flags().StringVar(&opts.date, "date", "", "transaction date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&opts.clock, "time", "", "transaction time, HH:MM:SS (default: now)")
	cmd.Flags().StringVar(&opts.description, "description", "", "what the transaction was for (required)")
	cmd.Flags().StringVar(&opts.vendor, "vendor", "", "who the transaction was with (required)")
	cmd.Flags().StringVar(&opts.amount, "amount", "", "positive amount (required)")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("vendor")
	_ = cmd.MarkFlagRequired("amount")
}

func runAdd(cmd *cobra.Command, opts addOptions, payment bool) error {
	date := today()
	if opts.date != "" {
		var err error
		date, err = time.Parse(model.DateFormat, opts.date)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", opts.date, err)
		}
	}

	clock := model.ClockTime(time.Now().Clock())
	if opts.clock != "" {
		var err error
		clock, err = time.Parse(model.TimeFormat, opts.clock)
		if err != nil {
			return fmt.Errorf("invalid time %q, want HH:MM:SS: %w", opts.clock, err)
		}
	}

	amount, err := decimal.NewFromString(opts.amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", opts.amount, err)
	}

	store, err := openLedger(cmd)
	if err != nil {
		return err
	}

	kind := "deposit"
	if payment {
		kind = "payment"
		err = store.AddPayment(date, clock, opts.description, opts.vendor, amount)
	} else {
		err = store.AddDeposit(date, clock, opts.description, opts.vendor, amount)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s of %s to %s (%d records)\n", kind, amount.StringFixed(2), store.Path(), store.Len())
	maybeCommit(store.Path(), fmt.Sprintf("ledger: %s %s %s", kind, amount.StringFixed(2), opts.vendor))
	return nil
}
