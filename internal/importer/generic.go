package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// GenericParser parses CSV exports with a header row naming at least
// date, description, vendor, and amount columns. An optional time column
// carries the time of day; rows without one get midnight. Amounts are
// signed: negative rows become payments, positive rows deposits.
type GenericParser struct{}

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

type genericColumns struct {
	date, clock, desc, vendor, amount int
}

// Parse reads a generic CSV export and returns transactions in row order.
func (p *GenericParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	cols, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		tx, err := parseGenericRow(cols, rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, tx)
	}
	return txns, nil
}

func mapColumns(header []string) (genericColumns, error) {
	cols := genericColumns{date: -1, clock: -1, desc: -1, vendor: -1, amount: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			cols.date = i
		case "time":
			cols.clock = i
		case "description":
			cols.desc = i
		case "vendor", "payee":
			cols.vendor = i
		case "amount":
			cols.amount = i
		}
	}
	for name, idx := range map[string]int{
		"date":        cols.date,
		"description": cols.desc,
		"vendor":      cols.vendor,
		"amount":      cols.amount,
	} {
		if idx < 0 {
			return genericColumns{}, fmt.Errorf("missing %q column in header", name)
		}
	}
	return cols, nil
}

func parseGenericRow(cols genericColumns, rec []string) (model.Transaction, error) {
	date, err := time.Parse(model.DateFormat, rec[cols.date])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[cols.date], err)
	}

	clock := model.ClockTime(0, 0, 0)
	if cols.clock >= 0 && rec[cols.clock] != "" {
		clock, err = time.Parse(model.TimeFormat, rec[cols.clock])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing time %q: %w", rec[cols.clock], err)
		}
	}

	amount, err := decimal.NewFromString(rec[cols.amount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[cols.amount], err)
	}

	return model.Transaction{
		Date:        date,
		Time:        clock,
		Description: rec[cols.desc],
		Vendor:      rec[cols.vendor],
		Amount:      amount,
	}, nil
}
