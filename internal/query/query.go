// Package query filters ledger snapshots. Every function is pure: it
// takes the record sequence produced by Store.Snapshot plus filter
// parameters, preserves relative order, and never errors — no matches
// is an empty result, not a failure.
package query

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Criteria holds the optional constraints of a custom search. A nil
// field imposes no constraint; a record matches only when every supplied
// constraint matches.
type Criteria struct {
	Start       *time.Time       // inclusive lower date bound
	End         *time.Time       // inclusive upper date bound
	Description *string          // case-insensitive substring of Description
	Vendor      *string          // case-insensitive substring of Vendor
	Amount      *decimal.Decimal // exact amount, compared by decimal value
}

func (c Criteria) matches(tx model.Transaction) bool {
	if c.Start != nil && tx.Date.Before(*c.Start) {
		return false
	}
	if c.End != nil && tx.Date.After(*c.End) {
		return false
	}
	if c.Description != nil && !containsFold(tx.Description, *c.Description) {
		return false
	}
	if c.Vendor != nil && !containsFold(tx.Vendor, *c.Vendor) {
		return false
	}
	if c.Amount != nil && !tx.Amount.Equal(*c.Amount) {
		return false
	}
	return true
}

// Search keeps records matching every supplied criterion. With all
// criteria omitted it returns the full snapshot unchanged in order.
func Search(snapshot []model.Transaction, c Criteria) []model.Transaction {
	return filter(snapshot, c.matches)
}

// Deposits keeps records with a positive amount.
func Deposits(snapshot []model.Transaction) []model.Transaction {
	return filter(snapshot, model.Transaction.IsDeposit)
}

// Payments keeps records with a negative amount.
func Payments(snapshot []model.Transaction) []model.Transaction {
	return filter(snapshot, model.Transaction.IsPayment)
}

// ByDateRange keeps records dated within [start, end], both ends
// inclusive. A start after end matches nothing.
func ByDateRange(snapshot []model.Transaction, start, end time.Time) []model.Transaction {
	return Search(snapshot, Criteria{Start: &start, End: &end})
}

// ByVendor keeps records whose vendor equals name, compared
// case-insensitively after trimming surrounding whitespace from name.
// This is an exact match, not a substring match.
func ByVendor(snapshot []model.Transaction, name string) []model.Transaction {
	want := strings.TrimSpace(name)
	return filter(snapshot, func(tx model.Transaction) bool {
		return strings.EqualFold(tx.Vendor, want)
	})
}

func filter(snapshot []model.Transaction, keep func(model.Transaction) bool) []model.Transaction {
	var out []model.Transaction
	for _, tx := range snapshot {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
