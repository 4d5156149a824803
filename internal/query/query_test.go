package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func date(y, m, d int) time.Time {
	return model.NewDate(y, time.Month(m), d)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func strptr(s string) *string { return &s }

func sampleSnapshot() []model.Transaction {
	mk := func(y, m, d int, desc, vendor, amount string) model.Transaction {
		return model.Transaction{
			Date:        date(y, m, d),
			Time:        model.ClockTime(12, 0, 0),
			Description: desc,
			Vendor:      vendor,
			Amount:      dec(amount),
		}
	}
	return []model.Transaction{
		mk(2024, 1, 5, "Paycheck", "ACME Corp", "1000.00"),
		mk(2024, 1, 10, "Lunch", "Cafe Nero", "-12.50"),
		mk(2024, 2, 1, "Rent", "Oakwood Apartments", "-850.00"),
		mk(2024, 2, 14, "Dinner", "Cafe Nero", "-38.75"),
		mk(2024, 3, 1, "Paycheck", "ACME Corp", "1000.00"),
		mk(2024, 3, 15, "Grocery run", "Market St Foods", "-54.20"),
	}
}

func descriptions(txs []model.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.Description
	}
	return out
}

func TestDepositsAndPayments(t *testing.T) {
	snapshot := sampleSnapshot()

	deposits := Deposits(snapshot)
	require.Len(t, deposits, 2)
	for _, tx := range deposits {
		assert.True(t, tx.Amount.IsPositive())
	}

	payments := Payments(snapshot)
	require.Len(t, payments, 4)
	for _, tx := range payments {
		assert.True(t, tx.Amount.IsNegative())
	}

	// Together they partition the snapshot.
	assert.Equal(t, len(snapshot), len(deposits)+len(payments))
}

func TestByDateRange(t *testing.T) {
	snapshot := sampleSnapshot()

	t.Run("inclusive bounds", func(t *testing.T) {
		got := ByDateRange(snapshot, date(2024, 1, 5), date(2024, 2, 1))
		assert.Equal(t, []string{"Paycheck", "Lunch", "Rent"}, descriptions(got))
	})

	t.Run("single day", func(t *testing.T) {
		got := ByDateRange(snapshot, date(2024, 2, 14), date(2024, 2, 14))
		assert.Equal(t, []string{"Dinner"}, descriptions(got))
	})

	t.Run("empty range", func(t *testing.T) {
		got := ByDateRange(snapshot, date(2024, 3, 1), date(2024, 1, 1))
		assert.Empty(t, got)
	})

	t.Run("no matches", func(t *testing.T) {
		got := ByDateRange(snapshot, date(2023, 1, 1), date(2023, 12, 31))
		assert.Empty(t, got)
	})
}

func TestByVendor(t *testing.T) {
	snapshot := sampleSnapshot()

	exact := ByVendor(snapshot, "Cafe Nero")
	require.Len(t, exact, 2)
	assert.Equal(t, []string{"Lunch", "Dinner"}, descriptions(exact))

	// Case-insensitive and whitespace-trimmed lookups match identically.
	assert.Equal(t, exact, ByVendor(snapshot, "cafe nero"))
	assert.Equal(t, exact, ByVendor(snapshot, "  CAFE NERO  "))

	// Exact match, not substring.
	assert.Empty(t, ByVendor(snapshot, "Cafe"))
	assert.Empty(t, ByVendor(snapshot, "Nowhere Inc"))
}

func TestSearch_AllOmitted(t *testing.T) {
	snapshot := sampleSnapshot()
	got := Search(snapshot, Criteria{})
	require.Len(t, got, len(snapshot))
	for i := range snapshot {
		assert.True(t, snapshot[i].Equal(got[i]), "order changed at %d", i)
	}
}

func TestSearch_SingleCriteria(t *testing.T) {
	snapshot := sampleSnapshot()

	t.Run("start only", func(t *testing.T) {
		start := date(2024, 3, 1)
		got := Search(snapshot, Criteria{Start: &start})
		assert.Equal(t, []string{"Paycheck", "Grocery run"}, descriptions(got))
	})

	t.Run("end only", func(t *testing.T) {
		end := date(2024, 1, 31)
		got := Search(snapshot, Criteria{End: &end})
		assert.Equal(t, []string{"Paycheck", "Lunch"}, descriptions(got))
	})

	t.Run("description substring is case-insensitive", func(t *testing.T) {
		got := Search(snapshot, Criteria{Description: strptr("pAyChEcK")})
		assert.Len(t, got, 2)
	})

	t.Run("vendor substring", func(t *testing.T) {
		got := Search(snapshot, Criteria{Vendor: strptr("nero")})
		assert.Equal(t, []string{"Lunch", "Dinner"}, descriptions(got))
	})

	t.Run("amount compares decimal values", func(t *testing.T) {
		amount := dec("-12.5")
		got := Search(snapshot, Criteria{Amount: &amount})
		require.Len(t, got, 1)
		assert.Equal(t, "Lunch", got[0].Description)
	})

	t.Run("amount sign matters", func(t *testing.T) {
		amount := dec("12.50")
		assert.Empty(t, Search(snapshot, Criteria{Amount: &amount}))
	})
}

func TestSearch_CombinesWithAnd(t *testing.T) {
	snapshot := sampleSnapshot()

	start := date(2024, 1, 1)
	end := date(2024, 2, 28)
	got := Search(snapshot, Criteria{
		Start:  &start,
		End:    &end,
		Vendor: strptr("nero"),
	})
	assert.Equal(t, []string{"Lunch", "Dinner"}, descriptions(got))

	amount := dec("-38.75")
	got = Search(snapshot, Criteria{
		Start:  &start,
		End:    &end,
		Vendor: strptr("nero"),
		Amount: &amount,
	})
	assert.Equal(t, []string{"Dinner"}, descriptions(got))

	// One failing criterion empties the result regardless of the rest.
	got = Search(snapshot, Criteria{
		Vendor:      strptr("nero"),
		Description: strptr("paycheck"),
	})
	assert.Empty(t, got)
}

func TestSearch_EmptyStringIsNotOmitted(t *testing.T) {
	snapshot := sampleSnapshot()

	// An explicitly empty substring matches everything; the point is that
	// it is a supplied criterion, distinct from a nil (omitted) one.
	got := Search(snapshot, Criteria{Vendor: strptr("")})
	assert.Len(t, got, len(snapshot))
}

func TestFilterPreservesOrder(t *testing.T) {
	snapshot := sampleSnapshot()
	got := Payments(snapshot)
	assert.Equal(t, []string{"Lunch", "Rent", "Dinner", "Grocery run"}, descriptions(got))
}
