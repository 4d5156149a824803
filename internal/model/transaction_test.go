package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestSignPredicates(t *testing.T) {
	deposit := Transaction{Amount: dec("10.00")}
	assert.True(t, deposit.IsDeposit())
	assert.False(t, deposit.IsPayment())

	payment := Transaction{Amount: dec("-10.00")}
	assert.False(t, payment.IsDeposit())
	assert.True(t, payment.IsPayment())

	zero := Transaction{}
	assert.False(t, zero.IsDeposit())
	assert.False(t, zero.IsPayment())
}

func TestEqual_ComparesDecimalValues(t *testing.T) {
	a := Transaction{
		Date:        NewDate(2024, time.January, 5),
		Time:        ClockTime(9, 0, 0),
		Description: "Paycheck",
		Vendor:      "ACME Corp",
		Amount:      dec("1000.00"),
	}
	b := a
	b.Amount = dec("1000")
	assert.True(t, a.Equal(b), "1000 and 1000.00 are the same amount")

	b.Vendor = "Other"
	assert.False(t, a.Equal(b))
}

func TestClockTime_MatchesTimeParse(t *testing.T) {
	parsed, err := time.Parse(TimeFormat, "14:30:05")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ClockTime(14, 30, 5)))
}

func TestNewDate_Normalizes(t *testing.T) {
	d := NewDate(2024, time.March, 15)
	assert.Equal(t, "2024-03-15", d.Format(DateFormat))
	assert.Equal(t, time.UTC, d.Location())
}
