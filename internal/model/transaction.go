package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the layout for the date field of a stored transaction.
const DateFormat = "2006-01-02"

// TimeFormat is the layout for the time-of-day field of a stored transaction.
const TimeFormat = "15:04:05"

// Transaction is one immutable ledger entry. The sign of Amount carries
// the transaction kind: positive is a deposit, negative is a payment.
// A zero amount is never valid and is rejected before persistence.
type Transaction struct {
	Date        time.Time // calendar day at midnight UTC
	Time        time.Time // clock time on the zero date
	Description string
	Vendor      string
	Amount      decimal.Decimal
}

// NewDate returns the calendar day at midnight UTC, the canonical form
// of the Date field.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ClockTime returns a time of day on the zero date, the canonical form
// of the Time field. It matches what time.Parse produces for TimeFormat.
func ClockTime(hour, min, sec int) time.Time {
	return time.Date(0, time.January, 1, hour, min, sec, 0, time.UTC)
}

// IsDeposit reports whether the transaction is a deposit.
func (t Transaction) IsDeposit() bool { return t.Amount.IsPositive() }

// IsPayment reports whether the transaction is a payment.
func (t Transaction) IsPayment() bool { return t.Amount.IsNegative() }

// Equal reports whether two transactions have the same field values.
// Amounts compare by decimal value, so 42.5 equals 42.50.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date.Equal(o.Date) &&
		t.Time.Equal(o.Time) &&
		t.Description == o.Description &&
		t.Vendor == o.Vendor &&
		t.Amount.Equal(o.Amount)
}
