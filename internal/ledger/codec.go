package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Delimiter separates the five fields of a stored transaction line.
// The format has no escaping, so Validate rejects text fields that
// contain it before anything reaches the file.
const Delimiter = "|"

const (
	numFields = 5
	colDate   = 0
	colTime   = 1
	colDesc   = 2
	colVendor = 3
	colAmount = 4
)

// ErrMalformedRecord marks a line with the right field count whose date,
// time, or amount does not parse. Unlike a wrong field count, which
// readers skip as noise, this indicates a corrupted ledger file.
var ErrMalformedRecord = errors.New("malformed transaction record")

// MarshalTransaction converts a Transaction to its stored line, without
// a trailing newline.
func MarshalTransaction(tx model.Transaction) string {
	fields := make([]string, numFields)
	fields[colDate] = tx.Date.Format(model.DateFormat)
	fields[colTime] = tx.Time.Format(model.TimeFormat)
	fields[colDesc] = tx.Description
	fields[colVendor] = tx.Vendor
	fields[colAmount] = tx.Amount.StringFixed(2)
	return strings.Join(fields, Delimiter)
}

// SplitLine splits a stored line on the delimiter and reports whether it
// has the expected field count.
func SplitLine(line string) ([]string, bool) {
	fields := strings.Split(line, Delimiter)
	return fields, len(fields) == numFields
}

// UnmarshalTransaction converts the fields of a stored line into a
// Transaction. Any parse failure wraps ErrMalformedRecord.
func UnmarshalTransaction(fields []string) (model.Transaction, error) {
	if len(fields) != numFields {
		return model.Transaction{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, numFields, len(fields))
	}

	date, err := time.Parse(model.DateFormat, fields[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: parsing date %q: %v", ErrMalformedRecord, fields[colDate], err)
	}

	clock, err := time.Parse(model.TimeFormat, fields[colTime])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: parsing time %q: %v", ErrMalformedRecord, fields[colTime], err)
	}

	amount, err := decimal.NewFromString(fields[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: parsing amount %q: %v", ErrMalformedRecord, fields[colAmount], err)
	}

	return model.Transaction{
		Date:        date,
		Time:        clock,
		Description: fields[colDesc],
		Vendor:      fields[colVendor],
		Amount:      amount,
	}, nil
}
