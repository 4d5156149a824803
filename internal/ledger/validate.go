package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tally-dev/tally/internal/model"
)

// ErrInvalidTransaction marks caller-supplied input that violates the
// ledger's storage rules. Nothing is written when validation fails.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Validate checks a transaction before it may be appended: the amount
// must be nonzero with at most two decimal places, and the text fields
// must not contain the field delimiter (the format has no escaping).
func Validate(tx model.Transaction) error {
	if tx.Amount.IsZero() {
		return fmt.Errorf("%w: amount must not be zero", ErrInvalidTransaction)
	}
	if !tx.Amount.Equal(tx.Amount.Truncate(2)) {
		return fmt.Errorf("%w: amount %s has more than 2 decimal places", ErrInvalidTransaction, tx.Amount)
	}
	if strings.Contains(tx.Description, Delimiter) {
		return fmt.Errorf("%w: description must not contain %q", ErrInvalidTransaction, Delimiter)
	}
	if strings.Contains(tx.Vendor, Delimiter) {
		return fmt.Errorf("%w: vendor must not contain %q", ErrInvalidTransaction, Delimiter)
	}
	return nil
}
