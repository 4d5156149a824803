package ledger

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Store owns the in-memory transaction sequence and its durable file.
// Records are kept in file order and the file only ever grows by append;
// there is no update or delete. The store is not safe for concurrent use.
type Store struct {
	path string
	txs  []model.Transaction
}

// NewStore creates an empty Store bound to a ledger file path. Call Load
// before use.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the ledger file path.
func (s *Store) Path() string { return s.path }

// Len returns the number of records currently in memory.
func (s *Store) Len() int { return len(s.txs) }

// Load reads the ledger file into memory and returns the number of
// records loaded. A missing file is created empty and is not an error.
// Blank lines and lines with the wrong field count are skipped as noise.
// A line with the right field count but an unparsable date, time, or
// amount stops the load: records before it stay loaded, and the error
// wraps ErrMalformedRecord so callers can tell corruption apart from a
// storage failure.
func (s *Store) Load() (int, error) {
	f, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return 0, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	s.txs = nil
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, ok := SplitLine(line)
		if !ok {
			continue
		}
		tx, err := UnmarshalTransaction(fields)
		if err != nil {
			return len(s.txs), fmt.Errorf("ledger %s line %d: %w", s.path, lineNo, err)
		}
		s.txs = append(s.txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return len(s.txs), fmt.Errorf("reading ledger %s: %w", s.path, err)
	}
	return len(s.txs), nil
}

// Append validates tx, writes its encoded line to the end of the ledger
// file, and only then adds it to the in-memory sequence. Writing first
// means a storage failure leaves memory untouched, so the two never
// silently diverge.
func (s *Store) Append(tx model.Transaction) error {
	if err := Validate(tx); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, MarshalTransaction(tx)); err != nil {
		return fmt.Errorf("appending to ledger %s: %w", s.path, err)
	}

	s.txs = append(s.txs, tx)
	return nil
}

// AddDeposit records a deposit. amount is the positive magnitude entered
// by the user; anything else wraps ErrInvalidTransaction.
func (s *Store) AddDeposit(date, clock time.Time, description, vendor string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit amount must be positive, got %s", ErrInvalidTransaction, amount)
	}
	return s.Append(model.Transaction{
		Date:        date,
		Time:        clock,
		Description: description,
		Vendor:      vendor,
		Amount:      amount,
	})
}

// AddPayment records a payment as the negation of a positive magnitude.
func (s *Store) AddPayment(date, clock time.Time, description, vendor string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive, got %s", ErrInvalidTransaction, amount)
	}
	return s.Append(model.Transaction{
		Date:        date,
		Time:        clock,
		Description: description,
		Vendor:      vendor,
		Amount:      amount.Neg(),
	})
}

// Snapshot returns a copy of the record sequence in file order,
// reflecting every completed Append. Callers may filter it freely
// without affecting the store.
func (s *Store) Snapshot() []model.Transaction {
	out := make([]model.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}
