// journal/journal.go
package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk and on-screen format of a trade date.
const DateLayout = "2006-01-02"

// TradeType says whether a trade was in the underlying stock or in an option.
type TradeType int

const (
	Stock TradeType = iota
	Option
)

func (t TradeType) String() string {
	switch t {
	case Stock:
		return "stock"
	case Option:
		return "option"
	}
	return fmt.Sprintf("TradeType(%d)", int(t))
}

// ParseTradeType accepts "stock" or "option" in any case.
func ParseTradeType(s string) (TradeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock":
		return Stock, nil
	case "option":
		return Option, nil
	}
	return 0, fmt.Errorf("invalid trade type %q", s)
}

// Action is the side of a trade.
type Action int

const (
	Buy Action = iota
	Sell
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction accepts "buy" or "sell" in any case.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	}
	return 0, fmt.Errorf("invalid action %q", s)
}

// Trade is one stock or option transaction.
//
// A zero ID means the trade has not been saved yet. The store assigns IDs
// starting at 1 and never reuses them.
type Trade struct {
	ID       int64
	Symbol   string
	Type     TradeType
	Action   Action
	Price    decimal.Decimal
	Quantity int64
	Date     time.Time
	Fees     decimal.Decimal
	Comment  string
}

// Saved reports whether the trade has been persisted.
func (t Trade) Saved() bool { return t.ID != 0 }

// Day returns the trade date formatted as YYYY-MM-DD.
func (t Trade) Day() string { return t.Date.Format(DateLayout) }

// NormalizeSymbol trims and upper-cases a ticker.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Validate checks the invariants every stored trade must hold.
func (t Trade) Validate() error {
	if NormalizeSymbol(t.Symbol) == "" {
		return errors.New("symbol is required")
	}
	if t.Type != Stock && t.Type != Option {
		return fmt.Errorf("invalid trade type %d", int(t.Type))
	}
	if t.Action != Buy && t.Action != Sell {
		return fmt.Errorf("invalid action %d", int(t.Action))
	}
	if t.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if t.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if t.Fees.IsNegative() {
		return errors.New("fees must not be negative")
	}
	if t.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}

var (
	// ErrNotFound is returned when an operation names a trade ID that does not exist.
	ErrNotFound = errors.New("trade not found")

	// ErrAlreadySaved is returned by Create when the trade already carries an ID.
	ErrAlreadySaved = errors.New("trade already has an id")
)

// StorageError wraps a failure of the underlying data file.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store is the durable record of trades.
type Store interface {
	Create(Trade) (int64, error)
	ListAll() ([]Trade, error)
	Update(id int64, t Trade) error
	Delete(id int64) error
	Close() error
}
