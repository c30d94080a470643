package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

const tradeColumns = `id, symbol, trade_type, action, price, quantity, date, fees, comment`

// SQLite is a Store backed by a single SQLite data file.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// NewSQLite opens (creating if absent) the data file at path and makes sure
// the schema exists.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	// One writer, one connection: every Exec is committed before it returns.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, &StorageError{Op: "init schema", Err: err}
	}

	return &SQLite{db: db}, nil
}

// Create inserts an unsaved trade and returns its new ID.
func (j *SQLite) Create(t Trade) (int64, error) {
	if t.Saved() {
		return 0, ErrAlreadySaved
	}
	if err := t.Validate(); err != nil {
		return 0, fmt.Errorf("create trade: %w", err)
	}

	res, err := j.db.Exec(`
		INSERT INTO trades
		(symbol, trade_type, action, price, quantity, date, fees, comment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		NormalizeSymbol(t.Symbol), encodeTradeType(t.Type), encodeAction(t.Action),
		t.Price.String(), t.Quantity, t.Day(), t.Fees.String(), t.Comment,
	)
	if err != nil {
		return 0, &StorageError{Op: "create", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "create", Err: err}
	}
	return id, nil
}

// Get returns a single trade by ID.
func (j *SQLite) Get(id int64) (Trade, error) {
	row := j.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)

	t, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trade{}, fmt.Errorf("trade %d: %w", id, ErrNotFound)
		}
		return Trade{}, &StorageError{Op: "get", Err: err}
	}
	return t, nil
}

// ListAll returns every trade, most recent date first and, within a day,
// the most recently created first.
func (j *SQLite) ListAll() ([]Trade, error) {
	rows, err := j.db.Query(`
		SELECT ` + tradeColumns + `
		FROM trades
		ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	defer rows.Close()

	out := []Trade{}
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, &StorageError{Op: "list", Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return out, nil
}

// Update replaces every field of the trade with the given ID. The ID carried
// by t is ignored.
func (j *SQLite) Update(id int64, t Trade) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("update trade %d: %w", id, err)
	}

	res, err := j.db.Exec(`
		UPDATE trades
		SET symbol = ?, trade_type = ?, action = ?, price = ?,
		    quantity = ?, date = ?, fees = ?, comment = ?
		WHERE id = ?`,
		NormalizeSymbol(t.Symbol), encodeTradeType(t.Type), encodeAction(t.Action),
		t.Price.String(), t.Quantity, t.Day(), t.Fees.String(), t.Comment,
		id,
	)
	if err != nil {
		return &StorageError{Op: "update", Err: err}
	}
	return expectOneRow(res, "update", id)
}

// Delete removes the trade with the given ID. Deleting a missing trade fails
// with ErrNotFound.
func (j *SQLite) Delete(id int64) error {
	res, err := j.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return expectOneRow(res, "delete", id)
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func expectOneRow(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return &StorageError{Op: op, Err: err}
	}
	if n == 0 {
		return fmt.Errorf("%s trade %d: %w", op, id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(s scanner) (Trade, error) {
	var (
		t                Trade
		typ, act         string
		price, fees, day string
	)
	if err := s.Scan(&t.ID, &t.Symbol, &typ, &act, &price, &t.Quantity, &day, &fees, &t.Comment); err != nil {
		return Trade{}, err
	}

	var err error
	if t.Type, err = decodeTradeType(typ); err != nil {
		return Trade{}, err
	}
	if t.Action, err = decodeAction(act); err != nil {
		return Trade{}, err
	}
	if t.Price, err = decimal.NewFromString(price); err != nil {
		return Trade{}, fmt.Errorf("trade %d price: %w", t.ID, err)
	}
	if t.Fees, err = decimal.NewFromString(fees); err != nil {
		return Trade{}, fmt.Errorf("trade %d fees: %w", t.ID, err)
	}
	if t.Date, err = time.Parse(DateLayout, day); err != nil {
		return Trade{}, fmt.Errorf("trade %d date: %w", t.ID, err)
	}
	return t, nil
}

func encodeTradeType(t TradeType) string {
	switch t {
	case Stock:
		return "stock"
	case Option:
		return "option"
	}
	panic(fmt.Sprintf("journal: unknown trade type %d", int(t)))
}

func decodeTradeType(s string) (TradeType, error) {
	switch s {
	case "stock":
		return Stock, nil
	case "option":
		return Option, nil
	}
	return 0, fmt.Errorf("invalid trade_type %q", s)
}

func encodeAction(a Action) string {
	switch a {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	}
	panic(fmt.Sprintf("journal: unknown action %d", int(a)))
}

func decodeAction(s string) (Action, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	}
	return 0, fmt.Errorf("invalid action %q", s)
}
