package form

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/optrack/journal"
	"github.com/shopspring/decimal"
)

// Field identifies one input slot of the trade form.
type Field int

const (
	Symbol Field = iota
	Type
	Action
	Price
	Quantity
	Date
	Fees
	Comment

	NumFields int = iota
)

// Fields lists every slot in focus order.
var Fields = [NumFields]Field{Symbol, Type, Action, Price, Quantity, Date, Fees, Comment}

type descriptor struct {
	name   string
	label  string
	parse  func(raw string, t *journal.Trade) error
	format func(t journal.Trade) string
}

var descriptors = [NumFields]descriptor{
	Symbol: {
		name:  "symbol",
		label: "Symbol",
		parse: func(raw string, t *journal.Trade) error {
			t.Symbol = journal.NormalizeSymbol(raw)
			if t.Symbol == "" {
				return errors.New("symbol is required")
			}
			return nil
		},
		format: func(t journal.Trade) string { return t.Symbol },
	},
	Type: {
		name:  "type",
		label: "Type (stock/option)",
		parse: func(raw string, t *journal.Trade) (err error) {
			if t.Type, err = journal.ParseTradeType(raw); err != nil {
				return errors.New("type must be 'stock' or 'option'")
			}
			return nil
		},
		format: func(t journal.Trade) string { return t.Type.String() },
	},
	Action: {
		name:  "action",
		label: "Action (buy/sell)",
		parse: func(raw string, t *journal.Trade) (err error) {
			if t.Action, err = journal.ParseAction(raw); err != nil {
				return errors.New("action must be 'buy' or 'sell'")
			}
			return nil
		},
		format: func(t journal.Trade) string { return t.Action.String() },
	},
	Price: {
		name:  "price",
		label: "Price",
		parse: func(raw string, t *journal.Trade) (err error) {
			t.Price, err = parseAmount(raw, "price")
			return err
		},
		format: func(t journal.Trade) string { return t.Price.String() },
	},
	Quantity: {
		name:  "quantity",
		label: "Quantity",
		parse: func(raw string, t *journal.Trade) error {
			q, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil || q <= 0 {
				return errors.New("quantity must be a positive whole number")
			}
			t.Quantity = q
			return nil
		},
		format: func(t journal.Trade) string { return strconv.FormatInt(t.Quantity, 10) },
	},
	Date: {
		name:  "date",
		label: "Date (YYYY-MM-DD)",
		parse: func(raw string, t *journal.Trade) error {
			d, err := time.Parse(journal.DateLayout, strings.TrimSpace(raw))
			if err != nil || d.Year() < minYear {
				return errors.New("date must be a real day as YYYY-MM-DD")
			}
			t.Date = d
			return nil
		},
		format: func(t journal.Trade) string { return t.Day() },
	},
	Fees: {
		name:  "fees",
		label: "Fees",
		parse: func(raw string, t *journal.Trade) (err error) {
			t.Fees, err = parseAmount(raw, "fees")
			return err
		},
		format: func(t journal.Trade) string { return t.Fees.String() },
	},
	Comment: {
		name:  "comment",
		label: "Comment",
		parse: func(raw string, t *journal.Trade) error {
			t.Comment = raw
			return nil
		},
		format: func(t journal.Trade) string { return t.Comment },
	},
}

// minYear keeps dates clear of the zero time.Time, which marks a missing date.
const minYear = 1000

// amountPattern is plain positional notation. Exponent forms such as
// 1e900000000 are refused.
var amountPattern = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

func parseAmount(raw, what string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if !amountPattern.MatchString(raw) {
		return decimal.Zero, errors.New(what + " must be a non-negative number")
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.New(what + " must be a non-negative number")
	}
	return v, nil
}

// Name is the lower-case identifier of the field.
func (f Field) Name() string { return descriptors[f].name }

// Label is the caption shown next to the field.
func (f Field) Label() string { return descriptors[f].label }

func (f Field) String() string { return f.Name() }
