// Package report computes realized cash-flow P/L per symbol.
//
// P/L here is a running cash-flow total: every buy costs price*quantity plus
// fees and every sell returns price*quantity less fees. No lot matching is
// done, and stock and option trades are combined.
package report

import (
	"fmt"
	"sort"

	"github.com/rustyeddy/optrack/journal"
	"github.com/shopspring/decimal"
)

// SymbolReport summarises all trades in one symbol.
type SymbolReport struct {
	Symbol     string
	TotalPL    decimal.Decimal
	TradeCount int
}

// Contribution returns the signed cash flow of a single trade.
func Contribution(t journal.Trade) decimal.Decimal {
	gross := t.Price.Mul(decimal.NewFromInt(t.Quantity))
	switch t.Action {
	case journal.Buy:
		return gross.Neg().Sub(t.Fees)
	case journal.Sell:
		return gross.Sub(t.Fees)
	}
	panic(fmt.Sprintf("report: unknown action %d", int(t.Action)))
}

// Aggregate groups trades by normalized symbol.
func Aggregate(trades []journal.Trade) map[string]SymbolReport {
	out := make(map[string]SymbolReport)
	for _, t := range trades {
		sym := journal.NormalizeSymbol(t.Symbol)
		r, ok := out[sym]
		if !ok {
			r = SymbolReport{Symbol: sym, TotalPL: decimal.Zero}
		}
		r.TotalPL = r.TotalPL.Add(Contribution(t))
		r.TradeCount++
		out[sym] = r
	}
	return out
}

// Sorted returns the reports ordered by symbol.
func Sorted(m map[string]SymbolReport) []SymbolReport {
	out := make([]SymbolReport, 0, len(m))
	for _, r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// BySymbol is Aggregate followed by Sorted.
func BySymbol(trades []journal.Trade) []SymbolReport {
	return Sorted(Aggregate(trades))
}

// Total sums P/L and trade counts over every symbol.
func Total(rows []SymbolReport) (decimal.Decimal, int) {
	pl := decimal.Zero
	n := 0
	for _, r := range rows {
		pl = pl.Add(r.TotalPL)
		n += r.TradeCount
	}
	return pl, n
}
