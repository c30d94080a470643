package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rustyeddy/optrack/journal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func trade(sym string, typ journal.TradeType, act journal.Action, price string, qty int64, fees string) journal.Trade {
	return journal.Trade{
		Symbol:   sym,
		Type:     typ,
		Action:   act,
		Price:    d(price),
		Quantity: qty,
		Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Fees:     d(fees),
	}
}

func TestContribution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tr   journal.Trade
		want string
	}{
		{"buy", trade("AAPL", journal.Stock, journal.Buy, "150.00", 100, "5.00"), "-15005"},
		{"sell", trade("AAPL", journal.Stock, journal.Sell, "160.00", 100, "5.00"), "15995"},
		{"free buy", trade("X", journal.Option, journal.Buy, "0", 1, "0"), "0"},
		{"sell below fees", trade("X", journal.Option, journal.Sell, "0.01", 1, "0.65"), "-0.64"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Contribution(tt.tr)
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestAggregateRoundTrip(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		trade("AAPL", journal.Stock, journal.Buy, "150.00", 100, "5.00"),
		trade("AAPL", journal.Stock, journal.Sell, "160.00", 100, "5.00"),
	}

	got := Aggregate(trades)
	require.Len(t, got, 1)

	r := got["AAPL"]
	assert.Equal(t, "AAPL", r.Symbol)
	assert.True(t, d("990.00").Equal(r.TotalPL), "got %s", r.TotalPL)
	assert.Equal(t, 2, r.TradeCount)
}

func TestAggregateMixesStockAndOption(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		trade("tsla", journal.Option, journal.Sell, "2.50", 10, "1.00"),
		trade("TSLA", journal.Stock, journal.Buy, "200", 1, "0"),
	}

	got := Aggregate(trades)
	require.Len(t, got, 1)
	assert.True(t, d("-176").Equal(got["TSLA"].TotalPL), "got %s", got["TSLA"].TotalPL)
	assert.Equal(t, 2, got["TSLA"].TradeCount)
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Aggregate(nil))
	assert.Empty(t, BySymbol(nil))
}

func TestAggregateOrderInvariant(t *testing.T) {
	t.Parallel()

	syms := []string{"AAPL", "MSFT", "TSLA", "SPY"}
	prices := []string{"0.05", "1.10", "150.25", "432.17", "3"}
	rng := rand.New(rand.NewSource(42))

	var trades []journal.Trade
	for i := 0; i < 200; i++ {
		act := journal.Buy
		if rng.Intn(2) == 1 {
			act = journal.Sell
		}
		trades = append(trades, trade(
			syms[rng.Intn(len(syms))],
			journal.TradeType(rng.Intn(2)),
			act,
			prices[rng.Intn(len(prices))],
			int64(rng.Intn(500)+1),
			prices[rng.Intn(2)],
		))
	}

	// Independent sum per symbol.
	want := map[string]decimal.Decimal{}
	counts := map[string]int{}
	for _, tr := range trades {
		sign := decimal.NewFromInt(1)
		if tr.Action == journal.Buy {
			sign = decimal.NewFromInt(-1)
		}
		c := tr.Price.Mul(decimal.NewFromInt(tr.Quantity)).Mul(sign).Sub(tr.Fees)
		want[tr.Symbol] = want[tr.Symbol].Add(c)
		counts[tr.Symbol]++
	}

	base := Aggregate(trades)
	for sym, w := range want {
		assert.True(t, w.Equal(base[sym].TotalPL), "%s: want %s got %s", sym, w, base[sym].TotalPL)
		assert.Equal(t, counts[sym], base[sym].TradeCount)
	}

	for i := 0; i < 5; i++ {
		shuffled := append([]journal.Trade(nil), trades...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Aggregate(shuffled)
		require.Len(t, got, len(base))
		for sym, r := range base {
			assert.True(t, r.TotalPL.Equal(got[sym].TotalPL), sym)
			assert.Equal(t, r.TradeCount, got[sym].TradeCount, sym)
		}
	}
}

func TestBySymbolSorted(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		trade("TSLA", journal.Stock, journal.Buy, "1", 1, "0"),
		trade("AAPL", journal.Stock, journal.Buy, "1", 1, "0"),
		trade("MSFT", journal.Stock, journal.Sell, "1", 1, "0"),
	}

	rows := BySymbol(trades)
	require.Len(t, rows, 3)
	assert.Equal(t, "AAPL", rows[0].Symbol)
	assert.Equal(t, "MSFT", rows[1].Symbol)
	assert.Equal(t, "TSLA", rows[2].Symbol)
}

func TestTotal(t *testing.T) {
	t.Parallel()

	rows := []SymbolReport{
		{Symbol: "AAPL", TotalPL: d("990"), TradeCount: 2},
		{Symbol: "TSLA", TotalPL: d("-176.50"), TradeCount: 3},
	}

	pl, n := Total(rows)
	assert.True(t, d("813.5").Equal(pl), "got %s", pl)
	assert.Equal(t, 5, n)

	pl, n = Total(nil)
	assert.True(t, pl.IsZero())
	assert.Equal(t, 0, n)
}
