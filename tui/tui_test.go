package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/optrack/journal"
	"github.com/rustyeddy/optrack/nav"
	"github.com/rustyeddy/optrack/report"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		key    tea.KeyMsg
		screen nav.Screen
		want   []nav.Event
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, nav.ListTrades, []nav.Event{nav.Up{}}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, nav.AddEditForm, []nav.Event{nav.Select{}}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, nav.Report, []nav.Event{nav.Cancel{}}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, nav.AddEditForm, []nav.Event{nav.NextField{}}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, nav.AddEditForm, []nav.Event{nav.PrevField{}}},
		{"menu add", runes("a"), nav.MainMenu, []nav.Event{nav.Choose{Item: nav.MenuAdd}}},
		{"menu quit", runes("q"), nav.MainMenu, []nav.Event{nav.Choose{Item: nav.MenuQuit}}},
		{"list delete", runes("d"), nav.ListTrades, []nav.Event{nav.Delete{}}},
		{"list edit", runes("e"), nav.ListTrades, []nav.Event{nav.Edit{}}},
		{"delete key", tea.KeyMsg{Type: tea.KeyDelete}, nav.ListTrades, []nav.Event{nav.Delete{}}},
		{"form text", runes("de"), nav.AddEditForm, []nav.Event{nav.Char{Rune: 'd'}, nav.Char{Rune: 'e'}}},
		{"form space", tea.KeyMsg{Type: tea.KeySpace}, nav.AddEditForm, []nav.Event{nav.Char{Rune: ' '}}},
		{"form backspace", tea.KeyMsg{Type: tea.KeyBackspace}, nav.AddEditForm, []nav.Event{nav.Backspace{}}},
		{"report ignores d", runes("d"), nav.Report, nil},
		{"menu ignores delete", tea.KeyMsg{Type: tea.KeyDelete}, nav.MainMenu, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapKey(tt.key, tt.screen), tt.name)
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRenderReport(t *testing.T) {
	t.Parallel()

	rows := []report.SymbolReport{
		{Symbol: "AAPL", TotalPL: d("990"), TradeCount: 2},
		{Symbol: "TSLA", TotalPL: d("-176.5"), TradeCount: 1},
	}

	out := RenderReport(rows, NewStyles(true))
	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "+$990.00")
	assert.Contains(t, out, "-$176.50")
	assert.Contains(t, out, "+$813.50")
	assert.Less(t, strings.Index(out, "AAPL"), strings.Index(out, "TSLA"))

	assert.Contains(t, RenderReport(nil, NewStyles(true)), "No trades found")
}

func TestRenderTrades(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{{
		ID:       1,
		Symbol:   "SPY",
		Type:     journal.Option,
		Action:   journal.Sell,
		Price:    d("1.5"),
		Quantity: 2,
		Date:     time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		Fees:     d("1.30"),
		Comment:  "put spread",
	}}

	out := RenderTrades(trades, -1, NewStyles(true))
	for _, want := range []string{"Date", "2024-05-03", "SPY", "option", "sell", "$1.50", "$1.30", "put spread"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, RenderTrades(nil, 0, NewStyles(true)), "No trades found")
}

func TestModelDrivesMachine(t *testing.T) {
	t.Parallel()

	j, err := journal.NewSQLite(filepath.Join(t.TempDir(), "tui.db"))
	require.NoError(t, err)
	defer j.Close()

	m := nav.New(j, zerolog.Nop())
	var model tea.Model = NewModel(m, NewStyles(true))
	assert.Contains(t, model.View(), "Stock Options Tracker")

	send := func(msg tea.Msg) tea.Cmd {
		var cmd tea.Cmd
		model, cmd = model.Update(msg)
		return cmd
	}

	send(runes("a"))
	assert.Contains(t, model.View(), "Add New Trade")

	for i, v := range []string{"msft", "stock", "buy", "400", "3", "2024-06-01", "1", "long"} {
		if i > 0 {
			send(tea.KeyMsg{Type: tea.KeyTab})
		}
		send(runes(v))
	}
	send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, model.View(), "Trade saved")

	send(runes("l"))
	assert.Contains(t, model.View(), "MSFT")

	send(tea.KeyMsg{Type: tea.KeyEsc})
	send(runes("r"))
	assert.Contains(t, model.View(), "-$1201.00")

	send(tea.KeyMsg{Type: tea.KeyEsc})
	cmd := send(runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.Done())
}

func TestModelCtrlCQuits(t *testing.T) {
	t.Parallel()

	m := nav.New(nil, zerolog.Nop())
	model := NewModel(m, NewStyles(true))
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}
