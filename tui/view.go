package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/optrack/form"
	"github.com/rustyeddy/optrack/journal"
	"github.com/rustyeddy/optrack/nav"
	"github.com/rustyeddy/optrack/report"
)

// Styles used by every view.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Label    lipgloss.Style
	Focus    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Gain     lipgloss.Style
	Loss     lipgloss.Style
}

// NewStyles returns the colour theme, or plain text when noColor is set.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{
			Title: plain, Header: plain, Selected: plain.Reverse(true), Dim: plain, Label: plain,
			Focus: plain, Error: plain, Success: plain, Gain: plain, Loss: plain,
		}
	}
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Selected: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("236")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focus:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Gain:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Loss:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Render draws the machine's current state.
func Render(m *nav.Machine, st Styles) string {
	var b strings.Builder

	switch s := m.State().(type) {
	case nav.MenuState:
		b.WriteString(RenderMenu(s.Cursor, st))
	case nav.FormState:
		b.WriteString(RenderForm(s.Form, st))
	case nav.ListState:
		b.WriteString(st.Title.Render("View/Edit Trades"))
		b.WriteString("\n\n")
		b.WriteString(RenderTrades(s.Trades, s.Selected, st))
		b.WriteString("\n")
		b.WriteString(st.Dim.Render("↑/↓ move • enter/e edit • d delete • esc back"))
	case nav.ReportState:
		b.WriteString(st.Title.Render("Profit/Loss Report by Symbol"))
		b.WriteString("\n\n")
		b.WriteString(RenderReport(s.Rows, st))
		b.WriteString("\n")
		b.WriteString(st.Dim.Render("esc back"))
	}

	if n := m.Notice(); n.Text != "" {
		b.WriteString("\n\n")
		if n.Err {
			b.WriteString(st.Error.Render(n.Text))
		} else {
			b.WriteString(st.Success.Render(n.Text))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderMenu draws the main menu with the cursor on item cursor.
func RenderMenu(cursor int, st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Stock Options Tracker"))
	b.WriteString("\n\n")
	for i, item := range nav.MenuItems {
		line := "  " + item.Label()
		if i == cursor {
			line = st.Selected.Render("> " + item.Label())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.Dim.Render("↑/↓ move • enter select • a/l/r/q shortcuts"))
	return b.String()
}

// RenderForm draws every field with its label, raw value and error.
func RenderForm(f *form.Form, st Styles) string {
	var b strings.Builder

	title := "Add New Trade"
	if f.Editing() {
		title = fmt.Sprintf("Edit Trade %d", f.EditingID())
	}
	b.WriteString(st.Title.Render(title))
	b.WriteString("\n\n")

	for _, fl := range form.Fields {
		label := fmt.Sprintf("%-20s", fl.Label()+":")
		value := f.Value(fl)
		if fl == f.Focus() {
			b.WriteString(st.Focus.Render("> " + label))
			b.WriteString(" ")
			b.WriteString(st.Focus.Render(value + "_"))
		} else {
			b.WriteString(st.Label.Render("  " + label))
			b.WriteString(" ")
			b.WriteString(value)
		}
		if msg := f.Err(fl); msg != "" {
			b.WriteString("  ")
			b.WriteString(st.Error.Render(msg))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(st.Dim.Render("tab/↓ next • shift+tab/↑ prev • enter save • esc cancel"))
	return b.String()
}

const tradeRowFormat = "%-10s  %-8s  %-6s  %-4s  %12s  %8s  %8s  %s"

// RenderTrades draws the trade table. A negative selected disables the
// highlight.
func RenderTrades(trades []journal.Trade, selected int, st Styles) string {
	if len(trades) == 0 {
		return st.Dim.Render("No trades found") + "\n"
	}

	var b strings.Builder
	b.WriteString(st.Header.Render(fmt.Sprintf(tradeRowFormat,
		"Date", "Symbol", "Type", "Side", "Price", "Qty", "Fees", "Comment")))
	b.WriteString("\n")

	for i, t := range trades {
		line := fmt.Sprintf(tradeRowFormat,
			t.Day(), t.Symbol, t.Type, t.Action,
			money(t.Price), fmt.Sprint(t.Quantity), money(t.Fees), t.Comment)
		if i == selected {
			line = st.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

const reportRowFormat = "%-12s  %14s  %6s"

// RenderReport draws per-symbol P/L with gains and losses styled apart, and
// a total line.
func RenderReport(rows []report.SymbolReport, st Styles) string {
	if len(rows) == 0 {
		return st.Dim.Render("No trades found") + "\n"
	}

	var b strings.Builder
	b.WriteString(st.Header.Render(fmt.Sprintf(reportRowFormat, "Symbol", "Profit/Loss", "Trades")))
	b.WriteString("\n")
	b.WriteString(st.Header.Render(strings.Repeat("=", 36)))
	b.WriteString("\n")

	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-12s  ", r.Symbol))
		b.WriteString(signed(r.TotalPL, st))
		b.WriteString(fmt.Sprintf("  %6d\n", r.TradeCount))
	}

	pl, n := report.Total(rows)
	b.WriteString(st.Header.Render(strings.Repeat("-", 36)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-12s  ", "TOTAL"))
	b.WriteString(signed(pl, st))
	b.WriteString(fmt.Sprintf("  %6d\n", n))
	return b.String()
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// signed formats a P/L amount with an explicit sign, coloured by direction.
func signed(d decimal.Decimal, st Styles) string {
	var s string
	switch {
	case d.IsPositive():
		s = fmt.Sprintf("%14s", "+$"+d.StringFixed(2))
		return st.Gain.Render(s)
	case d.IsNegative():
		s = fmt.Sprintf("%14s", "-$"+d.Abs().StringFixed(2))
		return st.Loss.Render(s)
	}
	return fmt.Sprintf("%14s", "$0.00")
}
