package nav

import (
	"github.com/rustyeddy/optrack/form"
	"github.com/rustyeddy/optrack/journal"
	"github.com/rustyeddy/optrack/report"
)

// Screen names the kind of state the machine is in.
type Screen int

const (
	MainMenu Screen = iota
	AddEditForm
	ListTrades
	Report
)

func (s Screen) String() string {
	switch s {
	case MainMenu:
		return "menu"
	case AddEditForm:
		return "form"
	case ListTrades:
		return "list"
	case Report:
		return "report"
	}
	return "unknown"
}

// MenuItem is one entry of the main menu.
type MenuItem int

const (
	MenuAdd MenuItem = iota
	MenuList
	MenuReport
	MenuQuit
)

// MenuItems is the main menu in display order.
var MenuItems = []MenuItem{MenuAdd, MenuList, MenuReport, MenuQuit}

func (m MenuItem) Label() string {
	switch m {
	case MenuAdd:
		return "Add New Trade"
	case MenuList:
		return "View/Edit Trades"
	case MenuReport:
		return "View Reports"
	case MenuQuit:
		return "Quit"
	}
	return "?"
}

// State is one of MenuState, FormState, ListState or ReportState.
type State interface {
	Screen() Screen
}

type MenuState struct {
	Cursor int
}

// FormState is an add or edit session. Cancel returns to Return; when that
// is the list, the cursor goes back to ListSelected.
type FormState struct {
	Form         *form.Form
	Return       Screen
	ListSelected int
}

// ListState holds the trades as last fetched from the store. An empty list
// always has Selected 0.
type ListState struct {
	Trades   []journal.Trade
	Selected int
}

// Current returns the selected trade.
func (l ListState) Current() (journal.Trade, bool) {
	if len(l.Trades) == 0 {
		return journal.Trade{}, false
	}
	return l.Trades[l.Selected], true
}

type ReportState struct {
	Rows []report.SymbolReport
}

func (MenuState) Screen() Screen   { return MainMenu }
func (FormState) Screen() Screen   { return AddEditForm }
func (ListState) Screen() Screen   { return ListTrades }
func (ReportState) Screen() Screen { return Report }

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
