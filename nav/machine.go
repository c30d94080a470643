// Package nav is the application state machine: main menu, trade form, trade
// list and P/L report, driven one logical event at a time.
package nav

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rustyeddy/optrack/form"
	"github.com/rustyeddy/optrack/journal"
	"github.com/rustyeddy/optrack/report"
)

// Store is the part of the trade store the machine uses.
type Store interface {
	Create(journal.Trade) (int64, error)
	ListAll() ([]journal.Trade, error)
	Update(id int64, t journal.Trade) error
	Delete(id int64) error
}

// Notice is a one-shot message for the user. It is cleared by the next event.
type Notice struct {
	Text string
	Err  bool
}

// Machine owns the store handle and the current state. It is not safe for
// concurrent use; events are handled one at a time.
type Machine struct {
	store  Store
	log    zerolog.Logger
	state  State
	menu   MenuState
	notice Notice
	done   bool
}

// New returns a machine at the main menu.
func New(store Store, log zerolog.Logger) *Machine {
	return &Machine{
		store: store,
		log:   log.With().Str("component", "nav").Logger(),
		state: MenuState{},
	}
}

func (m *Machine) State() State   { return m.state }
func (m *Machine) Notice() Notice { return m.notice }

// Done reports whether Quit was chosen.
func (m *Machine) Done() bool { return m.done }

// TextEntry reports whether printable keys should be sent as Char events.
func (m *Machine) TextEntry() bool {
	_, ok := m.state.(FormState)
	return ok
}

// Dispatch applies one event.
func (m *Machine) Dispatch(ev Event) {
	if m.done {
		return
	}
	m.notice = Notice{}

	switch s := m.state.(type) {
	case MenuState:
		m.state = m.onMenu(s, ev)
	case FormState:
		m.state = m.onForm(s, ev)
	case ListState:
		m.state = m.onList(s, ev)
	case ReportState:
		m.state = m.onReport(s, ev)
	default:
		panic(fmt.Sprintf("nav: unknown state %T", m.state))
	}

	if ms, ok := m.state.(MenuState); ok {
		m.menu = ms
	}
}

func (m *Machine) onMenu(s MenuState, ev Event) State {
	switch ev := ev.(type) {
	case Up:
		s.Cursor = clamp(s.Cursor-1, len(MenuItems))
	case Down:
		s.Cursor = clamp(s.Cursor+1, len(MenuItems))
	case Select:
		return m.choose(s, MenuItems[s.Cursor])
	case Choose:
		return m.choose(s, ev.Item)
	}
	return s
}

func (m *Machine) choose(s MenuState, item MenuItem) State {
	for i, it := range MenuItems {
		if it == item {
			s.Cursor = i
		}
	}
	m.menu = s

	switch item {
	case MenuAdd:
		return FormState{Form: form.New(), Return: MainMenu}
	case MenuList:
		trades, err := m.store.ListAll()
		if err != nil {
			m.fail("list", 0, err)
			return s
		}
		return ListState{Trades: trades}
	case MenuReport:
		trades, err := m.store.ListAll()
		if err != nil {
			m.fail("report", 0, err)
			return s
		}
		return ReportState{Rows: report.BySymbol(trades)}
	case MenuQuit:
		m.done = true
	}
	return s
}

func (m *Machine) onForm(s FormState, ev Event) State {
	switch ev := ev.(type) {
	case NextField, Down:
		s.Form.FocusNext()
	case PrevField, Up:
		s.Form.FocusPrev()
	case Char:
		s.Form.InputChar(ev.Rune)
	case Backspace:
		s.Form.Backspace()
	case Select:
		return m.submit(s)
	case Cancel:
		return m.leaveForm(s)
	}
	return s
}

func (m *Machine) submit(s FormState) State {
	t, err := s.Form.Build()
	if err != nil {
		m.log.Debug().Err(err).Msg("trade form rejected")
		m.notice = Notice{Text: "Please fix the highlighted fields", Err: true}
		return s
	}

	if s.Form.Editing() {
		id := s.Form.EditingID()
		if err := m.store.Update(id, t); err != nil {
			m.fail("update", id, err)
			if errors.Is(err, journal.ErrNotFound) {
				return m.leaveForm(s)
			}
			return s
		}
		m.log.Info().Str("op", "update").Int64("id", id).Str("symbol", t.Symbol).Msg("trade saved")
	} else {
		id, err := m.store.Create(t)
		if err != nil {
			m.fail("create", 0, err)
			return s
		}
		m.log.Info().Str("op", "create").Int64("id", id).Str("symbol", t.Symbol).Msg("trade saved")
	}

	m.notice = Notice{Text: "Trade saved"}
	return m.menu
}

func (m *Machine) leaveForm(s FormState) State {
	if s.Return != ListTrades {
		return m.menu
	}
	trades, err := m.store.ListAll()
	if err != nil {
		m.fail("list", 0, err)
		return m.menu
	}
	return ListState{Trades: trades, Selected: clamp(s.ListSelected, len(trades))}
}

func (m *Machine) onList(s ListState, ev Event) State {
	switch ev.(type) {
	case Up:
		s.Selected = clamp(s.Selected-1, len(s.Trades))
	case Down:
		s.Selected = clamp(s.Selected+1, len(s.Trades))
	case Select, Edit:
		t, ok := s.Current()
		if !ok {
			return s
		}
		return FormState{Form: form.Load(t), Return: ListTrades, ListSelected: s.Selected}
	case Delete:
		return m.deleteSelected(s)
	case Cancel:
		return m.menu
	}
	return s
}

func (m *Machine) deleteSelected(s ListState) State {
	t, ok := s.Current()
	if !ok {
		return s
	}

	err := m.store.Delete(t.ID)
	switch {
	case err == nil:
		m.log.Info().Str("op", "delete").Int64("id", t.ID).Msg("trade deleted")
		m.notice = Notice{Text: fmt.Sprintf("Trade %d deleted", t.ID)}
	case errors.Is(err, journal.ErrNotFound):
		m.log.Warn().Str("op", "delete").Int64("id", t.ID).Msg("trade already gone")
		m.notice = Notice{Text: fmt.Sprintf("Trade %d no longer exists; list refreshed", t.ID), Err: true}
	default:
		m.fail("delete", t.ID, err)
		return s
	}

	trades, lerr := m.store.ListAll()
	if lerr != nil {
		m.fail("list", 0, lerr)
		trades = without(s.Trades, t.ID)
	}
	return ListState{Trades: trades, Selected: clamp(s.Selected, len(trades))}
}

func (m *Machine) onReport(s ReportState, ev Event) State {
	switch ev.(type) {
	case Cancel, Select:
		return m.menu
	}
	return s
}

// fail logs a store error and turns it into an error notice.
func (m *Machine) fail(op string, id int64, err error) {
	m.log.Warn().Err(err).Str("op", op).Int64("id", id).Msg("store operation failed")

	var se *journal.StorageError
	switch {
	case errors.Is(err, journal.ErrNotFound):
		m.notice = Notice{Text: fmt.Sprintf("Trade %d no longer exists", id), Err: true}
	case errors.As(err, &se):
		m.notice = Notice{Text: fmt.Sprintf("Storage error (%s): %v", op, se.Err), Err: true}
	default:
		m.notice = Notice{Text: fmt.Sprintf("Could not %s: %v", op, err), Err: true}
	}
}

func without(trades []journal.Trade, id int64) []journal.Trade {
	out := make([]journal.Trade, 0, len(trades))
	for _, t := range trades {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
