// Package tui runs the trade journal in the terminal. It only maps keys to
// nav events and draws nav state.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rustyeddy/optrack/nav"
)

// Model adapts a nav.Machine to bubbletea.
type Model struct {
	machine *nav.Machine
	styles  Styles
}

func NewModel(m *nav.Machine, st Styles) Model {
	return Model{machine: m, styles: st}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	for _, ev := range MapKey(key, m.machine.State().Screen()) {
		m.machine.Dispatch(ev)
	}
	if m.machine.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.machine.Done() {
		return ""
	}
	return Render(m.machine, m.styles)
}

// Run blocks until the user quits.
func Run(m *nav.Machine, st Styles, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewModel(m, st), opts...).Run()
	return err
}
