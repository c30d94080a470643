package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rustyeddy/optrack/nav"
)

// MapKey turns a physical key into logical events for the given screen.
// Printable keys are text while a form is open and shortcuts elsewhere.
func MapKey(k tea.KeyMsg, screen nav.Screen) []nav.Event {
	switch k.Type {
	case tea.KeyUp:
		return one(nav.Up{})
	case tea.KeyDown:
		return one(nav.Down{})
	case tea.KeyTab:
		return one(nav.NextField{})
	case tea.KeyShiftTab:
		return one(nav.PrevField{})
	case tea.KeyEnter:
		return one(nav.Select{})
	case tea.KeyEsc:
		return one(nav.Cancel{})
	case tea.KeyBackspace:
		if screen == nav.AddEditForm {
			return one(nav.Backspace{})
		}
		return one(nav.Cancel{})
	case tea.KeyDelete:
		if screen == nav.ListTrades {
			return one(nav.Delete{})
		}
	case tea.KeySpace:
		if screen == nav.AddEditForm {
			return one(nav.Char{Rune: ' '})
		}
	case tea.KeyRunes:
		if screen == nav.AddEditForm {
			evs := make([]nav.Event, 0, len(k.Runes))
			for _, r := range k.Runes {
				evs = append(evs, nav.Char{Rune: r})
			}
			return evs
		}
		if len(k.Runes) == 1 {
			return shortcut(k.Runes[0], screen)
		}
	}
	return nil
}

func shortcut(r rune, screen nav.Screen) []nav.Event {
	switch r {
	case 'k':
		return one(nav.Up{})
	case 'j':
		return one(nav.Down{})
	}

	switch screen {
	case nav.MainMenu:
		switch r {
		case 'a':
			return one(nav.Choose{Item: nav.MenuAdd})
		case 'l', 'v':
			return one(nav.Choose{Item: nav.MenuList})
		case 'r':
			return one(nav.Choose{Item: nav.MenuReport})
		case 'q':
			return one(nav.Choose{Item: nav.MenuQuit})
		}
	case nav.ListTrades:
		switch r {
		case 'e':
			return one(nav.Edit{})
		case 'd', 'x':
			return one(nav.Delete{})
		case 'q', 'b':
			return one(nav.Cancel{})
		}
	case nav.Report:
		switch r {
		case 'q', 'b':
			return one(nav.Cancel{})
		}
	}
	return nil
}

func one(ev nav.Event) []nav.Event { return []nav.Event{ev} }
