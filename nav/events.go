package nav

// Event is a logical input. Mapping physical keys to events is the job of
// the terminal front end.
type Event interface {
	event()
}

type (
	// Up moves the menu or list cursor up, or focuses the previous form field.
	Up struct{}
	// Down moves the menu or list cursor down, or focuses the next form field.
	Down struct{}
	NextField struct{}
	PrevField struct{}
	// Select confirms: picks a menu item, edits the selected trade, or
	// submits the form.
	Select struct{}
	// Cancel goes back one screen.
	Cancel struct{}
	Edit   struct{}
	Delete struct{}
	// Char is typed text for the focused form field.
	Char struct {
		Rune rune
	}
	Backspace struct{}
	// Choose picks a menu item directly.
	Choose struct {
		Item MenuItem
	}
)

func (Up) event()        {}
func (Down) event()      {}
func (NextField) event() {}
func (PrevField) event() {}
func (Select) event()    {}
func (Cancel) event()    {}
func (Edit) event()      {}
func (Delete) event()    {}
func (Char) event()      {}
func (Backspace) event() {}
func (Choose) event()    {}
