// Package form holds the in-progress state of a trade being added or edited.
//
// A Form never talks to the store. It turns raw text buffers into a validated
// journal.Trade, or into a set of per-field errors.
package form

import (
	"strings"
	"unicode/utf8"

	"github.com/rustyeddy/optrack/journal"
)

// FieldErrors maps each invalid field to a message.
type FieldErrors map[Field]string

func (fe FieldErrors) Error() string {
	var parts []string
	for _, f := range Fields {
		if msg, ok := fe[f]; ok {
			parts = append(parts, f.Name()+": "+msg)
		}
	}
	return "invalid trade: " + strings.Join(parts, "; ")
}

// Form is one add or edit session.
type Form struct {
	values    [NumFields]string
	errs      [NumFields]string
	focus     Field
	editingID int64
}

// New returns an empty form for creating a trade.
func New() *Form {
	return &Form{}
}

// Load returns a form prefilled from a saved trade. Submitting it overwrites
// that trade.
func Load(t journal.Trade) *Form {
	f := &Form{editingID: t.ID}
	for _, fl := range Fields {
		f.values[fl] = descriptors[fl].format(t)
	}
	return f
}

// EditingID is the ID of the trade being edited, or 0 when creating.
func (f *Form) EditingID() int64 { return f.editingID }

// Editing reports whether the form overwrites an existing trade.
func (f *Form) Editing() bool { return f.editingID != 0 }

// Focus is the field that receives typed characters.
func (f *Form) Focus() Field { return f.focus }

func (f *Form) FocusNext() {
	f.focus = Field((int(f.focus) + 1) % NumFields)
}

func (f *Form) FocusPrev() {
	f.focus = Field((int(f.focus) + NumFields - 1) % NumFields)
}

// InputChar appends r to the focused field.
func (f *Form) InputChar(r rune) {
	f.values[f.focus] += string(r)
	f.errs[f.focus] = ""
}

// Backspace removes the last character of the focused field.
func (f *Form) Backspace() {
	v := f.values[f.focus]
	if v == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(v)
	f.values[f.focus] = v[:len(v)-size]
	f.errs[f.focus] = ""
}

// Value returns the raw text of a field.
func (f *Form) Value(fl Field) string { return f.values[fl] }

// SetValue replaces the raw text of a field.
func (f *Form) SetValue(fl Field, s string) {
	f.values[fl] = s
	f.errs[fl] = ""
}

// Err returns the validation message of a field from the last Build, if any.
func (f *Form) Err(fl Field) string { return f.errs[fl] }

// Build parses every field. On success the trade carries the editing ID (0
// for a new trade). On failure it returns FieldErrors naming every bad field,
// and the messages are kept on the form for display.
func (f *Form) Build() (journal.Trade, error) {
	t := journal.Trade{ID: f.editingID}
	errs := FieldErrors{}

	for _, fl := range Fields {
		f.errs[fl] = ""
		if err := descriptors[fl].parse(f.values[fl], &t); err != nil {
			f.errs[fl] = err.Error()
			errs[fl] = err.Error()
		}
	}

	if len(errs) > 0 {
		return journal.Trade{}, errs
	}
	return t, nil
}
