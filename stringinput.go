package quest

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// CharFilter maps a typed character to the character actually inserted.
// Returning false drops the character.
type CharFilter func(r rune) (rune, bool)

// NoFilter lets every character through.
func NoFilter(r rune) (rune, bool) {
	return r, true
}

// StringInput is a single-line text editor: printable characters are
// inserted at the cursor, arrows and Home/End move it, Backspace and
// Delete remove around it. Content longer than the current line wraps
// onto subsequent full-width lines.
type StringInput struct {
	value  []rune
	at     int // cursor, in runes
	mask   rune
	filter CharFilter
}

// NewStringInput creates an empty input accepting every character.
func NewStringInput() *StringInput {
	return &StringInput{filter: NoFilter}
}

// WithFilter sets the character filter.
func (si *StringInput) WithFilter(filter CharFilter) *StringInput {
	si.filter = filter
	return si
}

// WithMask renders every character as the given rune, for secrets.
func (si *StringInput) WithMask(mask rune) *StringInput {
	si.mask = mask
	return si
}

// Value returns the current content.
func (si *StringInput) Value() string {
	return string(si.value)
}

// SetValue replaces the content and puts the cursor at the end.
func (si *StringInput) SetValue(value string) {
	si.value = []rune(value)
	si.at = len(si.value)
}

// ReplaceWith replaces the content through fn, cursor at the end.
func (si *StringInput) ReplaceWith(fn func(string) string) {
	si.SetValue(fn(string(si.value)))
}

// display returns the content as rendered, applying the mask.
func (si *StringInput) display() string {
	if si.mask == 0 {
		return string(si.value)
	}
	return strings.Repeat(string(si.mask), len(si.value))
}

// HandleKey implements Widget.
func (si *StringInput) HandleKey(key KeyEvent) bool {
	if key.Mod.Has(ModCtrl) || key.Mod.Has(ModAlt) {
		return false
	}

	switch key.Code {
	case KeyChar:
		r, ok := si.filter(key.Char)
		if !ok {
			return false
		}
		si.value = append(si.value, 0)
		copy(si.value[si.at+1:], si.value[si.at:])
		si.value[si.at] = r
		si.at++

	case KeyLeft:
		if si.at == 0 {
			return false
		}
		si.at--

	case KeyRight:
		if si.at >= len(si.value) {
			return false
		}
		si.at++

	case KeyHome:
		if si.at == 0 {
			return false
		}
		si.at = 0

	case KeyEnd:
		if si.at >= len(si.value) {
			return false
		}
		si.at = len(si.value)

	case KeyBackspace:
		if si.at == 0 {
			return false
		}
		si.value = append(si.value[:si.at-1], si.value[si.at:]...)
		si.at--

	case KeyDelete:
		if si.at >= len(si.value) {
			return false
		}
		si.value = append(si.value[:si.at], si.value[si.at+1:]...)

	default:
		return false
	}

	return true
}

// Render implements Widget.
func (si *StringInput) Render(layout *Layout, b Backend) error {
	if len(si.value) != 0 {
		if err := b.WriteStyled(Styled(si.display(), DefaultTheme.Value)); err != nil {
			return err
		}
	}

	x, y := wrapCursor(*layout, runewidth.StringWidth(si.display()))
	*layout = layout.WithCursorPos(x, y)
	return nil
}

// Height implements Widget.
func (si *StringInput) Height(layout *Layout) int {
	x, y := wrapCursor(*layout, runewidth.StringWidth(si.display()))
	*layout = layout.WithCursorPos(x, y)
	return y + 1
}

// CursorPos implements Widget, returning the position of the editing
// cursor rather than the end of the content.
func (si *StringInput) CursorPos(layout Layout) (int, int) {
	upTo := si.display()
	if si.at < len(si.value) {
		upTo = string([]rune(upTo)[:si.at])
	}
	return wrapCursor(layout, runewidth.StringWidth(upTo))
}
