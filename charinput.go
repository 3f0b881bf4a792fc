package quest

// CharInput holds zero or one filtered character. Typing replaces the
// character; Backspace and Delete clear it.
type CharInput struct {
	value  rune
	filter CharFilter
}

// NewCharInput creates an empty char input accepting every character.
func NewCharInput() *CharInput {
	return &CharInput{filter: NoFilter}
}

// WithFilter sets the character filter.
func (ci *CharInput) WithFilter(filter CharFilter) *CharInput {
	ci.filter = filter
	return ci
}

// Value returns the held character and whether one is set.
func (ci *CharInput) Value() (rune, bool) {
	return ci.value, ci.value != 0
}

// Clear unsets the held character.
func (ci *CharInput) Clear() {
	ci.value = 0
}

// HandleKey implements Widget.
func (ci *CharInput) HandleKey(key KeyEvent) bool {
	if key.Mod.Has(ModCtrl) || key.Mod.Has(ModAlt) {
		return false
	}

	switch key.Code {
	case KeyChar:
		r, ok := ci.filter(key.Char)
		if !ok {
			return false
		}
		ci.value = r
	case KeyBackspace, KeyDelete:
		if ci.value == 0 {
			return false
		}
		ci.value = 0
	default:
		return false
	}
	return true
}

// Render implements Widget.
func (ci *CharInput) Render(layout *Layout, b Backend) error {
	if ci.value == 0 {
		return nil
	}
	if err := b.WriteStyled(Styled(string(ci.value), DefaultTheme.Value)); err != nil {
		return err
	}
	*layout = layout.WithCursorPos(layout.LineOffset+1, 0)
	return nil
}

// Height implements Widget. A char input is always one line.
func (ci *CharInput) Height(layout *Layout) int {
	layout.LineOffset = 0
	layout.OffsetY++
	return 1
}

// CursorPos implements Widget.
func (ci *CharInput) CursorPos(layout Layout) (int, int) {
	if ci.value == 0 {
		return layout.LineOffset, 0
	}
	return layout.LineOffset + 1, 0
}
