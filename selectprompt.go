package quest

// SelectedChoice is the answer of a select prompt.
type SelectedChoice struct {
	Index int
	Text  string
}

// SelectPrompt asks the user to pick one choice from a list. It renders
// a prompt header followed by the scrollable list.
type SelectPrompt struct {
	prompt *Prompt
	sel    *Select[*Picker]
}

// NewSelectPrompt creates a single-select prompt.
func NewSelectPrompt(message string, picker *Picker) *SelectPrompt {
	return &SelectPrompt{
		prompt: NewPrompt(message),
		sel:    NewSelect(picker),
	}
}

// Select returns the underlying selection engine.
func (sp *SelectPrompt) Select() *Select[*Picker] {
	return sp.sel
}

// Render implements Widget.
func (sp *SelectPrompt) Render(layout *Layout, b Backend) error {
	if err := sp.prompt.Render(layout, b); err != nil {
		return err
	}
	return sp.sel.Render(layout, b)
}

// Height implements Widget. The header leaves the cursor mid-line, and
// the list's height already accounts for moving off that line.
func (sp *SelectPrompt) Height(layout *Layout) int {
	return sp.prompt.Height(layout) + sp.sel.Height(layout) - 1
}

// CursorPos implements Widget. The cursor rests at the end of the
// header; the hovered item is indicated by the pointer marker instead.
func (sp *SelectPrompt) CursorPos(layout Layout) (int, int) {
	return sp.prompt.CursorPos(layout)
}

// HandleKey implements Widget.
func (sp *SelectPrompt) HandleKey(key KeyEvent) bool {
	return sp.sel.HandleKey(key)
}

// Validate implements Question. The hover always rests on a selectable
// choice, so a select prompt is always ready to finish.
func (sp *SelectPrompt) Validate() (Validation, error) {
	return ValidationFinish, nil
}

// Finish implements Question.
func (sp *SelectPrompt) Finish() SelectedChoice {
	at := sp.sel.At()
	picker := sp.sel.Finish()
	return SelectedChoice{Index: at, Text: picker.Choice(at).Text}
}

// HasDefault implements Question.
func (sp *SelectPrompt) HasDefault() bool { return false }

// FinishDefault implements Question.
func (sp *SelectPrompt) FinishDefault() SelectedChoice { return SelectedChoice{} }

// MultiSelectPrompt asks the user to pick any number of choices.
// Space toggles the hovered choice, "a" toggles all, "i" inverts.
type MultiSelectPrompt struct {
	prompt *Prompt
	sel    *Select[*MultiPicker]
}

// NewMultiSelectPrompt creates a multi-select prompt.
func NewMultiSelectPrompt(message string, picker *MultiPicker) *MultiSelectPrompt {
	return &MultiSelectPrompt{
		prompt: NewPrompt(message).WithHint("space to select, enter to confirm"),
		sel:    NewSelect(picker),
	}
}

// Select returns the underlying selection engine.
func (mp *MultiSelectPrompt) Select() *Select[*MultiPicker] {
	return mp.sel
}

// Render implements Widget.
func (mp *MultiSelectPrompt) Render(layout *Layout, b Backend) error {
	if err := mp.prompt.Render(layout, b); err != nil {
		return err
	}
	return mp.sel.Render(layout, b)
}

// Height implements Widget.
func (mp *MultiSelectPrompt) Height(layout *Layout) int {
	return mp.prompt.Height(layout) + mp.sel.Height(layout) - 1
}

// CursorPos implements Widget.
func (mp *MultiSelectPrompt) CursorPos(layout Layout) (int, int) {
	return mp.prompt.CursorPos(layout)
}

// HandleKey implements Widget.
func (mp *MultiSelectPrompt) HandleKey(key KeyEvent) bool {
	if key.Code == KeyChar && key.Mod == 0 {
		switch key.Char {
		case ' ':
			mp.sel.List().Toggle(mp.sel.At())
			return true
		case 'a':
			mp.sel.List().ToggleAll()
			return true
		case 'i':
			mp.sel.List().Invert()
			return true
		}
	}
	return mp.sel.HandleKey(key)
}

// Validate implements Question.
func (mp *MultiSelectPrompt) Validate() (Validation, error) {
	return ValidationFinish, nil
}

// Finish implements Question.
func (mp *MultiSelectPrompt) Finish() []SelectedChoice {
	picker := mp.sel.Finish()
	var out []SelectedChoice
	for i := 0; i < picker.Len(); i++ {
		if picker.IsSelected(i) {
			out = append(out, SelectedChoice{Index: i, Text: picker.Choice(i).Text})
		}
	}
	return out
}

// HasDefault implements Question.
func (mp *MultiSelectPrompt) HasDefault() bool { return false }

// FinishDefault implements Question.
func (mp *MultiSelectPrompt) FinishDefault() []SelectedChoice { return nil }
