package quest

import "strings"

// Choice is one entry of a picker: either selectable text or a
// separator, which is skipped by navigation.
type Choice struct {
	Text      string
	Separator bool
}

// NewChoice creates a selectable choice.
func NewChoice(text string) Choice {
	return Choice{Text: text}
}

// NewSeparator creates a non-selectable separator line. An empty text
// renders as a short dashed rule.
func NewSeparator(text string) Choice {
	if text == "" {
		text = strings.Repeat("─", 6)
	}
	return Choice{Text: text, Separator: true}
}

// Picker is a list of choices renderable through a Select. Choices
// wrap to the available width; over-height ones clip to the render
// region granted by the engine.
type Picker struct {
	choices  []Choice
	blocks   []*TextBlock
	pageSize int
	loop     bool
}

// NewPicker creates a picker with the default page size of 15 and
// looping navigation.
func NewPicker(choices ...Choice) *Picker {
	p := &Picker{
		choices:  choices,
		blocks:   make([]*TextBlock, len(choices)),
		pageSize: 15,
		loop:     true,
	}
	for i, c := range choices {
		p.blocks[i] = NewTextBlock(c.Text)
	}
	return p
}

// WithPageSize sets the maximum number of rows the picker may take.
func (p *Picker) WithPageSize(n int) *Picker {
	p.pageSize = n
	return p
}

// WithLoop sets whether navigation wraps at the list edges.
func (p *Picker) WithLoop(loop bool) *Picker {
	p.loop = loop
	return p
}

// Choice returns the choice at index.
func (p *Picker) Choice(index int) Choice {
	return p.choices[index]
}

// markerWidth is the indent taken by the hover marker column.
const markerWidth = 2

// itemLayout indents the layout past the marker column.
func itemLayout(layout Layout) Layout {
	return layout.WithOffset(layout.OffsetX+markerWidth, layout.OffsetY).WithLineOffset(0)
}

// Len implements List.
func (p *Picker) Len() int {
	return len(p.choices)
}

// IsSelectable implements List.
func (p *Picker) IsSelectable(index int) bool {
	return !p.choices[index].Separator
}

// PageSize implements List.
func (p *Picker) PageSize() int {
	return p.pageSize
}

// ShouldLoop implements List.
func (p *Picker) ShouldLoop() bool {
	return p.loop
}

// HeightAt implements List.
func (p *Picker) HeightAt(index int, layout Layout) int {
	l := itemLayout(layout)
	return p.blocks[index].Height(&l)
}

// RenderItem implements List.
func (p *Picker) RenderItem(index int, hovered bool, layout Layout, b Backend) error {
	return p.renderChoice(index, hovered, "", layout, b)
}

// renderChoice draws the marker column and the wrapped choice text.
// extra is an additional marker between the pointer and the text, used
// by the multi-select variant for its checkboxes.
func (p *Picker) renderChoice(index int, hovered bool, extra string, layout Layout, b Backend) error {
	choice := p.choices[index]

	marker := Styled(strings.Repeat(" ", markerWidth), DefaultTheme.Muted)
	if hovered {
		marker = Styled(symbolPointer+" ", DefaultTheme.Selected)
	}
	if err := b.WriteStyled(marker); err != nil {
		return err
	}
	if extra != "" && !choice.Separator {
		if err := b.WriteStyled(Styled(extra+" ", DefaultTheme.Selected)); err != nil {
			return err
		}
	}

	block := p.blocks[index]
	switch {
	case choice.Separator:
		block.WithStyle(Styled("", DefaultTheme.Muted))
	case hovered:
		block.WithStyle(Styled("", DefaultTheme.Selected))
	default:
		block.WithStyle(StyledText{})
	}

	l := itemLayout(layout)
	if extra != "" && !choice.Separator {
		l.LineOffset = len([]rune(extra)) + 1
	}
	return block.Render(&l, b)
}

// MultiPicker is a picker whose choices can be toggled independently.
// Space toggles the hovered choice, "a" toggles all and "i" inverts the
// selection; those keys are handled by MultiSelectPrompt.
type MultiPicker struct {
	*Picker
	selected []bool
}

// NewMultiPicker creates a multi-select picker over the given choices.
func NewMultiPicker(choices ...Choice) *MultiPicker {
	return &MultiPicker{
		Picker:   NewPicker(choices...),
		selected: make([]bool, len(choices)),
	}
}

// Toggle flips the selection state of the choice at index.
func (m *MultiPicker) Toggle(index int) {
	if m.IsSelectable(index) {
		m.selected[index] = !m.selected[index]
	}
}

// ToggleAll selects every choice, or deselects all when every
// selectable choice is already selected.
func (m *MultiPicker) ToggleAll() {
	all := true
	for i := range m.selected {
		if m.IsSelectable(i) && !m.selected[i] {
			all = false
			break
		}
	}
	for i := range m.selected {
		if m.IsSelectable(i) {
			m.selected[i] = !all
		}
	}
}

// Invert flips the selection state of every selectable choice.
func (m *MultiPicker) Invert() {
	for i := range m.selected {
		if m.IsSelectable(i) {
			m.selected[i] = !m.selected[i]
		}
	}
}

// IsSelected reports whether the choice at index is selected.
func (m *MultiPicker) IsSelected(index int) bool {
	return m.selected[index]
}

// RenderItem implements List, adding a checkbox column.
func (m *MultiPicker) RenderItem(index int, hovered bool, layout Layout, b Backend) error {
	box := symbolUnchecked
	if m.selected[index] {
		box = symbolChecked
	}
	return m.renderChoice(index, hovered, box, layout, b)
}

// HeightAt implements List.
func (m *MultiPicker) HeightAt(index int, layout Layout) int {
	return m.Picker.HeightAt(index, layout)
}
