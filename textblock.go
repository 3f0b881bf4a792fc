package quest

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// TextBlock is a word-wrapped block of text. When granted less vertical
// space than its wrapped height it clips to the layout's render region.
type TextBlock struct {
	text  string
	style *StyledText // optional style override for every line

	// wrapped lines, cached per width
	lines     []string
	wrapWidth int
}

// NewTextBlock creates a text block.
func NewTextBlock(text string) *TextBlock {
	return &TextBlock{text: text}
}

// WithStyle renders every line of the block in the given style.
func (t *TextBlock) WithStyle(s StyledText) *TextBlock {
	s.Text = ""
	t.style = &s
	return t
}

// wrapped returns the lines of the block wrapped to the given width,
// recomputing only when the width changes. Words longer than the width
// are hard-broken.
func (t *TextBlock) wrapped(width int) []string {
	if width < 1 {
		width = 1
	}
	if t.wrapWidth == width {
		return t.lines
	}
	t.lines = strings.Split(wrap.String(wordwrap.String(t.text, width), width), "\n")
	t.wrapWidth = width
	return t.lines
}

// Render implements Widget.
func (t *TextBlock) Render(layout *Layout, b Backend) error {
	lines := t.wrapped(layout.LineWidth())

	start := layout.GetStart(len(lines))
	n := len(lines) - start
	if n > layout.MaxHeight {
		n = layout.MaxHeight
	}

	for i := 0; i < n; i++ {
		line := lines[start+i]
		if t.style != nil {
			st := *t.style
			st.Text = line
			if err := b.WriteStyled(st); err != nil {
				return err
			}
		} else if _, err := b.Write([]byte(line)); err != nil {
			return err
		}
		if err := b.MoveCursorTo(layout.OffsetX, layout.OffsetY+i+1); err != nil {
			return err
		}
	}

	layout.LineOffset = 0
	layout.OffsetY += n
	return nil
}

// Height implements Widget, reporting the natural wrapped height.
func (t *TextBlock) Height(layout *Layout) int {
	h := len(t.wrapped(layout.LineWidth()))
	layout.LineOffset = 0
	layout.OffsetY += h
	return h
}

// CursorPos implements Widget.
func (t *TextBlock) CursorPos(layout Layout) (int, int) {
	return layout.OffsetX, layout.OffsetY
}

// HandleKey implements Widget. Text blocks consume nothing.
func (t *TextBlock) HandleKey(KeyEvent) bool {
	return false
}
