package quest

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// StringBackend renders widgets into an in-memory cell grid. It backs
// the bubbletea adapter's View and most of the package tests. Styles
// are dropped; only the text content is kept.
type StringBackend struct {
	size  Size
	cells [][]rune
	x, y  int
}

// NewStringBackend creates a backend with a fixed virtual size.
func NewStringBackend(size Size) *StringBackend {
	s := &StringBackend{size: size}
	s.Reset()
	return s
}

// Reset clears the grid and moves the cursor home.
func (s *StringBackend) Reset() {
	s.cells = make([][]rune, s.size.Height)
	s.x, s.y = 0, 0
}

func (s *StringBackend) put(r rune) {
	if r == '\n' {
		s.x = 0
		s.y++
		return
	}
	if s.y < 0 || s.y >= len(s.cells) {
		return
	}
	row := s.cells[s.y]
	for len(row) <= s.x {
		row = append(row, ' ')
	}
	row[s.x] = r
	s.cells[s.y] = row
	s.x += runewidth.RuneWidth(r)
}

// Write writes plain text at the cursor.
func (s *StringBackend) Write(p []byte) (int, error) {
	for _, r := range string(p) {
		s.put(r)
	}
	return len(p), nil
}

// WriteStyled writes the fragment's text at the cursor.
func (s *StringBackend) WriteStyled(text StyledText) error {
	_, err := s.Write([]byte(text.Text))
	return err
}

// SetFg is a no-op; the string backend keeps no colors.
func (s *StringBackend) SetFg(lipgloss.TerminalColor) error { return nil }

// MoveCursorTo moves the cursor to (x, y).
func (s *StringBackend) MoveCursorTo(x, y int) error {
	s.x, s.y = x, y
	return nil
}

// MoveCursor moves the cursor relative to its current position,
// clamping at the top-left corner.
func (s *StringBackend) MoveCursor(dx, dy int) error {
	s.x += dx
	s.y += dy
	if s.x < 0 {
		s.x = 0
	}
	if s.y < 0 {
		s.y = 0
	}
	return nil
}

// HideCursor is a no-op.
func (s *StringBackend) HideCursor() error { return nil }

// ShowCursor is a no-op.
func (s *StringBackend) ShowCursor() error { return nil }

// EnableRawMode is a no-op.
func (s *StringBackend) EnableRawMode() error { return nil }

// DisableRawMode is a no-op.
func (s *StringBackend) DisableRawMode() error { return nil }

// ScrollUp drops n rows from the top of the grid.
func (s *StringBackend) ScrollUp(n int) error {
	for i := 0; i < n && len(s.cells) > 0; i++ {
		s.cells = append(s.cells[1:], nil)
	}
	return nil
}

// ClearFromCursorDown clears everything below and right of the cursor.
func (s *StringBackend) ClearFromCursorDown() error {
	if s.y >= 0 && s.y < len(s.cells) && s.x < len(s.cells[s.y]) {
		s.cells[s.y] = s.cells[s.y][:s.x]
	}
	for y := s.y + 1; y < len(s.cells); y++ {
		s.cells[y] = nil
	}
	return nil
}

// ClearUntilNewline clears from the cursor to the end of the line.
func (s *StringBackend) ClearUntilNewline() error {
	if s.y >= 0 && s.y < len(s.cells) && s.x < len(s.cells[s.y]) {
		s.cells[s.y] = s.cells[s.y][:s.x]
	}
	return nil
}

// Size returns the virtual terminal size.
func (s *StringBackend) Size() Size { return s.size }

// Flush is a no-op.
func (s *StringBackend) Flush() error { return nil }

// Line returns the text content of row y, right-trimmed.
func (s *StringBackend) Line(y int) string {
	if y < 0 || y >= len(s.cells) {
		return ""
	}
	return strings.TrimRight(string(s.cells[y]), " ")
}

// String returns the grid contents with trailing blank lines removed.
func (s *StringBackend) String() string {
	last := len(s.cells) - 1
	for last >= 0 && len(strings.TrimRight(string(s.cells[last]), " ")) == 0 {
		last--
	}
	var b strings.Builder
	for y := 0; y <= last; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.Line(y))
	}
	return b.String()
}
