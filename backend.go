package quest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Backend is the terminal capability widgets render through. Widgets
// never query the terminal directly; size is injected via Layout and
// all output goes through this interface.
type Backend interface {
	io.Writer

	// WriteStyled writes a styled text fragment at the cursor.
	WriteStyled(text StyledText) error
	// SetFg sets the foreground color applied to subsequent plain
	// writes. A nil color resets to the terminal default.
	SetFg(c lipgloss.TerminalColor) error

	MoveCursorTo(x, y int) error
	// MoveCursor moves the cursor relative to its current position.
	MoveCursor(dx, dy int) error
	HideCursor() error
	ShowCursor() error

	EnableRawMode() error
	DisableRawMode() error

	// ScrollUp scrolls the viewport up by n rows, pulling new blank
	// rows in at the bottom.
	ScrollUp(n int) error
	ClearFromCursorDown() error
	ClearUntilNewline() error

	Size() Size
	Flush() error
}

// Terminal is the Backend implementation for a real terminal. Rendering
// happens inline in the normal terminal flow, no alternate screen.
type Terminal struct {
	out   *bufio.Writer
	inFd  int
	outFd int

	prev *term.State // saved state while raw mode is active
	fg   lipgloss.Style
	fgOn bool

	sigChan    chan os.Signal
	resizeChan chan Size
}

// NewTerminal creates a backend on stdin/stdout.
func NewTerminal() *Terminal {
	return NewTerminalWith(os.Stdin, os.Stdout)
}

// NewTerminalWith creates a backend on the given files.
func NewTerminalWith(in, out *os.File) *Terminal {
	t := &Terminal{
		out:        bufio.NewWriter(out),
		inFd:       int(in.Fd()),
		outFd:      int(out.Fd()),
		sigChan:    make(chan os.Signal, 1),
		resizeChan: make(chan Size, 1),
	}
	go t.handleSignals()
	return t
}

// ResizeChan returns a channel that receives size updates on terminal
// resize. Resize tracking is active while raw mode is enabled.
func (t *Terminal) ResizeChan() <-chan Size {
	return t.resizeChan
}

func (t *Terminal) handleSignals() {
	for range t.sigChan {
		select {
		case t.resizeChan <- t.Size():
		default:
		}
	}
}

// Write writes raw bytes at the cursor, tinted by the current
// foreground color if one is set.
func (t *Terminal) Write(p []byte) (int, error) {
	if t.fgOn {
		if _, err := t.out.WriteString(t.fg.Render(string(p))); err != nil {
			return 0, err
		}
		return len(p), nil
	}
	return t.out.Write(p)
}

// WriteStyled writes a styled text fragment at the cursor.
func (t *Terminal) WriteStyled(text StyledText) error {
	_, err := t.out.WriteString(text.Style.Render(text.Text))
	return err
}

// SetFg sets the foreground color for subsequent plain writes.
func (t *Terminal) SetFg(c lipgloss.TerminalColor) error {
	if c == nil {
		t.fgOn = false
		return nil
	}
	t.fg = lipgloss.NewStyle().Foreground(c)
	t.fgOn = true
	return nil
}

// MoveCursorTo moves the cursor to the zero-based position (x, y).
func (t *Terminal) MoveCursorTo(x, y int) error {
	_, err := fmt.Fprintf(t.out, "\x1b[%d;%dH", y+1, x+1)
	return err
}

// MoveCursor moves the cursor relative to its current position.
func (t *Terminal) MoveCursor(dx, dy int) error {
	if dy < 0 {
		if _, err := fmt.Fprintf(t.out, "\x1b[%dA", -dy); err != nil {
			return err
		}
	} else if dy > 0 {
		if _, err := fmt.Fprintf(t.out, "\x1b[%dB", dy); err != nil {
			return err
		}
	}
	if dx > 0 {
		if _, err := fmt.Fprintf(t.out, "\x1b[%dC", dx); err != nil {
			return err
		}
	} else if dx < 0 {
		if _, err := fmt.Fprintf(t.out, "\x1b[%dD", -dx); err != nil {
			return err
		}
	}
	return nil
}

// HideCursor hides the cursor.
func (t *Terminal) HideCursor() error {
	_, err := t.out.WriteString("\x1b[?25l")
	return err
}

// ShowCursor shows the cursor.
func (t *Terminal) ShowCursor() error {
	_, err := t.out.WriteString("\x1b[?25h")
	return err
}

// EnableRawMode puts the input terminal into raw mode.
func (t *Terminal) EnableRawMode() error {
	if t.prev != nil {
		return nil
	}
	prev, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.prev = prev

	signal.Notify(t.sigChan, unix.SIGWINCH)
	return nil
}

// DisableRawMode restores the terminal state saved by EnableRawMode.
func (t *Terminal) DisableRawMode() error {
	if t.prev == nil {
		return nil
	}
	prev := t.prev
	t.prev = nil
	signal.Stop(t.sigChan)
	if err := term.Restore(t.inFd, prev); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// ScrollUp scrolls the viewport up by n rows.
func (t *Terminal) ScrollUp(n int) error {
	if n <= 0 {
		return nil
	}
	_, err := fmt.Fprintf(t.out, "\x1b[%dS", n)
	return err
}

// ClearFromCursorDown clears everything below and right of the cursor.
func (t *Terminal) ClearFromCursorDown() error {
	_, err := t.out.WriteString("\x1b[J")
	return err
}

// ClearUntilNewline clears from the cursor to the end of the line.
func (t *Terminal) ClearUntilNewline() error {
	_, err := t.out.WriteString("\x1b[K")
	return err
}

// CursorPosition reports the zero-based cursor position by issuing a
// DSR query and reading the reply. Requires raw mode, otherwise the
// reply would be echoed and line-buffered.
func (t *Terminal) CursorPosition() (int, int, error) {
	if _, err := t.out.WriteString("\x1b[6n"); err != nil {
		return 0, 0, err
	}
	if err := t.out.Flush(); err != nil {
		return 0, 0, err
	}

	// Reply has the form ESC [ row ; col R.
	var buf [32]byte
	n := 0
	for n < len(buf) {
		m, err := unix.Read(t.inFd, buf[n:n+1])
		if err != nil {
			return 0, 0, fmt.Errorf("failed to read cursor position: %w", err)
		}
		if m == 0 {
			return 0, 0, io.ErrUnexpectedEOF
		}
		if buf[n] == 'R' {
			break
		}
		n++
	}

	var row, col int
	if _, err := fmt.Sscanf(string(buf[:n]), "\x1b[%d;%d", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("bad cursor position reply: %w", err)
	}
	return col - 1, row - 1, nil
}

// Size returns the terminal dimensions, falling back to 80x24 when the
// query fails (e.g. output is not a tty).
func (t *Terminal) Size() Size {
	ws, err := unix.IoctlGetWinsize(t.outFd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return Size{Width: 80, Height: 24}
	}
	return Size{Width: int(ws.Col), Height: int(ws.Row)}
}

// Flush writes any buffered output to the terminal.
func (t *Terminal) Flush() error {
	return t.out.Flush()
}
