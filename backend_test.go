package quest

import (
	"io"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// newPipeTerminal builds a Terminal over pipes so the emitted escape
// sequences can be read back.
func newPipeTerminal(t *testing.T) (*Terminal, *os.File) {
	t.Helper()

	in, inW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	outR, out, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		in.Close()
		inW.Close()
		outR.Close()
		out.Close()
	})

	return NewTerminalWith(in, out), outR
}

func readBack(t *testing.T, b *Terminal, r *os.File, want string) {
	t.Helper()
	if err := b.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
	buf := make([]byte, len(want))
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := string(buf); got != want {
		t.Errorf("emitted %q, want %q", got, want)
	}
}

func TestTerminalMoveCursor(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   string
	}{
		{"up and right", 2, -1, "\x1b[1A\x1b[2C"},
		{"down and left", -3, 2, "\x1b[2B\x1b[3D"},
		{"right only", 4, 0, "\x1b[4C"},
		{"up only", 0, -5, "\x1b[5A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, r := newPipeTerminal(t)
			if err := b.MoveCursor(tt.dx, tt.dy); err != nil {
				t.Fatalf("MoveCursor() error: %v", err)
			}
			readBack(t, b, r, tt.want)
		})
	}

	t.Run("zero delta emits nothing", func(t *testing.T) {
		b, r := newPipeTerminal(t)
		if err := b.MoveCursor(0, 0); err != nil {
			t.Fatalf("MoveCursor() error: %v", err)
		}
		// anything buffered by the no-op move would show up before the
		// absolute move below
		if err := b.MoveCursorTo(0, 0); err != nil {
			t.Fatalf("MoveCursorTo() error: %v", err)
		}
		readBack(t, b, r, "\x1b[1;1H")
	})
}

func TestTerminalSizeFallback(t *testing.T) {
	b, _ := newPipeTerminal(t)
	if got := b.Size(); got != (Size{Width: 80, Height: 24}) {
		t.Errorf("Size() = %+v, want 80x24 fallback", got)
	}
}

func TestTerminalResizeNotify(t *testing.T) {
	b, _ := newPipeTerminal(t)

	b.sigChan <- unix.SIGWINCH
	select {
	case size := <-b.ResizeChan():
		if size != (Size{Width: 80, Height: 24}) {
			t.Errorf("resize size = %+v, want 80x24", size)
		}
	case <-time.After(time.Second):
		t.Fatal("no size update after SIGWINCH")
	}
}

func TestStringBackendMoveCursor(t *testing.T) {
	b := NewStringBackend(Size{Width: 20, Height: 5})

	if err := b.MoveCursorTo(2, 1); err != nil {
		t.Fatalf("MoveCursorTo() error: %v", err)
	}
	if err := b.MoveCursor(3, 1); err != nil {
		t.Fatalf("MoveCursor() error: %v", err)
	}
	b.Write([]byte("x"))
	if got := b.Line(2); got != "     x" {
		t.Errorf("Line(2) = %q, want %q", got, "     x")
	}

	// relative moves clamp at the top-left corner
	if err := b.MoveCursor(-10, -10); err != nil {
		t.Fatalf("MoveCursor() error: %v", err)
	}
	b.Write([]byte("y"))
	if got := b.Line(0); got != "y" {
		t.Errorf("Line(0) = %q, want %q", got, "y")
	}
}
