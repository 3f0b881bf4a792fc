package quest

import (
	"bufio"
	"io"
)

// KeySource produces key events for a prompt runner. Next blocks until
// a key is available and returns io.EOF when the stream ends.
type KeySource interface {
	Next() (KeyEvent, error)
}

// Events decodes raw terminal bytes from a reader into key events. The
// terminal is expected to be in raw mode while events are read.
type Events struct {
	r *bufio.Reader
}

// NewEvents creates an event source reading from r, typically os.Stdin.
func NewEvents(r io.Reader) *Events {
	return &Events{r: bufio.NewReader(r)}
}

// Next reads and decodes a single key press. Escape sequences the
// decoder does not recognize are skipped.
func (e *Events) Next() (KeyEvent, error) {
	for {
		ev, ok, err := e.next()
		if err != nil {
			return KeyEvent{}, err
		}
		if ok {
			return ev, nil
		}
	}
}

func (e *Events) next() (KeyEvent, bool, error) {
	b, err := e.r.ReadByte()
	if err != nil {
		return KeyEvent{}, false, err
	}

	switch {
	case b == 0x00:
		return Key(KeyNull), true, nil
	case b == '\r' || b == '\n':
		return Key(KeyEnter), true, nil
	case b == '\t':
		return Key(KeyTab), true, nil
	case b == 0x7f || b == 0x08:
		return Key(KeyBackspace), true, nil
	case b == 0x1b:
		return e.readEscape()
	case b < 0x20:
		// remaining C0 control characters map to ctrl-letter
		return KeyEvent{Code: KeyChar, Mod: ModCtrl, Char: rune(b) + 'a' - 1}, true, nil
	}

	if b < 0x80 {
		return Rune(rune(b)), true, nil
	}

	// multi-byte UTF-8: put the lead byte back and decode a full rune
	if err := e.r.UnreadByte(); err != nil {
		return KeyEvent{}, false, err
	}
	r, _, err := e.r.ReadRune()
	if err != nil {
		return KeyEvent{}, false, err
	}
	return Rune(r), true, nil
}

// readEscape decodes the remainder of an escape sequence. A lone escape
// byte with nothing buffered behind it is the escape key itself.
func (e *Events) readEscape() (KeyEvent, bool, error) {
	if e.r.Buffered() == 0 {
		return Key(KeyEsc), true, nil
	}

	b, err := e.r.ReadByte()
	if err != nil {
		return KeyEvent{}, false, err
	}

	switch b {
	case '[':
		return e.readCSI()
	case 'O':
		// SS3 sequences sent by application-mode cursor keys
		b, err := e.r.ReadByte()
		if err != nil {
			return KeyEvent{}, false, err
		}
		switch b {
		case 'A':
			return Key(KeyUp), true, nil
		case 'B':
			return Key(KeyDown), true, nil
		case 'C':
			return Key(KeyRight), true, nil
		case 'D':
			return Key(KeyLeft), true, nil
		case 'H':
			return Key(KeyHome), true, nil
		case 'F':
			return Key(KeyEnd), true, nil
		}
		return KeyEvent{}, false, nil
	}

	// alt-modified key
	ev := Rune(rune(b))
	ev.Mod = ModAlt
	return ev, true, nil
}

func (e *Events) readCSI() (KeyEvent, bool, error) {
	// collect numeric parameters up to the final byte
	var params []byte
	for {
		b, err := e.r.ReadByte()
		if err != nil {
			return KeyEvent{}, false, err
		}

		switch b {
		case 'A':
			return Key(KeyUp), true, nil
		case 'B':
			return Key(KeyDown), true, nil
		case 'C':
			return Key(KeyRight), true, nil
		case 'D':
			return Key(KeyLeft), true, nil
		case 'H':
			return Key(KeyHome), true, nil
		case 'F':
			return Key(KeyEnd), true, nil
		case 'Z':
			return KeyEvent{Code: KeyTab, Mod: ModShift}, true, nil
		case '~':
			switch string(params) {
			case "1", "7":
				return Key(KeyHome), true, nil
			case "3":
				return Key(KeyDelete), true, nil
			case "4", "8":
				return Key(KeyEnd), true, nil
			case "5":
				return Key(KeyPageUp), true, nil
			case "6":
				return Key(KeyPageDown), true, nil
			}
			return KeyEvent{}, false, nil
		}

		if (b >= '0' && b <= '9') || b == ';' {
			params = append(params, b)
			continue
		}

		// unsupported final byte
		return KeyEvent{}, false, nil
	}
}

// SliceEvents is a KeySource backed by a fixed slice of events, used in
// tests and scripted runs.
type SliceEvents struct {
	events []KeyEvent
	at     int
}

// NewSliceEvents creates a source yielding the given events in order.
func NewSliceEvents(events ...KeyEvent) *SliceEvents {
	return &SliceEvents{events: events}
}

// Next returns the next scripted event, or io.EOF when exhausted.
func (s *SliceEvents) Next() (KeyEvent, error) {
	if s.at >= len(s.events) {
		return KeyEvent{}, io.EOF
	}
	ev := s.events[s.at]
	s.at++
	return ev, nil
}
