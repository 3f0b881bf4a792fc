package quest

// KeyCode identifies a key press.
type KeyCode uint8

const (
	// KeyNull is an empty read, treated as end of input.
	KeyNull KeyCode = iota
	KeyChar
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Mod is a set of modifier flags on a key press.
type Mod uint8

const (
	ModCtrl Mod = 1 << iota
	ModAlt
	ModShift
)

// Has returns true if the modifier set contains the given flag.
func (m Mod) Has(flag Mod) bool {
	return m&flag != 0
}

// KeyEvent is a single decoded key press. Char is only meaningful when
// Code is KeyChar.
type KeyEvent struct {
	Code KeyCode
	Mod  Mod
	Char rune
}

// Key creates a non-character key event.
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

// Rune creates a character key event.
func Rune(r rune) KeyEvent {
	return KeyEvent{Code: KeyChar, Char: r}
}

// IsCtrlC reports whether the event is a ctrl-c press.
func (k KeyEvent) IsCtrlC() bool {
	return k.Code == KeyChar && k.Char == 'c' && k.Mod.Has(ModCtrl)
}

// Movement is the navigation intent behind a key press.
type Movement uint8

const (
	MoveUp Movement = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveHome
	MoveEnd
	MovePageUp
	MovePageDown
)

// movementFromKey maps the navigation subset of key events to a
// movement. All other events report false.
func movementFromKey(key KeyEvent) (Movement, bool) {
	if key.Mod.Has(ModCtrl) || key.Mod.Has(ModAlt) {
		return 0, false
	}
	switch key.Code {
	case KeyUp:
		return MoveUp, true
	case KeyDown:
		return MoveDown, true
	case KeyLeft:
		return MoveLeft, true
	case KeyRight:
		return MoveRight, true
	case KeyHome:
		return MoveHome, true
	case KeyEnd:
		return MoveEnd, true
	case KeyPageUp:
		return MovePageUp, true
	case KeyPageDown:
		return MovePageDown, true
	}
	return 0, false
}
