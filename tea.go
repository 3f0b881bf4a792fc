package quest

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model adapts a Widget to the bubbletea runtime, for embedding a
// prompt widget inside a larger bubbletea program. Keys are translated
// and forwarded to the widget; the view is rendered through an
// in-memory backend.
type Model struct {
	widget Widget
	size   Size
	done   bool
}

// NewModel wraps a widget in a bubbletea model. The size is replaced by
// the first WindowSizeMsg.
func NewModel(w Widget) Model {
	return Model{widget: w, size: Size{Width: 80, Height: 24}}
}

// Widget returns the wrapped widget.
func (m Model) Widget() Widget { return m.widget }

// Done reports whether the user submitted with enter.
func (m Model) Done() bool { return m.done }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. Ctrl-c and enter quit; everything else
// is forwarded to the widget.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = Size{Width: msg.Width, Height: msg.Height}

	case tea.KeyMsg:
		ev, ok := keyEventFromTea(msg)
		if !ok {
			break
		}
		switch {
		case ev.IsCtrlC():
			return m, tea.Quit
		case ev.Code == KeyEnter:
			m.done = true
			return m, tea.Quit
		default:
			m.widget.HandleKey(ev)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	b := NewStringBackend(m.size)
	layout := NewLayout(0, m.size)
	if err := m.widget.Render(&layout, b); err != nil {
		return err.Error()
	}
	return b.String()
}

// keyEventFromTea translates a bubbletea key message. Unknown keys
// report false.
func keyEventFromTea(msg tea.KeyMsg) (KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return KeyEvent{}, false
		}
		ev := Rune(msg.Runes[0])
		if msg.Alt {
			ev.Mod |= ModAlt
		}
		return ev, true
	case tea.KeySpace:
		return Rune(' '), true
	case tea.KeyEnter:
		return Key(KeyEnter), true
	case tea.KeyEsc:
		return Key(KeyEsc), true
	case tea.KeyBackspace:
		return Key(KeyBackspace), true
	case tea.KeyDelete:
		return Key(KeyDelete), true
	case tea.KeyTab:
		return Key(KeyTab), true
	case tea.KeyUp:
		return Key(KeyUp), true
	case tea.KeyDown:
		return Key(KeyDown), true
	case tea.KeyLeft:
		return Key(KeyLeft), true
	case tea.KeyRight:
		return Key(KeyRight), true
	case tea.KeyHome:
		return Key(KeyHome), true
	case tea.KeyEnd:
		return Key(KeyEnd), true
	case tea.KeyPgUp:
		return Key(KeyPageUp), true
	case tea.KeyPgDown:
		return Key(KeyPageDown), true
	case tea.KeyCtrlC:
		return KeyEvent{Code: KeyChar, Char: 'c', Mod: ModCtrl}, true
	}
	return KeyEvent{}, false
}
