package quest

import (
	"testing"
	"unicode"
)

func typeString(w Widget, s string) {
	for _, r := range s {
		w.HandleKey(Rune(r))
	}
}

func TestStringInputEditing(t *testing.T) {
	t.Run("typing appends", func(t *testing.T) {
		si := NewStringInput()
		typeString(si, "hello")
		if si.Value() != "hello" {
			t.Errorf("Value() = %q, want %q", si.Value(), "hello")
		}
	})

	t.Run("insert at cursor", func(t *testing.T) {
		si := NewStringInput()
		typeString(si, "hllo")
		si.HandleKey(Key(KeyHome))
		si.HandleKey(Key(KeyRight))
		si.HandleKey(Rune('e'))
		if si.Value() != "hello" {
			t.Errorf("Value() = %q, want %q", si.Value(), "hello")
		}
	})

	t.Run("backspace removes before cursor", func(t *testing.T) {
		si := NewStringInput()
		typeString(si, "hexllo")
		si.HandleKey(Key(KeyLeft))
		si.HandleKey(Key(KeyLeft))
		si.HandleKey(Key(KeyLeft))
		if !si.HandleKey(Key(KeyBackspace)) {
			t.Fatal("backspace not handled")
		}
		if si.Value() != "hello" {
			t.Errorf("Value() = %q, want %q", si.Value(), "hello")
		}
	})

	t.Run("delete removes at cursor", func(t *testing.T) {
		si := NewStringInput()
		typeString(si, "hxello")
		si.HandleKey(Key(KeyHome))
		si.HandleKey(Key(KeyRight))
		if !si.HandleKey(Key(KeyDelete)) {
			t.Fatal("delete not handled")
		}
		if si.Value() != "hello" {
			t.Errorf("Value() = %q, want %q", si.Value(), "hello")
		}
	})

	t.Run("wide runes edit by rune", func(t *testing.T) {
		si := NewStringInput()
		typeString(si, "日本")

		layout := NewLayout(10, testSize)
		if x, _ := si.CursorPos(layout); x != 14 {
			t.Errorf("CursorPos() x = %d, want 14", x)
		}

		// one arrow step crosses the whole double-width rune
		si.HandleKey(Key(KeyLeft))
		if x, _ := si.CursorPos(layout); x != 12 {
			t.Errorf("CursorPos() x = %d, want 12", x)
		}

		if !si.HandleKey(Key(KeyBackspace)) {
			t.Fatal("backspace not handled")
		}
		if si.Value() != "本" {
			t.Errorf("Value() = %q, want %q", si.Value(), "本")
		}
	})

	t.Run("no-ops report unhandled", func(t *testing.T) {
		si := NewStringInput()
		for _, key := range []KeyEvent{
			Key(KeyBackspace), Key(KeyDelete), Key(KeyLeft), Key(KeyHome),
		} {
			if si.HandleKey(key) {
				t.Errorf("empty input handled %v", key)
			}
		}

		typeString(si, "ab")
		for _, key := range []KeyEvent{Key(KeyRight), Key(KeyEnd), Key(KeyDelete)} {
			if si.HandleKey(key) {
				t.Errorf("cursor at end handled %v", key)
			}
		}
	})

	t.Run("modified keys pass through", func(t *testing.T) {
		si := NewStringInput()
		if si.HandleKey(KeyEvent{Code: KeyChar, Char: 'c', Mod: ModCtrl}) {
			t.Error("ctrl-modified key was handled")
		}
		if si.Value() != "" {
			t.Errorf("Value() = %q, want empty", si.Value())
		}
	})
}

func TestStringInputFilter(t *testing.T) {
	si := NewStringInput().WithFilter(func(r rune) (rune, bool) {
		if unicode.IsDigit(r) {
			return r, true
		}
		return 0, false
	})

	typeString(si, "a1b2c3")
	if si.Value() != "123" {
		t.Errorf("Value() = %q, want %q", si.Value(), "123")
	}
	if si.HandleKey(Rune('x')) {
		t.Error("filtered character was handled")
	}
}

func TestStringInputMask(t *testing.T) {
	si := NewStringInput().WithMask('*')
	typeString(si, "secret")

	b := NewStringBackend(testSize)
	layout := NewLayout(0, testSize)
	if err := si.Render(&layout, b); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := b.Line(0); got != "******" {
		t.Errorf("rendered %q, want %q", got, "******")
	}
	if si.Value() != "secret" {
		t.Errorf("Value() = %q, want %q", si.Value(), "secret")
	}
}

func TestStringInputCursorPos(t *testing.T) {
	si := NewStringInput()
	typeString(si, "hello")
	layout := NewLayout(10, testSize)

	x, y := si.CursorPos(layout)
	if x != 15 || y != 0 {
		t.Errorf("CursorPos() = (%d, %d), want (15, 0)", x, y)
	}

	si.HandleKey(Key(KeyLeft))
	si.HandleKey(Key(KeyLeft))
	x, y = si.CursorPos(layout)
	if x != 13 || y != 0 {
		t.Errorf("CursorPos() = (%d, %d), want (13, 0)", x, y)
	}
}

func TestCharInput(t *testing.T) {
	ci := NewCharInput().WithFilter(func(r rune) (rune, bool) {
		switch r {
		case 'y', 'n':
			return r, true
		}
		return 0, false
	})

	if _, ok := ci.Value(); ok {
		t.Fatal("new input has a value")
	}
	if ci.HandleKey(Rune('x')) {
		t.Error("filtered character was handled")
	}

	if !ci.HandleKey(Rune('y')) {
		t.Fatal("accepted character not handled")
	}
	if r, ok := ci.Value(); !ok || r != 'y' {
		t.Errorf("Value() = (%q, %v), want ('y', true)", r, ok)
	}

	// typing replaces
	ci.HandleKey(Rune('n'))
	if r, _ := ci.Value(); r != 'n' {
		t.Errorf("Value() = %q, want 'n'", r)
	}

	if !ci.HandleKey(Key(KeyBackspace)) {
		t.Fatal("backspace not handled")
	}
	if _, ok := ci.Value(); ok {
		t.Error("value not cleared")
	}
	if ci.HandleKey(Key(KeyBackspace)) {
		t.Error("backspace on empty input was handled")
	}
}
