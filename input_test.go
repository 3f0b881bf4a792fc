package quest

import (
	"errors"
	"strings"
	"testing"
)

func runeEvents(s string) []KeyEvent {
	var evs []KeyEvent
	for _, r := range s {
		evs = append(evs, Rune(r))
	}
	return evs
}

func TestInputConfirm(t *testing.T) {
	t.Run("yes", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(Rune('y'), Key(KeyEnter))

		got, err := NewInput[bool](NewConfirm("Proceed?"), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if !got {
			t.Error("Run() = false, want true")
		}
	})

	t.Run("no", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(Rune('n'), Key(KeyEnter))

		got, err := NewInput[bool](NewConfirm("Proceed?"), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got {
			t.Error("Run() = true, want false")
		}
	})

	t.Run("enter on empty uses the default", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(Key(KeyEnter))

		got, err := NewInput[bool](NewConfirm("Proceed?").WithDefault(true), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if !got {
			t.Error("Run() = false, want the default true")
		}
	})

	t.Run("escape uses the default", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(Rune('y'), Key(KeyEsc))

		got, err := NewInput[bool](NewConfirm("Proceed?").WithDefault(false), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got {
			t.Error("Run() = true, want the default false")
		}
	})

	t.Run("enter without default shows an error", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(Key(KeyEnter), Rune('y'), Key(KeyEnter))

		got, err := NewInput[bool](NewConfirm("Proceed?"), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if !got {
			t.Error("Run() = false, want true")
		}
	})

	t.Run("ctrl-c interrupts", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(KeyEvent{Code: KeyChar, Char: 'c', Mod: ModCtrl})

		_, err := NewInput[bool](NewConfirm("Proceed?"), b, events).Run()
		if !errors.Is(err, ErrInterrupted) {
			t.Errorf("Run() error = %v, want ErrInterrupted", err)
		}
	})

	t.Run("exhausted events report eof", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(Rune('y'))

		_, err := NewInput[bool](NewConfirm("Proceed?"), b, events).Run()
		if !errors.Is(err, ErrEOF) {
			t.Errorf("Run() error = %v, want ErrEOF", err)
		}
	})
}

func TestInputRendersPrompt(t *testing.T) {
	b := NewStringBackend(testSize)
	events := NewSliceEvents(Key(KeyEnter))

	if _, err := NewInput[bool](NewConfirm("Proceed?").WithDefault(true), b, events).Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// the prompt clears itself once finished
	if got := b.String(); got != "" {
		t.Errorf("screen after finish = %q, want empty", got)
	}
}

func TestInputValidationError(t *testing.T) {
	b := NewStringBackend(testSize)

	q := NewIntPrompt("Count")
	in := NewInput[int64](q, b, NewSliceEvents(Rune('-'), Key(KeyEnter)))

	if _, err := in.Run(); !errors.Is(err, ErrEOF) {
		t.Fatalf("Run() error = %v, want ErrEOF", err)
	}

	// the error line stays on screen below the prompt
	if got := b.Line(1); !strings.Contains(got, ">> ") {
		t.Errorf("line 1 = %q, want an error line", got)
	}
}

func TestInputIntPrompt(t *testing.T) {
	t.Run("typed value", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(append(runeEvents("42"), Key(KeyEnter))...)

		got, err := NewInput[int64](NewIntPrompt("Count"), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got != 42 {
			t.Errorf("Run() = %d, want 42", got)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(append(runeEvents("-7"), Key(KeyEnter))...)

		got, err := NewInput[int64](NewIntPrompt("Count"), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got != -7 {
			t.Errorf("Run() = %d, want -7", got)
		}
	})

	t.Run("letters are filtered", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(append(runeEvents("4x2"), Key(KeyEnter))...)

		got, err := NewInput[int64](NewIntPrompt("Count"), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got != 42 {
			t.Errorf("Run() = %d, want 42", got)
		}
	})

	t.Run("empty uses the default", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(Key(KeyEnter))

		got, err := NewInput[int64](NewIntPrompt("Count").WithDefault(3), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got != 3 {
			t.Errorf("Run() = %d, want 3", got)
		}
	})

	t.Run("arrows step the value", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(
			append(runeEvents("5"), Key(KeyUp), Key(KeyUp), Key(KeyDown), Key(KeyEnter))...)

		got, err := NewInput[int64](NewIntPrompt("Count"), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got != 6 {
			t.Errorf("Run() = %d, want 6", got)
		}
	})

	t.Run("page keys step by ten", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(Key(KeyPageUp), Key(KeyPageDown), Key(KeyPageUp), Key(KeyEnter))

		got, err := NewInput[int64](NewIntPrompt("Count"), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got != 10 {
			t.Errorf("Run() = %d, want 10", got)
		}
	})
}

func TestInputFloatPrompt(t *testing.T) {
	t.Run("typed value", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(append(runeEvents("2.5"), Key(KeyEnter))...)

		got, err := NewInput[float64](NewFloatPrompt("Ratio"), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got != 2.5 {
			t.Errorf("Run() = %v, want 2.5", got)
		}
	})

	t.Run("arrows keep the decimal point", func(t *testing.T) {
		b := NewStringBackend(testSize)
		events := NewSliceEvents(append(runeEvents("1.5"), Key(KeyUp), Key(KeyEnter))...)

		got, err := NewInput[float64](NewFloatPrompt("Ratio"), b, events).Run()
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got != 2.5 {
			t.Errorf("Run() = %v, want 2.5", got)
		}
	})
}

func TestInputSelectPrompt(t *testing.T) {
	picker := NewPicker(
		NewChoice("alpha"),
		NewChoice("beta"),
		NewChoice("gamma"),
	)
	b := NewStringBackend(testSize)
	events := NewSliceEvents(Key(KeyDown), Key(KeyDown), Key(KeyEnter))

	got, err := NewInput[SelectedChoice](NewSelectPrompt("Pick one", picker), b, events).HideCursor().Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got.Index != 2 || got.Text != "gamma" {
		t.Errorf("Run() = %+v, want {2 gamma}", got)
	}
}

func TestInputScrollback(t *testing.T) {
	// a terminal too short for the prompt forces a scroll
	size := Size{Width: 40, Height: 6}
	picker := NewPicker(
		NewChoice("alpha"),
		NewChoice("beta"),
		NewChoice("gamma"),
		NewChoice("delta"),
		NewChoice("epsilon"),
		NewChoice("zeta"),
	).WithPageSize(5)

	b := NewStringBackend(size)
	b.MoveCursorTo(0, 5) // cursor already on the last row

	events := NewSliceEvents(Key(KeyEnter))
	in := NewInput[SelectedChoice](NewSelectPrompt("Pick one", picker), b, events)
	in.baseRow = 5

	got, err := in.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got.Index != 0 {
		t.Errorf("Run() = %+v, want index 0", got)
	}
	if in.baseRow+1 > size.Height {
		t.Errorf("baseRow = %d, want scrolled above %d", in.baseRow, size.Height)
	}
}
