package quest

import (
	"errors"
	"io"
)

// Question is the contract implemented by root prompt widgets run
// through Input. T is the answer type.
type Question[T any] interface {
	Widget

	// Validate is called when the user presses enter. Returning an
	// error keeps the prompt running and shows the error below it; the
	// error text must be a single line.
	Validate() (Validation, error)

	// Finish returns the answer. Called once validation finishes.
	Finish() T

	// HasDefault reports whether escape can answer with a default.
	HasDefault() bool
	// FinishDefault returns the default answer. Only called when
	// HasDefault is true and the user pressed escape.
	FinishDefault() T
}

// cursorPositioner is implemented by backends that can report where the
// cursor currently is, used to anchor the prompt on the screen.
type cursorPositioner interface {
	CursorPosition() (x, y int, err error)
}

// Input runs a Question against a backend and a key source: it renders,
// adjusts scrollback when the widget would overflow the bottom of the
// screen, routes keys and validates on enter.
type Input[T any] struct {
	question Question[T]
	backend  Backend
	events   KeySource

	size       Size
	baseRow    int
	hideCursor bool
}

// NewInput creates a runner for the given question.
func NewInput[T any](question Question[T], b Backend, events KeySource) *Input[T] {
	return &Input[T]{question: question, backend: b, events: events}
}

// HideCursor hides the terminal cursor while the prompt runs, for
// prompts that indicate position by other means (list pointers).
func (in *Input[T]) HideCursor() *Input[T] {
	in.hideCursor = true
	return in
}

// adjustScrollback scrolls the viewport when the widget would extend
// past the bottom of the screen, moving the anchor row up with it.
func (in *Input[T]) adjustScrollback(height int) error {
	if in.baseRow+height <= in.size.Height {
		return nil
	}
	dist := in.baseRow + height - in.size.Height
	in.baseRow -= dist
	return in.backend.ScrollUp(dist)
}

// clear wipes everything the prompt has drawn.
func (in *Input[T]) clear() error {
	if in.baseRow+1 < in.size.Height {
		if err := in.backend.MoveCursorTo(0, in.baseRow+1); err != nil {
			return err
		}
		if err := in.backend.ClearFromCursorDown(); err != nil {
			return err
		}
	}
	if err := in.backend.MoveCursorTo(0, in.baseRow); err != nil {
		return err
	}
	return in.backend.ClearUntilNewline()
}

func (in *Input[T]) setCursorPos() error {
	layout := NewLayout(0, in.size).WithOffset(0, in.baseRow)
	x, y := in.question.CursorPos(layout)
	return in.backend.MoveCursorTo(x, in.baseRow+y)
}

func (in *Input[T]) render() error {
	in.size = in.backend.Size()

	hl := NewLayout(0, in.size)
	height := in.question.Height(&hl)
	if err := in.adjustScrollback(height); err != nil {
		return err
	}
	if err := in.clear(); err != nil {
		return err
	}

	layout := NewLayout(0, in.size).WithOffset(0, in.baseRow)
	if err := in.question.Render(&layout, in.backend); err != nil {
		return err
	}
	if err := in.setCursorPos(); err != nil {
		return err
	}
	return in.backend.Flush()
}

// renderError shows a one-line validation error below the widget.
func (in *Input[T]) renderError(e error) error {
	hl := NewLayout(0, in.size)
	height := in.question.Height(&hl) + 1
	if err := in.adjustScrollback(height); err != nil {
		return err
	}

	if err := in.backend.MoveCursorTo(0, in.baseRow+height-1); err != nil {
		return err
	}
	if err := in.backend.ClearUntilNewline(); err != nil {
		return err
	}
	if err := in.backend.WriteStyled(Styled(">> ", DefaultTheme.Error)); err != nil {
		return err
	}
	if _, err := in.backend.Write([]byte(e.Error())); err != nil {
		return err
	}

	if err := in.setCursorPos(); err != nil {
		return err
	}
	return in.backend.Flush()
}

// park leaves the cursor on a fresh line below the widget, used before
// bailing out on interrupt or end of input.
func (in *Input[T]) park() {
	hl := NewLayout(0, in.size)
	height := in.question.Height(&hl)
	_ = in.backend.MoveCursorTo(0, in.baseRow+height)
	if in.hideCursor {
		_ = in.backend.ShowCursor()
	}
	_ = in.backend.Flush()
}

// finish clears the prompt and returns the answer, leaving the cursor
// at the anchor row so the caller can print a summary line.
func (in *Input[T]) finish(answer T) (T, error) {
	if err := in.clear(); err != nil {
		return answer, err
	}
	if in.hideCursor {
		if err := in.backend.ShowCursor(); err != nil {
			return answer, err
		}
	}
	return answer, in.backend.Flush()
}

// Run renders the question and processes keys until the user submits an
// answer, accepts a default with escape, or aborts. It returns
// ErrInterrupted on ctrl-c and ErrEOF when the input stream ends.
func (in *Input[T]) Run() (T, error) {
	var zero T

	in.size = in.backend.Size()

	if err := in.backend.EnableRawMode(); err != nil {
		return zero, err
	}
	defer in.backend.DisableRawMode()

	if in.hideCursor {
		if err := in.backend.HideCursor(); err != nil {
			return zero, err
		}
	}

	if cp, ok := in.backend.(cursorPositioner); ok {
		if _, y, err := cp.CursorPosition(); err == nil {
			in.baseRow = y
		}
	}

	if err := in.render(); err != nil {
		return zero, err
	}

	for {
		ev, err := in.events.Next()
		if err != nil {
			in.park()
			if errors.Is(err, io.EOF) {
				return zero, ErrEOF
			}
			return zero, err
		}

		var handled bool
		switch {
		case ev.IsCtrlC():
			in.park()
			return zero, ErrInterrupted

		case ev.Code == KeyNull:
			in.park()
			return zero, ErrEOF

		case ev.Code == KeyEsc && in.question.HasDefault():
			return in.finish(in.question.FinishDefault())

		case ev.Code == KeyEnter:
			v, err := in.question.Validate()
			if err != nil {
				if rerr := in.renderError(err); rerr != nil {
					return zero, rerr
				}
				continue
			}
			if v == ValidationFinish {
				return in.finish(in.question.Finish())
			}
			handled = true

		default:
			handled = in.question.HandleKey(ev)
		}

		if handled {
			if err := in.render(); err != nil {
				return zero, err
			}
		}
	}
}
