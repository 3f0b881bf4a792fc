package quest

import (
	"errors"
	"strconv"
	"strings"
)

var errNotANumber = errors.New("please enter a valid number")

func intFilter(r rune) (rune, bool) {
	if r >= '0' && r <= '9' || r == '-' || r == '+' {
		return r, true
	}
	return 0, false
}

func floatFilter(r rune) (rune, bool) {
	if _, ok := intFilter(r); ok {
		return r, true
	}
	switch r {
	case '.', 'e', 'E', 'i', 'n', 'f', 'a', 'N':
		return r, true
	}
	return 0, false
}

// IntPrompt asks for a signed integer. Up and down arrows step the
// value by one, page up and down by ten.
type IntPrompt struct {
	prompt     *Prompt
	input      *StringInput
	def        int64
	hasDefault bool
	answer     int64
}

// NewIntPrompt creates an integer prompt with no default.
func NewIntPrompt(message string) *IntPrompt {
	return &IntPrompt{
		prompt: NewPrompt(message),
		input:  NewStringInput().WithFilter(intFilter),
	}
}

// WithDefault sets the default value, shown as the prompt hint.
func (ip *IntPrompt) WithDefault(def int64) *IntPrompt {
	ip.def = def
	ip.hasDefault = true
	ip.prompt.WithHint(strconv.FormatInt(def, 10))
	return ip
}

// step adjusts the current value by delta, treating an unparseable or
// empty input as zero.
func (ip *IntPrompt) step(delta int64) {
	ip.input.ReplaceWith(func(s string) string {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			n = 0
		}
		return strconv.FormatInt(n+delta, 10)
	})
}

// Render implements Widget.
func (ip *IntPrompt) Render(layout *Layout, b Backend) error {
	if err := ip.prompt.Render(layout, b); err != nil {
		return err
	}
	return ip.input.Render(layout, b)
}

// Height implements Widget.
func (ip *IntPrompt) Height(layout *Layout) int {
	return ip.prompt.Height(layout) + ip.input.Height(layout) - 1
}

// CursorPos implements Widget.
func (ip *IntPrompt) CursorPos(layout Layout) (int, int) {
	px, py := ip.prompt.CursorPos(layout)
	x, y := ip.input.CursorPos(layout.WithLineOffset(px))
	return x, py + y
}

// HandleKey implements Widget.
func (ip *IntPrompt) HandleKey(key KeyEvent) bool {
	if mv, ok := movementFromKey(key); ok {
		switch mv {
		case MoveUp:
			ip.step(1)
			return true
		case MoveDown:
			ip.step(-1)
			return true
		case MovePageUp:
			ip.step(10)
			return true
		case MovePageDown:
			ip.step(-10)
			return true
		}
	}
	return ip.input.HandleKey(key)
}

// Validate implements Question.
func (ip *IntPrompt) Validate() (Validation, error) {
	s := ip.input.Value()
	if s == "" && ip.hasDefault {
		ip.answer = ip.def
		return ValidationFinish, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ValidationContinue, errNotANumber
	}
	ip.answer = n
	return ValidationFinish, nil
}

// Finish implements Question.
func (ip *IntPrompt) Finish() int64 { return ip.answer }

// HasDefault implements Question.
func (ip *IntPrompt) HasDefault() bool { return ip.hasDefault }

// FinishDefault implements Question.
func (ip *IntPrompt) FinishDefault() int64 { return ip.def }

// FloatPrompt asks for a floating point number. Up and down arrows step
// the value by one, page up and down by ten.
type FloatPrompt struct {
	prompt     *Prompt
	input      *StringInput
	def        float64
	hasDefault bool
	answer     float64
}

// NewFloatPrompt creates a float prompt with no default.
func NewFloatPrompt(message string) *FloatPrompt {
	return &FloatPrompt{
		prompt: NewPrompt(message),
		input:  NewStringInput().WithFilter(floatFilter),
	}
}

// WithDefault sets the default value, shown as the prompt hint.
func (fp *FloatPrompt) WithDefault(def float64) *FloatPrompt {
	fp.def = def
	fp.hasDefault = true
	fp.prompt.WithHint(formatFloat(def))
	return fp
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Keep an explicit decimal point so stepping stays in float land.
	if !strings.ContainsAny(s, ".einEIN") {
		s += ".0"
	}
	return s
}

func (fp *FloatPrompt) step(delta float64) {
	fp.input.ReplaceWith(func(s string) string {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			f = 0
		}
		return formatFloat(f + delta)
	})
}

// Render implements Widget.
func (fp *FloatPrompt) Render(layout *Layout, b Backend) error {
	if err := fp.prompt.Render(layout, b); err != nil {
		return err
	}
	return fp.input.Render(layout, b)
}

// Height implements Widget.
func (fp *FloatPrompt) Height(layout *Layout) int {
	return fp.prompt.Height(layout) + fp.input.Height(layout) - 1
}

// CursorPos implements Widget.
func (fp *FloatPrompt) CursorPos(layout Layout) (int, int) {
	px, py := fp.prompt.CursorPos(layout)
	x, y := fp.input.CursorPos(layout.WithLineOffset(px))
	return x, py + y
}

// HandleKey implements Widget.
func (fp *FloatPrompt) HandleKey(key KeyEvent) bool {
	if mv, ok := movementFromKey(key); ok {
		switch mv {
		case MoveUp:
			fp.step(1)
			return true
		case MoveDown:
			fp.step(-1)
			return true
		case MovePageUp:
			fp.step(10)
			return true
		case MovePageDown:
			fp.step(-10)
			return true
		}
	}
	return fp.input.HandleKey(key)
}

// Validate implements Question.
func (fp *FloatPrompt) Validate() (Validation, error) {
	s := fp.input.Value()
	if s == "" && fp.hasDefault {
		fp.answer = fp.def
		return ValidationFinish, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ValidationContinue, errNotANumber
	}
	fp.answer = f
	return ValidationFinish, nil
}

// Finish implements Question.
func (fp *FloatPrompt) Finish() float64 { return fp.answer }

// HasDefault implements Question.
func (fp *FloatPrompt) HasDefault() bool { return fp.hasDefault }

// FinishDefault implements Question.
func (fp *FloatPrompt) FinishDefault() float64 { return fp.def }
