package quest

import "errors"

var errAnswerRequired = errors.New("please answer with y or n")

// Confirm asks a yes/no question. Typing "y" or "n" sets the answer,
// enter submits, and escape (or enter on an empty input) accepts the
// default when one is set.
type Confirm struct {
	prompt     *Prompt
	input      *CharInput
	def        bool
	hasDefault bool
}

// NewConfirm creates a confirmation prompt with no default answer.
func NewConfirm(message string) *Confirm {
	c := &Confirm{
		prompt: NewPrompt(message),
		input: NewCharInput().WithFilter(func(r rune) (rune, bool) {
			switch r {
			case 'y', 'Y', 'n', 'N':
				return r, true
			}
			return 0, false
		}),
	}
	c.prompt.WithHint("y/n")
	return c
}

// WithDefault sets the default answer, capitalised in the hint.
func (c *Confirm) WithDefault(def bool) *Confirm {
	c.def = def
	c.hasDefault = true
	if def {
		c.prompt.WithHint("Y/n")
	} else {
		c.prompt.WithHint("y/N")
	}
	return c
}

// Render implements Widget.
func (c *Confirm) Render(layout *Layout, b Backend) error {
	if err := c.prompt.Render(layout, b); err != nil {
		return err
	}
	return c.input.Render(layout, b)
}

// Height implements Widget.
func (c *Confirm) Height(layout *Layout) int {
	return c.prompt.Height(layout) + c.input.Height(layout) - 1
}

// CursorPos implements Widget.
func (c *Confirm) CursorPos(layout Layout) (int, int) {
	px, py := c.prompt.CursorPos(layout)
	x, y := c.input.CursorPos(layout.WithLineOffset(px))
	return x, py + y
}

// HandleKey implements Widget.
func (c *Confirm) HandleKey(key KeyEvent) bool {
	return c.input.HandleKey(key)
}

// Validate implements Question. An empty input is only valid when a
// default answer is set.
func (c *Confirm) Validate() (Validation, error) {
	if _, ok := c.input.Value(); !ok && !c.hasDefault {
		return ValidationContinue, errAnswerRequired
	}
	return ValidationFinish, nil
}

// Finish implements Question.
func (c *Confirm) Finish() bool {
	r, ok := c.input.Value()
	if !ok {
		return c.def
	}
	return r == 'y' || r == 'Y'
}

// HasDefault implements Question.
func (c *Confirm) HasDefault() bool { return c.hasDefault }

// FinishDefault implements Question.
func (c *Confirm) FinishDefault() bool { return c.def }
