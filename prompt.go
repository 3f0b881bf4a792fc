package quest

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Delimiter is the pair of characters wrapped around a prompt hint.
// The zero value renders the hint bare.
type Delimiter struct {
	Open  rune
	Close rune
}

// Predefined delimiters.
var (
	DelimNone          = Delimiter{}
	DelimParentheses   = Delimiter{'(', ')'}
	DelimBraces        = Delimiter{'{', '}'}
	DelimSquareBracket = Delimiter{'[', ']'}
	DelimAngleBracket  = Delimiter{'<', '>'}
)

func (d Delimiter) enabled() bool {
	return d.Open != 0
}

// Prompt is the one-line header of a question: a "? " prefix, a bold
// message and optionally a dimmed hint. With a hint it renders as
// "? <message> (hint) " and without one as "? <message> › ".
type Prompt struct {
	message    string
	hint       string
	hasHint    bool
	delim      Delimiter
	messageLen int
	hintLen    int
}

// NewPrompt creates a prompt with the given message and the default
// parentheses hint delimiter.
func NewPrompt(message string) *Prompt {
	return &Prompt{
		message:    message,
		messageLen: runewidth.StringWidth(message),
		delim:      DelimParentheses,
	}
}

// WithHint sets the hint shown after the message.
func (p *Prompt) WithHint(hint string) *Prompt {
	p.hint = hint
	p.hasHint = true
	p.hintLen = runewidth.StringWidth(hint)
	return p
}

// WithDelim sets the delimiter pair wrapped around the hint.
func (p *Prompt) WithDelim(delim Delimiter) *Prompt {
	p.delim = delim
	return p
}

// Message returns the prompt message.
func (p *Prompt) Message() string {
	return p.message
}

// Hint returns the hint and whether one is set.
func (p *Prompt) Hint() (string, bool) {
	return p.hint, p.hasHint
}

// HintLen returns the display width of the hint including its
// delimiters, or 0 when no hint is set.
func (p *Prompt) HintLen() int {
	if !p.hasHint {
		return 0
	}
	if p.delim.enabled() {
		return p.hintLen + 2
	}
	return p.hintLen
}

// Width returns the full display width of the rendered prompt,
// including the trailing space the cursor rests on.
func (p *Prompt) Width() int {
	if p.hasHint {
		// `? <message> <hint> `
		return 2 + p.messageLen + 1 + p.HintLen() + 1
	}
	// `? <message> › `
	return 2 + p.messageLen + 3
}

func (p *Prompt) cursorPos(layout Layout) (int, int) {
	return wrapCursor(layout, p.Width())
}

// Render implements Widget.
func (p *Prompt) Render(layout *Layout, b Backend) error {
	if err := b.WriteStyled(Styled(symbolPrefix, DefaultTheme.Prefix)); err != nil {
		return err
	}
	if err := b.WriteStyled(Styled(p.message, DefaultTheme.Message)); err != nil {
		return err
	}
	if _, err := b.Write([]byte(" ")); err != nil {
		return err
	}

	if err := b.SetFg(DefaultTheme.Hint.GetForeground()); err != nil {
		return err
	}
	switch {
	case p.hasHint && p.delim.enabled():
		if _, err := fmt.Fprintf(b, "%c%s%c", p.delim.Open, p.hint, p.delim.Close); err != nil {
			return err
		}
	case p.hasHint:
		if _, err := b.Write([]byte(p.hint)); err != nil {
			return err
		}
	default:
		if _, err := b.Write([]byte(symbolArrow)); err != nil {
			return err
		}
	}
	if err := b.SetFg(nil); err != nil {
		return err
	}
	if _, err := b.Write([]byte(" ")); err != nil {
		return err
	}

	x, y := p.cursorPos(*layout)
	*layout = layout.WithCursorPos(x, y)
	return nil
}

// Height implements Widget.
func (p *Prompt) Height(layout *Layout) int {
	x, y := p.cursorPos(*layout)
	*layout = layout.WithCursorPos(x, y)
	return y + 1
}

// CursorPos implements Widget.
func (p *Prompt) CursorPos(layout Layout) (int, int) {
	return p.cursorPos(layout)
}

// HandleKey implements Widget. The prompt consumes nothing.
func (p *Prompt) HandleKey(KeyEvent) bool {
	return false
}

// WriteFinishedMessage writes the `✔ <message> · ` header shown once a
// question has been answered.
func WriteFinishedMessage(message string, b Backend) error {
	if err := b.WriteStyled(Styled(symbolTick, DefaultTheme.Prefix)); err != nil {
		return err
	}
	if _, err := b.Write([]byte(" ")); err != nil {
		return err
	}
	if err := b.WriteStyled(Styled(message, DefaultTheme.Message)); err != nil {
		return err
	}
	if _, err := b.Write([]byte(" ")); err != nil {
		return err
	}
	if err := b.WriteStyled(Styled(symbolDot, DefaultTheme.Muted)); err != nil {
		return err
	}
	_, err := b.Write([]byte(" "))
	return err
}
