package quest

import "github.com/charmbracelet/lipgloss"

// StyledText pairs a string with the style to render it in.
type StyledText struct {
	Text  string
	Style lipgloss.Style
}

// Styled creates a styled text fragment.
func Styled(text string, style lipgloss.Style) StyledText {
	return StyledText{Text: text, Style: style}
}

// Plain creates an unstyled text fragment.
func Plain(text string) StyledText {
	return StyledText{Text: text}
}

// Prompt symbols.
const (
	symbolPrefix    = "? "
	symbolArrow     = "›"
	symbolTick      = "✔"
	symbolDot       = "·"
	symbolPointer   = "❯"
	symbolChecked   = "◉"
	symbolUnchecked = "◯"
)

// Theme is the set of styles shared by the built-in widgets.
type Theme struct {
	Prefix   lipgloss.Style // the "? " marker before a message
	Message  lipgloss.Style // the prompt message itself
	Hint     lipgloss.Style // hints and defaults
	Muted    lipgloss.Style // separators and footer text
	Selected lipgloss.Style // the hovered list item
	Value    lipgloss.Style // submitted answers
	Error    lipgloss.Style // validation errors
}

// DefaultTheme is used by all widgets unless overridden.
var DefaultTheme = Theme{
	Prefix:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	Message:  lipgloss.NewStyle().Bold(true),
	Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// ThemeMonochrome uses only text attributes, for terminals without color.
var ThemeMonochrome = Theme{
	Message:  lipgloss.NewStyle().Bold(true),
	Hint:     lipgloss.NewStyle().Faint(true),
	Muted:    lipgloss.NewStyle().Faint(true),
	Selected: lipgloss.NewStyle().Bold(true),
	Error:    lipgloss.NewStyle().Underline(true),
}
