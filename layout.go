package quest

// Size represents terminal dimensions.
type Size struct {
	Width  int
	Height int
}

// RenderRegion is the part of a widget to render when its full content
// cannot fit in the space it has been given.
type RenderRegion uint8

const (
	// RegionTop shows the head of the content.
	RegionTop RenderRegion = iota
	// RegionMiddle shows the middle of the content.
	RegionMiddle
	// RegionBottom shows the tail of the content.
	RegionBottom
)

// Layout describes where the next glyph is drawn and how much vertical
// space the widget being rendered is allowed to take.
//
// Assume the highlighted part of the block below is the place available
// for rendering:
//
//	 ____________
//	|            |
//	|     ███████|
//	|  ██████████|
//	|  ██████████|
//	'------------'
//
// LineOffset is the number of columns already consumed on the current
// line before the widget starts, OffsetX/OffsetY the absolute position
// where rendering begins, Width/Height the full terminal dimensions and
// MaxHeight the vertical budget granted to the widget being rendered
// right now, which may be less than its natural height.
type Layout struct {
	LineOffset int
	OffsetX    int
	OffsetY    int
	Width      int
	Height     int
	MaxHeight  int
	Region     RenderRegion
}

// NewLayout creates a layout for a terminal of the given size, with the
// cursor already lineOffset columns into the current line.
func NewLayout(lineOffset int, size Size) Layout {
	return Layout{
		LineOffset: lineOffset,
		Width:      size.Width,
		Height:     size.Height,
		MaxHeight:  size.Height,
		Region:     RegionMiddle,
	}
}

// WithLineOffset returns a copy of the layout with the given line offset.
func (l Layout) WithLineOffset(lineOffset int) Layout {
	l.LineOffset = lineOffset
	return l
}

// WithOffset returns a copy of the layout rendering at the given
// absolute screen position.
func (l Layout) WithOffset(x, y int) Layout {
	l.OffsetX = x
	l.OffsetY = y
	return l
}

// WithSize returns a copy of the layout for the given terminal size.
func (l Layout) WithSize(size Size) Layout {
	l.SetSize(size)
	return l
}

// WithRenderRegion returns a copy of the layout with the given region.
func (l Layout) WithRenderRegion(region RenderRegion) Layout {
	l.Region = region
	return l
}

// WithMaxHeight returns a copy of the layout with the given vertical budget.
func (l Layout) WithMaxHeight(maxHeight int) Layout {
	l.MaxHeight = maxHeight
	return l
}

// WithCursorPos returns a copy of the layout advanced past a sub-widget
// that ended with its cursor at (x, y): x becomes the new line offset
// and y rows are consumed. Composite widgets use it to chain sub-widget
// renders and height queries the same way.
func (l Layout) WithCursorPos(x, y int) Layout {
	l.LineOffset = x
	l.OffsetY += y
	return l
}

// SetSize updates the terminal dimensions in place.
func (l *Layout) SetSize(size Size) {
	l.Width = size.Width
	l.Height = size.Height
}

// LineWidth returns the number of columns usable on the current line.
// The caller guarantees LineOffset + OffsetX <= Width.
func (l Layout) LineWidth() int {
	return l.Width - l.LineOffset - l.OffsetX
}

// wrapCursor returns the cursor position after writing width columns at
// the layout: on the current line when it fits, otherwise wrapped onto
// subsequent full-width lines.
func wrapCursor(l Layout, width int) (int, int) {
	if width > l.LineWidth() {
		width -= l.LineWidth()
		return width % l.Width, 1 + width/l.Width
	}
	return l.LineOffset + width, 0
}

// GetStart returns the first visible row of a widget whose natural
// height exceeds the layout's MaxHeight, according to the render
// region. For content that fits, it is always 0.
func (l Layout) GetStart(height int) int {
	if height <= l.MaxHeight {
		return 0
	}
	switch l.Region {
	case RegionTop:
		return 0
	case RegionBottom:
		return height - l.MaxHeight
	default:
		return (height - l.MaxHeight) / 2
	}
}
