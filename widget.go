package quest

// Widget is the contract every renderable prompt element implements.
//
// Render and Height are symmetric: both advance the layout past the
// widget, so composite widgets can chain sub-widgets vertically by
// passing the same layout through each in turn.
type Widget interface {
	// Render draws the widget into the region described by the layout.
	// It may mutate the layout to report the cursor position it ended
	// at. Backend write errors are returned unchanged.
	Render(layout *Layout, b Backend) error

	// Height returns the number of rows the widget takes when rendered
	// at the given layout, advancing the layout past the widget.
	Height(layout *Layout) int

	// CursorPos returns the terminal-relative cursor position the
	// widget would leave the cursor at if rendered at the layout.
	CursorPos(layout Layout) (x, y int)

	// HandleKey consumes a key event, returning true iff the event was
	// handled. Side effects are internal state mutation only.
	HandleKey(key KeyEvent) bool
}
