package quest

import "math"

// List is the capability a collection implements to be shown in a
// Select. The engine never mutates the collection; it reads lengths,
// selectability and heights, and forwards render calls per item.
type List interface {
	// RenderItem draws the element at index into the region described
	// by the layout. hovered is true for the element the cursor is on.
	RenderItem(index int, hovered bool, layout Layout, b Backend) error

	// IsSelectable reports whether the element at index can be hovered.
	// Non-selectable elements are skipped by navigation keys.
	IsSelectable(index int) bool

	// PageSize is the maximum number of rows the list may take. Lists
	// taller than this become scrollable.
	PageSize() int

	// ShouldLoop reports whether navigation wraps at the edges.
	ShouldLoop() bool

	// HeightAt returns the number of rows the element at index takes
	// when rendered at the given layout.
	HeightAt(index int, layout Layout) int

	// Len is the number of elements in the list.
	Len() int
}

// IsEmpty reports whether a list has no elements.
func IsEmpty(l List) bool {
	return l.Len() == 0
}

// heightCache memoizes per-item natural heights, keyed by the layout
// they were computed against.
type heightCache struct {
	heights    []int
	prevLayout Layout
}

// Select keeps track of movements within a list, maintaining a
// scrollable window of visible item indices and the hovered index. It
// implements Widget; key handling covers Up, Down, Home, End, PageUp
// and PageDown.
type Select[L List] struct {
	list L

	firstSelectable int
	lastSelectable  int

	// at is the hovered index. Between a raw SetAt call and the next
	// pagination pass it may lie outside [0, Len); everything that
	// needs it valid clamps first.
	at int

	// The window spans [pageStart, pageEnd] inclusive. pageEnd <
	// pageStart means the window wraps past the end of the list, which
	// only happens when the list loops. The boundary heights are the
	// visible heights of the boundary items, possibly less than their
	// natural heights.
	pageStart       int
	pageEnd         int
	pageStartHeight int
	pageEndHeight   int
	pageInit        bool // window computed at least once

	height  int // sum of natural heights of every item
	heights *heightCache
}

// NewSelect creates a Select over the given list.
//
// It panics when the list has no selectable items or when the list's
// page size is below 5; both are caller contract violations.
func NewSelect[L List](list L) *Select[L] {
	first, last := -1, -1
	for i := 0; i < list.Len(); i++ {
		if list.IsSelectable(i) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		panic("quest: select requires at least one selectable item")
	}
	if list.PageSize() < 5 {
		panic("quest: page size can be a minimum of 5")
	}

	return &Select[L]{
		list:            list,
		firstSelectable: first,
		lastSelectable:  last,
		at:              first,
		height:          math.MaxInt,
	}
}

// List returns the underlying list.
func (s *Select[L]) List() L {
	return s.list
}

// At returns the index of the hovered element.
func (s *Select[L]) At() int {
	return s.at
}

// SetAt sets the hovered index. at may be any number: a negative index
// clamps to 0 and an index at or beyond Len() clears the hover and
// resets the window. The caller is responsible for making sure an
// in-range index is selectable.
func (s *Select[L]) SetAt(at int) {
	if at < 0 {
		at = 0
	}

	moved := MoveUp
	if s.at >= s.list.Len() || s.at < at {
		moved = MoveDown
	}

	s.at = at

	if s.heights == nil {
		// not measured yet; the first render computes the window
		return
	}
	if s.isPaginating() {
		if at >= s.list.Len() {
			s.initPage()
		} else {
			s.tryAdjustPage(moved)
		}
	}
}

// ClearHover unsets the hovered element and resets the window. The
// hover index reported by At is Len() until the next SetAt.
func (s *Select[L]) ClearHover() {
	s.SetAt(s.list.Len())
}

// Finish consumes the Select and returns the underlying list. The
// Select must not be used afterwards. Use At for the selected index.
func (s *Select[L]) Finish() L {
	return s.list
}

func (s *Select[L]) nextSelectable() int {
	if s.at >= s.lastSelectable {
		if s.list.ShouldLoop() {
			return s.firstSelectable
		}
		return s.lastSelectable
	}

	length := s.list.Len()
	// at is not guaranteed to be in [0, Len), so clamp first
	at := s.at
	if at > length {
		at = length
	}
	for {
		at = (at + 1) % length
		if s.list.IsSelectable(at) {
			return at
		}
	}
}

func (s *Select[L]) prevSelectable() int {
	if s.at <= s.firstSelectable {
		if s.list.ShouldLoop() {
			return s.lastSelectable
		}
		return s.firstSelectable
	}

	length := s.list.Len()
	at := s.at
	if at > length {
		at = length
	}
	for {
		at = (length + at - 1) % length
		if s.list.IsSelectable(at) {
			return at
		}
	}
}

// updateHeights recomputes the per-item height cache when no cache
// exists or the cached layout differs from the current one. Heights are
// measured with the line offset forced to 0.
func (s *Select[L]) updateHeights(layout Layout) {
	if s.heights != nil && s.heights.prevLayout == layout {
		return
	}

	if s.heights == nil {
		s.heights = &heightCache{heights: make([]int, 0, s.list.Len())}
	} else {
		s.heights.heights = s.heights.heights[:0]
	}
	s.heights.prevLayout = layout

	layout.LineOffset = 0

	s.height = 0
	for i := 0; i < s.list.Len(); i++ {
		h := s.list.HeightAt(i, layout)
		s.height += h
		s.heights.heights = append(s.heights.heights, h)
	}
}

func (s *Select[L]) pageSize() int {
	return s.list.PageSize()
}

func (s *Select[L]) isPaginating() bool {
	return s.height > s.pageSize()
}

// atOutsidePage reports whether the window needs resizing. It is also
// true when at sits exactly on a boundary: resizing then keeps at least
// one margin item on each side, so the next move cannot exit the window
// unseen.
func (s *Select[L]) atOutsidePage() bool {
	if s.pageStart < s.pageEnd {
		// - a - - S - - - - - - E - a -
		//   ^------- outside -------^
		return s.at <= s.pageStart || s.at >= s.pageEnd
	}
	// wrapped window
	// - - - - E - - - a - - S - - -
	//       outside --^
	return s.at <= s.pageStart && s.at >= s.pageEnd
}

// tryGetIndex returns the index delta steps away from at, honoring
// looping. It reports false when stepping past a non-looping boundary.
// delta must be within ±Len.
func (s *Select[L]) tryGetIndex(delta int) (int, bool) {
	length := s.list.Len()
	if delta >= 0 {
		res := s.at + delta
		if res < length {
			return res, true
		}
		if s.list.ShouldLoop() {
			return res - length, true
		}
		return 0, false
	}

	delta = -delta
	if s.list.ShouldLoop() {
		return (s.at + length - delta) % length, true
	}
	if s.at >= delta {
		return s.at - delta, true
	}
	return 0, false
}

// adjustPage recomputes the window anchored at the hovered item, given
// the direction we just moved to.
func (s *Select[L]) adjustPage(moved Movement) {
	if s.heights == nil {
		return
	}

	// direction is the direction we came from, so it has the opposite
	// sign of moved
	direction := 1
	if moved == MoveDown {
		direction = -1
	}

	hs := s.heights.heights

	// one line is reserved for the "more choices" footer
	maxHeight := s.pageSize() - 1

	// Probe the neighbor in the direction we came from first, then the
	// single neighbor on the opposite side, then the rest continuing in
	// the original direction. Say we moved down from 2 to 3:
	//
	//  .-----.
	//  |  0  | <- probe 4
	//  |  1  | <- probe 3
	//  |  2  | <- probe 1, kept for continuity with the previous frame
	//  |  3  | <- at
	//  |  4  | <- probe 2, the one-item margin at the leading edge
	//  '-----'
	//
	// Looping and list edges are handled by tryGetIndex.
	type probe struct {
		index    int
		opposite bool
	}
	probes := make([]probe, 0, maxHeight)
	if i, ok := s.tryGetIndex(direction); ok {
		probes = append(probes, probe{i, false})
	}
	if i, ok := s.tryGetIndex(-direction); ok {
		probes = append(probes, probe{i, true})
	}
	for d := 2; d < maxHeight; d++ {
		if i, ok := s.tryGetIndex(direction * d); ok {
			probes = append(probes, probe{i, false})
		}
	}

	// boundA collects the chain in the direction we came from, boundB
	// the single opposite-direction neighbor; which one is pageStart
	// depends on the direction moved. Both hold (index, visible height).
	type bound struct {
		index  int
		height int
	}
	boundA := bound{s.at, hs[s.at]}
	boundB := bound{s.at, hs[s.at]}

	height := hs[s.at]

	for _, p := range probes {
		if height >= maxHeight {
			// no more elements can be shown
			break
		}

		var elemHeight int
		if p.opposite {
			// the opposite-direction neighbor always contributes one
			// line regardless of its natural height, so the window does
			// not jump in size when that neighbor is tall
			elemHeight = 1
		} else {
			elemHeight = min(height+hs[p.index], maxHeight) - height
		}

		if p.opposite {
			boundB = bound{p.index, elemHeight}
		} else {
			boundA = bound{p.index, elemHeight}
		}

		height += elemHeight
	}

	if moved == MoveDown {
		// moving down, the special cased neighbor sits after at
		s.pageStart, s.pageStartHeight = boundA.index, boundA.height
		s.pageEnd, s.pageEndHeight = boundB.index, boundB.height
	} else {
		// moving up, the special cased neighbor sits before at
		s.pageStart, s.pageStartHeight = boundB.index, boundB.height
		s.pageEnd, s.pageEndHeight = boundA.index, boundA.height
	}
	s.pageInit = true
}

func (s *Select[L]) tryAdjustPage(moved Movement) {
	if s.atOutsidePage() {
		s.adjustPage(moved)
	}
}

// initPage computes the window shown on first render and whenever the
// hover is cleared: the window starts at index 0 and extends as far as
// the page budget allows.
func (s *Select[L]) initPage() {
	if s.heights == nil {
		return
	}
	hs := s.heights.heights

	s.pageStart = 0
	s.pageStartHeight = hs[0]

	if s.isPaginating() {
		// one line is reserved for the "more choices" footer
		maxHeight := s.pageSize() - 1

		height := hs[0]
		s.pageEnd = 0
		s.pageEndHeight = min(hs[0], maxHeight)

		for i := 1; i < len(hs); i++ {
			if height >= maxHeight {
				break
			}
			s.pageEnd = i
			s.pageEndHeight = min(height+hs[i], maxHeight) - height

			height += hs[i]
		}
	} else {
		s.pageEnd = len(hs) - 1
		s.pageEndHeight = hs[s.pageEnd]
	}
	s.pageInit = true
}

// renderRange renders the items in [from, to), clipping the window
// boundary items to their visible heights.
func (s *Select[L]) renderRange(from, to int, layout *Layout, b Backend) error {
	hs := s.heights.heights

	// operate on a local copy so max height and region changes are not
	// reflected upstream
	local := *layout

	for i := from; i < to; i++ {
		switch i {
		case s.pageStart:
			local.MaxHeight = s.pageStartHeight
			local.Region = RegionBottom
		case s.pageEnd:
			local.MaxHeight = s.pageEndHeight
			local.Region = RegionTop
		default:
			local.MaxHeight = hs[i]
		}

		if err := s.list.RenderItem(i, i == s.at, local, b); err != nil {
			return err
		}
		local.OffsetY += local.MaxHeight

		if err := b.MoveCursorTo(local.OffsetX, local.OffsetY); err != nil {
			return err
		}
	}

	layout.OffsetY = local.OffsetY
	return nil
}

// Render implements Widget.
func (s *Select[L]) Render(layout *Layout, b Backend) error {
	s.updateHeights(*layout)

	if !s.pageInit {
		s.initPage()
	}

	if layout.LineOffset != 0 {
		layout.LineOffset = 0
		layout.OffsetY++
		if err := b.MoveCursorTo(layout.OffsetX, layout.OffsetY); err != nil {
			return err
		}
	}

	if s.pageEnd < s.pageStart {
		// window wraps past the end of the list
		if err := s.renderRange(s.pageStart, s.list.Len(), layout, b); err != nil {
			return err
		}
		if err := s.renderRange(0, s.pageEnd+1, layout, b); err != nil {
			return err
		}
	} else if err := s.renderRange(s.pageStart, s.pageEnd+1, layout, b); err != nil {
		return err
	}

	if s.isPaginating() {
		if err := b.WriteStyled(Styled("(Move up and down to reveal more choices)", DefaultTheme.Muted)); err != nil {
			return err
		}
		layout.OffsetY++

		if err := b.MoveCursorTo(layout.OffsetX, layout.OffsetY); err != nil {
			return err
		}
	}

	return nil
}

// Height implements Widget. The reported height never shrinks below
// what is needed to show the hovered item, plus the footer line when
// paginating.
func (s *Select[L]) Height(layout *Layout) int {
	s.updateHeights(*layout)
	hs := s.heights.heights

	lower := 0
	if s.at < len(hs) {
		lower = hs[s.at]
	}
	if s.isPaginating() {
		lower++
	}

	height := s.height
	if ps := s.pageSize(); height > ps {
		height = ps
	}
	if height < lower {
		height = lower
	}
	if layout.LineOffset != 0 {
		// one extra line to move off the partially used one
		height++
	}

	layout.LineOffset = 0
	layout.OffsetY += height

	return height
}

// CursorPos implements Widget. Lists do not have a meaningful cursor
// position of their own.
func (s *Select[L]) CursorPos(Layout) (int, int) {
	panic("quest: select does not support cursor position")
}

// HandleKey implements Widget, mapping the navigation keys to hover and
// window updates.
func (s *Select[L]) HandleKey(key KeyEvent) bool {
	movement, ok := movementFromKey(key)
	if !ok {
		return false
	}

	var moved Movement

	switch {
	case movement == MoveUp && (s.list.ShouldLoop() || s.at > s.firstSelectable):
		s.at = s.prevSelectable()
		moved = MoveUp

	case movement == MoveDown && (s.list.ShouldLoop() || s.at < s.lastSelectable):
		s.at = s.nextSelectable()
		moved = MoveDown

	case movement == MovePageUp &&
		// without pagination PageUp degrades to Home, same when the
		// first item is already shown and the list cannot loop
		(!s.isPaginating() || (!s.list.ShouldLoop() && s.pageStart == 0)):
		if s.at <= s.firstSelectable {
			return false
		}
		s.at = s.firstSelectable
		moved = MoveUp

	case movement == MovePageUp:
		// keep the current at visible after the jump, ideally as the
		// bottom-most element: step back by one so that adjustPage,
		// which seats at as the second-to-last element, leaves the old
		// at as the last one visible
		if i, ok := s.tryGetIndex(-1); ok {
			s.at = i
		}
		s.adjustPage(MoveDown)

		if s.pageStart == 0 && !s.list.ShouldLoop() {
			// hit the top; the bounds used above may have left pageEnd
			// wrong, so recompute from scratch
			s.at = s.firstSelectable
			s.initPage()
		} else {
			// seat at on the new window start, then advance to the
			// next selectable element so it is not the top-most one
			s.at = s.pageStart
			s.at = s.nextSelectable()
		}

		moved = MoveUp

	case movement == MovePageDown &&
		(!s.isPaginating() || (!s.list.ShouldLoop() && s.pageEnd+1 == s.list.Len())):
		if s.at >= s.lastSelectable {
			return false
		}
		s.at = s.lastSelectable
		moved = MoveDown

	case movement == MovePageDown:
		// mirror of PageUp: overshoot by one so the old at stays
		// visible as the top-most element
		if i, ok := s.tryGetIndex(1); ok {
			s.at = i
		}
		s.adjustPage(MoveUp)

		if s.pageEnd+1 == s.list.Len() {
			// hit the bottom; recompute the window anchored at the end
			s.at = s.pageEnd
			s.adjustPage(MoveDown)
			s.at = s.lastSelectable
		} else {
			s.at = s.pageEnd
			s.at = s.prevSelectable()
		}

		moved = MoveDown

	case movement == MoveHome && s.at != s.firstSelectable:
		s.at = s.firstSelectable
		moved = MoveUp

	case movement == MoveEnd && s.at != s.lastSelectable:
		s.at = s.lastSelectable
		moved = MoveDown

	default:
		return false
	}

	if s.isPaginating() {
		s.tryAdjustPage(moved)
	}

	return true
}
