package quest

import "testing"

func TestLayoutLineWidth(t *testing.T) {
	l := NewLayout(0, Size{Width: 100, Height: 20})
	if got := l.LineWidth(); got != 100 {
		t.Errorf("LineWidth() = %d, want 100", got)
	}

	l = l.WithLineOffset(10).WithOffset(5, 0)
	if got := l.LineWidth(); got != 85 {
		t.Errorf("LineWidth() = %d, want 85", got)
	}
}

func TestLayoutWithCursorPos(t *testing.T) {
	l := NewLayout(3, Size{Width: 80, Height: 24}).WithOffset(0, 4)

	l = l.WithCursorPos(7, 2)
	if l.LineOffset != 7 {
		t.Errorf("LineOffset = %d, want 7", l.LineOffset)
	}
	if l.OffsetY != 6 {
		t.Errorf("OffsetY = %d, want 6", l.OffsetY)
	}
}

func TestWrapCursor(t *testing.T) {
	tests := []struct {
		name       string
		lineOffset int
		width      int
		wantX      int
		wantY      int
	}{
		{"fits on line", 5, 10, 15, 0},
		{"exactly fills line", 5, 75, 80, 0},
		{"wraps once", 5, 80, 5, 1},
		{"wraps twice", 5, 160, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.lineOffset, Size{Width: 80, Height: 24})
			x, y := wrapCursor(l, tt.width)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("wrapCursor(width=%d) = (%d, %d), want (%d, %d)",
					tt.width, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestLayoutGetStart(t *testing.T) {
	l := NewLayout(0, Size{Width: 80, Height: 24}).WithMaxHeight(4)

	t.Run("content fits", func(t *testing.T) {
		for _, region := range []RenderRegion{RegionTop, RegionMiddle, RegionBottom} {
			if got := l.WithRenderRegion(region).GetStart(4); got != 0 {
				t.Errorf("GetStart(4) in region %d = %d, want 0", region, got)
			}
		}
	})

	t.Run("top", func(t *testing.T) {
		if got := l.WithRenderRegion(RegionTop).GetStart(10); got != 0 {
			t.Errorf("GetStart(10) = %d, want 0", got)
		}
	})

	t.Run("bottom", func(t *testing.T) {
		if got := l.WithRenderRegion(RegionBottom).GetStart(10); got != 6 {
			t.Errorf("GetStart(10) = %d, want 6", got)
		}
	})

	t.Run("middle", func(t *testing.T) {
		if got := l.WithRenderRegion(RegionMiddle).GetStart(10); got != 3 {
			t.Errorf("GetStart(10) = %d, want 3", got)
		}
	})
}
