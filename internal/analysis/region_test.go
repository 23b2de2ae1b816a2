package analysis

import (
	"image"
	"testing"
)

func TestRegionFromDisplayScalesToBuffer(t *testing.T) {
	// 10x10 buffer shown at 20x20: display coordinates are halved and the
	// max corner is extended by one pixel.
	r := RegionFromDisplay(4, 4, 8, 8, 20, 20, 10, 10)

	want := Region{X0: 2, Y0: 2, X1: 5, Y1: 5}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
}

func TestRegionFromDisplayErrsTowardInclusion(t *testing.T) {
	// A drag from display (3,3) to (7,7) on a 10x10 buffer shown at 20x20
	// nominally covers buffer pixels 1.5..3.5; the mapped region must
	// include at least pixels 1..3 on each axis.
	r := RegionFromDisplay(3, 3, 7, 7, 20, 20, 10, 10)

	if r.X0 > 1 || r.Y0 > 1 {
		t.Errorf("minimum corner excluded nominal pixels: %+v", r)
	}
	if r.X1 < 4 || r.Y1 < 4 {
		t.Errorf("maximum corner excluded nominal pixels: %+v", r)
	}
}

func TestRegionFromDisplayDegenerateDragIsNonEmpty(t *testing.T) {
	// A click without movement still selects the pixel under the cursor.
	r := RegionFromDisplay(5, 5, 5, 5, 20, 20, 10, 10)
	if r.Empty() {
		t.Errorf("zero-size drag produced an empty region: %+v", r)
	}
}

func TestRegionFromDisplayNormalizesCorners(t *testing.T) {
	forward := RegionFromDisplay(4, 4, 8, 8, 20, 20, 10, 10)
	backward := RegionFromDisplay(8, 8, 4, 4, 20, 20, 10, 10)
	if forward != backward {
		t.Errorf("drag direction changed the region: %+v vs %+v", forward, backward)
	}
}

func TestRegionFromDisplayClampsToBufferBounds(t *testing.T) {
	r := RegionFromDisplay(-5, -5, 30, 30, 20, 20, 10, 10)

	want := Region{X0: 0, Y0: 0, X1: 10, Y1: 10}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
}

func TestRegionFromDisplayZeroDisplaySize(t *testing.T) {
	r := RegionFromDisplay(0, 0, 5, 5, 0, 0, 10, 10)
	if !r.Empty() {
		t.Errorf("expected empty region for zero display size, got %+v", r)
	}
}

func TestRegionClamped(t *testing.T) {
	r := Region{X0: -3, Y0: 2, X1: 15, Y1: 8}.Clamped(image.Rect(0, 0, 10, 10))
	want := Region{X0: 0, Y0: 2, X1: 10, Y1: 8}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
}

func TestRegionPixelCount(t *testing.T) {
	if n := (Region{X0: 2, Y0: 3, X1: 5, Y1: 7}).PixelCount(); n != 12 {
		t.Errorf("expected 12 pixels, got %d", n)
	}
	if n := (Region{X0: 5, Y0: 5, X1: 5, Y1: 9}).PixelCount(); n != 0 {
		t.Errorf("expected 0 pixels for empty region, got %d", n)
	}
}
