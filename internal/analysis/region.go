package analysis

import "image"

// Region is an axis-aligned rectangle in image buffer coordinates with
// inclusive-exclusive bounds. A nil *Region means "whole image".
type Region struct {
	X0, Y0 int
	X1, Y1 int
}

// Normalized returns the region with its corners ordered so that
// (X0,Y0) <= (X1,Y1).
func (r Region) Normalized() Region {
	if r.X1 < r.X0 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Clamped limits the region to the given image bounds.
func (r Region) Clamped(bounds image.Rectangle) Region {
	if r.X0 < bounds.Min.X {
		r.X0 = bounds.Min.X
	}
	if r.Y0 < bounds.Min.Y {
		r.Y0 = bounds.Min.Y
	}
	if r.X1 > bounds.Max.X {
		r.X1 = bounds.Max.X
	}
	if r.Y1 > bounds.Max.Y {
		r.Y1 = bounds.Max.Y
	}
	return r
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// PixelCount returns the number of pixels inside the region.
func (r Region) PixelCount() int {
	if r.Empty() {
		return 0
	}
	return (r.X1 - r.X0) * (r.Y1 - r.Y0)
}

// RegionFromDisplay maps a drag rectangle expressed in display coordinates
// to buffer coordinates, using the ratio of the buffer size to the displayed
// (scaled) size. The minimum corner is floored and the maximum corner is
// extended by one pixel so rounding always errs toward inclusion.
func RegionFromDisplay(ox, oy, dx, dy float64, displayW, displayH float64, bufW, bufH int) Region {
	if displayW <= 0 || displayH <= 0 {
		return Region{}
	}

	xMin, xMax := ox, dx
	if xMax < xMin {
		xMin, xMax = xMax, xMin
	}
	yMin, yMax := oy, dy
	if yMax < yMin {
		yMin, yMax = yMax, yMin
	}

	r := Region{
		X0: int(xMin * float64(bufW) / displayW),
		Y0: int(yMin * float64(bufH) / displayH),
		X1: int(xMax*float64(bufW)/displayW) + 1,
		Y1: int(yMax*float64(bufH)/displayH) + 1,
	}
	return r.Clamped(image.Rect(0, 0, bufW, bufH))
}
