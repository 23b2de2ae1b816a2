// Package scale implements the conversion between HSV hue values and the
// ozone scale used by colorimetric test strips.
//
// The hue of a developed strip moves from yellow (no ozone) through red and
// magenta to blue (maximum measurable ozone). The usable hue values are
// therefore two arcs of the color wheel, [60..0] followed by [359..240],
// which map onto the single scale range [0..180].
package scale

// Max is the upper bound of the ozone scale.
const Max = 180

// HueMax is the upper bound of the hue domain.
const HueMax = 359

// HueToScale maps an HSV hue value (0-359) to an ozone scale value.
// The mapping is a piecewise reflection: hue 60..0 covers scale 0..60 and
// hue 359..240 covers scale 61..180. Hues inside the gap (61..239) do not
// occur on a valid strip; the same formula is applied to them regardless.
func HueToScale(hue int) int {
	if hue <= 60 {
		return 60 - hue
	}
	return (359 - hue) + 61
}

// ScaleToHue recovers the hue for a scale value. The conversion is its own
// inverse by construction, so the same piecewise formula is reused.
func ScaleToHue(value int) int {
	return HueToScale(value)
}

// HueOf extracts the HSV hue (0-359) from an RGB triple with 0-255 channels.
// Achromatic triples (max == min) have no defined hue and yield 0.
func HueOf(r, g, b int) int {
	maxC := max3(r, g, b)
	minC := min3(r, g, b)
	diff := maxC - minC
	if diff == 0 {
		return 0
	}

	var h float64
	switch maxC {
	case r:
		h = 60 * float64(g-b) / float64(diff)
	case g:
		h = 60 * (float64(b-r)/float64(diff) + 2)
	default:
		h = 60 * (float64(r-g)/float64(diff) + 4)
	}

	if h < 0 {
		h += 360
	}

	hue := int(h + 0.5)
	if hue > HueMax {
		hue = HueMax
	}
	return hue
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
