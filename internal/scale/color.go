package scale

import "image/color"

// HSVToRGB converts an HSV triple (hue 0-359, saturation and value 0-255)
// to RGB with 0-255 channels.
func HSVToRGB(h, s, v int) (r, g, b uint8) {
	if s == 0 {
		return uint8(v), uint8(v), uint8(v)
	}

	hf := float64(h) / 60.0
	sector := int(hf) % 6
	f := hf - float64(int(hf))

	vf := float64(v)
	p := vf * (1 - float64(s)/255.0)
	q := vf * (1 - float64(s)/255.0*f)
	t := vf * (1 - float64(s)/255.0*(1-f))

	var rf, gf, bf float64
	switch sector {
	case 0:
		rf, gf, bf = vf, t, p
	case 1:
		rf, gf, bf = q, vf, p
	case 2:
		rf, gf, bf = p, vf, t
	case 3:
		rf, gf, bf = p, q, vf
	case 4:
		rf, gf, bf = t, p, vf
	default:
		rf, gf, bf = vf, p, q
	}

	return uint8(rf + 0.5), uint8(gf + 0.5), uint8(bf + 0.5)
}

// ValueColor returns the fully saturated display color for an ozone scale
// value, used for the readout swatch and the scale bar gradient.
func ValueColor(value int) color.RGBA {
	r, g, b := HSVToRGB(ScaleToHue(value), 255, 255)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// GradientColor returns the scale bar color at horizontal fraction t in
// [0,1]. The bar runs yellow through red and magenta to blue, which is the
// continuous form of the strip's hue progression.
func GradientColor(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return ValueColor(int(t * float64(Max)))
}
