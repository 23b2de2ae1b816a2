package scale

import "testing"

func TestHueToScaleBoundaries(t *testing.T) {
	cases := []struct {
		hue  int
		want int
	}{
		{0, 60},
		{60, 0},
		{30, 30},
		{240, 180},
		{359, 61},
		{300, 120},
	}

	for _, tc := range cases {
		if got := HueToScale(tc.hue); got != tc.want {
			t.Errorf("HueToScale(%d) = %d, want %d", tc.hue, got, tc.want)
		}
	}
}

func TestScaleConversionIsSelfInverse(t *testing.T) {
	// The involution holds on the hue arcs a strip can actually produce:
	// yellow to red [0..60] and magenta to blue [240..359].
	for hue := 0; hue <= 60; hue++ {
		if got := ScaleToHue(HueToScale(hue)); got != hue {
			t.Errorf("round trip for hue %d yielded %d", hue, got)
		}
	}
	for hue := 240; hue <= 359; hue++ {
		if got := ScaleToHue(HueToScale(hue)); got != hue {
			t.Errorf("round trip for hue %d yielded %d", hue, got)
		}
	}
}

func TestHueToScaleCoversFullRange(t *testing.T) {
	seen := make(map[int]bool)
	for hue := 0; hue <= 60; hue++ {
		seen[HueToScale(hue)] = true
	}
	for hue := 240; hue <= 359; hue++ {
		seen[HueToScale(hue)] = true
	}
	for v := 0; v <= Max; v++ {
		if !seen[v] {
			t.Errorf("scale value %d is never produced", v)
		}
	}
}

func TestHueToScaleMonotonicOnYellowArc(t *testing.T) {
	for hue := 1; hue <= 60; hue++ {
		if HueToScale(hue) >= HueToScale(hue-1) {
			t.Fatalf("scale not decreasing between hue %d and %d", hue-1, hue)
		}
	}
}

func TestHueOf(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b int
		want    int
	}{
		{"red", 255, 0, 0, 0},
		{"yellow", 255, 255, 0, 60},
		{"green", 0, 255, 0, 120},
		{"cyan", 0, 255, 255, 180},
		{"blue", 0, 0, 255, 240},
		{"magenta", 255, 0, 255, 300},
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 0},
		{"gray", 128, 128, 128, 0},
		{"orange", 255, 128, 0, 30},
	}

	for _, tc := range cases {
		if got := HueOf(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("%s: HueOf(%d,%d,%d) = %d, want %d",
				tc.name, tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestGrayMapsToScaleSixty(t *testing.T) {
	// An achromatic mean has no hue; the convention is hue 0 which lands on
	// scale value 60.
	if got := HueToScale(HueOf(77, 77, 77)); got != 60 {
		t.Errorf("gray triple mapped to scale %d, want 60", got)
	}
}

func TestHSVToRGBPrimaries(t *testing.T) {
	cases := []struct {
		hue     int
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{60, 255, 255, 0},
		{120, 0, 255, 0},
		{180, 0, 255, 255},
		{240, 0, 0, 255},
		{300, 255, 0, 255},
	}

	for _, tc := range cases {
		r, g, b := HSVToRGB(tc.hue, 255, 255)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("HSVToRGB(%d) = (%d,%d,%d), want (%d,%d,%d)",
				tc.hue, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestHSVToRGBRoundTripsThroughHueOf(t *testing.T) {
	for hue := 0; hue < 360; hue += 3 {
		r, g, b := HSVToRGB(hue, 255, 255)
		if got := HueOf(int(r), int(g), int(b)); got != hue {
			t.Errorf("hue %d round-tripped to %d via RGB (%d,%d,%d)",
				hue, got, r, g, b)
		}
	}
}

func TestValueColorEndpoints(t *testing.T) {
	yellow := ValueColor(0)
	if yellow.R != 255 || yellow.G != 255 || yellow.B != 0 {
		t.Errorf("scale 0 should render yellow, got %+v", yellow)
	}
	blue := ValueColor(Max)
	if blue.R != 0 || blue.G != 0 || blue.B != 255 {
		t.Errorf("scale 180 should render blue, got %+v", blue)
	}
}
