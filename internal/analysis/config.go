// Package analysis reduces a photographed test strip to a single ozone
// scale value: it selects qualifying pixels, averages their channels and
// converts the mean color's hue to the scale.
package analysis

// Config holds the pixel selection thresholds. The cutoffs are empirical
// values tuned for the strip photography setup and are kept as named,
// tunable fields rather than inline literals.
type Config struct {
	// BrightCutoff rejects near-white pixels in whole-image mode: a pixel
	// qualifies when max(R,G,B) is below this value, which keeps the strip
	// against its bright background.
	BrightCutoff int

	// RelaxedCutoff replaces BrightCutoff when an overly bright photo
	// yields too few candidates.
	RelaxedCutoff int

	// MinCandidates is the candidate count below which the selection is
	// rerun with RelaxedCutoff.
	MinCandidates int

	// FallbackUnfiltered controls the degenerate case where even the
	// relaxed selection matches nothing: when true the whole-image mean is
	// computed without filtering, when false the analysis fails with
	// ErrNoQualifyingPixels.
	FallbackUnfiltered bool
}

// DefaultConfig returns the selection thresholds used by the application.
func DefaultConfig() Config {
	return Config{
		BrightCutoff:       150,
		RelaxedCutoff:      250,
		MinCandidates:      100,
		FallbackUnfiltered: true,
	}
}
