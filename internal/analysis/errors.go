package analysis

import "errors"

var (
	// ErrNoImage means the analyzer was invoked without a loaded image.
	ErrNoImage = errors.New("no image to analyze")

	// ErrEmptyRegion means the selection rectangle covers no pixels.
	ErrEmptyRegion = errors.New("selection covers no pixels")

	// ErrNoQualifyingPixels means whole-image selection matched nothing
	// even with the relaxed brightness cutoff and unfiltered fallback is
	// disabled.
	ErrNoQualifyingPixels = errors.New("no qualifying pixels in image")
)
