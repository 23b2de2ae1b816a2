package analysis

import (
	"image"
	"time"

	"gonum.org/v1/gonum/stat"

	"o3meter/internal/scale"
)

// Result is the outcome of a single strip analysis.
type Result struct {
	// Value is the ozone scale reading in [0,180].
	Value int

	// Hue is the HSV hue of the mean color, 0-359.
	Hue int

	// MeanR, MeanG, MeanB are the truncated channel means of the selected
	// pixels.
	MeanR, MeanG, MeanB int

	// Candidates is the number of pixels that contributed to the mean.
	Candidates int

	// Relaxed reports that the relaxed brightness cutoff was used.
	Relaxed bool

	// Unfiltered reports that the degenerate-selection fallback computed
	// an unfiltered whole-image mean.
	Unfiltered bool

	Elapsed time.Duration
}

// Outcome pairs a result with its error for delivery over a channel.
type Outcome struct {
	Result Result
	Err    error
}

// Analyzer computes ozone scale readings from images. It holds only the
// selection thresholds; every analysis is a pure function of the image and
// the optional region.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates an analyzer with the given selection thresholds.
func NewAnalyzer(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// Config returns the analyzer's selection thresholds.
func (a *Analyzer) Config() Config {
	return a.config
}

// Analyze computes the ozone scale value for the image. With a nil region
// the whole image is reduced using brightness filtering; with a region the
// mean is taken over every pixel of the rectangle.
func (a *Analyzer) Analyze(img image.Image, region *Region) (Result, error) {
	start := time.Now()

	if img == nil {
		return Result{}, ErrNoImage
	}

	var result Result
	var err error
	if region == nil {
		result, err = a.meanOfWholeImage(img)
	} else {
		result, err = a.meanOfRegion(img, *region)
	}
	if err != nil {
		return Result{}, err
	}

	result.Hue = scale.HueOf(result.MeanR, result.MeanG, result.MeanB)
	result.Value = scale.HueToScale(result.Hue)
	result.Elapsed = time.Since(start)
	return result, nil
}

// Go runs Analyze on its own goroutine and delivers exactly one outcome on
// the returned channel. There is no queue and no cancellation: the transform
// is a one-shot task that is fast once started, and the consumer only
// observes the result after it completes.
func (a *Analyzer) Go(img image.Image, region *Region) <-chan Outcome {
	done := make(chan Outcome, 1)
	go func() {
		result, err := a.Analyze(img, region)
		done <- Outcome{Result: result, Err: err}
	}()
	return done
}

// meanOfWholeImage filters out near-white background pixels and averages the
// rest. Too few candidates triggers the relaxed cutoff; zero candidates
// after relaxation is the degenerate case resolved by the configured policy.
func (a *Analyzer) meanOfWholeImage(img image.Image) (Result, error) {
	rs, gs, bs := collectCandidates(img, a.config.BrightCutoff)

	result := Result{}
	if len(rs) < a.config.MinCandidates {
		rs, gs, bs = collectCandidates(img, a.config.RelaxedCutoff)
		result.Relaxed = true
	}

	if len(rs) == 0 {
		if !a.config.FallbackUnfiltered {
			return Result{}, ErrNoQualifyingPixels
		}
		// 256 admits every 8-bit pixel, turning the pass into a plain mean.
		rs, gs, bs = collectCandidates(img, 256)
		result.Unfiltered = true
		if len(rs) == 0 {
			return Result{}, ErrNoQualifyingPixels
		}
	}

	result.Candidates = len(rs)
	result.MeanR = int(stat.Mean(rs, nil))
	result.MeanG = int(stat.Mean(gs, nil))
	result.MeanB = int(stat.Mean(bs, nil))
	return result, nil
}

// meanOfRegion averages every pixel of the rectangle without filtering.
func (a *Analyzer) meanOfRegion(img image.Image, region Region) (Result, error) {
	bounds := img.Bounds()
	// Region coordinates are zero-based relative to the buffer origin.
	region = region.Normalized().Clamped(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if region.Empty() {
		return Result{}, ErrEmptyRegion
	}

	n := region.PixelCount()
	rs := make([]float64, 0, n)
	gs := make([]float64, 0, n)
	bs := make([]float64, 0, n)
	for y := region.Y0; y < region.Y1; y++ {
		for x := region.X0; x < region.X1; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			rs = append(rs, float64(r>>8))
			gs = append(gs, float64(g>>8))
			bs = append(bs, float64(b>>8))
		}
	}

	return Result{
		Candidates: n,
		MeanR:      int(stat.Mean(rs, nil)),
		MeanG:      int(stat.Mean(gs, nil)),
		MeanB:      int(stat.Mean(bs, nil)),
	}, nil
}

// collectCandidates gathers the channel values of every pixel whose maximum
// channel is below the cutoff.
func collectCandidates(img image.Image, cutoff int) (rs, gs, bs []float64) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r := int(r16 >> 8)
			g := int(g16 >> 8)
			b := int(b16 >> 8)

			maxc := r
			if g > maxc {
				maxc = g
			}
			if b > maxc {
				maxc = b
			}
			if maxc >= cutoff {
				continue
			}

			rs = append(rs, float64(r))
			gs = append(gs, float64(g))
			bs = append(bs, float64(b))
		}
	}
	return rs, gs, bs
}
