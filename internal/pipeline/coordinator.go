// Package pipeline owns the current photograph and runs analyses against
// it, recording successful readings in the logbook.
package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"

	"o3meter/internal/analysis"
	"o3meter/internal/logbook"
	"o3meter/internal/logger"
)

// ErrAnalysisInProgress means a computation is already outstanding for the
// loaded image. At most one runs at a time; overlapping computations on the
// same buffer are meaningless.
var ErrAnalysisInProgress = errors.New("an analysis is already running")

// ErrNoImageLoaded means an analysis was requested before any image load.
var ErrNoImageLoaded = errors.New("no image loaded")

// Coordinator ties loading, analysis and logging together around the
// currently loaded image.
type Coordinator struct {
	mu      sync.RWMutex
	current *ImageData

	busy atomic.Bool

	loader   *Loader
	analyzer *analysis.Analyzer
	book     *logbook.Book
	logger   logger.Logger
}

// NewCoordinator assembles the pipeline.
func NewCoordinator(loader *Loader, analyzer *analysis.Analyzer, book *logbook.Book, log logger.Logger) *Coordinator {
	return &Coordinator{
		loader:   loader,
		analyzer: analyzer,
		book:     book,
		logger:   log,
	}
}

// LoadFromReader loads a new image from a file dialog reader and makes it
// the current one.
func (c *Coordinator) LoadFromReader(ctx context.Context, reader fyne.URIReadCloser) (*ImageData, error) {
	imageData, err := c.loader.LoadFromReader(ctx, reader)
	if err != nil {
		return nil, err
	}
	c.setCurrent(imageData)
	return imageData, nil
}

// LoadFromPath loads a new image from a file path and makes it the current
// one.
func (c *Coordinator) LoadFromPath(ctx context.Context, path string) (*ImageData, error) {
	imageData, err := c.loader.LoadFromPath(ctx, path)
	if err != nil {
		return nil, err
	}
	c.setCurrent(imageData)
	return imageData, nil
}

func (c *Coordinator) setCurrent(imageData *ImageData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = imageData
}

// Current returns the loaded image, or nil.
func (c *Coordinator) Current() *ImageData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// AnalyzeWholeImage reduces the whole current image to an ozone reading.
func (c *Coordinator) AnalyzeWholeImage() <-chan analysis.Outcome {
	return c.analyze(nil)
}

// AnalyzeRegion reduces the given buffer-coordinate rectangle of the
// current image to an ozone reading.
func (c *Coordinator) AnalyzeRegion(region analysis.Region) <-chan analysis.Outcome {
	return c.analyze(&region)
}

// analyze launches the one-shot computation. The returned channel delivers
// exactly one outcome once the computation is complete; successful readings
// are appended to the logbook before delivery.
func (c *Coordinator) analyze(region *analysis.Region) <-chan analysis.Outcome {
	done := make(chan analysis.Outcome, 1)

	imageData := c.Current()
	if imageData == nil {
		done <- analysis.Outcome{Err: ErrNoImageLoaded}
		return done
	}

	if !c.busy.CompareAndSwap(false, true) {
		done <- analysis.Outcome{Err: ErrAnalysisInProgress}
		return done
	}

	go func() {
		defer c.busy.Store(false)

		outcome := <-c.analyzer.Go(imageData.Image, region)
		if outcome.Err != nil {
			c.logger.Error("Coordinator", outcome.Err, map[string]interface{}{
				"path": imageData.Path,
			})
			done <- outcome
			return
		}

		result := outcome.Result
		c.logger.Info("Coordinator", "analysis complete", map[string]interface{}{
			"path":       imageData.Path,
			"value":      result.Value,
			"hue":        result.Hue,
			"candidates": result.Candidates,
			"relaxed":    result.Relaxed,
			"unfiltered": result.Unfiltered,
			"elapsed_ms": result.Elapsed.Milliseconds(),
			"region":     region != nil,
		})

		if err := c.book.Record(imageData.Path, result.Value); err != nil {
			c.logger.Warning("Coordinator", "logbook append failed", map[string]interface{}{
				"error": err.Error(),
			})
		}

		done <- outcome
	}()

	return done
}
