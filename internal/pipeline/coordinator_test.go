package pipeline

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"o3meter/internal/analysis"
	"o3meter/internal/logbook"
	"o3meter/internal/logger"
)

func testCoordinator(t *testing.T) (*Coordinator, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "ozone.log")
	c := NewCoordinator(
		nil,
		analysis.NewAnalyzer(analysis.DefaultConfig()),
		logbook.New(logPath),
		logger.NoOp{},
	)
	return c, logPath
}

func loadTestImage(c *Coordinator, w, h int, col color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, col)
		}
	}
	c.setCurrent(&ImageData{
		Image:  img,
		Width:  w,
		Height: h,
		Path:   "/photos/strip.jpg",
	})
}

func TestAnalyzeWithoutImageFails(t *testing.T) {
	c, _ := testCoordinator(t)

	outcome := <-c.AnalyzeWholeImage()
	if !errors.Is(outcome.Err, ErrNoImageLoaded) {
		t.Fatalf("expected ErrNoImageLoaded, got %v", outcome.Err)
	}
}

func TestAnalyzeWholeImageRecordsReading(t *testing.T) {
	c, logPath := testCoordinator(t)
	loadTestImage(c, 20, 20, color.RGBA{120, 60, 30, 255})

	outcome := <-c.AnalyzeWholeImage()
	if outcome.Err != nil {
		t.Fatalf("analysis failed: %v", outcome.Err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("logbook not written: %v", err)
	}
	line := strings.TrimSpace(string(data))
	if !strings.HasPrefix(line, "/photos/strip.jpg ") {
		t.Errorf("unexpected logbook line: %q", line)
	}
}

func TestAnalyzeRegionUsesSelection(t *testing.T) {
	c, _ := testCoordinator(t)
	loadTestImage(c, 20, 20, color.RGBA{30, 30, 30, 255})

	outcome := <-c.AnalyzeRegion(analysis.Region{X0: 0, Y0: 0, X1: 5, Y1: 5})
	if outcome.Err != nil {
		t.Fatalf("analysis failed: %v", outcome.Err)
	}
	if outcome.Result.Candidates != 25 {
		t.Errorf("expected 25 pixels from the region, got %d", outcome.Result.Candidates)
	}
}

func TestFailedAnalysisDoesNotTouchLogbook(t *testing.T) {
	c, logPath := testCoordinator(t)
	loadTestImage(c, 10, 10, color.RGBA{50, 50, 50, 255})

	outcome := <-c.AnalyzeRegion(analysis.Region{X0: 3, Y0: 3, X1: 3, Y1: 3})
	if outcome.Err == nil {
		t.Fatal("expected empty-region failure")
	}

	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Error("logbook written despite failed analysis")
	}
}

func TestBusyFlagClearsAfterAnalysis(t *testing.T) {
	c, _ := testCoordinator(t)
	loadTestImage(c, 20, 20, color.RGBA{80, 40, 20, 255})

	if outcome := <-c.AnalyzeWholeImage(); outcome.Err != nil {
		t.Fatalf("first analysis failed: %v", outcome.Err)
	}
	if outcome := <-c.AnalyzeWholeImage(); outcome.Err != nil {
		t.Fatalf("second analysis failed: %v", outcome.Err)
	}
}
