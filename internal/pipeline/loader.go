package pipeline

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"fyne.io/fyne/v2"

	"o3meter/internal/logger"
	"o3meter/internal/rawdecode"
	"o3meter/internal/vision"
)

// ImageData is a loaded photograph ready for analysis. The pixel buffer is
// immutable once loaded; analyses only read it.
type ImageData struct {
	Image    image.Image
	Width    int
	Height   int
	Format   string
	Path     string
	FileSize int64
	LoadTime time.Time
}

// Loader reads strip photographs from disk, routing RAW camera files
// through the external decoder.
type Loader struct {
	raw    *rawdecode.Decoder
	logger logger.Logger
}

// NewLoader creates a loader.
func NewLoader(raw *rawdecode.Decoder, log logger.Logger) *Loader {
	return &Loader{raw: raw, logger: log}
}

// LoadFromPath loads the image at path. RAW files are developed with the
// external decoder first; everything else goes straight to the format
// decoders.
func (l *Loader) LoadFromPath(ctx context.Context, path string) (*ImageData, error) {
	var data []byte
	var err error

	if rawdecode.IsRawFile(path) {
		l.logger.Debug("Loader", "developing raw file", map[string]interface{}{
			"path": path,
		})
		data, err = l.raw.Develop(ctx, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	return l.decode(data, path)
}

// LoadFromReader loads an image from an open file dialog reader. RAW files
// are re-routed through the external decoder using the URI path.
func (l *Loader) LoadFromReader(ctx context.Context, reader fyne.URIReadCloser) (*ImageData, error) {
	path := reader.URI().Path()
	if rawdecode.IsRawFile(path) {
		return l.LoadFromPath(ctx, path)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return l.decode(data, path)
}

func (l *Loader) decode(data []byte, path string) (*ImageData, error) {
	img, format, err := vision.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}

	bounds := img.Bounds()
	imageData := &ImageData{
		Image:    img,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   format,
		Path:     path,
		FileSize: int64(len(data)),
		LoadTime: time.Now(),
	}

	l.logger.Info("Loader", "image loaded", map[string]interface{}{
		"path":   path,
		"format": format,
		"width":  imageData.Width,
		"height": imageData.Height,
		"bytes":  imageData.FileSize,
	})

	return imageData, nil
}
