// Package rawdecode develops RAW camera files by invoking the external
// dcraw binary. dcraw writes a PPM stream to stdout which the vision
// package decodes; the binary's absence is a distinct, reportable error
// rather than a crash.
package rawdecode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrDecoderUnavailable means no RAW decoder binary is installed.
var ErrDecoderUnavailable = errors.New("raw decoder (dcraw) is not present on this system")

// DecoderName is the external binary used to develop RAW files.
const DecoderName = "dcraw"

// rawExtensions are the RAW file suffixes routed to the external decoder.
var rawExtensions = map[string]bool{
	".cr2": true,
	".nef": true,
	".arw": true,
	".dng": true,
	".orf": true,
	".rw2": true,
	".raf": true,
}

// IsRawFile reports whether the path has a RAW camera file extension.
func IsRawFile(path string) bool {
	return rawExtensions[strings.ToLower(filepath.Ext(path))]
}

// Decoder develops RAW files through an external process.
type Decoder struct {
	lookPath func(string) (string, error)
	run      func(ctx context.Context, bin string, args ...string) ([]byte, error)
}

// NewDecoder creates a decoder that shells out to dcraw.
func NewDecoder() *Decoder {
	return &Decoder{
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

// Available reports whether the external decoder binary can be found.
func (d *Decoder) Available() bool {
	_, err := d.lookPath(DecoderName)
	return err == nil
}

// Develop converts a RAW file into the bytes of a displayable image.
// The flags match the strip photography workflow: write to stdout, use the
// camera white balance, fixed brightness 2.0.
func (d *Decoder) Develop(ctx context.Context, path string) ([]byte, error) {
	bin, err := d.lookPath(DecoderName)
	if err != nil {
		return nil, ErrDecoderUnavailable
	}

	data, err := d.run(ctx, bin, "-c", "-w", "-b", "2.0", path)
	if err != nil {
		return nil, fmt.Errorf("raw development of %s failed: %w", filepath.Base(path), err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("raw decoder produced no output for %s", filepath.Base(path))
	}
	return data, nil
}

func runCommand(ctx context.Context, bin string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
