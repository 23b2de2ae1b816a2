// Package logbook appends analysis results to a plain-text log file, one
// line per analysis: "<file-path> <scale-value>".
package logbook

import (
	"fmt"
	"os"
	"sync"
)

// DefaultPath is the log file written next to the working directory unless
// O3METER_LOG overrides it.
const DefaultPath = "ozone.log"

// Book is an append-only recorder of analysis results. A single mutex keeps
// appends atomic; entries are only written for successful analyses.
type Book struct {
	mu   sync.Mutex
	path string
}

// New creates a logbook writing to the given path, falling back to
// DefaultPath when empty.
func New(path string) *Book {
	if path == "" {
		path = DefaultPath
	}
	return &Book{path: path}
}

// PathFromEnv resolves the logbook location from the environment.
func PathFromEnv() string {
	if p := os.Getenv("O3METER_LOG"); p != "" {
		return p
	}
	return DefaultPath
}

// Path returns the log file location.
func (b *Book) Path() string {
	return b.path
}

// Record appends one analysis line.
func (b *Book) Record(filePath string, value int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file %s: %w", b.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s %d\n", filePath, value); err != nil {
		return fmt.Errorf("cannot append to log file %s: %w", b.path, err)
	}
	return nil
}
