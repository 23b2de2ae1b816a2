package logbook

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestRecordAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ozone.log")
	book := New(path)

	if err := book.Record("/photos/strip1.jpg", 42); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := book.Record("/photos/strip2.cr2", 180); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read log: %v", err)
	}

	want := "/photos/strip1.jpg 42\n/photos/strip2.cr2 180\n"
	if string(data) != want {
		t.Errorf("log content = %q, want %q", data, want)
	}
}

func TestRecordCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.log")
	book := New(path)

	if err := book.Record("a.png", 0); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestRecordConcurrentAppendsKeepLinesIntact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ozone.log")
	book := New(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			if err := book.Record("strip.jpg", v); err != nil {
				t.Errorf("Record failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read log: %v", err)
	}

	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 20 {
		t.Errorf("expected 20 complete lines, got %d", lines)
	}
}

func TestNewDefaultsPath(t *testing.T) {
	if New("").Path() != DefaultPath {
		t.Error("empty path should fall back to the default")
	}
}
