package rawdecode

import (
	"context"
	"errors"
	"testing"
)

func TestIsRawFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"strip.cr2", true},
		{"STRIP.CR2", true},
		{"photo.nef", true},
		{"photo.dng", true},
		{"photo.jpg", false},
		{"photo.png", false},
		{"noext", false},
	}

	for _, tc := range cases {
		if got := IsRawFile(tc.path); got != tc.want {
			t.Errorf("IsRawFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestDevelopReportsMissingDecoder(t *testing.T) {
	d := &Decoder{
		lookPath: func(string) (string, error) {
			return "", errors.New("not found")
		},
	}

	if d.Available() {
		t.Error("decoder should not be available")
	}

	_, err := d.Develop(context.Background(), "strip.cr2")
	if !errors.Is(err, ErrDecoderUnavailable) {
		t.Fatalf("expected ErrDecoderUnavailable, got %v", err)
	}
}

func TestDevelopInvokesDecoderWithStripFlags(t *testing.T) {
	var gotBin string
	var gotArgs []string

	d := &Decoder{
		lookPath: func(string) (string, error) { return "/usr/bin/dcraw", nil },
		run: func(ctx context.Context, bin string, args ...string) ([]byte, error) {
			gotBin = bin
			gotArgs = args
			return []byte("P6 ..."), nil
		},
	}

	data, err := d.Develop(context.Background(), "/photos/strip.cr2")
	if err != nil {
		t.Fatalf("Develop failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected decoder output")
	}
	if gotBin != "/usr/bin/dcraw" {
		t.Errorf("wrong binary: %s", gotBin)
	}

	want := []string{"-c", "-w", "-b", "2.0", "/photos/strip.cr2"}
	if len(gotArgs) != len(want) {
		t.Fatalf("args = %v, want %v", gotArgs, want)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Fatalf("args = %v, want %v", gotArgs, want)
		}
	}
}

func TestDevelopRejectsEmptyOutput(t *testing.T) {
	d := &Decoder{
		lookPath: func(string) (string, error) { return "/usr/bin/dcraw", nil },
		run: func(ctx context.Context, bin string, args ...string) ([]byte, error) {
			return nil, nil
		},
	}

	if _, err := d.Develop(context.Background(), "strip.cr2"); err == nil {
		t.Fatal("expected error for empty decoder output")
	}
}
