package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Analyzer", "analysis complete", map[string]interface{}{
		"value": 42,
	})

	out := buf.String()
	for _, want := range []string{`"component":"Analyzer"`, `"value":42`, "analysis complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("log entry missing %q: %s", want, out)
		}
	}
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Debug("Analyzer", "should be suppressed", nil)
	if buf.Len() != 0 {
		t.Errorf("debug entry emitted below threshold: %s", buf.String())
	}
}

func TestZerologAdapterErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Error("Loader", errors.New("decode failed"), nil)
	if !strings.Contains(buf.String(), "decode failed") {
		t.Errorf("error entry missing cause: %s", buf.String())
	}
}
