package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info().Str("company", "Acme Corp").Msg("extraction complete")

	out := buf.String()
	if !strings.Contains(out, "extraction complete") {
		t.Errorf("Expected message in output, got %q", out)
	}
	if !strings.Contains(out, "Acme Corp") {
		t.Errorf("Expected field in output, got %q", out)
	}
}
