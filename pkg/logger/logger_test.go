package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/admin-dashboard/internal/config"
)

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("component", "test").Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if line["service"] != "admin-dashboard" {
		t.Errorf("missing service field: %v", line)
	}
	if id, _ := line["session_id"].(string); id == "" {
		t.Errorf("missing session_id: %v", line)
	}
	if line["message"] != "hello" {
		t.Errorf("unexpected message: %v", line["message"])
	}
}

func TestOpenFile(t *testing.T) {
	w, err := OpenFile(config.LogConfig{})
	if err != nil {
		t.Fatalf("OpenFile with no name failed: %v", err)
	}
	w.Close()

	path := filepath.Join(t.TempDir(), "dash.log")
	w, err = OpenFile(config.LogConfig{File: path})
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer w.Close()
	if _, err := w.Write([]byte("x\n")); err != nil {
		t.Errorf("write failed: %v", err)
	}
}
