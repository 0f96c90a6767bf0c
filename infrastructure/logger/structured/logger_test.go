package structured

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "info", Format: "json", Output: &buf})

	logger.Info("Translation decided", map[string]interface{}{
		"poi":    "Tokyo Tower",
		"status": "found",
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "Translation decided" || entry["poi"] != "Tokyo Tower" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "warn", Format: "json", Output: &buf})

	logger.Debug("debug", nil)
	logger.Info("info", nil)
	if buf.Len() != 0 {
		t.Errorf("messages below warn were written: %s", buf.String())
	}

	logger.Warn("warn", nil)
	logger.Error("error", map[string]interface{}{"error": "boom"})
	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("wrote %d lines, want 2", got)
	}
}

func TestLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "chatty", Output: &buf})

	logger.Debug("hidden", nil)
	logger.Info("shown", nil)
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %s", buf.String())
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Format: "text", Output: &buf})

	logger.Info("Translating POI", map[string]interface{}{"language": "JA-JP"})
	if !strings.Contains(buf.String(), "language=JA-JP") {
		t.Errorf("output = %s", buf.String())
	}
}

func TestLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	var buf bytes.Buffer
	logger := NewLogger(Options{Output: &buf, File: path, MaxSizeMB: 1})

	logger.Info("written twice", nil)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "written twice") || !strings.Contains(buf.String(), "written twice") {
		t.Errorf("file = %s, stdout = %s", data, buf.String())
	}
}
