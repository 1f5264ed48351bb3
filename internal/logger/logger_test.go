package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestHandler_WritesToFileAndConsole(t *testing.T) {
	var file, console bytes.Buffer
	cfg := DefaultConfig()
	cfg.Dev = false

	log := slog.New(newHandler(cfg, &file, &console)).With(slog.String("component", "test"))
	log.Info("task listed", slog.Int("count", 3))
	log.Debug("hidden")

	var entry map[string]any
	if err := json.Unmarshal(file.Bytes(), &entry); err != nil {
		t.Fatalf("file output is not a single JSON line: %v\n%s", err, file.String())
	}
	if entry["msg"] != "task listed" || entry["component"] != "test" || entry["count"] != float64(3) {
		t.Errorf("unexpected file entry: %v", entry)
	}

	if !strings.Contains(console.String(), "task listed") {
		t.Errorf("console output missing message: %q", console.String())
	}
	if strings.Contains(file.String()+console.String(), "hidden") {
		t.Error("debug record written at info level")
	}
}

func TestHandler_DevConsole(t *testing.T) {
	var file, console bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = slog.LevelDebug

	slog.New(newHandler(cfg, &file, &console)).Debug("filters applied")

	if !strings.Contains(console.String(), "filters applied") {
		t.Errorf("tint console missing message: %q", console.String())
	}
	if !strings.Contains(file.String(), `"level":"DEBUG"`) {
		t.Errorf("file missing debug entry: %q", file.String())
	}
}
