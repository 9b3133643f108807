package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithoutPathIsNoop(t *testing.T) {
	logger, err := New("", "debug")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("dropped")
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tasklite.log")
	logger, err := New(path, "info")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("below level")
	logger.Info("tasks loaded")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, `"msg":"tasks loaded"`) {
		t.Fatalf("expected info entry in log: %q", out)
	}
	if strings.Contains(out, "below level") {
		t.Fatalf("debug entry should be filtered: %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "x.log"), "chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
