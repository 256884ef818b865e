package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bergsving-collective/Ramoti-Website/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	l, err := NewLogger(config.ColorNever, "")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "gallery-tools.log")
	l, err := NewLogger(config.ColorNever, logFile)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	l.Rename("old.jpg -> new.jpg")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(logFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if !bytes.Contains(b, []byte("[RENAME]")) {
		t.Errorf("log file missing RENAME line: %s", string(b))
	}
}

func TestNewLogger_CreatesLogDir(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "nested", "run.log")
	l, err := NewLogger(config.ColorNever, logFile)
	if err != nil {
		t.Fatal(err)
	}
	l.Warn("nested sink")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
