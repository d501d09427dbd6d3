package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConsoleOnly(t *testing.T) {
	log, err := New(Options{Level: LevelInfo})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log == nil {
		t.Fatal("expected non-nil logger")
	}
	log.Info("hello")
	_ = log.Sync()
}

func TestNewWithFileSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tt.log")
	log, err := New(Options{Level: LevelWarn, File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Warn("something happened")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty log file")
	}
}

func TestLevelZapLevel(t *testing.T) {
	if LevelInfo.zapLevel().String() != "info" {
		t.Errorf("LevelInfo.zapLevel() = %v", LevelInfo.zapLevel())
	}
	if LevelWarn.zapLevel().String() != "warn" {
		t.Errorf("LevelWarn.zapLevel() = %v", LevelWarn.zapLevel())
	}
	if LevelError.zapLevel().String() != "error" {
		t.Errorf("LevelError.zapLevel() = %v", LevelError.zapLevel())
	}
}
