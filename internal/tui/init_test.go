package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/allot/internal/allotment"
	"github.com/javiermolinar/allot/internal/config"
)

func TestDetectInitState_FirstRun(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "data", "allot.db")

	state, err := DetectInitState(cfg)
	if err != nil {
		t.Fatalf("DetectInitState failed: %v", err)
	}
	if !state.NeedsInit || !state.ConfigMissing || !state.DBMissing {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestInitializeStorage_CreatesConfigAndDB(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "data", "allot.db")

	state, err := DetectInitState(cfg)
	if err != nil {
		t.Fatalf("DetectInitState failed: %v", err)
	}

	store, err := initializeStorage(cfg, state)
	if err != nil {
		t.Fatalf("initializeStorage failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := os.Stat(state.ConfigPath); err != nil {
		t.Errorf("config not written: %v", err)
	}
	if _, err := store.Append(context.Background(), allotment.Record{Room: "101", Time: "09:30", Course: "CS101", StudentID: "A1"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	again, err := DetectInitState(cfg)
	if err != nil {
		t.Fatalf("DetectInitState failed: %v", err)
	}
	if again.NeedsInit {
		t.Errorf("expected no init after first run, got %+v", again)
	}
}

func TestOpenStore_EmptyPath(t *testing.T) {
	if _, err := openStore(""); err == nil {
		t.Fatal("expected error for empty db path")
	}
}
