package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dino/internal/audio"
	"github.com/vovakirdan/tui-dino/internal/game"
)

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestObserverLogsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dino.log")
	logger, closer, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}

	observe := newObserver(logger, audio.Silent())
	observe(game.StepResult{
		Events: []game.Event{
			{Kind: game.EventStarted},
			{Kind: game.EventScored, Score: 3, Retired: 1},
			{Kind: game.EventCrashed, Score: 3},
		},
		State: game.State{SessionID: "abc-123", Mode: game.ModeEnded, Score: 3},
	})
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"started", "scored", "crashed", "session=abc-123", "retired=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestDiscardLoggerByDefault(t *testing.T) {
	logger, closer, err := newLogger("", "info")
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	defer closer.Close()
	logger.Info("dropped")
}
