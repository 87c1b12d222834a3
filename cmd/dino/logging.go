package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/audio"
	"github.com/vovakirdan/tui-dino/internal/game"
	"github.com/vovakirdan/tui-dino/internal/registry"
)

// newLogger builds the process logger. An empty path discards output, since
// interactive surfaces own the terminal. The returned closer is never nil.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dino",
		Level:           lvl,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newObserver logs session events and plays their sound cues.
func newObserver(logger *log.Logger, player *audio.Player) registry.ListenerFunc {
	return func(res game.StepResult) {
		for _, ev := range res.Events {
			switch ev.Kind {
			case game.EventScored:
				logger.Debug("scored",
					"session", res.State.SessionID,
					"score", ev.Score,
					"retired", ev.Retired,
				)
			default:
				logger.Info(ev.Kind.String(),
					"session", res.State.SessionID,
					"score", ev.Score,
					"mode", res.State.Mode,
				)
			}
		}
		player.Play(res.Events)
	}
}
