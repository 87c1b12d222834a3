package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dino/internal/audio"
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/game"
	"github.com/vovakirdan/tui-dino/internal/registry"
)

var (
	flagSurface string
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the runner on the selected surface.

Controls:
  Space / Up        - Jump (Space also starts a run)
  P                 - Pause (a paused run can only be restarted)
  R / Enter         - Start or restart
  Q / Esc / Ctrl+C  - Quit
  Ctrl+S            - Screenshot (bubbletea surface)

Examples:
  dino play
  dino play --surface tcell
  dino play --sound --seed 42
  dino play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSurface, "surface", "bubbletea", "Display surface (see 'dino surfaces')")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !registry.Exists(flagSurface) {
		fmt.Fprintln(os.Stderr, "Run 'dino surfaces' to see available surfaces.")
		return fmt.Errorf("unknown surface %q", flagSurface)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Shrink the field to the terminal, leaving a row for the help footer.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg = cfg.FitTo(w, h-1)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("terminal too small: %w", err)
	}

	rt := core.RuntimeConfig{
		ScreenW:  cfg.Field.Width,
		ScreenH:  cfg.Field.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	surface, err := registry.Create(flagSurface)
	if err != nil {
		return err
	}

	player := audio.Silent()
	if flagSound {
		player = audio.Open(logger)
	}
	defer player.Close()

	sess := game.NewSession(cfg, rand.New(rand.NewSource(rt.Seed)))
	logger.Info("starting",
		"surface", surface.ID(),
		"seed", rt.Seed,
		"width", cfg.Field.Width,
		"height", cfg.Field.Height,
		"fps", rt.TickRate,
		"sound", player.Enabled(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := surface.Run(ctx, sess, registry.Options{
		Runtime:  rt,
		Logger:   logger,
		Listener: newObserver(logger, player),
	})
	if runErr != nil {
		logger.Error("surface failed", "error", runErr)
		return runErr
	}
	logger.Info("finished", "session", sess.ID, "score", sess.Score)
	return nil
}
