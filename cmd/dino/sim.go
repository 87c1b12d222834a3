package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/sim"
)

var (
	flagRuns  int
	flagTicks int
	flagReach int
	flagPlot  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot sessions",
	Long: `Play seeded sessions without a terminal using a simple autopilot that
jumps when an obstacle on its row comes within reach. Run i uses seed+i,
so a fixed --seed reproduces the same table.

Examples:
  dino sim
  dino sim --runs 50 --seed 7 --plot
  dino sim --reach 3 --ticks 5000 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of sessions to run")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 20000, "Tick limit per session")
	simCmd.Flags().IntVar(&flagReach, "reach", 4, "Autopilot jump distance in columns")
	simCmd.Flags().BoolVar(&flagPlot, "plot", false, "Plot scores per run")
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sim",
		Level:           lvl,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "runs", flagRuns, "seed", seed, "fps", flagFPS)

	opts := sim.Options{
		Runs:       flagRuns,
		MaxTicks:   flagTicks,
		Seed:       seed,
		TickMillis: core.RuntimeConfig{TickRate: flagFPS}.TickMillis(),
		Pilot:      sim.Autopilot{Reach: flagReach},
		Config:     cfg,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := sim.Run(ctx, opts, logger)
	if err != nil && len(results) == 0 {
		return err
	}
	if err != nil {
		logger.Warn("interrupted", "completed", len(results), "error", err)
	}

	if err := sim.WriteTable(os.Stdout, results); err != nil {
		return err
	}
	if flagPlot && len(results) > 1 {
		fmt.Println()
		fmt.Println(sim.Plot(results, 60, 10))
	}
	return nil
}
