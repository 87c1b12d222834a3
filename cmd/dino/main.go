// dino is a side-scrolling runner for the terminal.
//
// Usage:
//
//	dino                     - Play (same as dino play)
//	dino play                - Play on the selected surface
//	dino surfaces            - List available display surfaces
//	dino sim                 - Run headless autopilot sessions
//	dino config              - Print the effective runner config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible obstacles
//	--config <path>      - Custom runner config YAML
//	--log-file <path>    - Write logs to a file (default: discard)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import surfaces to register them
	_ "github.com/vovakirdan/tui-dino/internal/platform/tcellui"
	_ "github.com/vovakirdan/tui-dino/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino - a side-scrolling runner in your terminal",
	Long: `Dino is a terminal runner: jump over the obstacles that scroll towards you.
Every obstacle that passes behind you scores a point.

Available commands:
  play      - Play the game (default)
  surfaces  - Show available display surfaces
  sim       - Run headless autopilot sessions
  config    - Print the effective runner configuration

Examples:
  dino
  dino play --surface tcell --sound
  dino sim --runs 20 --plot
  dino config > ~/.dino/configs/runner.yaml`,
	RunE: runPlay,
	// Errors are printed once, by main.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(surfacesCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
