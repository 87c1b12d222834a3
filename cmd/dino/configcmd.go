package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner configuration",
	Long: `Load the runner configuration the same way 'play' does (--config, then
~/.dino/configs/runner.yaml, then ./configs/runner.yaml, then built-in
defaults) and print it as YAML. --defaults prints the built-in file instead.

Examples:
  dino config
  dino config --defaults > ~/.dino/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
