package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var (
	flagResolved     bool
	flagConfigPath   string
	flagConfigPreset string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner configuration",
	Long: `Print the embedded default configuration as YAML.

Save it to ~/.runner/configs/runner.yaml or ./configs/runner.yaml to
customize the course; keys left out keep their defaults.

With --resolved, prints the configuration play would actually use after
the search order and the difficulty preset are applied.

Examples:
  runner config > ~/.runner/configs/runner.yaml
  runner config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to custom runner config YAML")
	configCmd.Flags().StringVar(&flagConfigPreset, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := loadRunnerConfig(flagConfigPath, flagConfigPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
