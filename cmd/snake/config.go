package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the embedded default configuration, ready to be saved as
~/.snake/config.yaml or ./configs/snake.yaml and edited.

With --resolved, print the configuration that would actually be used after
the search path and --config are applied.

Examples:
  snake config > ~/.snake/config.yaml
  snake config --resolved --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	out, err := yaml.Marshal(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
