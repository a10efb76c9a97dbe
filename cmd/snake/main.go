// snake is the classic grid snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake replays            - List saved replays
//	snake replay <id>        - Re-simulate a saved replay
//	snake config             - Print the default configuration
//
// Global flags:
//
//	--config <path>   - Custom config YAML
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Replay database (default: ~/.snake/replays.db)
//	--log-file <path> - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake steers a growing snake around a 10x10 board. Eat food to grow,
and avoid the walls and your own tail.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  replays  - List saved replays
  replay   - Re-simulate or watch a saved replay
  config   - Print the default configuration

Examples:
  snake
  snake play --record
  snake serve --ssh :2222
  snake replay 3f2a --watch`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.Flags().BoolVar(&flagRecord, "record", false, "Save a replay of every finished round")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a logger writing to flagLogFile, or fallback when no
// file is set. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if lvl, err := log.ParseLevel(os.Getenv("SNAKE_LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, closeFn, nil
}

// loadConfig loads the game configuration from the search path.
func loadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newGame creates the snake game from cfg.
func newGame(cfg config.SnakeConfig) registry.Game {
	game, err := registry.Create(snake.GameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	return game
}
