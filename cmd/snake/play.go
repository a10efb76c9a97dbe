package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL - Move
  R/Enter          - Start a new round
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --record
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save a replay of every finished round")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	game := newGame(cfg)

	// The TUI owns the terminal, so logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open replay database, recording disabled: %v\n", err)
			store = nil
		}
	}

	logger.Info("starting", "game", game.ID(), "board", cfg.Board.Size, "tick", cfg.TickInterval(), "seed", flagSeed)

	runErr := tui.Run(game, tui.Options{
		Width:    width,
		Height:   height,
		Interval: cfg.TickInterval(),
		Seed:     flagSeed,
		Record:   store != nil,
		Store:    store,
		Logger:   logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
