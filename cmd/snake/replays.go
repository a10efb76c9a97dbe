package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit  int
	flagWatch  bool
	flagDelete bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List saved replays",
	Long: `Display the most recent replays, newest first.

Examples:
  snake replays
  snake replays --limit 50`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a saved replay",
	Long: `Re-simulate a saved replay and print the final board.
The ID may be shortened to any unique prefix.

Examples:
  snake replay 3f2a
  snake replay 3f2a --watch
  snake replay 3f2a --delete`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of replays to show")
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Animate the replay instead of printing the final board")
	replayCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the replay")
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runReplays(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	list, err := store.Replays(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replays: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(tui.ReplayTable(list))
}

func runReplay(_ *cobra.Command, args []string) {
	store := openStore()
	rec, err := store.LoadReplay(args[0])
	if err != nil {
		store.Close()
		switch {
		case errors.Is(err, storage.ErrReplayNotFound):
			fmt.Fprintf(os.Stderr, "No replay matches %q. Run 'snake replays' to list them.\n", args[0])
		case errors.Is(err, storage.ErrAmbiguousID):
			fmt.Fprintf(os.Stderr, "%q matches several replays, use a longer prefix.\n", args[0])
		default:
			fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		}
		os.Exit(1)
	}

	if flagDelete {
		err = store.DeleteReplay(rec.ID)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting replay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted replay %s\n", rec.ID)
		return
	}
	store.Close()

	cfg := loadConfig()
	game := newGame(cfg)

	if flagWatch {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunPlayback(game, rec, cfg.TickInterval(), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error playing replay: %v\n", err)
			os.Exit(1)
		}
		return
	}

	state, err := replay.Run(game, rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying: %v\n", err)
		os.Exit(1)
	}

	width, height := 40, 18
	if sized, ok := game.(interface{ MinScreenSize() (int, int) }); ok {
		width, height = sized.MinScreenSize()
	}
	screen := core.NewScreen(width, height)
	game.Render(screen)
	fmt.Println(tui.RenderScreen(screen))
	fmt.Printf("Replay %s: seed %d, %d ticks, %d inputs, score %d, game over: %v\n",
		rec.ID, rec.Seed, rec.Ticks, len(rec.Events), state.Score, state.GameOver)
}
