// Command uctchess is the CLI collaborator described in §6: it loads a
// board-text file, runs one MCTS search with the configured time budget
// and exploration constant, and prints the chosen move.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/uctchess/engine/board"
	"github.com/uctchess/engine/mcts"
	"github.com/uctchess/engine/san"
)

var (
	boardFile   = flag.String("board-file", "", "path to a board-text file; defaults to the standard starting position")
	exploration = flag.Float64("exploration", mcts.DefaultExploration, "UCT exploration constant c")
	timeMillis  = flag.Int("time", 1000, "search wall-clock budget in milliseconds")
	seed        = flag.Int64("seed", 0, "rollout RNG seed")
	startBlack  = flag.Bool("start-black", false, "when no board file is given, start with black to move")
	debug       = flag.Bool("debug", false, "log search statistics every 1000 iterations and at the end")
	noColor     = flag.Bool("no-color", false, "disable ANSI color output")
)

func main() {
	flag.Parse()
	if *noColor {
		color.NoColor = true
	}
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	b, err := loadBoard()
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	fmt.Println(b.String())

	cfg := mcts.SearchConfig{
		TimeBudget:  time.Duration(*timeMillis) * time.Millisecond,
		Exploration: *exploration,
		Debug:       *debug,
		Seed:        *seed,
	}

	move, tree, err := mcts.Search(context.Background(), b, cfg)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	notation, err := san.Format(b, move)
	if err != nil {
		return fmt.Errorf("formatting chosen move: %w", err)
	}

	bold := color.New(color.Bold)
	bold.Printf("best move: %s\n", notation)
	fmt.Printf("tree size: %d, depth: %d\n", tree.Size(), tree.Depth())

	return nil
}

func loadBoard() (*board.Board, error) {
	if *boardFile == "" {
		b := board.New()
		if *startBlack {
			b.SetTurn(board.Black)
		}
		return b, nil
	}
	f, err := os.Open(*boardFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", board.ErrIOError, err)
	}
	defer f.Close()
	return board.LoadText(f)
}
