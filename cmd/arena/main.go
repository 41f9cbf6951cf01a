package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gobang/internal/arena"
	"gobang/internal/bootstrap"
)

func main() {
	depthA := flag.Int("a", 2, "search depth of engine A")
	depthB := flag.Int("b", 1, "search depth of engine B")
	games := flag.Int("games", 16, "number of games to play")
	concurrency := flag.Int("concurrency", 0, "parallel games, 0 for GOMAXPROCS")
	maxMoves := flag.Int("maxmoves", 120, "stones on the board before a game is a draw")
	seed := flag.Uint64("seed", 1, "zobrist seed")
	level := flag.String("log", "info", "log level")
	flag.Parse()

	logger, err := bootstrap.NewLogger(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sum, err := arena.Run(ctx, arena.Options{
		DepthA:      *depthA,
		DepthB:      *depthB,
		Games:       *games,
		Concurrency: *concurrency,
		MaxMoves:    *maxMoves,
		Seed:        *seed,
	}, logger)
	if err != nil {
		logger.Errorw("arena failed", "error", err)
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("A (depth %d): %d\n", *depthA, sum.WinsA)
	fmt.Printf("B (depth %d): %d\n", *depthB, sum.WinsB)
	fmt.Printf("Draws: %d\n", sum.Draws)
	if sum.Games > 0 {
		fmt.Printf("A score: %.1f / %d (%.1f%%)\n", sum.Score(), sum.Games, 100*sum.Score()/float64(sum.Games))
	}
	if err != nil {
		os.Exit(1)
	}
}
