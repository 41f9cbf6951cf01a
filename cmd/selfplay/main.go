package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gobang/internal/arena"
	"gobang/internal/bootstrap"
	"gobang/internal/gobang"
)

// selfplay plays one engine-vs-engine game and prints the final board.
func main() {
	blackDepth := flag.Int("black", 2, "search depth of the black engine")
	whiteDepth := flag.Int("white", 2, "search depth of the white engine")
	maxMoves := flag.Int("maxmoves", 0, "stop after this many stones, 0 for no limit")
	seed := flag.Uint64("seed", 1, "zobrist seed")
	row := flag.Int("row", 7, "row of white's first reply")
	col := flag.Int("col", 8, "column of white's first reply")
	level := flag.String("log", "warn", "log level")
	flag.Parse()

	logger, err := bootstrap.NewLogger(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	opening := gobang.Coord{Row: *row, Col: *col}
	if !opening.Valid() || opening == gobang.Center {
		logger.Fatalw("opening must be an empty on-board cell", "opening", opening.String())
	}

	o := arena.Options{DepthA: *blackDepth, DepthB: *whiteDepth, Games: 1, MaxMoves: *maxMoves, Seed: *seed}
	res, err := arena.PlayGame(context.Background(), o, 1, true, opening)
	if err != nil {
		logger.Fatalw("game failed", "error", err)
	}

	var g gobang.Grid
	for i, c := range res.Moves {
		color := gobang.Black
		if i%2 == 1 {
			color = gobang.White
		}
		g.Set(c, gobang.CellOf(color))
		fmt.Printf("%3d. %-5s %v\n", i+1, color, c)
	}
	printGrid(&g)

	winner := "draw"
	switch res.Winner {
	case arena.WinnerA:
		winner = "black"
	case arena.WinnerB:
		winner = "white"
	}
	fmt.Printf("Result: %s (%s) after %d moves\n", winner, res.Reason, len(res.Moves))
	fmt.Println("Layout:", g.Encode())
}

func printGrid(g *gobang.Grid) {
	fmt.Print("   ")
	for c := 0; c < gobang.Size; c++ {
		fmt.Printf("%2d", c%10)
	}
	fmt.Println()
	for r := 0; r < gobang.Size; r++ {
		fmt.Printf("%2d ", r)
		for c := 0; c < gobang.Size; c++ {
			switch g.At(gobang.Coord{Row: r, Col: c}) {
			case gobang.BlackStone:
				fmt.Print(" x")
			case gobang.WhiteStone:
				fmt.Print(" o")
			default:
				fmt.Print(" .")
			}
		}
		fmt.Println()
	}
}
