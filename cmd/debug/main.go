package main

import (
	"flag"
	"fmt"
	"os"

	"gobang/internal/engine"
	"gobang/internal/gobang"
)

// debug loads a layout, prints what the engine sees and runs one search.
func main() {
	layout := flag.String("layout", "15/15/15/15/15/15/15/7x7/15/15/15/15/15/15/15", "board layout, rows joined by '/'")
	computer := flag.String("computer", "white", "colour the engine plays")
	depth := flag.Int("depth", engine.DefaultDepth, "search depth")
	flag.Parse()

	if err := run(*layout, *computer, *depth); err != nil {
		fmt.Fprintln(os.Stderr, "debug:", err)
		os.Exit(1)
	}
}

func run(layout, computer string, depth int) error {
	grid, err := gobang.DecodeGrid(layout)
	if err != nil {
		return err
	}
	color, err := gobang.ParseColor(computer)
	if err != nil {
		return err
	}

	cfg := engine.DefaultConfig()
	cfg.Depth = depth
	cfg.ComputerColor = color
	cfg.RandomSeed = false
	e, err := engine.NewEngine(cfg)
	if err != nil {
		return err
	}
	for _, c := range grid.Stones(color) {
		if err := e.RecordComputerMove(c); err != nil {
			return err
		}
	}
	for _, c := range grid.Stones(color.Opponent()) {
		if err := e.RecordHumanMove(c); err != nil {
			return err
		}
	}

	fmt.Println("Layout:", grid.Encode())
	fmt.Printf("Hash: %016x\n", e.Hash())
	fmt.Println("Eval computer:", e.Evaluate(gobang.Computer), "human:", e.Evaluate(gobang.Human))
	if e.IsGameOver() {
		fmt.Println("Game over:", e.Outcome(), e.WinningLine())
		return nil
	}

	cands := e.Candidates()
	fmt.Println("Candidates:", len(cands))
	for i, c := range cands {
		fmt.Printf("  %3d %v\n", i, c)
	}

	res, err := e.Search()
	if err != nil {
		return err
	}
	fmt.Printf("BestMove: %v, Score: %d, Nodes: %d, Cutoffs: %d, CacheHits: %d, Time: %v\n",
		res.Move, res.Score, res.Nodes, res.Cutoffs, res.CacheHits, res.TimeUsed)
	return nil
}
