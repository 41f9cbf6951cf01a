package engine

import (
	"errors"
	"reflect"
	"testing"

	"gobang/internal/gobang"
)

func newTestEngine(t *testing.T, depth int, computer gobang.Color) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Depth = depth
	cfg.ComputerColor = computer
	cfg.RandomSeed = false
	cfg.Seed = 2024
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestConfigValidate(t *testing.T) {
	for _, depth := range []int{0, -1, MaxDepth + 1} {
		cfg := DefaultConfig()
		cfg.Depth = depth
		if _, err := NewEngine(cfg); !errors.Is(err, ErrInvalidDepth) {
			t.Fatalf("depth %d: expected ErrInvalidDepth, got %v", depth, err)
		}
	}
	cfg := DefaultConfig()
	cfg.ComputerColor = 5
	if _, err := NewEngine(cfg); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
}

func TestRecordRejectsBadMoves(t *testing.T) {
	e := newTestEngine(t, 1, gobang.Black)
	if err := e.RecordComputerMove(gobang.Center); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := e.RecordHumanMove(gobang.Center); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	if err := e.RecordHumanMove(gobang.Coord{Row: 15, Col: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestSearchEmptyBoard(t *testing.T) {
	e := newTestEngine(t, 2, gobang.Black)
	if _, err := e.ComputeComputerMove(); !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
	if e.pos.Len() != 0 {
		t.Fatalf("failed search must not place stones")
	}
}

func TestEndToEndOpening(t *testing.T) {
	e := newTestEngine(t, 2, gobang.Black)
	if err := e.RecordComputerMove(gobang.Center); err != nil {
		t.Fatal(err)
	}
	human := gobang.Coord{Row: 7, Col: 8}
	if err := e.RecordHumanMove(human); err != nil {
		t.Fatal(err)
	}
	before := e.AllMoves()
	hashBefore := e.Hash()

	mv, err := e.ComputeComputerMove()
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if mv == gobang.Center || mv == human {
		t.Fatalf("engine returned an occupied cell %v", mv)
	}
	if !mv.Valid() {
		t.Fatalf("engine returned off-board move %v", mv)
	}

	after := e.AllMoves()
	if !reflect.DeepEqual(after[:len(before)], before) || after[len(after)-1] != mv || len(after) != len(before)+1 {
		t.Fatalf("history not restored around the search: before=%v after=%v", before, after)
	}
	if e.Hash() == hashBefore || e.Hash() != e.pos.CalculateHash() {
		t.Fatalf("hash out of sync after commit")
	}

	e.pos.Undo(gobang.Computer, mv)
	if !hasNeighbour(e.pos, mv) {
		t.Fatalf("move %v is not next to the existing cluster", mv)
	}
}

func TestSearchMovesAreLegalAcrossDepths(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		e := newTestEngine(t, depth, gobang.Black)
		setup := []struct {
			side gobang.Side
			c    gobang.Coord
		}{
			{gobang.Computer, gobang.Center},
			{gobang.Human, gobang.Coord{Row: 6, Col: 8}},
			{gobang.Computer, gobang.Coord{Row: 8, Col: 8}},
			{gobang.Human, gobang.Coord{Row: 6, Col: 6}},
		}
		for _, s := range setup {
			if err := e.record(s.side, s.c); err != nil {
				t.Fatal(err)
			}
		}
		occupied := e.Grid()

		res, err := e.Search()
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		if occupied.At(res.Move) != gobang.Empty {
			t.Fatalf("depth %d: move %v was occupied", depth, res.Move)
		}
		e.pos.Undo(gobang.Computer, res.Move)
		if !hasNeighbour(e.pos, res.Move) {
			t.Fatalf("depth %d: move %v has no neighbour", depth, res.Move)
		}
		if res.Nodes == 0 || res.Depth != depth {
			t.Fatalf("depth %d: bad stats %+v", depth, res)
		}
	}
}

func TestSearchTakesWinningMove(t *testing.T) {
	e := newTestEngine(t, 1, gobang.Black)
	for c := 3; c <= 6; c++ {
		if err := e.RecordComputerMove(gobang.Coord{Row: 7, Col: c}); err != nil {
			t.Fatal(err)
		}
	}
	for _, c := range []gobang.Coord{{Row: 10, Col: 10}, {Row: 10, Col: 12}, {Row: 12, Col: 10}, {Row: 12, Col: 12}} {
		if err := e.RecordHumanMove(c); err != nil {
			t.Fatal(err)
		}
	}

	mv, err := e.ComputeComputerMove()
	if err != nil {
		t.Fatal(err)
	}
	if mv != (gobang.Coord{Row: 7, Col: 2}) && mv != (gobang.Coord{Row: 7, Col: 7}) {
		t.Fatalf("expected a five-completing move, got %v", mv)
	}
	if !e.IsGameOver() || e.Outcome() != gobang.ComputerWon {
		t.Fatalf("expected computer win, outcome=%v", e.Outcome())
	}
	if line := e.WinningLine(); len(line) != 5 {
		t.Fatalf("winning line: %v", line)
	}
	if _, err := e.ComputeComputerMove(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("search after a win: expected ErrGameOver, got %v", err)
	}
	if err := e.RecordHumanMove(gobang.Coord{Row: 0, Col: 0}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after a win: expected ErrGameOver, got %v", err)
	}
}

func TestSearchBlocksFour(t *testing.T) {
	e := newTestEngine(t, 2, gobang.White)
	if err := e.RecordComputerMove(gobang.Coord{Row: 7, Col: 2}); err != nil {
		t.Fatal(err)
	}
	if err := e.RecordComputerMove(gobang.Coord{Row: 0, Col: 14}); err != nil {
		t.Fatal(err)
	}
	for c := 3; c <= 6; c++ {
		if err := e.RecordHumanMove(gobang.Coord{Row: 7, Col: c}); err != nil {
			t.Fatal(err)
		}
	}

	mv, err := e.ComputeComputerMove()
	if err != nil {
		t.Fatal(err)
	}
	if want := (gobang.Coord{Row: 7, Col: 7}); mv != want {
		t.Fatalf("expected block at %v, got %v", want, mv)
	}
	if e.IsGameOver() {
		t.Fatalf("nobody has five yet")
	}
}

func TestIsGameOverHumanWin(t *testing.T) {
	e := newTestEngine(t, 1, gobang.White)
	for i := 0; i < 5; i++ {
		if err := e.RecordHumanMove(gobang.Coord{Row: i, Col: i}); err != nil {
			t.Fatal(err)
		}
	}
	if e.Outcome() != gobang.Ongoing {
		t.Fatalf("outcome must stay unset until IsGameOver runs")
	}
	if !e.IsGameOver() || e.Outcome() != gobang.HumanWon {
		t.Fatalf("expected human win, got %v", e.Outcome())
	}
}

func TestSearchIsDeterministicWithFixedSeed(t *testing.T) {
	play := func() gobang.Coord {
		e := newTestEngine(t, 2, gobang.Black)
		_ = e.RecordComputerMove(gobang.Center)
		_ = e.RecordHumanMove(gobang.Coord{Row: 8, Col: 8})
		mv, err := e.ComputeComputerMove()
		if err != nil {
			t.Fatal(err)
		}
		return mv
	}
	if a, b := play(), play(); a != b {
		t.Fatalf("same game produced different moves: %v vs %v", a, b)
	}
}

func TestEvaluateUsesCache(t *testing.T) {
	e := newTestEngine(t, 1, gobang.Black)
	_ = e.RecordComputerMove(gobang.Center)
	_ = e.RecordHumanMove(gobang.Coord{Row: 7, Col: 8})

	first := e.evaluate(gobang.Computer)
	hits := e.stats.cacheHits
	second := e.evaluate(gobang.Computer)
	if first != second || e.stats.cacheHits != hits+1 {
		t.Fatalf("second evaluation should hit the cache: %d %d hits=%d", first, second, e.stats.cacheHits)
	}
	if e.CacheSize() != 1 {
		t.Fatalf("cache size: got %d want 1", e.CacheSize())
	}
}
