package arena

import (
	"context"
	"errors"
	"testing"

	"gobang/internal/engine"
	"gobang/internal/gobang"
)

func TestPlayGameAlternatesAndStaysLegal(t *testing.T) {
	o := Options{DepthA: 1, DepthB: 1, Games: 1, MaxMoves: 30, Seed: 7}
	opening := gobang.Coord{Row: 7, Col: 8}
	res, err := PlayGame(context.Background(), o, 1, true, opening)
	if err != nil {
		t.Fatalf("PlayGame: %v", err)
	}
	if len(res.Moves) < 3 || res.Moves[0] != gobang.Center || res.Moves[1] != opening {
		t.Fatalf("bad opening: %v", res.Moves)
	}
	seen := make(map[gobang.Coord]bool)
	for _, c := range res.Moves {
		if !c.Valid() || seen[c] {
			t.Fatalf("illegal move %v in %v", c, res.Moves)
		}
		seen[c] = true
	}
	if len(res.Moves) > o.MaxMoves {
		t.Fatalf("move limit ignored: %d", len(res.Moves))
	}
	if res.Winner == Draw && res.Reason != "move limit" && res.Reason != "full board" {
		t.Fatalf("draw without a reason: %q", res.Reason)
	}
}

func TestRunAggregates(t *testing.T) {
	o := Options{DepthA: 1, DepthB: 1, Games: 4, Concurrency: 2, MaxMoves: 30, Seed: 3}
	sum, err := Run(context.Background(), o, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Games != 4 || len(sum.Results) != 4 {
		t.Fatalf("expected 4 games, got %+v", sum)
	}
	if sum.WinsA+sum.WinsB+sum.Draws != 4 {
		t.Fatalf("results do not add up: %s", sum)
	}
	blacks := 0
	for _, r := range sum.Results {
		if r.AIsBlack {
			blacks++
		}
	}
	if blacks != 2 {
		t.Fatalf("colours should alternate, A was black %d times", blacks)
	}
}

func TestRunValidates(t *testing.T) {
	if _, err := Run(context.Background(), Options{DepthA: 0, DepthB: 1, Games: 1}, nil); !errors.Is(err, engine.ErrInvalidDepth) {
		t.Fatalf("expected ErrInvalidDepth, got %v", err)
	}
	if _, err := Run(context.Background(), Options{DepthA: 1, DepthB: 1}, nil); err == nil {
		t.Fatalf("expected error for zero games")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, Options{DepthA: 1, DepthB: 1, Games: 2, Concurrency: 1}, nil); err == nil {
		t.Fatalf("expected an error from a cancelled context")
	}
}

func TestDeeperSearchScoresAtLeastEven(t *testing.T) {
	if testing.Short() {
		t.Skip("plays a full match")
	}
	o := Options{DepthA: 2, DepthB: 1, Games: 16, MaxMoves: 120, Seed: 5}
	sum, err := Run(context.Background(), o, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Score() < float64(sum.Games)/2 {
		t.Fatalf("depth %d scored %.1f of %d against depth %d: %s", o.DepthA, sum.Score(), sum.Games, o.DepthB, sum)
	}
}
