package arena

import (
	"context"
	"fmt"

	"gobang/internal/engine"
	"gobang/internal/gobang"
)

type Winner int8

const (
	Draw Winner = iota
	WinnerA
	WinnerB
)

func (w Winner) String() string {
	switch w {
	case WinnerA:
		return "A"
	case WinnerB:
		return "B"
	default:
		return "draw"
	}
}

type GameResult struct {
	Number   int
	AIsBlack bool
	Winner   Winner
	Reason   string // "five", "full board", "move limit"
	Moves    []gobang.Coord
}

func newEngine(depth int, color gobang.Color, seed uint64) (*engine.Engine, error) {
	cfg := engine.DefaultConfig()
	cfg.Depth = depth
	cfg.ComputerColor = color
	cfg.RandomSeed = false
	cfg.Seed = seed
	return engine.NewEngine(cfg)
}

// PlayGame plays one game between an engine of depth o.DepthA and one of depth
// o.DepthB. Each engine sees itself as the computer and receives the other's
// stones as human moves. Black opens on the centre and white answers with
// opening.
func PlayGame(ctx context.Context, o Options, number int, aIsBlack bool, opening gobang.Coord) (GameResult, error) {
	blackDepth, whiteDepth := o.DepthA, o.DepthB
	if !aIsBlack {
		blackDepth, whiteDepth = whiteDepth, blackDepth
	}
	black, err := newEngine(blackDepth, gobang.Black, o.Seed)
	if err != nil {
		return GameResult{}, err
	}
	white, err := newEngine(whiteDepth, gobang.White, o.Seed)
	if err != nil {
		return GameResult{}, err
	}

	res := GameResult{Number: number, AIsBlack: aIsBlack}
	engines := [2]*engine.Engine{gobang.Black: black, gobang.White: white}

	relay := func(mover gobang.Color, c gobang.Coord) error {
		if err := engines[mover.Opponent()].RecordHumanMove(c); err != nil {
			return fmt.Errorf("game %d: relay %v: %w", number, c, err)
		}
		res.Moves = append(res.Moves, c)
		return nil
	}

	if err := black.RecordComputerMove(gobang.Center); err != nil {
		return res, err
	}
	if err := relay(gobang.Black, gobang.Center); err != nil {
		return res, err
	}
	if err := white.RecordComputerMove(opening); err != nil {
		return res, err
	}
	if err := relay(gobang.White, opening); err != nil {
		return res, err
	}

	winnerOf := func(c gobang.Color) Winner {
		if (c == gobang.Black) == aIsBlack {
			return WinnerA
		}
		return WinnerB
	}

	mover := gobang.Black
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if o.MaxMoves > 0 && len(res.Moves) >= o.MaxMoves {
			res.Reason = "move limit"
			return res, nil
		}

		eng := engines[mover]
		c, err := eng.ComputeComputerMove()
		if err != nil {
			return res, fmt.Errorf("game %d: %v to move: %w", number, mover, err)
		}
		if err := relay(mover, c); err != nil {
			return res, err
		}
		if eng.IsGameOver() {
			res.Winner = winnerOf(mover)
			res.Reason = "five"
			return res, nil
		}
		if eng.Full() {
			res.Reason = "full board"
			return res, nil
		}
		mover = mover.Opponent()
	}
}
