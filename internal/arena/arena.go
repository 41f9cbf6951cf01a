package arena

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gobang/internal/engine"
	"gobang/internal/gobang"
)

// Options describes a match of engine A against engine B.
type Options struct {
	DepthA      int
	DepthB      int
	Games       int
	Concurrency int    // parallel games; 0 means GOMAXPROCS
	MaxMoves    int    // stones on the board before a game is adjudicated a draw; 0 means no limit
	Seed        uint64 // Zobrist seed shared by every engine in the match
}

// Summary aggregates the finished games from A's point of view.
type Summary struct {
	Games   int
	WinsA   int
	WinsB   int
	Draws   int
	Results []GameResult
}

// Score is A's points with a draw counted as half.
func (s Summary) Score() float64 {
	return float64(s.WinsA) + float64(s.Draws)/2
}

func (s Summary) String() string {
	return fmt.Sprintf("games=%d A(wins)=%d B(wins)=%d draws=%d", s.Games, s.WinsA, s.WinsB, s.Draws)
}

type gameInfo struct {
	number   int
	aIsBlack bool
	opening  gobang.Coord // white's first reply next to the centre
}

func (o Options) validate() error {
	if o.Games <= 0 {
		return errors.New("arena: games must be positive")
	}
	for _, d := range []int{o.DepthA, o.DepthB} {
		if d < engine.MinDepth || d > engine.MaxDepth {
			return fmt.Errorf("arena: depth %d: %w", d, engine.ErrInvalidDepth)
		}
	}
	return nil
}

// Run plays o.Games games and returns once all of them are finished or ctx is
// cancelled. Colours alternate every game; openings cycle through the eight
// replies around the centre.
func Run(ctx context.Context, o Options, log *zap.SugaredLogger) (Summary, error) {
	if err := o.validate(); err != nil {
		return Summary{}, err
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}
	log.Infow("arena started", "depth_a", o.DepthA, "depth_b", o.DepthB, "games", o.Games, "concurrency", o.Concurrency)

	g, ctx := errgroup.WithContext(ctx)
	infos := make(chan gameInfo)
	results := make(chan GameResult)

	g.Go(func() error {
		defer close(infos)
		for i := 0; i < o.Games; i++ {
			info := gameInfo{
				number:   i + 1,
				aIsBlack: i%2 == 0,
				opening:  gobang.Center.Add(gobang.NeighbourOffsets[(i/2)%8][0], gobang.NeighbourOffsets[(i/2)%8][1]),
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case infos <- info:
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < o.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for info := range infos {
				res, err := PlayGame(ctx, o, info.number, info.aIsBlack, info.opening)
				if err != nil {
					return err
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				case results <- res:
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	var sum Summary
	for res := range results {
		sum.Games++
		switch res.Winner {
		case WinnerA:
			sum.WinsA++
		case WinnerB:
			sum.WinsB++
		default:
			sum.Draws++
		}
		sum.Results = append(sum.Results, res)
		log.Infow("game finished", "game", res.Number, "a_black", res.AIsBlack,
			"winner", res.Winner.String(), "moves", len(res.Moves), "reason", res.Reason, "summary", sum.String())
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}
	log.Infow("arena finished", "summary", sum.String(), "score_a", sum.Score())
	return sum, nil
}
