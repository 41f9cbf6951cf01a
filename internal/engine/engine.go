package engine

import (
	"fmt"

	"go.uber.org/zap"

	"gobang/internal/gobang"
)

// Engine owns the board of one game and chooses the computer's moves.
// It is not safe for concurrent use: callers serialise whole decisions.
type Engine struct {
	cfg   Config
	pos   *gobang.Position
	cache *evalCache
	log   *zap.SugaredLogger

	outcome gobang.Outcome

	best    gobang.Coord
	hasBest bool
	stats   searchStats
}

type Option func(*Engine)

func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.EvalCacheCap <= 0 {
		cfg.EvalCacheCap = defaultEvalCacheCap
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:   cfg,
		pos:   gobang.NewPosition(cfg.zobrist(), cfg.ComputerColor),
		cache: newEvalCache(cfg.EvalCacheCap),
		log:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Config() Config { return e.cfg }

// RecordHumanMove commits a human stone to the real board.
func (e *Engine) RecordHumanMove(c gobang.Coord) error {
	return e.record(gobang.Human, c)
}

// RecordComputerMove commits a computer stone outside of search, e.g. the
// opening stone.
func (e *Engine) RecordComputerMove(c gobang.Coord) error {
	return e.record(gobang.Computer, c)
}

func (e *Engine) record(side gobang.Side, c gobang.Coord) error {
	switch {
	case !c.Valid():
		return fmt.Errorf("%v move %v: %w", side, c, ErrOutOfBounds)
	case e.pos.Occupied(c):
		return fmt.Errorf("%v move %v: %w", side, c, ErrOccupied)
	case e.finished():
		return fmt.Errorf("%v move %v: %w", side, c, ErrGameOver)
	}
	e.pos.Place(side, c)
	return nil
}

func (e *Engine) finished() bool {
	return e.outcome != gobang.Ongoing || e.pos.HasFive(gobang.Computer) || e.pos.HasFive(gobang.Human)
}

// ComputeComputerMove searches, commits the chosen stone and returns it.
func (e *Engine) ComputeComputerMove() (gobang.Coord, error) {
	res, err := e.Search()
	if err != nil {
		return gobang.Coord{}, err
	}
	return res.Move, nil
}

// Search is ComputeComputerMove with the search statistics.
func (e *Engine) Search() (SearchResult, error) {
	if e.finished() {
		return SearchResult{}, ErrGameOver
	}
	res, ok := e.search()
	if !ok {
		return res, ErrNoCandidates
	}
	e.pos.Place(gobang.Computer, res.Move)

	e.log.Infow("computer move",
		"move", res.Move.String(),
		"score", res.Score,
		"depth", res.Depth,
		"search_count", res.Nodes,
		"cut_count", res.Cutoffs,
		"cache_hit", res.CacheHits,
		"elapsed", res.TimeUsed,
	)
	return res, nil
}

// IsGameOver scans both sides for five in a row and records the winner.
func (e *Engine) IsGameOver() bool {
	if e.pos.HasFive(gobang.Computer) {
		e.outcome = gobang.ComputerWon
		return true
	}
	if e.pos.HasFive(gobang.Human) {
		e.outcome = gobang.HumanWon
		return true
	}
	return false
}

func (e *Engine) Outcome() gobang.Outcome { return e.outcome }

// WinningLine returns the five stones that decided the game, if any.
func (e *Engine) WinningLine() []gobang.Coord {
	switch e.outcome {
	case gobang.ComputerWon:
		line, _ := e.pos.FiveOf(gobang.Computer)
		return line
	case gobang.HumanWon:
		line, _ := e.pos.FiveOf(gobang.Human)
		return line
	}
	return nil
}

func (e *Engine) Grid() gobang.Grid { return e.pos.Grid() }

func (e *Engine) Moves(side gobang.Side) []gobang.Coord { return e.pos.Moves(side) }

func (e *Engine) AllMoves() []gobang.Coord { return e.pos.AllMoves() }

func (e *Engine) LastMove() (gobang.Coord, bool) { return e.pos.LastMove() }

func (e *Engine) Hash() uint64 { return e.pos.Hash() }

func (e *Engine) Full() bool { return e.pos.Full() }

func (e *Engine) CacheSize() int { return e.cache.len() }

// Candidates lists the moves the search would consider now.
func (e *Engine) Candidates() []gobang.Coord { return Candidates(e.pos) }

// Evaluate returns the static value of the current board for side.
func (e *Engine) Evaluate(side gobang.Side) int { return Evaluate(e.pos, side) }
