package engine

import (
	"math"
	"time"

	"gobang/internal/gobang"
)

// Bounds sit one bit inside the int range so negating them cannot overflow.
const scoreInf = math.MaxInt >> 1

// SearchResult describes one computer decision.
type SearchResult struct {
	Move      gobang.Coord  // chosen and committed move
	Score     int           // negamax value at the root, computer's view
	Depth     int           // configured depth searched
	Nodes     int64         // candidate moves tried
	Cutoffs   int64         // beta cutoffs
	CacheHits int64         // evaluation cache hits
	TimeUsed  time.Duration // wall time of the search
}

type searchStats struct {
	nodes     int64
	cutoffs   int64
	cacheHits int64
}

// search runs negamax from the root for the computer and records the best root
// move. The board is back in its pre-call state when it returns.
func (e *Engine) search() (SearchResult, bool) {
	start := time.Now()
	e.stats = searchStats{}
	e.hasBest = false

	score := e.negamax(gobang.Computer, e.cfg.Depth, -scoreInf, scoreInf)

	return SearchResult{
		Move:      e.best,
		Score:     score,
		Depth:     e.cfg.Depth,
		Nodes:     e.stats.nodes,
		Cutoffs:   e.stats.cutoffs,
		CacheHits: e.stats.cacheHits,
		TimeUsed:  time.Since(start),
	}, e.hasBest
}

func (e *Engine) negamax(side gobang.Side, depth, alpha, beta int) int {
	if depth == 0 || e.pos.HasFive(gobang.Computer) || e.pos.HasFive(gobang.Human) {
		return e.evaluate(side)
	}

	for _, c := range Candidates(e.pos) {
		e.stats.nodes++
		value := e.try(side, c, depth, alpha, beta)
		if value > alpha {
			if depth == e.cfg.Depth {
				e.best = c
				e.hasBest = true
			}
			if value >= beta {
				e.stats.cutoffs++
				return beta
			}
			alpha = value
		}
	}
	return alpha
}

// try plays c for side, searches the reply and takes the stone back on every
// exit path.
func (e *Engine) try(side gobang.Side, c gobang.Coord, depth, alpha, beta int) int {
	e.pos.Place(side, c)
	defer e.pos.Undo(side, c)
	return -e.negamax(side.Opponent(), depth-1, -beta, -alpha)
}
