package game

import (
	"time"

	"gobang/internal/engine"
	"gobang/internal/gobang"
)

// Status follows one game from the human's turn through the computer's
// search to the settlement banner.
type Status string

const (
	StatusHumanTurn   Status = "human_turn"
	StatusThinking    Status = "thinking"
	StatusComputerWon Status = "computer_won"
	StatusHumanWon    Status = "human_won"
	StatusDraw        Status = "draw"
)

// Finished reports whether the game is in its settlement state.
func (s Status) Finished() bool {
	switch s {
	case StatusComputerWon, StatusHumanWon, StatusDraw:
		return true
	}
	return false
}

// Snapshot is a copy of the presentation state, safe to hand out.
type Snapshot struct {
	ID         string
	Version    uint64
	Depth      int
	HumanColor gobang.Color
	Grid       gobang.Grid
	Moves      []gobang.Coord
	LastMove   *gobang.Coord
	Status     Status
	WinLine    []gobang.Coord
	LastSearch *engine.SearchResult
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ToMove is the colour expected to play next.
func (s Snapshot) ToMove() gobang.Color {
	if len(s.Moves)%2 == 0 {
		return gobang.Black
	}
	return gobang.White
}

// searchDone is what the worker goroutine hands back through the pending slot.
type searchDone struct {
	res     engine.SearchResult
	err     error
	outcome gobang.Outcome
	line    []gobang.Coord
	full    bool
}
