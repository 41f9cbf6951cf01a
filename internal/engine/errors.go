package engine

import "errors"

var (
	ErrInvalidDepth = errors.New("invalid search depth")
	ErrInvalidColor = errors.New("invalid colour")
	ErrOutOfBounds  = errors.New("coordinate off the board")
	ErrOccupied     = errors.New("cell already occupied")
	ErrGameOver     = errors.New("game is over")
	ErrNoCandidates = errors.New("no candidate moves: seed a stone before searching")
)
