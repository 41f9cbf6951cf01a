package game

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrThinking     = errors.New("computer is still thinking")
	ErrNotYourTurn  = errors.New("not the human's turn")
	ErrGameFinished = errors.New("game already finished")
)
