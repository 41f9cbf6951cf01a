package engine

import (
	"fmt"

	"gobang/internal/gobang"
)

const (
	MinDepth     = 1
	MaxDepth     = 4
	DefaultDepth = 2

	defaultEvalCacheCap = 1 << 20
)

// Config is fixed for the lifetime of one game.
type Config struct {
	Depth         int          // search depth in plies, MinDepth..MaxDepth
	ComputerColor gobang.Color // which colour the engine plays
	Seed          uint64       // Zobrist seed, used unless RandomSeed is set
	RandomSeed    bool
	EvalCacheCap  int // entries per colour before the cache is dropped; 0 means default
}

func DefaultConfig() Config {
	return Config{
		Depth:         DefaultDepth,
		ComputerColor: gobang.White,
		RandomSeed:    true,
		EvalCacheCap:  defaultEvalCacheCap,
	}
}

func (c Config) Validate() error {
	if c.Depth < MinDepth || c.Depth > MaxDepth {
		return fmt.Errorf("depth %d not in [%d,%d]: %w", c.Depth, MinDepth, MaxDepth, ErrInvalidDepth)
	}
	if !c.ComputerColor.Valid() {
		return fmt.Errorf("computer colour %d: %w", c.ComputerColor, ErrInvalidColor)
	}
	return nil
}

func (c Config) zobrist() *gobang.Zobrist {
	if c.RandomSeed {
		return gobang.NewRandomZobrist()
	}
	return gobang.NewZobrist(c.Seed)
}
