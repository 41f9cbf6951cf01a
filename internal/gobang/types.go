package gobang

import "fmt"

// Color is the physical stone colour. Black moves first.
type Color int8

const (
	Black Color = 0
	White Color = 1
)

func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) Valid() bool { return c == Black || c == White }

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// ParseColor accepts "black"/"b"/"x" and "white"/"w"/"o".
func ParseColor(s string) (Color, error) {
	switch s {
	case "black", "b", "x", "BLACK":
		return Black, nil
	case "white", "w", "o", "WHITE":
		return White, nil
	}
	return Black, fmt.Errorf("unknown colour %q", s)
}

// Side is the player role, independent of colour.
type Side int8

const (
	Computer Side = 0
	Human    Side = 1
)

func (s Side) Opponent() Side {
	if s == Computer {
		return Human
	}
	return Computer
}

func (s Side) String() string {
	if s == Computer {
		return "computer"
	}
	return "human"
}

type Outcome int8

const (
	Ongoing Outcome = iota
	ComputerWon
	HumanWon
)

func (o Outcome) String() string {
	switch o {
	case ComputerWon:
		return "computer_won"
	case HumanWon:
		return "human_won"
	default:
		return "ongoing"
	}
}

// Coord is one grid intersection.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) Valid() bool { return OnBoard(c.Row, c.Col) }

func (c Coord) Add(dr, dc int) Coord { return Coord{Row: c.Row + dr, Col: c.Col + dc} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Cell is the content of one intersection as seen by presentation code.
type Cell int8

const (
	Empty      Cell = 0
	BlackStone Cell = 1
	WhiteStone Cell = 2
)

func CellOf(c Color) Cell {
	if c == Black {
		return BlackStone
	}
	return WhiteStone
}
