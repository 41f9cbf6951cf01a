package gobang

import "fmt"

// Position tracks the stones of both sides: per-side play order, the combined
// play order, membership sets kept in lockstep, and a running Zobrist fingerprint.
//
// Place and Undo follow stack discipline; violating it panics.
type Position struct {
	moves [2][]Coord
	all   []Coord

	sets   [2]CellSet
	allSet CellSet

	colors  [2]Color
	zobrist *Zobrist
	hash    uint64
}

// NewPosition returns an empty board where the computer plays computerColor.
func NewPosition(z *Zobrist, computerColor Color) *Position {
	if z == nil {
		z = NewRandomZobrist()
	}
	return &Position{
		colors:  [2]Color{computerColor, computerColor.Opponent()},
		zobrist: z,
		moves:   [2][]Coord{make([]Coord, 0, NumCells/2), make([]Coord, 0, NumCells/2)},
		all:     make([]Coord, 0, NumCells),
	}
}

// Place puts a stone for side on c.
func (p *Position) Place(side Side, c Coord) {
	if !c.Valid() {
		panic(fmt.Sprintf("gobang: place %v off the grid", c))
	}
	if p.allSet.Has(c) {
		panic(fmt.Sprintf("gobang: place %v on occupied cell", c))
	}
	p.moves[side] = append(p.moves[side], c)
	p.sets[side].Add(c)
	p.all = append(p.all, c)
	p.allSet.Add(c)
	p.hash ^= p.zobrist.Key(c, p.colors[side])
}

// Undo removes the stone most recently placed, which must be side's stone on c.
func (p *Position) Undo(side Side, c Coord) {
	seq := p.moves[side]
	if len(seq) == 0 || seq[len(seq)-1] != c {
		panic(fmt.Sprintf("gobang: undo %v for %v out of order", c, side))
	}
	if len(p.all) == 0 || p.all[len(p.all)-1] != c {
		panic(fmt.Sprintf("gobang: undo %v is not the last move", c))
	}
	p.moves[side] = seq[:len(seq)-1]
	p.sets[side].Remove(c)
	p.all = p.all[:len(p.all)-1]
	p.allSet.Remove(c)
	p.hash ^= p.zobrist.Key(c, p.colors[side])
}

func (p *Position) Occupied(c Coord) bool { return p.allSet.Has(c) }

func (p *Position) Has(side Side, c Coord) bool { return p.sets[side].Has(c) }

// OwnerAt reports which side holds c, if any.
func (p *Position) OwnerAt(c Coord) (Side, bool) {
	switch {
	case p.sets[Computer].Has(c):
		return Computer, true
	case p.sets[Human].Has(c):
		return Human, true
	}
	return Computer, false
}

// Stones returns side's stones in play order. The slice is owned by the
// position and must not be modified.
func (p *Position) Stones(side Side) []Coord { return p.moves[side] }

func (p *Position) Moves(side Side) []Coord {
	return append([]Coord(nil), p.moves[side]...)
}

// AllMoves returns both sides' moves in real-time order.
func (p *Position) AllMoves() []Coord {
	return append([]Coord(nil), p.all...)
}

func (p *Position) LastMove() (Coord, bool) {
	if len(p.all) == 0 {
		return Coord{}, false
	}
	return p.all[len(p.all)-1], true
}

func (p *Position) Len() int { return len(p.all) }

func (p *Position) Full() bool { return len(p.all) == NumCells }

func (p *Position) ColorOf(side Side) Color { return p.colors[side] }

// SideOf maps a physical colour back to the player holding it.
func (p *Position) SideOf(color Color) Side {
	if p.colors[Computer] == color {
		return Computer
	}
	return Human
}

func (p *Position) Hash() uint64 { return p.hash }

// CalculateHash recomputes the fingerprint from the occupancy sets.
func (p *Position) CalculateHash() uint64 {
	var h uint64
	for sq := 0; sq < NumCells; sq++ {
		c := coordOf(sq)
		if owner, ok := p.OwnerAt(c); ok {
			h ^= p.zobrist.Key(c, p.colors[owner])
		}
	}
	return h
}

// HasFive reports whether side has five in a row.
func (p *Position) HasFive(side Side) bool { return HasFiveInARow(&p.sets[side]) }

// FiveOf returns side's first five-in-a-row, if any.
func (p *Position) FiveOf(side Side) ([]Coord, bool) { return FindFive(&p.sets[side]) }

// Grid renders the position by colour.
func (p *Position) Grid() Grid {
	var g Grid
	for side := Computer; side <= Human; side++ {
		cell := CellOf(p.colors[side])
		for _, c := range p.moves[side] {
			g.Set(c, cell)
		}
	}
	return g
}
