package gobang

import "math/rand"

// Zobrist holds one random key per (colour, cell). XOR-combining keys makes the
// fingerprint independent of move order.
type Zobrist struct {
	keys [2][NumCells]uint64
}

// NewZobrist fills the table from a splitmix64 stream so the same seed always
// yields the same keys.
func NewZobrist(seed uint64) *Zobrist {
	next := func() uint64 {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	z := &Zobrist{}
	for color := 0; color < 2; color++ {
		for sq := 0; sq < NumCells; sq++ {
			z.keys[color][sq] = next()
		}
	}
	return z
}

// NewRandomZobrist seeds the table from the runtime random source.
func NewRandomZobrist() *Zobrist {
	return NewZobrist(rand.Uint64())
}

func (z *Zobrist) Key(c Coord, color Color) uint64 {
	if !c.Valid() || !color.Valid() {
		return 0
	}
	return z.keys[color][indexOf(c)]
}

// Compute recomputes a fingerprint from scratch.
func (z *Zobrist) Compute(black, white []Coord) uint64 {
	var h uint64
	for _, c := range black {
		h ^= z.Key(c, Black)
	}
	for _, c := range white {
		h ^= z.Key(c, White)
	}
	return h
}
