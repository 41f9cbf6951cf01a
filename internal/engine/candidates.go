package engine

import "gobang/internal/gobang"

func hasNeighbour(pos *gobang.Position, c gobang.Coord) bool {
	for _, off := range gobang.NeighbourOffsets {
		if pos.Occupied(c.Add(off[0], off[1])) {
			return true
		}
	}
	return false
}

// Candidates lists empty cells touching at least one stone, row-major, then
// pulls the empty neighbours of the last move to the front.
func Candidates(pos *gobang.Position) []gobang.Coord {
	out := make([]gobang.Coord, 0, 64)
	for r := 0; r < gobang.Size; r++ {
		for c := 0; c < gobang.Size; c++ {
			cell := gobang.Coord{Row: r, Col: c}
			if pos.Occupied(cell) || !hasNeighbour(pos, cell) {
				continue
			}
			out = append(out, cell)
		}
	}
	orderByLastMove(pos, out)
	return out
}

// orderByLastMove moves each neighbour of the last move to index 0 in
// NeighbourOffsets order, so the final front runs in reverse scan order.
func orderByLastMove(pos *gobang.Position, cands []gobang.Coord) {
	last, ok := pos.LastMove()
	if !ok {
		return
	}
	for _, off := range gobang.NeighbourOffsets {
		pt := last.Add(off[0], off[1])
		for i, c := range cands {
			if c != pt {
				continue
			}
			copy(cands[1:i+1], cands[:i])
			cands[0] = pt
			break
		}
	}
}
