package engine

import "gobang/internal/gobang"

// scoredWindow is the best shape found for one (stone, direction) pair.
type scoredWindow struct {
	score int
	dir   int
	cells [5]gobang.Coord
}

func (w *scoredWindow) contains(c gobang.Coord) bool {
	for _, wc := range w.cells {
		if wc == c {
			return true
		}
	}
	return false
}

// shared counts coincident cell pairs between two windows.
func (w *scoredWindow) shared(o *scoredWindow) int {
	n := 0
	for _, a := range w.cells {
		for _, b := range o.cells {
			if a == b {
				n++
			}
		}
	}
	return n
}

// ScoreSide is the raw pattern score of side's stones against the current board.
func ScoreSide(pos *gobang.Position, side gobang.Side) int {
	var windows []scoredWindow
	total := 0
	for _, stone := range pos.Stones(side) {
		for dir := range gobang.Directions {
			total += scoreLine(pos, side, stone, dir, &windows)
		}
	}
	return total
}

// Evaluate is the static value of the board for side: own score minus a tenth
// of the opponent's, truncated toward zero.
func Evaluate(pos *gobang.Position, side gobang.Side) int {
	mine := ScoreSide(pos, side)
	theirs := ScoreSide(pos, side.Opponent())
	return int(float64(mine) - float64(theirs)*opponentWeight)
}

func classify(pos *gobang.Position, side gobang.Side, c gobang.Coord) int8 {
	if !c.Valid() {
		return cellBlocked
	}
	owner, ok := pos.OwnerAt(c)
	switch {
	case !ok:
		return cellEmpty
	case owner == side:
		return cellMine
	default:
		return cellTheirs
	}
}

// scoreLine slides a 6-cell window over the six placements that end at stone
// along dir and keeps the best matching shape. A stone already covered by a
// recorded window on the same axis scores nothing. Each earlier material
// window sharing a cell with the new one adds both scores again.
func scoreLine(pos *gobang.Position, side gobang.Side, stone gobang.Coord, dir int, windows *[]scoredWindow) int {
	for i := range *windows {
		w := &(*windows)[i]
		if w.dir == dir && w.contains(stone) {
			return 0
		}
	}

	dr, dc := gobang.Directions[dir][0], gobang.Directions[dir][1]
	best := scoredWindow{dir: dir}
	var line [6]int8
	for off := -5; off <= 0; off++ {
		for i := range line {
			line[i] = classify(pos, side, stone.Add((off+i)*dr, (off+i)*dc))
		}
		for _, sh := range shapeTable {
			if sh.score <= best.score || !sh.matches(&line) {
				continue
			}
			best.score = sh.score
			for i := range best.cells {
				best.cells[i] = stone.Add((off+i)*dr, (off+i)*dc)
			}
		}
	}
	if best.score == 0 {
		return 0
	}

	bonus := 0
	if best.score > comboThreshold {
		for i := range *windows {
			w := &(*windows)[i]
			if w.score <= comboThreshold {
				continue
			}
			bonus += w.shared(&best) * (w.score + best.score)
		}
	}
	*windows = append(*windows, best)
	return best.score + bonus
}

// evaluate is Evaluate behind the per-colour cache.
func (e *Engine) evaluate(side gobang.Side) int {
	color := e.pos.ColorOf(side)
	key := e.pos.Hash()
	if v, ok := e.cache.get(color, key); ok {
		e.stats.cacheHits++
		return v
	}
	v := Evaluate(e.pos, side)
	e.cache.store(color, key, v)
	return v
}
