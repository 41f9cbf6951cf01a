package gobang

import (
	"errors"
	"strconv"
	"strings"
)

// Layout text: Size rows separated by "/", "x" black, "o" white, runs of empty
// cells as decimal counts. "." is accepted as a single empty cell on input.

var ErrInvalidLayout = errors.New("invalid layout")

func (g *Grid) Encode() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Size; c++ {
			cell := g[r][c]
			if cell == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			if cell == BlackStone {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('o')
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}

func (p *Position) Encode() string {
	g := p.Grid()
	return g.Encode()
}

func DecodeGrid(s string) (Grid, error) {
	var g Grid
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Size {
		return g, ErrInvalidLayout
	}
	for r, row := range rows {
		c := 0
		run := 0
		flush := func() {
			c += run
			run = 0
		}
		for _, ch := range row {
			switch {
			case ch >= '0' && ch <= '9':
				run = run*10 + int(ch-'0')
				continue
			case ch == '.':
				flush()
				c++
				continue
			}
			flush()
			if c >= Size {
				return g, ErrInvalidLayout
			}
			switch ch {
			case 'x', 'X':
				g[r][c] = BlackStone
			case 'o', 'O':
				g[r][c] = WhiteStone
			default:
				return g, ErrInvalidLayout
			}
			c++
		}
		flush()
		if c != Size {
			return g, ErrInvalidLayout
		}
	}
	return g, nil
}

// Stones lists the cells holding colour's stones in row-major order.
func (g *Grid) Stones(color Color) []Coord {
	want := CellOf(color)
	var out []Coord
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == want {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}
