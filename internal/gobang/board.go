package gobang

const (
	Size     = 15
	NumCells = Size * Size
)

// Center is where the first stone of a game goes.
var Center = Coord{Row: Size / 2, Col: Size / 2}

// NeighbourOffsets lists the 8 surrounding cells in scan order (row-major, self skipped).
var NeighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Directions are the four line axes: horizontal, vertical, diagonal, anti-diagonal.
var Directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

func indexOf(c Coord) int       { return c.Row*Size + c.Col }
func coordOf(idx int) Coord     { return Coord{Row: idx / Size, Col: idx % Size} }
func OnBoard(row, col int) bool { return row >= 0 && row < Size && col >= 0 && col < Size }

// CellSet is a membership set over the grid.
type CellSet [NumCells]bool

func (s *CellSet) Has(c Coord) bool {
	if !c.Valid() {
		return false
	}
	return s[indexOf(c)]
}

func (s *CellSet) Add(c Coord)    { s[indexOf(c)] = true }
func (s *CellSet) Remove(c Coord) { s[indexOf(c)] = false }

func (s *CellSet) Len() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// NewCellSet builds a set from coordinates; off-grid coordinates panic.
func NewCellSet(coords ...Coord) *CellSet {
	s := &CellSet{}
	for _, c := range coords {
		if !c.Valid() {
			panic("gobang: coordinate off the grid: " + c.String())
		}
		s.Add(c)
	}
	return s
}

// Grid is a plain 2D picture of the board.
type Grid [Size][Size]Cell

func (g *Grid) At(c Coord) Cell     { return g[c.Row][c.Col] }
func (g *Grid) Set(c Coord, v Cell) { g[c.Row][c.Col] = v }

func (g *Grid) Full() bool {
	for r := range g {
		for c := range g[r] {
			if g[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// Rows returns the grid as nested int slices for JSON output.
func (g *Grid) Rows() [][]int {
	out := make([][]int, Size)
	for r := range g {
		out[r] = make([]int, Size)
		for c := range g[r] {
			out[r][c] = int(g[r][c])
		}
	}
	return out
}
