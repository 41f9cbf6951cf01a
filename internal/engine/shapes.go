package engine

// Window cell classes, from the point of view of the side being scored.
const (
	cellEmpty   int8 = 0
	cellMine    int8 = 1
	cellTheirs  int8 = 2
	cellBlocked int8 = 3 // off the grid
)

const (
	scoreFive      = 99_999_999
	comboThreshold = 10
	opponentWeight = 0.1
)

type shape struct {
	score int
	cells []int8
}

// shapeTable maps 5- and 6-cell line windows to points.
var shapeTable = []shape{
	{50, []int8{0, 1, 1, 0, 0}},
	{50, []int8{0, 0, 1, 1, 0}},
	{200, []int8{1, 1, 0, 1, 0}},
	{500, []int8{0, 0, 1, 1, 1}},
	{500, []int8{1, 1, 1, 0, 0}},
	{5000, []int8{0, 1, 1, 1, 0}},
	{5000, []int8{0, 1, 0, 1, 1, 0}},
	{5000, []int8{0, 1, 1, 0, 1, 0}},
	{5000, []int8{1, 1, 1, 0, 1}},
	{5000, []int8{1, 1, 0, 1, 1}},
	{5000, []int8{1, 0, 1, 1, 1}},
	{5000, []int8{1, 1, 1, 1, 0}},
	{5000, []int8{0, 1, 1, 1, 1}},
	{50000, []int8{0, 1, 1, 1, 1, 0}},
	{scoreFive, []int8{1, 1, 1, 1, 1}},
}

func (s shape) matches(line *[6]int8) bool {
	for i, v := range s.cells {
		if line[i] != v {
			return false
		}
	}
	return true
}
