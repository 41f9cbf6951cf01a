package gobang

// HasFiveInARow scans every cell as a line start in the four directions.
func HasFiveInARow(s *CellSet) bool {
	_, ok := FindFive(s)
	return ok
}

// FindFive returns the first five consecutive members of s in scan order.
func FindFive(s *CellSet) ([]Coord, bool) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			start := Coord{Row: r, Col: c}
			if !s.Has(start) {
				continue
			}
			for _, d := range Directions {
				if line, ok := fiveFrom(s, start, d[0], d[1]); ok {
					return line, true
				}
			}
		}
	}
	return nil, false
}

func fiveFrom(s *CellSet, start Coord, dr, dc int) ([]Coord, bool) {
	if !OnBoard(start.Row+4*dr, start.Col+4*dc) {
		return nil, false
	}
	for i := 1; i < 5; i++ {
		if !s.Has(start.Add(i*dr, i*dc)) {
			return nil, false
		}
	}
	line := make([]Coord, 5)
	for i := range line {
		line[i] = start.Add(i*dr, i*dc)
	}
	return line, true
}
