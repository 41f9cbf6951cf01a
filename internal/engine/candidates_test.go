package engine

import (
	"reflect"
	"testing"

	"gobang/internal/gobang"
)

func TestCandidatesSingleStone(t *testing.T) {
	pos := gobang.NewPosition(gobang.NewZobrist(1), gobang.Black)
	pos.Place(gobang.Computer, gobang.Center)

	got := Candidates(pos)
	want := []gobang.Coord{
		{Row: 8, Col: 8}, {Row: 8, Col: 7}, {Row: 8, Col: 6},
		{Row: 7, Col: 8}, {Row: 7, Col: 6},
		{Row: 6, Col: 8}, {Row: 6, Col: 7}, {Row: 6, Col: 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates:\n got %v\nwant %v", got, want)
	}
}

func TestCandidatesEmptyBoard(t *testing.T) {
	pos := gobang.NewPosition(gobang.NewZobrist(1), gobang.Black)
	if got := Candidates(pos); len(got) != 0 {
		t.Fatalf("expected no candidates on an empty board, got %v", got)
	}
}

func TestCandidatesLastMoveNeighboursFirst(t *testing.T) {
	pos := gobang.NewPosition(gobang.NewZobrist(1), gobang.Black)
	pos.Place(gobang.Computer, gobang.Center)
	last := gobang.Coord{Row: 7, Col: 8}
	pos.Place(gobang.Human, last)

	got := Candidates(pos)
	if len(got) != 10 {
		t.Fatalf("expected 10 candidates around the pair, got %d: %v", len(got), got)
	}
	if got[0] != (gobang.Coord{Row: 8, Col: 9}) {
		t.Fatalf("first candidate should be the last offset around %v, got %v", last, got[0])
	}
	// The 7 empty neighbours of the last move lead the list.
	for i := 0; i < 7; i++ {
		d := got[i]
		if abs(d.Row-last.Row) > 1 || abs(d.Col-last.Col) > 1 {
			t.Fatalf("candidate %d (%v) is not next to the last move", i, d)
		}
	}
	seen := map[gobang.Coord]bool{}
	for _, c := range got {
		if seen[c] {
			t.Fatalf("duplicate candidate %v", c)
		}
		seen[c] = true
		if pos.Occupied(c) || !hasNeighbour(pos, c) {
			t.Fatalf("bad candidate %v", c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
