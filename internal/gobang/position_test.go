package gobang

import (
	"reflect"
	"testing"
)

func TestPlaceUndoRestoresState(t *testing.T) {
	pos := NewPosition(NewZobrist(1), White)
	pos.Place(Computer, Center)
	pos.Place(Human, Coord{Row: 7, Col: 8})

	beforeAll := pos.AllMoves()
	beforeComputer := pos.Moves(Computer)
	beforeHuman := pos.Moves(Human)
	beforeHash := pos.Hash()

	seq := []struct {
		side Side
		c    Coord
	}{
		{Computer, Coord{Row: 6, Col: 6}},
		{Human, Coord{Row: 8, Col: 8}},
		{Computer, Coord{Row: 6, Col: 7}},
		{Human, Coord{Row: 0, Col: 14}},
	}
	for _, m := range seq {
		pos.Place(m.side, m.c)
	}
	if pos.Len() != 6 {
		t.Fatalf("expected 6 stones, got %d", pos.Len())
	}
	for i := len(seq) - 1; i >= 0; i-- {
		pos.Undo(seq[i].side, seq[i].c)
	}

	if !reflect.DeepEqual(pos.AllMoves(), beforeAll) {
		t.Fatalf("combined sequence changed: got %v want %v", pos.AllMoves(), beforeAll)
	}
	if !reflect.DeepEqual(pos.Moves(Computer), beforeComputer) || !reflect.DeepEqual(pos.Moves(Human), beforeHuman) {
		t.Fatalf("per-side sequences changed")
	}
	if pos.Hash() != beforeHash {
		t.Fatalf("hash not restored: got %x want %x", pos.Hash(), beforeHash)
	}
	for _, m := range seq {
		if pos.Occupied(m.c) || pos.Has(m.side, m.c) {
			t.Fatalf("cell %v still marked occupied after undo", m.c)
		}
	}
}

func TestPlaceOccupiedPanics(t *testing.T) {
	pos := NewPosition(NewZobrist(1), Black)
	pos.Place(Computer, Center)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic placing on occupied cell")
		}
	}()
	pos.Place(Human, Center)
}

func TestUndoOutOfOrderPanics(t *testing.T) {
	pos := NewPosition(NewZobrist(1), Black)
	pos.Place(Computer, Center)
	pos.Place(Human, Coord{Row: 7, Col: 8})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic undoing out of order")
		}
	}()
	pos.Undo(Computer, Center)
}

func TestOwnerAndGrid(t *testing.T) {
	pos := NewPosition(NewZobrist(3), Black)
	pos.Place(Computer, Center)
	pos.Place(Human, Coord{Row: 0, Col: 0})

	if side, ok := pos.OwnerAt(Center); !ok || side != Computer {
		t.Fatalf("center owner: got %v %v", side, ok)
	}
	if _, ok := pos.OwnerAt(Coord{Row: 3, Col: 3}); ok {
		t.Fatalf("empty cell reported as owned")
	}
	g := pos.Grid()
	if g.At(Center) != BlackStone || g.At(Coord{}) != WhiteStone {
		t.Fatalf("grid colours wrong: center=%v corner=%v", g.At(Center), g.At(Coord{}))
	}
	if pos.SideOf(White) != Human {
		t.Fatalf("white should belong to the human")
	}
	last, ok := pos.LastMove()
	if !ok || last != (Coord{}) {
		t.Fatalf("last move: got %v %v", last, ok)
	}
}
