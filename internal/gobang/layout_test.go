package gobang

import "testing"

func TestLayoutRoundTrip(t *testing.T) {
	pos := NewPosition(NewZobrist(1), Black)
	pos.Place(Computer, Center)
	pos.Place(Human, Coord{Row: 7, Col: 8})
	pos.Place(Computer, Coord{Row: 0, Col: 14})
	pos.Place(Human, Coord{Row: 14, Col: 0})

	enc := pos.Encode()
	g, err := DecodeGrid(enc)
	if err != nil {
		t.Fatalf("decode %q: %v", enc, err)
	}
	if g != pos.Grid() {
		t.Fatalf("round trip changed the grid: %q", enc)
	}
	if want := "14x/15/15/15/15/15/15/7xo6/15/15/15/15/15/15/o14"; enc != want {
		t.Fatalf("encode: got %q want %q", enc, want)
	}
}

func TestDecodeGridRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "15/15", "16/15/15/15/15/15/15/15/15/15/15/15/15/15/15", "14z/15/15/15/15/15/15/15/15/15/15/15/15/15/15"} {
		if _, err := DecodeGrid(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}
