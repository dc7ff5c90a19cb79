package store

import "testing"

func TestLinearize(t *testing.T) {
	cases := []struct {
		addr, rowWidth int
		col, row       int
	}{
		{0, 240, 0, 0},
		{16, 240, 16, 0},
		{239, 240, 239, 0},
		{240, 240, 0, 1},
		{247, 240, 7, 1},
		{32639, 240, 239, 135},
		{16, 8, 0, 2},
	}
	for _, c := range cases {
		col, row := Linearize(c.addr, c.rowWidth)
		if col != c.col || row != c.row {
			t.Fatalf("Linearize(%d, %d) = (%d, %d), want (%d, %d)",
				c.addr, c.rowWidth, col, row, c.col, c.row)
		}
	}
}

func TestGridPeekPoke(t *testing.T) {
	g := NewGrid(16, 4)
	g.Poke(3, 2, 0xab)
	if got := g.Peek(3, 2); got != 0xab {
		t.Fatalf("Peek(3,2) = %#x, want 0xab", got)
	}
	if got := g.Peek(4, 2); got != 0 {
		t.Fatalf("neighbor cell changed: %#x", got)
	}
	if got := g.Bytes()[2*16+3]; got != 0xab {
		t.Fatalf("linear layout mismatch: %#x", got)
	}
}

func TestGridOutOfRange(t *testing.T) {
	g := NewGrid(8, 8)
	g.Poke(-1, 0, 1)
	g.Poke(0, -1, 1)
	g.Poke(8, 0, 1)
	g.Poke(0, 8, 1)
	for _, v := range g.Bytes() {
		if v != 0 {
			t.Fatal("out-of-range poke modified the grid")
		}
	}
	if g.Peek(-1, 0) != 0 || g.Peek(99, 99) != 0 {
		t.Fatal("out-of-range peek must read as zero")
	}
}

func TestGridReset(t *testing.T) {
	g := Default()
	if g.RowWidth() != RowWidth || len(g.Bytes()) != Capacity {
		t.Fatalf("default geometry %dx%d", g.RowWidth(), len(g.Bytes()))
	}
	g.Poke(0, 0, 1)
	g.Poke(239, 135, 1)
	g.Reset()
	for _, v := range g.Bytes() {
		if v != 0 {
			t.Fatal("Reset left a nonzero cell")
		}
	}
}
