package model

import (
	"bytes"
	"testing"
)

func TestGridBasics(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(1, 1, Live)
	g.Set(3, 2, Live)
	g.Set(10, 10, Live) // ignored

	if g.CountLivingCells() != 2 {
		t.Fatalf("living cells %d, expected 2", g.CountLivingCells())
	}
	if g.Get(-1, 0) != Dead || g.Get(4, 0) != Dead {
		t.Fatalf("cells outside the grid must be dead")
	}
	if got := g.GetBoundingBoxSize(); got != 6 {
		t.Fatalf("bounding box %d, expected 6", got)
	}
	if got, want := g.String(), "....\n.*..\n...*\n"; got != want {
		t.Fatalf("String() = %q, expected %q", got, want)
	}

	c := g.Clone()
	if !c.Equal(g) || c.GetGridHash() != g.GetGridHash() {
		t.Fatalf("clone differs from original")
	}
	c.Set(0, 0, Live)
	if c.Equal(g) || c.GetGridHash() == g.GetGridHash() {
		t.Fatalf("changed clone still equals original")
	}
	if g.Equal(NewGrid(3, 4)) {
		t.Fatalf("grids of different size compare equal")
	}

	g.Clear()
	if g.CountLivingCells() != 0 || g.GetBoundingBoxSize() != 0 {
		t.Fatalf("cleared grid still has live cells")
	}
}

func TestCountNeighbors(t *testing.T) {
	g := gridWith(3, 3, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{2, 2})

	tests := []struct {
		x, y, want int
	}{
		{1, 1, 5},
		{0, 0, 2},
		{2, 2, 0},
		{1, 2, 2},
	}
	for _, tt := range tests {
		if got := g.CountNeighborsOptimized(tt.x, tt.y); got != tt.want {
			t.Errorf("neighbors of (%d,%d) = %d, expected %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGridPoolResets(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(5, 5)
	g.Set(2, 2, Live)
	pool.Put(g)

	again := pool.Get(3, 2)
	if again.GetWidth() != 3 || again.GetHeight() != 2 || again.CountLivingCells() != 0 {
		t.Fatalf("pooled grid not reset: %dx%d with %d live", again.GetWidth(), again.GetHeight(), again.CountLivingCells())
	}
	GridToPool(nil, pool)
	GridToPool(again, nil)
}

func TestTextRenderer(t *testing.T) {
	g := gridWith(3, 2, [2]int{1, 0})

	var buf bytes.Buffer
	r := NewTextRenderer(&buf, "")
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := r.Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if got, want := buf.String(), ".*.\n...\n"; got != want {
		t.Fatalf("rendered %q, expected %q", got, want)
	}

	buf.Reset()
	r = NewTextRenderer(&buf, "\x1b[H\x1b[2J")
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := buf.String(); got != "\x1b[H\x1b[2J" {
		t.Fatalf("clear wrote %q", got)
	}
}

func TestCellGlyph(t *testing.T) {
	if Live.Glyph() != '*' || Dead.Glyph() != '.' {
		t.Fatalf("unexpected glyphs %q %q", Live.Glyph(), Dead.Glyph())
	}
}
