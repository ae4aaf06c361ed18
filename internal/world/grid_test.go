package world

import (
	"testing"

	"github.com/samdwyer/dungen/internal/geom"
)

func TestNewGridIsAllWalls(t *testing.T) {
	g := NewGrid(6, 4)

	if g.Width() != 6 || g.Height() != 4 {
		t.Fatalf("size = %dx%d, want 6x4", g.Width(), g.Height())
	}
	if n := g.CountKind(KindWall); n != 24 {
		t.Errorf("CountKind(wall) = %d, want 24", n)
	}
	g.ForEach(func(c *Cell) {
		if !c.Blocked || !c.BlocksSight || c.EverSeen {
			t.Errorf("cell %v = %+v, want unseen blocking wall", c.Pos, *c)
		}
	})
	if c := g.At(geom.Point{X: 5, Y: 3}); c.Pos != (geom.Point{X: 5, Y: 3}) {
		t.Errorf("At((5,3)).Pos = %v", c.Pos)
	}
}

func TestKindDefaults(t *testing.T) {
	tests := []struct {
		kind        Kind
		blocked     bool
		blocksSight bool
		name        string
		r           rune
	}{
		{KindWall, true, true, "wall", '#'},
		{KindFloor, false, false, "floor", '.'},
		{KindStairsUp, false, false, "stairs_up", '<'},
		{KindStairsDown, false, false, "stairs_down", '>'},
		{Kind(42), false, false, "unknown", '?'},
	}

	for _, tt := range tests {
		var c Cell
		c.SetKind(tt.kind)
		if c.Blocked != tt.blocked || c.BlocksSight != tt.blocksSight {
			t.Errorf("SetKind(%v): blocked=%v sight=%v, want %v %v",
				tt.kind, c.Blocked, c.BlocksSight, tt.blocked, tt.blocksSight)
		}
		if tt.kind.String() != tt.name {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, tt.kind.String(), tt.name)
		}
		if tt.kind.Rune() != tt.r {
			t.Errorf("Kind(%d).Rune() = %q, want %q", tt.kind, tt.kind.Rune(), tt.r)
		}
	}
}

func TestSetKindKeepsFogMemory(t *testing.T) {
	var c Cell
	c.SetKind(KindWall)
	c.MarkSeen()
	c.SetKind(KindFloor)
	if !c.EverSeen {
		t.Error("SetKind() should not clear EverSeen")
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(3, 3)

	if _, ok := g.Lookup(geom.Point{X: 3, Y: 0}); ok {
		t.Error("Lookup() outside grid should fail")
	}
	if !g.IsBlocked(geom.Point{X: -1, Y: 1}) {
		t.Error("IsBlocked() outside grid should be true")
	}

	defer func() {
		if recover() == nil {
			t.Error("At() outside grid should panic")
		}
	}()
	g.At(geom.Point{X: 0, Y: 3})
}

func TestForEachInClamps(t *testing.T) {
	g := NewGrid(5, 5)
	count := 0
	g.ForEachIn(geom.Rect{X: -2, Y: 3, W: 4, H: 10}, func(c *Cell) {
		count++
	})
	// Columns 0..1, rows 3..4.
	if count != 4 {
		t.Errorf("ForEachIn visited %d cells, want 4", count)
	}
}

func TestReachable(t *testing.T) {
	g := NewGrid(7, 5)
	g.carveHorizontalTunnel(1, 3, 2)
	g.carve(geom.Point{X: 5, Y: 2}) // isolated

	reachable := g.Reachable(geom.Point{X: 1, Y: 2})
	if reachable.Size() != 3 {
		t.Errorf("Reachable() size = %d, want 3", reachable.Size())
	}
	if reachable.Has(geom.Point{X: 5, Y: 2}) {
		t.Error("isolated cell should not be reachable")
	}

	if blocked := g.Reachable(geom.Point{X: 0, Y: 0}); blocked.Size() != 0 {
		t.Errorf("Reachable() from wall size = %d, want 0", blocked.Size())
	}
}
