package maze

import "testing"

func TestDirStepAndOpposite(t *testing.T) {
	tests := []struct {
		dir      Dir
		want     Coord
		opposite Dir
	}{
		{DirUp, C(5, 6), DirDown},
		{DirDown, C(5, 4), DirUp},
		{DirLeft, C(4, 5), DirRight},
		{DirRight, C(6, 5), DirLeft},
		{DirNone, C(5, 5), DirNone},
	}
	for _, tt := range tests {
		if got := C(5, 5).Step(tt.dir); got != tt.want {
			t.Errorf("Step(%s) = %v, want %v", tt.dir, got, tt.want)
		}
		if got := tt.dir.Opposite(); got != tt.opposite {
			t.Errorf("%s.Opposite() = %s, want %s", tt.dir, got, tt.opposite)
		}
	}
}

func TestManhattan(t *testing.T) {
	if d := C(2, 3).Manhattan(C(7, 1)); d != 7 {
		t.Errorf("Manhattan = %d, want 7", d)
	}
	if d := C(4, 4).Manhattan(C(4, 4)); d != 0 {
		t.Errorf("Manhattan of same cell = %d, want 0", d)
	}
}

func TestGridCellPos(t *testing.T) {
	g := NewGrid(DefaultCols, DefaultRows)
	x, y := g.CellPos(C(0, 0))
	if x != 0 || y != 48 {
		t.Errorf("CellPos(0,0) = (%v,%v), want (0,48)", x, y)
	}
	x, y = g.CellPos(C(13, 7))
	if x != 13*24 || y != 7*24+48 {
		t.Errorf("CellPos(13,7) = (%v,%v), want (%d,%d)", x, y, 13*24, 7*24+48)
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid(4, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range access")
		}
	}()
	g.At(C(4, 0))
}

func TestGridDotsAndBlocking(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(C(1, 1), &Dot{})
	g.Set(C(2, 1), &Dot{PowerUp: true})
	b, err := NewBarrier(BarrierBorder, TagDefault)
	if err != nil {
		t.Fatalf("NewBarrier: %v", err)
	}
	g.Set(C(0, 0), b)

	if n := g.CountDots(); n != 2 {
		t.Errorf("CountDots = %d, want 2", n)
	}
	if !g.IsBlocked(C(0, 0)) {
		t.Error("barrier cell should block")
	}
	if g.IsBlocked(C(1, 1)) {
		t.Error("dot cell should not block")
	}
	// Outside the grid is open so actors can run into the wrap tunnel.
	if g.IsBlocked(C(-1, 1)) {
		t.Error("out-of-bounds cell should not block")
	}
}

func TestBarrierTagWhitelist(t *testing.T) {
	tests := []struct {
		kind    BarrierKind
		tag     TextureTag
		wantErr bool
	}{
		{BarrierBorder, TagBorderVerticalLeftTopConnector, false},
		{BarrierBorder, TagStraightHorizontalDown, false},
		{BarrierStructure, TagOuterArcTopLeft, false},
		{BarrierStructure, TagBorderHorizontalLeftTopConnector, true},
		{BarrierInterior, TagBorderStraightSinglelineVerticalLeft, true},
		{BarrierDoor, TagDefault, false},
		{BarrierDoor, TagBorderVerticalRightBottomConnector, true},
	}
	for _, tt := range tests {
		_, err := NewBarrier(tt.kind, tt.tag)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewBarrier(%s, %s) err = %v, wantErr %v", tt.kind, tt.tag, err, tt.wantErr)
		}
	}
}

func TestBoxOverlaps(t *testing.T) {
	a := Box{X: 0, Y: 0, Size: 24}
	tests := []struct {
		b    Box
		want bool
	}{
		{Box{X: 12, Y: 12, Size: 24}, true},
		{Box{X: 24, Y: 0, Size: 24}, false}, // touching edges do not overlap
		{Box{X: -24, Y: 0, Size: 24}, false},
		{Box{X: 23.5, Y: 23.5, Size: 24}, true},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.b); got != tt.want {
			t.Errorf("Overlaps(%+v) = %v, want %v", tt.b, got, tt.want)
		}
	}
}
