package stage

import (
	"testing"

	"github.com/mkarwowski/pacmaze/internal/maze"
)

func mustCompile(t *testing.T, rows []string) *Stage {
	t.Helper()
	st, err := Compile(&Source{Name: "test", Rows: rows})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return st
}

func TestCompileRequiresExactlyOnePlayer(t *testing.T) {
	noPlayer := &Source{Rows: []string{"BBB", "BFB", "BBB"}}
	if _, err := Compile(noPlayer); err == nil {
		t.Error("expected error for stage without player spawn")
	}

	twoPlayers := &Source{Rows: []string{"BBBB", "BppB", "BBBB"}}
	if _, err := Compile(twoPlayers); err == nil {
		t.Error("expected error for stage with two player spawns")
	}
}

func TestCompileBottomBorderRunIsStraight(t *testing.T) {
	// A full-width wall on the bottom edge: map-edge synthesis provides
	// the missing outside neighbors, so every cell reads as a horizontal
	// run open toward the playfield.
	st := mustCompile(t, []string{
		"     ",
		" p   ",
		"BBBBB",
	})
	for col := 0; col < 5; col++ {
		content := st.Grid.At(maze.C(col, 0))
		b, ok := content.(*maze.Barrier)
		if !ok {
			t.Fatalf("cell (%d,0): expected barrier, got %T", col, content)
		}
		if b.Tag != maze.TagStraightHorizontalDown {
			t.Errorf("cell (%d,0): tag = %s, want StraightHorizontalDown", col, b.Tag)
		}
	}
}

func TestCompileFlipsSourceRows(t *testing.T) {
	// The dot is on the top source row, so after flipping it must land on
	// the highest grid row.
	st := mustCompile(t, []string{
		" F ",
		"   ",
		" p ",
	})
	if _, ok := st.Grid.At(maze.C(1, 2)).(*maze.Dot); !ok {
		t.Error("dot from top source row should end up at row 2")
	}
}

func TestCompileSpawnOffsetMarker(t *testing.T) {
	st := mustCompile(t, []string{
		"    ",
		"pm  ",
		"    ",
	})
	wantX, _ := st.Grid.CellPos(maze.C(0, 1))
	wantX += float64(st.Grid.CellSize()) / 2
	if st.PlayerSpawn.X != wantX {
		t.Errorf("spawn X = %v, want %v (half cell toward the m)", st.PlayerSpawn.X, wantX)
	}
	if st.PlayerSpawn.Cell != maze.C(0, 1) {
		t.Errorf("spawn cell = %v, want (0,1)", st.PlayerSpawn.Cell)
	}
}

func TestCompileUnknownSymbolsIgnored(t *testing.T) {
	st := mustCompile(t, []string{
		"x?z",
		" p ",
		"...",
	})
	for col := 0; col < 3; col++ {
		if c := st.Grid.At(maze.C(col, 0)); c != nil {
			t.Errorf("cell (%d,0) = %T, want empty", col, c)
		}
		if c := st.Grid.At(maze.C(col, 2)); c != nil {
			t.Errorf("cell (%d,2) = %T, want empty", col, c)
		}
	}
}

func TestCompilePowerUp(t *testing.T) {
	st := mustCompile(t, []string{
		"UF ",
		" p ",
		"   ",
	})
	d, ok := st.Grid.At(maze.C(0, 2)).(*maze.Dot)
	if !ok || !d.PowerUp {
		t.Error("U should compile to a power-up dot")
	}
	d, ok = st.Grid.At(maze.C(1, 2)).(*maze.Dot)
	if !ok || d.PowerUp {
		t.Error("F should compile to a plain dot")
	}
}

func TestCompileSmallStageHasNoGhosts(t *testing.T) {
	st := mustCompile(t, []string{
		"   ",
		" p ",
		"   ",
	})
	if len(st.Ghosts) != 0 {
		t.Errorf("ghosts = %d, want 0 on a stage smaller than the spawn points", len(st.Ghosts))
	}
}

func TestDefaultStageCompiles(t *testing.T) {
	st, err := Compile(DefaultSource())
	if err != nil {
		t.Fatalf("Compile(DefaultSource): %v", err)
	}
	if st.Grid.Cols() != 28 || st.Grid.Rows() != 31 {
		t.Fatalf("grid = %dx%d, want 28x31", st.Grid.Cols(), st.Grid.Rows())
	}
	if len(st.Ghosts) != 4 {
		t.Fatalf("ghosts = %d, want 4", len(st.Ghosts))
	}
	if n := st.Grid.CountDots(); n != 442 {
		t.Errorf("dots = %d, want 442", n)
	}
	// No wall cell may silently drop out of the compiled stage: a barrier
	// symbol that resolves to no texture would leave a hole in the maze.
	src := DefaultSource()
	rows := len(src.Rows)
	for i, row := range src.Rows {
		for col, sym := range row {
			switch sym {
			case 'B', 'S', 'I', 'D':
				c := maze.C(col, rows-1-i)
				if _, ok := st.Grid.At(c).(*maze.Barrier); !ok {
					t.Errorf("wall symbol %c at (%d,%d) did not materialize", sym, c.Col, c.Row)
				}
			}
		}
	}
}

func TestCompileDeterministic(t *testing.T) {
	a, err := Compile(DefaultSource())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compile(DefaultSource())
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < a.Grid.Rows(); r++ {
		for col := 0; col < a.Grid.Cols(); col++ {
			c := maze.C(col, r)
			ba, aOK := a.Grid.At(c).(*maze.Barrier)
			bb, bOK := b.Grid.At(c).(*maze.Barrier)
			if aOK != bOK {
				t.Fatalf("cell (%d,%d): barrier presence differs between runs", col, r)
			}
			if aOK && (ba.Kind != bb.Kind || ba.Tag != bb.Tag) {
				t.Fatalf("cell (%d,%d): %s/%s vs %s/%s", col, r, ba.Kind, ba.Tag, bb.Kind, bb.Tag)
			}
		}
	}
}

func TestGhostSpawnSetup(t *testing.T) {
	st, err := Compile(DefaultSource())
	if err != nil {
		t.Fatal(err)
	}
	byType := map[maze.GhostType]*maze.Ghost{}
	for _, g := range st.Ghosts {
		byType[g.Type] = g
	}
	blinky := byType[maze.GhostBlinky]
	if blinky == nil {
		t.Fatal("missing Blinky")
	}
	if blinky.GridPos != maze.C(13, 19) {
		t.Errorf("Blinky spawn = %v, want (13,19)", blinky.GridPos)
	}
	if blinky.ActivationTimer != 0 {
		t.Errorf("Blinky activation delay = %v, want 0", blinky.ActivationTimer)
	}
	x, _ := st.Grid.CellPos(maze.C(13, 19))
	if blinky.Box.X != x+12 {
		t.Errorf("Blinky X = %v, want %v (half-cell offset)", blinky.Box.X, x+12)
	}
	if clyde := byType[maze.GhostClyde]; clyde == nil || clyde.ActivationTimer != 9 {
		t.Error("Clyde should spawn with a 9 second activation delay")
	}
}
