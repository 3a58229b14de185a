package game

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mkarwowski/pacmaze/internal/core"
	"github.com/mkarwowski/pacmaze/internal/maze"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  36,
		TickRate: 60,
	})
	if g.initErr != nil {
		t.Fatalf("Reset failed: %v", g.initErr)
	}
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  36,
		TickRate: 60,
	}

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i == 0 {
			input.Set(core.ActionLeft)
		}
		if i == 120 {
			input.Set(core.ActionUp)
		}
		if i == 300 {
			input.Set(core.ActionRight)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Snapshots diverged:\n%+v\nvs\n%+v", snap1, snap2)
	}
}

func TestGhostsWaitForFirstMove(t *testing.T) {
	g := newTestGame(t, 42)

	input := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(input)
	}

	if g.ghostsActive {
		t.Error("Ghosts should stay parked until the player moves")
	}
	for _, ghost := range g.st.Ghosts {
		if ghost.Box.X != ghost.StartDisplay.X || ghost.Box.Y != ghost.StartDisplay.Y {
			t.Errorf("Ghost %v moved before first input: (%v,%v)", ghost.Type, ghost.Box.X, ghost.Box.Y)
		}
	}

	input.Set(core.ActionLeft)
	g.Step(input)

	if !g.ghostsActive {
		t.Error("Ghosts should activate after the first direction key")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, 1)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.paused {
		t.Fatal("Game should be paused")
	}

	// A paused game does not advance.
	before := g.Snapshot()
	empty := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(empty)
	}
	after := g.Snapshot()
	before.Tick, after.Tick = 0, 0
	if !reflect.DeepEqual(before, after) {
		t.Error("Paused game should not change state")
	}

	g.Step(input)
	if g.paused {
		t.Error("Second pause press should resume")
	}
}

func TestRestartPreservesHighScore(t *testing.T) {
	g := newTestGame(t, 7)

	g.score = 500
	g.Step(core.NewInputFrame())
	if g.highScore != 500 {
		t.Fatalf("High score should track score, got %d", g.highScore)
	}

	g.gameOver = true
	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.gameOver {
		t.Error("Restart should clear game over")
	}
	if g.score != 0 {
		t.Errorf("Restart should reset score, got %d", g.score)
	}
	if g.highScore != 500 {
		t.Errorf("Restart should keep high score, got %d", g.highScore)
	}
}

func TestGhostEatMultiplier(t *testing.T) {
	g := newTestGame(t, 3)
	ghost := g.st.Ghosts[0]
	player := g.st.Player

	base := g.cfg.Scoring.GhostBase
	max := g.cfg.Scoring.GhostMax

	want := 0
	expected := base
	for i := 0; i < 5; i++ {
		ghost.Activated = true
		ghost.Frightened = true
		ghost.Eaten = false
		ghost.Box = player.Box

		g.resolveGhostCollisions()

		want += expected
		if expected < max {
			expected *= 2
		}
		if g.score != want {
			t.Fatalf("Eat %d: score = %d, want %d", i+1, g.score, want)
		}
		if !ghost.Eaten {
			t.Fatalf("Eat %d: ghost should be heading home", i+1)
		}
	}

	if g.ghostMultiplier != max {
		t.Errorf("Multiplier should cap at %d, got %d", max, g.ghostMultiplier)
	}
}

func TestPowerUpResetsMultiplier(t *testing.T) {
	g := newTestGame(t, 3)
	g.ghostMultiplier = g.cfg.Scoring.GhostMax

	ghost := g.st.Ghosts[0]
	ghost.Activated = true
	parked := g.st.Ghosts[1] // still counting down in the pen

	g.powerUpEaten()

	if g.ghostMultiplier != g.cfg.Scoring.GhostBase {
		t.Errorf("Multiplier should reset to %d, got %d", g.cfg.Scoring.GhostBase, g.ghostMultiplier)
	}
	if !ghost.Frightened || ghost.FrightenedTimer != g.cfg.Frightened.Duration {
		t.Error("Active ghost should be frightened for the full duration")
	}
	if parked.Frightened {
		t.Error("Ghost still in the pen should not be frightened")
	}
}

func TestExtraLifeAwardedOnce(t *testing.T) {
	g := newTestGame(t, 9)
	lives := g.lives

	g.score = g.cfg.Scoring.ExtraLifeScore
	g.Step(core.NewInputFrame())

	if g.lives != lives+1 {
		t.Fatalf("Expected extra life at %d points, lives = %d", g.cfg.Scoring.ExtraLifeScore, g.lives)
	}

	g.score *= 2
	g.Step(core.NewInputFrame())

	if g.lives != lives+1 {
		t.Errorf("Extra life should only be awarded once, lives = %d", g.lives)
	}
}

func TestDeathAnimationAndRespawn(t *testing.T) {
	g := newTestGame(t, 11)
	lives := g.lives

	g.killPlayer()
	if !g.st.Player.Dying {
		t.Fatal("Player should be dying")
	}
	for _, ghost := range g.st.Ghosts {
		if ghost.Box.X != -100 || ghost.Box.Y != -100 {
			t.Errorf("Ghost %v should be removed from the field", ghost.Type)
		}
	}

	input := core.NewInputFrame()
	for i := 0; i < 1000 && g.st.Player.Dying; i++ {
		g.Step(input)
	}

	if g.st.Player.Dying {
		t.Fatal("Death animation never finished")
	}
	if g.lives != lives-1 {
		t.Errorf("Respawn should consume a life: %d, want %d", g.lives, lives-1)
	}
	if g.st.Player.Box.X != g.st.PlayerSpawn.X || g.st.Player.Box.Y != g.st.PlayerSpawn.Y {
		t.Error("Player should respawn at the spawn point")
	}
	if g.ghostsActive {
		t.Error("Ghosts should wait for input again after a respawn")
	}
	for _, ghost := range g.st.Ghosts {
		if ghost.Activated || ghost.Box.X != ghost.StartDisplay.X {
			t.Errorf("Ghost %v should be back in the pen", ghost.Type)
		}
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	g := newTestGame(t, 13)
	g.lives = 1

	g.killPlayer()
	input := core.NewInputFrame()
	for i := 0; i < 1000 && !g.gameOver; i++ {
		g.Step(input)
	}

	if !g.gameOver {
		t.Fatal("Losing the last life should end the game")
	}
	if g.lives != 0 {
		t.Errorf("Lives should be 0, got %d", g.lives)
	}
}

func TestStageClearRebuild(t *testing.T) {
	g := newTestGame(t, 17)
	totalDots := g.st.Grid.CountDots()
	g.score = 1234

	// Eat everything.
	for r := 0; r < g.st.Grid.Rows(); r++ {
		for c := 0; c < g.st.Grid.Cols(); c++ {
			cell := maze.C(c, r)
			if _, isDot := g.st.Grid.At(cell).(*maze.Dot); isDot {
				g.st.Grid.Set(cell, nil)
			}
		}
	}

	input := core.NewInputFrame()
	g.Step(input)
	if !g.stageComplete {
		t.Fatal("Clearing the last pellet should start the stage-complete animation")
	}
	if g.Snapshot().State != StateStageClear {
		t.Errorf("Snapshot state = %s, want %s", g.Snapshot().State, StateStageClear)
	}

	for i := 0; i < 300 && g.stageComplete; i++ {
		g.Step(input)
	}

	if g.stageComplete {
		t.Fatal("Stage-complete animation never finished")
	}
	if got := g.st.Grid.CountDots(); got != totalDots {
		t.Errorf("Rebuilt stage has %d dots, want %d", got, totalDots)
	}
	if g.score != 1234 {
		t.Errorf("Score should survive the rebuild, got %d", g.score)
	}
	if g.ghostsActive {
		t.Error("Ghosts should wait for input on the fresh stage")
	}
}

func TestWrapTeleportEdges(t *testing.T) {
	g := newTestGame(t, 19)
	grid := g.st.Grid
	size := float64(grid.CellSize())
	worldW := grid.WorldWidth()
	worldH := grid.WorldHeight()

	cases := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"left exit", -size, 100, worldW, 100},
		{"right exit", worldW, 100, -size, 100},
		{"bottom exit", 100, -size, 100, worldH},
		{"top exit", 100, worldH, 100, -size},
	}
	for _, tc := range cases {
		a := &maze.Actor{Box: maze.Box{X: tc.x, Y: tc.y, Size: size}}
		wrapTeleport(a, grid)
		if a.Box.X != tc.wantX || a.Box.Y != tc.wantY {
			t.Errorf("%s: got (%v,%v), want (%v,%v)", tc.name, a.Box.X, a.Box.Y, tc.wantX, tc.wantY)
		}
	}
}

func TestAlignedCellEpsilon(t *testing.T) {
	g := newTestGame(t, 23)
	grid := g.st.Grid
	x, y := grid.CellPos(maze.C(5, 5))
	size := float64(grid.CellSize())

	exact := &maze.Actor{Box: maze.Box{X: x, Y: y, Size: size}}
	if cell, ok := alignedCell(exact, grid); !ok || cell != maze.C(5, 5) {
		t.Errorf("Exact position should align with (5,5), got %v ok=%v", cell, ok)
	}

	near := &maze.Actor{Box: maze.Box{X: x + 0.5, Y: y - 0.5, Size: size}}
	if _, ok := alignedCell(near, grid); !ok {
		t.Error("Half-pixel offset should still count as aligned")
	}

	far := &maze.Actor{Box: maze.Box{X: x + 2, Y: y, Size: size}}
	if _, ok := alignedCell(far, grid); ok {
		t.Error("Two-pixel offset should not count as aligned")
	}
}

func TestGhostNoReversal(t *testing.T) {
	g := newTestGame(t, 29)
	gc := g.gcs[0]

	gc.committed = maze.DirRight
	dirs := []maze.Dir{maze.DirLeft, maze.DirRight}
	got := gc.withoutReversal(dirs)
	if len(got) != 1 || got[0] != maze.DirRight {
		t.Errorf("Reversal should be stripped when there is a choice, got %v", got)
	}

	only := gc.withoutReversal([]maze.Dir{maze.DirLeft})
	if len(only) != 1 || only[0] != maze.DirLeft {
		t.Errorf("A dead end keeps the reversal, got %v", only)
	}
}

func TestFrightenedExpires(t *testing.T) {
	g := newTestGame(t, 31)
	gc := g.gcs[0]
	ghost := gc.ghost

	ghost.Activated = true
	ghost.Frightened = true
	ghost.FrightenedTimer = 0.05
	ghost.BlinkFrame = true

	gc.Update(0.1)

	if ghost.Frightened {
		t.Error("Frightened state should expire with the timer")
	}
	if ghost.BlinkFrame {
		t.Error("Blink state should reset when frightened expires")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     33,
		ScreenW:  20,
		ScreenH:  10,
		TickRate: 60,
	})

	if !g.tooSmall {
		t.Error("Game should detect window is too small")
	}
	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Errorf("State should be %s, got %s", StatePausedSmall, snap.State)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 44)

	screen := core.NewScreen(80, 36)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Pacmaze") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(content, "·") {
		t.Error("Maze should contain pellets")
	}
	if !strings.Contains(content, "C") {
		t.Error("Maze should contain the player")
	}
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "pacmaze" {
		t.Errorf("ID should be 'pacmaze', got %s", g.ID())
	}
	if g.Title() != "Pacmaze" {
		t.Errorf("Title should be 'Pacmaze', got %s", g.Title())
	}
}
