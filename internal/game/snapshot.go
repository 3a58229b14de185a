package game

import "github.com/mkarwowski/pacmaze/internal/maze"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateDying       GameStateType = "dying"
	StateStageClear  GameStateType = "stage_clear"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// GhostSnapshot captures one ghost's state.
type GhostSnapshot struct {
	Type       maze.GhostType
	Cell       maze.Coord
	X, Y       float64
	Dir        maze.Dir
	Activated  bool
	Frightened bool
	Eaten      bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Score      int
	HighScore  int
	Lives      int
	DotsLeft   int
	Multiplier int
	PlayerCell maze.Coord
	PlayerX    float64
	PlayerY    float64
	PlayerDir  maze.Dir
	Ghosts     []GhostSnapshot
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.stageComplete:
		state = StateStageClear
	case g.st != nil && g.st.Player.Dying:
		state = StateDying
	}

	snap := Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		HighScore:  g.highScore,
		Lives:      g.lives,
		Multiplier: g.ghostMultiplier,
		State:      state,
	}
	if g.st == nil {
		return snap
	}

	snap.DotsLeft = g.st.Grid.CountDots()
	snap.PlayerCell = g.st.Player.GridPos
	snap.PlayerX = g.st.Player.Box.X
	snap.PlayerY = g.st.Player.Box.Y
	snap.PlayerDir = g.st.Player.LastDir
	for _, ghost := range g.st.Ghosts {
		snap.Ghosts = append(snap.Ghosts, GhostSnapshot{
			Type:       ghost.Type,
			Cell:       ghost.GridPos,
			X:          ghost.Box.X,
			Y:          ghost.Box.Y,
			Dir:        ghost.LastDir,
			Activated:  ghost.Activated,
			Frightened: ghost.Frightened,
			Eaten:      ghost.Eaten,
		})
	}
	return snap
}
