// Package game implements the maze-chase game on top of the platform
// primitives: a player chased by four ghosts through a pellet maze, with
// power-ups that briefly turn the tables.
package game

import (
	"math/rand"

	"github.com/mkarwowski/pacmaze/internal/config"
	"github.com/mkarwowski/pacmaze/internal/core"
	"github.com/mkarwowski/pacmaze/internal/maze"
	"github.com/mkarwowski/pacmaze/internal/registry"
	"github.com/mkarwowski/pacmaze/internal/stage"
)

// deathAnimationFrames is the terminal frame of the death animation; once
// reached the player respawns or the run ends.
const deathAnimationFrames = 11

// Game implements the maze game.
type Game struct {
	cfg config.Config
	rt  core.RuntimeConfig
	rng *rand.Rand
	dt  float64

	tick uint64

	src *stage.Source
	st  *stage.Stage

	pc  *playerController
	gcs []*ghostController

	score           int
	lives           int
	highScore       int
	ghostMultiplier int

	gameOver         bool
	paused           bool
	extraLifeAwarded bool

	// Ghosts stay parked until the player makes the first move.
	ghostsActive bool

	// Stage-complete flash animation state.
	stageComplete bool
	stageTimer    float64
	flashTimer    float64
	flashOn       bool

	tooSmall bool
	initErr  error
}

// Package-level variables for config/stage selection (like the other games'
// pattern): the CLI sets these before the game is created.
var (
	configPath string
	stagePath  string
)

// SetConfigPath sets the gameplay config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetStagePath sets a custom stage file path; empty means the embedded
// classic stage.
func SetStagePath(path string) {
	stagePath = path
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pacmaze", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacmaze"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pacmaze"
}

// SetHighScore seeds the high score shown in the HUD, typically from the
// score database. It only ever raises the value.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	if g.rt.TickRate <= 0 {
		g.rt.TickRate = 60
	}
	g.dt = 1.0 / float64(g.rt.TickRate)
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.extraLifeAwarded = false
	g.stageComplete = false
	g.initErr = nil

	loaded, err := config.Load(configPath)
	if err != nil {
		g.initErr = err
		g.gameOver = true
		return
	}
	g.cfg = loaded
	g.lives = g.cfg.Gameplay.Lives
	g.ghostMultiplier = g.cfg.Scoring.GhostBase

	if stagePath != "" {
		g.src, err = stage.LoadSource(stagePath)
		if err != nil {
			g.initErr = err
			g.gameOver = true
			return
		}
	} else {
		g.src = stage.DefaultSource()
	}

	if err := g.buildStage(); err != nil {
		g.initErr = err
		g.gameOver = true
		return
	}

	// The maze needs one character per cell plus the HUD rows.
	requiredW := g.st.Grid.Cols() + 2
	requiredH := g.st.Grid.Rows() + 3
	g.tooSmall = g.rt.ScreenW < requiredW || g.rt.ScreenH < requiredH
}

// buildStage (re)compiles the stage and wires fresh controllers to the new
// actors. Score, lives and high score survive; everything stage-local is
// rebuilt from scratch.
func (g *Game) buildStage() error {
	st, err := stage.Compile(g.src)
	if err != nil {
		return err
	}
	g.st = st

	g.pc = newPlayerController(st.Player, st.Grid, g.cfg.Movement.PlayerSpeed)
	g.gcs = g.gcs[:0]
	for _, ghost := range st.Ghosts {
		g.gcs = append(g.gcs, newGhostController(ghost, st.Grid, st.Player, g.rng, g.cfg))
	}

	g.ghostsActive = false
	g.ghostMultiplier = g.cfg.Scoring.GhostBase
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		high := g.highScore
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.rt.ScreenW,
			ScreenH:  g.rt.ScreenH,
			TickRate: g.rt.TickRate,
		})
		g.highScore = high
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall || g.st == nil {
		return core.StepResult{State: g.State()}
	}

	if g.stageComplete {
		g.updateStageCompleteAnimation()
		return core.StepResult{State: g.State()}
	}

	if g.st.Player.Dying {
		g.updateDeathAnimation()
		return core.StepResult{State: g.State()}
	}

	g.pc.HandleInput(input)
	result := g.pc.Update(g.dt)
	g.applyTileEntry(result)
	g.advanceChompAnimation()

	if !g.ghostsActive && g.pc.HasMoved() {
		g.ghostsActive = true
	}
	if g.ghostsActive {
		for _, gc := range g.gcs {
			gc.Update(g.dt)
		}
	}

	g.resolveGhostCollisions()
	if g.st.Player.Dying {
		return core.StepResult{State: g.State()}
	}

	if !g.stageComplete && g.st.Grid.CountDots() == 0 {
		g.beginStageCompleteAnimation()
	}

	if g.score > g.highScore {
		g.highScore = g.score
	}
	if !g.extraLifeAwarded && g.score >= g.cfg.Scoring.ExtraLifeScore {
		g.extraLifeAwarded = true
		g.lives++
	}

	return core.StepResult{State: g.State()}
}

// applyTileEntry converts the player's tile-entry result into score and
// ghost state changes.
func (g *Game) applyTileEntry(r TileEntryResult) {
	if !r.DotEaten {
		return
	}
	if r.PowerUpEaten {
		g.score += g.cfg.Scoring.PowerUp
		g.powerUpEaten()
	} else {
		g.score += g.cfg.Scoring.Dot
	}
}

// powerUpEaten resets the eat-streak multiplier and frightens every ghost
// that is out of the pen and not already heading home.
func (g *Game) powerUpEaten() {
	g.ghostMultiplier = g.cfg.Scoring.GhostBase
	for _, gc := range g.gcs {
		ghost := gc.ghost
		if ghost.Activated && !ghost.Eaten {
			ghost.Frightened = true
			ghost.FrightenedTimer = g.cfg.Frightened.Duration
			ghost.BlinkTimer = 0
			ghost.BlinkFrame = false
		}
	}
}

// resolveGhostCollisions handles overlaps between the player and ghosts.
// A frightened ghost is eaten for doubling points; any other contact,
// including a ghost still waiting in the pen, kills the player.
func (g *Game) resolveGhostCollisions() {
	player := g.st.Player
	for _, gc := range g.gcs {
		ghost := gc.ghost
		if !player.Box.Overlaps(ghost.Box) {
			continue
		}
		if !ghost.Activated {
			g.killPlayer()
			return
		}
		if ghost.Frightened && !ghost.Eaten {
			g.score += g.ghostMultiplier
			if g.ghostMultiplier < g.cfg.Scoring.GhostMax {
				g.ghostMultiplier *= 2
			}
			gc.SendHome()
		} else if !ghost.Frightened && !ghost.Eaten {
			g.killPlayer()
			return
		}
	}
}

func (g *Game) killPlayer() {
	player := g.st.Player
	player.Dying = true
	player.DeathFrame = 0
	player.AnimTimer = 0
	g.pc.Halt()
	g.removeGhostsFromField()
}

// removeGhostsFromField parks all ghosts far off the playfield. They come
// back on the next respawn or stage rebuild.
func (g *Game) removeGhostsFromField() {
	for _, gc := range g.gcs {
		ghost := gc.ghost
		ghost.GridPos = maze.C(-1, -1)
		ghost.SetDisplayPos(-100, -100)
		ghost.Stop()
	}
}

func (g *Game) updateDeathAnimation() {
	player := g.st.Player
	player.AnimTimer += g.dt
	if player.AnimTimer >= g.cfg.Animation.FrameInterval {
		player.AnimTimer -= g.cfg.Animation.FrameInterval
		player.DeathFrame++
	}
	if player.DeathFrame >= deathAnimationFrames {
		g.respawn()
	}
}

// respawn consumes a life and puts everyone back at their spawn points, or
// ends the run when no lives remain.
func (g *Game) respawn() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		return
	}

	player := g.st.Player
	player.Dying = false
	player.DeathFrame = 0
	player.AnimTimer = 0
	player.Frame = 0
	player.GridPos = g.st.PlayerSpawn.Cell
	player.SetDisplayPos(g.st.PlayerSpawn.X, g.st.PlayerSpawn.Y)
	player.LastDir = maze.DirNone
	// Fresh controller: clears the direction buffer and the has-moved
	// flag, so ghosts wait for the first input again.
	g.pc = newPlayerController(player, g.st.Grid, g.cfg.Movement.PlayerSpeed)

	for _, gc := range g.gcs {
		ghost := gc.ghost
		ghost.GridPos = ghost.StartGrid
		ghost.SetDisplayPos(ghost.StartDisplay.X, ghost.StartDisplay.Y)
		ghost.Stop()
		ghost.LastDir = maze.DirNone
		ghost.Activated = false
		ghost.ActivationTimer = ghost.Type.ActivationDelay()
		ghost.Frightened = false
		ghost.FrightenedTimer = 0
		ghost.BlinkTimer = 0
		ghost.BlinkFrame = false
		ghost.Eaten = false
		gc.committed = maze.DirNone
	}
	g.ghostsActive = false
}

// beginStageCompleteAnimation freezes the field and starts the barrier
// flash once the last pellet is eaten.
func (g *Game) beginStageCompleteAnimation() {
	g.stageComplete = true
	g.stageTimer = g.cfg.Animation.StageFlashDuration
	g.flashTimer = 0
	g.flashOn = false
	g.pc.Halt()
	g.removeGhostsFromField()
}

func (g *Game) updateStageCompleteAnimation() {
	g.pc.Halt()
	g.stageTimer -= g.dt
	g.flashTimer -= g.dt
	if g.flashTimer <= 0 {
		g.flashTimer = g.cfg.Animation.StageFlashInterval
		g.flashOn = !g.flashOn
		g.applyBarrierFlash(g.flashOn)
	}
	if g.stageTimer <= 0 {
		g.stageComplete = false
		// Endless loop: the same stage fills back up with pellets.
		if err := g.buildStage(); err != nil {
			g.initErr = err
			g.gameOver = true
		}
	}
}

// applyBarrierFlash toggles every wall (except the pen door) between white
// and its original color.
func (g *Game) applyBarrierFlash(on bool) {
	g.st.Grid.Barriers(func(_ maze.Coord, b *maze.Barrier) {
		if b.Kind == maze.BarrierDoor {
			return
		}
		if on {
			b.Color = core.ColorBrightWhite
		} else {
			b.Color = b.OriginalColor
		}
	})
}

// advanceChompAnimation toggles the player's mouth while moving.
func (g *Game) advanceChompAnimation() {
	player := g.st.Player
	if !player.Moving {
		return
	}
	player.AnimTimer += g.dt
	if player.AnimTimer >= g.cfg.Animation.FrameInterval {
		player.AnimTimer -= g.cfg.Animation.FrameInterval
		player.Frame = (player.Frame + 1) % 2
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
