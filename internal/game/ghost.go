package game

import (
	"math"
	"math/rand"

	"github.com/mkarwowski/pacmaze/internal/config"
	"github.com/mkarwowski/pacmaze/internal/maze"
)

// ghostSubStep is the fixed inner time step for ghost simulation. Ghosts
// always integrate in these slices regardless of the outer tick rate, so
// their tile-entry decisions are reproducible across frame rates.
const ghostSubStep = 1.0 / 60.0

// ghostController drives one ghost: activation countdown, the frightened
// window, movement, and the chase decision at every tile entry.
type ghostController struct {
	ghost  *maze.Ghost
	grid   *maze.Grid
	player *maze.Player
	rng    *rand.Rand

	speed      float64
	frightened config.FrightenedConfig
	animEvery  float64

	committed maze.Dir
}

func newGhostController(g *maze.Ghost, grid *maze.Grid, p *maze.Player, rng *rand.Rand, cfg config.Config) *ghostController {
	return &ghostController{
		ghost:      g,
		grid:       grid,
		player:     p,
		rng:        rng,
		speed:      cfg.Movement.GhostSpeed,
		frightened: cfg.Frightened,
		animEvery:  cfg.Animation.FrameInterval,
	}
}

// Update advances the ghost by one frame. The frightened and activation
// timers run on the raw frame delta; movement runs in fixed sub-steps.
func (gc *ghostController) Update(dt float64) {
	g := gc.ghost

	if g.Frightened && !g.Eaten {
		g.FrightenedTimer -= dt
		if g.FrightenedTimer <= gc.frightened.BlinkThreshold {
			g.BlinkTimer += dt
			if g.BlinkTimer >= gc.frightened.BlinkInterval {
				g.BlinkTimer = 0
				g.BlinkFrame = !g.BlinkFrame
			}
		}
		if g.FrightenedTimer <= 0 {
			g.Frightened = false
			g.BlinkTimer = 0
			g.BlinkFrame = false
		}
	}

	if !g.Activated {
		g.ActivationTimer -= dt
		if g.ActivationTimer > 0 {
			return
		}
		g.Activated = true
		// A ghost sent home after being eaten starts a fresh patrol.
		if g.Eaten {
			g.Eaten = false
			gc.commit(g.Type.InitialDir())
		}
	}

	remaining := dt
	for remaining > 0 {
		step := math.Min(ghostSubStep, remaining)
		g.Advance(step)
		if g.Moving {
			g.AnimTimer += step
			if g.AnimTimer >= gc.animEvery {
				g.AnimTimer = 0
				g.Frame = (g.Frame + 1) % 2
			}
		}
		wrapTeleport(&g.Actor, gc.grid)
		if g.LastDir == maze.DirNone {
			gc.commit(g.Type.InitialDir())
		}
		gc.processCurrentTile()
		remaining -= step
	}
}

// SendHome relocates the ghost to its spawn and restarts the activation
// countdown, as happens when the player eats it.
func (gc *ghostController) SendHome() {
	g := gc.ghost
	g.Eaten = true
	g.Frightened = false
	g.SetDisplayPos(g.StartDisplay.X, g.StartDisplay.Y)
	g.GridPos = g.StartGrid
	g.Activated = false
	g.ActivationTimer = g.Type.ActivationDelay()
}

func (gc *ghostController) commit(d maze.Dir) {
	gc.committed = d
	if d == maze.DirNone {
		gc.ghost.Stop()
		return
	}
	gc.ghost.SetDirection(d, gc.speed)
}

func (gc *ghostController) processCurrentTile() {
	cell, ok := alignedCell(&gc.ghost.Actor, gc.grid)
	if !ok {
		return
	}
	x, y := gc.grid.CellPos(cell)
	gc.ghost.SetDisplayPos(x, y)
	gc.ghost.GridPos = cell
	gc.chooseDirection(cell)
}

// dirProbeOrder fixes the order candidate directions are gathered in, so
// seeded runs are reproducible.
var dirProbeOrder = [...]maze.Dir{maze.DirLeft, maze.DirRight, maze.DirUp, maze.DirDown}

func (gc *ghostController) availableDirs(from maze.Coord) []maze.Dir {
	dirs := make([]maze.Dir, 0, 4)
	for _, d := range dirProbeOrder {
		if !isBarrierAhead(gc.grid, from, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// withoutReversal strips the direction opposite to the current heading,
// keeping ghosts from flip-flopping inside a corridor. Applied only when
// there is an actual choice.
func (gc *ghostController) withoutReversal(dirs []maze.Dir) []maze.Dir {
	if len(dirs) <= 1 || gc.committed == maze.DirNone {
		return dirs
	}
	opposite := gc.committed.Opposite()
	out := dirs[:0]
	for _, d := range dirs {
		if d != opposite {
			out = append(out, d)
		}
	}
	return out
}

// chooseDirection picks the ghost's next heading at a tile entry.
//
// Frightened ghosts wander uniformly. Otherwise each ghost chases a target
// derived from the player with its own imprecision: with the type's error
// chance it picks any open direction; otherwise it greedily minimizes the
// Manhattan distance to the target, breaking ties uniformly.
func (gc *ghostController) chooseDirection(cell maze.Coord) {
	g := gc.ghost

	if g.Frightened {
		gc.chooseRandomDirection(cell)
		return
	}

	dirs := gc.availableDirs(cell)
	if len(dirs) == 0 {
		gc.commit(maze.DirNone)
		return
	}
	dirs = gc.withoutReversal(dirs)

	target := gc.player.GridPos
	switch g.Type {
	case maze.GhostPinky:
		// Pinky aims ahead of the player.
		if d := gc.player.LastDir; d != maze.DirNone {
			dc, dr := d.Delta()
			target = target.Add(2*dc, 2*dr)
		}
	case maze.GhostInky:
		// Inky aims roughly at the player.
		target = target.Add(gc.rng.Intn(3)-1, gc.rng.Intn(3)-1)
	case maze.GhostClyde:
		// Clyde retreats to the far corner when it gets close.
		if cell.Manhattan(gc.player.GridPos) <= 8 {
			target = maze.C(0, gc.grid.Rows()-1)
		}
	}

	if gc.rng.Float64() < g.Type.ErrorChance() {
		gc.commit(dirs[gc.rng.Intn(len(dirs))])
		return
	}

	best := math.MaxInt
	candidates := dirs[:0]
	for _, d := range dirs {
		dist := cell.Step(d).Manhattan(target)
		if dist < best {
			best = dist
			candidates = dirs[:0]
			candidates = append(candidates, d)
		} else if dist == best {
			candidates = append(candidates, d)
		}
	}
	gc.commit(candidates[gc.rng.Intn(len(candidates))])
}

func (gc *ghostController) chooseRandomDirection(cell maze.Coord) {
	dirs := gc.availableDirs(cell)
	if len(dirs) == 0 {
		gc.commit(maze.DirNone)
		return
	}
	dirs = gc.withoutReversal(dirs)
	gc.commit(dirs[gc.rng.Intn(len(dirs))])
}
