package game

import (
	"github.com/mkarwowski/pacmaze/internal/core"
	"github.com/mkarwowski/pacmaze/internal/maze"
)

// TileEntryResult reports what happened when the player entered a tile.
// The orchestrator turns it into score and ghost-state changes.
type TileEntryResult struct {
	DotEaten     bool
	PowerUpEaten bool
}

// playerController drives the player actor: it buffers the latest direction
// key, applies it when the maze allows, and handles pellet pickup on tile
// entry.
type playerController struct {
	player *maze.Player
	grid   *maze.Grid
	speed  float64

	// committed is the direction currently driving the velocity; buffer
	// holds the most recent key press waiting for a legal turn.
	committed maze.Dir
	buffer    maze.Dir
	hasMoved  bool
}

func newPlayerController(p *maze.Player, g *maze.Grid, speed float64) *playerController {
	return &playerController{player: p, grid: g, speed: speed}
}

// HandleInput records the latest direction key into the one-slot buffer.
// The newest press always wins; the buffer is consumed at the next legal
// turning point.
func (pc *playerController) HandleInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionLeft):
		pc.buffer = maze.DirLeft
		pc.hasMoved = true
	case input.Has(core.ActionRight):
		pc.buffer = maze.DirRight
		pc.hasMoved = true
	case input.Has(core.ActionUp):
		pc.buffer = maze.DirUp
		pc.hasMoved = true
	case input.Has(core.ActionDown):
		pc.buffer = maze.DirDown
		pc.hasMoved = true
	}
	pc.applyCommitted()
}

// Update advances the player by one frame and runs the tile-entry logic
// when the player is aligned with a cell.
func (pc *playerController) Update(dt float64) TileEntryResult {
	pc.player.Advance(dt)
	wrapTeleport(&pc.player.Actor, pc.grid)
	pc.applyPendingWhenStopped()
	return pc.processCurrentTile()
}

// HasMoved reports whether any direction key was pressed since the last
// (re)spawn. Ghosts hold still until then.
func (pc *playerController) HasMoved() bool {
	return pc.hasMoved
}

// Halt stops the player immediately, e.g. when dying or during the
// stage-complete animation.
func (pc *playerController) Halt() {
	pc.committed = maze.DirNone
	pc.player.Stop()
}

func (pc *playerController) applyCommitted() {
	if pc.committed == maze.DirNone {
		pc.player.Stop()
		return
	}
	pc.player.SetDirection(pc.committed, pc.speed)
}

// applyPendingWhenStopped lets a stopped player start moving as soon as the
// buffered direction is clear, without waiting for a tile entry.
func (pc *playerController) applyPendingWhenStopped() {
	if pc.committed != maze.DirNone || pc.buffer == maze.DirNone {
		return
	}
	if !isBarrierAhead(pc.grid, pc.player.GridPos, pc.buffer) {
		pc.takeBufferedDirection()
	}
}

func (pc *playerController) processCurrentTile() TileEntryResult {
	var result TileEntryResult

	cell, ok := alignedCell(&pc.player.Actor, pc.grid)
	if !ok {
		return result
	}

	// Snap to the tile and update the grid coordinate.
	x, y := pc.grid.CellPos(cell)
	pc.player.SetDisplayPos(x, y)
	pc.player.GridPos = cell

	// Eat whatever pellet the tile holds.
	if dot, isDot := pc.grid.At(cell).(*maze.Dot); isDot {
		pc.grid.Set(cell, nil)
		result.DotEaten = true
		result.PowerUpEaten = dot.PowerUp
	}

	// A buffered turn takes effect at tile entry if the way is clear.
	if pc.buffer != maze.DirNone && pc.buffer != pc.committed {
		if !isBarrierAhead(pc.grid, cell, pc.buffer) {
			pc.takeBufferedDirection()
		}
	}

	// Running into a wall stops the player on the tile.
	if isBarrierAhead(pc.grid, cell, pc.committed) {
		pc.Halt()
	}

	return result
}

func (pc *playerController) takeBufferedDirection() {
	pc.committed = pc.buffer
	pc.buffer = maze.DirNone
	pc.applyCommitted()
}
