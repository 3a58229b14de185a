package game

import (
	"math"

	"github.com/mkarwowski/pacmaze/internal/maze"
)

// alignmentEpsilon is how close (in pixels, per axis) an actor must be to a
// cell's position to count as standing on that cell.
const alignmentEpsilon = 1.0

// alignedCell returns the cell the actor is aligned with, if any. An actor
// is aligned when its box origin is within the epsilon of the cell position
// on both axes; in between cells it has no aligned cell and tile-entry
// logic is skipped.
func alignedCell(a *maze.Actor, g *maze.Grid) (maze.Coord, bool) {
	ox, oy := g.CellPos(maze.C(0, 0))
	cs := float64(g.CellSize())

	cell := maze.C(
		int(math.Round((a.Box.X-ox)/cs)),
		int(math.Round((a.Box.Y-oy)/cs)),
	)
	if !g.InBounds(cell) {
		return maze.Coord{}, false
	}

	cx, cy := g.CellPos(cell)
	if math.Abs(a.Box.X-cx) <= alignmentEpsilon && math.Abs(a.Box.Y-cy) <= alignmentEpsilon {
		return cell, true
	}
	return maze.Coord{}, false
}

// isBarrierAhead reports whether moving one cell in the given direction
// runs into a wall. Cells beyond the grid are open: that is how actors
// reach the wrap-around tunnel.
func isBarrierAhead(g *maze.Grid, from maze.Coord, d maze.Dir) bool {
	if d == maze.DirNone {
		return false
	}
	return g.IsBlocked(from.Step(d))
}

// wrapTeleport moves an actor to the opposite side of the playfield once
// its box has fully left it on either axis.
func wrapTeleport(a *maze.Actor, g *maze.Grid) {
	x, y := a.Box.X, a.Box.Y
	size := a.Box.Size
	worldW := g.WorldWidth()
	worldH := g.WorldHeight()

	if x+size <= 0 {
		x = worldW
	} else if x >= worldW {
		x = -size
	}
	if y+size <= 0 {
		y = worldH
	} else if y >= worldH {
		y = -size
	}
	a.SetDisplayPos(x, y)
}
