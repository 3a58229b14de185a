// Package maze contains the domain model for the maze game: grid cells,
// barriers with texture tags, collectible dots, and the player/ghost actors.
// It is pure data and geometry; movement and AI live in internal/game.
package maze

import "github.com/mkarwowski/pacmaze/internal/core"

// Dir is a cardinal movement direction. DirNone means "not moving".
type Dir int

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the per-axis grid step for the direction.
// Row 0 is the bottom of the maze, so Up increases the row index.
func (d Dir) Delta() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction, or DirNone for DirNone.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Coord identifies a grid cell by column and row.
type Coord struct {
	Col int
	Row int
}

// C is a shorthand constructor for Coord.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// Add returns the coordinate offset by (dc, dr).
func (c Coord) Add(dc, dr int) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Step returns the neighboring coordinate in the given direction.
func (c Coord) Step(d Dir) Coord {
	dc, dr := d.Delta()
	return c.Add(dc, dr)
}

// Manhattan returns the L1 distance between two coordinates.
func (c Coord) Manhattan(other Coord) int {
	return core.Abs(c.Col-other.Col) + core.Abs(c.Row-other.Row)
}
