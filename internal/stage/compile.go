package stage

import (
	"fmt"

	"github.com/mkarwowski/pacmaze/internal/maze"
)

// Ghost spawn points for the classic layout. Spawns that fall outside a
// smaller custom stage are skipped, so reduced test stages compile without
// ghosts.
var ghostSpawns = []struct {
	kind      maze.GhostType
	cell      maze.Coord
	halfCellX bool
}{
	{maze.GhostBlinky, maze.C(13, 19), true},
	{maze.GhostPinky, maze.C(13, 13), true},
	{maze.GhostInky, maze.C(9, 16), false},
	{maze.GhostClyde, maze.C(18, 16), false},
}

// Stage is the result of compiling a Source: a populated grid plus the
// actors placed on it.
type Stage struct {
	Grid   *maze.Grid
	Player *maze.Player
	Ghosts []*maze.Ghost

	// PlayerSpawn is the display position the player starts at and
	// returns to after losing a life.
	PlayerSpawn struct {
		Cell maze.Coord
		X, Y float64
	}
}

// Compile turns a stage source into a playable stage. It fails on malformed
// player spawns and on barrier shapes whose texture is not allowed for
// their kind; no partially built stage is ever returned.
func Compile(src *Source) (*Stage, error) {
	rows := len(src.Rows)
	cols := len(src.Rows[0])
	grid := maze.NewGrid(cols, rows)
	st := &Stage{Grid: grid}

	// The source is authored top-first; flip so row 0 is the bottom.
	cells := make([][]byte, rows)
	for i, row := range src.Rows {
		cells[rows-1-i] = []byte(row)
	}

	symbolAt := func(c maze.Coord) byte {
		if c.Col < 0 || c.Col >= cols || c.Row < 0 || c.Row >= rows {
			return ' '
		}
		return cells[c.Row][c.Col]
	}

	// Pass 1: scan symbols into barrier kinds, dots and the player spawn.
	barriers := make(map[maze.Coord]maze.BarrierKind)
	playerCount := 0
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			c := maze.C(col, r)
			switch cells[r][col] {
			case 'B':
				barriers[c] = maze.BarrierBorder
			case 'S':
				barriers[c] = maze.BarrierStructure
			case 'I':
				barriers[c] = maze.BarrierInterior
			case 'D':
				barriers[c] = maze.BarrierDoor
			case 'F':
				grid.Set(c, &maze.Dot{})
			case 'U':
				grid.Set(c, &maze.Dot{PowerUp: true})
			case 'p':
				playerCount++
				if playerCount > 1 {
					return nil, fmt.Errorf("stage: more than one player spawn")
				}
				st.placePlayer(c, symbolAt)
			default:
				// Unknown symbols (including 'm' markers) are skipped.
			}
		}
	}
	if playerCount == 0 {
		return nil, fmt.Errorf("stage: no player spawn")
	}

	// Passes 2+3: analyze each barrier's neighborhood and pick a texture.
	// Pass 4: materialize everything that resolved to a real shape; cells
	// that stay Default are dropped, matching the source interpreter this
	// format descends from.
	for c, kind := range barriers {
		tag := selectTexture(kind, analyzeNeighbours(c, barriers, cols, rows))
		if tag == maze.TagDefault {
			continue
		}
		b, err := maze.NewBarrier(kind, tag)
		if err != nil {
			return nil, fmt.Errorf("stage: cell (%d,%d): %w", c.Col, c.Row, err)
		}
		grid.Set(c, b)
	}

	grid.Set(st.PlayerSpawn.Cell, st.Player)

	for _, spawn := range ghostSpawns {
		if !grid.InBounds(spawn.cell) {
			continue
		}
		x, y := grid.CellPos(spawn.cell)
		if spawn.halfCellX {
			x += float64(grid.CellSize()) / 2
		}
		ghost := &maze.Ghost{Type: spawn.kind}
		ghost.GridPos = spawn.cell
		ghost.Box = maze.Box{X: x, Y: y, Size: float64(grid.CellSize())}
		ghost.ActivationTimer = spawn.kind.ActivationDelay()
		ghost.StartGrid = spawn.cell
		ghost.StartDisplay.X = x
		ghost.StartDisplay.Y = y
		st.Ghosts = append(st.Ghosts, ghost)
		grid.Set(spawn.cell, ghost)
	}

	return st, nil
}

// placePlayer creates the player at its spawn cell. An adjacent 'm' marker
// shifts the display position half a cell toward the marker, letting a
// stage center the player between two cells.
func (st *Stage) placePlayer(c maze.Coord, symbolAt func(maze.Coord) byte) {
	x, y := st.Grid.CellPos(c)
	half := float64(st.Grid.CellSize()) / 2

	switch {
	case symbolAt(c.Add(1, 0)) == 'm':
		x += half
	case symbolAt(c.Add(-1, 0)) == 'm':
		x -= half
	case symbolAt(c.Add(0, 1)) == 'm':
		y += half
	case symbolAt(c.Add(0, -1)) == 'm':
		y -= half
	}

	p := &maze.Player{}
	p.GridPos = c
	p.Box = maze.Box{X: x, Y: y, Size: float64(st.Grid.CellSize())}
	st.Player = p
	st.PlayerSpawn.Cell = c
	st.PlayerSpawn.X = x
	st.PlayerSpawn.Y = y
}
