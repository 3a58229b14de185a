package maze

import "fmt"

// Standard maze geometry, matching the classic arcade layout.
const (
	DefaultCols = 28
	DefaultRows = 31
	CellSize    = 24
	// The maze is drawn offset from the world origin to leave room for
	// the HUD strip below it.
	OriginX = 0
	OriginY = 48
)

// CellContent is the closed set of things a grid cell can hold.
// A nil CellContent means the cell is empty (walkable, nothing to eat).
// Only types in this package implement it.
type CellContent interface {
	cellContent()
}

// Dot is a collectible pellet. PowerUp marks the large frightening pellet.
type Dot struct {
	PowerUp bool
}

func (*Dot) cellContent() {}

// Grid is the maze playfield: a cols×rows matrix of cell contents plus the
// pixel-space mapping used by the movement code. It is rebuilt wholesale
// whenever a stage is (re)compiled.
type Grid struct {
	cols     int
	rows     int
	cellSize int
	originX  int
	originY  int
	cells    [][]CellContent // indexed [row][col], row 0 at the bottom
}

// NewGrid creates an empty grid with the given dimensions and the standard
// cell size and origin offset.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: CellSize,
		originX:  OriginX,
		originY:  OriginY,
	}
	g.cells = make([][]CellContent, rows)
	for r := range g.cells {
		g.cells[r] = make([]CellContent, cols)
	}
	return g
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the side length of one cell in pixels.
func (g *Grid) CellSize() int { return g.cellSize }

// WorldWidth returns the pixel width of the playfield including the origin
// offset; actors wrap-teleport when they fully leave this range.
func (g *Grid) WorldWidth() float64 {
	return float64(g.cols*g.cellSize + g.originX)
}

// WorldHeight returns the pixel height of the playfield including the
// origin offset.
func (g *Grid) WorldHeight() float64 {
	return float64(g.rows*g.cellSize + g.originY)
}

// InBounds reports whether the coordinate addresses a cell of this grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// At returns the content of the cell, or nil if the cell is empty.
// Panics on out-of-range coordinates: callers are expected to bounds-check
// with InBounds first, so a violation is a programming error.
func (g *Grid) At(c Coord) CellContent {
	g.check(c)
	return g.cells[c.Row][c.Col]
}

// Set stores content (or nil to empty the cell). Panics on out-of-range
// coordinates.
func (g *Grid) Set(c Coord, content CellContent) {
	g.check(c)
	g.cells[c.Row][c.Col] = content
}

func (g *Grid) check(c Coord) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("maze: cell (%d,%d) out of range for %dx%d grid", c.Col, c.Row, g.cols, g.rows))
	}
}

// CellPos returns the pixel-space position of the cell's lower-left corner.
func (g *Grid) CellPos(c Coord) (x, y float64) {
	return float64(c.Col*g.cellSize + g.originX), float64(c.Row*g.cellSize + g.originY)
}

// IsBlocked reports whether the cell holds a barrier. Out-of-bounds cells
// are treated as open so actors can enter the wrap-around tunnel.
func (g *Grid) IsBlocked(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	_, ok := g.cells[c.Row][c.Col].(*Barrier)
	return ok
}

// CountDots returns the number of remaining pellets (including power-ups).
func (g *Grid) CountDots() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.cols; col++ {
			if _, ok := g.cells[r][col].(*Dot); ok {
				n++
			}
		}
	}
	return n
}

// Barriers calls fn for every barrier cell. Used by the stage-complete
// flash animation and the renderer.
func (g *Grid) Barriers(fn func(c Coord, b *Barrier)) {
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.cols; col++ {
			if b, ok := g.cells[r][col].(*Barrier); ok {
				fn(C(col, r), b)
			}
		}
	}
}
