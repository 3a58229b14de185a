package game

import (
	"fmt"
	"math"

	"github.com/mkarwowski/pacmaze/internal/core"
	"github.com/mkarwowski/pacmaze/internal/maze"
)

// hudHeight is the number of rows reserved above the maze.
const hudHeight = 2

// barrierGlyphs maps each wall texture to the box-drawing rune it is drawn
// with. The compiler never emits TagDefault cells, so every materialized
// barrier has an entry.
var barrierGlyphs = map[maze.TextureTag]rune{
	maze.TagStraightHorizontalDown: '─',
	maze.TagStraightHorizontalUp:   '─',
	maze.TagStraightVerticalLeft:   '│',
	maze.TagStraightVerticalRight:  '│',

	// Corner arms point at the filled sides so runs join up.
	maze.TagOuterArcTopLeft:     '╯',
	maze.TagOuterArcTopRight:    '╰',
	maze.TagOuterArcBottomLeft:  '╮',
	maze.TagOuterArcBottomRight: '╭',

	// Inner bends hug the open diagonal.
	maze.TagInsideArcTopLeft:     '╭',
	maze.TagInsideArcTopRight:    '╮',
	maze.TagInsideArcBottomLeft:  '╰',
	maze.TagInsideArcBottomRight: '╯',

	maze.TagBorderVerticalLeftTopConnector:     '├',
	maze.TagBorderVerticalLeftBottomConnector:  '├',
	maze.TagBorderVerticalRightTopConnector:    '┤',
	maze.TagBorderVerticalRightBottomConnector: '┤',

	maze.TagBorderHorizontalLeftTopConnector:     '┬',
	maze.TagBorderHorizontalRightTopConnector:    '┬',
	maze.TagBorderHorizontalLeftBottomConnector:  '┴',
	maze.TagBorderHorizontalRightBottomConnector: '┴',

	maze.TagBorderStraightSinglelineVerticalLeft:   '│',
	maze.TagBorderStraightSinglelineVerticalRight:  '│',
	maze.TagBorderStraightSinglelineHorizontalUp:   '─',
	maze.TagBorderStraightSinglelineHorizontalDown: '─',
}

// deathGlyphs is the player's death animation, stretched over the death
// frames.
var deathGlyphs = []rune{'C', 'c', 'o', '*', '+', '·'}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.initErr != nil {
		g.renderOverlay(dst, "Failed to start", g.initErr.Error())
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.st == nil {
		return
	}

	offX := (dst.Width() - g.st.Grid.Cols()) / 2
	offY := hudHeight

	g.renderGrid(dst, offX, offY)
	g.renderGhosts(dst, offX, offY)
	g.renderPlayer(dst, offX, offY)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Pacmaze  Score: %d  High: %d  Lives: %d", g.score, g.highScore, g.lives)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws walls and pellets. Grid row 0 is the bottom of the maze,
// so rows are flipped into screen space.
func (g *Game) renderGrid(dst *core.Screen, offX, offY int) {
	grid := g.st.Grid
	rows := grid.Rows()

	for r := 0; r < rows; r++ {
		sy := offY + (rows - 1 - r)
		for col := 0; col < grid.Cols(); col++ {
			sx := offX + col
			switch cell := grid.At(maze.C(col, r)).(type) {
			case *maze.Barrier:
				glyph, ok := barrierGlyphs[cell.Tag]
				if !ok {
					glyph = '#'
				}
				dst.SetCell(sx, sy, glyph, cell.Color)
			case *maze.Dot:
				if cell.PowerUp {
					dst.SetCell(sx, sy, '●', core.ColorBrightWhite)
				} else {
					dst.SetCell(sx, sy, '·', core.ColorYellow)
				}
			}
		}
	}
}

// renderPlayer draws the player at its display position, chomping while
// moving and collapsing through the death animation while dying.
func (g *Game) renderPlayer(dst *core.Screen, offX, offY int) {
	player := g.st.Player
	sx, sy, ok := g.toScreen(player.Box.X, player.Box.Y, offX, offY)
	if !ok {
		return
	}

	glyph := 'C'
	if player.Dying {
		idx := player.DeathFrame * len(deathGlyphs) / deathAnimationFrames
		if idx >= len(deathGlyphs) {
			idx = len(deathGlyphs) - 1
		}
		glyph = deathGlyphs[idx]
	} else if player.Frame == 1 {
		glyph = 'c'
	}
	dst.SetCell(sx, sy, glyph, core.ColorBrightYellow)
}

// renderGhosts draws each ghost in its type color, or blue/white while
// frightened.
func (g *Game) renderGhosts(dst *core.Screen, offX, offY int) {
	for _, ghost := range g.st.Ghosts {
		sx, sy, ok := g.toScreen(ghost.Box.X, ghost.Box.Y, offX, offY)
		if !ok {
			continue
		}
		dst.SetCell(sx, sy, 'M', ghostColor(ghost))
	}
}

func ghostColor(ghost *maze.Ghost) core.Color {
	if ghost.Frightened {
		if ghost.BlinkFrame {
			return core.ColorBrightWhite
		}
		return core.ColorBrightBlue
	}
	switch ghost.Type {
	case maze.GhostBlinky:
		return core.ColorBrightRed
	case maze.GhostPinky:
		return core.ColorBrightMagenta
	case maze.GhostInky:
		return core.ColorBrightCyan
	case maze.GhostClyde:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// toScreen converts a world-pixel display position to screen coordinates.
// Actors parked off the playfield report not-ok and are skipped.
func (g *Game) toScreen(x, y float64, offX, offY int) (int, int, bool) {
	grid := g.st.Grid
	ox, oy := grid.CellPos(maze.C(0, 0))
	cs := float64(grid.CellSize())

	col := int(math.Round((x - ox) / cs))
	row := int(math.Round((y - oy) / cs))
	if col < 0 || col >= grid.Cols() || row < 0 || row >= grid.Rows() {
		return 0, 0, false
	}
	return offX + col, offY + (grid.Rows() - 1 - row), true
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
