package stage

import "github.com/mkarwowski/pacmaze/internal/maze"

// neighbor describes one of the eight cells around a barrier.
type neighbor struct {
	present bool
	kind    maze.BarrierKind
}

// neighbours captures the eight-cell surroundings of a barrier cell.
// Cells beyond the map edge count as Border neighbors, so the outer frame
// reads as a continuous wall.
type neighbours struct {
	left, right, top, bottom                   neighbor
	leftTop, rightTop, leftBottom, rightBottom neighbor
}

func analyzeNeighbours(c maze.Coord, barriers map[maze.Coord]maze.BarrierKind, cols, rows int) neighbours {
	probe := func(dc, dr int) neighbor {
		if kind, ok := barriers[c.Add(dc, dr)]; ok {
			return neighbor{present: true, kind: kind}
		}
		return neighbor{}
	}

	n := neighbours{
		left:        probe(-1, 0),
		right:       probe(1, 0),
		top:         probe(0, 1),
		bottom:      probe(0, -1),
		leftTop:     probe(-1, 1),
		rightTop:    probe(1, 1),
		leftBottom:  probe(-1, -1),
		rightBottom: probe(1, -1),
	}

	border := neighbor{present: true, kind: maze.BarrierBorder}
	if c.Col == 0 {
		n.left, n.leftTop, n.leftBottom = border, border, border
	}
	if c.Col == cols-1 {
		n.right, n.rightTop, n.rightBottom = border, border, border
	}
	if c.Row == 0 {
		n.bottom, n.leftBottom, n.rightBottom = border, border, border
	}
	if c.Row == rows-1 {
		n.top, n.leftTop, n.rightTop = border, border, border
	}
	return n
}
