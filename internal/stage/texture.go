package stage

import "github.com/mkarwowski/pacmaze/internal/maze"

// selectTexture picks the visual shape for a barrier from its eight-cell
// neighborhood. The rules form a cascade where later groups override
// earlier ones: straight runs, then outer arcs, then inner arcs, then the
// border-to-structure connectors, and finally the single-line override for
// fully enclosed border cells. A cell matching nothing stays Default and is
// not materialized at all.
func selectTexture(kind maze.BarrierKind, n neighbours) maze.TextureTag {
	tag := maze.TagDefault

	// Straight runs: three orthogonal neighbors with one open side.
	switch {
	case n.bottom.present && n.left.present && n.right.present && !n.top.present:
		tag = maze.TagStraightHorizontalDown
	case n.top.present && n.left.present && n.right.present && !n.bottom.present:
		tag = maze.TagStraightHorizontalUp
	case n.left.present && n.top.present && n.bottom.present && !n.right.present:
		tag = maze.TagStraightVerticalLeft
	case n.right.present && n.top.present && n.bottom.present && !n.left.present:
		tag = maze.TagStraightVerticalRight
	}

	// Outer arcs: convex corners with the matching diagonal filled.
	switch {
	case n.left.present && n.top.present && n.leftTop.present && !n.right.present && !n.bottom.present:
		tag = maze.TagOuterArcTopLeft
	case n.left.present && n.bottom.present && n.leftBottom.present && !n.right.present && !n.top.present:
		tag = maze.TagOuterArcBottomLeft
	case n.right.present && n.bottom.present && n.rightBottom.present && !n.left.present && !n.top.present:
		tag = maze.TagOuterArcBottomRight
	case n.right.present && n.top.present && n.rightTop.present && !n.left.present && !n.bottom.present:
		tag = maze.TagOuterArcTopRight
	}

	// Inner arcs: all orthogonals filled, exactly one open diagonal.
	if n.left.present && n.right.present && n.top.present && n.bottom.present {
		switch {
		case n.leftTop.present && n.rightTop.present && n.leftBottom.present && !n.rightBottom.present:
			tag = maze.TagInsideArcTopLeft
		case n.leftBottom.present && n.rightBottom.present && n.leftTop.present && !n.rightTop.present:
			tag = maze.TagInsideArcBottomLeft
		case n.leftTop.present && n.rightTop.present && n.rightBottom.present && !n.leftBottom.present:
			tag = maze.TagInsideArcTopRight
		case n.leftBottom.present && n.rightBottom.present && n.rightTop.present && !n.leftTop.present:
			tag = maze.TagInsideArcBottomRight
		}
	}

	// Border cells where an inner structure block touches the outer frame.
	if kind == maze.BarrierBorder &&
		n.left.present && n.right.present && n.top.present && n.bottom.present {
		switch {
		case n.right.kind == maze.BarrierStructure:
			if !n.rightBottom.present {
				tag = maze.TagBorderVerticalLeftTopConnector
			} else if !n.rightTop.present {
				tag = maze.TagBorderVerticalLeftBottomConnector
			}
		case n.left.kind == maze.BarrierStructure:
			if !n.leftTop.present {
				tag = maze.TagBorderVerticalRightBottomConnector
			} else if !n.leftBottom.present {
				tag = maze.TagBorderVerticalRightTopConnector
			}
		case n.bottom.kind == maze.BarrierStructure:
			if !n.leftBottom.present {
				tag = maze.TagBorderHorizontalRightTopConnector
			} else if !n.rightBottom.present {
				tag = maze.TagBorderHorizontalLeftTopConnector
			}
		case n.top.kind == maze.BarrierStructure:
			if !n.rightTop.present {
				tag = maze.TagBorderHorizontalLeftBottomConnector
			} else if !n.leftTop.present {
				tag = maze.TagBorderHorizontalRightBottomConnector
			}
		}
	}

	// Fully surrounded border cells next to a structure collapse to a
	// single line along the frame.
	if n.left.present && n.right.present && n.top.present && n.bottom.present &&
		n.leftBottom.present && n.rightBottom.present && n.leftTop.present && n.rightTop.present {
		if kind == maze.BarrierBorder {
			switch {
			case n.right.kind == maze.BarrierStructure:
				tag = maze.TagBorderStraightSinglelineVerticalLeft
			case n.left.kind == maze.BarrierStructure:
				tag = maze.TagBorderStraightSinglelineVerticalRight
			case n.bottom.kind == maze.BarrierStructure:
				tag = maze.TagBorderStraightSinglelineHorizontalUp
			case n.top.kind == maze.BarrierStructure:
				tag = maze.TagBorderStraightSinglelineHorizontalDown
			}
		}
	}

	return tag
}
