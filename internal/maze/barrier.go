package maze

import (
	"fmt"

	"github.com/mkarwowski/pacmaze/internal/core"
)

// BarrierKind classifies a wall cell by its role in the maze.
type BarrierKind int

const (
	// BarrierBorder is part of the outer frame of the maze.
	BarrierBorder BarrierKind = iota
	// BarrierStructure is a free-standing inner wall block.
	BarrierStructure
	// BarrierInterior fills the inside of the ghost pen.
	BarrierInterior
	// BarrierDoor is the ghost-pen door.
	BarrierDoor
)

// String returns a human-readable name for the barrier kind.
func (k BarrierKind) String() string {
	switch k {
	case BarrierBorder:
		return "Border"
	case BarrierStructure:
		return "Structure"
	case BarrierInterior:
		return "Interior"
	case BarrierDoor:
		return "Door"
	default:
		return "Unknown"
	}
}

// TextureTag selects the visual shape of a barrier cell. It is derived from
// the cell's eight-neighborhood during stage compilation and drives which
// glyph the renderer draws.
type TextureTag int

const (
	TagDefault TextureTag = iota

	// Straight wall runs. The suffix names the side the wall mass sits on.
	TagStraightHorizontalDown
	TagStraightHorizontalUp
	TagStraightVerticalLeft
	TagStraightVerticalRight

	// Convex corners (outside of a wall block).
	TagOuterArcBottomLeft
	TagOuterArcBottomRight
	TagOuterArcTopLeft
	TagOuterArcTopRight

	// Concave corners (inner bend of an L-shaped run).
	TagInsideArcBottomLeft
	TagInsideArcBottomRight
	TagInsideArcTopLeft
	TagInsideArcTopRight

	// Border cells where an inner structure meets the outer frame. The
	// first direction names the frame side, the second the joint corner.
	TagBorderVerticalLeftTopConnector
	TagBorderVerticalLeftBottomConnector
	TagBorderVerticalRightTopConnector
	TagBorderVerticalRightBottomConnector
	TagBorderHorizontalLeftTopConnector
	TagBorderHorizontalLeftBottomConnector
	TagBorderHorizontalRightTopConnector
	TagBorderHorizontalRightBottomConnector

	// Border cells fully enclosed on all eight sides next to a structure;
	// drawn as a single line along the open side of the frame.
	TagBorderStraightSinglelineVerticalLeft
	TagBorderStraightSinglelineVerticalRight
	TagBorderStraightSinglelineHorizontalUp
	TagBorderStraightSinglelineHorizontalDown
)

var textureTagNames = map[TextureTag]string{
	TagDefault:                                "Default",
	TagStraightHorizontalDown:                 "StraightHorizontalDown",
	TagStraightHorizontalUp:                   "StraightHorizontalUp",
	TagStraightVerticalLeft:                   "StraightVerticalLeft",
	TagStraightVerticalRight:                  "StraightVerticalRight",
	TagOuterArcBottomLeft:                     "OuterArcBottomLeft",
	TagOuterArcBottomRight:                    "OuterArcBottomRight",
	TagOuterArcTopLeft:                        "OuterArcTopLeft",
	TagOuterArcTopRight:                       "OuterArcTopRight",
	TagInsideArcBottomLeft:                    "InsideArcBottomLeft",
	TagInsideArcBottomRight:                   "InsideArcBottomRight",
	TagInsideArcTopLeft:                       "InsideArcTopLeft",
	TagInsideArcTopRight:                      "InsideArcTopRight",
	TagBorderVerticalLeftTopConnector:         "BorderVerticalLeftTopConnector",
	TagBorderVerticalLeftBottomConnector:      "BorderVerticalLeftBottomConnector",
	TagBorderVerticalRightTopConnector:        "BorderVerticalRightTopConnector",
	TagBorderVerticalRightBottomConnector:     "BorderVerticalRightBottomConnector",
	TagBorderHorizontalLeftTopConnector:       "BorderHorizontalLeftTopConnector",
	TagBorderHorizontalLeftBottomConnector:    "BorderHorizontalLeftBottomConnector",
	TagBorderHorizontalRightTopConnector:      "BorderHorizontalRightTopConnector",
	TagBorderHorizontalRightBottomConnector:   "BorderHorizontalRightBottomConnector",
	TagBorderStraightSinglelineVerticalLeft:   "BorderStraightSinglelineVerticalLeft",
	TagBorderStraightSinglelineVerticalRight:  "BorderStraightSinglelineVerticalRight",
	TagBorderStraightSinglelineHorizontalUp:   "BorderStraightSinglelineHorizontalUp",
	TagBorderStraightSinglelineHorizontalDown: "BorderStraightSinglelineHorizontalDown",
}

// String returns a human-readable name for the texture tag.
func (t TextureTag) String() string {
	if name, ok := textureTagNames[t]; ok {
		return name
	}
	return "Unknown"
}

// IsBorderConnector reports whether the tag is one of the border-only
// connector or single-line shapes.
func (t TextureTag) IsBorderConnector() bool {
	switch t {
	case TagBorderVerticalLeftTopConnector, TagBorderVerticalLeftBottomConnector,
		TagBorderVerticalRightTopConnector, TagBorderVerticalRightBottomConnector,
		TagBorderHorizontalLeftTopConnector, TagBorderHorizontalLeftBottomConnector,
		TagBorderHorizontalRightTopConnector, TagBorderHorizontalRightBottomConnector,
		TagBorderStraightSinglelineVerticalLeft, TagBorderStraightSinglelineVerticalRight,
		TagBorderStraightSinglelineHorizontalUp, TagBorderStraightSinglelineHorizontalDown:
		return true
	default:
		return false
	}
}

// Barrier is an impassable wall cell.
type Barrier struct {
	Kind BarrierKind
	Tag  TextureTag
	// Color is the current display color; the stage-complete flash toggles
	// it between white and OriginalColor.
	Color         core.Color
	OriginalColor core.Color
}

func (*Barrier) cellContent() {}

// NewBarrier builds a barrier cell, validating that the texture tag is
// allowed for the kind. Border cells accept any tag; other kinds reject the
// border-only connector tags since those only make sense on the outer frame.
func NewBarrier(kind BarrierKind, tag TextureTag) (*Barrier, error) {
	if kind != BarrierBorder && tag.IsBorderConnector() {
		return nil, fmt.Errorf("maze: texture %s is not allowed on %s barriers", tag, kind)
	}
	color := core.ColorBlue
	if kind == BarrierDoor {
		color = core.ColorMagenta
	}
	return &Barrier{
		Kind:          kind,
		Tag:           tag,
		Color:         color,
		OriginalColor: color,
	}, nil
}
