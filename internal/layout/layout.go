// Package layout defines the tileset geometry as an immutable value
// passed into the generator and assembler, so nothing depends on
// package-level dimension constants.
package layout

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// FrameColors is the (normal, selected) outline color pair of one
// bonus group.
type FrameColors struct {
	Normal   colorful.Color
	Selected colorful.Color
}

// Layout describes the tile and tileset geometry plus the bonus-group
// configuration. Treat values as read-only once constructed.
type Layout struct {
	// Tile canvas size. Every produced tile has exactly these dimensions.
	TileWidth  int
	TileHeight int

	// Content box: the sub-rectangle of a tile reserved for scaled
	// source artwork. Scaled content must fit entirely inside it.
	ContentWidth   int
	ContentHeight  int
	ContentXOffset int
	ContentYOffset int

	// Columns is the number of tile slots in the tileset (one per
	// source image).
	Columns int

	// Bonus groups: GroupSize consecutive indices starting at each
	// start index. The ranges must not overlap.
	Group1Start int
	Group2Start int
	GroupSize   int

	// Bonus frame stroke geometry and per-group colors.
	FrameRadius int
	FrameStroke int
	Group1Frame FrameColors
	Group2Frame FrameColors
}

// Default returns the layout of GNOME Mahjongg's 'smooth' theme, which
// the bundled blank-tile templates are rendered for.
func Default() Layout {
	return Layout{
		TileWidth:      96,
		TileHeight:     132,
		ContentWidth:   80,
		ContentHeight:  116,
		ContentXOffset: 6,
		ContentYOffset: -6,

		Columns: 41,

		Group1Start: 33,
		Group2Start: 38,
		GroupSize:   4,

		FrameRadius: 9,
		FrameStroke: 5,
		Group1Frame: FrameColors{Normal: mustHex("#d819ea"), Selected: mustHex("#f58bff")},
		Group2Frame: FrameColors{Normal: mustHex("#1dbf4e"), Selected: mustHex("#77e998")},
	}
}

// Validate checks the layout for internal consistency.
func (l Layout) Validate() error {
	if l.TileWidth <= 0 || l.TileHeight <= 0 {
		return fmt.Errorf("invalid tile size %dx%d", l.TileWidth, l.TileHeight)
	}
	if l.ContentWidth <= 0 || l.ContentWidth > l.TileWidth {
		return fmt.Errorf("content width %d does not fit tile width %d", l.ContentWidth, l.TileWidth)
	}
	if l.ContentHeight <= 0 || l.ContentHeight > l.TileHeight {
		return fmt.Errorf("content height %d does not fit tile height %d", l.ContentHeight, l.TileHeight)
	}
	if l.Columns <= 0 {
		return fmt.Errorf("invalid column count %d", l.Columns)
	}
	if l.GroupSize <= 0 {
		return fmt.Errorf("invalid bonus group size %d", l.GroupSize)
	}
	if l.Group1Start < 0 || l.Group1Start >= l.Columns {
		return fmt.Errorf("bonus group 1 start %d outside columns [0,%d)", l.Group1Start, l.Columns)
	}
	if l.Group2Start < 0 || l.Group2Start >= l.Columns {
		return fmt.Errorf("bonus group 2 start %d outside columns [0,%d)", l.Group2Start, l.Columns)
	}
	lo, hi := l.Group1Start, l.Group2Start
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo+l.GroupSize > hi {
		return fmt.Errorf("bonus groups overlap: [%d,%d) and [%d,%d)",
			lo, lo+l.GroupSize, hi, hi+l.GroupSize)
	}
	return nil
}

// BonusGroup classifies a zero-based tile index: 1 or 2 when the index
// falls into a bonus group, 0 otherwise.
func (l Layout) BonusGroup(i int) int {
	if i >= l.Group1Start && i < l.Group1Start+l.GroupSize {
		return 1
	}
	if i >= l.Group2Start && i < l.Group2Start+l.GroupSize {
		return 2
	}
	return 0
}

// GroupColors returns the frame color pair for a bonus group. Only
// groups 1 and 2 exist; anything else is a programming error.
func (l Layout) GroupColors(group int) FrameColors {
	switch group {
	case 1:
		return l.Group1Frame
	case 2:
		return l.Group2Frame
	}
	panic(fmt.Sprintf("layout: no such bonus group %d", group))
}

// FrameRect returns the inclusive corner coordinates of the bonus
// frame outline within a tile.
func (l Layout) FrameRect() (x0, y0, x1, y1 int) {
	return l.ContentXOffset + 8, 6, l.TileWidth - 3, l.ContentHeight - 2
}

// TilesetWidth is the output canvas width: one column per tile.
func (l Layout) TilesetWidth() int {
	return l.Columns * l.TileWidth
}

// TilesetHeight is the output canvas height: a row of normal tiles
// above a row of selected tiles.
func (l Layout) TilesetHeight() int {
	return 2 * l.TileHeight
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("layout: bad hex color %q: %v", s, err))
	}
	return c
}
