// Package assets bundles the blank-tile artwork the tileset is built
// from: a blank tile, its brightened "selected" counterpart, and the
// empty tileset canvas. The templates come from GNOME Mahjongg's
// 'smooth' theme and fix the tile dimensions.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/mjtiles/internal/layout"
)

//go:embed blank.png
var blankPNG []byte

//go:embed blank_selected.png
var blankSelectedPNG []byte

//go:embed tileset_blank.png
var tilesetBlankPNG []byte

// Templates holds the decoded blank artwork, normalized to NRGBA.
type Templates struct {
	Blank         *image.NRGBA
	BlankSelected *image.NRGBA
	Tileset       *image.NRGBA
}

// Load decodes the embedded templates and checks their dimensions
// against the layout. A mismatch means the binary's artwork does not
// fit the requested geometry and the build cannot proceed.
func Load(l layout.Layout) (*Templates, error) {
	blank, err := decode("blank.png", blankPNG, l.TileWidth, l.TileHeight)
	if err != nil {
		return nil, err
	}
	selected, err := decode("blank_selected.png", blankSelectedPNG, l.TileWidth, l.TileHeight)
	if err != nil {
		return nil, err
	}
	tileset, err := decode("tileset_blank.png", tilesetBlankPNG, l.TilesetWidth(), l.TilesetHeight())
	if err != nil {
		return nil, err
	}
	return &Templates{Blank: blank, BlankSelected: selected, Tileset: tileset}, nil
}

func decode(name string, data []byte, wantW, wantH int) (*image.NRGBA, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode template %s: %w", name, err)
	}
	b := img.Bounds()
	if b.Dx() != wantW || b.Dy() != wantH {
		return nil, fmt.Errorf("template %s is %dx%d, layout needs %dx%d",
			name, b.Dx(), b.Dy(), wantW, wantH)
	}
	return imaging.Clone(img), nil
}
