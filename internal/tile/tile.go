// Package tile turns one source image into the (normal, selected)
// tile pair that ends up in the tileset.
package tile

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/mjtiles/internal/filter"
	"github.com/AnyUserName/mjtiles/internal/layout"
)

// selectedBrightness is the multiplicative boost applied to the
// content of the selected variant.
const selectedBrightness = 1.25

// Pair is the two variants generated from one source image. Both are
// always exactly TileWidth x TileHeight.
type Pair struct {
	Normal   *image.NRGBA
	Selected *image.NRGBA
}

// Generator produces tile pairs for a fixed layout and blank artwork.
type Generator struct {
	layout        layout.Layout
	blank         *image.NRGBA
	blankSelected *image.NRGBA
}

// NewGenerator returns a generator drawing onto copies of the given
// blank tile backgrounds.
func NewGenerator(l layout.Layout, blank, blankSelected *image.NRGBA) *Generator {
	return &Generator{layout: l, blank: blank, blankSelected: blankSelected}
}

// MakePair scales src into the content box, centers it, and composites
// it onto fresh copies of the blank backgrounds. The source image is
// never mutated.
func (g *Generator) MakePair(src image.Image, f filter.Filter) Pair {
	l := g.layout
	b := src.Bounds()
	sw, sh := fitScale(b.Dx(), b.Dy(), l)

	scaled := imaging.Resize(src, sw, sh, f.Kernel())
	x := l.ContentXOffset + (l.TileWidth-sw)/2
	y := l.ContentYOffset + (l.TileHeight-sh)/2
	pos := image.Pt(x, y)

	normal := imaging.Overlay(g.blank, scaled, pos, 1.0)

	brightened := imaging.AdjustFunc(scaled, brighten)
	selected := imaging.Overlay(g.blankSelected, brightened, pos, 1.0)

	return Pair{Normal: normal, Selected: selected}
}

// fitScale computes the scaled dimensions of a w x h source so it fits
// the content box with its aspect ratio preserved. The primary scale
// follows the longer axis; when flooring the other axis still
// overflows its bound (near-square sources), the scale shrinks by the
// overflow ratio.
func fitScale(w, h int, l layout.Layout) (int, int) {
	var scale float64
	if w > h {
		scale = float64(l.ContentWidth) / float64(w)
		if scaledH := int(scale * float64(h)); scaledH > l.ContentHeight {
			scale *= float64(l.ContentHeight) / float64(scaledH)
		}
	} else {
		scale = float64(l.ContentHeight) / float64(h)
		if scaledW := int(scale * float64(w)); scaledW > l.ContentWidth {
			scale *= float64(l.ContentWidth) / float64(scaledW)
		}
	}
	sw := int(scale * float64(w))
	sh := int(scale * float64(h))
	// Extreme aspect ratios floor to zero; a zero dimension would make
	// the resize library treat the axis as unconstrained.
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}
	return sw, sh
}

func brighten(c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: clamp8(float64(c.R) * selectedBrightness),
		G: clamp8(float64(c.G) * selectedBrightness),
		B: clamp8(float64(c.B) * selectedBrightness),
		A: c.A,
	}
}

func clamp8(v float64) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
