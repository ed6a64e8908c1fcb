package tile

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ApplyBonusFrame marks both variants of a pair as bonus tiles by
// drawing a rounded-rectangle outline in the group's colors. The pair
// is mutated in place. Passing a group the layout does not define
// panics.
func (g *Generator) ApplyBonusFrame(group int, p Pair) {
	colors := g.layout.GroupColors(group)
	x0, y0, x1, y1 := g.layout.FrameRect()
	radius := g.layout.FrameRadius
	stroke := g.layout.FrameStroke

	drawRoundedOutline(p.Normal, x0, y0, x1, y1, radius, stroke, toNRGBA(colors.Normal))
	drawRoundedOutline(p.Selected, x0, y0, x1, y1, radius, stroke, toNRGBA(colors.Selected))
}

// drawRoundedOutline strokes a rounded rectangle with inclusive
// corners (x0,y0)-(x1,y1). The stroke extends inward from the edge:
// a pixel is painted when it lies inside the outer rounded rect but
// outside the same rect inset by the stroke width.
func drawRoundedOutline(img *image.NRGBA, x0, y0, x1, y1, radius, stroke int, c color.NRGBA) {
	innerRadius := radius - stroke
	if innerRadius < 0 {
		innerRadius = 0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !insideRounded(x, y, x0, y0, x1, y1, radius) {
				continue
			}
			if insideRounded(x, y, x0+stroke, y0+stroke, x1-stroke, y1-stroke, innerRadius) {
				continue
			}
			img.SetNRGBA(x, y, c)
		}
	}
}

// insideRounded reports whether (x,y) lies within the rounded
// rectangle with inclusive corners (x0,y0)-(x1,y1) and corner radius r.
func insideRounded(x, y, x0, y0, x1, y1, r int) bool {
	if x < x0 || x > x1 || y < y0 || y > y1 {
		return false
	}
	var dx, dy int
	switch {
	case x < x0+r && y < y0+r:
		dx, dy = x0+r-x, y0+r-y
	case x > x1-r && y < y0+r:
		dx, dy = x-(x1-r), y0+r-y
	case x < x0+r && y > y1-r:
		dx, dy = x0+r-x, y-(y1-r)
	case x > x1-r && y > y1-r:
		dx, dy = x-(x1-r), y-(y1-r)
	default:
		return true
	}
	return dx*dx+dy*dy <= r*r
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
