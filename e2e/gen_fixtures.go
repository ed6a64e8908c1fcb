//go:build ignore

// gen_fixtures creates a full 41-image source directory for a manual
// end-to-end build: mixed sizes and aspect ratios, plus filenames
// carrying resample parameters (one valid, one bogus to show the
// warning path).
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(dir, 0o755)

	for i := 0; i < 41; i++ {
		name := fmt.Sprintf("%02d-tile.png", i)
		var img *image.NRGBA
		switch i % 4 {
		case 0:
			img = gradient(200, 200, uint8(i*6))
		case 1:
			img = gradient(320, 180, uint8(i*6)) // landscape
		case 2:
			img = gradient(150, 400, uint8(i*6)) // portrait
		default:
			img = solidWithBorder(96, 132, uint8(i*5))
		}
		switch i {
		case 7:
			name = "07-tile__resample_NEAREST.png"
		case 12:
			name = "12-tile__resample_BOGUS.png" // exercises the warning
		}
		writeImage(filepath.Join(dir, name), img)
	}

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 41 fixtures in %s\n", dir)
}

func gradient(w, h int, base uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: base + uint8(x*128/w),
				G: uint8(y * 255 / h),
				B: 255 - base,
				A: 255,
			})
		}
	}
	return img
}

func solidWithBorder(w, h int, base uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: base, G: base + 40, B: base + 80, A: 255}
			if x < 4 || x >= w-4 || y < 4 || y >= h-4 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writeImage(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[gen_fixtures] %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "[gen_fixtures] %v\n", err)
		os.Exit(1)
	}
}
