package tileset

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/mjtiles/internal/filter"
	"github.com/AnyUserName/mjtiles/internal/layout"
)

func writePNG(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

// fullSourceDir writes one solid image per tile slot. A couple of
// names carry filename parameters to exercise that path end to end.
func fullSourceDir(t *testing.T) string {
	t.Helper()
	l := layout.Default()
	dir := t.TempDir()
	gray := color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	for i := 0; i < l.Columns; i++ {
		name := fmt.Sprintf("%02d-tile.png", i)
		switch i {
		case 5:
			name = "05-tile__resample_NEAREST.png"
		case 9:
			name = "09-tile__foo_bar.png"
		}
		writePNG(t, filepath.Join(dir, name), l.ContentWidth, l.ContentHeight, gray)
	}
	return dir
}

func TestRunFullTileset(t *testing.T) {
	l := layout.Default()
	dir := fullSourceDir(t)
	out := filepath.Join(t.TempDir(), "tileset.png")

	p := New(Config{
		SourceDir:     dir,
		OutputPath:    out,
		Layout:        l,
		Workers:       4,
		DefaultFilter: filter.Default,
	})
	m, err := p.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	canvas := decodePNG(t, out)
	b := canvas.Bounds()
	if b.Dx() != l.TilesetWidth() || b.Dy() != l.TilesetHeight() {
		t.Fatalf("output canvas: got %dx%d, want %dx%d",
			b.Dx(), b.Dy(), l.TilesetWidth(), l.TilesetHeight())
	}

	// Frame pixels on the bonus tiles, top edge mid-stroke.
	fx0, fy0, fx1, _ := l.FrameRect()
	midX := (fx0 + fx1) / 2
	checkFrame := func(index int, wantNormal, wantSelected [3]uint8) {
		t.Helper()
		x := index*l.TileWidth + midX
		if r, g, bb := rgb8(canvas.At(x, fy0)); [3]uint8{r, g, bb} != wantNormal {
			t.Errorf("tile %d normal frame: got #%02x%02x%02x", index, r, g, bb)
		}
		if r, g, bb := rgb8(canvas.At(x, l.TileHeight+fy0)); [3]uint8{r, g, bb} != wantSelected {
			t.Errorf("tile %d selected frame: got #%02x%02x%02x", index, r, g, bb)
		}
	}
	group1Normal := [3]uint8{0xd8, 0x19, 0xea}
	group1Selected := [3]uint8{0xf5, 0x8b, 0xff}
	group2Normal := [3]uint8{0x1d, 0xbf, 0x4e}
	group2Selected := [3]uint8{0x77, 0xe9, 0x98}
	for i := 33; i <= 36; i++ {
		checkFrame(i, group1Normal, group1Selected)
	}
	for i := 38; i <= 40; i++ {
		checkFrame(i, group2Normal, group2Selected)
	}

	// Non-bonus tiles keep their content where a frame would be.
	for _, i := range []int{0, 32, 37} {
		x := i*l.TileWidth + midX
		if r, g, bb := rgb8(canvas.At(x, fy0)); [3]uint8{r, g, bb} != [3]uint8{120, 120, 120} {
			t.Errorf("tile %d should be unframed, got #%02x%02x%02x", i, r, g, bb)
		}
	}

	// Manifest reflects the build.
	if len(m.Tiles) != l.Columns {
		t.Fatalf("manifest tiles: got %d, want %d", len(m.Tiles), l.Columns)
	}
	// Group 1 fills indices 33-36; of group 2's range 38-41 only
	// 38-40 exist in a 41-slot set, so 7 tiles carry a frame.
	if m.Stats.BonusTiles != 7 {
		t.Errorf("bonus tiles: got %d, want 7", m.Stats.BonusTiles)
	}
	if m.Tiles[40].BonusGroup != 2 {
		t.Errorf("tile 40 bonus group: got %d, want 2", m.Tiles[40].BonusGroup)
	}
	if m.Stats.Warnings != 1 {
		t.Errorf("warnings: got %d, want 1 (unknown key foo)", m.Stats.Warnings)
	}
	if m.Tiles[5].Resample != "NEAREST" {
		t.Errorf("tile 5 resample: got %q", m.Tiles[5].Resample)
	}
	if m.Tiles[6].Resample != "LANCZOS" {
		t.Errorf("tile 6 resample: got %q", m.Tiles[6].Resample)
	}
	if m.Tiles[33].BonusGroup != 1 || m.Tiles[38].BonusGroup != 2 || m.Tiles[0].BonusGroup != 0 {
		t.Error("manifest bonus groups misassigned")
	}
	if m.Output.Hash == "" {
		t.Error("output hash missing")
	}
	if m.Tiles[0].DominantColor == "" {
		t.Error("dominant color missing")
	}
}

func TestRunDeterministic(t *testing.T) {
	dir := fullSourceDir(t)
	outDir := t.TempDir()

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		out := filepath.Join(outDir, fmt.Sprintf("tileset-%d.png", i))
		p := New(Config{
			SourceDir:     dir,
			OutputPath:    out,
			Layout:        layout.Default(),
			Workers:       4,
			DefaultFilter: filter.Default,
		})
		if _, err := p.Run(); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, data)
	}

	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Error("two runs over the same directory produced different bytes")
	}
}

func TestRunOrdersTilesByName(t *testing.T) {
	l := layout.Default()
	dir := t.TempDir()

	// Written out of name order; the canvas must follow name order.
	writePNG(t, filepath.Join(dir, "c.png"), 40, 40, color.NRGBA{R: 255, A: 255})
	writePNG(t, filepath.Join(dir, "a.png"), 40, 40, color.NRGBA{B: 255, A: 255})
	writePNG(t, filepath.Join(dir, "b.png"), 40, 40, color.NRGBA{G: 255, A: 255})

	out := filepath.Join(t.TempDir(), "tileset.png")
	p := New(Config{
		SourceDir:     dir,
		OutputPath:    out,
		Layout:        l,
		Workers:       2,
		DefaultFilter: filter.Default,
		Loose:         true,
	})
	m, err := p.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	canvas := decodePNG(t, out)
	centerY := l.ContentYOffset + l.TileHeight/2
	wants := [][3]uint8{{0, 0, 255}, {0, 255, 0}, {255, 0, 0}}
	for i, want := range wants {
		x := i*l.TileWidth + l.TileWidth/2
		if r, g, b := rgb8(canvas.At(x, centerY)); [3]uint8{r, g, b} != want {
			t.Errorf("tile %d center: got #%02x%02x%02x, want #%02x%02x%02x",
				i, r, g, b, want[0], want[1], want[2])
		}
	}
	if m.Tiles[0].Source != "a.png" || m.Tiles[2].Source != "c.png" {
		t.Errorf("manifest order: got %q, %q, %q",
			m.Tiles[0].Source, m.Tiles[1].Source, m.Tiles[2].Source)
	}
}

func TestRunStrictCount(t *testing.T) {
	l := layout.Default()
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 40, 40, color.NRGBA{R: 200, A: 255})

	out := filepath.Join(t.TempDir(), "tileset.png")
	p := New(Config{
		SourceDir:     dir,
		OutputPath:    out,
		Layout:        l,
		DefaultFilter: filter.Default,
	})
	if _, err := p.Run(); err == nil {
		t.Fatal("strict run with 1 of 41 images should fail")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("failed run must not write an output file")
	}
}

func TestRunRejectsTooManySources(t *testing.T) {
	l := layout.Default()
	dir := t.TempDir()
	for i := 0; i < l.Columns+1; i++ {
		writePNG(t, filepath.Join(dir, fmt.Sprintf("%02d.png", i)), 20, 20, color.NRGBA{R: 200, A: 255})
	}

	p := New(Config{
		SourceDir:     dir,
		OutputPath:    filepath.Join(t.TempDir(), "tileset.png"),
		Layout:        l,
		DefaultFilter: filter.Default,
		Loose:         true,
	})
	if _, err := p.Run(); err == nil {
		t.Fatal("run with too many images should fail even in loose mode")
	}
}

func TestRunDecodeFailureIsFatal(t *testing.T) {
	l := layout.Default()
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 40, 40, color.NRGBA{R: 200, A: 255})
	if err := os.WriteFile(filepath.Join(dir, "b.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "tileset.png")
	p := New(Config{
		SourceDir:     dir,
		OutputPath:    out,
		Layout:        l,
		DefaultFilter: filter.Default,
		Loose:         true,
	})
	if _, err := p.Run(); err == nil {
		t.Fatal("corrupt source should fail the run")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("failed run must not write an output file")
	}
}

func TestRunEmptyDir(t *testing.T) {
	p := New(Config{
		SourceDir:     t.TempDir(),
		OutputPath:    filepath.Join(t.TempDir(), "tileset.png"),
		Layout:        layout.Default(),
		DefaultFilter: filter.Default,
		Loose:         true,
	})
	if _, err := p.Run(); err == nil {
		t.Fatal("empty source directory should fail")
	}
}
