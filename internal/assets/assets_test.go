package assets

import (
	"testing"

	"github.com/AnyUserName/mjtiles/internal/layout"
)

func TestLoadDefault(t *testing.T) {
	l := layout.Default()
	tmpl, err := Load(l)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if b := tmpl.Blank.Bounds(); b.Dx() != l.TileWidth || b.Dy() != l.TileHeight {
		t.Errorf("blank: got %dx%d, want %dx%d", b.Dx(), b.Dy(), l.TileWidth, l.TileHeight)
	}
	if b := tmpl.BlankSelected.Bounds(); b.Dx() != l.TileWidth || b.Dy() != l.TileHeight {
		t.Errorf("blank_selected: got %dx%d", b.Dx(), b.Dy())
	}
	if b := tmpl.Tileset.Bounds(); b.Dx() != l.TilesetWidth() || b.Dy() != l.TilesetHeight() {
		t.Errorf("tileset: got %dx%d, want %dx%d",
			b.Dx(), b.Dy(), l.TilesetWidth(), l.TilesetHeight())
	}
}

func TestLoadRejectsMismatchedLayout(t *testing.T) {
	l := layout.Default()
	l.TileWidth = 64

	if _, err := Load(l); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}
