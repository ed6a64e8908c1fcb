package layout

import "testing"

func TestBonusGroup(t *testing.T) {
	l := Default()

	tests := []struct {
		index int
		want  int
	}{
		{0, 0},
		{1, 0},
		{32, 0},
		{33, 1},
		{34, 1},
		{35, 1},
		{36, 1},
		{37, 0},
		{38, 2},
		{39, 2},
		{40, 2},
		{41, 2},
		{42, 0},
		{100, 0},
	}

	for _, tt := range tests {
		if got := l.BonusGroup(tt.index); got != tt.want {
			t.Errorf("BonusGroup(%d): got %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default layout invalid: %v", err)
	}
}

func TestValidateRejectsBrokenLayouts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"zero tile width", func(l *Layout) { l.TileWidth = 0 }},
		{"content wider than tile", func(l *Layout) { l.ContentWidth = l.TileWidth + 1 }},
		{"content taller than tile", func(l *Layout) { l.ContentHeight = l.TileHeight + 1 }},
		{"zero columns", func(l *Layout) { l.Columns = 0 }},
		{"zero group size", func(l *Layout) { l.GroupSize = 0 }},
		{"group 1 start past columns", func(l *Layout) { l.Group1Start = l.Columns }},
		{"negative group 2 start", func(l *Layout) { l.Group2Start = -1 }},
		{"overlapping groups", func(l *Layout) { l.Group2Start = l.Group1Start + 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Default()
			tt.mutate(&l)
			if err := l.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestTilesetDimensions(t *testing.T) {
	l := Default()
	if w := l.TilesetWidth(); w != 41*96 {
		t.Errorf("tileset width: got %d, want %d", w, 41*96)
	}
	if h := l.TilesetHeight(); h != 2*132 {
		t.Errorf("tileset height: got %d, want %d", h, 2*132)
	}
}

func TestFrameRect(t *testing.T) {
	x0, y0, x1, y1 := Default().FrameRect()
	if x0 != 14 || y0 != 6 || x1 != 93 || y1 != 114 {
		t.Errorf("frame rect: got (%d,%d)-(%d,%d), want (14,6)-(93,114)", x0, y0, x1, y1)
	}
}

func TestGroupColors(t *testing.T) {
	l := Default()

	g1 := l.GroupColors(1)
	if hex := g1.Normal.Hex(); hex != "#d819ea" {
		t.Errorf("group 1 normal color: got %s", hex)
	}
	if hex := g1.Selected.Hex(); hex != "#f58bff" {
		t.Errorf("group 1 selected color: got %s", hex)
	}
	g2 := l.GroupColors(2)
	if hex := g2.Normal.Hex(); hex != "#1dbf4e" {
		t.Errorf("group 2 normal color: got %s", hex)
	}

	defer func() {
		if recover() == nil {
			t.Error("GroupColors(3) did not panic")
		}
	}()
	l.GroupColors(3)
}
