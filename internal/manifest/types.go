package manifest

// Manifest is the JSON sidecar written next to a built tileset. It
// records where every tile came from and how the output was produced,
// so a build can be audited and re-verified later.
type Manifest struct {
	Version     int        `json:"version"`
	GeneratedAt string     `json:"generated_at"`
	Layout      LayoutInfo `json:"layout"`
	Output      OutputInfo `json:"output"`
	Tiles       []Tile     `json:"tiles"`
	Stats       Stats      `json:"stats"`
}

// LayoutInfo summarizes the geometry the tileset was built for.
type LayoutInfo struct {
	TileWidth   int `json:"tile_width"`
	TileHeight  int `json:"tile_height"`
	Columns     int `json:"columns"`
	Group1Start int `json:"group1_start"`
	Group2Start int `json:"group2_start"`
	GroupSize   int `json:"group_size"`
}

// OutputInfo describes the written tileset file.
type OutputInfo struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Hash   string `json:"hash"` // first 16 hex chars of xxhash64
}

// Tile records one source image and its slot in the tileset.
type Tile struct {
	Index         int    `json:"index"`
	Source        string `json:"source"` // base filename
	Width         int    `json:"width"`  // source dimensions
	Height        int    `json:"height"`
	Resample      string `json:"resample"`
	BonusGroup    int    `json:"bonus_group,omitempty"`
	DominantColor string `json:"dominant_color,omitempty"` // #rrggbb
	Hash          string `json:"hash"`                     // source file content hash
}

// Stats aggregates build metrics.
type Stats struct {
	Tiles      int `json:"tiles"`
	BonusTiles int `json:"bonus_tiles"`
	Warnings   int `json:"warnings,omitempty"` // ignored filename parameters
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
