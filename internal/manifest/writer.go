package manifest

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty manifest for the given layout summary.
func New(l LayoutInfo) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Layout:      l,
	}
}

// ComputeStats recalculates tile counts from the tiles slice. The
// warning count is set by the pipeline and left alone here.
func (m *Manifest) ComputeStats() {
	m.Stats.Tiles = len(m.Tiles)
	bonus := 0
	for _, t := range m.Tiles {
		if t.BonusGroup != 0 {
			bonus++
		}
	}
	m.Stats.BonusTiles = bonus
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
