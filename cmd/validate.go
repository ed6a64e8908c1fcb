package cmd

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/mjtiles/internal/hasher"
	"github.com/AnyUserName/mjtiles/internal/manifest"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a build manifest against the tileset on disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	errors := validateManifest(&m, filepath.Dir(manifestPath))

	if len(errors) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d tiles, %d bonus — tileset matches the recorded hash\n",
			m.Stats.Tiles, m.Stats.BonusTiles)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	li := m.Layout
	if li.TileWidth <= 0 || li.TileHeight <= 0 || li.Columns <= 0 {
		errs = append(errs, fmt.Sprintf("invalid layout: %+v", li))
		return errs
	}

	// Recorded output dimensions must match the layout.
	if m.Output.Width != li.Columns*li.TileWidth || m.Output.Height != 2*li.TileHeight {
		errs = append(errs, fmt.Sprintf("output dimensions %dx%d do not match layout (%dx%d)",
			m.Output.Width, m.Output.Height, li.Columns*li.TileWidth, 2*li.TileHeight))
	}

	// The tileset file itself: present, right size, right hash.
	tilesetPath := m.Output.Path
	if !filepath.IsAbs(tilesetPath) {
		tilesetPath = filepath.Join(baseDir, tilesetPath)
	}
	if f, err := os.Open(tilesetPath); err != nil {
		errs = append(errs, fmt.Sprintf("tileset file not found: %s", m.Output.Path))
	} else {
		cfg, _, err := image.DecodeConfig(f)
		if err != nil {
			errs = append(errs, fmt.Sprintf("tileset file unreadable: %v", err))
		} else if cfg.Width != m.Output.Width || cfg.Height != m.Output.Height {
			errs = append(errs, fmt.Sprintf("tileset file is %dx%d, manifest records %dx%d",
				cfg.Width, cfg.Height, m.Output.Width, m.Output.Height))
		}
		f.Close()

		if m.Output.Hash == "" {
			errs = append(errs, "manifest records no output hash")
		} else if f2, err := os.Open(tilesetPath); err == nil {
			h, err := hasher.ContentHashReader(f2, 16)
			f2.Close()
			if err != nil {
				errs = append(errs, fmt.Sprintf("hash tileset file: %v", err))
			} else if h != m.Output.Hash {
				errs = append(errs, fmt.Sprintf("tileset hash mismatch: manifest=%s, disk=%s",
					m.Output.Hash, h))
			}
		}
	}

	// Tiles: contiguous indices in order, consistent bonus groups.
	if len(m.Tiles) > li.Columns {
		errs = append(errs, fmt.Sprintf("%d tiles exceed %d columns", len(m.Tiles), li.Columns))
	}
	for i, tl := range m.Tiles {
		if tl.Index != i {
			errs = append(errs, fmt.Sprintf("tile[%d]: index %d out of order", i, tl.Index))
		}
		if tl.Source == "" {
			errs = append(errs, fmt.Sprintf("tile[%d]: missing source name", i))
		}
		if tl.Width <= 0 || tl.Height <= 0 {
			errs = append(errs, fmt.Sprintf("tile[%d]: invalid source dimensions %dx%d",
				i, tl.Width, tl.Height))
		}
		if tl.Hash == "" {
			errs = append(errs, fmt.Sprintf("tile[%d]: missing source hash", i))
		}
		want := expectedGroup(tl.Index, li)
		if tl.BonusGroup != want {
			errs = append(errs, fmt.Sprintf("tile[%d]: bonus group %d, layout says %d",
				i, tl.BonusGroup, want))
		}
	}

	// Stats consistency.
	if m.Stats.Tiles != len(m.Tiles) {
		errs = append(errs, fmt.Sprintf("stats.tiles mismatch: %d != %d", m.Stats.Tiles, len(m.Tiles)))
	}
	bonus := 0
	for _, tl := range m.Tiles {
		if tl.BonusGroup != 0 {
			bonus++
		}
	}
	if m.Stats.BonusTiles != bonus {
		errs = append(errs, fmt.Sprintf("stats.bonus_tiles mismatch: %d != %d", m.Stats.BonusTiles, bonus))
	}

	return errs
}

func expectedGroup(index int, li manifest.LayoutInfo) int {
	if index >= li.Group1Start && index < li.Group1Start+li.GroupSize {
		return 1
	}
	if index >= li.Group2Start && index < li.Group2Start+li.GroupSize {
		return 2
	}
	return 0
}
