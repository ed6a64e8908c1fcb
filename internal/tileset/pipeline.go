// Package tileset assembles the output canvas: it scans the source
// directory, generates a tile pair per file, and pastes the pairs
// into the blank tileset template in name order.
package tileset

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"runtime"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/mjtiles/internal/assets"
	"github.com/AnyUserName/mjtiles/internal/filter"
	"github.com/AnyUserName/mjtiles/internal/hasher"
	"github.com/AnyUserName/mjtiles/internal/layout"
	"github.com/AnyUserName/mjtiles/internal/manifest"
	"github.com/AnyUserName/mjtiles/internal/tile"
)

// Config holds all parameters for a tileset build run.
type Config struct {
	SourceDir     string
	OutputPath    string
	Layout        layout.Layout
	Workers       int
	DefaultFilter filter.Filter
	// Loose accepts a source directory with fewer files than the
	// layout has columns, leaving the remaining slots blank. More
	// files than columns is always an error.
	Loose   bool
	Verbose bool
}

// Pipeline orchestrates tileset assembly.
type Pipeline struct {
	cfg Config
	gen *tile.Generator
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{cfg: cfg}
}

// Run executes the full build: scan, generate pairs in parallel,
// paste sequentially, write the output file once at the end, and
// return the manifest. On any error nothing is written.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	l := p.cfg.Layout
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	// Step 1: scan the source directory.
	sources, err := Scan(p.cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no source images in %s", p.cfg.SourceDir)
	}
	if err := p.checkCount(len(sources)); err != nil {
		return nil, err
	}

	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[mjtiles] found %d images in %s\n", len(sources), p.cfg.SourceDir)
	}

	// Step 2: load the blank templates and set up the generator.
	tmpl, err := assets.Load(l)
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	p.gen = tile.NewGenerator(l, tmpl.Blank, tmpl.BlankSelected)

	// Step 3: generate tile pairs in parallel. Each slot writes only
	// its own result, so no locking is needed until the paste phase.
	results := make([]result, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			if p.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[mjtiles] processing: %s\n", s.Name)
			}
			results[idx] = p.processSource(s)
		}(i, src)
	}
	wg.Wait()

	// Step 4: surface warnings and check for failures. A tileset with
	// holes is useless, so a single bad source fails the run.
	totalWarnings := 0
	for _, r := range results {
		for _, w := range r.warnings {
			fmt.Fprintf(os.Stderr, "[mjtiles] warn: %s\n", w)
		}
		totalWarnings += len(r.warnings)
	}
	failed := 0
	var firstErr error
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "[mjtiles] error: %v\n", r.err)
			if firstErr == nil {
				firstErr = r.err
			}
			failed++
		}
	}
	if failed > 0 {
		return nil, fmt.Errorf("%d of %d images failed: %w", failed, len(sources), firstErr)
	}

	// Step 5: paste sequentially, in index order, onto a copy of the
	// blank tileset.
	canvas := imaging.Clone(tmpl.Tileset)
	for i, r := range results {
		x := i * l.TileWidth
		draw.Draw(canvas, image.Rect(x, 0, x+l.TileWidth, l.TileHeight),
			r.pair.Normal, image.Point{}, draw.Src)
		draw.Draw(canvas, image.Rect(x, l.TileHeight, x+l.TileWidth, 2*l.TileHeight),
			r.pair.Selected, image.Point{}, draw.Src)
	}

	// Step 6: write the output once, at the very end.
	if err := imaging.Save(canvas, p.cfg.OutputPath); err != nil {
		return nil, fmt.Errorf("save %s: %w", p.cfg.OutputPath, err)
	}
	outHash, err := hashFile(p.cfg.OutputPath)
	if err != nil {
		return nil, err
	}

	// Step 7: assemble the manifest.
	m := manifest.New(manifest.LayoutInfo{
		TileWidth:   l.TileWidth,
		TileHeight:  l.TileHeight,
		Columns:     l.Columns,
		Group1Start: l.Group1Start,
		Group2Start: l.Group2Start,
		GroupSize:   l.GroupSize,
	})
	m.Output = manifest.OutputInfo{
		Path:   p.cfg.OutputPath,
		Width:  l.TilesetWidth(),
		Height: l.TilesetHeight(),
		Hash:   outHash,
	}
	for _, r := range results {
		m.Tiles = append(m.Tiles, r.entry)
	}
	m.ComputeStats()
	m.Stats.Warnings = totalWarnings
	return m, nil
}

// checkCount enforces the tile-count policy. Strict mode demands
// exactly one source per column. Loose mode tolerates fewer sources;
// more would overflow the fixed canvas and is never accepted.
func (p *Pipeline) checkCount(n int) error {
	cols := p.cfg.Layout.Columns
	if n > cols {
		return fmt.Errorf("%d source images exceed the %d-tile layout", n, cols)
	}
	if n < cols {
		if !p.cfg.Loose {
			return fmt.Errorf("found %d source images, layout needs %d (use --loose to allow fewer)", n, cols)
		}
		fmt.Fprintf(os.Stderr,
			"[mjtiles] warn: %d of %d slots filled; remaining tiles stay blank and bonus groups may be incomplete\n",
			n, cols)
	}
	return nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	defer f.Close()
	h, err := hasher.ContentHashReader(f, 16)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return h, nil
}
