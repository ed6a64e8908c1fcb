package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/mjtiles/internal/filter"
	"github.com/AnyUserName/mjtiles/internal/layout"
	"github.com/AnyUserName/mjtiles/internal/manifest"
	"github.com/AnyUserName/mjtiles/internal/tileset"
)

var (
	buildOut        string
	buildManifest   string
	buildNoManifest bool
	buildWorkers    int
	buildResample   string
	buildLoose      bool
)

var buildCmd = &cobra.Command{
	Use:   "build <source_dir>",
	Short: "Build a tileset image from a directory of source images",
	Long: `Reads every file inside the source directory in name order, scales
each image into a tile, and writes the assembled tileset plus a JSON
manifest describing the build.

Per-file overrides go in the filename: 31-x__resample_NEAREST.png
resamples that one image with NEAREST instead of the default.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "./tileset.png", "output image path")
	buildCmd.Flags().StringVar(&buildManifest, "manifest", "", "manifest path (default <out>.manifest.json)")
	buildCmd.Flags().BoolVar(&buildNoManifest, "no-manifest", false, "skip writing the manifest")
	buildCmd.Flags().IntVarP(&buildWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	buildCmd.Flags().StringVar(&buildResample, "resample", filter.Default.String(), "default resampling mode")
	buildCmd.Flags().BoolVar(&buildLoose, "loose", false, "accept fewer images than tile slots")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	sourceDir := args[0]
	start := time.Now()

	info, err := os.Stat(sourceDir)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", sourceDir)
	}

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return fmt.Errorf("resolve source path: %w", err)
	}
	absOut, err := filepath.Abs(buildOut)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	defaultFilter, err := filter.Parse(buildResample)
	if err != nil {
		return fmt.Errorf("--resample: %w", err)
	}

	l := layout.Default()

	logVerbose("source:   %s", absSource)
	logVerbose("output:   %s", absOut)
	logVerbose("resample: %s", defaultFilter)

	if err := os.MkdirAll(filepath.Dir(absOut), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := tileset.New(tileset.Config{
		SourceDir:     absSource,
		OutputPath:    absOut,
		Layout:        l,
		Workers:       buildWorkers,
		DefaultFilter: defaultFilter,
		Loose:         buildLoose,
		Verbose:       verbose,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	manifestPath := buildManifest
	if manifestPath == "" {
		manifestPath = absOut + ".manifest.json"
	}
	if !buildNoManifest {
		if err := manifest.WriteJSON(m, manifestPath); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}

	printBuildReport(m, manifestPath, time.Since(start))
	return nil
}

func printBuildReport(m *manifest.Manifest, manifestPath string, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║             mjtiles build complete               ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	fmt.Printf("  Tiles:       %d of %d slots\n", m.Stats.Tiles, m.Layout.Columns)
	fmt.Printf("  Bonus tiles: %d\n", m.Stats.BonusTiles)
	if m.Stats.Warnings > 0 {
		fmt.Printf("  Warnings:    %d ignored filename parameters\n", m.Stats.Warnings)
	}
	fmt.Printf("  Canvas:      %d×%d\n", m.Output.Width, m.Output.Height)

	if info, err := os.Stat(m.Output.Path); err == nil {
		fmt.Printf("  Output:      %s (%s)\n", m.Output.Path, formatBytes(info.Size()))
	} else {
		fmt.Printf("  Output:      %s\n", m.Output.Path)
	}
	fmt.Printf("  Hash:        %s\n", m.Output.Hash)
	if !buildNoManifest {
		fmt.Printf("  Manifest:    %s\n", manifestPath)
	}
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
