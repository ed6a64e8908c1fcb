package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/mjtiles/internal/filter"
	"github.com/AnyUserName/mjtiles/internal/layout"
	"github.com/AnyUserName/mjtiles/internal/params"
	"github.com/AnyUserName/mjtiles/internal/tileset"
)

var planResample string

var planCmd = &cobra.Command{
	Use:   "plan <source_dir>",
	Short: "Show the tile order and parameters without building",
	Long: `Lists the tile slot each source file would occupy, the resampling
mode that would be used, bonus-group assignments, and any filename
parameters that would be ignored. No image work is done.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planResample, "resample", filter.Default.String(), "default resampling mode")
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, args []string) error {
	l := layout.Default()

	defaultFilter, err := filter.Parse(planResample)
	if err != nil {
		return fmt.Errorf("--resample: %w", err)
	}

	sources, err := tileset.Scan(args[0])
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return fmt.Errorf("no source images in %s", args[0])
	}

	fmt.Println()
	fmt.Printf("  %d source images for %d tile slots\n", len(sources), l.Columns)
	fmt.Println()

	var warnCount int
	for _, src := range sources {
		ps, warns := params.Parse(src.Path)
		warnCount += len(warns)

		f := defaultFilter
		if ps.Resample != nil {
			f = *ps.Resample
		}

		line := fmt.Sprintf("  [%2d] %-44s %s", src.Index, src.Name, f)
		if g := l.BonusGroup(src.Index); g != 0 {
			line += fmt.Sprintf("  bonus %d", g)
		}
		fmt.Println(line)
		for _, w := range warns {
			fmt.Printf("       ⚠ %s\n", w.Reason)
		}
	}
	fmt.Println()

	switch {
	case len(sources) > l.Columns:
		fmt.Printf("  ✗ %d images exceed the %d-slot layout; the build will fail\n",
			len(sources), l.Columns)
	case len(sources) < l.Columns:
		fmt.Printf("  ⚠ %d of %d slots filled; the build needs --loose\n",
			len(sources), l.Columns)
	default:
		fmt.Println("  ✓ every slot filled")
	}
	if warnCount > 0 {
		fmt.Printf("  ⚠ %d filename parameters would be ignored\n", warnCount)
	}
	fmt.Println()
	return nil
}
