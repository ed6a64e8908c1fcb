package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mjtiles",
	Short: "Tileset builder for GNOME Mahjongg",
	Long: `mjtiles turns a directory of 41 images into a GNOME Mahjongg
tileset: two rows of fixed-size tiles (normal and selected), with the
two bonus groups marked by colored frames.

The output PNG can be dropped into Mahjongg's themes directory
(/usr/share/gnome-mahjongg/themes) and selected in its preferences.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"mjtiles %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[mjtiles] "+format+"\n", args...)
	}
}
