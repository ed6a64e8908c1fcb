// Package filter is a closed enumeration of the resampling modes the
// filename convention may name. The imaging library's own filter set is
// wider and differently named; translation happens only in Kernel, so
// the rest of the code never touches imaging's naming.
package filter

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// Filter identifies one supported resampling mode.
type Filter int

const (
	Nearest Filter = iota
	Lanczos
	Bilinear
	Bicubic
	Box
	Hamming
)

// Default is used when a source file carries no resample override.
const Default = Lanczos

var names = [...]string{
	Nearest:  "NEAREST",
	Lanczos:  "LANCZOS",
	Bilinear: "BILINEAR",
	Bicubic:  "BICUBIC",
	Box:      "BOX",
	Hamming:  "HAMMING",
}

// Parse resolves a filter by member name, case-insensitively.
func Parse(name string) (Filter, error) {
	upper := strings.ToUpper(name)
	for f, n := range names {
		if n == upper {
			return Filter(f), nil
		}
	}
	return 0, fmt.Errorf("unknown resampling mode %q (valid: %s)", name, strings.Join(names[:], ", "))
}

func (f Filter) String() string {
	if f < 0 || int(f) >= len(names) {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return names[f]
}

// Kernel translates the filter to the imaging library's resampling
// kernel. BICUBIC maps to Catmull-Rom, BILINEAR to triangle filtering.
func (f Filter) Kernel() imaging.ResampleFilter {
	switch f {
	case Nearest:
		return imaging.NearestNeighbor
	case Bilinear:
		return imaging.Linear
	case Bicubic:
		return imaging.CatmullRom
	case Box:
		return imaging.Box
	case Hamming:
		return imaging.Hamming
	default:
		return imaging.Lanczos
	}
}
