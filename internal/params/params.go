// Package params extracts per-file overrides encoded in a source
// filename. Segments look like `__key_value`, appended before the
// extension:
//
//	31-childlike_empress__resample_NEAREST.png
//
// Keys are case-insensitive. Unknown keys and invalid values never
// fail a build; each produces one warning and the parameter is
// dropped.
package params

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/mjtiles/internal/filter"
)

// Params is the set of recognized per-file overrides. Absent fields
// fall back to build-level defaults.
type Params struct {
	// Resample overrides the resampling mode for this file.
	Resample *filter.Filter
}

// Warning describes one ignored filename parameter.
type Warning struct {
	File   string // base filename
	Key    string
	Value  string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.File, w.Reason)
}

// Parse scans the base name of path for parameter segments. It is a
// pure function of the filename; warnings are returned, not printed.
func Parse(path string) (Params, []Warning) {
	base := filepath.Base(path)

	var p Params
	var warns []Warning

	segments := strings.Split(base, "__")
	for i, seg := range segments[1:] {
		// The key runs to the first underscore past its first
		// character, so `_resample_N` carries the key `_resample`.
		// Empty segments (from runs of four or more underscores)
		// carry nothing.
		if len(seg) < 2 {
			continue
		}
		idx := strings.Index(seg[1:], "_")
		if idx < 0 {
			continue
		}
		key := seg[:idx+1]
		value := seg[idx+2:]

		// A value ends at the next `__` (already split away) or at a
		// dot. The final segment has no following `__`, so without a
		// dot it is unterminated and carries no parameter.
		value, terminated := cutValue(value)
		if value == "" || (i == len(segments)-2 && !terminated) {
			continue
		}

		switch strings.ToLower(key) {
		case "resample":
			f, err := filter.Parse(value)
			if err != nil {
				warns = append(warns, Warning{
					File:   base,
					Key:    "resample",
					Value:  value,
					Reason: fmt.Sprintf("invalid value %q for parameter %q", value, "resample"),
				})
				continue
			}
			p.Resample = &f
		default:
			warns = append(warns, Warning{
				File:   base,
				Key:    key,
				Value:  value,
				Reason: fmt.Sprintf("unknown parameter %q", key),
			})
		}
	}

	return p, warns
}

// cutValue truncates a raw value at its first dot and reports whether
// that dot terminator was present.
func cutValue(raw string) (string, bool) {
	value, _, found := strings.Cut(raw, ".")
	return value, found
}
