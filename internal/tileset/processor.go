package tileset

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/cenkalti/dominantcolor"

	"github.com/AnyUserName/mjtiles/internal/hasher"
	"github.com/AnyUserName/mjtiles/internal/manifest"
	"github.com/AnyUserName/mjtiles/internal/params"
	"github.com/AnyUserName/mjtiles/internal/tile"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// result holds everything produced from one source file.
type result struct {
	pair     tile.Pair
	entry    manifest.Tile
	warnings []params.Warning
	err      error
}

// processSource decodes one source image and generates its tile pair
// plus manifest entry. Any decode failure is fatal for the whole run;
// only filename-parameter problems are soft and come back as warnings.
func (p *Pipeline) processSource(src Source) result {
	var res result

	data, err := os.ReadFile(src.Path)
	if err != nil {
		res.err = fmt.Errorf("read %s: %w", src.Name, err)
		return res
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		res.err = fmt.Errorf("decode %s: %w", src.Name, err)
		return res
	}

	ps, warns := params.Parse(src.Path)
	res.warnings = warns

	f := p.cfg.DefaultFilter
	if ps.Resample != nil {
		f = *ps.Resample
	}

	res.pair = p.gen.MakePair(img, f)

	group := p.cfg.Layout.BonusGroup(src.Index)
	if group != 0 {
		p.gen.ApplyBonusFrame(group, res.pair)
	}

	b := img.Bounds()
	res.entry = manifest.Tile{
		Index:         src.Index,
		Source:        src.Name,
		Width:         b.Dx(),
		Height:        b.Dy(),
		Resample:      f.String(),
		BonusGroup:    group,
		DominantColor: dominantcolor.Hex(dominantcolor.Find(img)),
		Hash:          hasher.ContentHash(data, 16),
	}
	return res
}
