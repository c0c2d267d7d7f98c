package stripes

import (
	"github.com/matzehuels/datastripes/pkg/colormap"
	"github.com/matzehuels/datastripes/pkg/errors"
	"github.com/matzehuels/datastripes/pkg/raster"
	"github.com/matzehuels/datastripes/pkg/series"
)

// Resize stretches or compresses a stripe canvas to exactly TargetWidth x BarHeight.
func Resize(cfg Config, canvas raster.Surface) (raster.Surface, error) {
	if canvas == nil || canvas.Width() == 0 {
		return nil, errors.New(errors.ErrCodeConfiguration, "cannot resize a zero-width stripe canvas")
	}
	return canvas.Resize(cfg.TargetWidth, cfg.BarHeight)
}

// BuildBar turns a parsed series into a bar, using the declared count as
// the number of stripes.
func BuildBar(cfg Config, s *series.Series, alloc raster.Allocator) (raster.Surface, error) {
	ch, err := colormap.Map(s.Values, s.Declared, cfg.RedMax)
	if err != nil {
		return nil, err
	}
	canvas, err := Synthesize(cfg, s.Declared, ch, alloc)
	if err != nil {
		return nil, err
	}
	return Resize(cfg, canvas)
}
