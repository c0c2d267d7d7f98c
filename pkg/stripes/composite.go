package stripes

import (
	"github.com/matzehuels/datastripes/pkg/errors"
	"github.com/matzehuels/datastripes/pkg/raster"
)

// Composite stacks bars vertically on a new TargetWidth x BarHeight*len(bars) surface.
func Composite(cfg Config, bars []raster.Surface, alloc raster.Allocator) (raster.Surface, error) {
	if err := checkBars(cfg, bars); err != nil {
		return nil, err
	}
	dst := alloc(cfg.TargetWidth, cfg.BarHeight*len(bars))
	return CompositeInto(cfg, dst, bars)
}

// CompositeInto copies bar row's pixel (x, y) to dst at (x, y+BarHeight*row)
// and returns dst. Only the band of each bar is written.
func CompositeInto(cfg Config, dst raster.Surface, bars []raster.Surface) (raster.Surface, error) {
	if err := checkBars(cfg, bars); err != nil {
		return nil, err
	}
	if dst.Width() < cfg.TargetWidth || dst.Height() < cfg.BarHeight*len(bars) {
		return nil, errors.New(errors.ErrCodeDimensionMismatch,
			"destination %dx%d cannot hold %d bars of %dx%d",
			dst.Width(), dst.Height(), len(bars), cfg.TargetWidth, cfg.BarHeight)
	}

	for row, bar := range bars {
		offset := cfg.BarHeight * row
		for y := 0; y < cfg.BarHeight; y++ {
			for x := 0; x < cfg.TargetWidth; x++ {
				dst.Set(x, y+offset, bar.At(x, y))
			}
		}
	}
	return dst, nil
}

func checkBars(cfg Config, bars []raster.Surface) error {
	if len(bars) == 0 {
		return errors.New(errors.ErrCodeDimensionMismatch, "no bars to composite")
	}
	for i, bar := range bars {
		if bar == nil {
			return errors.New(errors.ErrCodeDimensionMismatch, "bar %d is nil", i)
		}
		if bar.Width() != cfg.TargetWidth || bar.Height() != cfg.BarHeight {
			return errors.New(errors.ErrCodeDimensionMismatch,
				"bar %d is %dx%d, want %dx%d", i, bar.Width(), bar.Height(), cfg.TargetWidth, cfg.BarHeight)
		}
	}
	return nil
}
