package stripes

import (
	"image"

	"github.com/matzehuels/datastripes/pkg/colormap"
	"github.com/matzehuels/datastripes/pkg/errors"
	"github.com/matzehuels/datastripes/pkg/raster"
)

// StripeWidth returns floor(targetWidth/n), failing when either argument is
// not positive or when there are more stripes than target columns.
func StripeWidth(targetWidth, n int) (int, error) {
	if targetWidth <= 0 {
		return 0, errors.New(errors.ErrCodeConfiguration, "target width must be positive, got %d", targetWidth)
	}
	if n <= 0 {
		return 0, errors.New(errors.ErrCodeConfiguration, "stripe count must be positive, got %d", n)
	}
	sw := targetWidth / n
	if sw == 0 {
		return 0, errors.New(errors.ErrCodeConfiguration,
			"too many stripes: %d stripes do not fit in %d columns", n, targetWidth)
	}
	return sw, nil
}

// DivisibleWidth returns the canvas width for n stripes: StripeWidth*n.
func DivisibleWidth(targetWidth, n int) (int, error) {
	sw, err := StripeWidth(targetWidth, n)
	if err != nil {
		return 0, err
	}
	return sw * n, nil
}

// Synthesize paints n equal-width stripes onto a new canvas of
// StripeWidth*n by BarHeight. Stripe i uses (Red[i], Green[i], BlueConst).
func Synthesize(cfg Config, n int, ch colormap.Channels, alloc raster.Allocator) (raster.Surface, error) {
	sw, err := StripeWidth(cfg.TargetWidth, n)
	if err != nil {
		return nil, err
	}
	if len(ch.Red) != n || len(ch.Green) != n {
		return nil, errors.New(errors.ErrCodeConfiguration,
			"channel length mismatch: red=%d green=%d, want %d", len(ch.Red), len(ch.Green), n)
	}

	canvas := alloc(sw*n, cfg.BarHeight)
	for i := 0; i < n; i++ {
		rect := image.Rect(sw*i, 0, sw*(i+1), cfg.BarHeight)
		canvas.Fill(rect, raster.Color{R: ch.Red[i], G: ch.Green[i], B: cfg.BlueConst})
	}
	return canvas, nil
}
