// Package colormap turns fractions into red and green channel intensities.
//
// Red is the fraction scaled by a maximum intensity. Green is the red list
// read backwards, so a stripe's green value comes from the stripe at the
// mirrored position rather than from its own fraction:
//
//	red   = [255, 145, 0]
//	green = [0, 145, 255]
//
// Intensities stay real-valued; quantization to 8 bits happens when the
// raster surface stores a pixel.
package colormap

import (
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/datastripes/pkg/errors"
)

// Channels holds the per-stripe red and green intensities of one bar.
type Channels struct {
	Red   []float64
	Green []float64
}

// Len returns the number of stripes.
func (c Channels) Len() int { return len(c.Red) }

// Data2Red scales each fraction by redMax. Values outside [0,1] are not clamped.
func Data2Red(fractions []float64, redMax float64) []float64 {
	return floats.ScaleTo(make([]float64, len(fractions)), redMax, fractions)
}

// Red2Green returns the red list in reverse order.
func Red2Green(red []float64) []float64 {
	green := slices.Clone(red)
	slices.Reverse(green)
	if green == nil {
		green = []float64{}
	}
	return green
}

// Map builds the channels for the first n values.
// Values beyond n are ignored; fewer than n values is an error.
func Map(values []float64, n int, redMax float64) (Channels, error) {
	if n <= 0 {
		return Channels{}, errors.New(errors.ErrCodeConfiguration, "stripe count must be positive, got %d", n)
	}
	if len(values) < n {
		return Channels{}, errors.New(errors.ErrCodeConfiguration,
			"declared %d stripes but only %d values available", n, len(values))
	}

	red := Data2Red(values[:n], redMax)
	green := Red2Green(red)
	if len(red) != n || len(green) != n {
		return Channels{}, errors.New(errors.ErrCodeInternal, "channel length mismatch: red=%d green=%d n=%d", len(red), len(green), n)
	}
	return Channels{Red: red, Green: green}, nil
}
