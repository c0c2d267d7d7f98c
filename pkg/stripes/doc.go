// Package stripes builds stripe bars and stacks them into a composite image.
//
// # Pipeline
//
// One data file becomes one bar:
//
//  1. [colormap.Map]: fractions to red and mirrored green intensities
//  2. [Synthesize]: N stripes of width floor(TargetWidth/N) on one canvas
//  3. [Resize]: stretch the canvas to exactly TargetWidth x BarHeight
//
// [BuildBar] runs the three steps for a parsed series. [Composite] then
// stacks bars top to bottom, bar i occupying rows [i*BarHeight, (i+1)*BarHeight).
//
// # Width Arithmetic
//
// When TargetWidth is not a multiple of N, the canvas is narrower than the
// target: with N=3 and TargetWidth=1100 each stripe is 366 px and the canvas
// is 1098 px. The two missing columns are not padded; the resize step
// stretches the 1098 px canvas over the full width.
//
// All functions allocate fresh surfaces through a [raster.Allocator] and
// keep no state between calls.
//
// [colormap.Map]: github.com/matzehuels/datastripes/pkg/colormap.Map
package stripes
