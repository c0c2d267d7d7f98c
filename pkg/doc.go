// Package pkg provides the libraries behind datastripes.
//
// # Overview
//
// Datastripes turns one-dimensional series of fractions into bars of
// colored stripes and stacks the bars into one image, so several datasets
// can be compared at a glance. Each value becomes one stripe whose red
// channel encodes its magnitude.
//
// # Architecture
//
//	data file (description, count, values)
//	         ↓
//	    [series] (parse)
//	         ↓
//	    [colormap] (fractions → red/green channels)
//	         ↓
//	    [stripes] (synthesize → resize → composite)
//	         ↓
//	    [display] (viewer, terminal, HTTP)
//
// [pipeline] runs the stages for a list of files, [raster] provides the
// pixel surface they draw on, and [errors] carries the error codes shared
// by all of them.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Files: []string{"text data/data-test.txt", "text data/data-climate.txt"},
//	})
//	if err != nil {
//	    return err
//	}
//	img := result.Image.Image() // image.Image, 1100x400
//
// [series]: https://pkg.go.dev/github.com/matzehuels/datastripes/pkg/series
// [colormap]: https://pkg.go.dev/github.com/matzehuels/datastripes/pkg/colormap
// [stripes]: https://pkg.go.dev/github.com/matzehuels/datastripes/pkg/stripes
// [display]: https://pkg.go.dev/github.com/matzehuels/datastripes/pkg/display
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/datastripes/pkg/pipeline
// [raster]: https://pkg.go.dev/github.com/matzehuels/datastripes/pkg/raster
// [errors]: https://pkg.go.dev/github.com/matzehuels/datastripes/pkg/errors
package pkg
