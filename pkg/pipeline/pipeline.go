// Package pipeline provides the parse → bar → composite pipeline for datastripes.
//
// This package wires the stage packages together so that the CLI and the
// HTTP preview server run identical logic:
//
//  1. Parse: read each data file into a [series.Series]
//  2. Bar: map colors, synthesize stripes and resize ([stripes.BuildBar])
//  3. Composite: stack the bars in input order ([stripes.Composite])
//
// The first file is conventionally a reference dataset; the remaining files
// follow in declaration order. Processing is fail-fast: the first file that
// cannot be parsed or drawn aborts the run and no composite is produced.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Config: stripes.DefaultConfig(),
//	    Files:  []string{"ref.txt", "climate.txt", "illiteracy.txt", "mortality.txt"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img := result.Image.Image()
//
// [series.Series]: github.com/matzehuels/datastripes/pkg/series.Series
// [stripes.BuildBar]: github.com/matzehuels/datastripes/pkg/stripes.BuildBar
// [stripes.Composite]: github.com/matzehuels/datastripes/pkg/stripes.Composite
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/datastripes/pkg/errors"
	"github.com/matzehuels/datastripes/pkg/raster"
	"github.com/matzehuels/datastripes/pkg/series"
	"github.com/matzehuels/datastripes/pkg/stripes"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// DefaultSummary is the project summary printed before the confirmation prompt.
const DefaultSummary = "bar_descriptions.txt"

// DefaultFiles are the bundled datasets: the reference bar first, then the
// three named datasets in display order.
var DefaultFiles = []string{
	"text data/data-test.txt",
	"text data/data-climate.txt",
	"text data/data-illiteracy.txt",
	"text data/data-child-mortality.txt",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	Config       stripes.Config `json:"config"`
	Files        []string       `json:"files"`
	Summary      string         `json:"summary,omitempty"`
	Strict       bool           `json:"strict,omitempty"`       // reject declared/actual count mismatches
	Interpolator string         `json:"interpolator,omitempty"` // resize scaler, see raster.Interpolators

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Image is the composite of all bars.
	Image raster.Surface

	// Bars describes each bar in composite order.
	Bars []BarInfo

	// Stats contains timing information.
	Stats Stats
}

// BarInfo describes how one data file was turned into a bar.
type BarInfo struct {
	File           string
	Description    string
	Stripes        int // declared count N
	Values         int // parsed value lines
	StripeWidth    int
	DivisibleWidth int
	Series         series.Stats
}

// Dropped is the number of target columns not covered by the stripe canvas
// before resizing.
func (b BarInfo) Dropped(targetWidth int) int {
	return targetWidth - b.DivisibleWidth
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ParseTime     time.Duration
	BarTime       time.Duration
	CompositeTime time.Duration
}

// Total returns the summed stage durations.
func (s Stats) Total() time.Duration {
	return s.ParseTime + s.BarTime + s.CompositeTime
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
//
// A zero Config is replaced by [stripes.DefaultConfig]; a zero FilesNum is
// taken from the number of files.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Files) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one data file is required")
	}
	for _, f := range o.Files {
		if err := errors.ValidateDataPath(f); err != nil {
			return err
		}
	}

	if o.Config == (stripes.Config{}) {
		o.Config = stripes.DefaultConfig()
		o.Config.FilesNum = 0
	}
	if o.Config.FilesNum == 0 {
		o.Config.FilesNum = len(o.Files)
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.Config.FilesNum != len(o.Files) {
		return errors.New(errors.ErrCodeConfiguration,
			"expected %d data files, got %d", o.Config.FilesNum, len(o.Files))
	}

	if _, err := raster.ParseInterpolator(o.Interpolator); err != nil {
		return err
	}
	if o.Interpolator == "" {
		o.Interpolator = raster.DefaultInterpolator
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Allocator returns the surface allocator configured by the options.
func (o *Options) Allocator() (raster.Allocator, error) {
	ip, err := raster.ParseInterpolator(o.Interpolator)
	if err != nil {
		return nil, err
	}
	return raster.NewAllocator(raster.WithInterpolator(ip)), nil
}
