package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/datastripes/pkg/observability"
	"github.com/matzehuels/datastripes/pkg/raster"
	"github.com/matzehuels/datastripes/pkg/series"
	"github.com/matzehuels/datastripes/pkg/stripes"
)

// Runner executes the pipeline and reports progress through its logger.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Every call allocates fresh surfaces, so the same Runner
// can be reused across runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute parses every file, builds one bar per file and stacks them.
// It stops at the first failing file.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	alloc, err := opts.Allocator()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	hooks := observability.Pipeline()

	result := &Result{Bars: make([]BarInfo, 0, len(opts.Files))}

	// Stage 1: Parse
	parseStart := time.Now()
	parsed := make([]*series.Series, 0, len(opts.Files))
	for _, file := range opts.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		s, err := parseFile(logger, file, opts.Strict)
		if err != nil {
			hooks.OnParseComplete(ctx, file, 0, time.Since(start), err)
			return nil, fmt.Errorf("parse: %w", err)
		}
		hooks.OnParseComplete(ctx, file, len(s.Values), time.Since(start), nil)
		parsed = append(parsed, s)
	}
	result.Stats.ParseTime = time.Since(parseStart)

	logger.Info("parsed data files",
		"files", len(parsed),
		"duration", result.Stats.ParseTime)

	// Stage 2: Bars
	barStart := time.Now()
	bars := make([]raster.Surface, 0, len(parsed))
	for row, s := range parsed {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		bar, info, err := buildBar(logger, opts.Config, s, alloc)
		hooks.OnBarComplete(ctx, s.Name, info.Stripes, time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("bar %d (%s): %w", row, s.Name, err)
		}
		bars = append(bars, bar)
		result.Bars = append(result.Bars, info)
	}
	result.Stats.BarTime = time.Since(barStart)

	// Stage 3: Composite
	compositeStart := time.Now()
	img, err := stripes.Composite(opts.Config, bars, alloc)
	hooks.OnCompositeComplete(ctx, len(bars), time.Since(compositeStart), err)
	if err != nil {
		return nil, fmt.Errorf("composite: %w", err)
	}
	result.Image = img
	result.Stats.CompositeTime = time.Since(compositeStart)

	logger.Info("composited bars",
		"bars", len(bars),
		"width", img.Width(),
		"height", img.Height(),
		"duration", result.Stats.CompositeTime)

	return result, nil
}

// Parse reads one data file and, when strict, checks its declared count.
func (r *Runner) Parse(file string, strict bool) (*series.Series, error) {
	return parseFile(r.Logger, file, strict)
}

// Bar builds the bar for one series and describes it.
func (r *Runner) Bar(cfg stripes.Config, s *series.Series, alloc raster.Allocator) (raster.Surface, BarInfo, error) {
	return buildBar(r.Logger, cfg, s, alloc)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func parseFile(logger *log.Logger, file string, strict bool) (*series.Series, error) {
	s, err := series.ParseFile(file)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(strict); err != nil {
		return nil, err
	}
	if s.Declared != len(s.Values) {
		logger.Warn("declared count differs from value lines",
			"file", file, "declared", s.Declared, "values", len(s.Values))
	}
	logger.Debug("parsed series",
		"file", file,
		"description", s.Description,
		"declared", s.Declared)
	return s, nil
}

func buildBar(logger *log.Logger, cfg stripes.Config, s *series.Series, alloc raster.Allocator) (raster.Surface, BarInfo, error) {
	info, err := Describe(cfg, s)
	if err != nil {
		return nil, BarInfo{}, err
	}
	bar, err := stripes.BuildBar(cfg, s, alloc)
	if err != nil {
		return nil, BarInfo{}, err
	}
	logger.Debug("built bar",
		"file", s.Name,
		"stripes", info.Stripes,
		"stripe_width", info.StripeWidth,
		"dropped", info.Dropped(cfg.TargetWidth),
		"min", info.Series.Min,
		"max", info.Series.Max,
		"mean", info.Series.Mean)
	return bar, info, nil
}

// Describe computes the width arithmetic for a series without drawing it.
func Describe(cfg stripes.Config, s *series.Series) (BarInfo, error) {
	sw, err := stripes.StripeWidth(cfg.TargetWidth, s.Declared)
	if err != nil {
		return BarInfo{}, err
	}
	return BarInfo{
		File:           s.Name,
		Description:    s.Description,
		Stripes:        s.Declared,
		Values:         len(s.Values),
		StripeWidth:    sw,
		DivisibleWidth: sw * s.Declared,
		Series:         s.Stats(),
	}, nil
}
