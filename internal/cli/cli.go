// Package cli implements the datastripes command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/datastripes/pkg/buildinfo"
	"github.com/matzehuels/datastripes/pkg/pipeline"
	"github.com/matzehuels/datastripes/pkg/stripes"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for temp files and display.
	appName = "datastripes"

	// defaultConfigFile is read from the working directory when --config is not given.
	defaultConfigFile = "datastripes.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Stdin feeds the confirmation prompt.
	Stdin io.Reader
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Stdin:  os.Stdin,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Datastripes turns time series into striped bar images",
		Long:         `Datastripes is a CLI tool that reads fractional time series and renders each one as a bar of colored stripes, stacking the bars into a single image for side-by-side comparison.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// newRunner creates a pipeline runner logging to the command's logger.
func newRunner(ctx context.Context) *pipeline.Runner {
	return pipeline.NewRunner(loggerFromContext(ctx))
}

// =============================================================================
// Options Helpers
// =============================================================================

// optionFlags are the pipeline flags shared by render and serve.
type optionFlags struct {
	config       string
	width        int
	height       int
	redMax       float64
	filesNum     int
	blue         float64
	interpolator string
	strict       bool
	summary      string
}

// bind registers the flags on cmd with the built-in defaults.
func (f *optionFlags) bind(cmd *cobra.Command) {
	def := stripes.DefaultConfig()
	cmd.Flags().StringVar(&f.config, "config", "", "TOML config file (default ./"+defaultConfigFile+" if present)")
	cmd.Flags().IntVar(&f.width, "width", def.TargetWidth, "bar width in pixels")
	cmd.Flags().IntVar(&f.height, "height", def.BarHeight, "bar height in pixels")
	cmd.Flags().Float64Var(&f.redMax, "red-max", def.RedMax, "red intensity for a value of 1.0")
	cmd.Flags().IntVar(&f.filesNum, "files-num", 0, "expected number of data files (default: however many are given)")
	cmd.Flags().Float64Var(&f.blue, "blue", def.BlueConst, "constant blue channel")
	cmd.Flags().StringVar(&f.interpolator, "interpolator", "", "resize scaler: nearest (default), approxbilinear, bilinear, catmullrom")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject files whose declared count differs from their values")
	cmd.Flags().StringVar(&f.summary, "summary", "", "summary file printed before rendering (default "+pipeline.DefaultSummary+")")
}

// options resolves defaults, then the config file, then explicitly set flags,
// then positional file arguments. --files-num is applied last so it can
// still assert a count against positional files.
func (f *optionFlags) options(cmd *cobra.Command, args []string) (pipeline.Options, error) {
	opts := pipeline.Options{
		Config:  stripes.DefaultConfig(),
		Files:   append([]string(nil), pipeline.DefaultFiles...),
		Summary: pipeline.DefaultSummary,
	}
	opts.Config.FilesNum = 0

	path := f.config
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		fc, err := pipeline.LoadConfig(path)
		if err != nil {
			return opts, err
		}
		fc.ApplyTo(&opts)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		opts.Config.TargetWidth = f.width
	}
	if flags.Changed("height") {
		opts.Config.BarHeight = f.height
	}
	if flags.Changed("red-max") {
		opts.Config.RedMax = f.redMax
	}
	if flags.Changed("blue") {
		opts.Config.BlueConst = f.blue
	}
	if flags.Changed("interpolator") {
		opts.Interpolator = f.interpolator
	}
	if flags.Changed("strict") {
		opts.Strict = f.strict
	}
	if flags.Changed("summary") {
		opts.Summary = f.summary
	}
	if len(args) > 0 {
		opts.Files = args
		opts.Config.FilesNum = 0
	}
	if flags.Changed("files-num") {
		opts.Config.FilesNum = f.filesNum
	}
	return opts, nil
}
