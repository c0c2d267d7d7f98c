package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/datastripes/pkg/display"
	"github.com/matzehuels/datastripes/pkg/errors"
	"github.com/matzehuels/datastripes/pkg/pipeline"
)

// renderOpts holds the render-only flags.
type renderOpts struct {
	yes     bool   // skip the confirmation prompt
	display string // display backend, see display.ValidBackends
	columns int    // terminal preview width
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags optionFlags
	ro := renderOpts{display: display.BackendViewer, columns: display.DefaultColumns}

	cmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Render data files as a striped composite and display it",
		Long: `Render data files as a striped composite and display it.

Each file becomes one bar: the first line is a description, the second the
number of values N, followed by N fractions in [0,1]. The first file is the
reference bar. Without arguments the files come from the config file, or
the bundled "text data/" datasets.

The summary file is printed first and rendering waits for confirmation:
press enter to continue, type anything else to abort.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !display.ValidBackends[ro.display] {
				return errors.New(errors.ErrCodeInvalidInput,
					"invalid display: %s (must be 'viewer', 'terminal', or 'none')", ro.display)
			}
			opts, err := flags.options(cmd, args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, ro)
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVarP(&ro.yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().StringVar(&ro.display, "display", ro.display, "display backend: viewer (default), terminal, none")
	cmd.Flags().IntVar(&ro.columns, "columns", ro.columns, "terminal preview width in characters")

	return cmd
}

// runRender prints the summary, asks for confirmation, runs the pipeline and
// hands the composite to the display backend.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, ro renderOpts) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	printSummary(logger, opts.Summary)

	if !ro.yes {
		ok, err := confirm(ctx, c.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		if !ok {
			printStatus(statusNote, "Aborted")
			return nil
		}
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, "Loading")
	spinner.Start()

	result, err := newRunner(ctx).Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d bars", len(result.Bars)))

	writeRunStats(os.Stdout, result)

	d := newDisplayer(logger, ro)
	if err := d.Display(ctx, result.Image.Image()); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if v, ok := d.(*display.Viewer); ok {
		printHint("preview written to %s", v.LastPath())
	}
	return nil
}

// newDisplayer maps a validated backend name to its Displayer.
func newDisplayer(logger *log.Logger, ro renderOpts) display.Displayer {
	switch ro.display {
	case display.BackendTerminal:
		return &display.Terminal{Out: os.Stdout, Columns: ro.columns}
	case display.BackendNone:
		return display.Discard{}
	default:
		return &display.Viewer{Logger: logger}
	}
}

// printSummary prints the summary file line by line with surrounding
// whitespace trimmed. A missing summary is only a warning.
func printSummary(logger *log.Logger, path string) {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("summary not shown", "path", path, "err", err)
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fmt.Println(strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		logger.Warn("summary truncated", "path", path, "err", err)
	}
}
