package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/datastripes/pkg/colormap"
	"github.com/matzehuels/datastripes/pkg/errors"
	"github.com/matzehuels/datastripes/pkg/pipeline"
	"github.com/matzehuels/datastripes/pkg/stripes"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		flags optionFlags
		pairs int
	)

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show how a data file maps to stripes",
		Long: `Show how a data file maps to stripes.

Parses one data file and prints its stripe arithmetic (count, stripe width,
columns lost to integer division), value statistics, and the first
red/green channel pairs. Nothing is drawn.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pairs < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--pairs must not be negative, got %d", pairs)
			}
			opts, err := flags.options(cmd, nil)
			if err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), args[0], opts.Config, opts.Strict, pairs)
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVarP(&pairs, "pairs", "n", 8, "number of channel pairs to show")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, file string, cfg stripes.Config, strict bool, pairs int) error {
	// inspect reads exactly one file, whatever files_num says.
	cfg.FilesNum = 1
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	s, err := newRunner(ctx).Parse(file, strict)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	info, err := pipeline.Describe(cfg, s)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", file, err)
	}
	ch, err := colormap.Map(s.Values, s.Declared, cfg.RedMax)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", file, err)
	}

	writeBarInfo(os.Stdout, info, cfg.TargetWidth)
	fmt.Println(stripeSwatch(ch, cfg.BlueConst, 64))
	fmt.Println()
	fmt.Println(channelTable(s.Values, ch, pairs))
	printNextStep("Render it", appName+" render --yes "+strconv.Quote(file))
	return nil
}

// channelTable renders the first n stripes as index, value, red, green rows.
// A negative n renders the header only.
func channelTable(values []float64, ch colormap.Channels, n int) string {
	n = max(min(n, ch.Len()), 0)
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		rows[i] = []string{
			strconv.Itoa(i),
			strconv.FormatFloat(values[i], 'g', 4, 64),
			strconv.FormatFloat(ch.Red[i], 'f', 1, 64),
			strconv.FormatFloat(ch.Green[i], 'f', 1, 64),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("#", "Value", "Red", "Green").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
	return t.Render()
}
