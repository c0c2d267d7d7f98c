package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/datastripes/pkg/colormap"
	"github.com/matzehuels/datastripes/pkg/pipeline"
)

// =============================================================================
// Palette
// =============================================================================

// The stripes carry their own colors; the palette only frames them.
var (
	colorAccent = lipgloss.Color("36")  // titles, prompts, dimensions
	colorOK     = lipgloss.Color("35")  // finished stages
	colorWarn   = lipgloss.Color("220") // count mismatches, missing summary
	colorFail   = lipgloss.Color("167") // failed stages
	colorLink   = lipgloss.Color("75")  // server URL, suggested commands
	colorText   = lipgloss.Color("255") // measured values
	colorLabel  = lipgloss.Color("245") // field labels, table headers
	colorMuted  = lipgloss.Color("240") // timings, borders, hints
)

var (
	// StyleTitle renders a bar description.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleLink renders the preview server URL.
	StyleLink = lipgloss.NewStyle().Foreground(colorLink).Underline(true)

	// StyleNumber renders pixel dimensions.
	StyleNumber = lipgloss.NewStyle().Foreground(colorAccent)

	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleText    = lipgloss.NewStyle().Foreground(colorText)
	styleLabel   = lipgloss.NewStyle().Foreground(colorLabel).Width(14)
	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
)

// =============================================================================
// Status Lines
// =============================================================================

type statusKind int

const (
	statusOK statusKind = iota
	statusFail
	statusWarn
	statusNote
)

var statusMarks = map[statusKind]struct {
	icon  string
	style lipgloss.Style
}{
	statusOK:   {"✓", lipgloss.NewStyle().Foreground(colorOK)},
	statusFail: {"✗", lipgloss.NewStyle().Foreground(colorFail)},
	statusWarn: {"!", lipgloss.NewStyle().Foreground(colorWarn)},
	statusNote: {"›", lipgloss.NewStyle().Foreground(colorLabel)},
}

// printStatus prints one marked status line to stdout.
func printStatus(kind statusKind, format string, args ...any) {
	writeStatus(os.Stdout, kind, format, args...)
}

func writeStatus(w io.Writer, kind statusKind, format string, args ...any) {
	mark := statusMarks[kind]
	msg := fmt.Sprintf(format, args...)
	if kind == statusWarn {
		msg = mark.style.Render(msg)
	}
	fmt.Fprintln(w, mark.style.Render(mark.icon)+" "+msg)
}

// printHint prints an indented muted line under a status line.
func printHint(format string, args ...any) {
	fmt.Println("  " + styleMuted.Render(fmt.Sprintf(format, args...)))
}

// printNextStep suggests the command to run next.
func printNextStep(description, cmd string) {
	fmt.Println(styleMuted.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Bars
// =============================================================================

// writeBarInfo prints the stripe arithmetic of one bar: how N stripes divide
// the target width and how many columns the integer division leaves over.
func writeBarInfo(w io.Writer, info pipeline.BarInfo, targetWidth int) {
	field := func(label, value string) {
		fmt.Fprintln(w, styleLabel.Render(label)+" "+styleText.Render(value))
	}

	fmt.Fprintln(w, StyleTitle.Render(info.Description))
	field("File", info.File)
	field("Stripes", fmt.Sprintf("%d declared, %d read", info.Stripes, info.Values))
	field("Stripe width", fmt.Sprintf("%dpx", info.StripeWidth))
	field("Canvas", fmt.Sprintf("%dpx of %dpx (%dpx dropped)",
		info.DivisibleWidth, targetWidth, info.Dropped(targetWidth)))
	field("Range", fmt.Sprintf("%.4g to %.4g, mean %.4g", info.Series.Min, info.Series.Max, info.Series.Mean))
	if info.Values != info.Stripes {
		writeStatus(w, statusWarn, "declared %d values, file has %d", info.Stripes, info.Values)
	}
}

// writeRunStats prints the composite size and per-stage timings of a render.
func writeRunStats(w io.Writer, res *pipeline.Result) {
	writeStatus(w, statusOK, "Composite %s from %d bars",
		StyleNumber.Render(fmt.Sprintf("%dx%d", res.Image.Width(), res.Image.Height())), len(res.Bars))

	timings := []string{
		"parse " + res.Stats.ParseTime.String(),
		"bars " + res.Stats.BarTime.String(),
		"composite " + res.Stats.CompositeTime.String(),
		"total " + res.Stats.Total().String(),
	}
	fmt.Fprintln(w, "  "+styleMuted.Render(strings.Join(timings, " · ")))
}

// stripeSwatch renders up to limit stripes as colored blocks, one per stripe,
// using the same red/green/blue mix the bar is painted with.
func stripeSwatch(ch colormap.Channels, blue float64, limit int) string {
	n := max(min(limit, ch.Len()), 0)
	var b strings.Builder
	for i := 0; i < n; i++ {
		c := colorful.Color{R: ch.Red[i] / 255, G: ch.Green[i] / 255, B: blue / 255}.Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█"))
	}
	if ch.Len() > n {
		b.WriteString(styleMuted.Render(fmt.Sprintf(" +%d", ch.Len()-n)))
	}
	return b.String()
}
