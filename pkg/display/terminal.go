package display

import (
	"context"
	"image"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultColumns is the preview width used when Terminal.Columns is zero.
const DefaultColumns = 80

// halfBlock draws the upper pixel in the foreground and the lower one in the background.
const halfBlock = "▀"

// Terminal renders a downsampled preview using lipgloss styles.
// Each character cell shows two vertically stacked pixels.
type Terminal struct {
	Out     io.Writer
	Columns int
}

// Display writes the preview to Out, or to stdout when Out is nil.
func (t *Terminal) Display(ctx context.Context, img image.Image) error {
	_, err := io.WriteString(t.out(), t.Render(img))
	return err
}

func (t *Terminal) out() io.Writer {
	if t.Out == nil {
		return os.Stdout
	}
	return t.Out
}

// Render returns the preview text, one line per pair of sampled rows.
func (t *Terminal) Render(img image.Image) string {
	b := img.Bounds()
	if b.Empty() {
		return ""
	}

	cols := t.Columns
	if cols <= 0 {
		cols = DefaultColumns
	}
	cols = min(cols, b.Dx())
	scale := float64(b.Dx()) / float64(cols)
	rows := max(int(float64(b.Dy())/scale+0.5), 1)
	if rows%2 == 1 {
		rows++
	}

	renderer := lipgloss.NewRenderer(t.out())
	sample := func(cx, cy int) string {
		x := b.Min.X + min(int((float64(cx)+0.5)*scale), b.Dx()-1)
		y := b.Min.Y + min(int((float64(cy)+0.5)*scale), b.Dy()-1)
		c, _ := colorful.MakeColor(img.At(x, y))
		return c.Hex()
	}

	var sb strings.Builder
	for cy := 0; cy < rows; cy += 2 {
		for cx := 0; cx < cols; cx++ {
			style := renderer.NewStyle().
				Foreground(lipgloss.Color(sample(cx, cy))).
				Background(lipgloss.Color(sample(cx, cy+1)))
			sb.WriteString(style.Render(halfBlock))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

var _ Displayer = (*Terminal)(nil)
