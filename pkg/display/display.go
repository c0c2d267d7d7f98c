package display

import (
	"context"
	"image"
)

// Displayer presents an image to the user.
type Displayer interface {
	Display(ctx context.Context, img image.Image) error
}

// Backend names accepted by the CLI.
const (
	BackendViewer   = "viewer"
	BackendTerminal = "terminal"
	BackendNone     = "none"
)

// ValidBackends is the set of supported display backends.
var ValidBackends = map[string]bool{
	BackendViewer:   true,
	BackendTerminal: true,
	BackendNone:     true,
}

// Discard is a Displayer that does nothing.
type Discard struct{}

// Display does nothing.
func (Discard) Display(context.Context, image.Image) error { return nil }

var _ Displayer = Discard{}
