package display

import (
	"context"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/matzehuels/datastripes/pkg/errors"
)

// Viewer opens images in the platform's default image viewer.
type Viewer struct {
	// Dir holds the temporary PNG files. Empty means os.TempDir().
	Dir string

	// Command overrides the opener; the image path is appended as the last argument.
	Command []string

	Logger *log.Logger

	lastPath string
}

// Display writes img as PNG and launches the viewer without waiting for it to exit.
// The viewer outlives ctx; the CLI exits right after launching it.
func (v *Viewer) Display(_ context.Context, img image.Image) error {
	dir := v.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "datastripes-"+uuid.NewString()+".png")
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write preview %s", path)
	}
	v.lastPath = path

	name, args := v.opener(path)
	if _, err := exec.LookPath(name); err != nil {
		return errors.Wrap(errors.ErrCodeUnsupported, err, "no image viewer found (%s); image written to %s", name, path)
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "start %s", name)
	}
	if v.Logger != nil {
		v.Logger.Debug("launched viewer", "command", name, "path", path, "pid", cmd.Process.Pid)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// LastPath returns the file written by the most recent Display call.
func (v *Viewer) LastPath() string { return v.lastPath }

func (v *Viewer) opener(path string) (string, []string) {
	if len(v.Command) > 0 {
		args := append(append([]string{}, v.Command[1:]...), path)
		return v.Command[0], args
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

var _ Displayer = (*Viewer)(nil)
