package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/datastripes/pkg/errors"
	"github.com/matzehuels/datastripes/pkg/observability"
	"github.com/matzehuels/datastripes/pkg/raster"
	"github.com/matzehuels/datastripes/pkg/stripes"
)

func writeData(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func fourFiles(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	return []string{
		writeData(t, dir, "ref.txt", "reference\n2\n1.0\n0.0\n"),
		writeData(t, dir, "climate.txt", "climate\n3\n0.0\n0.5\n1.0\n"),
		writeData(t, dir, "illiteracy.txt", "illiteracy\n1\n0.5\n"),
		writeData(t, dir, "mortality.txt", "mortality\n4\n0.1\n0.2\n0.3\n0.4\n"),
	}
}

func TestExecute(t *testing.T) {
	files := fourFiles(t)
	result, err := NewRunner(nil).Execute(context.Background(), Options{
		Config: stripes.DefaultConfig(),
		Files:  files,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	img := result.Image
	if img.Width() != 1100 || img.Height() != 800 {
		t.Fatalf("composite = %dx%d, want 1100x800", img.Width(), img.Height())
	}

	// Reference bar occupies rows [0, 200).
	if got := img.At(0, 0); got != (raster.Color{R: 255, G: 0, B: 127}) {
		t.Errorf("ref left = %+v", got)
	}
	if got := img.At(1099, 199); got != (raster.Color{R: 0, G: 255, B: 127}) {
		t.Errorf("ref right = %+v", got)
	}
	// Single-stripe bar: red 127.5 truncates to 127, green mirrors itself.
	if got := img.At(550, 450); got != (raster.Color{R: 127, G: 127, B: 127}) {
		t.Errorf("illiteracy = %+v", got)
	}

	if len(result.Bars) != 4 {
		t.Fatalf("len(Bars) = %d, want 4", len(result.Bars))
	}
	climate := result.Bars[1]
	if climate.StripeWidth != 366 || climate.DivisibleWidth != 1098 || climate.Dropped(1100) != 2 {
		t.Errorf("climate bar = %+v", climate)
	}
	if result.Bars[0].Description != "reference" {
		t.Errorf("Bars[0].Description = %q", result.Bars[0].Description)
	}
	if result.Stats.Total() < 0 {
		t.Error("Stats.Total() should not be negative")
	}
}

func TestExecuteFailFast(t *testing.T) {
	files := fourFiles(t)
	files[2] = writeData(t, t.TempDir(), "broken.txt", "broken\n2\n0.5\nnope\n")

	_, err := NewRunner(nil).Execute(context.Background(), Options{Files: files})
	if !errors.Is(err, errors.ErrCodeParse) {
		t.Fatalf("Execute() error = %v, want PARSE_ERROR", err)
	}
	file, line, ok := errors.Location(err)
	if !ok || file != files[2] || line != 4 {
		t.Errorf("Location() = (%q, %d, %v), want (%q, 4, true)", file, line, ok, files[2])
	}
}

func TestExecuteZeroCount(t *testing.T) {
	files := fourFiles(t)
	files[3] = writeData(t, t.TempDir(), "zero.txt", "zero\n0\n")

	_, err := NewRunner(nil).Execute(context.Background(), Options{Files: files})
	if !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Fatalf("Execute() error = %v, want CONFIGURATION_ERROR", err)
	}
	if !strings.Contains(err.Error(), "zero.txt") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestExecuteStrict(t *testing.T) {
	files := fourFiles(t)
	files[1] = writeData(t, t.TempDir(), "short.txt", "short\n2\n0.5\n0.5\n0.5\n")

	if _, err := NewRunner(nil).Execute(context.Background(), Options{Files: files}); err != nil {
		t.Fatalf("lenient Execute() error = %v", err)
	}
	_, err := NewRunner(nil).Execute(context.Background(), Options{Files: files, Strict: true})
	if !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("strict Execute() error = %v, want PARSE_ERROR", err)
	}
}

func TestExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil).Execute(ctx, Options{Files: fourFiles(t)})
	if err != context.Canceled {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

func TestExecuteCustomConfig(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeData(t, dir, "a.txt", "a\n2\n1\n0\n"),
		writeData(t, dir, "b.txt", "b\n5\n0\n0\n0\n0\n0\n"),
	}
	cfg := stripes.Config{TargetWidth: 10, BarHeight: 3, FilesNum: 2, RedMax: 200, BlueConst: 0}

	result, err := NewRunner(nil).Execute(context.Background(), Options{Config: cfg, Files: files})
	if err != nil {
		t.Fatal(err)
	}
	if result.Image.Width() != 10 || result.Image.Height() != 6 {
		t.Errorf("composite = %dx%d, want 10x6", result.Image.Width(), result.Image.Height())
	}
	if got := result.Image.At(0, 0); got != (raster.Color{R: 200}) {
		t.Errorf("At(0,0) = %+v, want {R:200}", got)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Files: []string{"a.txt", "b.txt"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Config.TargetWidth != 1100 || opts.Config.FilesNum != 2 {
		t.Errorf("Config = %+v", opts.Config)
	}
	if opts.Interpolator != "nearest" {
		t.Errorf("Interpolator = %q", opts.Interpolator)
	}
	if opts.Logger == nil {
		t.Error("Logger should be defaulted")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call error = %v", err)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"no files", Options{}, errors.ErrCodeInvalidInput},
		{"empty path", Options{Files: []string{""}}, errors.ErrCodeInvalidPath},
		{
			"file count mismatch",
			Options{Config: stripes.DefaultConfig(), Files: []string{"a", "b"}},
			errors.ErrCodeConfiguration,
		},
		{
			"bad interpolator",
			Options{Files: []string{"a"}, Interpolator: "lanczos"},
			errors.ErrCodeInvalidInput,
		},
		{
			"bad width",
			Options{Config: stripes.Config{TargetWidth: -1, BarHeight: 1, FilesNum: 1}, Files: []string{"a"}},
			errors.ErrCodeConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want %s", err, tt.code)
			}
		})
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	parsed, bars, composites int
	failed                   []string
}

func (h *recordingHooks) OnParseComplete(_ context.Context, file string, _ int, _ time.Duration, err error) {
	h.parsed++
	if err != nil {
		h.failed = append(h.failed, file)
	}
}

func (h *recordingHooks) OnBarComplete(context.Context, string, int, time.Duration, error) {
	h.bars++
}

func (h *recordingHooks) OnCompositeComplete(context.Context, int, time.Duration, error) {
	h.composites++
}

func TestExecuteHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	files := fourFiles(t)
	if _, err := NewRunner(nil).Execute(context.Background(), Options{Files: files}); err != nil {
		t.Fatal(err)
	}
	if hooks.parsed != 4 || hooks.bars != 4 || hooks.composites != 1 {
		t.Errorf("hooks = %+v", hooks)
	}

	files[1] = writeData(t, t.TempDir(), "broken.txt", "broken\n")
	*hooks = recordingHooks{}
	if _, err := NewRunner(nil).Execute(context.Background(), Options{Files: files}); err == nil {
		t.Fatal("expected error")
	}
	if hooks.parsed != 2 || hooks.bars != 0 || len(hooks.failed) != 1 || hooks.failed[0] != files[1] {
		t.Errorf("hooks after failure = %+v", hooks)
	}
}
