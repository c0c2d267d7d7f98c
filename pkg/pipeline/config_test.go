package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/datastripes/pkg/errors"
	"github.com/matzehuels/datastripes/pkg/stripes"
)

const sampleConfig = `
[bar]
width = 600
blue = 0.0

[data]
summary = "about.txt"
reference = "ref.txt"
files = ["one.txt", "two.txt"]
strict = true

[render]
interpolator = "bilinear"
`

func TestParseConfigApply(t *testing.T) {
	fc, err := ParseConfig(sampleConfig, "sample.toml")
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	opts := Options{Config: stripes.DefaultConfig()}
	fc.ApplyTo(&opts)

	if opts.Config.TargetWidth != 600 {
		t.Errorf("TargetWidth = %d, want 600", opts.Config.TargetWidth)
	}
	if opts.Config.BarHeight != 200 {
		t.Errorf("BarHeight = %d, want default 200", opts.Config.BarHeight)
	}
	if opts.Config.BlueConst != 0 {
		t.Errorf("BlueConst = %v, want explicit 0", opts.Config.BlueConst)
	}
	if opts.Config.RedMax != 255 {
		t.Errorf("RedMax = %v, want default 255", opts.Config.RedMax)
	}
	want := []string{"ref.txt", "one.txt", "two.txt"}
	if len(opts.Files) != len(want) {
		t.Fatalf("Files = %v, want %v", opts.Files, want)
	}
	for i := range want {
		if opts.Files[i] != want[i] {
			t.Errorf("Files[%d] = %q, want %q", i, opts.Files[i], want[i])
		}
	}
	if opts.Config.FilesNum != 3 {
		t.Errorf("FilesNum = %d, want 3", opts.Config.FilesNum)
	}
	if !opts.Strict || opts.Summary != "about.txt" || opts.Interpolator != "bilinear" {
		t.Errorf("opts = %+v", opts)
	}
}

func TestParseConfigEmptyKeepsOptions(t *testing.T) {
	fc, err := ParseConfig("", "empty.toml")
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Config: stripes.DefaultConfig(), Files: []string{"x"}, Interpolator: "catmullrom"}
	fc.ApplyTo(&opts)
	if opts.Config != stripes.DefaultConfig() || len(opts.Files) != 1 || opts.Interpolator != "catmullrom" {
		t.Errorf("empty config changed options: %+v", opts)
	}
}

func TestParseConfigFilesNum(t *testing.T) {
	tests := []struct {
		name     string
		filesNum string
		want     int
		wantErr  bool
	}{
		{"unset follows file list", "", 3, false},
		{"matching count", "files_num = 3\n", 3, false},
		{"mismatched count", "files_num = 2\n", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "[bar]\n" + tt.filesNum + "[data]\nreference = \"ref.txt\"\nfiles = [\"a.txt\", \"b.txt\"]\n"
			fc, err := ParseConfig(text, "count.toml")
			if err != nil {
				t.Fatalf("ParseConfig() error = %v", err)
			}
			opts := Options{Config: stripes.DefaultConfig()}
			fc.ApplyTo(&opts)
			if opts.Config.FilesNum != tt.want {
				t.Errorf("FilesNum = %d, want %d", opts.Config.FilesNum, tt.want)
			}

			err = opts.ValidateAndSetDefaults()
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeConfiguration) {
					t.Errorf("ValidateAndSetDefaults() error = %v, want CONFIGURATION_ERROR", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateAndSetDefaults() error = %v", err)
			}
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unknown key", "[bar]\nwidht = 3\n"},
		{"unknown table", "[colors]\nred = 1\n"},
		{"bad type", "[bar]\nwidth = \"wide\"\n"},
		{"syntax", "[bar\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.text, "bad.toml")
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ParseConfig() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datastripes.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if fc.Bar.Width != 600 {
		t.Errorf("Bar.Width = %d", fc.Bar.Width)
	}

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadConfig(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
