package pipeline

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/datastripes/pkg/errors"
)

// FileConfig mirrors the TOML configuration file:
//
//	[bar]
//	width = 1100
//	height = 200
//	red_max = 255.0
//	blue = 127.0
//	files_num = 2
//
//	[data]
//	summary = "bar_descriptions.txt"
//	reference = "text data/data-test.txt"
//	files = ["text data/data-climate.txt"]
//	strict = false
//
//	[render]
//	interpolator = "nearest"
type FileConfig struct {
	Bar struct {
		Width  int     `toml:"width"`
		Height int     `toml:"height"`
		RedMax float64 `toml:"red_max"`
		Blue   float64 `toml:"blue"`
		// FilesNum is the expected bar count; unset means the file list decides.
		FilesNum int `toml:"files_num"`
	} `toml:"bar"`

	Data struct {
		Summary   string   `toml:"summary"`
		Reference string   `toml:"reference"`
		Files     []string `toml:"files"`
		Strict    bool     `toml:"strict"`
	} `toml:"data"`

	Render struct {
		Interpolator string `toml:"interpolator"`
	} `toml:"render"`

	md toml.MetaData
}

// LoadConfig reads a TOML configuration file. Unknown keys are rejected.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	return ParseConfig(string(data), path)
}

// ParseConfig decodes TOML text. The name is only used in error messages.
func ParseConfig(text, name string) (*FileConfig, error) {
	var fc FileConfig
	md, err := toml.Decode(text, &fc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config %s", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown keys in config %s: %s", name, strings.Join(keys, ", "))
	}
	fc.md = md
	return &fc, nil
}

// DataFiles returns the reference file followed by the listed files.
func (fc *FileConfig) DataFiles() []string {
	var files []string
	if fc.Data.Reference != "" {
		files = append(files, fc.Data.Reference)
	}
	return append(files, fc.Data.Files...)
}

// ApplyTo overlays the keys present in the file onto opts.
// Keys absent from the file leave opts untouched.
func (fc *FileConfig) ApplyTo(opts *Options) {
	if fc.md.IsDefined("bar", "width") {
		opts.Config.TargetWidth = fc.Bar.Width
	}
	if fc.md.IsDefined("bar", "height") {
		opts.Config.BarHeight = fc.Bar.Height
	}
	if fc.md.IsDefined("bar", "red_max") {
		opts.Config.RedMax = fc.Bar.RedMax
	}
	if fc.md.IsDefined("bar", "blue") {
		opts.Config.BlueConst = fc.Bar.Blue
	}
	if fc.md.IsDefined("data", "summary") {
		opts.Summary = fc.Data.Summary
	}
	if files := fc.DataFiles(); len(files) > 0 {
		opts.Files = files
		opts.Config.FilesNum = len(files)
	}
	if fc.md.IsDefined("bar", "files_num") {
		opts.Config.FilesNum = fc.Bar.FilesNum
	}
	if fc.md.IsDefined("data", "strict") {
		opts.Strict = fc.Data.Strict
	}
	if fc.md.IsDefined("render", "interpolator") {
		opts.Interpolator = fc.Render.Interpolator
	}
}
