package series

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/matzehuels/datastripes/pkg/errors"
)

const (
	descriptionLine = 1
	countLine       = 2
)

// Series is one parsed data file.
type Series struct {
	Name        string    // source name used in diagnostics (usually the path)
	Description string    // first line of the file
	Declared    int       // count from the second line
	Values      []float64 // fractions in file order
}

// Stats summarizes the values of a series.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
}

// ParseFile opens path and parses it with [Parse].
func ParseFile(path string) (*Series, error) {
	if err := errors.ValidateDataPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads a data file from r. The name is only used in error messages.
//
// Trailing blank lines are ignored; a blank line followed by more values
// is a parse error.
func Parse(r io.Reader, name string) (*Series, error) {
	s := &Series{Name: name}

	sc := bufio.NewScanner(r)
	lineNo := 0
	blankAt := 0 // first blank value line not yet followed by a value

	for sc.Scan() {
		lineNo++
		text := strings.TrimRightFunc(sc.Text(), isSpace)

		switch lineNo {
		case descriptionLine:
			s.Description = text
			continue
		case countLine:
			n, err := parseCount(text)
			if err != nil {
				return nil, errors.Parse(name, lineNo, "invalid count %q: %v", text, err)
			}
			s.Declared = n
			continue
		}

		if text == "" {
			if blankAt == 0 {
				blankAt = lineNo
			}
			continue
		}
		if blankAt != 0 {
			return nil, errors.Parse(name, blankAt, "empty value line")
		}

		v, err := parseReal(text)
		if err != nil {
			return nil, errors.Parse(name, lineNo, "invalid value %q", text)
		}
		s.Values = append(s.Values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read %s", name)
	}

	switch {
	case lineNo < descriptionLine:
		return nil, errors.Parse(name, 0, "missing description header")
	case lineNo < countLine:
		return nil, errors.Parse(name, 0, "missing count line")
	}
	return s, nil
}

// parseCount reads the declared count. The count is written by the data
// tooling as a real number, so "12" and "12.0" are both accepted and the
// fractional part is truncated.
func parseCount(text string) (int, error) {
	f, err := parseReal(text)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, strconv.ErrRange
	}
	return int(f), nil
}

// parseReal parses a decimal real number. Go's hexadecimal float syntax
// ("0x1p-1") is not part of the data format and is rejected.
func parseReal(text string) (float64, error) {
	text = strings.TrimSpace(text)
	digits := strings.TrimLeft(text, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(text, 64)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\v' || r == '\f'
}

// Validate checks the declared count against the parsed values.
// Without strict, mismatches are tolerated and Validate returns nil.
func (s *Series) Validate(strict bool) error {
	if !strict || s.Declared == len(s.Values) {
		return nil
	}
	return errors.Parse(s.Name, countLine, "declared %d values, found %d", s.Declared, len(s.Values))
}

// Stats returns min, max and mean of the values. An empty series yields zero Stats.
func (s *Series) Stats() Stats {
	if len(s.Values) == 0 {
		return Stats{}
	}
	return Stats{
		Min:  floats.Min(s.Values),
		Max:  floats.Max(s.Values),
		Mean: stat.Mean(s.Values, nil),
	}
}
