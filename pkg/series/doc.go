// Package series parses datastripes data files into ordered fraction sequences.
//
// # File Format
//
// A data file is line oriented:
//
//	line 1:   free-text description of what the data represents
//	line 2:   declared value count N
//	line 3..: one fraction per line in [0.0, 1.0], oldest first
//
// The declared count is trusted by downstream stages: it decides how many
// stripes a bar has. [Parse] does not compare it against the number of
// value lines; call [Series.Validate] with strict=true to reject files
// where the two disagree.
//
// # Usage
//
//	s, err := series.ParseFile("text data/data-climate.txt")
//	if err != nil {
//	    return err // PARSE_ERROR naming file:line
//	}
//	fmt.Println(s.Declared, len(s.Values))
package series
