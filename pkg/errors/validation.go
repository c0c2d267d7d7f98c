package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateDataPath validates a data file path given on the command line or in a config file.
//
// Validation rules:
//   - Path cannot be empty or whitespace
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateDataPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "data path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "data path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "data path contains invalid characters")
		}
	}

	return nil
}

// ValidatePositive checks that an integer setting is strictly positive.
func ValidatePositive(name string, v int) error {
	if v <= 0 {
		return New(ErrCodeConfiguration, "%s must be positive, got %d", name, v)
	}
	return nil
}

// ValidateChannel checks that a color constant lies within the 8-bit channel range.
func ValidateChannel(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 255 {
		return New(ErrCodeConfiguration, "%s must be within [0, 255], got %v", name, v)
	}
	return nil
}
