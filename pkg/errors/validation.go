package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidatePositive checks that a required length is finite and strictly positive.
// The parameter name is reported verbatim so the operator can correct the input.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite length, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %gmm", name, v)
	}
	return nil
}

// ValidateNonNegative checks that an optional length is finite and not negative.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite length, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidDimension, "%s cannot be negative, got %gmm", name, v)
	}
	return nil
}

// ValidateOutputPath validates an output path or basename.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not end in a path separator (a file name is required)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidInput, "output path %q names a directory, not a file", path)
	}

	return nil
}
