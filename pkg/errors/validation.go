package errors

import (
	"strings"
	"unicode"
)

// maxPathLength bounds output and config paths accepted from the command line.
const maxPathLength = 4096

// ValidatePath validates a file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "path %q names a directory", path)
	}

	return nil
}

// ValidateProbability checks that p lies in [0, 1].
func ValidateProbability(name string, p float64) error {
	// Written as a negated range check so NaN is rejected too.
	if !(p >= 0 && p <= 1) {
		return New(ErrCodeInvalidConfig, "%s must be within [0, 1], got %v", name, p)
	}
	return nil
}

// ValidateRange checks that the half-open range [lo, hi) is non-empty.
func ValidateRange(name string, lo, hi int) error {
	if lo >= hi {
		return New(ErrCodeInvalidConfig, "%s range [%d, %d) is empty", name, lo, hi)
	}
	return nil
}
