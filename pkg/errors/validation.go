package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateFinite rejects NaN and infinite values.
// The name is used in the error message.
func ValidateFinite(code Code, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(code, "%s must be a finite number, got %v", name, v)
	}
	return nil
}

// ValidateDocumentFilename validates the file name of a chart document.
// Only TOML and JSON documents are accepted.
func ValidateDocumentFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "document filename cannot be empty")
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml", ".json":
		return nil
	default:
		return New(ErrCodeInvalidFormat, "unsupported document type %q (want .toml or .json)", filepath.Ext(filename))
	}
}

// ValidateOutputPath validates a path the CLI is about to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}

// ValidateRedisURL validates a redis connection URL.
// It ensures the URL uses the redis or rediss scheme.
func ValidateRedisURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "redis URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidInput, "redis URL must use redis or rediss scheme")
	}

	return nil
}
