package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateContainerID validates the identifier of a visualization container.
//
// Identifiers follow the HTML id rules the web client relied on:
//   - Not empty
//   - No whitespace or control characters
//   - Maximum length of 128 characters
func ValidateContainerID(id string) error {
	if id == "" {
		return New(ErrCodeMissingTarget, "container id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeMissingTarget, "container id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeMissingTarget, "container id contains invalid character %q", r)
		}
	}

	return nil
}

// ValidateOutputPath validates an artifact output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
