package validation

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "catsgram-backend/internal/common/errors"
)

// Listing defaults
const (
	DefaultSort = "desc"
	DefaultFrom = 0
	DefaultSize = 10
)

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsBlankPtr treats an absent value as blank.
func IsBlankPtr(s *string) bool {
	return s == nil || IsBlank(*s)
}

// ParseIntParam parses an optional integer query parameter.
func ParseIntParam(name, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperrors.NewParameterNotValid(name, fmt.Sprintf("received: %s, expected an integer", raw))
	}
	return v, nil
}

// ParseID parses a path identifier.
func ParseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewParameterNotValid(name, fmt.Sprintf("received: %s, expected an integer", raw))
	}
	return id, nil
}

// ValidateSize requires a positive page size.
func ValidateSize(size int) error {
	if size <= 0 {
		return apperrors.NewParameterNotValid("size", fmt.Sprintf("received: %d, size must be greater than zero", size))
	}
	return nil
}

// ValidateFrom requires a non-negative offset.
func ValidateFrom(from int) error {
	if from < 0 {
		return apperrors.NewParameterNotValid("from", fmt.Sprintf("received: %d, from must not be negative", from))
	}
	return nil
}
