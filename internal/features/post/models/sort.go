package models

import (
	"fmt"
	"strings"

	apperrors "catsgram-backend/internal/common/errors"
	"catsgram-backend/internal/common/validation"
)

// SortOrder orders posts by publication date.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortOrder accepts asc/ascending and desc/descending in any case.
func ParseSortOrder(raw string) (SortOrder, bool) {
	switch strings.ToLower(raw) {
	case "asc", "ascending":
		return Ascending, true
	case "desc", "descending":
		return Descending, true
	default:
		return "", false
	}
}

// ListQuery selects a page of posts: sort first, then skip From, then take at most Size.
type ListQuery struct {
	Sort SortOrder
	From int
	Size int
}

// NewListQuery validates raw listing parameters in the order sort, size, from.
func NewListQuery(sort string, from, size int) (ListQuery, error) {
	order, ok := ParseSortOrder(sort)
	if !ok {
		return ListQuery{}, apperrors.NewParameterNotValid("sort",
			fmt.Sprintf("received: %s, expected: asc or desc", sort))
	}
	if err := validation.ValidateSize(size); err != nil {
		return ListQuery{}, err
	}
	if err := validation.ValidateFrom(from); err != nil {
		return ListQuery{}, err
	}
	return ListQuery{Sort: order, From: from, Size: size}, nil
}

// DefaultListQuery is what GET /posts uses without parameters.
func DefaultListQuery() ListQuery {
	return ListQuery{Sort: Descending, From: validation.DefaultFrom, Size: validation.DefaultSize}
}
