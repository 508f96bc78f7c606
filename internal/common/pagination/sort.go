package pagination

import "strings"

// SortDirection is the ordering direction of a list.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Opposite returns the reversed direction.
func (d SortDirection) Opposite() SortDirection {
	if d == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// QueryValue returns the value used for the dir query parameter.
func (d SortDirection) QueryValue() string {
	return string(d)
}

// SQL returns the ORDER BY keyword for the direction.
// Anything other than SortDesc is rendered as ASC.
func (d SortDirection) SQL() string {
	if d == SortDesc {
		return "DESC"
	}
	return "ASC"
}

// ParseSortDirection parses "asc" or "desc" case-insensitively.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return SortAsc, true
	case "desc":
		return SortDesc, true
	default:
		return "", false
	}
}

// SortKey is the capability set every list-able entity provides for its
// closed set of sortable columns.
//
// Default and FromQuery do not depend on the receiver; callers invoke them on
// the zero value of K:
//
//	var zero entity.RoasterSortKey
//	key, ok := zero.FromQuery("country")
//
// FromQuery and QueryValue must be inverse on the variant set, and FromQuery
// must report false for any string outside it.
type SortKey[K any] interface {
	comparable

	// Default returns the key used when the request names none (or an unknown one).
	Default() K

	// FromQuery resolves the token used in the sort query parameter.
	FromQuery(value string) (K, bool)

	// QueryValue returns the token used in the sort query parameter.
	QueryValue() string

	// DefaultDirection is the natural direction for the key: ascending for
	// names, descending for dates.
	DefaultDirection() SortDirection
}

// DefaultSortKey returns K's default key.
func DefaultSortKey[K SortKey[K]]() K {
	var zero K
	return zero.Default()
}

// SortKeyFromQuery resolves a sort token, falling back to the default key
// for empty or unknown values.
func SortKeyFromQuery[K SortKey[K]](value string) K {
	var zero K
	if key, ok := zero.FromQuery(strings.TrimSpace(value)); ok {
		return key
	}
	return zero.Default()
}
