package pagination_test

import "brewlog/internal/common/pagination"

// testKey is a minimal closed sort key set used across the package tests.
type testKey int

const (
	keyName testKey = iota
	keyOrigin
	keyCreatedAt
)

func (testKey) Default() testKey { return keyName }

func (testKey) FromQuery(s string) (testKey, bool) {
	switch s {
	case "name":
		return keyName, true
	case "origin":
		return keyOrigin, true
	case "created-at":
		return keyCreatedAt, true
	default:
		return 0, false
	}
}

func (k testKey) QueryValue() string {
	switch k {
	case keyOrigin:
		return "origin"
	case keyCreatedAt:
		return "created-at"
	default:
		return "name"
	}
}

func (k testKey) DefaultDirection() pagination.SortDirection {
	if k == keyCreatedAt {
		return pagination.SortDesc
	}
	return pagination.SortAsc
}

var allTestKeys = []testKey{keyName, keyOrigin, keyCreatedAt}

func req(page uint32, size pagination.PageSize, key testKey, dir pagination.SortDirection) pagination.ListRequest[testKey] {
	return pagination.NewListRequest(page, size, key, dir)
}
