package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ListQuery is the inbound query-string shape of every list endpoint.
// Nil fields were not sent.
type ListQuery struct {
	Page     *uint32        `json:"page,omitempty"`
	PageSize *PageSizeParam `json:"page_size,omitempty"`
	Sort     *string        `json:"sort,omitempty"`
	Dir      *string        `json:"dir,omitempty"`
	Q        *string        `json:"q,omitempty"`
}

// ParseListQuery reads the list parameters from a query string.
//
// Only a malformed page number is an error; unknown sort, direction or
// page_size values are resolved to defaults by IntoRequestAndSearch.
func ParseListQuery(values url.Values) (ListQuery, error) {
	var q ListQuery

	if pageStr := strings.TrimSpace(values.Get(ParamPage)); pageStr != "" {
		page, err := strconv.ParseUint(pageStr, 10, 32)
		if err != nil {
			return ListQuery{}, fmt.Errorf("invalid query parameter: page must be a non-negative integer")
		}
		p := uint32(page)
		q.Page = &p
	}

	if values.Has(ParamPageSize) {
		ps := PageSizeText(values.Get(ParamPageSize))
		q.PageSize = &ps
	}
	if values.Has(ParamSort) {
		s := values.Get(ParamSort)
		q.Sort = &s
	}
	if values.Has(ParamDir) {
		d := values.Get(ParamDir)
		q.Dir = &d
	}
	if values.Has(ParamSearch) {
		s := values.Get(ParamSearch)
		q.Q = &s
	}
	return q, nil
}

// SearchTerm returns the trimmed search term, "" when absent or blank.
func (q ListQuery) SearchTerm() string {
	if q.Q == nil {
		return ""
	}
	return strings.TrimSpace(*q.Q)
}

// IntoRequestAndSearch resolves q into a normalized request for K and the
// search term ("" meaning no search).
//
//   - page defaults to 1
//   - page_size defaults to DefaultPageSize
//   - an unknown or missing sort resolves to K's default key
//   - an unknown or missing dir resolves to the key's natural direction
func IntoRequestAndSearch[K SortKey[K]](q ListQuery) (ListRequest[K], string) {
	page := uint32(1)
	if q.Page != nil {
		page = *q.Page
	}

	size := Limited(DefaultPageSize)
	if q.PageSize != nil {
		size = q.PageSize.Resolve()
	}

	key := DefaultSortKey[K]()
	if q.Sort != nil {
		key = SortKeyFromQuery[K](*q.Sort)
	}

	dir := key.DefaultDirection()
	if q.Dir != nil {
		if d, ok := ParseSortDirection(*q.Dir); ok {
			dir = d
		}
	}

	return NewListRequest(page, size, key, dir), q.SearchTerm()
}
