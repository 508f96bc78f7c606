package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxPageSize is the largest limited page size a ListRequest accepts.
	MaxPageSize uint32 = 50

	// DefaultPageSize is used when the request does not name a page size
	// or names one that cannot be parsed.
	DefaultPageSize uint32 = 10

	// allQueryValue is the query token for the unbounded page size.
	allQueryValue = "all"
)

// PageSize is either a positive item count or "all".
// The zero value is "all".
//
// PageSize does not clamp: Limited(500) holds 500 until it passes through
// NewListRequest.
type PageSize struct {
	n uint32
}

// Limited returns a bounded page size. Limited(0) is the same value as AllItems().
func Limited(n uint32) PageSize {
	return PageSize{n: n}
}

// AllItems returns the unbounded page size.
func AllItems() PageSize {
	return PageSize{}
}

// IsAll reports whether the page size is unbounded.
func (p PageSize) IsAll() bool {
	return p.n == 0
}

// Limit returns the bounded count. ok is false for AllItems.
func (p PageSize) Limit() (n uint32, ok bool) {
	return p.n, p.n != 0
}

// QueryValue returns the page_size query token: "all" or the decimal count.
func (p PageSize) QueryValue() string {
	if p.IsAll() {
		return allQueryValue
	}
	return strconv.FormatUint(uint64(p.n), 10)
}

// String implements fmt.Stringer.
func (p PageSize) String() string {
	return p.QueryValue()
}

// clamp bounds a limited size to [1, MaxPageSize]; All passes through.
func (p PageSize) clamp() PageSize {
	if p.n > MaxPageSize {
		return PageSize{n: MaxPageSize}
	}
	return p
}

// PageSizeFromText parses the textual page_size representation posted by
// the UI's <select>: "all" (any case) is unbounded, a number is a limited
// size, anything else is the default size.
//
// "0" yields the default size, not AllItems; only the numeric path
// (Limited) maps zero to "all".
func PageSizeFromText(s string) PageSize {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, allQueryValue) {
		return AllItems()
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return Limited(DefaultPageSize)
	}
	return Limited(uint32(n))
}

// PageSizeParam is the inbound page_size value. Typed API clients send a
// JSON number, the UI sends text; both are accepted.
type PageSizeParam struct {
	number *uint32
	text   string
}

// PageSizeNumber builds a numeric parameter.
func PageSizeNumber(n uint32) PageSizeParam {
	return PageSizeParam{number: &n}
}

// PageSizeText builds a textual parameter.
func PageSizeText(s string) PageSizeParam {
	return PageSizeParam{text: s}
}

// Resolve converts the parameter into a PageSize.
func (p PageSizeParam) Resolve() PageSize {
	if p.number != nil {
		return Limited(*p.number)
	}
	return PageSizeFromText(p.text)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PageSizeParam) UnmarshalText(b []byte) error {
	*p = PageSizeText(string(b))
	return nil
}

// UnmarshalJSON accepts a JSON number or a JSON string.
func (p *PageSizeParam) UnmarshalJSON(b []byte) error {
	var n uint32
	if err := json.Unmarshal(b, &n); err == nil {
		*p = PageSizeNumber(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("page_size must be a number or a string")
	}
	*p = PageSizeText(s)
	return nil
}
