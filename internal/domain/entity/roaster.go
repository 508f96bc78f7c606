package entity

import (
	"strings"
	"time"

	"brewlog/internal/common/pagination"
)

// Roaster is a coffee roasting company.
type Roaster struct {
	ID        int64
	Name      string
	Country   string
	City      string
	Homepage  string
	Notes     string
	CreatedAt time.Time
}

// Validate normalizes surrounding whitespace and checks the roaster fields.
func (r *Roaster) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Country = strings.TrimSpace(r.Country)
	r.City = strings.TrimSpace(r.City)
	r.Homepage = strings.TrimSpace(r.Homepage)

	if err := ValidateRequired("name", r.Name, MaxNameLength); err != nil {
		return err
	}
	if err := ValidateLength("country", r.Country, MaxNameLength); err != nil {
		return err
	}
	if err := ValidateLength("city", r.City, MaxNameLength); err != nil {
		return err
	}
	if err := ValidateLength("notes", r.Notes, MaxTextLength); err != nil {
		return err
	}
	return ValidateURL("homepage", r.Homepage)
}

// RoasterSortKey is the closed set of columns a roaster list can be ordered by.
type RoasterSortKey int

const (
	RoasterSortName RoasterSortKey = iota
	RoasterSortCountry
	RoasterSortCreatedAt
)

// RoasterSortKeys lists every roaster sort key in column order.
var RoasterSortKeys = []RoasterSortKey{RoasterSortName, RoasterSortCountry, RoasterSortCreatedAt}

func (RoasterSortKey) Default() RoasterSortKey { return RoasterSortName }

func (RoasterSortKey) FromQuery(s string) (RoasterSortKey, bool) {
	switch s {
	case "name":
		return RoasterSortName, true
	case "country":
		return RoasterSortCountry, true
	case "created-at":
		return RoasterSortCreatedAt, true
	}
	return RoasterSortName, false
}

func (k RoasterSortKey) QueryValue() string {
	switch k {
	case RoasterSortCountry:
		return "country"
	case RoasterSortCreatedAt:
		return "created-at"
	default:
		return "name"
	}
}

func (k RoasterSortKey) DefaultDirection() pagination.SortDirection {
	if k == RoasterSortCreatedAt {
		return pagination.SortDesc
	}
	return pagination.SortAsc
}

// Label is the column header shown for the key.
func (k RoasterSortKey) Label() string {
	switch k {
	case RoasterSortCountry:
		return "Country"
	case RoasterSortCreatedAt:
		return "Added"
	default:
		return "Name"
	}
}
