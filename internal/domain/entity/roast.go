package entity

import (
	"strings"
	"time"

	"brewlog/internal/common/pagination"
)

// Roast is one coffee offered by a roaster.
type Roast struct {
	ID           int64
	RoasterID    int64
	Name         string
	Origin       string
	Process      string
	TastingNotes string
	CreatedAt    time.Time
}

// RoastWithRoaster is a roast joined with its roaster's name, as shown in lists.
type RoastWithRoaster struct {
	Roast
	RoasterName string
}

// Validate normalizes surrounding whitespace and checks the roast fields.
func (r *Roast) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Origin = strings.TrimSpace(r.Origin)
	r.Process = strings.TrimSpace(r.Process)

	if r.RoasterID <= 0 {
		return &ValidationError{Field: "roaster_id", Message: "roaster_id is required"}
	}
	if err := ValidateRequired("name", r.Name, MaxNameLength); err != nil {
		return err
	}
	if err := ValidateLength("origin", r.Origin, MaxNameLength); err != nil {
		return err
	}
	if err := ValidateLength("process", r.Process, MaxNameLength); err != nil {
		return err
	}
	return ValidateLength("tasting_notes", r.TastingNotes, MaxTextLength)
}

// RoastSortKey is the closed set of columns a roast list can be ordered by.
type RoastSortKey int

const (
	RoastSortName RoastSortKey = iota
	RoastSortRoaster
	RoastSortCreatedAt
)

// RoastSortKeys lists every roast sort key in column order.
var RoastSortKeys = []RoastSortKey{RoastSortName, RoastSortRoaster, RoastSortCreatedAt}

func (RoastSortKey) Default() RoastSortKey { return RoastSortCreatedAt }

func (RoastSortKey) FromQuery(s string) (RoastSortKey, bool) {
	switch s {
	case "name":
		return RoastSortName, true
	case "roaster":
		return RoastSortRoaster, true
	case "created-at":
		return RoastSortCreatedAt, true
	}
	return RoastSortCreatedAt, false
}

func (k RoastSortKey) QueryValue() string {
	switch k {
	case RoastSortName:
		return "name"
	case RoastSortRoaster:
		return "roaster"
	default:
		return "created-at"
	}
}

func (k RoastSortKey) DefaultDirection() pagination.SortDirection {
	if k == RoastSortCreatedAt {
		return pagination.SortDesc
	}
	return pagination.SortAsc
}

// Label is the column header shown for the key.
func (k RoastSortKey) Label() string {
	switch k {
	case RoastSortName:
		return "Name"
	case RoastSortRoaster:
		return "Roaster"
	default:
		return "Added"
	}
}
