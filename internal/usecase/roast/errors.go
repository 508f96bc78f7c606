// Package roast provides use cases for managing roasts, the coffees a
// roaster offers.
package roast

import (
	"fmt"

	"brewlog/internal/domain/entity"
)

// Sentinel errors for roast use case operations.
var (
	// ErrRoastNotFound indicates that the requested roast does not exist.
	ErrRoastNotFound = fmt.Errorf("roast: %w", entity.ErrNotFound)

	// ErrUnknownRoaster indicates a roast that names a roaster which does not exist.
	ErrUnknownRoaster = &entity.ValidationError{Field: "roaster_id", Message: "roaster_id must name an existing roaster"}
)
