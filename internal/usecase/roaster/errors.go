// Package roaster provides use cases for managing coffee roasters: listing,
// creating, updating and deleting them, with validation and the rule that a
// roaster with roasts cannot be deleted.
package roaster

import (
	"fmt"

	"brewlog/internal/domain/entity"
)

// Sentinel errors for roaster use case operations.
var (
	// ErrRoasterNotFound indicates that the requested roaster does not exist.
	ErrRoasterNotFound = fmt.Errorf("roaster: %w", entity.ErrNotFound)

	// ErrRoasterInUse indicates that a roaster cannot be deleted because roasts reference it.
	ErrRoasterInUse = fmt.Errorf("%w: roaster still has roasts", entity.ErrConflict)

	// ErrNoChanges indicates an update that names no field.
	ErrNoChanges = &entity.ValidationError{Field: "body", Message: "no changes provided"}
)
