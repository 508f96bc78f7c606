// Package roast provides HTTP handlers for roast endpoints.
package roast

import (
	"time"

	"brewlog/internal/domain/entity"
	"brewlog/internal/web"
)

// DTO represents the JSON structure for roast data transfer.
type DTO struct {
	ID           int64     `json:"id" example:"1"`
	RoasterID    int64     `json:"roaster_id" example:"1"`
	RoasterName  string    `json:"roaster_name,omitempty" example:"Onyx Coffee Lab"`
	Name         string    `json:"name" example:"Geometry"`
	Origin       string    `json:"origin,omitempty" example:"Ethiopia, Colombia"`
	Process      string    `json:"process,omitempty" example:"washed"`
	TastingNotes string    `json:"tasting_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at" example:"2026-03-01T12:00:00Z"`
}

func toDTO(r entity.Roast, roasterName string) DTO {
	return DTO{
		ID:           r.ID,
		RoasterID:    r.RoasterID,
		RoasterName:  roasterName,
		Name:         r.Name,
		Origin:       r.Origin,
		Process:      r.Process,
		TastingNotes: r.TastingNotes,
		CreatedAt:    r.CreatedAt,
	}
}

func listDTO(r entity.RoastWithRoaster) DTO { return toDTO(r.Roast, r.RoasterName) }

func toRow(r entity.RoastWithRoaster) web.RoastRow {
	return web.RoastRow{
		ID:           r.ID,
		RoasterID:    r.RoasterID,
		RoasterName:  r.RoasterName,
		Name:         r.Name,
		Origin:       r.Origin,
		Process:      r.Process,
		TastingNotes: r.TastingNotes,
		Added:        r.CreatedAt.Format(time.DateOnly),
	}
}

// createPayload is the body of POST /roasts, JSON or form encoded.
type createPayload struct {
	RoasterID    int64  `json:"roaster_id" form:"roaster_id" binding:"required,gt=0"`
	Name         string `json:"name" form:"name" binding:"required,max=120"`
	Origin       string `json:"origin" form:"origin" binding:"max=120"`
	Process      string `json:"process" form:"process" binding:"max=120"`
	TastingNotes string `json:"tasting_notes" form:"tasting_notes" binding:"max=2000"`
}
