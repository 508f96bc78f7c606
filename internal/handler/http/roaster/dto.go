// Package roaster provides HTTP handlers for roaster endpoints: the paginated
// list, detail pages, create, update, delete and AI-assisted form filling.
package roaster

import (
	"time"

	"brewlog/internal/domain/entity"
	"brewlog/internal/web"
)

// DTO represents the JSON structure for roaster data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Onyx Coffee Lab"`
	Country   string    `json:"country" example:"US"`
	City      string    `json:"city" example:"Rogers"`
	Homepage  string    `json:"homepage,omitempty" example:"https://onyxcoffeelab.com"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" example:"2026-03-01T12:00:00Z"`
}

func toDTO(r entity.Roaster) DTO {
	return DTO{
		ID:        r.ID,
		Name:      r.Name,
		Country:   r.Country,
		City:      r.City,
		Homepage:  r.Homepage,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
}

func toRow(r entity.Roaster) web.RoasterRow {
	return web.RoasterRow{
		ID:       r.ID,
		Name:     r.Name,
		Country:  r.Country,
		City:     r.City,
		Homepage: r.Homepage,
		Notes:    r.Notes,
		Added:    r.CreatedAt.Format(time.DateOnly),
	}
}

// createPayload is the body of POST /roasters, JSON or form encoded.
type createPayload struct {
	Name     string `json:"name" form:"name" binding:"required,max=120"`
	Country  string `json:"country" form:"country" binding:"max=120"`
	City     string `json:"city" form:"city" binding:"max=120"`
	Homepage string `json:"homepage" form:"homepage"`
	Notes    string `json:"notes" form:"notes" binding:"max=2000"`
}

// updatePayload is the body of PUT /roasters/{id}. Absent fields are left
// unchanged.
type updatePayload struct {
	Name     *string `json:"name" form:"name" binding:"omitempty,max=120"`
	Country  *string `json:"country" form:"country" binding:"omitempty,max=120"`
	City     *string `json:"city" form:"city" binding:"omitempty,max=120"`
	Homepage *string `json:"homepage" form:"homepage"`
	Notes    *string `json:"notes" form:"notes" binding:"omitempty,max=2000"`
}

type extractPayload struct {
	Text string `json:"text" form:"text"`
}
