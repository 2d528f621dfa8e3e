package domain

import (
	"time"

	"github.com/google/uuid"
)

// QRLocation is a patrol checkpoint. Its registered coordinates are immutable
// once scanned against; decommissioning only flips IsActive.
type QRLocation struct {
	ID           uuid.UUID `json:"id"`
	QRID         string    `json:"qr_id"`
	SupervisorID uuid.UUID `json:"supervisor_id"`
	LocationName string    `json:"location_name"`
	Lat          float64   `json:"lat" validate:"lat"`
	Lng          float64   `json:"lng" validate:"lng"`
	Address      string    `json:"address,omitempty"`
	AreaCity     string    `json:"area_city"`
	AreaState    string    `json:"area_state,omitempty"`
	AreaCountry  string    `json:"area_country,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CachedLocation is the slim shape kept in the per-supervisor redis cache and
// returned by the guard-facing location listing.
type CachedLocation struct {
	QRID         string  `json:"qr_id"`
	LocationName string  `json:"location_name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Address      string  `json:"address,omitempty"`
	AreaCity     string  `json:"area_city"`
}

type CreateLocationRequest struct {
	QRID         string  `json:"qr_id" validate:"required,qrid"`
	LocationName string  `json:"location_name" validate:"required"`
	Lat          float64 `json:"lat" validate:"lat"`
	Lng          float64 `json:"lng" validate:"lng"`
	Address      string  `json:"address" validate:"omitempty"`
	AreaCity     string  `json:"area_city" validate:"required"`
	AreaState    string  `json:"area_state" validate:"omitempty"`
	AreaCountry  string  `json:"area_country" validate:"omitempty"`
}

type ListLocationsRequest struct {
	ActiveOnly bool `query:"active_only"`
	Limit      int  `query:"limit" validate:"min=1,max=100"`
	Offset     int  `query:"offset" validate:"min=0"`
}

type ListLocationsResponse struct {
	Locations []QRLocation `json:"locations"`
	Total     int64        `json:"total"`
}
