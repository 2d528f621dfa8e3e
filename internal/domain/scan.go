package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanEvent is the immutable record of one scan attempt. Distance and
// IsWithinRadius are derived once at write time and never recomputed.
type ScanEvent struct {
	ID             uuid.UUID         `json:"id"`
	GuardID        uuid.UUID         `json:"guard_id"`
	SupervisorID   uuid.UUID         `json:"supervisor_id"`
	QRLocationID   uuid.UUID         `json:"qr_location_id"`
	QRID           string            `json:"qr_id"`
	LocationName   string            `json:"location_name"`
	Lat            float64           `json:"lat"`
	Lng            float64           `json:"lng"`
	Address        string            `json:"address,omitempty"`
	AreaCity       string            `json:"area_city"`
	AreaState      string            `json:"area_state,omitempty"`
	AreaCountry    string            `json:"area_country,omitempty"`
	IsWithinRadius bool              `json:"is_within_radius"`
	DistanceFromQR float64           `json:"distance_from_qr"` // meters, 2 dp
	ScannedAt      time.Time         `json:"scanned_at"`
	Notes          string            `json:"notes,omitempty"`
	DeviceInfo     map[string]string `json:"device_info,omitempty"`
}

type ScanRequest struct {
	QRID       string            `json:"qr_id" validate:"required,qrid"`
	Lat        float64           `json:"latitude" validate:"lat"`
	Lng        float64           `json:"longitude" validate:"lng"`
	Notes      string            `json:"notes" validate:"omitempty"`
	DeviceInfo map[string]string `json:"device_info" validate:"omitempty"`
}

// PublicScanRequest is the unauthenticated guard-app variant: the guard is
// identified by email instead of a session.
type PublicScanRequest struct {
	GuardEmail string            `json:"guard_email" validate:"required,email"`
	QRID       string            `json:"qr_id" validate:"required,qrid"`
	Lat        float64           `json:"latitude" validate:"lat"`
	Lng        float64           `json:"longitude" validate:"lng"`
	Notes      string            `json:"notes" validate:"omitempty"`
	DeviceInfo map[string]string `json:"device_info" validate:"omitempty"`
}

// ScanVerdict is the outcome of validate-and-record. A scan outside the
// radius is still Success=true with a recorded event; only malformed input
// or an unresolved QR code rejects the call.
type ScanVerdict struct {
	ScanEventID    uuid.UUID `json:"scan_event_id"`
	Success        bool      `json:"success"`
	QRID           string    `json:"qr_id"`
	LocationName   string    `json:"location_name"`
	IsWithinRadius bool      `json:"is_within_radius"`
	DistanceFromQR float64   `json:"distance_from_qr"`
	RadiusLimit    float64   `json:"radius_limit"`
	Address        string    `json:"address,omitempty"`
	Message        string    `json:"message"`
	ScannedAt      time.Time `json:"scanned_at"`
	GuardName      string    `json:"guard_name,omitempty"`
	AreaCity       string    `json:"area_city,omitempty"`
}
