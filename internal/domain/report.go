package domain

import (
	"time"

	"github.com/google/uuid"
)

type ScanSummary struct {
	ID             uuid.UUID `json:"id"`
	QRID           string    `json:"qr_id"`
	LocationName   string    `json:"location_name"`
	ScannedAt      time.Time `json:"scanned_at"`
	IsWithinRadius bool      `json:"is_within_radius"`
	DistanceFromQR float64   `json:"distance_from_qr"`
}

type ScanHistoryRequest struct {
	From             *time.Time `query:"from"`
	To               *time.Time `query:"to"`
	QRID             string     `query:"qr_id"`
	WithinRadiusOnly *bool      `query:"within_radius_only"`
	Limit            int        `query:"limit" validate:"min=1,max=100"`
	Offset           int        `query:"offset" validate:"min=0"`
}

type GuardStatistics struct {
	TodayScans           int64   `json:"today_scans"`
	ThisWeekScans        int64   `json:"this_week_scans"`
	TotalScans           int64   `json:"total_scans"`
	WithinRadiusPercent  float64 `json:"within_radius_percentage"`
	AvailableQRLocations int64   `json:"available_qr_locations"`
}

type GuardDashboard struct {
	Statistics   GuardStatistics `json:"statistics"`
	RecentScans  []ScanSummary   `json:"recent_scans"`
	LastScanTime *time.Time      `json:"last_scan_time,omitempty"`
	GuardInfo    GuardIdentity   `json:"guard_info"`
}

type PatrolSummary struct {
	Date                    string        `json:"date"`
	TotalScans              int           `json:"total_scans"`
	UniqueLocationsScanned  int           `json:"unique_locations_scanned"`
	TotalAvailableLocations int64         `json:"total_available_locations"`
	CoveragePercent         float64       `json:"coverage_percentage"`
	WithinRadiusPercent     float64       `json:"within_radius_percentage"`
	FirstScanTime           *time.Time    `json:"first_scan_time,omitempty"`
	LastScanTime            *time.Time    `json:"last_scan_time,omitempty"`
	Scans                   []ScanSummary `json:"scans"`
}

type AreaReportRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	AreaCity  string    `json:"area_city" validate:"omitempty"`
}

type AreaReportRow struct {
	GuardName      string    `json:"guard_name"`
	GuardEmail     string    `json:"guard_email"`
	AreaCity       string    `json:"area_city"`
	LocationName   string    `json:"location_name"`
	ScannedAt      time.Time `json:"scanned_at"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	Address        string    `json:"address,omitempty"`
	IsWithinRadius bool      `json:"is_within_radius"`
	DistanceFromQR float64   `json:"distance_from_qr"`
}

type AdminDashboard struct {
	TotalUsers       int64 `json:"total_users"`
	ActiveUsers      int64 `json:"active_users"`
	TotalSupervisors int64 `json:"total_supervisors"`
	TotalGuards      int64 `json:"total_guards"`
	TodayScans       int64 `json:"today_scans"`
}
