package domain

import "time"

type GenerateQRRequest struct {
	QRID string `json:"qr_id" validate:"required,qrid"`
	Size int    `json:"size" validate:"omitempty,min=5,max=50"`
}

// GeneratedQR carries a rendered QR code as a base64 PNG data URI, ready to
// drop into an <img> tag or print sheet.
type GeneratedQR struct {
	QRID         string    `json:"qr_id"`
	LocationName string    `json:"location_name"`
	QRCodeImage  string    `json:"qr_code_image"`
	Size         int       `json:"size"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Address      string    `json:"address,omitempty"`
	GeneratedAt  time.Time `json:"generated_at"`
}

type BulkGeneratedQR struct {
	SupervisorArea string        `json:"supervisor_area"`
	TotalQRCodes   int           `json:"total_qr_codes"`
	QRCodes        []GeneratedQR `json:"qr_codes"`
	GeneratedAt    time.Time     `json:"generated_at"`
	Size           int           `json:"size"`
}

type QRValidation struct {
	Valid        bool   `json:"valid"`
	QRID         string `json:"qr_id"`
	LocationName string `json:"location_name,omitempty"`
	AreaCity     string `json:"area_city,omitempty"`
	Message      string `json:"message"`
}
