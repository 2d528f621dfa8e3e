package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"qrpatrol/internal/domain"
	"qrpatrol/pkg/e"
	"qrpatrol/pkg/validator"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultQRSize  = 10
	qrPixelsPerBox = 25
)

type qrCodeService struct {
	logger    *slog.Logger
	locations LocationDirectory
}

func NewQRCodeService(logger *slog.Logger, locations LocationDirectory) QRCodeService {
	return &qrCodeService{logger: logger, locations: locations}
}

// Generate renders the QR code for one of the supervisor's active
// checkpoints. The encoded payload is the bare qr_id; the scanning app builds
// its own URL around it.
func (s *qrCodeService) Generate(ctx context.Context, supervisorID uuid.UUID, req domain.GenerateQRRequest) (*domain.GeneratedQR, error) {
	const op = "service.QRCode.Generate"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}
	if req.Size == 0 {
		req.Size = defaultQRSize
	}

	loc, err := s.locations.ResolveActive(ctx, req.QRID, supervisorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	rendered, err := s.render(loc, req.Size)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return rendered, nil
}

// BulkGenerate renders every active checkpoint of the supervisor in one call,
// the shape the print-sheet page consumes. A single broken checkpoint fails
// the whole batch rather than silently shipping an incomplete sheet.
func (s *qrCodeService) BulkGenerate(ctx context.Context, supervisorID uuid.UUID, area string, size int) (*domain.BulkGeneratedQR, error) {
	const op = "service.QRCode.BulkGenerate"

	if size == 0 {
		size = defaultQRSize
	}
	if size < 5 || size > 50 {
		return nil, fmt.Errorf("%s: size out of range: %w", op, e.ErrInvalidInput)
	}

	locations, err := s.locations.ListActive(ctx, supervisorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	codes := make([]domain.GeneratedQR, 0, len(locations))
	for i := range locations {
		rendered, err := s.render(&locations[i], size)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		codes = append(codes, *rendered)
	}

	return &domain.BulkGeneratedQR{
		SupervisorArea: area,
		TotalQRCodes:   len(codes),
		QRCodes:        codes,
		GeneratedAt:    time.Now().UTC(),
		Size:           size,
	}, nil
}

func (s *qrCodeService) render(loc *domain.QRLocation, size int) (*domain.GeneratedQR, error) {
	png, err := qrcode.Encode(loc.QRID, qrcode.Medium, size*qrPixelsPerBox)
	if err != nil {
		return nil, fmt.Errorf("encode qr %s: %w", loc.QRID, err)
	}

	return &domain.GeneratedQR{
		QRID:         loc.QRID,
		LocationName: loc.LocationName,
		QRCodeImage:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		Size:         size,
		Lat:          loc.Lat,
		Lng:          loc.Lng,
		Address:      loc.Address,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}
