package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"qrpatrol/internal/config"
	"qrpatrol/internal/domain"
	"qrpatrol/pkg/e"
	"qrpatrol/pkg/geo"
	"qrpatrol/pkg/validator"

	"github.com/google/uuid"
)

const (
	msgScanOK      = "QR code scanned successfully"
	msgScanWarning = "Warning: You are %.1fm away from the QR location"
)

type scanService struct {
	logger    *slog.Logger
	locations LocationDirectory
	events    EventStore
	directory Directory
	geocoder  Geocoder
	mirror    MirrorQueue

	radiusMeters   float64
	mirrorDisabled bool
}

func NewScanService(
	logger *slog.Logger,
	locations LocationDirectory,
	events EventStore,
	directory Directory,
	geocoder Geocoder,
	mirror MirrorQueue,
	geofence config.GeofenceConfig,
	sheets config.SheetsConfig,
) ScanService {
	return &scanService{
		logger:         logger,
		locations:      locations,
		events:         events,
		directory:      directory,
		geocoder:       geocoder,
		mirror:         mirror,
		radiusMeters:   geofence.RadiusMeters,
		mirrorDisabled: sheets.Disabled,
	}
}

// Scan is the core validate-and-record flow. Order matters: the checkpoint is
// resolved and the distance computed before anything is written, the event is
// persisted before the verdict is built, and the spreadsheet mirror is queued
// only after the event exists.
func (s *scanService) Scan(ctx context.Context, actor domain.GuardIdentity, req domain.ScanRequest) (domain.ScanVerdict, error) {
	const op = "service.Scan"

	if err := validator.ValidateStruct(req); err != nil {
		return domain.ScanVerdict{}, fmt.Errorf("%s: %v: %w", op, err, classifyValidation(err))
	}

	loc, err := s.locations.ResolveActive(ctx, req.QRID, actor.SupervisorID)
	if err != nil {
		return domain.ScanVerdict{}, e.Wrap(op, err)
	}

	// Full-precision distance drives the radius decision; the stored value
	// is rounded to centimeters afterwards.
	distance := geo.DistanceMeters(req.Lat, req.Lng, loc.Lat, loc.Lng)
	within := distance <= s.radiusMeters

	address := s.resolveAddress(ctx, req.Lat, req.Lng)

	event := &domain.ScanEvent{
		ID:             uuid.New(),
		GuardID:        actor.GuardID,
		SupervisorID:   actor.SupervisorID,
		QRLocationID:   loc.ID,
		QRID:           loc.QRID,
		LocationName:   loc.LocationName,
		Lat:            req.Lat,
		Lng:            req.Lng,
		Address:        address,
		AreaCity:       loc.AreaCity,
		AreaState:      loc.AreaState,
		AreaCountry:    loc.AreaCountry,
		IsWithinRadius: within,
		DistanceFromQR: geo.RoundMeters(distance),
		ScannedAt:      time.Now().UTC(),
		Notes:          req.Notes,
		DeviceInfo:     req.DeviceInfo,
	}

	if err := s.events.Insert(ctx, event); err != nil {
		s.logger.Error("scan event insert failed",
			slog.String("op", op),
			slog.String("qr_id", req.QRID),
			slog.Any("error", err))
		return domain.ScanVerdict{}, fmt.Errorf("%s: %w", op, e.ErrStorageUnavailable)
	}

	s.enqueueMirror(ctx, actor, event)

	message := msgScanOK
	if !within {
		message = fmt.Sprintf(msgScanWarning, distance)
	}

	return domain.ScanVerdict{
		ScanEventID:    event.ID,
		Success:        true,
		QRID:           event.QRID,
		LocationName:   event.LocationName,
		IsWithinRadius: within,
		DistanceFromQR: event.DistanceFromQR,
		RadiusLimit:    s.radiusMeters,
		Address:        address,
		Message:        message,
		ScannedAt:      event.ScannedAt,
		GuardName:      actor.Name,
		AreaCity:       event.AreaCity,
	}, nil
}

// PublicScan resolves the guard by email, then runs the same core flow.
func (s *scanService) PublicScan(ctx context.Context, req domain.PublicScanRequest) (domain.ScanVerdict, error) {
	const op = "service.PublicScan"

	if err := validator.ValidateStruct(req); err != nil {
		return domain.ScanVerdict{}, fmt.Errorf("%s: %v: %w", op, err, classifyValidation(err))
	}

	actor, err := s.directory.GuardIdentityByEmail(ctx, req.GuardEmail)
	if err != nil {
		return domain.ScanVerdict{}, e.Wrap(op, err)
	}

	return s.Scan(ctx, *actor, domain.ScanRequest{
		QRID:       req.QRID,
		Lat:        req.Lat,
		Lng:        req.Lng,
		Notes:      req.Notes,
		DeviceInfo: req.DeviceInfo,
	})
}

// classifyValidation maps a struct-validation failure onto the coordinate
// sentinel only when a lat/lng field actually failed; everything else (blank
// qr_id, malformed email) is plain invalid input.
func classifyValidation(err error) error {
	if validator.CoordinateFailure(err) {
		return e.ErrInvalidCoordinates
	}
	return e.ErrInvalidInput
}

// resolveAddress is strictly best-effort: any geocoder failure collapses to
// an empty address and the scan proceeds.
func (s *scanService) resolveAddress(ctx context.Context, lat, lng float64) string {
	address, err := s.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		s.logger.Warn("reverse geocode failed, recording empty address",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
			slog.Any("error", err))
		return ""
	}
	return address
}

// enqueueMirror pushes a spreadsheet row for the owning supervisor. Failures
// are logged and swallowed; the verdict never depends on the mirror.
func (s *scanService) enqueueMirror(ctx context.Context, actor domain.GuardIdentity, event *domain.ScanEvent) {
	if s.mirrorDisabled {
		return
	}

	sup, err := s.directory.SupervisorByID(ctx, actor.SupervisorID)
	if err != nil {
		s.logger.Warn("mirror skipped, supervisor lookup failed",
			slog.String("supervisor_id", actor.SupervisorID.String()),
			slog.Any("error", err))
		return
	}
	if sup.SheetID == "" {
		return
	}

	row := domain.MirrorRow{
		SheetID:        sup.SheetID,
		AreaCity:       event.AreaCity,
		GuardName:      actor.Name,
		GuardEmail:     actor.Email,
		LocationName:   event.LocationName,
		QRID:           event.QRID,
		ScannedAt:      event.ScannedAt,
		Lat:            event.Lat,
		Lng:            event.Lng,
		Address:        event.Address,
		IsWithinRadius: event.IsWithinRadius,
		DistanceFromQR: event.DistanceFromQR,
		Notes:          event.Notes,
	}

	if err := s.mirror.Enqueue(ctx, row); err != nil {
		s.logger.Warn("mirror enqueue failed",
			slog.String("qr_id", event.QRID),
			slog.Any("error", err))
	}
}
