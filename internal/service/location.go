package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"qrpatrol/internal/config"
	"qrpatrol/internal/domain"
	"qrpatrol/pkg/e"
	"qrpatrol/pkg/validator"

	"github.com/google/uuid"
)

type locationService struct {
	logger    *slog.Logger
	locations LocationDirectory
	cache     LocationCache
	cacheTTL  time.Duration
}

func NewLocationService(logger *slog.Logger, locations LocationDirectory, cache LocationCache, cacheCfg config.CacheConfig) LocationService {
	return &locationService{
		logger:    logger,
		locations: locations,
		cache:     cache,
		cacheTTL:  cacheCfg.LocationTTL,
	}
}

func (s *locationService) Create(ctx context.Context, supervisorID uuid.UUID, req domain.CreateLocationRequest) (*domain.QRLocation, error) {
	const op = "service.Location.Create"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	loc := &domain.QRLocation{
		ID:           uuid.New(),
		QRID:         req.QRID,
		SupervisorID: supervisorID,
		LocationName: req.LocationName,
		Lat:          req.Lat,
		Lng:          req.Lng,
		Address:      req.Address,
		AreaCity:     req.AreaCity,
		AreaState:    req.AreaState,
		AreaCountry:  req.AreaCountry,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.locations.Create(ctx, loc); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.refreshCache(ctx, supervisorID)

	return loc, nil
}

func (s *locationService) List(ctx context.Context, supervisorID uuid.UUID, req domain.ListLocationsRequest) (domain.ListLocationsResponse, error) {
	const op = "service.Location.List"

	if req.Limit <= 0 {
		req.Limit = 50
	}
	if err := validator.ValidateStruct(req); err != nil {
		return domain.ListLocationsResponse{}, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	locations, total, err := s.locations.ListBySupervisor(ctx, supervisorID, req.ActiveOnly, req.Limit, req.Offset)
	if err != nil {
		return domain.ListLocationsResponse{}, e.Wrap(op, err)
	}

	return domain.ListLocationsResponse{Locations: locations, Total: total}, nil
}

func (s *locationService) Get(ctx context.Context, supervisorID uuid.UUID, qrID string) (*domain.QRLocation, error) {
	const op = "service.Location.Get"

	loc, err := s.locations.ResolveActive(ctx, qrID, supervisorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return loc, nil
}

func (s *locationService) Deactivate(ctx context.Context, supervisorID uuid.UUID, qrID string) error {
	const op = "service.Location.Deactivate"

	if err := s.locations.Deactivate(ctx, qrID, supervisorID); err != nil {
		return e.Wrap(op, err)
	}

	s.refreshCache(ctx, supervisorID)

	return nil
}

// PublicInfo returns an active checkpoint without a supervisor scope. The
// public QR landing page uses it; coordinates stay in the response because
// the checkpoint placement is not a secret to whoever holds the code.
func (s *locationService) PublicInfo(ctx context.Context, qrID string) (*domain.QRLocation, error) {
	const op = "service.Location.PublicInfo"

	loc, err := s.locations.GetActiveByQRID(ctx, qrID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return loc, nil
}

func (s *locationService) ValidateQR(ctx context.Context, qrID string) (domain.QRValidation, error) {
	const op = "service.Location.ValidateQR"

	loc, err := s.locations.GetActiveByQRID(ctx, qrID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return domain.QRValidation{
				QRID:    qrID,
				Valid:   false,
				Message: "QR code not found or inactive",
			}, nil
		}
		return domain.QRValidation{}, e.Wrap(op, err)
	}

	return domain.QRValidation{
		QRID:         loc.QRID,
		Valid:        true,
		LocationName: loc.LocationName,
		AreaCity:     loc.AreaCity,
		Message:      "QR code is valid and active",
	}, nil
}

// ActiveForSupervisor serves the guard-facing checkpoint listing from the
// redis cache, falling back to postgres on a miss and repopulating.
func (s *locationService) ActiveForSupervisor(ctx context.Context, supervisorID uuid.UUID) ([]domain.CachedLocation, error) {
	const op = "service.Location.ActiveForSupervisor"

	cached, err := s.cache.GetActive(ctx, supervisorID)
	if err != nil {
		s.logger.Warn("location cache read failed, falling back to postgres",
			slog.String("supervisor_id", supervisorID.String()),
			slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	locations, err := s.locations.ListActive(ctx, supervisorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	slim := toCached(locations)
	if err := s.cache.SetActive(ctx, supervisorID, slim, s.cacheTTL); err != nil {
		s.logger.Warn("location cache write failed",
			slog.String("supervisor_id", supervisorID.String()),
			slog.Any("error", err))
	}

	return slim, nil
}

func (s *locationService) refreshCache(ctx context.Context, supervisorID uuid.UUID) {
	locations, err := s.locations.ListActive(ctx, supervisorID)
	if err != nil {
		s.logger.Warn("cache refresh after write failed",
			slog.String("supervisor_id", supervisorID.String()),
			slog.Any("error", err))
		return
	}
	if err := s.cache.SetActive(ctx, supervisorID, toCached(locations), s.cacheTTL); err != nil {
		s.logger.Warn("cache refresh after write failed",
			slog.String("supervisor_id", supervisorID.String()),
			slog.Any("error", err))
	}
}

func toCached(locations []domain.QRLocation) []domain.CachedLocation {
	slim := make([]domain.CachedLocation, 0, len(locations))
	for _, loc := range locations {
		slim = append(slim, domain.CachedLocation{
			QRID:         loc.QRID,
			LocationName: loc.LocationName,
			Lat:          loc.Lat,
			Lng:          loc.Lng,
			Address:      loc.Address,
			AreaCity:     loc.AreaCity,
		})
	}
	return slim
}
