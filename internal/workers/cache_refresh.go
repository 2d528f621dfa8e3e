package workers

import (
	"context"
	"log/slog"
	"time"

	"qrpatrol/internal/config"
	"qrpatrol/internal/domain"

	"github.com/google/uuid"
)

type LocationSource interface {
	ActiveSupervisorIDs(ctx context.Context) ([]uuid.UUID, error)
	ListActive(ctx context.Context, supervisorID uuid.UUID) ([]domain.QRLocation, error)
}

type LocationCacheService interface {
	SetActive(ctx context.Context, supervisorID uuid.UUID, locations []domain.CachedLocation, ttl time.Duration) error
}

// CacheRefresher repopulates every supervisor's active-checkpoint cache on a
// fixed interval so guard listings keep working through cache expiry without
// a thundering herd on Postgres.
type CacheRefresher struct {
	logger    *slog.Logger
	locations LocationSource
	cache     LocationCacheService
	interval  time.Duration
	ttl       time.Duration
}

func NewCacheRefresher(logger *slog.Logger, locations LocationSource, cache LocationCacheService, cfg config.CacheConfig) *CacheRefresher {
	return &CacheRefresher{
		logger:    logger,
		locations: locations,
		cache:     cache,
		interval:  cfg.RefreshInterval,
		ttl:       cfg.LocationTTL,
	}
}

func (w *CacheRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("cacheRefresher started", slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cacheRefresher stopped")
			return
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

func (w *CacheRefresher) refreshAll(ctx context.Context) {
	ids, err := w.locations.ActiveSupervisorIDs(ctx)
	if err != nil {
		w.logger.Error("cacheRefresher: supervisor listing failed", slog.Any("error", err))
		return
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		if err := w.refreshOne(ctx, id); err != nil {
			w.logger.Warn("cacheRefresher: refresh failed",
				slog.String("supervisor_id", id.String()),
				slog.Any("error", err))
		}
	}
}

func (w *CacheRefresher) refreshOne(ctx context.Context, supervisorID uuid.UUID) error {
	active, err := w.locations.ListActive(ctx, supervisorID)
	if err != nil {
		return err
	}

	cached := make([]domain.CachedLocation, 0, len(active))
	for _, loc := range active {
		cached = append(cached, domain.CachedLocation{
			QRID:         loc.QRID,
			LocationName: loc.LocationName,
			Lat:          loc.Lat,
			Lng:          loc.Lng,
			Address:      loc.Address,
			AreaCity:     loc.AreaCity,
		})
	}

	return w.cache.SetActive(ctx, supervisorID, cached, w.ttl)
}
