package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"qrpatrol/internal/api"
	"qrpatrol/internal/config"
	"qrpatrol/internal/geocode"
	"qrpatrol/internal/redis"
	"qrpatrol/internal/service"
	"qrpatrol/internal/storage/postgres"
	"qrpatrol/internal/workers"
	"qrpatrol/pkg/logger"
)

type Components struct {
	logger         *slog.Logger
	HttpServer     *api.Server
	Postgres       *postgres.Postgres
	Redis          *redis.Redis
	MirrorQ        *redis.MirrorQueue
	MirrorSender   *service.MirrorSender
	CacheRefresher *workers.CacheRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	mirrorQueue := redis.NewMirrorQueue(redisClient.Client, "mirror:queue")
	locationCache := redis.NewLocationCache(redisClient)
	geocoder := geocode.NewClient(logger, cfg.Geocode)

	scanSvc := service.NewScanService(logger,
		storage.Locations(), storage.Scans(), storage.Directory(),
		geocoder, mirrorQueue, cfg.Geofence, cfg.Sheets)
	locationSvc := service.NewLocationService(logger, storage.Locations(), locationCache, cfg.Cache)
	qrCodeSvc := service.NewQRCodeService(logger, storage.Locations())
	directorySvc := service.NewDirectoryService(logger, storage.Directory(), storage.Scans())
	reportSvc := service.NewReportService(logger, storage.Scans(), storage.Locations())

	srv := service.NewService(scanSvc, locationSvc, qrCodeSvc, directorySvc, reportSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	mirrorSender := service.NewMirrorSender(logger, cfg.Sheets, mirrorQueue)
	cacheRefresher := workers.NewCacheRefresher(logger, storage.LocationRepo, locationCache, cfg.Cache)

	return &Components{
		logger:         logger,
		HttpServer:     httpServer,
		Postgres:       storage,
		Redis:          redisClient,
		MirrorQ:        mirrorQueue,
		MirrorSender:   mirrorSender,
		CacheRefresher: cacheRefresher,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
