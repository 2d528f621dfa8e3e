package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"qrpatrol/internal/api/handlers/http/admin"
	"qrpatrol/internal/api/handlers/http/guard"
	"qrpatrol/internal/api/handlers/http/qr"
	"qrpatrol/internal/api/handlers/http/system"
	"qrpatrol/internal/config"
	"qrpatrol/internal/middleware"
	"qrpatrol/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	qrHandler := qr.NewHandler(logger, svc.Scans, svc.Locations, svc.QRCodes)
	guardHandler := guard.NewHandler(logger, svc.Scans, svc.Reports, svc.Locations, svc.Directory)
	adminHandler := admin.NewHandler(logger, svc.Directory, svc.Reports, cfg)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, qrHandler, guardHandler, adminHandler, systemHandler, svc.Directory, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	qrHandler *qr.Handler,
	guardHandler *guard.Handler,
	adminHandler *admin.Handler,
	systemHandler *system.Handler,
	directory service.DirectoryService,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// QR: public scan surface plus supervisor provisioning.
		api.Route("/qr", func(qrr chi.Router) {
			qrr.Group(func(pub chi.Router) {
				pub.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

				pub.Post("/public/scan", qrHandler.PublicScan)
				pub.Get("/public/location/{qr_id}", qrHandler.PublicLocationInfo)
				pub.Get("/validate/{qr_id}", qrHandler.Validate)
			})

			qrr.Group(func(sup chi.Router) {
				sup.Use(middleware.SupervisorAuth(directory, logger))
				sup.Use(middleware.Limit(5, 10, 10*time.Minute, logger))

				sup.Post("/generate", qrHandler.Generate)
				sup.Get("/bulk-generate", qrHandler.BulkGenerate)

				sup.Route("/locations", func(lr chi.Router) {
					lr.Post("/", qrHandler.LocationCreate)
					lr.Get("/", qrHandler.LocationList)
					lr.Get("/{qr_id}", qrHandler.LocationGet)
					lr.Delete("/{qr_id}", qrHandler.LocationDeactivate)
				})
			})
		})

		// GUARD
		api.Route("/guard", func(gr chi.Router) {
			gr.Use(middleware.GuardAuth(directory, logger))
			gr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			gr.Post("/scan", guardHandler.Scan)
			gr.Get("/scan-history", guardHandler.ScanHistory)
			gr.Get("/locations", guardHandler.LocationList)
			gr.Get("/profile", guardHandler.Profile)
			gr.Get("/dashboard", guardHandler.Dashboard)
			gr.Get("/patrol-summary", guardHandler.PatrolSummary)
		})

		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Post("/supervisors", adminHandler.SupervisorCreate)
			ar.Get("/supervisors", adminHandler.SupervisorList)
			ar.Post("/guards", adminHandler.GuardCreate)
			ar.Get("/guards", adminHandler.GuardList)
			ar.Get("/users", adminHandler.UserList)
			ar.Delete("/users/{id}", adminHandler.UserDisable)
			ar.Post("/reports/area", adminHandler.AreaReport)
			ar.Get("/dashboard", adminHandler.Dashboard)
			ar.Get("/system/config", adminHandler.SystemConfig)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	// cfg.Validate guarantees the ":8080" form.
	srv := &http.Server{
		Addr:         s.cfg.Http.Port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
