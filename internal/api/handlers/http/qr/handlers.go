package qr

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"qrpatrol/internal/domain"
	"qrpatrol/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PublicScanner interface {
	PublicScan(ctx context.Context, req domain.PublicScanRequest) (domain.ScanVerdict, error)
}

type LocationProvider interface {
	Create(ctx context.Context, supervisorID uuid.UUID, req domain.CreateLocationRequest) (*domain.QRLocation, error)
	List(ctx context.Context, supervisorID uuid.UUID, req domain.ListLocationsRequest) (domain.ListLocationsResponse, error)
	Get(ctx context.Context, supervisorID uuid.UUID, qrID string) (*domain.QRLocation, error)
	Deactivate(ctx context.Context, supervisorID uuid.UUID, qrID string) error
	PublicInfo(ctx context.Context, qrID string) (*domain.QRLocation, error)
	ValidateQR(ctx context.Context, qrID string) (domain.QRValidation, error)
}

type QRGenerator interface {
	Generate(ctx context.Context, supervisorID uuid.UUID, req domain.GenerateQRRequest) (*domain.GeneratedQR, error)
	BulkGenerate(ctx context.Context, supervisorID uuid.UUID, area string, size int) (*domain.BulkGeneratedQR, error)
}

type Handler struct {
	logger    *slog.Logger
	Scanner   PublicScanner
	Locations LocationProvider
	Generator QRGenerator
}

func NewHandler(logger *slog.Logger, scanner PublicScanner, locations LocationProvider, generator QRGenerator) *Handler {
	return &Handler{
		logger:    logger,
		Scanner:   scanner,
		Locations: locations,
		Generator: generator,
	}
}

// PublicScan is the unauthenticated guard-app endpoint: the guard identifies
// itself by email in the body.
func (h *Handler) PublicScan(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.PublicScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("public scan",
		slog.String("qr_id", req.QRID),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	verdict, err := h.Scanner.PublicScan(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("scan recorded",
		slog.String("scan_event_id", verdict.ScanEventID.String()),
		slog.Bool("within_radius", verdict.IsWithinRadius),
		slog.Float64("distance_m", verdict.DistanceFromQR),
	)
	h.writeJSON(w, http.StatusOK, verdict)
}

func (h *Handler) PublicLocationInfo(w http.ResponseWriter, r *http.Request) {
	qrID := chi.URLParam(r, "qr_id")

	loc, err := h.Locations.PublicInfo(r.Context(), qrID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, loc)
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	qrID := chi.URLParam(r, "qr_id")

	v, err := h.Locations.ValidateQR(r.Context(), qrID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, v)
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	sup, ok := middleware.SupervisorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "supervisor identity missing"})
		return
	}

	var req domain.GenerateQRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	qr, err := h.Generator.Generate(r.Context(), sup.ID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("qr generated", slog.String("qr_id", qr.QRID), slog.Int("size", qr.Size))
	h.writeJSON(w, http.StatusOK, qr)
}

func (h *Handler) BulkGenerate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	sup, ok := middleware.SupervisorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "supervisor identity missing"})
		return
	}

	size := parseInt(r.URL.Query().Get("size"), 0)

	bulk, err := h.Generator.BulkGenerate(r.Context(), sup.ID, sup.AreaCity, size)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("bulk qr generated", slog.Int("count", bulk.TotalQRCodes))
	h.writeJSON(w, http.StatusOK, bulk)
}

func (h *Handler) LocationCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	sup, ok := middleware.SupervisorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "supervisor identity missing"})
		return
	}

	var req domain.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	loc, err := h.Locations.Create(r.Context(), sup.ID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("location created", slog.String("qr_id", loc.QRID))
	h.writeJSON(w, http.StatusCreated, loc)
}

func (h *Handler) LocationList(w http.ResponseWriter, r *http.Request) {
	sup, ok := middleware.SupervisorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "supervisor identity missing"})
		return
	}

	req := domain.ListLocationsRequest{
		ActiveOnly: r.URL.Query().Get("active_only") == "true",
		Limit:      parseInt(r.URL.Query().Get("limit"), 50),
		Offset:     parseInt(r.URL.Query().Get("offset"), 0),
	}

	resp, err := h.Locations.List(r.Context(), sup.ID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) LocationGet(w http.ResponseWriter, r *http.Request) {
	sup, ok := middleware.SupervisorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "supervisor identity missing"})
		return
	}

	loc, err := h.Locations.Get(r.Context(), sup.ID, chi.URLParam(r, "qr_id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, loc)
}

func (h *Handler) LocationDeactivate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	sup, ok := middleware.SupervisorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "supervisor identity missing"})
		return
	}

	qrID := chi.URLParam(r, "qr_id")
	if err := h.Locations.Deactivate(r.Context(), sup.ID, qrID); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("location deactivated", slog.String("qr_id", qrID))
	w.WriteHeader(http.StatusNoContent)
}
