package guard

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"qrpatrol/internal/domain"
	"qrpatrol/internal/middleware"

	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Scanner interface {
	Scan(ctx context.Context, actor domain.GuardIdentity, req domain.ScanRequest) (domain.ScanVerdict, error)
}

type Reporter interface {
	GuardDashboard(ctx context.Context, actor domain.GuardIdentity) (*domain.GuardDashboard, error)
	ScanHistory(ctx context.Context, guardID uuid.UUID, req domain.ScanHistoryRequest) ([]domain.ScanEvent, error)
	PatrolSummary(ctx context.Context, actor domain.GuardIdentity, date time.Time) (*domain.PatrolSummary, error)
}

type LocationLister interface {
	ActiveForSupervisor(ctx context.Context, supervisorID uuid.UUID) ([]domain.CachedLocation, error)
}

type ProfileProvider interface {
	GuardProfile(ctx context.Context, guardID uuid.UUID) (*domain.GuardProfile, error)
}

type Handler struct {
	logger    *slog.Logger
	Scanner   Scanner
	Reports   Reporter
	Locations LocationLister
	Directory ProfileProvider
}

func NewHandler(logger *slog.Logger, scanner Scanner, reports Reporter, locations LocationLister, directory ProfileProvider) *Handler {
	return &Handler{
		logger:    logger,
		Scanner:   scanner,
		Reports:   reports,
		Locations: locations,
		Directory: directory,
	}
}

// Scan records a checkpoint scan for the authenticated guard. The identity
// comes from the auth middleware, never from the body.
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, ok := middleware.GuardFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "guard identity missing"})
		return
	}

	var req domain.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	verdict, err := h.Scanner.Scan(r.Context(), actor, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("scan recorded",
		slog.String("guard_id", actor.GuardID.String()),
		slog.String("qr_id", verdict.QRID),
		slog.Bool("within_radius", verdict.IsWithinRadius),
	)
	h.writeJSON(w, http.StatusOK, verdict)
}

func (h *Handler) ScanHistory(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GuardFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "guard identity missing"})
		return
	}

	q := r.URL.Query()
	req := domain.ScanHistoryRequest{
		QRID:   q.Get("qr_id"),
		Limit:  parseInt(q.Get("limit"), 50),
		Offset: parseInt(q.Get("offset"), 0),
	}
	if t, ok := parseTime(q.Get("from")); ok {
		req.From = &t
	}
	if t, ok := parseTime(q.Get("to")); ok {
		req.To = &t
	}
	if v := q.Get("within_radius_only"); v != "" {
		b := v == "true"
		req.WithinRadiusOnly = &b
	}

	events, err := h.Reports.ScanHistory(r.Context(), actor.GuardID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"scans": events,
		"count": len(events),
	})
}

func (h *Handler) LocationList(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GuardFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "guard identity missing"})
		return
	}

	locations, err := h.Locations.ActiveForSupervisor(r.Context(), actor.SupervisorID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"locations": locations,
		"count":     len(locations),
	})
}

// Profile returns the authenticated guard's role row joined with its user
// data.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GuardFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "guard identity missing"})
		return
	}

	profile, err := h.Directory.GuardProfile(r.Context(), actor.GuardID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GuardFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "guard identity missing"})
		return
	}

	dash, err := h.Reports.GuardDashboard(r.Context(), actor)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dash)
}

// PatrolSummary defaults to today when no date is given.
func (h *Handler) PatrolSummary(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, ok := middleware.GuardFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "guard identity missing"})
		return
	}

	date := time.Now().UTC()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			l.Warn("invalid date", slog.String("date", v))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	summary, err := h.Reports.PatrolSummary(r.Context(), actor, date)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, summary)
}
