package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"qrpatrol/internal/config"
	"qrpatrol/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type DirectoryAdmin interface {
	CreateSupervisor(ctx context.Context, req domain.CreateSupervisorRequest) (*domain.SupervisorProfile, error)
	CreateGuard(ctx context.Context, req domain.CreateGuardRequest) (*domain.GuardProfile, error)
	ListUsers(ctx context.Context, req domain.ListUsersRequest) ([]domain.User, error)
	ListSupervisors(ctx context.Context, req domain.ListSupervisorsRequest) ([]domain.SupervisorProfile, error)
	ListGuards(ctx context.Context, req domain.ListGuardsRequest) ([]domain.GuardProfile, error)
	DisableUser(ctx context.Context, actorID, userID uuid.UUID) error
	AdminDashboard(ctx context.Context) (*domain.AdminDashboard, error)
}

type ReportAdmin interface {
	AreaReport(ctx context.Context, req domain.AreaReportRequest) ([]domain.AreaReportRow, error)
}

type Handler struct {
	logger    *slog.Logger
	Directory DirectoryAdmin
	Reports   ReportAdmin
	cfg       *config.Config
}

func NewHandler(logger *slog.Logger, directory DirectoryAdmin, reports ReportAdmin, cfg *config.Config) *Handler {
	return &Handler{
		logger:    logger,
		Directory: directory,
		Reports:   reports,
		cfg:       cfg,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) SupervisorCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateSupervisorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	profile, err := h.Directory.CreateSupervisor(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("supervisor created", slog.String("id", profile.ID.String()))
	h.writeJSON(w, http.StatusCreated, profile)
}

func (h *Handler) SupervisorList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := domain.ListSupervisorsRequest{
		AreaCity: q.Get("area_city"),
		Limit:    parseInt(q.Get("limit"), 50),
		Offset:   parseInt(q.Get("offset"), 0),
	}
	if v := q.Get("active"); v != "" {
		b := v == "true"
		req.Active = &b
	}

	sups, err := h.Directory.ListSupervisors(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"supervisors": sups,
		"count":       len(sups),
	})
}

func (h *Handler) GuardCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateGuardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	profile, err := h.Directory.CreateGuard(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("guard created", slog.String("id", profile.ID.String()))
	h.writeJSON(w, http.StatusCreated, profile)
}

func (h *Handler) GuardList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := domain.ListGuardsRequest{
		SupervisorID: q.Get("supervisor_id"),
		AreaCity:     q.Get("area_city"),
		Limit:        parseInt(q.Get("limit"), 50),
		Offset:       parseInt(q.Get("offset"), 0),
	}
	if v := q.Get("active"); v != "" {
		b := v == "true"
		req.Active = &b
	}

	guards, err := h.Directory.ListGuards(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"guards": guards,
		"count":  len(guards),
	})
}

func (h *Handler) UserList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := domain.ListUsersRequest{
		Role:   q.Get("role"),
		Limit:  parseInt(q.Get("limit"), 50),
		Offset: parseInt(q.Get("offset"), 0),
	}
	if v := q.Get("active"); v != "" {
		b := v == "true"
		req.Active = &b
	}

	users, err := h.Directory.ListUsers(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"users": users,
		"count": len(users),
	})
}

// UserDisable soft-disables a user. The acting admin id comes from the
// X-Admin-ID header set by the gateway.
func (h *Handler) UserDisable(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	actorID, _ := uuid.Parse(r.Header.Get("X-Admin-ID"))

	if err := h.Directory.DisableUser(r.Context(), actorID, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("user disabled", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AreaReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.AreaReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	rows, err := h.Reports.AreaReport(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("area report built", slog.Int("rows", len(rows)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"rows":  rows,
		"count": len(rows),
	})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.Directory.AdminDashboard(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dash)
}

// SystemConfig exposes effective runtime settings. Secrets never leave the
// process, only presence flags.
func (h *Handler) SystemConfig(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"radius_meters":    h.cfg.Geofence.RadiusMeters,
		"geocode_enabled":  h.cfg.Geocode.APIKey != "",
		"sheets_enabled":   !h.cfg.Sheets.Disabled && h.cfg.Sheets.AppendURL != "",
		"cache_ttl":        h.cfg.Cache.LocationTTL.String(),
		"refresh_interval": h.cfg.Cache.RefreshInterval.String(),
		"env":              h.cfg.Env,
	})
}
