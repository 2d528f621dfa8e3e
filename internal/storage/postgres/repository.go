package postgres

import (
	"context"
	"time"

	"qrpatrol/internal/domain"

	"github.com/google/uuid"
)

type LocationRepository interface {
	Create(ctx context.Context, loc *domain.QRLocation) error
	// ResolveActive looks a checkpoint up by qr_id scoped to its owning
	// supervisor, active rows only.
	ResolveActive(ctx context.Context, qrID string, supervisorID uuid.UUID) (*domain.QRLocation, error)
	GetActiveByQRID(ctx context.Context, qrID string) (*domain.QRLocation, error)
	ListBySupervisor(ctx context.Context, supervisorID uuid.UUID, activeOnly bool, limit, offset int) ([]domain.QRLocation, int64, error)
	ListActive(ctx context.Context, supervisorID uuid.UUID) ([]domain.QRLocation, error)
	CountActive(ctx context.Context, supervisorID uuid.UUID) (int64, error)
	Deactivate(ctx context.Context, qrID string, supervisorID uuid.UUID) error
	ActiveSupervisorIDs(ctx context.Context) ([]uuid.UUID, error)
}

// ScanEventRepository is append-only: events are inserted once and never
// updated or deleted.
type ScanEventRepository interface {
	Insert(ctx context.Context, event *domain.ScanEvent) error
	History(ctx context.Context, guardID uuid.UUID, req domain.ScanHistoryRequest) ([]domain.ScanEvent, error)
	Recent(ctx context.Context, guardID uuid.UUID, limit int) ([]domain.ScanSummary, error)
	ListForRange(ctx context.Context, guardID uuid.UUID, from, to time.Time) ([]domain.ScanSummary, error)
	CountSince(ctx context.Context, guardID uuid.UUID, since time.Time) (int64, error)
	CountTotal(ctx context.Context, guardID uuid.UUID) (int64, error)
	CountWithinRadius(ctx context.Context, guardID uuid.UUID) (int64, error)
	CountAllSince(ctx context.Context, since time.Time) (int64, error)
	AreaReport(ctx context.Context, req domain.AreaReportRequest) ([]domain.AreaReportRow, error)
}

// DirectoryRepository covers users and the supervisor/guard role rows.
type DirectoryRepository interface {
	CreateSupervisor(ctx context.Context, user *domain.User, sup *domain.Supervisor) error
	CreateGuard(ctx context.Context, user *domain.User, guard *domain.Guard) error
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GuardIdentityByEmail(ctx context.Context, email string) (*domain.GuardIdentity, error)
	GuardProfileByID(ctx context.Context, id uuid.UUID) (*domain.GuardProfile, error)
	SupervisorByID(ctx context.Context, id uuid.UUID) (*domain.Supervisor, error)
	SupervisorByUserID(ctx context.Context, userID uuid.UUID) (*domain.Supervisor, error)
	ListUsers(ctx context.Context, req domain.ListUsersRequest) ([]domain.User, error)
	ListSupervisors(ctx context.Context, req domain.ListSupervisorsRequest) ([]domain.SupervisorProfile, error)
	ListGuards(ctx context.Context, req domain.ListGuardsRequest) ([]domain.GuardProfile, error)
	DisableUser(ctx context.Context, id uuid.UUID) error
	CountUsers(ctx context.Context, activeOnly bool) (int64, error)
	CountSupervisors(ctx context.Context) (int64, error)
	CountGuards(ctx context.Context) (int64, error)
}
