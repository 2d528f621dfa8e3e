package service

import (
	"context"
	"time"

	"qrpatrol/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Consumer-side ports. Postgres, redis and the geocode client satisfy these;
// the services only see what they actually call.

type LocationDirectory interface {
	Create(ctx context.Context, loc *domain.QRLocation) error
	ResolveActive(ctx context.Context, qrID string, supervisorID uuid.UUID) (*domain.QRLocation, error)
	GetActiveByQRID(ctx context.Context, qrID string) (*domain.QRLocation, error)
	ListBySupervisor(ctx context.Context, supervisorID uuid.UUID, activeOnly bool, limit, offset int) ([]domain.QRLocation, int64, error)
	ListActive(ctx context.Context, supervisorID uuid.UUID) ([]domain.QRLocation, error)
	CountActive(ctx context.Context, supervisorID uuid.UUID) (int64, error)
	Deactivate(ctx context.Context, qrID string, supervisorID uuid.UUID) error
}

type EventStore interface {
	Insert(ctx context.Context, event *domain.ScanEvent) error
}

type EventQueries interface {
	History(ctx context.Context, guardID uuid.UUID, req domain.ScanHistoryRequest) ([]domain.ScanEvent, error)
	Recent(ctx context.Context, guardID uuid.UUID, limit int) ([]domain.ScanSummary, error)
	ListForRange(ctx context.Context, guardID uuid.UUID, from, to time.Time) ([]domain.ScanSummary, error)
	CountSince(ctx context.Context, guardID uuid.UUID, since time.Time) (int64, error)
	CountTotal(ctx context.Context, guardID uuid.UUID) (int64, error)
	CountWithinRadius(ctx context.Context, guardID uuid.UUID) (int64, error)
	CountAllSince(ctx context.Context, since time.Time) (int64, error)
	AreaReport(ctx context.Context, req domain.AreaReportRequest) ([]domain.AreaReportRow, error)
}

type Directory interface {
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

type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

type MirrorQueue interface {
	Enqueue(ctx context.Context, row domain.MirrorRow) error
}

type LocationCache interface {
	GetActive(ctx context.Context, supervisorID uuid.UUID) ([]domain.CachedLocation, error)
	SetActive(ctx context.Context, supervisorID uuid.UUID, locations []domain.CachedLocation, ttl time.Duration) error
}

// Use-case interfaces the HTTP layer consumes.

type ScanService interface {
	Scan(ctx context.Context, actor domain.GuardIdentity, req domain.ScanRequest) (domain.ScanVerdict, error)
	PublicScan(ctx context.Context, req domain.PublicScanRequest) (domain.ScanVerdict, error)
}

type LocationService interface {
	Create(ctx context.Context, supervisorID uuid.UUID, req domain.CreateLocationRequest) (*domain.QRLocation, error)
	List(ctx context.Context, supervisorID uuid.UUID, req domain.ListLocationsRequest) (domain.ListLocationsResponse, error)
	Get(ctx context.Context, supervisorID uuid.UUID, qrID string) (*domain.QRLocation, error)
	Deactivate(ctx context.Context, supervisorID uuid.UUID, qrID string) error
	PublicInfo(ctx context.Context, qrID string) (*domain.QRLocation, error)
	ValidateQR(ctx context.Context, qrID string) (domain.QRValidation, error)
	ActiveForSupervisor(ctx context.Context, supervisorID uuid.UUID) ([]domain.CachedLocation, error)
}

type QRCodeService interface {
	Generate(ctx context.Context, supervisorID uuid.UUID, req domain.GenerateQRRequest) (*domain.GeneratedQR, error)
	BulkGenerate(ctx context.Context, supervisorID uuid.UUID, area string, size int) (*domain.BulkGeneratedQR, error)
}

type DirectoryService interface {
	CreateSupervisor(ctx context.Context, req domain.CreateSupervisorRequest) (*domain.SupervisorProfile, error)
	CreateGuard(ctx context.Context, req domain.CreateGuardRequest) (*domain.GuardProfile, error)
	ListUsers(ctx context.Context, req domain.ListUsersRequest) ([]domain.User, error)
	ListSupervisors(ctx context.Context, req domain.ListSupervisorsRequest) ([]domain.SupervisorProfile, error)
	ListGuards(ctx context.Context, req domain.ListGuardsRequest) ([]domain.GuardProfile, error)
	DisableUser(ctx context.Context, actorID, userID uuid.UUID) error
	GuardProfile(ctx context.Context, guardID uuid.UUID) (*domain.GuardProfile, error)
	ResolveGuard(ctx context.Context, email string) (*domain.GuardIdentity, error)
	ResolveSupervisor(ctx context.Context, email string) (*domain.Supervisor, error)
	AdminDashboard(ctx context.Context) (*domain.AdminDashboard, error)
}

type ReportService interface {
	GuardDashboard(ctx context.Context, actor domain.GuardIdentity) (*domain.GuardDashboard, error)
	ScanHistory(ctx context.Context, guardID uuid.UUID, req domain.ScanHistoryRequest) ([]domain.ScanEvent, error)
	PatrolSummary(ctx context.Context, actor domain.GuardIdentity, date time.Time) (*domain.PatrolSummary, error)
	AreaReport(ctx context.Context, req domain.AreaReportRequest) ([]domain.AreaReportRow, error)
}

type Service struct {
	Scans     ScanService
	Locations LocationService
	QRCodes   QRCodeService
	Directory DirectoryService
	Reports   ReportService
}

func NewService(
	scans ScanService,
	locations LocationService,
	qrCodes QRCodeService,
	directory DirectoryService,
	reports ReportService,
) *Service {
	return &Service{
		Scans:     scans,
		Locations: locations,
		QRCodes:   qrCodes,
		Directory: directory,
		Reports:   reports,
	}
}
