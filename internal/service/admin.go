package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"qrpatrol/internal/domain"
	"qrpatrol/pkg/e"
	"qrpatrol/pkg/validator"

	"github.com/google/uuid"
)

type directoryService struct {
	logger    *slog.Logger
	directory Directory
	events    EventQueries
}

func NewDirectoryService(logger *slog.Logger, directory Directory, events EventQueries) DirectoryService {
	return &directoryService{logger: logger, directory: directory, events: events}
}

// CreateSupervisor provisions a user row and its supervisor row in one
// transaction. A duplicate email surfaces as a conflict before the insert is
// attempted so the caller gets a stable error.
func (s *directoryService) CreateSupervisor(ctx context.Context, req domain.CreateSupervisorRequest) (*domain.SupervisorProfile, error) {
	const op = "service.Directory.CreateSupervisor"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	if _, err := s.directory.UserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%s: email already registered: %w", op, e.ErrConflict)
	} else if !errors.Is(err, e.ErrNotFound) {
		return nil, e.Wrap(op, err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Name:      req.Name,
		Role:      domain.RoleSupervisor,
		AreaCity:  req.AreaCity,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	sup := &domain.Supervisor{
		ID:          uuid.New(),
		UserID:      user.ID,
		AreaCity:    req.AreaCity,
		AreaState:   req.AreaState,
		AreaCountry: req.AreaCountry,
		SheetID:     req.SheetID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.directory.CreateSupervisor(ctx, user, sup); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("supervisor created",
		slog.String("supervisor_id", sup.ID.String()),
		slog.String("area_city", sup.AreaCity))

	return &domain.SupervisorProfile{
		Supervisor: *sup,
		Email:      user.Email,
		Name:       user.Name,
		IsActive:   user.IsActive,
	}, nil
}

// CreateGuard provisions a guard under an existing supervisor. The guard
// inherits the supervisor's area city.
func (s *directoryService) CreateGuard(ctx context.Context, req domain.CreateGuardRequest) (*domain.GuardProfile, error) {
	const op = "service.Directory.CreateGuard"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	supervisorID, err := uuid.Parse(req.SupervisorID)
	if err != nil {
		return nil, fmt.Errorf("%s: bad supervisor id: %w", op, e.ErrInvalidInput)
	}

	sup, err := s.directory.SupervisorByID(ctx, supervisorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err := s.directory.UserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%s: email already registered: %w", op, e.ErrConflict)
	} else if !errors.Is(err, e.ErrNotFound) {
		return nil, e.Wrap(op, err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Name:      req.Name,
		Role:      domain.RoleGuard,
		AreaCity:  sup.AreaCity,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	guard := &domain.Guard{
		ID:               uuid.New(),
		UserID:           user.ID,
		SupervisorID:     sup.ID,
		Shift:            req.Shift,
		PhoneNumber:      req.PhoneNumber,
		EmergencyContact: req.EmergencyContact,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.directory.CreateGuard(ctx, user, guard); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("guard created",
		slog.String("guard_id", guard.ID.String()),
		slog.String("supervisor_id", sup.ID.String()))

	return &domain.GuardProfile{
		Guard:    *guard,
		Email:    user.Email,
		Name:     user.Name,
		AreaCity: user.AreaCity,
		IsActive: user.IsActive,
	}, nil
}

func (s *directoryService) ListUsers(ctx context.Context, req domain.ListUsersRequest) ([]domain.User, error) {
	const op = "service.Directory.ListUsers"

	if req.Limit <= 0 {
		req.Limit = 50
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	users, err := s.directory.ListUsers(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return users, nil
}

func (s *directoryService) ListSupervisors(ctx context.Context, req domain.ListSupervisorsRequest) ([]domain.SupervisorProfile, error) {
	const op = "service.Directory.ListSupervisors"

	if req.Limit <= 0 {
		req.Limit = 50
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	sups, err := s.directory.ListSupervisors(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return sups, nil
}

func (s *directoryService) ListGuards(ctx context.Context, req domain.ListGuardsRequest) ([]domain.GuardProfile, error) {
	const op = "service.Directory.ListGuards"

	if req.Limit <= 0 {
		req.Limit = 50
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	guards, err := s.directory.ListGuards(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return guards, nil
}

// DisableUser soft-deletes. Admin accounts and self-disable are refused.
func (s *directoryService) DisableUser(ctx context.Context, actorID, userID uuid.UUID) error {
	const op = "service.Directory.DisableUser"

	if actorID == userID {
		return fmt.Errorf("%s: cannot disable own account: %w", op, e.ErrForbidden)
	}

	user, err := s.directory.UserByID(ctx, userID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if user.Role == domain.RoleAdmin {
		return fmt.Errorf("%s: admin accounts cannot be disabled: %w", op, e.ErrForbidden)
	}

	if err := s.directory.DisableUser(ctx, userID); err != nil {
		return e.Wrap(op, err)
	}

	s.logger.Info("user disabled", slog.String("user_id", userID.String()))
	return nil
}

// GuardProfile returns the guard role row joined with its user data, the
// shape the guard-facing profile endpoint responds with.
func (s *directoryService) GuardProfile(ctx context.Context, guardID uuid.UUID) (*domain.GuardProfile, error) {
	const op = "service.Directory.GuardProfile"

	profile, err := s.directory.GuardProfileByID(ctx, guardID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return profile, nil
}

func (s *directoryService) ResolveGuard(ctx context.Context, email string) (*domain.GuardIdentity, error) {
	const op = "service.Directory.ResolveGuard"

	actor, err := s.directory.GuardIdentityByEmail(ctx, email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return actor, nil
}

func (s *directoryService) ResolveSupervisor(ctx context.Context, email string) (*domain.Supervisor, error) {
	const op = "service.Directory.ResolveSupervisor"

	user, err := s.directory.UserByEmail(ctx, email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if user.Role != domain.RoleSupervisor || !user.IsActive {
		return nil, fmt.Errorf("%s: not an active supervisor: %w", op, e.ErrNotFound)
	}

	sup, err := s.directory.SupervisorByUserID(ctx, user.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return sup, nil
}

func (s *directoryService) AdminDashboard(ctx context.Context) (*domain.AdminDashboard, error) {
	const op = "service.Directory.AdminDashboard"

	totalUsers, err := s.directory.CountUsers(ctx, false)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	activeUsers, err := s.directory.CountUsers(ctx, true)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	totalSups, err := s.directory.CountSupervisors(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	totalGuards, err := s.directory.CountGuards(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	todayScans, err := s.events.CountAllSince(ctx, startOfDay(time.Now().UTC()))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &domain.AdminDashboard{
		TotalUsers:       totalUsers,
		ActiveUsers:      activeUsers,
		TotalSupervisors: totalSups,
		TotalGuards:      totalGuards,
		TodayScans:       todayScans,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
