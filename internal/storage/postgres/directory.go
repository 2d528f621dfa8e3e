package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"qrpatrol/internal/domain"
	"qrpatrol/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DirectoryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDirectoryRepo(pool *pgxpool.Pool, logger *slog.Logger) *DirectoryRepo {
	return &DirectoryRepo{pool: pool, logger: logger}
}

const insertUserQuery = `
	INSERT INTO users (id, email, name, role, area_city, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// CreateSupervisor inserts the user row and the supervisor row in one
// transaction so a half-provisioned supervisor can never exist.
func (r *DirectoryRepo) CreateSupervisor(ctx context.Context, user *domain.User, sup *domain.Supervisor) error {
	const op = "postgres.Directory.CreateSupervisor"

	fillUser(user, domain.RoleSupervisor)
	if sup.ID == uuid.Nil {
		sup.ID = uuid.New()
	}
	sup.UserID = user.ID
	sup.CreatedAt = user.CreatedAt
	sup.UpdatedAt = user.UpdatedAt

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, insertUserQuery,
		user.ID, user.Email, user.Name, user.Role, user.AreaCity, user.IsActive, user.CreatedAt, user.UpdatedAt,
	); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	const supQuery = `
		INSERT INTO supervisors (id, user_id, area_city, area_state, area_country, sheet_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := tx.Exec(ctx, supQuery,
		sup.ID, sup.UserID, sup.AreaCity, sup.AreaState, sup.AreaCountry, sup.SheetID, sup.CreatedAt, sup.UpdatedAt,
	); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *DirectoryRepo) CreateGuard(ctx context.Context, user *domain.User, guard *domain.Guard) error {
	const op = "postgres.Directory.CreateGuard"

	fillUser(user, domain.RoleGuard)
	if guard.ID == uuid.Nil {
		guard.ID = uuid.New()
	}
	guard.UserID = user.ID
	guard.CreatedAt = user.CreatedAt
	guard.UpdatedAt = user.UpdatedAt

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, insertUserQuery,
		user.ID, user.Email, user.Name, user.Role, user.AreaCity, user.IsActive, user.CreatedAt, user.UpdatedAt,
	); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	const guardQuery = `
		INSERT INTO guards (id, user_id, supervisor_id, shift, phone_number, emergency_contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := tx.Exec(ctx, guardQuery,
		guard.ID, guard.UserID, guard.SupervisorID, guard.Shift, guard.PhoneNumber, guard.EmergencyContact,
		guard.CreatedAt, guard.UpdatedAt,
	); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func fillUser(user *domain.User, role domain.UserRole) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Role = role
	user.IsActive = true
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = user.CreatedAt
}

const userColumns = `id, email, name, role, COALESCE(area_city, ''), is_active, created_at, updated_at`

func (r *DirectoryRepo) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "postgres.Directory.UserByEmail"
	return r.userBy(ctx, op, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *DirectoryRepo) UserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const op = "postgres.Directory.UserByID"
	return r.userBy(ctx, op, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *DirectoryRepo) userBy(ctx context.Context, op, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.AreaCity, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &u, nil
}

// GuardIdentityByEmail resolves the scan actor: the users row joined with the
// guards role row, active guards only.
func (r *DirectoryRepo) GuardIdentityByEmail(ctx context.Context, email string) (*domain.GuardIdentity, error) {
	const op = "postgres.Directory.GuardIdentityByEmail"

	const query = `
		SELECT g.id, u.id, g.supervisor_id, u.email, u.name, COALESCE(u.area_city, ''), g.shift
		FROM users u
		JOIN guards g ON g.user_id = u.id
		WHERE u.email = $1 AND u.role = 'GUARD' AND u.is_active = true
	`

	var id domain.GuardIdentity
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&id.GuardID, &id.UserID, &id.SupervisorID, &id.Email, &id.Name, &id.AreaCity, &id.Shift,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &id, nil
}

func (r *DirectoryRepo) GuardProfileByID(ctx context.Context, id uuid.UUID) (*domain.GuardProfile, error) {
	const op = "postgres.Directory.GuardProfileByID"

	const query = `
		SELECT g.id, g.user_id, g.supervisor_id, g.shift, g.phone_number, COALESCE(g.emergency_contact, ''),
		       g.created_at, g.updated_at, u.email, u.name, COALESCE(u.area_city, ''), u.is_active
		FROM guards g
		JOIN users u ON u.id = g.user_id
		WHERE g.id = $1
	`

	var p domain.GuardProfile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.SupervisorID, &p.Shift, &p.PhoneNumber, &p.EmergencyContact,
		&p.CreatedAt, &p.UpdatedAt, &p.Email, &p.Name, &p.AreaCity, &p.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &p, nil
}

const supervisorColumns = `id, user_id, area_city, area_state, area_country, COALESCE(sheet_id, ''), created_at, updated_at`

func (r *DirectoryRepo) SupervisorByID(ctx context.Context, id uuid.UUID) (*domain.Supervisor, error) {
	const op = "postgres.Directory.SupervisorByID"
	return r.supervisorBy(ctx, op, `SELECT `+supervisorColumns+` FROM supervisors WHERE id = $1`, id)
}

func (r *DirectoryRepo) SupervisorByUserID(ctx context.Context, userID uuid.UUID) (*domain.Supervisor, error) {
	const op = "postgres.Directory.SupervisorByUserID"
	return r.supervisorBy(ctx, op, `SELECT `+supervisorColumns+` FROM supervisors WHERE user_id = $1`, userID)
}

func (r *DirectoryRepo) supervisorBy(ctx context.Context, op, query string, arg any) (*domain.Supervisor, error) {
	var s domain.Supervisor
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.UserID, &s.AreaCity, &s.AreaState, &s.AreaCountry, &s.SheetID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &s, nil
}

func (r *DirectoryRepo) ListUsers(ctx context.Context, req domain.ListUsersRequest) ([]domain.User, error) {
	const op = "postgres.Directory.ListUsers"

	limit, offset := clampPage(req.Limit, req.Offset)

	query := `SELECT ` + userColumns + ` FROM users WHERE true`
	args := []any{}
	if req.Role != "" {
		args = append(args, req.Role)
		query += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if req.Active != nil {
		args = append(args, *req.Active)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.AreaCity, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return users, nil
}

func (r *DirectoryRepo) ListSupervisors(ctx context.Context, req domain.ListSupervisorsRequest) ([]domain.SupervisorProfile, error) {
	const op = "postgres.Directory.ListSupervisors"

	limit, offset := clampPage(req.Limit, req.Offset)

	query := `
		SELECT s.id, s.user_id, s.area_city, s.area_state, s.area_country, COALESCE(s.sheet_id, ''),
		       s.created_at, s.updated_at, u.email, u.name, u.is_active
		FROM supervisors s
		JOIN users u ON u.id = s.user_id
		WHERE true`
	args := []any{}
	if req.AreaCity != "" {
		args = append(args, "%"+req.AreaCity+"%")
		query += fmt.Sprintf(" AND s.area_city ILIKE $%d", len(args))
	}
	if req.Active != nil {
		args = append(args, *req.Active)
		query += fmt.Sprintf(" AND u.is_active = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY s.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var profiles []domain.SupervisorProfile
	for rows.Next() {
		var p domain.SupervisorProfile
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Supervisor.AreaCity, &p.AreaState, &p.AreaCountry, &p.SheetID,
			&p.CreatedAt, &p.UpdatedAt, &p.Email, &p.Name, &p.IsActive,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return profiles, nil
}

func (r *DirectoryRepo) ListGuards(ctx context.Context, req domain.ListGuardsRequest) ([]domain.GuardProfile, error) {
	const op = "postgres.Directory.ListGuards"

	limit, offset := clampPage(req.Limit, req.Offset)

	query := `
		SELECT g.id, g.user_id, g.supervisor_id, g.shift, g.phone_number, COALESCE(g.emergency_contact, ''),
		       g.created_at, g.updated_at, u.email, u.name, COALESCE(u.area_city, ''), u.is_active
		FROM guards g
		JOIN users u ON u.id = g.user_id
		WHERE true`
	args := []any{}
	if req.SupervisorID != "" {
		args = append(args, req.SupervisorID)
		query += fmt.Sprintf(" AND g.supervisor_id = $%d", len(args))
	}
	if req.AreaCity != "" {
		args = append(args, "%"+req.AreaCity+"%")
		query += fmt.Sprintf(" AND u.area_city ILIKE $%d", len(args))
	}
	if req.Active != nil {
		args = append(args, *req.Active)
		query += fmt.Sprintf(" AND u.is_active = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY g.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var profiles []domain.GuardProfile
	for rows.Next() {
		var p domain.GuardProfile
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.SupervisorID, &p.Shift, &p.PhoneNumber, &p.EmergencyContact,
			&p.CreatedAt, &p.UpdatedAt, &p.Email, &p.Name, &p.AreaCity, &p.IsActive,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return profiles, nil
}

func (r *DirectoryRepo) DisableUser(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Directory.DisableUser"

	const query = `
		UPDATE users
		SET is_active = false, updated_at = $2
		WHERE id = $1
	`

	cmd, err := r.pool.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *DirectoryRepo) CountUsers(ctx context.Context, activeOnly bool) (int64, error) {
	const op = "postgres.Directory.CountUsers"
	query := `SELECT COUNT(*) FROM users`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	return r.count(ctx, op, query)
}

func (r *DirectoryRepo) CountSupervisors(ctx context.Context) (int64, error) {
	const op = "postgres.Directory.CountSupervisors"
	return r.count(ctx, op, `SELECT COUNT(*) FROM supervisors`)
}

func (r *DirectoryRepo) CountGuards(ctx context.Context) (int64, error) {
	const op = "postgres.Directory.CountGuards"
	return r.count(ctx, op, `SELECT COUNT(*) FROM guards`)
}

func (r *DirectoryRepo) count(ctx context.Context, op, query string) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return total, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
