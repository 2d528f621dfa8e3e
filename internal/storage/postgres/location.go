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

type LocationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLocationRepo(pool *pgxpool.Pool, logger *slog.Logger) *LocationRepo {
	return &LocationRepo{pool: pool, logger: logger}
}

const locationColumns = `
	id,
	qr_id,
	supervisor_id,
	location_name,
	ST_Y(geo_point::geometry) AS lat,
	ST_X(geo_point::geometry) AS lng,
	address,
	area_city,
	area_state,
	area_country,
	is_active,
	created_at
`

func (r *LocationRepo) Create(ctx context.Context, loc *domain.QRLocation) error {
	const op = "postgres.Location.Create"

	if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO qr_locations
			(id, qr_id, supervisor_id, location_name, geo_point, address,
			 area_city, area_state, area_country, is_active, created_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9, $10, $11, $12)
	`

	if loc.ID == uuid.Nil {
		loc.ID = uuid.New()
	}
	if loc.CreatedAt.IsZero() {
		loc.CreatedAt = time.Now().UTC()
	}
	loc.IsActive = true

	_, err := r.pool.Exec(ctx, query,
		loc.ID,
		loc.QRID,
		loc.SupervisorID,
		loc.LocationName,
		loc.Lng,
		loc.Lat,
		loc.Address,
		loc.AreaCity,
		loc.AreaState,
		loc.AreaCountry,
		loc.IsActive,
		loc.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *LocationRepo) ResolveActive(ctx context.Context, qrID string, supervisorID uuid.UUID) (*domain.QRLocation, error) {
	const op = "postgres.Location.ResolveActive"

	query := `SELECT ` + locationColumns + `
		FROM qr_locations
		WHERE qr_id = $1 AND supervisor_id = $2 AND is_active = true`

	return r.scanOne(ctx, op, query, qrID, supervisorID)
}

func (r *LocationRepo) GetActiveByQRID(ctx context.Context, qrID string) (*domain.QRLocation, error) {
	const op = "postgres.Location.GetActiveByQRID"

	query := `SELECT ` + locationColumns + `
		FROM qr_locations
		WHERE qr_id = $1 AND is_active = true`

	return r.scanOne(ctx, op, query, qrID)
}

func (r *LocationRepo) scanOne(ctx context.Context, op, query string, args ...any) (*domain.QRLocation, error) {
	var loc domain.QRLocation
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&loc.ID,
		&loc.QRID,
		&loc.SupervisorID,
		&loc.LocationName,
		&loc.Lat,
		&loc.Lng,
		&loc.Address,
		&loc.AreaCity,
		&loc.AreaState,
		&loc.AreaCountry,
		&loc.IsActive,
		&loc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &loc, nil
}

func (r *LocationRepo) ListBySupervisor(ctx context.Context, supervisorID uuid.UUID, activeOnly bool, limit, offset int) ([]domain.QRLocation, int64, error) {
	const op = "postgres.Location.ListBySupervisor"

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	countQuery := `SELECT COUNT(*) FROM qr_locations WHERE supervisor_id = $1`
	listQuery := `SELECT ` + locationColumns + ` FROM qr_locations WHERE supervisor_id = $1`
	if activeOnly {
		countQuery += ` AND is_active = true`
		listQuery += ` AND is_active = true`
	}
	listQuery += ` ORDER BY location_name ASC LIMIT $2 OFFSET $3`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, supervisorID).Scan(&total); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	rows, err := r.pool.Query(ctx, listQuery, supervisorID, limit, offset)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	locations, err := r.collect(rows)
	if err != nil {
		r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return locations, total, nil
}

func (r *LocationRepo) ListActive(ctx context.Context, supervisorID uuid.UUID) ([]domain.QRLocation, error) {
	const op = "postgres.Location.ListActive"

	query := `SELECT ` + locationColumns + `
		FROM qr_locations
		WHERE supervisor_id = $1 AND is_active = true
		ORDER BY location_name ASC`

	rows, err := r.pool.Query(ctx, query, supervisorID)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	locations, err := r.collect(rows)
	if err != nil {
		r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return locations, nil
}

func (r *LocationRepo) CountActive(ctx context.Context, supervisorID uuid.UUID) (int64, error) {
	const op = "postgres.Location.CountActive"

	const query = `SELECT COUNT(*) FROM qr_locations WHERE supervisor_id = $1 AND is_active = true`

	var total int64
	if err := r.pool.QueryRow(ctx, query, supervisorID).Scan(&total); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return total, nil
}

func (r *LocationRepo) Deactivate(ctx context.Context, qrID string, supervisorID uuid.UUID) error {
	const op = "postgres.Location.Deactivate"

	const query = `
		UPDATE qr_locations
		SET is_active = false
		WHERE qr_id = $1 AND supervisor_id = $2 AND is_active = true
	`

	cmd, err := r.pool.Exec(ctx, query, qrID, supervisorID)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("qr_id", qrID))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (r *LocationRepo) ActiveSupervisorIDs(ctx context.Context) ([]uuid.UUID, error) {
	const op = "postgres.Location.ActiveSupervisorIDs"

	const query = `SELECT DISTINCT supervisor_id FROM qr_locations WHERE is_active = true`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, 8)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return ids, nil
}

func (r *LocationRepo) collect(rows pgx.Rows) ([]domain.QRLocation, error) {
	var locations []domain.QRLocation
	for rows.Next() {
		var loc domain.QRLocation
		if err := rows.Scan(
			&loc.ID,
			&loc.QRID,
			&loc.SupervisorID,
			&loc.LocationName,
			&loc.Lat,
			&loc.Lng,
			&loc.Address,
			&loc.AreaCity,
			&loc.AreaState,
			&loc.AreaCountry,
			&loc.IsActive,
			&loc.CreatedAt,
		); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}
