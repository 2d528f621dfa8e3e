package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"qrpatrol/internal/domain"
	"qrpatrol/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScanRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewScanRepo(pool *pgxpool.Pool, logger *slog.Logger) *ScanRepo {
	return &ScanRepo{pool: pool, logger: logger}
}

func (r *ScanRepo) Insert(ctx context.Context, event *domain.ScanEvent) error {
	const op = "postgres.Scan.Insert"

	if event == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if event.GuardID == uuid.Nil || event.QRLocationID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if event.Lat < -90 || event.Lat > 90 || event.Lng < -180 || event.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO scan_events
			(id, guard_id, supervisor_id, qr_location_id, qr_id, location_name,
			 lat, lng, address, area_city, area_state, area_country,
			 is_within_radius, distance_from_qr, scanned_at, notes, device_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.ScannedAt.IsZero() {
		event.ScannedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.GuardID,
		event.SupervisorID,
		event.QRLocationID,
		event.QRID,
		event.LocationName,
		event.Lat,
		event.Lng,
		event.Address,
		event.AreaCity,
		event.AreaState,
		event.AreaCountry,
		event.IsWithinRadius,
		event.DistanceFromQR,
		event.ScannedAt,
		event.Notes,
		event.DeviceInfo,
	)
	if err != nil {
		r.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("guard_id", event.GuardID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *ScanRepo) History(ctx context.Context, guardID uuid.UUID, req domain.ScanHistoryRequest) ([]domain.ScanEvent, error) {
	const op = "postgres.Scan.History"

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, guard_id, supervisor_id, qr_location_id, qr_id, location_name,
		       lat, lng, address, area_city, area_state, area_country,
		       is_within_radius, distance_from_qr, scanned_at, notes
		FROM scan_events
		WHERE guard_id = $1`
	args := []any{guardID}

	if req.From != nil {
		args = append(args, *req.From)
		query += fmt.Sprintf(" AND scanned_at >= $%d", len(args))
	}
	if req.To != nil {
		args = append(args, *req.To)
		query += fmt.Sprintf(" AND scanned_at <= $%d", len(args))
	}
	if req.QRID != "" {
		args = append(args, req.QRID)
		query += fmt.Sprintf(" AND qr_id = $%d", len(args))
	}
	if req.WithinRadiusOnly != nil {
		args = append(args, *req.WithinRadiusOnly)
		query += fmt.Sprintf(" AND is_within_radius = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY scanned_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var events []domain.ScanEvent
	for rows.Next() {
		var ev domain.ScanEvent
		if err := rows.Scan(
			&ev.ID, &ev.GuardID, &ev.SupervisorID, &ev.QRLocationID, &ev.QRID, &ev.LocationName,
			&ev.Lat, &ev.Lng, &ev.Address, &ev.AreaCity, &ev.AreaState, &ev.AreaCountry,
			&ev.IsWithinRadius, &ev.DistanceFromQR, &ev.ScannedAt, &ev.Notes,
		); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return events, nil
}

func (r *ScanRepo) Recent(ctx context.Context, guardID uuid.UUID, limit int) ([]domain.ScanSummary, error) {
	const op = "postgres.Scan.Recent"

	if limit <= 0 || limit > 100 {
		limit = 10
	}

	const query = `
		SELECT id, qr_id, location_name, scanned_at, is_within_radius, distance_from_qr
		FROM scan_events
		WHERE guard_id = $1
		ORDER BY scanned_at DESC
		LIMIT $2
	`

	return r.summaries(ctx, op, query, guardID, limit)
}

func (r *ScanRepo) ListForRange(ctx context.Context, guardID uuid.UUID, from, to time.Time) ([]domain.ScanSummary, error) {
	const op = "postgres.Scan.ListForRange"

	const query = `
		SELECT id, qr_id, location_name, scanned_at, is_within_radius, distance_from_qr
		FROM scan_events
		WHERE guard_id = $1 AND scanned_at >= $2 AND scanned_at < $3
		ORDER BY scanned_at ASC
	`

	return r.summaries(ctx, op, query, guardID, from, to)
}

func (r *ScanRepo) summaries(ctx context.Context, op, query string, args ...any) ([]domain.ScanSummary, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var scans []domain.ScanSummary
	for rows.Next() {
		var s domain.ScanSummary
		if err := rows.Scan(&s.ID, &s.QRID, &s.LocationName, &s.ScannedAt, &s.IsWithinRadius, &s.DistanceFromQR); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		scans = append(scans, s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return scans, nil
}

func (r *ScanRepo) CountSince(ctx context.Context, guardID uuid.UUID, since time.Time) (int64, error) {
	const op = "postgres.Scan.CountSince"
	return r.count(ctx, op,
		`SELECT COUNT(*) FROM scan_events WHERE guard_id = $1 AND scanned_at >= $2`,
		guardID, since)
}

func (r *ScanRepo) CountTotal(ctx context.Context, guardID uuid.UUID) (int64, error) {
	const op = "postgres.Scan.CountTotal"
	return r.count(ctx, op,
		`SELECT COUNT(*) FROM scan_events WHERE guard_id = $1`,
		guardID)
}

func (r *ScanRepo) CountWithinRadius(ctx context.Context, guardID uuid.UUID) (int64, error) {
	const op = "postgres.Scan.CountWithinRadius"
	return r.count(ctx, op,
		`SELECT COUNT(*) FROM scan_events WHERE guard_id = $1 AND is_within_radius = true`,
		guardID)
}

func (r *ScanRepo) CountAllSince(ctx context.Context, since time.Time) (int64, error) {
	const op = "postgres.Scan.CountAllSince"
	return r.count(ctx, op,
		`SELECT COUNT(*) FROM scan_events WHERE scanned_at >= $1`,
		since)
}

func (r *ScanRepo) count(ctx context.Context, op, query string, args ...any) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return total, nil
}

func (r *ScanRepo) AreaReport(ctx context.Context, req domain.AreaReportRequest) ([]domain.AreaReportRow, error) {
	const op = "postgres.Scan.AreaReport"

	query := `
		SELECT u.name, u.email, s.area_city, s.location_name, s.scanned_at,
		       s.lat, s.lng, s.address, s.is_within_radius, s.distance_from_qr
		FROM scan_events s
		JOIN guards g ON g.id = s.guard_id
		JOIN users u ON u.id = g.user_id
		WHERE s.scanned_at >= $1 AND s.scanned_at <= $2`
	args := []any{req.StartDate, req.EndDate}

	if req.AreaCity != "" {
		args = append(args, "%"+req.AreaCity+"%")
		query += fmt.Sprintf(" AND s.area_city ILIKE $%d", len(args))
	}
	query += " ORDER BY s.scanned_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	report, err := collectReportRows(rows)
	if err != nil {
		r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return report, nil
}

func collectReportRows(rows pgx.Rows) ([]domain.AreaReportRow, error) {
	var report []domain.AreaReportRow
	for rows.Next() {
		var row domain.AreaReportRow
		if err := rows.Scan(
			&row.GuardName, &row.GuardEmail, &row.AreaCity, &row.LocationName, &row.ScannedAt,
			&row.Lat, &row.Lng, &row.Address, &row.IsWithinRadius, &row.DistanceFromQR,
		); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
