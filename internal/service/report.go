package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"qrpatrol/internal/domain"
	"qrpatrol/pkg/e"
	"qrpatrol/pkg/validator"

	"github.com/google/uuid"
)

const recentScansLimit = 10

type reportService struct {
	logger    *slog.Logger
	events    EventQueries
	locations LocationDirectory
}

func NewReportService(logger *slog.Logger, events EventQueries, locations LocationDirectory) ReportService {
	return &reportService{logger: logger, events: events, locations: locations}
}

func (s *reportService) GuardDashboard(ctx context.Context, actor domain.GuardIdentity) (*domain.GuardDashboard, error) {
	const op = "service.Report.GuardDashboard"

	now := time.Now().UTC()
	today := startOfDay(now)
	weekStart := startOfWeek(now)

	todayScans, err := s.events.CountSince(ctx, actor.GuardID, today)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	weekScans, err := s.events.CountSince(ctx, actor.GuardID, weekStart)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	totalScans, err := s.events.CountTotal(ctx, actor.GuardID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	withinRadius, err := s.events.CountWithinRadius(ctx, actor.GuardID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	available, err := s.locations.CountActive(ctx, actor.SupervisorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	recent, err := s.events.Recent(ctx, actor.GuardID, recentScansLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var lastScan *time.Time
	if len(recent) > 0 {
		t := recent[0].ScannedAt
		lastScan = &t
	}

	return &domain.GuardDashboard{
		Statistics: domain.GuardStatistics{
			TodayScans:           todayScans,
			ThisWeekScans:        weekScans,
			TotalScans:           totalScans,
			WithinRadiusPercent:  percent(withinRadius, totalScans),
			AvailableQRLocations: available,
		},
		RecentScans:  recent,
		LastScanTime: lastScan,
		GuardInfo:    actor,
	}, nil
}

func (s *reportService) ScanHistory(ctx context.Context, guardID uuid.UUID, req domain.ScanHistoryRequest) ([]domain.ScanEvent, error) {
	const op = "service.Report.ScanHistory"

	if req.Limit <= 0 {
		req.Limit = 50
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return nil, fmt.Errorf("%s: to before from: %w", op, e.ErrInvalidInput)
	}

	events, err := s.events.History(ctx, guardID, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return events, nil
}

// PatrolSummary covers one calendar day, UTC.
func (s *reportService) PatrolSummary(ctx context.Context, actor domain.GuardIdentity, date time.Time) (*domain.PatrolSummary, error) {
	const op = "service.Report.PatrolSummary"

	dayStart := startOfDay(date.UTC())
	dayEnd := dayStart.Add(24 * time.Hour)

	scans, err := s.events.ListForRange(ctx, actor.GuardID, dayStart, dayEnd)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	available, err := s.locations.CountActive(ctx, actor.SupervisorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	unique := make(map[string]struct{}, len(scans))
	var within int64
	for _, scan := range scans {
		unique[scan.QRID] = struct{}{}
		if scan.IsWithinRadius {
			within++
		}
	}

	summary := &domain.PatrolSummary{
		Date:                    dayStart.Format("2006-01-02"),
		TotalScans:              len(scans),
		UniqueLocationsScanned:  len(unique),
		TotalAvailableLocations: available,
		CoveragePercent:         percent(int64(len(unique)), available),
		WithinRadiusPercent:     percent(within, int64(len(scans))),
		Scans:                   scans,
	}

	if len(scans) > 0 {
		first := scans[0].ScannedAt
		last := scans[len(scans)-1].ScannedAt
		summary.FirstScanTime = &first
		summary.LastScanTime = &last
	}

	return summary, nil
}

func (s *reportService) AreaReport(ctx context.Context, req domain.AreaReportRequest) ([]domain.AreaReportRow, error) {
	const op = "service.Report.AreaReport"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%s: end before start: %w", op, e.ErrInvalidInput)
	}

	rows, err := s.events.AreaReport(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return rows, nil
}

// startOfWeek returns the most recent Monday midnight.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
