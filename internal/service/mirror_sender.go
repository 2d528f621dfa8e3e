package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"qrpatrol/internal/config"
	"qrpatrol/internal/domain"
	"qrpatrol/internal/redis"
	"qrpatrol/pkg/e"
)

// MirrorSender drains the mirror queue and appends rows to the configured
// spreadsheet endpoint. It runs detached from the scan path; a dead endpoint
// only grows the queue, it never blocks a scan.
type MirrorSender struct {
	logger *slog.Logger
	cfg    config.SheetsConfig
	queue  *redis.MirrorQueue
	http   *http.Client
}

func NewMirrorSender(logger *slog.Logger, cfg config.SheetsConfig, q *redis.MirrorQueue) *MirrorSender {
	return &MirrorSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *MirrorSender) Run(ctx context.Context) {
	if s.cfg.Disabled || s.cfg.AppendURL == "" {
		s.logger.Info("mirrorSender DISABLED")
		return
	}

	s.logger.Info("mirrorSender STARTED", slog.String("url", s.cfg.AppendURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("mirrorSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		row, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrMirrorEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("mirroring scan row",
			slog.String("sheet_id", row.SheetID),
			slog.String("qr_id", row.QRID))
		s.sendWithRetry(ctx, row)
	}
}

func (s *MirrorSender) sendWithRetry(ctx context.Context, row domain.MirrorRow) {
	const maxRetries = 3

	body, err := json.Marshal(row)
	if err != nil {
		s.logger.Error("marshal mirror row failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.AppendURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create mirror request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("mirror append failed",
			slog.Int("attempt", attempt),
			slog.String("sheet_id", row.SheetID),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}

	s.logger.Error("mirror row dropped after retries",
		slog.String("sheet_id", row.SheetID),
		slog.String("qr_id", row.QRID))
}
