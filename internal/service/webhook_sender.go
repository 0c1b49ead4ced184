package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Iush-Yadav/SafeStreet/internal/config"
	"github.com/Iush-Yadav/SafeStreet/internal/domain"
	"github.com/Iush-Yadav/SafeStreet/pkg/e"
)

// SnapshotDequeuer is the consuming side of the snapshot queue.
type SnapshotDequeuer interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.SnapshotPayload, error)
}

// WebhookSender drains the snapshot queue and delivers each change
// notification to the dashboard collaborator's webhook URL.
type WebhookSender struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	queue  SnapshotDequeuer
	http   *http.Client
}

func NewWebhookSender(logger *slog.Logger, cfg config.WebhookConfig, q SnapshotDequeuer) *WebhookSender {
	return &WebhookSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *WebhookSender) Run(ctx context.Context) {
	s.logger.Info("webhook sender started", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("webhook sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("snapshot dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending incidents snapshot", slog.Int("count", payload.Count))
		s.sendWithRetry(ctx, payload)
	}
}

func (s *WebhookSender) sendWithRetry(ctx context.Context, p domain.SnapshotPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal snapshot payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create webhook request failed", slog.String("error", err.Error()))
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

		s.logger.Warn("webhook delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
