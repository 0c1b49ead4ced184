package service

import (
	"context"
	"log/slog"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
)

// ProximityChecker is the worker pool that evaluates alert rows.
type ProximityChecker interface {
	Check(ctx context.Context) (domain.AlertsResponse, error)
}

type alertService struct {
	checker ProximityChecker
	logger  *slog.Logger
}

func NewAlertService(checker ProximityChecker, logger *slog.Logger) AlertService {
	return &alertService{checker: checker, logger: logger}
}

func (s *alertService) Nearby(ctx context.Context) (domain.AlertsResponse, error) {
	resp, err := s.checker.Check(ctx)
	if err != nil {
		s.logger.Error("proximity check failed", slog.Any("error", err))
		return domain.AlertsResponse{}, err
	}

	near := 0
	for _, a := range resp.Alerts {
		if a.Near {
			near++
		}
	}
	s.logger.Debug("proximity check done",
		slog.Int("total", len(resp.Alerts)),
		slog.Int("near", near),
		slog.Bool("has_location", resp.HasLocation),
	)
	return resp, nil
}
