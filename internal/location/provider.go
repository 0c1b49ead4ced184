package location

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Iush-Yadav/SafeStreet/internal/config"
	"github.com/Iush-Yadav/SafeStreet/internal/domain"
)

// Query carries the position-request options through to the source.
type Query struct {
	HighAccuracy bool
}

// Source is anything that can answer a one-shot "current position" request:
// the HTTP position endpoint in production, a stub in tests.
type Source interface {
	CurrentPosition(ctx context.Context, q Query) (domain.Coordinate, error)
}

// Provider performs a single best-effort position acquisition at startup.
// Any failure (timeout, denial, unsupported) is absorbed: the result simply
// stays unknown and proximity features degrade to the map-center fallback.
type Provider struct {
	logger *slog.Logger
	source Source
	cfg    config.LocationConfig

	mu       sync.RWMutex
	resolved bool
	coord    domain.Coordinate
}

func NewProvider(source Source, cfg config.LocationConfig, logger *slog.Logger) *Provider {
	return &Provider{
		logger: logger,
		source: source,
		cfg:    cfg,
	}
}

// Acquire runs the one-shot position query. It is called exactly once at
// subsystem startup and never retried; it returns nothing because failure is
// not an error to surface. onResolve, if non-nil, runs with the coordinate
// before it is published through Get, so the map center is recentered before
// any proximity computation can observe the user location.
func (p *Provider) Acquire(ctx context.Context, onResolve func(domain.Coordinate)) {
	if p.source == nil {
		p.logger.Debug("location source not configured, skipping acquisition")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	coord, err := p.source.CurrentPosition(ctx, Query{HighAccuracy: p.cfg.HighAccuracy})
	if err != nil {
		p.logger.Debug("location acquisition failed, continuing without user location",
			slog.String("error", err.Error()))
		return
	}
	if coord.Lat < -90 || coord.Lat > 90 || coord.Lng < -180 || coord.Lng > 180 {
		p.logger.Debug("location source returned out-of-range coordinate, discarding",
			slog.Float64("lat", coord.Lat),
			slog.Float64("lng", coord.Lng))
		return
	}

	if onResolve != nil {
		onResolve(coord)
	}

	p.mu.Lock()
	p.coord = coord
	p.resolved = true
	p.mu.Unlock()

	p.logger.Info("user location acquired",
		slog.Float64("lat", coord.Lat),
		slog.Float64("lng", coord.Lng))
}

// Get returns the last known user location. ok is false forever if the
// acquisition failed or has not completed yet.
func (p *Provider) Get() (domain.Coordinate, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.coord, p.resolved
}
