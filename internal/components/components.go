package components

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Iush-Yadav/SafeStreet/internal/api"
	"github.com/Iush-Yadav/SafeStreet/internal/config"
	"github.com/Iush-Yadav/SafeStreet/internal/domain"
	"github.com/Iush-Yadav/SafeStreet/internal/geocode"
	"github.com/Iush-Yadav/SafeStreet/internal/location"
	"github.com/Iush-Yadav/SafeStreet/internal/redis"
	"github.com/Iush-Yadav/SafeStreet/internal/report"
	"github.com/Iush-Yadav/SafeStreet/internal/service"
	"github.com/Iush-Yadav/SafeStreet/internal/store"
	"github.com/Iush-Yadav/SafeStreet/internal/workers"
	"github.com/Iush-Yadav/SafeStreet/pkg/logger"
)

type Components struct {
	logger *slog.Logger

	HttpServer *api.Server
	Store      *store.IncidentStore
	Flow       *report.Flow
	Provider   *location.Provider
	Checker    *workers.ProximityChecker
	Redis      *redis.Redis
	Sender     *service.WebhookSender
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	incidents := store.NewIncidentStore()
	if cfg.Map.SeedDemo {
		incidents.SeedDemo(time.Now().UTC())
		log.Info("seeded demo incidents", slog.Int("count", incidents.Len()))
	}

	geocoder := geocode.NewClient(cfg.Geocoder, log)

	var src location.Source
	if cfg.Location.URL != "" {
		src = location.NewHTTPSource(cfg.Location.URL, cfg.Location.Timeout)
	}
	provider := location.NewProvider(src, cfg.Location, log)

	defaultCenter := domain.Coordinate{
		Lat: cfg.Map.DefaultCenterLat,
		Lng: cfg.Map.DefaultCenterLng,
	}
	flow := report.NewFlow(geocoder, provider, incidents, defaultCenter, log)
	surface := report.NewControlSurface(flow)

	checker := workers.NewProximityChecker(incidents, provider, cfg.Map.AlertRadiusM, cfg.Workers.PoolSize)

	comps := &Components{
		logger:   log,
		Store:    incidents,
		Flow:     flow,
		Provider: provider,
		Checker:  checker,
	}

	if !cfg.Webhook.Disabled && cfg.Webhook.URL != "" && cfg.Redis.Addr != "" {
		log.Info("Initializing Redis")
		redisClient, err := redis.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		queue := redis.NewSnapshotQueue(redisClient.Client, "incidents:snapshots")

		incidents.Subscribe(func(snapshot []domain.Incident) {
			payload := domain.SnapshotPayload{
				Incidents:  snapshot,
				Count:      len(snapshot),
				ObservedAt: time.Now().UTC(),
			}
			if err := queue.Enqueue(ctx, payload); err != nil {
				log.Error("snapshot enqueue failed", slog.Any("error", err))
			}
		})

		comps.Redis = redisClient
		comps.Sender = service.NewWebhookSender(log, cfg.Webhook, queue)
	} else {
		log.Info("change-notification webhook disabled")
	}

	reportSvc := service.NewReportService(flow, surface)
	alertSvc := service.NewAlertService(checker, log)

	svc := service.NewService(reportSvc, alertSvc, incidents)

	comps.HttpServer = api.NewServer(cfg, log, svc)
	log.Info("Initialized server")

	return comps, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
