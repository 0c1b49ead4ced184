package workers

import (
	"context"
	"sync"
	"time"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
	"github.com/Iush-Yadav/SafeStreet/internal/geo"
	"github.com/Iush-Yadav/SafeStreet/pkg/e"
)

type IncidentLister interface {
	List() []domain.Incident
}

type UserLocator interface {
	Get() (domain.Coordinate, bool)
}

type CheckJob struct {
	ResultChan chan<- domain.AlertsResponse
	Timeout    time.Duration
}

// ProximityChecker evaluates alert rows for every incident against the last
// known user location on a fixed-size worker pool, so bursts of alert
// queries never block the serving path.
type ProximityChecker struct {
	incidents IncidentLister
	locator   UserLocator
	radiusM   float64
	jobs      chan CheckJob
	poolSize  int
}

func NewProximityChecker(incidents IncidentLister, locator UserLocator, radiusM float64, poolSize int) *ProximityChecker {
	if radiusM <= 0 {
		radiusM = geo.DefaultAlertRadiusM
	}
	return &ProximityChecker{
		incidents: incidents,
		locator:   locator,
		radiusM:   radiusM,
		jobs:      make(chan CheckJob, 100),
		poolSize:  poolSize,
	}
}

func (w *ProximityChecker) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.worker(ctx)
		}()
	}
	wg.Wait()
}

// Check enqueues an evaluation job and waits for its result.
func (w *ProximityChecker) Check(ctx context.Context) (domain.AlertsResponse, error) {
	result := make(chan domain.AlertsResponse, 1)
	job := CheckJob{ResultChan: result, Timeout: 2 * time.Second}

	select {
	case w.jobs <- job:
	case <-ctx.Done():
		return domain.AlertsResponse{}, e.WrapError("proximity check enqueue", ctx.Err())
	}

	select {
	case resp, ok := <-result:
		if !ok {
			return domain.AlertsResponse{}, e.Wrap("proximity check dropped", e.ErrInternal)
		}
		return resp, nil
	case <-ctx.Done():
		return domain.AlertsResponse{}, e.WrapError("proximity check wait", ctx.Err())
	}
}

func (w *ProximityChecker) worker(ctx context.Context) {
	for {
		select {
		case job := <-w.jobs:
			w.processJob(ctx, job)
		case <-ctx.Done():
			return
		}
	}
}

func (w *ProximityChecker) processJob(ctx context.Context, job CheckJob) {
	resp := w.evaluate()

	select {
	case job.ResultChan <- resp:
	case <-time.After(job.Timeout):
	case <-ctx.Done():
	}
	close(job.ResultChan)
}

// evaluate computes one alert row per incident. Without a user location every
// row answers "not near" and carries no distance.
func (w *ProximityChecker) evaluate() domain.AlertsResponse {
	incidents := w.incidents.List()

	var user *domain.Coordinate
	if coord, ok := w.locator.Get(); ok {
		user = &coord
	}

	alerts := make([]domain.IncidentAlert, 0, len(incidents))
	for _, inc := range incidents {
		row := domain.IncidentAlert{
			Incident: inc,
			Category: inc.Category(),
			Near:     geo.IsNear(user, inc.Position, w.radiusM),
		}
		if user != nil {
			d := geo.Distance(*user, inc.Position)
			row.DistanceM = &d
		}
		alerts = append(alerts, row)
	}

	return domain.AlertsResponse{Alerts: alerts, HasLocation: user != nil}
}
