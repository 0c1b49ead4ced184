package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ReportService exposes the submission workflow use-cases. Opening goes
// through the control surface command so external coordinators never touch
// the flow's internal state.
type ReportService interface {
	OpenForm()
	SubmitReport(ctx context.Context, draft domain.ReportDraft) (uuid.UUID, error)
	CancelReport()
	FlowState() (state string, errMsg string)
}

// AlertService answers per-incident proximity alerts against the latest user
// location.
type AlertService interface {
	Nearby(ctx context.Context) (domain.AlertsResponse, error)
}

// IncidentReader serves the ordered incident collection.
type IncidentReader interface {
	List() []domain.Incident
}

type Service struct {
	ReportService  ReportService
	AlertService   AlertService
	IncidentReader IncidentReader
}

func NewService(
	reportService ReportService,
	alertService AlertService,
	incidentReader IncidentReader,
) *Service {
	return &Service{
		ReportService:  reportService,
		AlertService:   alertService,
		IncidentReader: incidentReader,
	}
}
