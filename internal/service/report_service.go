package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
	"github.com/Iush-Yadav/SafeStreet/internal/report"
)

type reportService struct {
	flow    *report.Flow
	surface *report.ControlSurface
}

func NewReportService(flow *report.Flow, surface *report.ControlSurface) ReportService {
	return &reportService{flow: flow, surface: surface}
}

func (s *reportService) OpenForm() {
	s.surface.OpenSubmissionForm()
}

// SubmitReport replaces the draft contents and runs the submission workflow.
func (s *reportService) SubmitReport(ctx context.Context, draft domain.ReportDraft) (uuid.UUID, error) {
	if err := s.flow.Edit(draft); err != nil {
		return uuid.Nil, err
	}
	return s.flow.Submit(ctx)
}

func (s *reportService) CancelReport() {
	s.flow.Cancel()
}

func (s *reportService) FlowState() (string, string) {
	state, errMsg := s.flow.Snapshot()
	return string(state), errMsg
}
