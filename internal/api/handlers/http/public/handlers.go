package public

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go

// ReportFlow is the submission workflow surface the handlers drive.
type ReportFlow interface {
	OpenForm()
	SubmitReport(ctx context.Context, draft domain.ReportDraft) (uuid.UUID, error)
	CancelReport()
	FlowState() (state string, errMsg string)
}

// AlertReader answers proximity alerts for every incident.
type AlertReader interface {
	Nearby(ctx context.Context) (domain.AlertsResponse, error)
}

// IncidentReader serves the ordered incident collection.
type IncidentReader interface {
	List() []domain.Incident
}

type Handler struct {
	logger    *slog.Logger
	Reports   ReportFlow
	Alerts    AlertReader
	Incidents IncidentReader
}

func NewHandler(logger *slog.Logger, reports ReportFlow, alerts AlertReader, incidents IncidentReader) *Handler {
	return &Handler{
		logger:    logger,
		Reports:   reports,
		Alerts:    alerts,
		Incidents: incidents,
	}
}

func (h *Handler) IncidentList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	incidents := h.Incidents.List()

	l.Debug("incidents listed", slog.Int("count", len(incidents)))
	h.writeJSON(w, http.StatusOK, domain.ListIncidentsResponse{
		Incidents: incidents,
		Total:     len(incidents),
	})
}

func (h *Handler) AlertList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	resp, err := h.Alerts.Nearby(r.Context())
	if err != nil {
		l.Error("alerts query failed", slog.Any("error", err))
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// ReportOpen is the inbound control surface command: idempotent, no body,
// no response payload beyond the resulting flow state.
func (h *Handler) ReportOpen(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	h.Reports.OpenForm()

	state, errMsg := h.Reports.FlowState()
	l.Info("report form open requested", slog.String("state", state))
	h.writeJSON(w, http.StatusOK, domain.FlowStateResponse{State: state, Error: errMsg})
}

func (h *Handler) ReportSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var draft domain.ReportDraft

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&draft); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("report submitted",
		slog.String("type", draft.Type),
		slog.Bool("has_address", draft.Location != ""),
	)

	id, err := h.Reports.SubmitReport(r.Context(), draft)
	if err != nil {
		h.handleError(w, err)
		return
	}

	l.Info("incident created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, domain.SubmitReportResponse{ID: id.String()})
}

func (h *Handler) ReportCancel(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	h.Reports.CancelReport()

	state, _ := h.Reports.FlowState()
	l.Info("report cancelled", slog.String("state", state))
	h.writeJSON(w, http.StatusOK, domain.FlowStateResponse{State: state})
}

func (h *Handler) ReportState(w http.ResponseWriter, r *http.Request) {
	state, errMsg := h.Reports.FlowState()
	h.writeJSON(w, http.StatusOK, domain.FlowStateResponse{State: state, Error: errMsg})
}
