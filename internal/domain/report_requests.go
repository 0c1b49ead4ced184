package domain

// ReportDraft is the transient form state of an in-progress submission.
// Location is the optional free-text address; empty means "use my position".
type ReportDraft struct {
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"`
}

type SubmitReportResponse struct {
	ID string `json:"id"`
}

type FlowStateResponse struct {
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

type ListIncidentsResponse struct {
	Incidents []Incident `json:"incidents"`
	Total     int        `json:"total"`
}
