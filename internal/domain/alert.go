package domain

// IncidentAlert is a derived, non-persisted row: the incident plus whether it
// lies within the alert radius of the user's last known location. DistanceM
// is nil when no user location is known.
type IncidentAlert struct {
	Incident  Incident         `json:"incident"`
	Category  IncidentCategory `json:"category"`
	DistanceM *float64         `json:"distance_m,omitempty"`
	Near      bool             `json:"near"`
}

type AlertsResponse struct {
	Alerts      []IncidentAlert `json:"alerts"`
	HasLocation bool            `json:"has_location"`
}
