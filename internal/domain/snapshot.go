package domain

import "time"

// SnapshotPayload is the outbound change-notification body: the full ordered
// incident collection as of ObservedAt, delivered on every store mutation.
type SnapshotPayload struct {
	Incidents  []Incident `json:"incidents"`
	Count      int        `json:"count"`
	ObservedAt time.Time  `json:"observed_at"`
}
