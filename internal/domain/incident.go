package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Coordinate struct {
	Lat float64 `json:"lat" validate:"lat"` // -90..90
	Lng float64 `json:"lng" validate:"lng"` // -180..180
}

type IncidentCategory string

const (
	CategoryAccident     IncidentCategory = "accident"
	CategoryConstruction IncidentCategory = "construction"
	CategoryHazard       IncidentCategory = "hazard"
	CategoryDefault      IncidentCategory = "default"
)

// Incident is immutable once created; the store owns the canonical order.
type Incident struct {
	ID          uuid.UUID  `json:"id"`
	Position    Coordinate `json:"position"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Location    string     `json:"location,omitempty"` // original address text, kept after geocoding
	CreatedAt   time.Time  `json:"created_at"`
}

// Category derives the visual bucket by case-insensitive substring match;
// the type label itself is free text, not a closed enum.
func (i Incident) Category() IncidentCategory {
	t := strings.ToLower(i.Type)
	switch {
	case strings.Contains(t, "accident"):
		return CategoryAccident
	case strings.Contains(t, "construction"):
		return CategoryConstruction
	case strings.Contains(t, "hazard"):
		return CategoryHazard
	default:
		return CategoryDefault
	}
}
