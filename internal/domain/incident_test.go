package domain_test

import (
	"testing"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
)

func TestIncident_Category(t *testing.T) {
	t.Parallel()

	cases := []struct {
		typ  string
		want domain.IncidentCategory
	}{
		{"Accident", domain.CategoryAccident},
		{"minor ACCIDENT on 5th", domain.CategoryAccident},
		{"Construction", domain.CategoryConstruction},
		{"road construction zone", domain.CategoryConstruction},
		{"Hazard", domain.CategoryHazard},
		{"ice hazard ahead", domain.CategoryHazard},
		{"Pothole", domain.CategoryDefault},
		{"", domain.CategoryDefault},
	}

	for _, tc := range cases {
		inc := domain.Incident{Type: tc.typ}
		if got := inc.Category(); got != tc.want {
			t.Errorf("Category(%q) = %v, want %v", tc.typ, got, tc.want)
		}
	}
}
