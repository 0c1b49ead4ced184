package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
)

// Subscriber receives the full, ordered incident snapshot after every
// append. Delivery is synchronous: by the time a subscriber runs, List
// already reflects the mutation.
type Subscriber func(incidents []domain.Incident)

// IncidentStore is the authoritative ordered collection of incidents for the
// session. Append-only: no update, no delete, no search. Insertion order is
// the canonical order for "most recent" views (most recent = highest index).
type IncidentStore struct {
	mu          sync.Mutex
	incidents   []domain.Incident
	subscribers []Subscriber
}

func NewIncidentStore() *IncidentStore {
	return &IncidentStore{}
}

// Subscribe registers a change-notification callback. Not safe to call
// concurrently with Append; wiring happens once at startup.
func (s *IncidentStore) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Append inserts at the end of the sequence and synchronously notifies every
// subscriber, exactly once, with a snapshot that does not alias future
// mutations.
func (s *IncidentStore) Append(inc domain.Incident) {
	s.mu.Lock()
	s.incidents = append(s.incidents, inc)
	snapshot := s.snapshotLocked()
	subs := s.subscribers
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// List returns a snapshot copy in insertion order.
func (s *IncidentStore) List() []domain.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Len returns the current sequence length.
func (s *IncidentStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.incidents)
}

func (s *IncidentStore) snapshotLocked() []domain.Incident {
	out := make([]domain.Incident, len(s.incidents))
	copy(out, s.incidents)
	return out
}

// SeedDemo loads the two demo incidents the original dashboard ships with.
// Seeding bypasses notification: it runs before any subscriber is wired.
func (s *IncidentStore) SeedDemo(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents = append(s.incidents,
		domain.Incident{
			ID:          uuid.New(),
			Position:    domain.Coordinate{Lat: 37.7749, Lng: -122.4194},
			Type:        "Accident",
			Description: "Minor collision at Main St & Oak Ave",
			Location:    "Main St & Oak Ave, San Francisco",
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		domain.Incident{
			ID:          uuid.New(),
			Position:    domain.Coordinate{Lat: 37.7799, Lng: -122.4294},
			Type:        "Construction",
			Description: "Roadwork on Market St",
			Location:    "Market St, San Francisco",
			CreatedAt:   now.Add(-6 * time.Hour),
		},
	)
}
