package report

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
	"github.com/Iush-Yadav/SafeStreet/pkg/e"
	"github.com/Iush-Yadav/SafeStreet/pkg/validator"
)

type State string

const (
	StateIdle      State = "idle"
	StateEditing   State = "editing"
	StateResolving State = "resolving"
	StateFailed    State = "failed"
)

// Resolver is the geocoding dependency: one external lookup per call.
type Resolver interface {
	Resolve(ctx context.Context, address string) (domain.Coordinate, error)
}

// UserLocator yields the last known user location, if any.
type UserLocator interface {
	Get() (domain.Coordinate, bool)
}

// Appender is the store side of a successful commit.
type Appender interface {
	Append(inc domain.Incident)
}

// Flow orchestrates the multi-step incident submission workflow:
// Idle -> Editing -> Resolving -> {Committed | Failed}. An incident is only
// ever created after a successful address resolution or an explicit
// fallback-position decision; a failed resolution commits nothing.
type Flow struct {
	logger   *slog.Logger
	geocoder Resolver
	locator  UserLocator
	store    Appender

	mu        sync.Mutex
	state     State
	draft     domain.ReportDraft
	gen       uint64 // draft generation, guards against stale resolve results
	lastErr   error
	mapCenter domain.Coordinate
}

func NewFlow(geocoder Resolver, locator UserLocator, store Appender, defaultCenter domain.Coordinate, logger *slog.Logger) *Flow {
	return &Flow{
		logger:    logger,
		geocoder:  geocoder,
		locator:   locator,
		store:     store,
		state:     StateIdle,
		mapCenter: defaultCenter,
	}
}

// Open starts a new draft. Calling it while Editing or Resolving is a no-op;
// from Failed it returns to Editing keeping the draft so the user can correct
// the address.
func (f *Flow) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateEditing, StateResolving:
		return
	case StateFailed:
		f.state = StateEditing
		f.lastErr = nil
	default:
		f.state = StateEditing
		f.draft = domain.ReportDraft{}
		f.gen++
	}
	f.logger.Debug("report form opened", slog.String("state", string(f.state)))
}

// Edit replaces the draft contents. From Failed it clears the surfaced error
// and returns to Editing; while Resolving edits are rejected; with no open
// draft it fails, since opening goes through the control surface.
func (f *Flow) Edit(draft domain.ReportDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateIdle:
		return e.ErrNoDraft
	case StateResolving:
		return e.ErrSubmitInFlight
	case StateFailed:
		f.state = StateEditing
		f.lastErr = nil
	}
	f.draft = draft
	return nil
}

// Submit runs the submission workflow for the current draft. On success the
// incident is appended to the store and the flow resets to Idle; a geocode
// failure moves to Failed with the draft retained.
func (f *Flow) Submit(ctx context.Context) (uuid.UUID, error) {
	f.mu.Lock()

	switch f.state {
	case StateIdle:
		f.mu.Unlock()
		return uuid.Nil, e.ErrNoDraft
	case StateResolving:
		f.mu.Unlock()
		return uuid.Nil, e.ErrSubmitInFlight
	case StateFailed:
		// explicit retry of the retained draft
		f.state = StateEditing
		f.lastErr = nil
	}

	draft := f.draft
	if err := validator.ValidateStruct(draft); err != nil {
		f.mu.Unlock()
		return uuid.Nil, e.Wrap(err.Error(), e.ErrInvalidInput)
	}

	address := strings.TrimSpace(draft.Location)
	if address == "" {
		pos := f.fallbackPositionLocked()
		inc := f.commitLocked(draft, pos)
		f.mu.Unlock()
		f.append(inc)
		return inc.ID, nil
	}

	f.state = StateResolving
	gen := f.gen
	f.mu.Unlock()

	// Suspension point: the lookup runs outside the lock so the rest of the
	// system stays responsive. The result is discarded unless the flow is
	// still resolving this same draft generation.
	pos, err := f.geocoder.Resolve(ctx, address)

	f.mu.Lock()
	if f.state != StateResolving || f.gen != gen {
		f.mu.Unlock()
		f.logger.Warn("discarding stale geocode result", slog.String("address", address))
		return uuid.Nil, e.ErrCanceled
	}

	if err != nil {
		f.state = StateFailed
		f.lastErr = err
		f.mu.Unlock()
		f.logger.Info("report submission failed",
			slog.String("address", address),
			slog.String("error", err.Error()))
		return uuid.Nil, err
	}

	inc := f.commitLocked(draft, pos)
	f.mu.Unlock()
	f.append(inc)
	return inc.ID, nil
}

// Cancel discards the draft from Editing or Failed and returns to Idle with
// no side effects. While Resolving the draft generation is bumped so the
// in-flight lookup's result gets discarded when it lands.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateIdle {
		return
	}
	f.state = StateIdle
	f.draft = domain.ReportDraft{}
	f.lastErr = nil
	f.gen++
}

// Snapshot returns the current state and any surfaced error message.
func (f *Flow) Snapshot() (State, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := ""
	if f.lastErr != nil {
		msg = f.lastErr.Error()
	}
	return f.state, msg
}

// Recenter overwrites the map center, either from the resolved user location
// or from an explicit jump.
func (f *Flow) Recenter(c domain.Coordinate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mapCenter = c
}

// MapCenter returns the map's current center coordinate.
func (f *Flow) MapCenter() domain.Coordinate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mapCenter
}

func (f *Flow) fallbackPositionLocked() domain.Coordinate {
	if coord, ok := f.locator.Get(); ok {
		return coord
	}
	return f.mapCenter
}

// commitLocked builds the incident and resets the flow to Idle. The caller
// appends to the store after releasing the lock; by then the commit decision
// is final, so the store's synchronous subscriber fan-out never re-enters a
// flow in a transient state.
func (f *Flow) commitLocked(draft domain.ReportDraft, pos domain.Coordinate) domain.Incident {
	inc := domain.Incident{
		ID:          uuid.New(),
		Position:    pos,
		Type:        draft.Type,
		Description: draft.Description,
		Location:    draft.Location,
		CreatedAt:   time.Now().UTC(),
	}

	f.state = StateIdle
	f.draft = domain.ReportDraft{}
	f.lastErr = nil
	f.gen++

	return inc
}

func (f *Flow) append(inc domain.Incident) {
	f.store.Append(inc)

	f.logger.Info("incident committed",
		slog.String("id", inc.ID.String()),
		slog.String("type", inc.Type),
		slog.Float64("lat", inc.Position.Lat),
		slog.Float64("lng", inc.Position.Lng))
}
