package report_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
	"github.com/Iush-Yadav/SafeStreet/internal/report"
	"github.com/Iush-Yadav/SafeStreet/internal/store"
	"github.com/Iush-Yadav/SafeStreet/pkg/e"
)

var defaultCenter = domain.Coordinate{Lat: 37.7749, Lng: -122.4194}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeGeocoder struct {
	calls   int
	resolve func(ctx context.Context, address string) (domain.Coordinate, error)
}

func (f *fakeGeocoder) Resolve(ctx context.Context, address string) (domain.Coordinate, error) {
	f.calls++
	return f.resolve(ctx, address)
}

type fakeLocator struct {
	coord domain.Coordinate
	known bool
}

func (f *fakeLocator) Get() (domain.Coordinate, bool) {
	return f.coord, f.known
}

func newFlow(geocoder *fakeGeocoder, locator *fakeLocator) (*report.Flow, *store.IncidentStore) {
	s := store.NewIncidentStore()
	f := report.NewFlow(geocoder, locator, s, defaultCenter, newTestLogger())
	return f, s
}

func TestSubmit_WithoutOpenDraft(t *testing.T) {
	t.Parallel()

	g := &fakeGeocoder{resolve: func(ctx context.Context, _ string) (domain.Coordinate, error) {
		return domain.Coordinate{}, nil
	}}
	f, s := newFlow(g, &fakeLocator{})

	_, err := f.Submit(context.Background())
	if !errors.Is(err, e.ErrNoDraft) {
		t.Fatalf("expected ErrNoDraft, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("store mutated without draft")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	t.Parallel()

	g := &fakeGeocoder{}
	f, _ := newFlow(g, &fakeLocator{})
	surface := report.NewControlSurface(f)

	surface.OpenSubmissionForm()
	if err := f.Edit(domain.ReportDraft{Type: "Hazard", Description: "Oil spill"}); err != nil {
		t.Fatalf("edit after open: %v", err)
	}

	// second open while editing is a no-op: the draft survives
	surface.OpenSubmissionForm()

	state, _ := f.Snapshot()
	if state != report.StateEditing {
		t.Fatalf("state = %v, want editing", state)
	}

	locator := &fakeLocator{coord: domain.Coordinate{Lat: 1, Lng: 2}, known: true}
	f2, s2 := newFlow(g, locator)
	report.NewControlSurface(f2).OpenSubmissionForm()
	if err := f2.Edit(domain.ReportDraft{Type: "Hazard", Description: "Oil spill"}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if _, err := f2.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s2.Len() != 1 {
		t.Fatalf("expected 1 incident after open+edit+submit")
	}
}

func TestSubmit_EmptyLocation_UsesUserLocation(t *testing.T) {
	t.Parallel()

	g := &fakeGeocoder{resolve: func(ctx context.Context, _ string) (domain.Coordinate, error) {
		t.Fatal("geocoder must not be invoked for empty location")
		return domain.Coordinate{}, nil
	}}
	user := domain.Coordinate{Lat: 37.7750, Lng: -122.4195}
	f, s := newFlow(g, &fakeLocator{coord: user, known: true})

	f.Open()
	if err := f.Edit(domain.ReportDraft{Type: "Accident", Description: "Fender bender"}); err != nil {
		t.Fatalf("edit: %v", err)
	}

	id, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	got := s.List()
	if len(got) != 1 {
		t.Fatalf("expected 1 incident, got %d", len(got))
	}
	if got[0].ID != id {
		t.Fatalf("returned id does not match stored incident")
	}
	if got[0].Position != user {
		t.Fatalf("position = %+v, want user location %+v", got[0].Position, user)
	}
	if g.calls != 0 {
		t.Fatalf("geocoder invoked %d times", g.calls)
	}

	state, _ := f.Snapshot()
	if state != report.StateIdle {
		t.Fatalf("state after commit = %v, want idle", state)
	}
}

func TestSubmit_EmptyLocation_FallsBackToMapCenter(t *testing.T) {
	t.Parallel()

	g := &fakeGeocoder{resolve: func(ctx context.Context, _ string) (domain.Coordinate, error) {
		return domain.Coordinate{}, nil
	}}
	f, s := newFlow(g, &fakeLocator{}) // no user location ever

	f.Open()
	if err := f.Edit(domain.ReportDraft{Type: "Construction", Description: "Roadwork"}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	got := s.List()
	if got[0].Position != defaultCenter {
		t.Fatalf("position = %+v, want map center %+v", got[0].Position, defaultCenter)
	}
}

func TestSubmit_EmptyLocation_UsesRecenteredMapCenter(t *testing.T) {
	t.Parallel()

	g := &fakeGeocoder{}
	f, s := newFlow(g, &fakeLocator{})

	moved := domain.Coordinate{Lat: 40.7128, Lng: -74.0060}
	f.Recenter(moved)
	if f.MapCenter() != moved {
		t.Fatalf("map center not updated")
	}

	f.Open()
	_ = f.Edit(domain.ReportDraft{Type: "Hazard", Description: "Debris"})
	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.List()[0].Position != moved {
		t.Fatalf("position = %+v, want recentered %+v", s.List()[0].Position, moved)
	}
}

func TestSubmit_AddressResolves_AppendsResolvedPosition(t *testing.T) {
	t.Parallel()

	resolved := domain.Coordinate{Lat: 37.7799, Lng: -122.4294}
	g := &fakeGeocoder{resolve: func(ctx context.Context, address string) (domain.Coordinate, error) {
		if address != "Market St, San Francisco" {
			t.Errorf("geocoder got trimmed address %q", address)
		}
		return resolved, nil
	}}
	f, s := newFlow(g, &fakeLocator{coord: domain.Coordinate{Lat: 1, Lng: 1}, known: true})

	f.Open()
	draft := domain.ReportDraft{
		Type:        "Construction",
		Description: "Roadwork on Market St",
		Location:    "  Market St, San Francisco  ",
	}
	_ = f.Edit(draft)

	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	got := s.List()
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 incident, got %d", len(got))
	}
	if got[0].Position != resolved {
		t.Fatalf("position = %+v, want resolved %+v", got[0].Position, resolved)
	}
	if got[0].Location != draft.Location {
		t.Fatalf("location text = %q, want original %q", got[0].Location, draft.Location)
	}
	if g.calls != 1 {
		t.Fatalf("geocoder invoked %d times, want 1", g.calls)
	}
}

func TestSubmit_GeocodeNotFound_FailsWithoutCommit(t *testing.T) {
	t.Parallel()

	g := &fakeGeocoder{resolve: func(ctx context.Context, _ string) (domain.Coordinate, error) {
		return domain.Coordinate{}, e.ErrGeocodeNotFound
	}}
	f, s := newFlow(g, &fakeLocator{})

	f.Open()
	_ = f.Edit(domain.ReportDraft{Type: "Accident", Description: "Crash", Location: "__unresolvable__"})

	prior := s.List()
	_, err := f.Submit(context.Background())
	if !errors.Is(err, e.ErrGeocodeNotFound) {
		t.Fatalf("expected ErrGeocodeNotFound, got %v", err)
	}

	if s.Len() != len(prior) {
		t.Fatalf("store changed on failed resolve: %d -> %d", len(prior), s.Len())
	}

	state, msg := f.Snapshot()
	if state != report.StateFailed {
		t.Fatalf("state = %v, want failed", state)
	}
	if msg == "" {
		t.Fatal("expected surfaced error message")
	}
}

func TestSubmit_FailedThenEditClearsError(t *testing.T) {
	t.Parallel()

	fail := true
	resolved := domain.Coordinate{Lat: 5, Lng: 6}
	g := &fakeGeocoder{resolve: func(ctx context.Context, _ string) (domain.Coordinate, error) {
		if fail {
			return domain.Coordinate{}, e.ErrGeocodeNetwork
		}
		return resolved, nil
	}}
	f, s := newFlow(g, &fakeLocator{})

	f.Open()
	_ = f.Edit(domain.ReportDraft{Type: "Hazard", Description: "Flooding", Location: "Mission St"})
	if _, err := f.Submit(context.Background()); !errors.Is(err, e.ErrGeocodeNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}

	// correcting the address returns to editing and drops the message
	fail = false
	if err := f.Edit(domain.ReportDraft{Type: "Hazard", Description: "Flooding", Location: "Mission St, SF"}); err != nil {
		t.Fatalf("edit after failure: %v", err)
	}
	state, msg := f.Snapshot()
	if state != report.StateEditing || msg != "" {
		t.Fatalf("state=%v msg=%q after corrective edit", state, msg)
	}

	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 incident after retry")
	}
}

func TestSubmit_RetryFromFailedWithoutEdit(t *testing.T) {
	t.Parallel()

	attempts := 0
	g := &fakeGeocoder{resolve: func(ctx context.Context, _ string) (domain.Coordinate, error) {
		attempts++
		if attempts == 1 {
			return domain.Coordinate{}, e.ErrGeocodeNetwork
		}
		return domain.Coordinate{Lat: 2, Lng: 3}, nil
	}}
	f, s := newFlow(g, &fakeLocator{})

	f.Open()
	_ = f.Edit(domain.ReportDraft{Type: "Accident", Description: "Crash", Location: "Oak Ave"})
	if _, err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected first submit to fail")
	}

	// explicit retry keeps the retained draft
	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 incident, got %d", s.Len())
	}
}

func TestSubmit_InvalidDraft_StaysEditing(t *testing.T) {
	t.Parallel()

	g := &fakeGeocoder{resolve: func(ctx context.Context, _ string) (domain.Coordinate, error) {
		t.Fatal("geocoder must not run for invalid draft")
		return domain.Coordinate{}, nil
	}}
	f, s := newFlow(g, &fakeLocator{})

	f.Open()
	_ = f.Edit(domain.ReportDraft{Type: "", Description: "", Location: "Main St"})

	_, err := f.Submit(context.Background())
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("invalid draft committed")
	}
	state, _ := f.Snapshot()
	if state != report.StateEditing {
		t.Fatalf("state = %v, want editing", state)
	}
}

func TestCancel_DiscardsDraft(t *testing.T) {
	t.Parallel()

	g := &fakeGeocoder{}
	f, s := newFlow(g, &fakeLocator{})

	f.Open()
	_ = f.Edit(domain.ReportDraft{Type: "Accident", Description: "Crash"})
	f.Cancel()

	state, msg := f.Snapshot()
	if state != report.StateIdle || msg != "" {
		t.Fatalf("state=%v msg=%q after cancel", state, msg)
	}
	if s.Len() != 0 {
		t.Fatal("cancel had side effects")
	}

	// cancel also clears a failed submission
	g.resolve = func(ctx context.Context, _ string) (domain.Coordinate, error) {
		return domain.Coordinate{}, e.ErrGeocodeNotFound
	}
	f.Open()
	_ = f.Edit(domain.ReportDraft{Type: "Accident", Description: "Crash", Location: "nowhere"})
	_, _ = f.Submit(context.Background())
	f.Cancel()

	state, _ = f.Snapshot()
	if state != report.StateIdle {
		t.Fatalf("state = %v after cancel from failed", state)
	}
}

func TestSubmit_SecondSubmitWhileResolving(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	g := &fakeGeocoder{resolve: func(ctx context.Context, _ string) (domain.Coordinate, error) {
		<-release
		return domain.Coordinate{Lat: 1, Lng: 1}, nil
	}}
	f, s := newFlow(g, &fakeLocator{})

	f.Open()
	_ = f.Edit(domain.ReportDraft{Type: "Accident", Description: "Crash", Location: "Main St"})

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()

	waitForState(t, f, report.StateResolving)

	if _, err := f.Submit(context.Background()); !errors.Is(err, e.ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected exactly 1 incident, got %d", s.Len())
	}
}

func TestSubmit_CancelWhileResolving_DiscardsStaleResult(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	g := &fakeGeocoder{resolve: func(ctx context.Context, _ string) (domain.Coordinate, error) {
		<-release
		return domain.Coordinate{Lat: 9, Lng: 9}, nil
	}}
	f, s := newFlow(g, &fakeLocator{})

	f.Open()
	_ = f.Edit(domain.ReportDraft{Type: "Hazard", Description: "Spill", Location: "Pier 39"})

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()

	waitForState(t, f, report.StateResolving)
	f.Cancel()

	// the in-flight lookup still completes; its result must be discarded
	close(release)
	if err := <-done; !errors.Is(err, e.ErrCanceled) {
		t.Fatalf("expected ErrCanceled for stale result, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("stale resolve committed %d incidents", s.Len())
	}
}

func waitForState(t *testing.T, f *report.Flow, want report.State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if state, _ := f.Snapshot(); state == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	state, _ := f.Snapshot()
	t.Fatalf("timed out waiting for state %v, still %v", want, state)
}
