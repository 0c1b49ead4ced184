package geocode_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Iush-Yadav/SafeStreet/internal/config"
	"github.com/Iush-Yadav/SafeStreet/internal/geocode"
	"github.com/Iush-Yadav/SafeStreet/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newClient(url string) *geocode.Client {
	return geocode.NewClient(config.GeocoderConfig{
		URL:       url,
		UserAgent: "safestreet-test",
		Timeout:   2 * time.Second,
	}, newTestLogger())
}

func TestResolve_FirstResultWins(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Market St, San Francisco" {
			t.Errorf("unexpected query: %q", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("unexpected format: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"37.7799","lon":"-122.4294"},{"lat":"0","lon":"0"}]`))
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	coord, err := c.Resolve(context.Background(), "Market St, San Francisco")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if coord.Lat != 37.7799 || coord.Lng != -122.4294 {
		t.Fatalf("unexpected coordinate: %+v", coord)
	}
}

func TestResolve_ZeroResults_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	_, err := c.Resolve(context.Background(), "__unresolvable__")
	if !errors.Is(err, e.ErrGeocodeNotFound) {
		t.Fatalf("expected ErrGeocodeNotFound, got %v", err)
	}
}

func TestResolve_TransportFailure_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := newClient(srv.URL)

	_, err := c.Resolve(context.Background(), "anywhere")
	if !errors.Is(err, e.ErrGeocodeNetwork) {
		t.Fatalf("expected ErrGeocodeNetwork, got %v", err)
	}
}

func TestResolve_MalformedResponse_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	_, err := c.Resolve(context.Background(), "anywhere")
	if !errors.Is(err, e.ErrGeocodeNetwork) {
		t.Fatalf("expected ErrGeocodeNetwork, got %v", err)
	}
}

func TestResolve_Non200_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	_, err := c.Resolve(context.Background(), "anywhere")
	if !errors.Is(err, e.ErrGeocodeNetwork) {
		t.Fatalf("expected ErrGeocodeNetwork, got %v", err)
	}
}

func TestResolving_FlagVisibleDuringLookup(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	observed := make(chan bool, 1)

	var c *geocode.Client
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observed <- c.Resolving()
		<-release
		_, _ = w.Write([]byte(`[{"lat":"1","lon":"2"}]`))
	}))
	defer srv.Close()

	c = newClient(srv.URL)

	if c.Resolving() {
		t.Fatal("resolving flag set before any lookup")
	}

	done := make(chan error, 1)
	go func() {
		_, err := c.Resolve(context.Background(), "somewhere")
		done <- err
	}()

	if inFlight := <-observed; !inFlight {
		t.Fatal("resolving flag not visible while request outstanding")
	}
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Resolving() {
		t.Fatal("resolving flag still set after completion")
	}
}
