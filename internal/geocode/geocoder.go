package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/Iush-Yadav/SafeStreet/internal/config"
	"github.com/Iush-Yadav/SafeStreet/internal/domain"
	"github.com/Iush-Yadav/SafeStreet/pkg/e"
)

// Resolver turns a free-text address into a coordinate via a single external
// lookup per call.
type Resolver interface {
	Resolve(ctx context.Context, address string) (domain.Coordinate, error)
	Resolving() bool
}

type Client struct {
	logger    *slog.Logger
	baseURL   string
	userAgent string
	http      *http.Client
	inFlight  atomic.Bool
}

func NewClient(cfg config.GeocoderConfig, logger *slog.Logger) *Client {
	return &Client{
		logger:    logger,
		baseURL:   cfg.URL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// geocodeResult is one entry of the service's JSON response; lat/lon come
// back as numeric strings.
type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve issues one GET with the address as a URL-encoded query parameter
// and takes the first result. Zero results map to e.ErrGeocodeNotFound,
// transport and parse failures to e.ErrGeocodeNetwork. No retry, no caching;
// an in-flight request is never cancelled by a second call.
func (c *Client) Resolve(ctx context.Context, address string) (domain.Coordinate, error) {
	c.inFlight.Store(true)
	defer c.inFlight.Store(false)

	q := url.Values{}
	q.Set("format", "json")
	q.Set("q", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return domain.Coordinate{}, e.Wrap("geocode: build request", e.ErrGeocodeNetwork)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("geocode lookup failed", slog.String("error", err.Error()))
		return domain.Coordinate{}, fmt.Errorf("geocode: %v: %w", err, e.ErrGeocodeNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("geocode non-200", slog.Int("status", resp.StatusCode))
		return domain.Coordinate{}, fmt.Errorf("geocode: status %d: %w", resp.StatusCode, e.ErrGeocodeNetwork)
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode: decode: %w", e.ErrGeocodeNetwork)
	}

	if len(results) == 0 {
		return domain.Coordinate{}, e.ErrGeocodeNotFound
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lngErr != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode: bad coordinates in response: %w", e.ErrGeocodeNetwork)
	}

	c.logger.Debug("geocode resolved",
		slog.String("address", address),
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
	)
	return domain.Coordinate{Lat: lat, Lng: lng}, nil
}

// Resolving reports whether a lookup is outstanding; callers use it to
// disable duplicate submission while one is in flight.
func (c *Client) Resolving() bool {
	return c.inFlight.Load()
}

var _ Resolver = (*Client)(nil)
