package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
)

// HTTPSource queries an external position endpoint returning
// {"lat": <num>, "lng": <num>}.
type HTTPSource struct {
	url  string
	http *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) CurrentPosition(ctx context.Context, q Query) (domain.Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return domain.Coordinate{}, err
	}
	if q.HighAccuracy {
		req.Header.Set("X-Position-Accuracy", "high")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return domain.Coordinate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinate{}, fmt.Errorf("position endpoint status %d", resp.StatusCode)
	}

	var coord domain.Coordinate
	if err := json.NewDecoder(resp.Body).Decode(&coord); err != nil {
		return domain.Coordinate{}, err
	}
	return coord, nil
}

var _ Source = (*HTTPSource)(nil)
