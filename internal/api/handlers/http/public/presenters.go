package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Iush-Yadav/SafeStreet/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrGeocodeNotFound):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, e.ErrGeocodeNetwork):
		status = http.StatusBadGateway
	case errors.Is(err, e.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, e.ErrNoDraft), errors.Is(err, e.ErrSubmitInFlight):
		status = http.StatusConflict
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
