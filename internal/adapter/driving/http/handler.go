// Package httphandler serves the operational HTTP surface: the health probe
// and the middleware shared by every route.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"
)

// Handler serves the operational endpoints.
type Handler struct {
	account string
	started time.Time
	now     func() time.Time
	logger  *slog.Logger
}

// NewHandler creates a Handler reporting on the given account.
func NewHandler(account string, logger *slog.Logger) *Handler {
	now := time.Now
	return &Handler{
		account: account,
		started: now(),
		now:     now,
		logger:  logger,
	}
}

// RegisterRoutes registers the operational routes on the provided mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /healthz", h.Health)
}

// ApplyMiddleware wraps the handler with recovery (innermost), security
// headers and request logging.
func ApplyMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	wrapped := recoveryMiddleware(logger, next)
	wrapped = headersMiddleware(wrapped)
	wrapped = loggingMiddleware(logger, wrapped)
	return wrapped
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	now := h.now()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Account: h.account,
		Time:    now.UTC().Format(time.RFC3339),
		Uptime:  now.Sub(h.started).Round(time.Second).String(),
	})
}
