// Package web serves the page shell and its static assets. The shell is a
// templ component; everything dynamic happens in the browser bundle.
package web

import (
	"log/slog"
	"net/http"
)

// Handler serves the page shell.
type Handler struct {
	shell  ShellData
	logger *slog.Logger
}

// NewHandler creates a Handler for the given shell data.
func NewHandler(shell ShellData, logger *slog.Logger) *Handler {
	return &Handler{shell: shell, logger: logger}
}

// Index renders the page shell.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Shell(h.shell).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render shell", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
