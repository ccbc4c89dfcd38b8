package httphandler

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Account string `json:"account"`
	Time    string `json:"time"`
	Uptime  string `json:"uptime"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// fallbackBody is sent when a response value cannot be encoded.
var fallbackBody = []byte(`{"error":"internal server error"}` + "\n")

// writeJSON encodes v before touching the response so an encoding failure
// can still become a clean 500. Operational responses are never cached.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	body := fallbackBody
	if err := json.NewEncoder(&buf).Encode(v); err == nil {
		body = buf.Bytes()
	} else {
		status = http.StatusInternalServerError
	}

	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
