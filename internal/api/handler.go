package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// ServiceName identifies this service in health responses and log fields.
const ServiceName = "trading-signal-bot"

// Handler serves the service's health and root endpoints. Both endpoints are
// stateless; concurrent requests need no coordination.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "health endpoint supports GET only")
		return
	}

	resp := healthResponse{
		Status:  "healthy",
		Service: ServiceName,
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleRoot serves the human-readable banner on "/" and rejects every other
// path, so unknown routes return 404 regardless of method.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "root endpoint supports GET only")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "Trading Signal Bot is running")
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}
