// Package handlers holds the HTTP glue in front of the conversation core.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/viajante-ai/trip-planner/internal/bot"
	"github.com/viajante-ai/trip-planner/pkg/logging"
)

// ChatHandler exposes the conversation over plain HTTP: one message in,
// one reply out.
type ChatHandler struct {
	machine *bot.Machine
	baseURL string
	logger  *logging.Logger
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// NewChatHandler creates a chat handler. baseURL is used for download links;
// when empty, links are derived from the request's Host header.
func NewChatHandler(machine *bot.Machine, baseURL string, logger *logging.Logger) *ChatHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChatHandler{machine: machine, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	base := h.baseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}

	reply := h.machine.Handle(r.Context(), req.SessionID, req.Message, base)
	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}

// HealthCheck handles GET /health.
func (h *ChatHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
