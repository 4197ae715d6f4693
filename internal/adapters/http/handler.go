package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/procurra/procurra-api/internal/app/chat"
	"github.com/procurra/procurra-api/internal/domain"
)

// readyFunc is the non-blocking readiness read, normally knowledge.Manager.Handle.
type readyFunc func() *domain.KnowledgeSource

type Server struct {
	svc     *chat.Service
	ready   readyFunc
	timeout time.Duration
}

// NewServer wires the chat endpoint. The server owns the caller-side gates:
// input validation and the readiness check both happen here, before the core
// is ever invoked.
func NewServer(svc *chat.Service, ready readyFunc, timeout time.Duration) http.Handler {
	s := &Server{
		svc:     svc,
		ready:   ready,
		timeout: timeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/healthz", s.handleHealthz)

	return chainMiddlewares(mux, withCORS, withLogging, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type chatRequest struct {
	UserInput string `json:"userInput"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type healthResponse struct {
	Status        string `json:"status"`
	DocumentReady bool   `json:"document_ready"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.UserInput) == "" {
		badRequest(w, "Invalid request body")
		return
	}

	src := s.ready()
	if !src.Ready() {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "PDF is not ready for processing.",
		})
		return
	}

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.svc.Answer(ctx, req.UserInput, src)
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		DocumentReady: s.ready().Ready(),
	})
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

// internalError hides the failure detail from the client; it is logged by
// the caller, never surfaced.
func internalError(w http.ResponseWriter, _ error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "Internal Server Error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
