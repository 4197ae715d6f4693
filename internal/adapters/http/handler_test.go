package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	httpadapter "github.com/procurra/procurra-api/internal/adapters/http"
	"github.com/procurra/procurra-api/internal/app/chat"
	"github.com/procurra/procurra-api/internal/domain"
)

// countingGenerator counts invocations so tests can assert the core was (or
// was not) reached.
type countingGenerator struct {
	calls atomic.Int32
	reply string
	err   error
}

func (g *countingGenerator) GenerateReply(_ context.Context, _ []domain.Turn, _ string) (string, error) {
	g.calls.Add(1)
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func readySource() *domain.KnowledgeSource {
	return &domain.KnowledgeSource{
		Name:     "files/method-statement",
		URI:      "https://files.example/method-statement",
		MIMEType: "application/pdf",
		State:    domain.StateActive,
	}
}

func newTestServer(t *testing.T, gen *countingGenerator, src *domain.KnowledgeSource) http.Handler {
	t.Helper()

	svc := chat.NewService(gen)
	return httpadapter.NewServer(svc, func() *domain.KnowledgeSource { return src }, time.Second)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &countingGenerator{reply: "ok"}, readySource())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestChatReturnsReply(t *testing.T) {
	gen := &countingGenerator{reply: "The curing period is a minimum of 7 days."}
	srv := newTestServer(t, gen, readySource())

	body := []byte(`{"userInput":"What is the recommended curing period for concrete?"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["response"]; got != gen.reply {
		t.Fatalf("expected reply in response field, got %q", got)
	}
	if gen.calls.Load() != 1 {
		t.Fatalf("expected exactly one generation call, got %d", gen.calls.Load())
	}
}

func TestChatEmptyInputRejectedBeforeCore(t *testing.T) {
	gen := &countingGenerator{reply: "ok"}
	srv := newTestServer(t, gen, readySource())

	for _, body := range []string{`{"userInput":""}`, `{}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte(body)))
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, w.Code)
		}
		if got := decodeBody(t, w)["error"]; got != "Invalid request body" {
			t.Fatalf("body %q: unexpected error payload %q", body, got)
		}
	}

	if gen.calls.Load() != 0 {
		t.Fatalf("core must not be invoked for invalid input, got %d calls", gen.calls.Load())
	}
}

func TestChatNotReadyRejectedBeforeCore(t *testing.T) {
	gen := &countingGenerator{reply: "ok"}
	srv := newTestServer(t, gen, nil)

	body := []byte(`{"userInput":"Hi"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "PDF is not ready for processing." {
		t.Fatalf("unexpected error payload %q", got)
	}
	if gen.calls.Load() != 0 {
		t.Fatalf("core must not be invoked before the document is ready, got %d calls", gen.calls.Load())
	}
}

func TestChatGenerationFailureIsOpaque(t *testing.T) {
	gen := &countingGenerator{err: errors.New("backend exploded: credential xyz")}
	srv := newTestServer(t, gen, readySource())

	body := []byte(`{"userInput":"Hi"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Internal Server Error" {
		t.Fatalf("internal detail must not leak, got %q", got)
	}
}

func TestChatMethodNotAllowed(t *testing.T) {
	gen := &countingGenerator{reply: "ok"}
	srv := newTestServer(t, gen, readySource())

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
