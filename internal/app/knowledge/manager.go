// Package knowledge owns the lifecycle of the single reference document:
// upload it to the external file service, poll until the service reports it
// usable, and expose the ready handle to concurrent readers.
package knowledge

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/procurra/procurra-api/internal/domain"
	"github.com/procurra/procurra-api/internal/observability"
)

const defaultPollInterval = 5 * time.Second

// Manager drives one document from upload to ACTIVE. The handle cell has
// exactly one writer (the manager) and any number of readers; readers see nil
// until the document is ready.
type Manager struct {
	store        domain.DocumentStore
	pollInterval time.Duration
	handle       atomic.Pointer[domain.KnowledgeSource]
}

func NewManager(store domain.DocumentStore, pollInterval time.Duration) *Manager {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Manager{
		store:        store,
		pollInterval: pollInterval,
	}
}

// Submit registers the document with the external service. A rejection is
// terminal: the process keeps running but stays "not ready" forever.
func (m *Manager) Submit(ctx context.Context, path, mimeType, label string) (*domain.KnowledgeSource, error) {
	log := observability.Component("knowledge")
	log.Info("uploading document", "path", path, "mime_type", mimeType)

	src, err := m.store.Upload(ctx, path, mimeType, label)
	if err != nil {
		return nil, &domain.IngestionError{Path: path, Err: err}
	}
	if src.State == "" {
		src.State = domain.StateSubmitted
	}

	log.Info("document uploaded", "name", src.Name, "display_name", src.DisplayName, "state", src.State)
	return src, nil
}

// AwaitReady polls the external processing state on a fixed interval until it
// observes ACTIVE, and then publishes the ready handle. Any observed state
// other than PROCESSING or ACTIVE is a terminal failure. The retry count is
// unbounded; cancel the context to stop a stuck loop.
func (m *Manager) AwaitReady(ctx context.Context, src *domain.KnowledgeSource) (*domain.KnowledgeSource, error) {
	log := observability.Component("knowledge")
	log.Info("waiting for document processing", "name", src.Name)

	for {
		updated, err := m.store.GetState(ctx, src.Name)
		if err != nil {
			return nil, &domain.IngestionError{Path: src.Name, Err: err}
		}

		switch updated.State {
		case domain.StateActive:
			log.Info("document is ready for use", "name", updated.Name)
			m.handle.Store(updated)
			return updated, nil
		case domain.StateProcessing:
			// keep polling
		default:
			return nil, &domain.ProcessingError{State: updated.State}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.pollInterval):
		}
	}
}

// Handle is the non-blocking readiness read used by request handlers. It
// returns nil until AwaitReady has observed ACTIVE.
func (m *Manager) Handle() *domain.KnowledgeSource {
	return m.handle.Load()
}

// Start runs the full submit + poll sequence in the calling goroutine. It is
// meant to be launched with `go` from main so the HTTP surface comes up
// immediately. Failures are logged and leave the process permanently not
// ready.
func (m *Manager) Start(ctx context.Context, path, mimeType, label string) {
	log := observability.Component("knowledge")

	src, err := m.Submit(ctx, path, mimeType, label)
	if err != nil {
		log.Error("document upload failed", "error", err)
		return
	}

	if _, err := m.AwaitReady(ctx, src); err != nil {
		log.Error("document processing failed", "error", err)
	}
}
