package domain

import "context"

// DocumentStore defines how the core registers the reference document with
// the external file service and re-reads its processing state.
type DocumentStore interface {
	// Upload registers a local file and returns the service's handle for it.
	Upload(ctx context.Context, path, mimeType, displayName string) (*KnowledgeSource, error)

	// GetState re-reads the current processing state of an uploaded file.
	GetState(ctx context.Context, name string) (*KnowledgeSource, error)
}

// ReplyGenerator defines how the core obtains one grounded reply. The seed
// carries the grounding turn and the exemplar dialogue; userInput is the live
// utterance appended at call time.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, seed []Turn, userInput string) (string, error)
}
