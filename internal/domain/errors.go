package domain

import "fmt"

// IngestionError means the external service rejected the document at upload.
// It is terminal for the process's grounding capability: there is no
// automatic re-submission.
type IngestionError struct {
	Path string
	Err  error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingesting document %q: %v", e.Path, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// ProcessingError means the external service reported a terminal state other
// than ACTIVE while the document was being processed. Also terminal.
type ProcessingError struct {
	State SourceState
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("document processing ended in state %s", e.State)
}

// GenerationError wraps a failed generation call. It is local to one request
// and is never retried by the core.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating reply: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
