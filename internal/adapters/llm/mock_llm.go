package llm

import (
	"context"
	"fmt"

	"github.com/procurra/procurra-api/internal/domain"
)

// MockLLM satisfies both core ports without any network calls, for local
// runs and tests. Uploaded documents report ACTIVE immediately.
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) Upload(_ context.Context, path, mimeType, displayName string) (*domain.KnowledgeSource, error) {
	return &domain.KnowledgeSource{
		Name:        "files/mock-document",
		URI:         "mock://" + path,
		MIMEType:    mimeType,
		DisplayName: displayName,
		State:       domain.StateActive,
	}, nil
}

func (m *MockLLM) GetState(_ context.Context, name string) (*domain.KnowledgeSource, error) {
	return &domain.KnowledgeSource{
		Name:  name,
		State: domain.StateActive,
	}, nil
}

func (m *MockLLM) GenerateReply(_ context.Context, seed []domain.Turn, userInput string) (string, error) {
	return fmt.Sprintf("I heard you ask %q. Here is what the method statement says about it (mock reply, %d seed turns).", userInput, len(seed)), nil
}
