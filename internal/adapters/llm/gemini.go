package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/procurra/procurra-api/internal/domain"
)

// Fixed sampling parameters: deterministic-leaning, bounded output.
const (
	temperature     = float32(0.4)
	topP            = float32(0.95)
	topK            = float32(40)
	maxOutputTokens = int32(8192)
)

// GeminiClient talks to the Gemini API for both concerns the core needs:
// document storage (Files API) and reply generation. One client, two
// interfaces: it implements domain.DocumentStore and domain.ReplyGenerator.
type GeminiClient struct {
	client      *genai.Client
	modelName   string
	systemInstr string
}

// NewGeminiClient creates a client against the hosted Gemini API using an
// API key (not Vertex). systemInstr is attached to every generation call.
func NewGeminiClient(ctx context.Context, apiKey, modelName, systemInstr string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		modelName:   modelName,
		systemInstr: systemInstr,
	}, nil
}

// Upload implements domain.DocumentStore.
func (g *GeminiClient) Upload(ctx context.Context, path, mimeType, displayName string) (*domain.KnowledgeSource, error) {
	file, err := g.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}
	return toKnowledgeSource(file), nil
}

// GetState implements domain.DocumentStore.
func (g *GeminiClient) GetState(ctx context.Context, name string) (*domain.KnowledgeSource, error) {
	file, err := g.client.Files.Get(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("getting file %s: %w", name, err)
	}
	return toKnowledgeSource(file), nil
}

// GenerateReply implements domain.ReplyGenerator. The seed turns become the
// conversation history; the live utterance is the final user content.
func (g *GeminiClient) GenerateReply(ctx context.Context, seed []domain.Turn, userInput string) (string, error) {
	contents := make([]*genai.Content, 0, len(seed)+1)
	for _, turn := range seed {
		contents = append(contents, toContent(turn))
	}
	contents = append(contents, genai.NewContentFromText(userInput, genai.RoleUser))

	temp := temperature
	tp := topP
	tk := topK

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(g.systemInstr, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &tp,
		TopK:              &tk,
		MaxOutputTokens:   maxOutputTokens,
		ResponseMIMEType:  "text/plain",
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	// extract only the text, do not print the structs
	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}

	return text, nil
}

func toContent(turn domain.Turn) *genai.Content {
	role := genai.Role(genai.RoleUser)
	if turn.Role == domain.RoleModel {
		role = genai.RoleModel
	}

	if turn.Source != nil {
		// grounding turn: document reference first, instruction text second
		return genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(turn.Source.URI, turn.Source.MIMEType),
			genai.NewPartFromText(turn.Text),
		}, role)
	}

	return genai.NewContentFromText(turn.Text, role)
}

func toKnowledgeSource(file *genai.File) *domain.KnowledgeSource {
	return &domain.KnowledgeSource{
		Name:        file.Name,
		URI:         file.URI,
		MIMEType:    file.MIMEType,
		DisplayName: file.DisplayName,
		State:       toSourceState(file.State),
	}
}

func toSourceState(state genai.FileState) domain.SourceState {
	switch state {
	case genai.FileStateActive:
		return domain.StateActive
	case genai.FileStateProcessing:
		return domain.StateProcessing
	case genai.FileStateFailed:
		return domain.StateFailed
	default:
		return domain.StateSubmitted
	}
}
