// Package chat turns one user utterance plus a ready knowledge source into
// one grounded reply. The service holds no per-conversation state: the seed
// is identical on every call and live utterances are never retained.
package chat

import (
	"context"
	"errors"

	"github.com/procurra/procurra-api/internal/domain"
	"github.com/procurra/procurra-api/internal/observability"
)

type Service struct {
	gen domain.ReplyGenerator
}

func NewService(gen domain.ReplyGenerator) *Service {
	return &Service{gen: gen}
}

// Answer makes exactly one generation call with the session seed and the new
// utterance, and returns the generated text verbatim.
//
// Callers must gate on a ready source and a non-empty utterance before
// invoking; the HTTP layer owns both checks. A failed or empty generation
// yields a GenerationError, never an empty success, and is not retried here.
func (s *Service) Answer(ctx context.Context, userInput string, src *domain.KnowledgeSource) (string, error) {
	log := observability.LoggerFromContext(ctx).With("source", src.Name)
	log.Info("answering user query")

	seed := SessionSeed(src)

	reply, err := s.gen.GenerateReply(ctx, seed, userInput)
	if err != nil {
		log.Error("generation failed", "error", err)
		return "", &domain.GenerationError{Err: err}
	}
	if reply == "" {
		log.Error("generation returned empty text")
		return "", &domain.GenerationError{Err: errors.New("backend returned empty text")}
	}

	log.Info("answer produced", "reply_chars", len(reply))
	return reply, nil
}
