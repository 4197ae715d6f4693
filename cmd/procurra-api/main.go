package main

import (
	"context"
	"log"
	"net/http"

	httpadapter "github.com/procurra/procurra-api/internal/adapters/http"
	"github.com/procurra/procurra-api/internal/adapters/llm"
	"github.com/procurra/procurra-api/internal/app/chat"
	"github.com/procurra/procurra-api/internal/app/knowledge"
	"github.com/procurra/procurra-api/internal/config"
	"github.com/procurra/procurra-api/internal/domain"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Choose between mock and Gemini by ENV (useful for dev)
	var (
		store domain.DocumentStore
		gen   domain.ReplyGenerator
	)

	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK LLM client")
		mock := llm.NewMockLLM()
		store = mock
		gen = mock
	} else {
		log.Println("[LLM] Using Gemini LLM client")
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelName, chat.SystemInstruction)
		if err != nil {
			log.Fatalf("error initializing Gemini client: %v", err)
		}
		store = client
		gen = client
	}

	// Document readiness runs in the background from process start; the HTTP
	// surface comes up immediately and reports "not ready" until it is.
	mgr := knowledge.NewManager(store, cfg.PollInterval)
	go mgr.Start(ctx, cfg.DocumentPath, cfg.DocumentMIME, cfg.DocumentLabel)

	svc := chat.NewService(gen)

	handler := httpadapter.NewServer(svc, mgr.Handle, cfg.RequestTimeout)

	addr := ":" + cfg.Port
	log.Println("Procurra API listening on port:", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
