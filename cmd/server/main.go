package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"llm-chat/internal/config"
	"llm-chat/internal/handlers"
	"llm-chat/internal/models"
	"llm-chat/internal/router"
	"llm-chat/internal/services"
	"llm-chat/internal/websocket"
)

func main() {
	log.Println("🚀 Starting LLM Chat server...")

	// ──── Step 1: Load Environment Variables ────
	// Panics when GEMINI_API_KEY is missing: the process does not start
	// without the primary route's credential.
	cfg := config.Load()
	log.Printf("✓ Environment variables loaded (env %s)", cfg.Env)

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (model %s)", cfg.GeminiModel)

	echoService := services.NewEchoService()

	// ──── Step 3: Initialize Handlers ────
	geminiHandler := handlers.NewGeminiHandler(geminiService)
	mcpHandler := handlers.NewMCPHandler(echoService)

	// ──── Step 4: Start WebSocket Hub ────
	wsHub := websocket.NewHub(map[string]websocket.Backend{
		models.BackendGemini: {Responder: geminiService, FailureMsg: models.MsgGeminiFailed},
		models.BackendMCP:    {Responder: echoService, FailureMsg: models.MsgMCPFailed},
	})
	log.Println("✓ WebSocket hub started")

	// ──── Step 5: Start HTTP Server ────
	r := router.New(geminiHandler, mcpHandler, wsHub, cfg.FrontendURL)

	// No WriteTimeout: a reply takes as long as the upstream call does.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Printf("Shutting down... closing %d websocket connection(s)", wsHub.Count())
		wsHub.CloseAll()

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ LLM Chat ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/{gemini,mcp}", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
