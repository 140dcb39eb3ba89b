package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"llm-chat/internal/handlers"
	"llm-chat/internal/middleware"
	"llm-chat/internal/web"
	"llm-chat/internal/websocket"
)

func New(
	geminiHandler *handlers.ReplyHandler,
	mcpHandler *handlers.ReplyHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/gemini", geminiHandler.Reply)
		r.Post("/mcp", mcpHandler.Reply)

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	// ──── Single-page UI ────
	r.Handle("/*", web.Handler())

	return r
}
