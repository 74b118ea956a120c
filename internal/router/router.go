package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/websocket"
)

type Handlers struct {
	Chat      *handlers.ChatHandler
	Portfolio *handlers.PortfolioHandler
	Palette   *handlers.PaletteHandler
	Terminal  *handlers.TerminalHandler
	Game      *handlers.GameHandler
}

func New(
	h Handlers,
	sessionAuth *middleware.SessionAuth,
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

		// ──── Inference Proxy ────
		// Every method reaches the handler so it can answer 405 with a JSON body;
		// the handler applies the rate limit itself once a request is forwardable.
		r.HandleFunc("/chat", h.Chat.Proxy)

		// ──── Portfolio Routes (public) ────
		r.Get("/portfolio", h.Portfolio.Get)
		r.Get("/portfolio/projects", h.Portfolio.Projects)
		r.Get("/palette", h.Palette.Search)

		// ──── Terminal Routes ────
		r.Route("/terminal", func(r chi.Router) {
			r.Get("/banner", h.Terminal.Banner)
			r.Post("/", h.Terminal.Execute)
		})

		// ──── Game Routes ────
		r.Route("/game", func(r chi.Router) {
			r.Post("/sessions", h.Game.Create)
			r.Get("/scores", h.Game.Scores)

			r.Group(func(r chi.Router) {
				r.Use(sessionAuth.Middleware)
				r.Get("/session", h.Game.Get)
				r.Post("/session/start", h.Game.Start)
				r.Post("/session/choice", h.Game.Choose)
			})
		})

		// ──── WebSocket ────
		r.Get("/ws/chat", wsHub.HandleWebSocket)
	})

	return r
}
