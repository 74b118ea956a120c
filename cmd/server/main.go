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

	"portfolio-backend/internal/chat"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/game"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/logging"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/router"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/websocket"
	"portfolio-backend/internal/worker"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	logCloser, err := logging.Init(cfg.LogFile)
	if err != nil {
		log.Fatalf("✗ Log file setup failed: %v", err)
	}
	defer logCloser.Close()

	log.Println("🚀 Starting Portfolio Backend...")
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Inference Provider ────
	provider, closeProvider, err := newInferenceProvider(cfg)
	if err != nil {
		log.Fatalf("✗ Inference provider initialization failed: %v", err)
	}
	defer closeProvider()
	if provider.HasCredential() {
		log.Printf("✓ Inference provider %q initialized", provider.Name())
	} else {
		// The proxy reports the missing key per request instead of refusing to boot.
		log.Printf("✗ Inference provider %q has no API key; /api/chat will return 500", provider.Name())
	}

	// ──── Step 3: Initialize Game Session Store ────
	var sessions services.SessionStore
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		sessions = repository.NewSessionRepo(redisClient, cfg.GameSessionTTL)
		log.Println("✓ Redis connected (game sessions)")
	} else {
		sessions = repository.NewMemorySessionRepo(cfg.GameSessionTTL)
		log.Println("✓ Game sessions kept in memory (REDIS_URL not set)")
	}

	// ──── Step 4: Initialize Leaderboard Store ────
	var scores services.ScoreStore
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("✗ PostgreSQL connection failed: %v", err)
		}
		defer pool.Close()
		log.Println("✓ PostgreSQL connected")

		if err := database.RunMigrations(pool, "migrations"); err != nil {
			log.Fatalf("✗ Database migration failed: %v", err)
		}
		log.Println("✓ Database migrations applied")
		scores = repository.NewScoreRepo(pool)
	} else {
		scores = repository.NewMemoryScoreRepo()
		log.Println("✓ Leaderboard kept in memory (DATABASE_URL not set)")
	}

	// ──── Step 5: Start Score Worker Pool ────
	scorePool := worker.NewPool(scores, 2, 100)
	scorePool.Start()

	// ──── Initialize Services ────
	sessionAuth := middleware.NewSessionAuth(cfg.GameTokenSecret, cfg.GameSessionTTL)
	gameService := services.NewGameService(game.NewEngine(nil), sessions, scores)
	gameService.UseRecorder(scorePool)
	terminalService := services.NewTerminalService()

	// One per-host budget covers both chat entry points.
	chatLimiter := middleware.NewRateLimiter(cfg.ChatRateLimitPerMin, time.Minute)
	defer chatLimiter.Stop()

	// ──── Step 6: Start WebSocket Hub ────
	wsHub := websocket.NewHub(chat.NewProviderCompleter(provider), chatLimiter)
	log.Println("✓ WebSocket hub started")

	// ──── Step 7: Start HTTP Server ────

	r := router.New(
		router.Handlers{
			Chat:      handlers.NewChatHandler(provider, chatLimiter),
			Portfolio: handlers.NewPortfolioHandler(),
			Palette:   handlers.NewPaletteHandler(),
			Terminal:  handlers.NewTerminalHandler(terminalService),
			Game:      handlers.NewGameHandler(gameService, sessionAuth),
		},
		sessionAuth,
		wsHub,
		cfg.FrontendURL,
	)

	// No WriteTimeout: a proxied generation may take as long as the upstream needs.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		wsHub.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
		scorePool.Stop()
		close(done)
	}()

	log.Printf("✓ Portfolio Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/ws/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	<-done
}

// newInferenceProvider picks the upstream named by INFERENCE_PROVIDER.
func newInferenceProvider(cfg *config.Config) (services.InferenceProvider, func(), error) {
	switch cfg.InferenceProvider {
	case "gemini":
		p, err := services.NewGeminiProvider(context.Background(), cfg.InferenceAPIKey(), cfg.GeminiModel, cfg.InferenceConcurrency)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	case "huggingface", "":
		p := services.NewHuggingFaceProvider(services.HuggingFaceOptions{
			BaseURL:     cfg.InferenceBaseURL,
			Model:       cfg.InferenceModel,
			APIKey:      cfg.InferenceAPIKey(),
			Concurrency: cfg.InferenceConcurrency,
			MaxRetries:  cfg.InferenceMaxRetries,
			Timeout:     cfg.InferenceTimeout,
		})
		return p, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown INFERENCE_PROVIDER %q", cfg.InferenceProvider)
	}
}
