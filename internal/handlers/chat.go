package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type rateLimiter interface {
	Allow(key string) bool
}

type ChatHandler struct {
	provider services.InferenceProvider
	limiter  rateLimiter
}

// NewChatHandler builds the proxy. limiter may be nil to disable throttling.
func NewChatHandler(provider services.InferenceProvider, limiter rateLimiter) *ChatHandler {
	return &ChatHandler{provider: provider, limiter: limiter}
}

// Proxy relays a prompt to the inference provider. It is mounted for every method so it
// can answer 405 itself, and it never lets a panic escape without the JSON error body.
func (h *ChatHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in chat proxy: %v", rec)
			writeJSON(w, http.StatusInternalServerError, errorResp(internalErrorMessage))
		}
	}()

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResp("Method not allowed"))
		return
	}

	if !h.provider.HasCredential() {
		log.Printf("chat proxy: %s provider has no API key configured", h.provider.Name())
		writeJSON(w, http.StatusInternalServerError, errorResp(services.MissingAPIKeyMessage))
		return
	}

	// Only requests that would reach the upstream spend the client's budget.
	if h.limiter != nil && !h.limiter.Allow(middleware.ClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResp(middleware.RateLimitedMessage))
		return
	}

	var req models.ProxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	gen, err := h.provider.Generate(r.Context(), req.Prompt)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(gen.Body)
}
