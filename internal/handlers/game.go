package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
)

type gameService interface {
	Create(ctx context.Context) (*models.GameSession, error)
	Get(ctx context.Context, id uuid.UUID) (*models.GameSession, error)
	Start(ctx context.Context, id uuid.UUID) (*models.GameSession, error)
	Choose(ctx context.Context, id uuid.UUID, dir models.Direction) (*models.GameSession, error)
	Leaderboard(ctx context.Context, limit int) ([]*models.GameScore, error)
}

type GameHandler struct {
	games gameService
	auth  *middleware.SessionAuth
}

func NewGameHandler(games gameService, auth *middleware.SessionAuth) *GameHandler {
	return &GameHandler{games: games, auth: auth}
}

// Create starts a new session and hands back the token that addresses it.
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.games.Create(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	token, err := h.auth.GenerateSessionToken(session.ID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.NewGameResponse{Session: session, Token: token})
}

func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.games.Get(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.games.Start(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *GameHandler) Choose(w http.ResponseWriter, r *http.Request) {
	var req models.ChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	session, err := h.games.Choose(r.Context(), middleware.GetSessionID(r.Context()), req.Direction)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *GameHandler) Scores(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResp("limit must be a positive integer"))
			return
		}
		limit = n
	}

	scores, err := h.games.Leaderboard(r.Context(), limit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}
