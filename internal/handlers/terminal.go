package handlers

import (
	"encoding/json"
	"net/http"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type TerminalHandler struct {
	terminal *services.TerminalService
}

func NewTerminalHandler(terminal *services.TerminalService) *TerminalHandler {
	return &TerminalHandler{terminal: terminal}
}

func (h *TerminalHandler) Banner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.terminal.Banner())
}

func (h *TerminalHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req models.TerminalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	writeJSON(w, http.StatusOK, h.terminal.Execute(req.Command))
}
