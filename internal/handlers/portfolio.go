package handlers

import (
	"net/http"

	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/services"
)

type PortfolioHandler struct{}

func NewPortfolioHandler() *PortfolioHandler {
	return &PortfolioHandler{}
}

func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, portfolio.Profile())
}

// Projects lists projects, optionally narrowed by ?category=.
func (h *PortfolioHandler) Projects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, portfolio.ProjectsByCategory(r.URL.Query().Get("category")))
}

type PaletteHandler struct{}

func NewPaletteHandler() *PaletteHandler {
	return &PaletteHandler{}
}

func (h *PaletteHandler) Search(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.FilterPalette(r.URL.Query().Get("q")))
}
