package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

func TestPortfolioHandler(t *testing.T) {
	h := NewPortfolioHandler()

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.Profile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&profile))
	assert.NotEmpty(t, profile.Projects)

	rec = httptest.NewRecorder()
	h.Projects(rec, httptest.NewRequest(http.MethodGet, "/api/portfolio/projects?category=no-such-category", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTerminalHandler(t *testing.T) {
	h := NewTerminalHandler(services.NewTerminalService())

	rec := httptest.NewRecorder()
	h.Execute(rec, httptest.NewRequest(http.MethodPost, "/api/terminal", strings.NewReader(`{"command":"  HELP "}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	var result models.TerminalResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	require.Len(t, result.Entries, 2)
	assert.Equal(t, models.EntryResponse, result.Entries[1].Type)

	rec = httptest.NewRecorder()
	h.Execute(rec, httptest.NewRequest(http.MethodPost, "/api/terminal", strings.NewReader(`nope`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Banner(rec, httptest.NewRequest(http.MethodGet, "/api/terminal/banner", nil))
	var banner []models.TerminalEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&banner))
	assert.Len(t, banner, 3)
}

func TestPaletteHandler(t *testing.T) {
	h := NewPaletteHandler()

	rec := httptest.NewRecorder()
	h.Search(rec, httptest.NewRequest(http.MethodGet, "/api/palette?q=github", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var groups []models.PaletteGroup
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "Socials & Links", groups[0].Category)
}
