package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/models"
)

func TestFilterPalette_EmptyQueryReturnsAll(t *testing.T) {
	groups := FilterPalette("")
	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Items, 6)
}

func TestFilterPalette_CaseInsensitive(t *testing.T) {
	groups := FilterPalette("PROFILE")
	require.Len(t, groups, 1)
	assert.Equal(t, "Socials & Links", groups[0].Category)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, models.PaletteLink, groups[0].Items[0].Kind)
}

func TestFilterPalette_DropsEmptyGroups(t *testing.T) {
	groups := FilterPalette("go to")
	require.Len(t, groups, 1)
	assert.Equal(t, "Navigation", groups[0].Category)
	assert.Len(t, groups[0].Items, 5)
}

func TestFilterPalette_NoMatch(t *testing.T) {
	groups := FilterPalette("zzz")
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
