package services

import (
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/portfolio"
)

var paletteGroups = []models.PaletteGroup{
	{
		Category: "Navigation",
		Items: []models.PaletteItem{
			{Label: "Go to Hero", Kind: models.PaletteNavigate, Target: "home"},
			{Label: "Go to Projects", Kind: models.PaletteNavigate, Target: "projects"},
			{Label: "Go to Experience", Kind: models.PaletteNavigate, Target: "experience"},
			{Label: "Go to Skills", Kind: models.PaletteNavigate, Target: "skills"},
			{Label: "Go to Awards", Kind: models.PaletteNavigate, Target: "awards"},
			{Label: "Contact Me", Kind: models.PaletteNavigate, Target: "contact"},
		},
	},
	{
		Category: "Socials & Links",
		Items: []models.PaletteItem{
			{Label: "GitHub Profile", Kind: models.PaletteLink, Target: portfolio.ContactInfo().GitHub},
			{Label: "LinkedIn Profile", Kind: models.PaletteLink, Target: portfolio.ContactInfo().LinkedIn},
			{Label: "View Resume", Kind: models.PaletteLink, Target: "/assets/resume.pdf"},
		},
	},
	{
		Category: "System",
		Items: []models.PaletteItem{
			{Label: "Run Diagnostics", Kind: models.PaletteAction, Target: "diagnostics"},
		},
	},
}

// FilterPalette keeps items whose label contains query, ignoring case, and drops
// groups left empty.
func FilterPalette(query string) []models.PaletteGroup {
	q := strings.ToLower(strings.TrimSpace(query))

	out := []models.PaletteGroup{}
	for _, g := range paletteGroups {
		var items []models.PaletteItem
		for _, item := range g.Items {
			if strings.Contains(strings.ToLower(item.Label), q) {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			out = append(out, models.PaletteGroup{Category: g.Category, Items: items})
		}
	}
	return out
}
