// Package ui renders the dashboard and intro pages from embedded templates.
package ui

import (
	"embed"
	"html/template"
	"sprawl-lens/internal/chart"
	"sprawl-lens/internal/types"
)

// Template names
const (
	DashboardTemplate = "dashboard.html"
	IntroTemplate     = "intro.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Funcs are the helpers available to every template
var Funcs = template.FuncMap{
	"tooltip": chart.TooltipFor,
	"add":     func(a, b float64) float64 { return a + b },
	"sub":     func(a, b float64) float64 { return a - b },
	"isModel": func(turn types.ChatTurn) bool {
		return turn.Role == types.ChatRoleModel
	},
}

// Templates parses every embedded page and partial
func Templates() (*template.Template, error) {
	return template.New("ui").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}
