package ui

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers all UI routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	r.Get("/", ui.HandleIndex)
	r.Post("/simulate", ui.HandleSimulate)
}
