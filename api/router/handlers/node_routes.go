package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterNodeRoutes(r chi.Router, h *GraphHandlers) {
	r.Post("/node", h.CreateNodeHandler)
	r.Get("/node/{nodeID}", h.GetNodeHandler)
}
