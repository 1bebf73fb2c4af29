package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRelationshipRoutes(r chi.Router, h *GraphHandlers) {
	r.Post("/node/{nodeID}/relationships", h.CreateRelationshipHandler)
	r.Get("/relationship/{relationshipID}", h.GetRelationshipHandler)
	r.Get("/relationship/{relationshipID}/properties", h.GetRelationshipPropertiesHandler)
	r.Get("/relationship/{relationshipID}/properties/{key}", h.GetRelationshipPropertyHandler)
}
