package handlers

import (
	"graphdb/core"
	"graphdb/models"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CreateRelationshipHandler creates a relationship from the node in the path.
// @Summary Create a relationship
// @Description Creates a typed relationship from the start node to the node referenced by "to", with optional properties in "data". Start and end nodes are checked before the property values are.
// @Tags Relationships
// @Accept json
// @Produce json
// @Param nodeID path int true "Start node ID"
// @Param relationship body object true "{\"to\": \"<node uri>\", \"type\": \"LOVES\", \"data\": {\"foo\": \"bar\"}}"
// @Success 201 {object} models.RelationshipRepresentation
// @Header 201 {string} Location "URI of the new relationship"
// @Failure 400 {object} models.ErrorResponse "Malformed body, invalid request, missing end node or invalid property value"
// @Failure 404 {object} models.ErrorResponse "Start node not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /db/data/node/{nodeID}/relationships [post]
func (h *GraphHandlers) CreateRelationshipHandler(w http.ResponseWriter, r *http.Request) {
	startID, ok := pathID(r, "nodeID")
	if !ok {
		writeError(w, r, "CreateRelationshipHandler", core.NewError(core.StartNodeNotFound, nil, "start node %q not found", chi.URLParam(r, "nodeID")))
		return
	}
	body, err := h.readBody(w, r)
	if err != nil {
		writeError(w, r, "CreateRelationshipHandler", err)
		return
	}

	rel, err := h.Service.CreateRelationship(r.Context(), startID, body)
	if err != nil {
		writeError(w, r, "CreateRelationshipHandler", err)
		return
	}

	base := h.baseURI(r)
	w.Header().Set("Location", core.RelationshipURI(base, rel.ID))
	writeJSON(w, http.StatusCreated, core.BuildRelationshipRepresentation(rel, base))
}

// GetRelationshipHandler returns a relationship.
// @Summary Get a relationship
// @Tags Relationships
// @Produce json
// @Param relationshipID path int true "Relationship ID"
// @Success 200 {object} models.RelationshipRepresentation
// @Failure 404 {object} models.ErrorResponse
// @Router /db/data/relationship/{relationshipID} [get]
func (h *GraphHandlers) GetRelationshipHandler(w http.ResponseWriter, r *http.Request) {
	rel, ok := h.loadRelationship(w, r, "GetRelationshipHandler")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, core.BuildRelationshipRepresentation(rel, h.baseURI(r)))
}

// GetRelationshipPropertiesHandler returns the property map of a relationship.
// @Summary Get relationship properties
// @Tags Relationships
// @Produce json
// @Param relationshipID path int true "Relationship ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /db/data/relationship/{relationshipID}/properties [get]
func (h *GraphHandlers) GetRelationshipPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	rel, ok := h.loadRelationship(w, r, "GetRelationshipPropertiesHandler")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, models.CloneProperties(rel.Properties))
}

// GetRelationshipPropertyHandler returns one property value.
// @Summary Get a relationship property
// @Tags Relationships
// @Produce json
// @Param relationshipID path int true "Relationship ID"
// @Param key path string true "Property key"
// @Success 200 {object} interface{}
// @Failure 404 {object} models.ErrorResponse "Relationship or property not found"
// @Router /db/data/relationship/{relationshipID}/properties/{key} [get]
func (h *GraphHandlers) GetRelationshipPropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "relationshipID")
	if !ok {
		writeError(w, r, "GetRelationshipPropertyHandler", core.NewError(core.RelationshipNotFound, nil, "relationship %q not found", chi.URLParam(r, "relationshipID")))
		return
	}
	v, err := h.Service.GetRelationshipProperty(r.Context(), id, chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, "GetRelationshipPropertyHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *GraphHandlers) loadRelationship(w http.ResponseWriter, r *http.Request, handler string) (models.Relationship, bool) {
	id, ok := pathID(r, "relationshipID")
	if !ok {
		writeError(w, r, handler, core.NewError(core.RelationshipNotFound, nil, "relationship %q not found", chi.URLParam(r, "relationshipID")))
		return models.Relationship{}, false
	}
	rel, err := h.Service.GetRelationship(r.Context(), id)
	if err != nil {
		writeError(w, r, handler, err)
		return models.Relationship{}, false
	}
	return rel, true
}
