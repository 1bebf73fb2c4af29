package handlers

import (
	"graphdb/core"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CreateNodeHandler creates a node from an optional JSON property map.
// @Summary Create a node
// @Tags Nodes
// @Accept json
// @Produce json
// @Param properties body object false "Property map"
// @Success 201 {object} models.NodeRepresentation
// @Header 201 {string} Location "URI of the new node"
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /db/data/node [post]
func (h *GraphHandlers) CreateNodeHandler(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		writeError(w, r, "CreateNodeHandler", err)
		return
	}
	node, err := h.Service.CreateNode(r.Context(), body)
	if err != nil {
		writeError(w, r, "CreateNodeHandler", err)
		return
	}
	base := h.baseURI(r)
	w.Header().Set("Location", core.NodeURI(base, node.ID))
	writeJSON(w, http.StatusCreated, core.BuildNodeRepresentation(node, base))
}

// GetNodeHandler returns a node.
// @Summary Get a node
// @Tags Nodes
// @Produce json
// @Param nodeID path int true "Node ID"
// @Success 200 {object} models.NodeRepresentation
// @Failure 404 {object} models.ErrorResponse
// @Router /db/data/node/{nodeID} [get]
func (h *GraphHandlers) GetNodeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "nodeID")
	if !ok {
		writeError(w, r, "GetNodeHandler", core.NewError(core.NodeNotFound, nil, "node %q not found", chi.URLParam(r, "nodeID")))
		return
	}
	node, err := h.Service.GetNode(r.Context(), id)
	if err != nil {
		writeError(w, r, "GetNodeHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, core.BuildNodeRepresentation(node, h.baseURI(r)))
}
