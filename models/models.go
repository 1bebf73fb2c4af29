package models

// Node is a vertex in the graph store.
type Node struct {
	ID         int64          `json:"id" example:"7" format:"int64" readOnly:"true"`
	Properties map[string]any `json:"properties"`
}

// Relationship is a directed, typed edge between two existing nodes.
// StartNodeID, EndNodeID and Type never change after creation.
type Relationship struct {
	ID          int64          `json:"id" example:"12" format:"int64" readOnly:"true"`
	StartNodeID int64          `json:"start_node_id" example:"7" format:"int64"`
	EndNodeID   int64          `json:"end_node_id" example:"8" format:"int64"`
	Type        string         `json:"type" example:"LOVES"`
	Properties  map[string]any `json:"properties"`
}

// RelationshipCreationRequest is the decoded body of
// POST /node/{id}/relationships.
type RelationshipCreationRequest struct {
	To        string         `json:"to" example:"http://localhost:7474/db/data/node/8" binding:"required"` // URI of the end node; the last path segment is its id.
	Type      string         `json:"type" example:"LOVES" binding:"required"`                              // Relationship type.
	Data      map[string]any `json:"data,omitempty"`                                                       // Optional property map.
	EndNodeID int64          `json:"-"`
}
