package models

// ErrorResponse is a generic error response structure for API
type ErrorResponse struct {
	Message string `json:"message" example:"Error message describing the issue"`
	Code    string `json:"code,omitempty" example:"end_node_not_found"`
}

// RelationshipRepresentation is the wire projection of a Relationship.
// Field order is fixed so that encoding the same snapshot twice yields
// identical bytes.
type RelationshipRepresentation struct {
	Self       string         `json:"self" example:"http://localhost:7474/db/data/relationship/12"`
	Start      string         `json:"start" example:"http://localhost:7474/db/data/node/7"`
	End        string         `json:"end" example:"http://localhost:7474/db/data/node/8"`
	Type       string         `json:"type" example:"LOVES"`
	Data       map[string]any `json:"data"`
	Property   string         `json:"property" example:"http://localhost:7474/db/data/relationship/12/properties/{key}"`
	Properties string         `json:"properties" example:"http://localhost:7474/db/data/relationship/12/properties"`
}

// NodeRepresentation is the wire projection of a Node.
type NodeRepresentation struct {
	Self               string         `json:"self" example:"http://localhost:7474/db/data/node/7"`
	Data               map[string]any `json:"data"`
	Property           string         `json:"property" example:"http://localhost:7474/db/data/node/7/properties/{key}"`
	Properties         string         `json:"properties" example:"http://localhost:7474/db/data/node/7/properties"`
	CreateRelationship string         `json:"create_relationship" example:"http://localhost:7474/db/data/node/7/relationships"`
}
