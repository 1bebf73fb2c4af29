package core

import (
	"context"
	"graphdb/models"
)

// GraphTx is the set of operations available inside one transaction.
type GraphTx interface {
	NodeExists(ctx context.Context, id int64) (bool, error)
	CreateNode(ctx context.Context) (models.Node, error)
	SetNodeProperties(ctx context.Context, nodeID int64, props map[string]any) error
	GetNode(ctx context.Context, id int64) (models.Node, error)

	// CreateRelationship fails with models.ErrEndpointMissing if either node
	// does not exist when the relationship is written.
	CreateRelationship(ctx context.Context, startID, endID int64, relType string) (models.Relationship, error)
	SetRelationshipProperties(ctx context.Context, relID int64, props map[string]any) error
	GetRelationship(ctx context.Context, id int64) (models.Relationship, error)
}

// GraphAccessor runs functions inside transactions of the underlying store.
// When fn returns an error, or ctx is done before commit, nothing fn did is
// persisted. No call is retried.
type GraphAccessor interface {
	Update(ctx context.Context, fn func(tx GraphTx) error) error
	View(ctx context.Context, fn func(tx GraphTx) error) error
}
